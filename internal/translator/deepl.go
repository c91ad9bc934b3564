package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/subtitletools/srt-translator/pkg/log"
)

// DefaultBaseURL is the DeepL API Free endpoint. Pro accounts use
// api.deepl.com instead; override with WithBaseURL.
const DefaultBaseURL = "https://api-free.deepl.com"

const defaultTimeout = 60 * time.Second

// DeepLClient talks to the DeepL REST API. It implements Translator.
type DeepLClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client

	usageGroup singleflight.Group
}

// Option configures a DeepLClient.
type Option func(*DeepLClient)

// WithBaseURL overrides the API endpoint. Used for the Pro endpoint and
// for pointing tests at a local server.
func WithBaseURL(baseURL string) Option {
	return func(c *DeepLClient) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithTimeout sets the per-request timeout. A timed-out call surfaces as a
// transport failure.
func WithTimeout(timeout time.Duration) Option {
	return func(c *DeepLClient) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *DeepLClient) {
		c.httpClient = httpClient
	}
}

// NewDeepLClient creates a client for the given API key.
func NewDeepLClient(apiKey string, opts ...Option) *DeepLClient {
	client := &DeepLClient{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// TranslateBatch submits all texts in a single request and returns the
// translations in request order. On any failure nothing is applied and the
// error classifies what went wrong.
func (c *DeepLClient) TranslateBatch(ctx context.Context, req Request) ([]string, error) {
	if c.apiKey == "" {
		return nil, newError(KindAuthFailed, "API key is not configured")
	}
	if len(req.Texts) == 0 {
		return []string{}, nil
	}

	form := url.Values{}
	for _, text := range req.Texts {
		form.Add("text", text)
	}
	form.Set("target_lang", deeplTargetLang(req.TargetLang))
	if req.SourceLang != "" {
		form.Set("source_lang", deeplSourceLang(req.SourceLang))
	}

	log.Debug("DeepL translate: %d texts, %s -> %s", len(req.Texts), req.SourceLang, req.TargetLang)

	body, err := c.post(ctx, "/v2/translate", form)
	if err != nil {
		return nil, err
	}

	var deeplResp struct {
		Translations []struct {
			Text string `json:"text"`
		} `json:"translations"`
	}
	if err := json.Unmarshal(body, &deeplResp); err != nil {
		return nil, wrapError(KindProvider, "cannot parse translate response", err)
	}

	if len(deeplResp.Translations) != len(req.Texts) {
		return nil, newError(KindProvider, fmt.Sprintf(
			"translation count mismatch: sent %d texts, got %d back",
			len(req.Texts), len(deeplResp.Translations)))
	}

	translated := make([]string, len(deeplResp.Translations))
	for i, tr := range deeplResp.Translations {
		translated[i] = tr.Text
	}
	return translated, nil
}

// Usage queries the provider-side character consumption for the active
// credential. Concurrent calls are collapsed into one request.
func (c *DeepLClient) Usage(ctx context.Context) (*Usage, error) {
	result, err, _ := c.usageGroup.Do("usage", func() (any, error) {
		if c.apiKey == "" {
			return nil, newError(KindAuthFailed, "API key is not configured")
		}

		body, err := c.post(ctx, "/v2/usage", url.Values{})
		if err != nil {
			return nil, err
		}

		var usage Usage
		if err := json.Unmarshal(body, &usage); err != nil {
			return nil, wrapError(KindProvider, "cannot parse usage response", err)
		}
		return &usage, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Usage), nil
}

// post sends a form-encoded request and maps HTTP failures onto the error
// taxonomy. Returns the raw response body on 2xx.
func (c *DeepLClient) post(ctx context.Context, path string, form url.Values) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, wrapError(KindTransport, "cannot build request", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Authorization", "DeepL-Auth-Key "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, wrapError(KindTransport, "request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapError(KindTransport, "cannot read response", err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, newError(KindAuthFailed, "credential rejected by provider")
	case resp.StatusCode == 456:
		// DeepL-specific status: character quota for the billing period spent.
		return nil, newError(KindQuotaExceeded, "provider character quota exceeded")
	default:
		return nil, newError(KindProvider, fmt.Sprintf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}
}

// deeplTargetLang converts an ISO 639-1 code to the form DeepL expects as
// a translation target. Codes DeepL splits by region get a concrete
// default variant.
func deeplTargetLang(code string) string {
	mapping := map[string]string{
		"en": "EN-US",
		"pt": "PT-BR",
	}
	if mapped, ok := mapping[strings.ToLower(code)]; ok {
		return mapped
	}
	return strings.ToUpper(code)
}

// deeplSourceLang converts an ISO 639-1 code for the source side, which
// takes plain codes only, never regional variants.
func deeplSourceLang(code string) string {
	base, _, _ := strings.Cut(code, "-")
	return strings.ToUpper(base)
}
