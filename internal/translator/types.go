package translator

import "context"

// Request is one batch translation submission. Texts are independent
// strings translated in order; results are rejoined positionally, so order
// must be preserved end-to-end.
type Request struct {
	Texts      []string
	SourceLang string // optional; empty lets the provider detect
	TargetLang string
}

// Usage is the provider-side consumption report for the active credential.
type Usage struct {
	CharacterCount int64 `json:"character_count"`
	CharacterLimit int64 `json:"character_limit"`
}

// Translator is the capability interface to a remote translation provider.
//
// TranslateBatch is atomic from the caller's perspective: either all texts
// come back translated, same length and order as the request, or the call
// fails and nothing is applied. Failures are classified as *ClientError.
type Translator interface {
	TranslateBatch(ctx context.Context, req Request) ([]string, error)
}
