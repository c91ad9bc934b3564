// Package session orchestrates one subtitle translation lifecycle: load
// raw SRT text, gate it against the character quota, translate it in one
// batch, and serialize the result back to SRT.
package session

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/subtitletools/srt-translator/internal/quota"
	"github.com/subtitletools/srt-translator/internal/store"
	"github.com/subtitletools/srt-translator/internal/subtitle"
	"github.com/subtitletools/srt-translator/internal/translator"
	"github.com/subtitletools/srt-translator/pkg/log"
)

// State is the session lifecycle state.
type State int

const (
	// StateIdle means no document is loaded.
	StateIdle State = iota
	// StateLoaded means a document is present, translated or not.
	StateLoaded
	// StateTranslating means a provider call is in flight.
	StateTranslating
	// StateSaving means a serialize is in progress.
	StateSaving
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateLoaded:
		return "Loaded"
	case StateTranslating:
		return "Translating"
	case StateSaving:
		return "Saving"
	default:
		return "Unknown"
	}
}

// Session owns exactly one subtitle document at a time and drives it
// through the translation lifecycle. It is not safe for concurrent use:
// the owning caller must serialize operations on a given instance.
type Session struct {
	id         uuid.UUID
	translator translator.Translator
	creds      store.Store
	quotaLimit int

	state  State
	doc    *subtitle.Document
	status quota.Status
}

// New creates an idle session. quotaLimit is the local character ceiling
// documents are gated against before any provider call.
func New(trans translator.Translator, creds store.Store, quotaLimit int) *Session {
	return &Session{
		id:         uuid.New(),
		translator: trans,
		creds:      creds,
		quotaLimit: quotaLimit,
		state:      StateIdle,
	}
}

func (s *Session) reset() {
	s.doc = nil
	s.status = quota.Status{}
	s.state = StateIdle
}

// ID returns the session's correlation identifier.
func (s *Session) ID() string {
	return s.id.String()
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Quota returns the quota status of the current document. Zero value when
// no document is loaded.
func (s *Session) Quota() quota.Status {
	return s.status
}

// Document returns the currently loaded document, or nil when idle.
func (s *Session) Document() *subtitle.Document {
	return s.doc
}

// Load parses raw SRT text and replaces the current document wholesale.
// On parse or validation failure any previous document is discarded and
// the session is left idle.
func (s *Session) Load(raw string) error {
	doc, err := subtitle.Parse(raw)
	if err != nil {
		s.reset()
		return wrapError(ErrMalformedSubtitle, "cannot parse subtitle input", err)
	}

	// Enforce the timing invariants here so that an invalid document can
	// never reach Loaded and spend provider quota; serialize's own check
	// is then unreachable for session-held documents.
	for _, cue := range doc.Cues {
		if err := cue.Validate(); err != nil {
			s.reset()
			return wrapError(ErrInvalidTimestamp, "subtitle timing is invalid", err)
		}
	}

	s.doc = doc
	s.status = quota.Classify(doc, s.quotaLimit)
	s.state = StateLoaded

	log.Info("session %s: loaded %d cues, %d chars (verdict %s)",
		s.id, len(doc.Cues), s.status.TotalChars, s.status.Verdict)
	return nil
}

// Translate sends the document's texts through the provider in one batch
// and replaces each cue's text with the result at the same position.
// Timing and indices are never touched. On any failure the document is
// exactly as it was before the call, so retrying is always safe.
//
// Preconditions are checked in order, first failure wins: document
// present, credential present, quota verdict Ok, target language set.
func (s *Session) Translate(ctx context.Context, sourceLang, targetLang string) error {
	if s.doc == nil {
		return newError(ErrNoDocument, "no subtitle document is loaded")
	}

	cred, ok, err := s.creds.Get(store.KeyAPIKey)
	if err != nil {
		return wrapError(ErrMissingCredential, "cannot read provider credential", err)
	}
	if !ok || cred == "" {
		return newError(ErrMissingCredential, "provider credential is not configured")
	}

	// The quota gate runs again at call time, not just at load: the
	// verdict must hold for the document about to go on the wire.
	s.status = quota.Classify(s.doc, s.quotaLimit)
	switch s.status.Verdict {
	case quota.VerdictEmpty:
		return newError(ErrEmptyDocument, "document contains no translatable text")
	case quota.VerdictExceeded:
		return newError(ErrQuotaExceeded, "document exceeds the character limit").
			WithContext("total_chars", s.status.TotalChars).
			WithContext("limit", s.status.Limit)
	}

	if targetLang == "" {
		return newError(ErrMissingTargetLanguage, "target language is required")
	}

	src := sourceLang
	if src == "" {
		if detected := subtitle.DetectLanguage(s.doc); detected != language.Und {
			src = detected.String()
			log.Info("session %s: detected source language %s", s.id, src)
		}
	}

	s.state = StateTranslating
	translated, err := s.translator.TranslateBatch(ctx, translator.Request{
		Texts:      s.doc.Texts(),
		SourceLang: src,
		TargetLang: targetLang,
	})
	s.state = StateLoaded
	if err != nil {
		return wrapError(ErrTranslation, "provider call failed", err)
	}
	if len(translated) != len(s.doc.Cues) {
		// Translator contract violation; do not apply anything.
		return newError(ErrTranslation, "provider returned a different number of texts")
	}

	for i := range s.doc.Cues {
		s.doc.Cues[i].Text = translated[i]
	}
	s.status = quota.Classify(s.doc, s.quotaLimit)

	log.Info("session %s: translated %d cues to %s", s.id, len(s.doc.Cues), targetLang)
	return nil
}

// Serialize renders the current document to SRT text for the caller to
// persist. The document itself is not modified. Valid whether or not a
// translation has happened; an untranslated load round-trips its input.
func (s *Session) Serialize() (string, error) {
	if s.doc == nil {
		return "", newError(ErrNoDocument, "no subtitle document is loaded")
	}

	s.state = StateSaving
	out, err := subtitle.Serialize(s.doc)
	s.state = StateLoaded
	if err != nil {
		return "", wrapError(ErrInvalidTimestamp, "document failed validation", err)
	}
	return out, nil
}
