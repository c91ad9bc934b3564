// Package quota classifies a subtitle document's character volume against
// the translation provider's character limit. It is a local pre-check: the
// provider still enforces its own quota server-side.
package quota

import "github.com/subtitletools/srt-translator/internal/subtitle"

// Verdict is the outcome of classifying a document against a limit.
type Verdict int

const (
	VerdictEmpty Verdict = iota
	VerdictOk
	VerdictExceeded
)

func (v Verdict) String() string {
	switch v {
	case VerdictEmpty:
		return "Empty"
	case VerdictOk:
		return "Ok"
	case VerdictExceeded:
		return "Exceeded"
	default:
		return "Unknown"
	}
}

// Status is the derived quota state of one document. It is recomputed
// whenever the document changes and never persisted.
type Status struct {
	TotalChars int
	Limit      int
	Verdict    Verdict
}

// Classify computes the document's total character count and classifies it
// against limit. Empty when there is nothing to translate (zero cues or
// all-blank text), Exceeded when the count is strictly above the limit.
func Classify(doc *subtitle.Document, limit int) Status {
	total := doc.TotalChars()

	status := Status{
		TotalChars: total,
		Limit:      limit,
	}

	switch {
	case total == 0:
		status.Verdict = VerdictEmpty
	case total > limit:
		status.Verdict = VerdictExceeded
	default:
		status.Verdict = VerdictOk
	}

	return status
}
