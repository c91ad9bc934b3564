package subtitle

import (
	"fmt"
	"strings"
)

// Serialize renders the document back to SRT text.
//
// Indices are re-numbered 1..N in document order regardless of what the
// source carried. Each block is index line, time line, text, then a blank
// line. Validation failures here mean a cue was constructed outside the
// codec with broken timing; the parser never produces one.
func Serialize(doc *Document) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("document is nil")
	}

	var b strings.Builder
	for i, cue := range doc.Cues {
		cue.Index = i + 1
		if err := cue.Validate(); err != nil {
			return "", err
		}

		fmt.Fprintf(&b, "%d\n", cue.Index)
		fmt.Fprintf(&b, "%s --> %s\n", cue.Start, cue.End)
		fmt.Fprintf(&b, "%s\n\n", cue.Text)
	}

	return b.String(), nil
}
