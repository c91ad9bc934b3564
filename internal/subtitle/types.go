package subtitle

import (
	"fmt"
	"unicode/utf8"
)

// Timestamp is an SRT timecode with millisecond precision.
// Hours has no upper bound; recordings longer than 99h are legal.
type Timestamp struct {
	Hours        int
	Minutes      int
	Seconds      int
	Milliseconds int
}

// TotalMilliseconds converts the timestamp to milliseconds since zero.
func (t Timestamp) TotalMilliseconds() int {
	return ((t.Hours*60+t.Minutes)*60+t.Seconds)*1000 + t.Milliseconds
}

// Before reports whether t comes strictly before other.
func (t Timestamp) Before(other Timestamp) bool {
	return t.TotalMilliseconds() < other.TotalMilliseconds()
}

func (t Timestamp) valid() bool {
	return t.Hours >= 0 &&
		t.Minutes >= 0 && t.Minutes <= 59 &&
		t.Seconds >= 0 && t.Seconds <= 59 &&
		t.Milliseconds >= 0 && t.Milliseconds <= 999
}

// String formats the timestamp in SRT form: HH:MM:SS,mmm
func (t Timestamp) String() string {
	return fmt.Sprintf("%02d:%02d:%02d,%03d", t.Hours, t.Minutes, t.Seconds, t.Milliseconds)
}

// Cue represents a single timed subtitle entry
type Cue struct {
	Index int       // 1-based sequence position, re-derived on serialize
	Start Timestamp // display start time
	End   Timestamp // display end time
	Text  string    // subtitle text, may contain embedded newlines
}

// InvalidTimestampError reports a cue whose timing violates the data model.
type InvalidTimestampError struct {
	Index  int
	Reason string
}

func (e *InvalidTimestampError) Error() string {
	return fmt.Sprintf("cue %d: invalid timestamp: %s", e.Index, e.Reason)
}

// Validate checks the cue's timing invariants: field ranges and Start <= End.
func (c Cue) Validate() error {
	if !c.Start.valid() {
		return &InvalidTimestampError{Index: c.Index, Reason: fmt.Sprintf("start time %s out of range", c.Start)}
	}
	if !c.End.valid() {
		return &InvalidTimestampError{Index: c.Index, Reason: fmt.Sprintf("end time %s out of range", c.End)}
	}
	if c.End.Before(c.Start) {
		return &InvalidTimestampError{Index: c.Index, Reason: fmt.Sprintf("start %s after end %s", c.Start, c.End)}
	}
	return nil
}

// Document is an ordered subtitle document. Order is display order as it
// appeared in the source, not necessarily sorted by timestamp. A document
// with zero cues is valid.
type Document struct {
	Cues []Cue
}

// TotalChars returns the translatable volume of the document as a count of
// UTF-8 code points, not bytes. Providers bill by characters, so multi-byte
// text must not be over-counted.
func (d *Document) TotalChars() int {
	total := 0
	for _, cue := range d.Cues {
		total += utf8.RuneCountInString(cue.Text)
	}
	return total
}

// Texts returns the cue texts in document order.
func (d *Document) Texts() []string {
	texts := make([]string, len(d.Cues))
	for i, cue := range d.Cues {
		texts[i] = cue.Text
	}
	return texts
}
