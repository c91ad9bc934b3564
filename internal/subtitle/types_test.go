package subtitle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalChars_CountsCodePointsNotBytes(t *testing.T) {
	doc := &Document{Cues: []Cue{
		{Text: "Hello"},
		// 5 code points, 15 bytes
		{Text: "こんにちは"},
		// newline counts as a code point
		{Text: "a\nb"},
	}}

	assert.Equal(t, 13, doc.TotalChars())
}

func TestTotalChars_EmptyDocument(t *testing.T) {
	assert.Equal(t, 0, (&Document{}).TotalChars())
}

func TestTexts_PreservesOrder(t *testing.T) {
	doc := &Document{Cues: []Cue{{Text: "one"}, {Text: "two"}, {Text: "three"}}}
	assert.Equal(t, []string{"one", "two", "three"}, doc.Texts())
}

func TestTimestamp_Ordering(t *testing.T) {
	a := Timestamp{Hours: 0, Minutes: 59, Seconds: 59, Milliseconds: 999}
	b := Timestamp{Hours: 1}

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))
}

func TestTimestamp_String(t *testing.T) {
	ts := Timestamp{Hours: 1, Minutes: 2, Seconds: 3, Milliseconds: 45}
	assert.Equal(t, "01:02:03,045", ts.String())
}

func TestCueValidate(t *testing.T) {
	valid := Cue{Start: Timestamp{Seconds: 1}, End: Timestamp{Seconds: 2}}
	assert.NoError(t, valid.Validate())

	equalTimes := Cue{Start: Timestamp{Seconds: 1}, End: Timestamp{Seconds: 1}}
	assert.NoError(t, equalTimes.Validate())

	reversed := Cue{Start: Timestamp{Seconds: 2}, End: Timestamp{Seconds: 1}}
	assert.Error(t, reversed.Validate())

	badSeconds := Cue{Start: Timestamp{Seconds: 60}, End: Timestamp{Minutes: 2}}
	assert.Error(t, badSeconds.Validate())
}
