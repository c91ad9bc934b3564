package subtitle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SingleCue(t *testing.T) {
	doc, err := Parse("1\n00:00:01,000 --> 00:00:02,500\nHello\n\n")
	require.NoError(t, err)
	require.Len(t, doc.Cues, 1)

	cue := doc.Cues[0]
	assert.Equal(t, 1, cue.Index)
	assert.Equal(t, Timestamp{Hours: 0, Minutes: 0, Seconds: 1, Milliseconds: 0}, cue.Start)
	assert.Equal(t, Timestamp{Hours: 0, Minutes: 0, Seconds: 2, Milliseconds: 500}, cue.End)
	assert.Equal(t, "Hello", cue.Text)
	assert.Equal(t, 5, doc.TotalChars())
}

func TestParse_MultipleCuesAndMultilineText(t *testing.T) {
	raw := "1\n00:00:01,000 --> 00:00:02,000\nFirst line\nSecond line\n\n" +
		"2\n00:00:03,000 --> 00:00:04,000\nSecond cue\n\n"

	doc, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, doc.Cues, 2)
	assert.Equal(t, "First line\nSecond line", doc.Cues[0].Text)
	assert.Equal(t, "Second cue", doc.Cues[1].Text)
}

func TestParse_CRLFInput(t *testing.T) {
	raw := "1\r\n00:00:01,000 --> 00:00:02,000\r\nHello\r\n\r\n"

	doc, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, doc.Cues, 1)
	assert.Equal(t, "Hello", doc.Cues[0].Text)
}

func TestParse_TolerantOfExtraBlankLines(t *testing.T) {
	raw := "\n\n1\n00:00:01,000 --> 00:00:02,000\nHello\n\n\n\n" +
		"2\n00:00:03,000 --> 00:00:04,000\nWorld\n\n\n"

	doc, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, doc.Cues, 2)
}

func TestParse_NoTrailingBlankLine(t *testing.T) {
	doc, err := Parse("1\n00:00:01,000 --> 00:00:02,000\nHello")
	require.NoError(t, err)
	require.Len(t, doc.Cues, 1)
	assert.Equal(t, "Hello", doc.Cues[0].Text)
}

func TestParse_EmptyInputIsValidEmptyDocument(t *testing.T) {
	doc, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, doc.Cues)
	assert.Equal(t, 0, doc.TotalChars())
}

func TestParse_PreservesSourceOrder(t *testing.T) {
	// Cues out of timestamp order stay in source order.
	raw := "1\n00:00:10,000 --> 00:00:11,000\nLater\n\n" +
		"2\n00:00:01,000 --> 00:00:02,000\nEarlier\n\n"

	doc, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, doc.Cues, 2)
	assert.Equal(t, "Later", doc.Cues[0].Text)
	assert.Equal(t, "Earlier", doc.Cues[1].Text)
}

func TestParse_InputIndicesIgnoredForAddressing(t *testing.T) {
	raw := "7\n00:00:01,000 --> 00:00:02,000\nHello\n\n" +
		"3\n00:00:03,000 --> 00:00:04,000\nWorld\n\n"

	doc, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, doc.Cues, 2)

	out, err := Serialize(doc)
	require.NoError(t, err)
	reparsed, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, 1, reparsed.Cues[0].Index)
	assert.Equal(t, 2, reparsed.Cues[1].Index)
}

func TestParse_LongHours(t *testing.T) {
	doc, err := Parse("1\n100:00:01,000 --> 100:00:02,000\nMarathon\n\n")
	require.NoError(t, err)
	assert.Equal(t, 100, doc.Cues[0].Start.Hours)
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantLine int
	}{
		{
			name:     "index line not a number",
			raw:      "abc\n00:00:01,000 --> 00:00:02,000\nHello\n\n",
			wantLine: 1,
		},
		{
			name:     "index line negative",
			raw:      "-1\n00:00:01,000 --> 00:00:02,000\nHello\n\n",
			wantLine: 1,
		},
		{
			name:     "index line zero",
			raw:      "0\n00:00:01,000 --> 00:00:02,000\nHello\n\n",
			wantLine: 1,
		},
		{
			name:     "timestamp line cannot be split",
			raw:      "1\n00:00:01,000 -> 00:00:02,000\nHello\n\n",
			wantLine: 2,
		},
		{
			name:     "timestamp line is text",
			raw:      "1\nHello there\nHello\n\n",
			wantLine: 2,
		},
		{
			name:     "missing timestamp line at EOF",
			raw:      "1\n",
			wantLine: 1,
		},
		{
			name:     "blank line where timestamp expected",
			raw:      "1\n\n00:00:01,000 --> 00:00:02,000\nHello\n\n",
			wantLine: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.raw)
			require.Error(t, err)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.wantLine, parseErr.Line)
		})
	}
}
