package subtitle

import (
	"bufio"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ParseError reports a malformed subtitle input with the offending
// 1-based line number.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed subtitle at line %d: %s", e.Line, e.Message)
}

// SRT time line: 00:02:16,612 --> 00:02:19,376
// Hours may exceed two digits.
var srtTimeRe = regexp.MustCompile(`^(\d{2,}):(\d{2}):(\d{2}),(\d{3}) --> (\d{2,}):(\d{2}):(\d{2}),(\d{3})$`)

// Parse reads raw SRT text into a Document.
//
// Blocks are separated by one or more blank lines; each block is an index
// line, a "start --> end" time line, then the text lines. CRLF input and
// trailing blank lines are tolerated. Index values in the input are
// required to be positive integers but are otherwise ignored: addressing
// is positional and indices are re-derived on serialize.
func Parse(raw string) (*Document, error) {
	scanner := bufio.NewScanner(strings.NewReader(raw))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var cues []Cue

	current := Cue{}
	state := "index" // possible values: "index", "time", "text"
	var textLines []string
	lineNo := 0

	flush := func() {
		current.Text = strings.Join(textLines, "\n")
		cues = append(cues, current)
		current = Cue{}
		textLines = nil
	}

	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")

		switch state {
		case "index":
			if strings.TrimSpace(line) == "" {
				continue
			}
			index, err := strconv.Atoi(strings.TrimSpace(line))
			if err != nil || index <= 0 {
				return nil, &ParseError{Line: lineNo, Message: fmt.Sprintf("expected positive cue index, got %q", line)}
			}
			current.Index = index
			state = "time"

		case "time":
			if strings.TrimSpace(line) == "" {
				return nil, &ParseError{Line: lineNo, Message: "cue is missing its timestamp line"}
			}
			start, end, err := parseTimeLine(strings.TrimSpace(line))
			if err != nil {
				return nil, &ParseError{Line: lineNo, Message: err.Error()}
			}
			current.Start = start
			current.End = end
			state = "text"
			textLines = nil

		case "text":
			if strings.TrimSpace(line) == "" {
				flush()
				state = "index"
			} else {
				textLines = append(textLines, line)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Line: lineNo, Message: err.Error()}
	}

	switch state {
	case "time":
		return nil, &ParseError{Line: lineNo, Message: "cue is missing its timestamp line"}
	case "text":
		flush()
	}

	return &Document{Cues: cues}, nil
}

// parseTimeLine splits an SRT time line into start and end timestamps.
func parseTimeLine(line string) (Timestamp, Timestamp, error) {
	matches := srtTimeRe.FindStringSubmatch(line)
	if len(matches) != 9 {
		return Timestamp{}, Timestamp{}, fmt.Errorf("cannot split %q into start --> end", line)
	}

	parseStamp := func(hours, minutes, seconds, milliseconds string) Timestamp {
		h, _ := strconv.Atoi(hours)
		m, _ := strconv.Atoi(minutes)
		s, _ := strconv.Atoi(seconds)
		ms, _ := strconv.Atoi(milliseconds)
		return Timestamp{Hours: h, Minutes: m, Seconds: s, Milliseconds: ms}
	}

	start := parseStamp(matches[1], matches[2], matches[3], matches[4])
	end := parseStamp(matches[5], matches[6], matches[7], matches[8])
	return start, end, nil
}
