package parse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var ErrParse = errors.New("parse error")

// Side tags a parse failure with the input it came from so a host can
// route the error to the matching panel.
type Side string

const (
	Left  Side = "LEFT"
	Right Side = "RIGHT"
)

// Error is one side's parse failure.  Line is 1-based, 0 when the
// position is unknown.
type Error struct {
	Side    Side   `json:"side"`
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("[%s] %s at line %d", e.Side, e.Message, e.Line)
	}
	return fmt.Sprintf("[%s] %s", e.Side, e.Message)
}

func (e *Error) Unwrap() error {
	return ErrParse
}

// Errors collects the failures of both sides; parsing of each side is
// independent, so it holds at most one entry per side.
type Errors []*Error

func (es Errors) Error() string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

func (es Errors) Unwrap() error {
	return ErrParse
}

// goccy renders syntax errors with a leading "[line:column]" marker.
// The library does not export a stable structured error type across
// versions, so the marker is recovered from the rendered message.
var errPosRE = regexp.MustCompile(`\[(\d+):(\d+)\]\s*`)

func sideError(side Side, err error) *Error {
	msg := err.Error()
	line := 0
	if loc := errPosRE.FindStringSubmatchIndex(msg); loc != nil {
		line, _ = strconv.Atoi(msg[loc[2]:loc[3]])
		msg = msg[:loc[0]] + msg[loc[1]:]
	}
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		msg = msg[:i]
	}
	return &Error{Side: side, Message: strings.TrimSpace(msg), Line: line}
}
