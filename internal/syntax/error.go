package syntax

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// SyntaxError is returned by Parse. Offset is the byte offset of the token
// that triggered it, and Found is that token's text.
type SyntaxError struct {
	Msg    string
	Offset int
	Found  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d: %s, found %s", e.Offset, e.Msg, e.Found)
}

// Show renders the pattern with a caret under the offending position. When
// color is set the caret line is highlighted with ANSI escapes.
func (e *SyntaxError) Show(pattern string, color bool) string {
	var sb strings.Builder
	if color {
		fmt.Fprintf(&sb, "syntax error: \033[31;1m%s\033[m (found %s)\n", e.Msg, e.Found)
	} else {
		fmt.Fprintf(&sb, "syntax error: %s (found %s)\n", e.Msg, e.Found)
	}
	sb.WriteString("  ")
	sb.WriteString(pattern)
	sb.WriteString("\n  ")
	off := e.Offset
	if off > len(pattern) {
		off = len(pattern)
	}
	sb.WriteString(strings.Repeat(" ", utf8.RuneCountInString(pattern[:off])))
	if color {
		sb.WriteString("\033[31;1m^\033[m")
	} else {
		sb.WriteByte('^')
	}
	return sb.String()
}

func errorf(tok token, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...), Offset: tok.off, Found: quoteToken(tok)}
}

func quoteToken(tok token) string {
	if tok.typ == tEOF {
		return tok.String()
	}
	return fmt.Sprintf("%q", tok.raw)
}
