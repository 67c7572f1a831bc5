// Package ansi provides ANSI escape code constants and helpers for terminal output.
// All colored/styled terminal output should reference these constants to avoid duplication.
package ansi

import (
	"fmt"
	"regexp"
	"strings"
)

// ANSI SGR (Select Graphic Rendition) codes.
const (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	Dim     = "\033[2m"
	Blue    = "\033[34m"
	Yellow  = "\033[33m"
	Green   = "\033[32m"
	Red     = "\033[31m"
	Cyan    = "\033[36m"
	Magenta = "\033[35m"
)

// ANSI cursor and line control codes.
const (
	// ClearLine clears the entire current line.
	ClearLine = "\033[2K"

	// CursorUpFmt is a format string for moving the cursor up N lines.
	CursorUpFmt = "\033[%dA"
)

var csi = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

// CursorUp returns an ANSI escape sequence to move the cursor up n lines.
func CursorUp(n int) string {
	return fmt.Sprintf(CursorUpFmt, n)
}

// Rewind returns the sequence that erases the previous n lines and leaves
// the cursor at the start of the first of them, so a frame can be redrawn
// in place. It returns "" for n <= 0.
func Rewind(n int) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString(CursorUp(1))
		b.WriteString(ClearLine)
	}
	b.WriteString("\r")
	return b.String()
}

// Strip removes CSI escape sequences from s.
func Strip(s string) string {
	return csi.ReplaceAllString(s, "")
}
