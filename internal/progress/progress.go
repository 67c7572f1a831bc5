// Package progress derives stage completion percentages from what the user
// has typed and selected. The calculators are pure; the navigator only sees
// their results.
package progress

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// MinFieldLength is the number of characters a field must exceed to count.
const MinFieldLength = 10

// MinPatterns is how many pattern tags the reasoning stage needs.
const MinPatterns = 3

// Percentage returns floor(completed/total*100), or 0 when total is not positive.
func Percentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	if completed < 0 {
		completed = 0
	}
	if completed > total {
		completed = total
	}
	return completed * 100 / total
}

// Filled reports whether s, trimmed, is longer than MinFieldLength characters.
func Filled(s string) bool {
	return longEnough(strings.TrimSpace(s))
}

// longEnough counts every character of s, surrounding whitespace included.
func longEnough(s string) bool {
	return utf8.RuneCountInString(norm.NFC.String(s)) > MinFieldLength
}

// EmpathyInput is the free text collected on the empathy stage.
type EmpathyInput struct {
	Listening string
	Observing string
	Engaging  string
}

// Completed counts the filled fields.
func (in EmpathyInput) Completed() int {
	n := 0
	for _, f := range []string{in.Listening, in.Observing, in.Engaging} {
		if Filled(f) {
			n++
		}
	}
	return n
}

// Empathy returns the empathy stage percentage.
func Empathy(in EmpathyInput) int {
	return Percentage(in.Completed(), 3)
}

// ReasoningInput is the state of the reasoning stage.
type ReasoningInput struct {
	Synthesis string
	Insights  string
	Patterns  PatternSet
}

// Completed counts satisfied conditions: synthesis, insights, and enough patterns.
// Unlike the empathy fields, reasoning text is counted untrimmed.
func (in ReasoningInput) Completed() int {
	n := 0
	if longEnough(in.Synthesis) {
		n++
	}
	if longEnough(in.Insights) {
		n++
	}
	if in.Patterns.Len() >= MinPatterns {
		n++
	}
	return n
}

// Reasoning returns the reasoning stage percentage.
func Reasoning(in ReasoningInput) int {
	return Percentage(in.Completed(), 3)
}
