package progress

import "sort"

// DefaultPatterns is the catalog of design pattern tags offered on the
// reasoning stage, in display order.
var DefaultPatterns = []string{
	"Efficiency", "Accessibility", "Sustainability", "User Control",
	"Clarity", "Consistency", "Feedback", "Aesthetics", "Simplicity",
	"Flexibility", "Recovery", "Familiarity", "Progressive Disclosure",
}

// PatternSet is a set of selected pattern tags. The zero value is empty and
// ready to use; methods return new sets rather than mutating.
type PatternSet struct {
	tags map[string]struct{}
}

// NewPatternSet returns a set holding tags.
func NewPatternSet(tags ...string) PatternSet {
	ps := PatternSet{tags: make(map[string]struct{}, len(tags))}
	for _, t := range tags {
		ps.tags[t] = struct{}{}
	}
	return ps
}

// Toggle adds tag if absent and removes it if present.
func (ps PatternSet) Toggle(tag string) PatternSet {
	next := NewPatternSet(ps.List()...)
	if _, ok := next.tags[tag]; ok {
		delete(next.tags, tag)
	} else {
		next.tags[tag] = struct{}{}
	}
	return next
}

// Has reports whether tag is selected.
func (ps PatternSet) Has(tag string) bool {
	_, ok := ps.tags[tag]
	return ok
}

// Len returns the number of selected tags.
func (ps PatternSet) Len() int { return len(ps.tags) }

// List returns the selected tags sorted alphabetically.
func (ps PatternSet) List() []string {
	out := make([]string, 0, len(ps.tags))
	for t := range ps.tags {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
