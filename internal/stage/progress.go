package stage

// UnlockThreshold is the progress a stage needs before its successor opens.
const UnlockThreshold = 50

// ProgressMap holds completion percentages for the working stages.
// Missing stages read as 0.
type ProgressMap map[Stage]int

// Clamp bounds v to [0,100].
func Clamp(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}

// Get returns the stored percentage for s, or 0.
func (p ProgressMap) Get(s Stage) int {
	return p[s]
}

// Clone returns an independent copy.
func (p ProgressMap) Clone() ProgressMap {
	out := make(ProgressMap, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Accessible applies the unlock rule to s given this progress. Stages outside
// the closed set are never accessible.
func (p ProgressMap) Accessible(s Stage) bool {
	if !s.Valid() {
		return false
	}
	prereq, ok := s.Requires()
	if !ok {
		return true
	}
	return p.Get(prereq) >= UnlockThreshold
}
