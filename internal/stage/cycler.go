package stage

// Cycler rotates a highlight through the three working stages. The home page
// advances it on a fixed interval; it wraps modulo the number of stages.
type Cycler struct {
	index int
}

// Index returns the current position in [0,3).
func (c Cycler) Index() int { return c.index }

// Stage returns the highlighted working stage.
func (c Cycler) Stage() Stage {
	return Process()[c.index]
}

// Advance moves the highlight one step forward.
func (c Cycler) Advance() Cycler {
	c.index = (c.index + 1) % len(Process())
	return c
}
