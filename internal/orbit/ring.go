package orbit

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownRing indicates an item or toggle references a ring that is not configured.
var ErrUnknownRing = errors.New("unknown ring")

// Ring is the configuration of one orbit.
type Ring struct {
	ID        int     `toml:"id"`
	Name      string  `toml:"name"`
	Color     string  `toml:"color"`
	Radius    float64 `toml:"radius"`
	DotRadius float64 `toml:"dot_radius"`
	Delta     float64 `toml:"delta"` // degrees per tick; the sign is the direction
}

// Rings is an ordered ring configuration.
type Rings []Ring

// DefaultRings returns the three stage rings. Direction alternates so that
// neighbouring rings counter-rotate.
func DefaultRings() Rings {
	return Rings{
		{ID: 1, Name: "Empatia", Color: "#7CC9E8", Radius: 240, DotRadius: 8, Delta: 0.03},
		{ID: 2, Name: "Rozumowanie", Color: "#4c956c", Radius: 400, DotRadius: 8, Delta: -0.02},
		{ID: 3, Name: "Materializacja", Color: "#d68c45", Radius: 560, DotRadius: 8, Delta: 0.015},
	}
}

// Get returns the ring with the given id.
func (rs Rings) Get(id int) (Ring, bool) {
	for _, r := range rs {
		if r.ID == id {
			return r, true
		}
	}
	return Ring{}, false
}

// IDs returns ring ids in ascending order.
func (rs Rings) IDs() []int {
	ids := make([]int, 0, len(rs))
	for _, r := range rs {
		ids = append(ids, r.ID)
	}
	sort.Ints(ids)
	return ids
}

// MaxRadius returns the largest configured radius, or 0.
func (rs Rings) MaxRadius() float64 {
	var m float64
	for _, r := range rs {
		if r.Radius > m {
			m = r.Radius
		}
	}
	return m
}

// Rotation maps ring id to the current offset in degrees, always in [0,360).
type Rotation map[int]float64

// NewRotation returns a zeroed rotation for every ring.
func NewRotation(rings Rings) Rotation {
	rot := make(Rotation, len(rings))
	for _, r := range rings {
		rot[r.ID] = 0
	}
	return rot
}

// Advance returns a new rotation with every ring moved by its delta once.
// Rings missing from rot start at 0. The receiver is not modified.
func (rot Rotation) Advance(rings Rings) Rotation {
	next := make(Rotation, len(rot))
	for id, v := range rot {
		next[id] = v
	}
	for _, r := range rings {
		next[r.ID] = Wrap(next[r.ID] + r.Delta)
	}
	return next
}

// AdvanceN applies n ticks. It is equivalent to n calls to Advance.
func (rot Rotation) AdvanceN(rings Rings, n int) Rotation {
	out := rot.Advance(nil)
	for i := 0; i < n; i++ {
		out = out.Advance(rings)
	}
	return out
}

// ActiveRings is the set of rings currently shown. It is never empty.
type ActiveRings struct {
	set map[int]struct{}
}

// NewActiveRings returns a set containing only the first ring.
func NewActiveRings() ActiveRings {
	return ActiveRings{set: map[int]struct{}{1: {}}}
}

// ActiveFrom builds a set from ids. An empty list yields the default {1}.
func ActiveFrom(ids ...int) ActiveRings {
	if len(ids) == 0 {
		return NewActiveRings()
	}
	a := ActiveRings{set: make(map[int]struct{}, len(ids))}
	for _, id := range ids {
		a.set[id] = struct{}{}
	}
	return a
}

// Has reports whether ring id is active.
func (a ActiveRings) Has(id int) bool {
	_, ok := a.set[id]
	return ok
}

// Len returns the number of active rings.
func (a ActiveRings) Len() int { return len(a.set) }

// List returns the active ids in ascending order.
func (a ActiveRings) List() []int {
	ids := make([]int, 0, len(a.set))
	for id := range a.set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Toggle flips ring id and returns the new set along with whether anything
// changed. Removing the last active ring is refused.
func (a ActiveRings) Toggle(id int) (ActiveRings, bool) {
	next := ActiveRings{set: make(map[int]struct{}, len(a.set)+1)}
	for k := range a.set {
		next.set[k] = struct{}{}
	}
	if _, ok := next.set[id]; ok {
		if len(next.set) == 1 {
			return a, false
		}
		delete(next.set, id)
		return next, true
	}
	next.set[id] = struct{}{}
	return next, true
}

// Filter returns the items whose ring is active, in input order.
func (a ActiveRings) Filter(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if a.Has(it.Ring) {
			out = append(out, it)
		}
	}
	return out
}

// String renders the set as "[1 3]".
func (a ActiveRings) String() string {
	return fmt.Sprint(a.List())
}
