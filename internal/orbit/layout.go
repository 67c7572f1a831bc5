// Package orbit places labelled items on concentric rotating rings. It is the
// geometry behind the process presentation: each ring turns at its own speed
// and every item keeps a fixed base angle on its ring.
package orbit

import (
	"math"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Label sizing constants, in layout units (pixels in the window renderer).
const (
	LabelMinWidth  = 100
	LabelMaxWidth  = 280
	LabelCharWidth = 7
	LabelPadding   = 40

	// MarkerInset is how far a marker sits inside its label, toward the center.
	MarkerInset = 20
)

// Point is a 2D offset from the common center. Y grows downward, matching
// screen coordinates.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Item is one label on a ring.
type Item struct {
	Ring       int     `toml:"ring"`
	Angle      float64 `toml:"angle"` // base angle in degrees, [0,360)
	Text       string  `toml:"text"`
	Color      string  `toml:"color"`
	Background string  `toml:"background"`
	Border     string  `toml:"border"`
}

// Placement is the computed screen position of one item.
type Placement struct {
	Item       Item
	Angle      float64 // effective angle in degrees
	Label      Point
	Marker     Point
	LabelWidth int
}

// Place computes where item lands given the current ring rotations.
// A ring with no rotation entry is treated as not yet animated (offset 0);
// a ring with no configuration collapses onto the center.
func Place(item Item, rot Rotation, rings Rings) Placement {
	angle := Wrap(item.Angle + rot[item.Ring])
	theta := angle * math.Pi / 180

	var radius float64
	if r, ok := rings.Get(item.Ring); ok {
		radius = r.Radius
	}

	cos, sin := math.Cos(theta), math.Sin(theta)
	label := Point{X: radius / 2 * cos, Y: radius / 2 * sin}
	offset := Point{X: -MarkerInset * cos, Y: -MarkerInset * sin}

	return Placement{
		Item:       item,
		Angle:      angle,
		Label:      label,
		Marker:     label.Add(offset),
		LabelWidth: LabelWidth(item.Text),
	}
}

// Layout places every item whose ring is active, preserving input order.
func Layout(items []Item, rot Rotation, rings Rings, active ActiveRings) []Placement {
	visible := active.Filter(items)
	out := make([]Placement, 0, len(visible))
	for _, it := range visible {
		out = append(out, Place(it, rot, rings))
	}
	return out
}

// LabelWidth sizes a label box from its text length without measuring
// rendered glyphs: max(100, runes*7+40), capped at 280.
func LabelWidth(text string) int {
	n := utf8.RuneCountInString(norm.NFC.String(text))
	w := n*LabelCharWidth + LabelPadding
	if w < LabelMinWidth {
		w = LabelMinWidth
	}
	if w > LabelMaxWidth {
		w = LabelMaxWidth
	}
	return w
}

// Wrap reduces degrees into [0,360).
func Wrap(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	// math.Mod of a tiny negative can round back up to exactly 360.
	if d >= 360 {
		d -= 360
	}
	return d
}
