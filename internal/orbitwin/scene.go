// Package orbitwin shows the orbital presentation in a desktop window.
//
// Scene holds the presentation state and is independent of any graphics
// backend; the Ebiten game in window.go only reads it and forwards input.
package orbitwin

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/papapumpkin/bbdl/internal/orbit"
)

// ErrLastRing is returned when a toggle would hide every ring.
var ErrLastRing = errors.New("at least one ring must stay visible")

// ErrUnavailable is returned by Run in builds without a window backend.
var ErrUnavailable = errors.New("desktop window not available in this build")

// Scene is the state of one orbit presentation: the selected map, ring
// rotations, and which rings are visible.
type Scene struct {
	Catalog  *orbit.Catalog
	MapKey   string
	Rotation orbit.Rotation
	Active   orbit.ActiveRings
	Paused   bool
	Interval time.Duration // time per rotation tick

	elapsed time.Duration // carried over between Step calls
}

// NewScene starts a presentation on the first selectable map with only the
// first ring visible.
func NewScene(cat *orbit.Catalog, interval time.Duration) *Scene {
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}
	s := &Scene{
		Catalog:  cat,
		Rotation: orbit.NewRotation(cat.Rings),
		Active:   orbit.NewActiveRings(),
		Interval: interval,
	}
	if m, ok := cat.First(); ok {
		s.MapKey = m.Key
	}
	return s
}

// Step advances the clock by dt and applies one rotation tick per whole
// interval elapsed. It returns the number of ticks applied.
func (s *Scene) Step(dt time.Duration) int {
	if s.Paused || dt <= 0 {
		return 0
	}
	s.elapsed += dt
	n := int(s.elapsed / s.Interval)
	if n > 0 {
		s.Rotation = s.Rotation.AdvanceN(s.Catalog.Rings, n)
		s.elapsed -= time.Duration(n) * s.Interval
	}
	return n
}

// Toggle flips the visibility of ring id.
func (s *Scene) Toggle(id int) error {
	if _, ok := s.Catalog.Rings.Get(id); !ok {
		return fmt.Errorf("ring %d: %w", id, orbit.ErrUnknownRing)
	}
	next, ok := s.Active.Toggle(id)
	if !ok {
		return ErrLastRing
	}
	s.Active = next
	return nil
}

// Select shows the map with the given key and resets visible rings to {1}.
func (s *Scene) Select(key string) error {
	m, err := s.Catalog.Select(key)
	if err != nil {
		return err
	}
	s.MapKey = m.Key
	s.Active = orbit.NewActiveRings()
	return nil
}

// NextMap moves to the next selectable map, wrapping. It reports whether
// the selection changed.
func (s *Scene) NextMap() bool {
	keys := s.Catalog.Keys()
	start := 0
	for i, k := range keys {
		if k == s.MapKey {
			start = i
		}
	}
	for step := 1; step < len(keys); step++ {
		if s.Select(keys[(start+step)%len(keys)]) == nil {
			return true
		}
	}
	return false
}

// Apply swaps in a reloaded catalog. Rejected reloads leave the scene alone.
func (s *Scene) Apply(r orbit.Reload) error {
	if r.Err != nil || r.Catalog == nil {
		return fmt.Errorf("dataset reload rejected: %w", r.Err)
	}
	s.Catalog = r.Catalog
	if _, err := s.Catalog.Select(s.MapKey); err != nil {
		s.MapKey = ""
		if m, ok := s.Catalog.First(); ok {
			s.MapKey = m.Key
		}
		s.Active = orbit.NewActiveRings()
	}
	return nil
}

// Placements returns the visible items of the selected map.
func (s *Scene) Placements() []orbit.Placement {
	m, err := s.Catalog.Map(s.MapKey)
	if err != nil {
		return nil
	}
	return orbit.Layout(m.Items, s.Rotation, s.Catalog.Rings, s.Active)
}

// Title is the window caption for the current selection.
func (s *Scene) Title() string {
	name := s.MapKey
	if m, err := s.Catalog.Map(s.MapKey); err == nil {
		name = m.Name
	}
	if name == "" {
		return "BBDL"
	}
	return "BBDL · " + name
}

// Extent is the layout distance from the center to the edge of the view.
func (s *Scene) Extent() float64 {
	return s.Catalog.Rings.MaxRadius()/2 + labelMargin
}

// labelMargin is extra room kept around the outer ring for labels.
const labelMargin = 70

var namedColors = map[string]color.RGBA{
	"white":       {0xff, 0xff, 0xff, 0xff},
	"black":       {0x00, 0x00, 0x00, 0xff},
	"transparent": {},
}

// parseColor accepts "#rgb", "#rrggbb", "rgb(r, g, b)", "rgba(r, g, b, a)",
// or a few CSS names. Anything else yields fallback.
func parseColor(s string, fallback color.RGBA) color.RGBA {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c
	}
	if strings.HasPrefix(s, "rgb") {
		return parseRGBFunc(s, fallback)
	}
	if !strings.HasPrefix(s, "#") {
		return fallback
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return fallback
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return fallback
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// parseRGBFunc handles the CSS rgb()/rgba() forms. Alpha is a fraction in [0,1].
func parseRGBFunc(s string, fallback color.RGBA) color.RGBA {
	var args string
	var want int
	switch {
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		args, want = s[len("rgba("):len(s)-1], 4
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		args, want = s[len("rgb("):len(s)-1], 3
	default:
		return fallback
	}
	parts := strings.Split(args, ",")
	if len(parts) != want {
		return fallback
	}
	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(strings.TrimSpace(parts[i]), 10, 8)
		if err != nil {
			return fallback
		}
		ch[i] = uint8(v)
	}
	c := color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: 0xff}
	if want == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return fallback
		}
		c.A = uint8(math.Round(a * 0xff))
	}
	return c
}

// labelFill is the base of every label box. Label text is always light.
var labelFill = color.RGBA{0x26, 0x29, 0x33, 0xff}

// maxLabelTint caps how far an item background may pull the label fill away
// from labelFill, keeping light text readable on "white" backgrounds.
const maxLabelTint = 0.35

// labelBackground tints labelFill toward the item background by the
// background's alpha, at most maxLabelTint.
func labelBackground(bg string) color.RGBA {
	c := parseColor(bg, color.RGBA{})
	a := math.Min(float64(c.A)/0xff, maxLabelTint)
	mix := func(base, over uint8) uint8 {
		return uint8(math.Round(float64(base) + (float64(over)-float64(base))*a))
	}
	return color.RGBA{
		R: mix(labelFill.R, c.R),
		G: mix(labelFill.G, c.G),
		B: mix(labelFill.B, c.B),
		A: 0xff,
	}
}
