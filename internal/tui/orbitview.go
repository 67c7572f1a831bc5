package tui

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/bbdl/internal/orbit"
)

// labelMargin is extra layout space kept around the outer ring for labels.
const labelMargin = 70

// cellAspect is how many columns make up the height of one terminal row.
const cellAspect = 2.0

// OrbitView draws the rotating rings and their item labels on a character grid.
type OrbitView struct {
	Rings    orbit.Rings
	Items    []orbit.Item
	Rotation orbit.Rotation
	Active   orbit.ActiveRings
	Width    int
	Height   int
}

// cell is one character of the canvas with its foreground color.
type cell struct {
	r     rune
	color string
}

// canvas is a fixed-size character grid addressed from its center.
type canvas struct {
	w, h   int
	scale  float64 // columns per layout unit
	cells  [][]cell
	cx, cy float64
}

func newCanvas(w, h int, extent float64) *canvas {
	c := &canvas{w: w, h: h, cx: float64(w) / 2, cy: float64(h) / 2}
	if extent > 0 {
		sx := (float64(w)/2 - 1) / extent
		sy := (float64(h)/2 - 1) * cellAspect / extent
		c.scale = math.Min(sx, sy)
	}
	c.cells = make([][]cell, h)
	for y := range c.cells {
		c.cells[y] = make([]cell, w)
		for x := range c.cells[y] {
			c.cells[y][x] = cell{r: ' '}
		}
	}
	return c
}

// project maps a layout point to a grid column and row.
func (c *canvas) project(p orbit.Point) (int, int) {
	x := c.cx + p.X*c.scale
	y := c.cy + p.Y*c.scale/cellAspect
	return int(math.Round(x)), int(math.Round(y))
}

func (c *canvas) set(x, y int, r rune, color string) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y][x] = cell{r: r, color: color}
}

// text writes s centered on (x, y), clipped to the grid.
func (c *canvas) text(x, y int, s, color string) {
	start := x - utf8.RuneCountInString(s)/2
	i := 0
	for _, r := range s {
		c.set(start+i, y, r, color)
		i++
	}
}

// circle draws a ring of the given layout radius.
func (c *canvas) circle(radius float64, r rune, color string) {
	steps := int(2*math.Pi*radius*c.scale) + 8
	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		x, y := c.project(orbit.Point{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)})
		c.set(x, y, r, color)
	}
}

// String renders the grid, batching runs of equal color into one style call.
func (c *canvas) String() string {
	var b strings.Builder
	for y, row := range c.cells {
		var run strings.Builder
		runColor := ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runColor == "" {
				b.WriteString(run.String())
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(runColor)).Render(run.String()))
			}
			run.Reset()
		}
		for _, cl := range row {
			if cl.color != runColor {
				flush()
				runColor = cl.color
			}
			run.WriteRune(cl.r)
		}
		flush()
		if y < len(c.cells)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// View renders the orbit. Inactive rings are drawn dim and their items hidden.
func (ov OrbitView) View() string {
	if ov.Width <= 0 || ov.Height < OrbitMinHeight {
		return styleDim.Render("  (terminal too small for the orbit)")
	}
	extent := ov.Rings.MaxRadius()/2 + labelMargin
	c := newCanvas(ov.Width, ov.Height, extent)

	for _, r := range ov.Rings {
		if ov.Active.Has(r.ID) {
			c.circle(r.Radius/2, '·', r.Color)
		} else {
			c.circle(r.Radius/2, '·', string(colorSurfaceBright))
		}
	}
	cx, cy := c.project(orbit.Point{})
	c.set(cx, cy, '◎', string(colorBrightWhite))

	for _, pl := range orbit.Layout(ov.Items, ov.Rotation, ov.Rings, ov.Active) {
		color := pl.Item.Color
		if color == "" {
			if r, ok := ov.Rings.Get(pl.Item.Ring); ok {
				color = r.Color
			}
		}
		mx, my := c.project(pl.Marker)
		c.set(mx, my, '●', color)

		lx, ly := c.project(pl.Label)
		maxChars := int(float64(pl.LabelWidth)*c.scale) - 2
		c.text(lx, ly, TruncateWithEllipsis(pl.Item.Text, max(maxChars, 4)), string(colorWhite))
	}
	return c.String()
}

// RingLegend renders one line naming each ring, its toggle key, and state.
func (ov OrbitView) RingLegend() string {
	var parts []string
	for _, r := range ov.Rings {
		box := iconEmpty
		style := styleDim
		if ov.Active.Has(r.ID) {
			box = iconChecked
			style = lipgloss.NewStyle().Foreground(lipgloss.Color(r.Color)).Bold(true)
		}
		parts = append(parts, style.Render(box+" "+strconv.Itoa(r.ID)+" "+r.Name))
	}
	return strings.Join(parts, "   ")
}
