//go:build !nowindow

package orbitwin

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/papapumpkin/bbdl/internal/orbit"
)

const tps = 60

var (
	background = color.RGBA{0x1b, 0x1d, 0x24, 0xff}
	dimRing    = color.RGBA{0x3a, 0x3d, 0x48, 0xff}
)

var ringKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}

// Options configures the window.
type Options struct {
	Width, Height int
	Scale         float64
	Reloads       <-chan orbit.Reload // optional dataset hot reload
}

// Run opens a window showing scene and blocks until it is closed.
func Run(scene *Scene, opts Options) error {
	g := &game{scene: scene, reloads: opts.Reloads, w: opts.Width, h: opts.Height}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowTitle(scene.Title())
	ebiten.SetWindowSize(int(float64(opts.Width)*scale), int(float64(opts.Height)*scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps)
	return ebiten.RunGame(g)
}

type game struct {
	scene   *Scene
	reloads <-chan orbit.Reload
	w, h    int
	status  string
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	for i, k := range ringKeys {
		if inpututil.IsKeyJustPressed(k) {
			if err := g.scene.Toggle(i + 1); err != nil {
				g.status = err.Error()
			} else {
				g.status = ""
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		if g.scene.NextMap() {
			ebiten.SetWindowTitle(g.scene.Title())
			g.status = ""
		} else {
			g.status = "no other map has items yet"
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.scene.Paused = !g.scene.Paused
	}

	select {
	case r, ok := <-g.reloads:
		if ok {
			if err := g.scene.Apply(r); err != nil {
				g.status = err.Error()
			} else {
				ebiten.SetWindowTitle(g.scene.Title())
				g.status = "dataset reloaded"
			}
		}
	default:
	}

	g.scene.Step(time.Second / tps)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	cx, cy := float64(g.w)/2, float64(g.h)/2
	scale := math.Min(cx, cy) / g.scene.Extent()
	at := func(p orbit.Point) (float32, float32) {
		return float32(cx + p.X*scale), float32(cy + p.Y*scale)
	}

	for _, r := range g.scene.Catalog.Rings {
		c := dimRing
		if g.scene.Active.Has(r.ID) {
			c = parseColor(r.Color, dimRing)
		}
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(r.Radius/2*scale), 1.5, c, true)
	}

	for _, pl := range g.scene.Placements() {
		ring, _ := g.scene.Catalog.Rings.Get(pl.Item.Ring)
		accent := parseColor(pl.Item.Color, parseColor(ring.Color, color.RGBA{0xff, 0xff, 0xff, 0xff}))

		mx, my := at(pl.Marker)
		vector.DrawFilledCircle(screen, mx, my, float32(math.Max(ring.DotRadius, 2)*scale), accent, true)

		lw := float32(float64(pl.LabelWidth) * scale)
		const lh = 18
		lx, ly := at(pl.Label)
		bx, by := lx-lw/2, ly-lh/2
		vector.DrawFilledRect(screen, bx, by, lw, lh, labelBackground(pl.Item.Background), true)
		vector.StrokeRect(screen, bx, by, lw, lh, 1, parseColor(pl.Item.Border, accent), true)

		// Debug glyphs are 6px wide.
		maxChars := int(lw/6) - 1
		text := []rune(pl.Item.Text)
		if maxChars > 0 && len(text) > maxChars {
			text = append(text[:max(maxChars-1, 0)], '…')
		}
		ebitenutil.DebugPrintAt(screen, string(text), int(lx)-len(text)*3, int(ly)-8)
	}

	hint := "1/2/3 rings  m map  space pause  esc quit"
	if g.scene.Paused {
		hint = "PAUSED  " + hint
	}
	ebitenutil.DebugPrintAt(screen, hint, 8, g.h-20)
	if g.status != "" {
		ebitenutil.DebugPrintAt(screen, g.status, 8, 8)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}
