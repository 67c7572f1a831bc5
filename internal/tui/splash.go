package tui

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/bbdl/internal/orbit"
)

// SplashConfig controls the startup orbit animation.
type SplashConfig struct {
	Width     int
	Height    int
	FPS       int
	Spins     float64
	ShowTitle bool
}

// DefaultSplashConfig returns a 62×19 splash that spins the three rings
// twice and settles with an ease-out curve.
func DefaultSplashConfig() SplashConfig {
	return SplashConfig{
		Width:     62,
		Height:    19,
		FPS:       30,
		Spins:     2.0,
		ShowTitle: true,
	}
}

// SplashModel implements tea.Model for the startup animation: one bead per
// ring, each ring turning in the direction of its configured delta.
type SplashModel struct {
	cfg         SplashConfig
	rings       orbit.Rings
	frame       int
	totalFrames int
	done        bool
}

// splashTickMsg drives the animation frame clock.
type splashTickMsg time.Time

// NewSplash creates a SplashModel for rings configured by cfg.
func NewSplash(cfg SplashConfig, rings orbit.Rings) SplashModel {
	if cfg.FPS <= 0 {
		cfg.FPS = 30
	}
	return SplashModel{
		cfg:         cfg,
		rings:       rings,
		totalFrames: int(cfg.Spins * 30),
	}
}

// Init starts the animation tick.
func (s SplashModel) Init() tea.Cmd { return s.tick() }

// Done reports whether the animation has finished, either because the
// curve completed (plus a short hold) or because a key was pressed.
func (s SplashModel) Done() bool { return s.done }

func (s SplashModel) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(s.cfg.FPS), func(t time.Time) tea.Msg {
		return splashTickMsg(t)
	})
}

// Update handles tick and key messages.
func (s SplashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case tea.KeyMsg:
		s.done = true
		return s, nil
	case splashTickMsg:
		if s.done {
			return s, nil
		}
		s.frame++
		if s.frame >= s.totalFrames+10 {
			s.done = true
			return s, nil
		}
		return s, s.tick()
	}
	return s, nil
}

// View renders the current animation frame.
func (s SplashModel) View() string {
	turn := s.progress() * s.cfg.Spins * 360

	c := newCanvas(s.cfg.Width, s.cfg.Height, s.rings.MaxRadius()/2+10)
	for _, r := range s.rings {
		c.circle(r.Radius/2, '·', string(colorSurfaceBright))
	}
	for i, r := range s.rings {
		dir := 1.0
		if r.Delta < 0 {
			dir = -1
		}
		// Stagger the beads so they start apart.
		angle := orbit.Wrap(float64(i)*120 + dir*turn)
		theta := angle * math.Pi / 180
		x, y := c.project(orbit.Point{X: r.Radius / 2 * math.Cos(theta), Y: r.Radius / 2 * math.Sin(theta)})
		c.set(x, y, '●', r.Color)
	}

	var sb strings.Builder
	sb.WriteString(c.String())
	sb.WriteRune('\n')
	if s.cfg.ShowTitle {
		title := "B    B    D    L"
		pad := (s.cfg.Width - len(title)) / 2
		if pad < 0 {
			pad = 0
		}
		titleStyle := lipgloss.NewStyle().Foreground(colorMutedLight)
		sb.WriteString(titleStyle.Render(strings.Repeat(" ", pad) + title))
		sb.WriteRune('\n')
	}
	return sb.String()
}

// progress returns the eased animation position in [0,1].
func (s SplashModel) progress() float64 {
	if s.done || s.totalFrames <= 0 || s.frame >= s.totalFrames {
		return 1
	}
	p := float64(s.frame) / float64(s.totalFrames)
	return 1.0 - math.Pow(1.0-p, 2.5)
}
