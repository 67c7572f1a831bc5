package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/bbdl/internal/content"
	"github.com/papapumpkin/bbdl/internal/orbit"
	"github.com/papapumpkin/bbdl/internal/progress"
	"github.com/papapumpkin/bbdl/internal/stage"
	"github.com/papapumpkin/bbdl/internal/telemetry"
)

// maxMessages is how many recent info/error lines are kept.
const maxMessages = 3

// Options configures a new AppModel. Zero values fall back to defaults.
type Options struct {
	Navigator         *stage.Navigator
	Book              *content.Book
	Catalog           *orbit.Catalog
	Journal           *telemetry.Emitter
	RotationInterval  time.Duration
	HighlightInterval time.Duration
	EnforceGate       bool
	Splash            bool
}

// AppModel is the root BubbleTea model composing all sub-views.
type AppModel struct {
	Nav         *stage.Navigator
	Book        *content.Book
	Catalog     *orbit.Catalog
	Journal     *telemetry.Emitter
	Keys        KeyMap
	StatusBar   StatusBar
	Forms       map[stage.Stage]*FormView
	Cycler      stage.Cycler
	Width       int
	Height      int
	StartTime   time.Time
	Messages    []string // recent info/error messages
	EnforceGate bool     // home cards refuse locked stages

	// Orbit presentation state.
	MapKey   string
	Rotation orbit.Rotation
	Active   orbit.ActiveRings
	Paused   bool

	Splash     SplashModel
	ShowSplash bool

	rotationInterval  time.Duration
	highlightInterval time.Duration
	recalc            *progress.Debouncer
}

// NewAppModel creates a root model positioned at the navigator's current stage.
func NewAppModel(opts Options) AppModel {
	if opts.Navigator == nil {
		opts.Navigator = stage.NewNavigator()
	}
	if opts.Book == nil {
		opts.Book = content.Default()
	}
	if opts.Catalog == nil {
		opts.Catalog = orbit.DefaultCatalog()
	}
	if opts.RotationInterval <= 0 {
		opts.RotationInterval = 50 * time.Millisecond
	}
	if opts.HighlightInterval <= 0 {
		opts.HighlightInterval = 3 * time.Second
	}

	m := AppModel{
		Nav:               opts.Navigator,
		Book:              opts.Book,
		Catalog:           opts.Catalog,
		Journal:           opts.Journal,
		Keys:              DefaultKeyMap(),
		Forms:             make(map[stage.Stage]*FormView),
		StartTime:         time.Now(),
		EnforceGate:       opts.EnforceGate,
		Rotation:          orbit.NewRotation(opts.Catalog.Rings),
		Active:            orbit.NewActiveRings(),
		Splash:            NewSplash(DefaultSplashConfig(), opts.Catalog.Rings),
		ShowSplash:        opts.Splash,
		rotationInterval:  opts.RotationInterval,
		highlightInterval: opts.HighlightInterval,
	}
	for _, s := range []stage.Stage{stage.Empathy, stage.Reasoning} {
		m.Forms[s] = NewFormView(m.Book.Page(s), 80)
	}
	if first, ok := m.Catalog.First(); ok {
		m.MapKey = first.Key
	}
	m.StatusBar.StartTime = m.StartTime
	return m
}

// SetDebouncer installs the debouncer that coalesces keystrokes into
// MsgRecalc. Without one, every edit recalculates immediately.
func (m *AppModel) SetDebouncer(d *progress.Debouncer) { m.recalc = d }

// Init starts the rotation and highlight clocks, plus the splash when enabled.
func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.rotateCmd(), m.highlightCmd()}
	if m.ShowSplash {
		cmds = append(cmds, m.Splash.Init())
	}
	return tea.Batch(cmds...)
}

func (m AppModel) rotateCmd() tea.Cmd {
	return tea.Tick(m.rotationInterval, func(t time.Time) tea.Msg {
		return MsgRotate{Time: t}
	})
}

func (m AppModel) highlightCmd() tea.Cmd {
	return tea.Tick(m.highlightInterval, func(t time.Time) tea.Msg {
		return MsgHighlight{Time: t}
	})
}

// splashActive reports whether the splash still owns the screen.
func (m AppModel) splashActive() bool {
	return m.ShowSplash && !m.Splash.Done()
}

// Update handles all messages.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.StatusBar.Width = msg.Width
		for _, f := range m.Forms {
			f.SetWidth(msg.Width)
		}

	case tea.KeyMsg:
		if m.splashActive() {
			sm, cmd := m.Splash.Update(msg)
			m.Splash = sm.(SplashModel)
			return m, cmd
		}
		return m.handleKey(msg)

	case splashTickMsg:
		sm, cmd := m.Splash.Update(msg)
		m.Splash = sm.(SplashModel)
		cmds = append(cmds, cmd)

	case MsgRotate:
		if !m.Paused && m.Nav.Current() == stage.Materialization {
			m.Rotation = m.Rotation.Advance(m.Catalog.Rings)
		}
		cmds = append(cmds, m.rotateCmd())

	case MsgHighlight:
		m.Cycler = m.Cycler.Advance()
		cmds = append(cmds, m.highlightCmd())

	case MsgRecalc:
		m.applyRecalc(msg.Stage)

	case MsgDatasetReloaded:
		m.applyReload(msg.Reload)

	case MsgError:
		m.addMessage("error: %s", msg.Msg)
	case MsgInfo:
		m.addMessage("%s", msg.Msg)

	default:
		// Cursor blink and similar messages belong to the focused input.
		if f := m.Forms[m.Nav.Current()]; f != nil {
			_, cmd := f.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// handleKey routes a key press: global bindings first, then the current page.
func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.Keys
	switch {
	case key.Matches(msg, km.Quit):
		m.recalcNow()
		return m, tea.Quit
	case key.Matches(msg, km.Home):
		m.Nav.GoTo(stage.Home)
		return m, nil
	case key.Matches(msg, km.Empathy):
		m.link(stage.Empathy)
		return m, nil
	case key.Matches(msg, km.Reasoning):
		m.link(stage.Reasoning)
		return m, nil
	case key.Matches(msg, km.Materialization):
		m.link(stage.Materialization)
		return m, nil
	}

	switch m.Nav.Current() {
	case stage.Home:
		return m.handleHomeKey(msg)
	case stage.Empathy, stage.Reasoning:
		return m.handleFormKey(msg)
	case stage.Materialization:
		return m.handleOrbitKey(msg)
	}
	return m, nil
}

// link follows a nav bar entry. Entries for locked stages are disabled.
func (m *AppModel) link(target stage.Stage) {
	if m.Nav.Navigate(target) {
		return
	}
	if prereq, ok := target.Requires(); ok {
		m.addMessage("%s is locked: reach %d%% on %s first", target.Title(), stage.UnlockThreshold, prereq.Title())
	}
}

// open follows a home card. Cards jump directly unless gating is enforced.
func (m *AppModel) open(target stage.Stage) {
	if m.EnforceGate {
		m.link(target)
		return
	}
	m.Nav.GoTo(target)
}

func (m AppModel) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.Keys
	switch {
	case key.Matches(msg, km.Left):
		m.Cycler = m.Cycler.Advance().Advance()
	case key.Matches(msg, km.Right):
		m.Cycler = m.Cycler.Advance()
	case key.Matches(msg, km.Enter):
		m.open(m.Cycler.Stage())
	}
	return m, nil
}

func (m AppModel) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.Keys
	cur := m.Nav.Current()
	f := m.Forms[cur]

	switch {
	case key.Matches(msg, km.Continue):
		if f.Page.Continue {
			m.recalcNow()
			m.Nav.Next()
		}
		return m, nil
	case key.Matches(msg, km.Back):
		m.recalcNow()
		m.Nav.Prev()
		return m, nil
	case key.Matches(msg, km.NextField):
		return m, f.FocusNext()
	case key.Matches(msg, km.PrevField):
		return m, f.FocusPrev()
	}

	if f.PatternsFocused() {
		switch {
		case key.Matches(msg, km.Left):
			f.MovePattern(-1)
		case key.Matches(msg, km.Right):
			f.MovePattern(1)
		case key.Matches(msg, km.Toggle):
			f.TogglePattern()
			return m, m.scheduleRecalc(cur)
		}
		return m, nil
	}

	changed, cmd := f.Update(msg)
	if changed {
		return m, tea.Batch(cmd, m.scheduleRecalc(cur))
	}
	return m, cmd
}

// addMessage appends a formatted message, keeping only the most recent few.
func (m *AppModel) addMessage(format string, args ...any) {
	m.Messages = append(m.Messages, fmt.Sprintf(format, args...))
	if len(m.Messages) > maxMessages {
		m.Messages = m.Messages[len(m.Messages)-maxMessages:]
	}
}

// View renders the full screen.
func (m AppModel) View() string {
	if m.splashActive() {
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, m.Splash.View())
	}
	width := m.Width
	if width <= 0 {
		width = 80
	}

	cur := m.Nav.Current()
	pm := m.Nav.Progress()

	sb := m.StatusBar
	sb.Width = width
	sb.Stage = cur
	sb.Percent = pm.Get(cur)
	sb.Paused = m.Paused && cur == stage.Materialization
	if cur == stage.Materialization {
		if mp, err := m.Catalog.Map(m.MapKey); err == nil {
			sb.MapName = mp.Name
		}
		sb.Rings = m.Active.String()
	}

	nav := NavBar{Current: cur, Progress: pm, Width: width}

	var body string
	var bindings []key.Binding
	switch cur {
	case stage.Home:
		body = HomeView{Book: m.Book, Highlight: m.Cycler.Stage(), Progress: pm, Gated: m.EnforceGate, Width: width}.View()
		bindings = HomeFooterBindings(m.Keys)
	case stage.Empathy, stage.Reasoning:
		f := m.Forms[cur]
		body = f.View(pm.Get(cur))
		if f.PatternsFocused() {
			bindings = PatternFooterBindings(m.Keys)
		} else {
			bindings = FormFooterBindings(m.Keys, f.Page.Continue)
		}
	case stage.Materialization:
		body = m.materializationView(width)
		bindings = OrbitFooterBindings(m.Keys)
	}

	parts := []string{sb.View(), nav.View(), body}
	for _, msg := range m.Messages {
		style := styleMessage
		if strings.HasPrefix(msg, "error:") {
			style = styleError
		}
		parts = append(parts, "  "+style.Render(msg))
	}
	parts = append(parts, Footer{Width: width, Bindings: bindings}.View())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
