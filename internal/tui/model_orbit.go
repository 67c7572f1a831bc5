package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/bbdl/internal/orbit"
	"github.com/papapumpkin/bbdl/internal/stage"
	"github.com/papapumpkin/bbdl/internal/telemetry"
)

func (m AppModel) handleOrbitKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.Keys
	switch {
	case key.Matches(msg, km.Ring1):
		m.toggleRing(1)
	case key.Matches(msg, km.Ring2):
		m.toggleRing(2)
	case key.Matches(msg, km.Ring3):
		m.toggleRing(3)
	case key.Matches(msg, km.NextMap):
		m.nextMap()
	case key.Matches(msg, km.Pause):
		m.Paused = !m.Paused
	case key.Matches(msg, km.Back):
		m.Nav.Prev()
	}
	return m, nil
}

// toggleRing flips ring id, refusing to hide the last visible ring.
func (m *AppModel) toggleRing(id int) {
	if _, ok := m.Catalog.Rings.Get(id); !ok {
		m.addMessage("ring %d: %v", id, orbit.ErrUnknownRing)
		return
	}
	next, ok := m.Active.Toggle(id)
	if !ok {
		m.addMessage("at least one ring must stay visible")
		return
	}
	m.Active = next
	_ = m.Journal.Emit(telemetry.Event{
		Kind:  telemetry.KindRingToggled,
		Stage: stage.Materialization.String(),
		Data:  telemetry.RingToggle{Ring: id, Active: next.List()},
	})
}

// selectMap shows the map with the given key and resets visible rings to {1}.
func (m *AppModel) selectMap(key string) error {
	mp, err := m.Catalog.Select(key)
	if err != nil {
		return err
	}
	m.MapKey = mp.Key
	m.Active = orbit.NewActiveRings()
	_ = m.Journal.Emit(telemetry.Event{
		Kind:  telemetry.KindMapSelected,
		Stage: stage.Materialization.String(),
		Data:  telemetry.MapSelection{Map: mp.Key, Items: len(mp.Items)},
	})
	return nil
}

// nextMap moves to the next selectable map after the current one, wrapping.
func (m *AppModel) nextMap() {
	keys := m.Catalog.Keys()
	start := 0
	for i, k := range keys {
		if k == m.MapKey {
			start = i
		}
	}
	for step := 1; step <= len(keys); step++ {
		k := keys[(start+step)%len(keys)]
		if k == m.MapKey {
			break
		}
		if err := m.selectMap(k); err == nil {
			return
		}
	}
	m.addMessage("no other map has items yet")
}

// currentItems returns the items of the selected map.
func (m AppModel) currentItems() []orbit.Item {
	mp, err := m.Catalog.Map(m.MapKey)
	if err != nil {
		return nil
	}
	return mp.Items
}

// applyReload swaps in a re-read dataset, or reports why it was rejected.
func (m *AppModel) applyReload(r orbit.Reload) {
	if r.Err != nil || r.Catalog == nil {
		m.addMessage("dataset reload rejected: %v", r.Err)
		return
	}
	m.Catalog = r.Catalog
	if _, err := m.Catalog.Select(m.MapKey); err != nil {
		m.MapKey = ""
		if first, ok := m.Catalog.First(); ok {
			m.MapKey = first.Key
		}
		m.Active = orbit.NewActiveRings()
	}
	m.addMessage("dataset reloaded: %d map(s)", len(m.Catalog.Maps))
	_ = m.Journal.Emit(telemetry.Event{
		Kind: telemetry.KindDatasetReloaded,
		Data: map[string]any{"maps": len(m.Catalog.Maps), "map": m.MapKey},
	})
}

// materializationView renders the map selector, ring legend, and orbit canvas.
func (m AppModel) materializationView(width int) string {
	page := m.Book.Page(stage.Materialization)
	header := "  " + styleTitle.Foreground(stageColor(stage.Materialization)).Render(stage.Materialization.Title()) +
		styleDim.Render("  "+page.Description)

	var tabs []string
	for _, mp := range m.Catalog.Maps {
		switch {
		case mp.Key == m.MapKey:
			tabs = append(tabs, styleFieldFocused.Render("["+mp.Name+"]"))
		case !mp.Selectable():
			tabs = append(tabs, styleDim.Render(mp.Name+" (empty)"))
		default:
			tabs = append(tabs, styleBody.Render(mp.Name))
		}
	}

	ov := OrbitView{
		Rings:    m.Catalog.Rings,
		Items:    m.currentItems(),
		Rotation: m.Rotation,
		Active:   m.Active,
		Width:    width - 2,
		Height:   m.orbitHeight(),
	}
	return header + "\n" +
		"  " + strings.Join(tabs, "  ") + "\n" +
		"  " + ov.RingLegend() + "\n" +
		indent(ov.View(), 1)
}

// orbitHeight is the canvas height left after the fixed chrome.
func (m AppModel) orbitHeight() int {
	const chrome = 8 // status, nav, header, tabs, legend, footer (2), spare
	h := m.Height - chrome - len(m.Messages)
	if m.Height == 0 {
		h = 24
	}
	return h
}

