package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Footer renders context-sensitive keybinding hints.
type Footer struct {
	Width    int
	Bindings []key.Binding
}

// View renders the footer as a single line of keybinding hints.
// In compact mode (narrow terminals), shows only key hints without descriptions.
func (f Footer) View() string {
	compact := f.Width < CompactWidth

	var parts []string
	for _, b := range f.Bindings {
		if !b.Enabled() {
			continue
		}
		help := b.Help()
		var part string
		if compact {
			part = styleFooterKey.Render(help.Key)
		} else {
			part = styleFooterKey.Render(help.Key) + styleFooterSep.Render(":") + styleFooterDesc.Render(help.Desc)
		}
		parts = append(parts, part)
	}
	sep := styleFooterSep.Render("  ")
	if compact {
		sep = styleFooterSep.Render(" ")
	}
	line := strings.Join(parts, sep)
	return styleFooter.Width(f.Width).Render(line)
}

// HomeFooterBindings returns footer bindings for the landing page.
func HomeFooterBindings(km KeyMap) []key.Binding {
	return []key.Binding{km.Left, km.Right, km.Enter, km.Empathy, km.Reasoning, km.Materialization, km.Quit}
}

// FormFooterBindings returns footer bindings for a stage with input fields.
// The continue hint is hidden on pages without a next stage.
func FormFooterBindings(km KeyMap, cont bool) []key.Binding {
	c := km.Continue
	c.SetEnabled(cont)
	return []key.Binding{km.NextField, km.PrevField, km.Back, c, km.Home, km.Quit}
}

// PatternFooterBindings returns footer bindings while the pattern picker has focus.
func PatternFooterBindings(km KeyMap) []key.Binding {
	return []key.Binding{km.Left, km.Right, km.Toggle, km.NextField, km.Back, km.Continue, km.Quit}
}

// OrbitFooterBindings returns footer bindings for the materialization stage.
func OrbitFooterBindings(km KeyMap) []key.Binding {
	return []key.Binding{km.Ring1, km.Ring2, km.Ring3, km.NextMap, km.Pause, km.Back, km.Home, km.Quit}
}
