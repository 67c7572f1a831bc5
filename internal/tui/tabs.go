package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/bbdl/internal/stage"
)

// NavBar renders a horizontal row of stage tabs. Each working stage shows
// whether it is locked, open, or complete alongside its percentage.
type NavBar struct {
	Current  stage.Stage
	Progress stage.ProgressMap
	Width    int
}

// stageIcon picks the state icon shown next to a tab label.
func stageIcon(s, current stage.Stage, pm stage.ProgressMap) string {
	switch {
	case s == current:
		return iconCurrent
	case !pm.Accessible(s):
		return iconLocked
	case pm.Get(s) >= 100:
		return iconDone
	default:
		return iconOpen
	}
}

// tabLabel renders the text of one tab without styling.
func (nb NavBar) tabLabel(i int, s stage.Stage, compact bool) string {
	if compact {
		return fmt.Sprintf("%d %s", i+1, stageIcon(s, nb.Current, nb.Progress))
	}
	label := fmt.Sprintf("[F%d] %s %s", i+1, stageIcon(s, nb.Current, nb.Progress), s.Title())
	if s != stage.Home {
		label += fmt.Sprintf(" %d%%", nb.Progress.Get(s))
	}
	return label
}

// View renders the nav bar as a single styled line.
// The current stage uses its own accent color and bold; locked stages are muted.
func (nb NavBar) View() string {
	compact := nb.Width > 0 && nb.Width < CompactWidth

	var parts []string
	for i, s := range stage.All() {
		label := nb.tabLabel(i, s, compact)
		style := lipgloss.NewStyle().Foreground(colorMutedLight)
		switch {
		case s == nb.Current:
			style = lipgloss.NewStyle().Bold(true).Foreground(stageColor(s))
		case !nb.Progress.Accessible(s):
			style = lipgloss.NewStyle().Foreground(colorMuted)
		case nb.Progress.Get(s) >= 100:
			style = lipgloss.NewStyle().Foreground(colorSuccess)
		}
		parts = append(parts, style.Render(label))
	}

	line := strings.Join(parts, styleNavSep.Render(" › "))
	return styleNavBar.Width(nb.Width).Render(line)
}
