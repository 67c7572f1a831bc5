package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/bbdl/internal/content"
	"github.com/papapumpkin/bbdl/internal/stage"
)

// HomeView renders the landing page: the process introduction followed by
// one card per working stage. The highlighted card rotates on a timer.
type HomeView struct {
	Book      *content.Book
	Highlight stage.Stage
	Progress  stage.ProgressMap
	Gated     bool // locked cards refuse to open
	Width     int
}

// View renders the landing page.
func (hv HomeView) View() string {
	width := hv.Width
	if width <= 0 {
		width = 80
	}
	textWidth := width - 4

	var b strings.Builder
	b.WriteString("  " + styleTitle.Render(hv.Book.Home.Title) + "\n")
	b.WriteString(indent(styleBody.Width(textWidth).Render(hv.Book.Home.Subtitle), 2) + "\n\n")
	b.WriteString(indent(styleDim.Width(textWidth).Render(hv.Book.Home.Process), 2) + "\n\n")

	cards := make([]string, 0, 3)
	for _, s := range stage.Process() {
		cards = append(cards, hv.renderCard(s, width))
	}
	if width >= CardsRowWidth {
		b.WriteString(indent(lipgloss.JoinHorizontal(lipgloss.Top, cards...), 1))
	} else {
		b.WriteString(indent(lipgloss.JoinVertical(lipgloss.Left, cards...), 1))
	}
	b.WriteString("\n")
	return b.String()
}

// cardWidth returns the outer width of a single card for the given terminal width.
func cardWidth(width int) int {
	if width >= CardsRowWidth {
		return (width - 4) / 3
	}
	return width - 4
}

// renderCard renders one stage card. The highlighted card takes the stage
// color for its border. When cards are gated, locked stages show a lock
// hint instead of the call.
func (hv HomeView) renderCard(s stage.Stage, width int) string {
	page := hv.Book.Page(s)
	cw := cardWidth(width)
	inner := cw - 4 // border + padding
	if inner < 10 {
		inner = 10
	}

	titleStyle := styleCardTitle.Foreground(stageColor(s))
	lines := []string{
		titleStyle.Render(fmt.Sprintf("%d. %s", s.Info().Order, s.Title())),
		styleBody.Width(inner).Render(page.Card),
		"",
	}
	lines = append(lines, progressBar(hv.Progress.Get(s), inner-6, stageColor(s))+styleDim.Render(fmt.Sprintf(" %3d%%", hv.Progress.Get(s))))
	if hv.Gated && !hv.Progress.Accessible(s) {
		lines = append(lines, styleDim.Render(fmt.Sprintf("%s reach %d%% on %s", iconLocked, stage.UnlockThreshold, (s-1).Title())))
	} else {
		lines = append(lines, titleStyle.Render("› "+page.Call))
	}

	style := styleCard.Width(cw - 2)
	if s == hv.Highlight {
		style = style.BorderForeground(stageColor(s))
	}
	return style.Render(strings.Join(lines, "\n"))
}

// indent prefixes every line of s with n spaces.
func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}
