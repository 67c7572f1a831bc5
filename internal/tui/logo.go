package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/bbdl/internal/stage"
)

var styleLogoText = lipgloss.NewStyle().Foreground(colorMutedLight)

// Logo returns a styled single-line logo for the status bar: one dot per
// working stage in its accent color, followed by the name.
// Background is inherited from the parent status bar container.
func Logo() string {
	var dots string
	for _, s := range stage.Process() {
		dots += lipgloss.NewStyle().Foreground(stageColor(s)).Render("●")
	}
	return dots + styleLogoText.Render(" BBDL")
}

// LogoPlain returns the unstyled logo text.
func LogoPlain() string {
	return "●●● BBDL"
}
