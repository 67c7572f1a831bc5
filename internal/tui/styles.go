package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/bbdl/internal/stage"
)

// Semantic color palette.
var (
	colorPrimary       = lipgloss.Color("#7CC9E8") // Sky: primary accent, empathy
	colorAccent        = lipgloss.Color("#FCC900") // Yellow: attention, reasoning
	colorSuccess       = lipgloss.Color("#4C956C") // Green: unlocked/complete
	colorDanger        = lipgloss.Color("#F85974") // Coral: errors, materialization
	colorMuted         = lipgloss.Color("#636363") // Gray: de-emphasized
	colorMutedLight    = lipgloss.Color("#8C8C8C") // Lighter gray: normal text
	colorWhite         = lipgloss.Color("#EEEEEE") // Off-white: primary text
	colorBrightWhite   = lipgloss.Color("#FFFFFF") // Pure white: emphatic text
	colorSurface       = lipgloss.Color("#1E1E2E") // Dark surface: status bar bg
	colorSurfaceBright = lipgloss.Color("#2A2A3C") // Lighter surface: nav bar bg
	colorSurfaceDim    = lipgloss.Color("#181825") // Darkest surface: footer bg
)

// stageColor returns the accent color for s.
func stageColor(s stage.Stage) lipgloss.Color {
	return lipgloss.Color(s.Color())
}

// Selection indicator prepended to the focused row.
const selectionIndicator = "▎"

// Status icons for stage states.
const (
	iconDone    = "✓"
	iconLocked  = "⊘"
	iconCurrent = "◉"
	iconOpen    = "○"
	iconChecked = "■"
	iconEmpty   = "□"
)

// Status bar styles: visually dominant with solid background.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	styleStatusLabel = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleStatusValue = lipgloss.NewStyle().
				Foreground(colorWhite)

	styleStatusDim = lipgloss.NewStyle().
			Foreground(colorMutedLight)
)

// Nav bar style: subtle tinted background, dimmer than status bar.
var styleNavBar = lipgloss.NewStyle().
	Background(colorSurfaceBright).
	Foreground(colorMutedLight).
	Padding(0, 1)

// styleNavSep styles the separator between nav segments.
var styleNavSep = lipgloss.NewStyle().
	Foreground(colorMuted)

// Page body styles.
var (
	styleTitle = lipgloss.NewStyle().
			Foreground(colorBrightWhite).
			Bold(true)

	styleBody = lipgloss.NewStyle().
			Foreground(colorMutedLight)

	styleDim = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleFieldTitle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	styleFieldFocused = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleSelectionIndicator = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleMessage = lipgloss.NewStyle().
			Foreground(colorAccent)

	styleError = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)
)

// Card styles for the home page stage list.
var (
	styleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	styleCardTitle = lipgloss.NewStyle().
			Bold(true)
)

// Footer styles: top border, clear key/desc contrast.
var (
	styleFooter = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorSurfaceDim).
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(colorMuted)

	styleFooterKey = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleFooterSep = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleFooterDesc = lipgloss.NewStyle().
			Foreground(colorMutedLight)
)
