package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/bbdl/internal/stage"
)

// StatusBar renders the persistent top bar with the current stage, its
// progress, the selected orbit map, and elapsed session time.
type StatusBar struct {
	Stage     stage.Stage
	Percent   int
	MapName   string
	Rings     string // active ring list, e.g. "[1 3]"
	StartTime time.Time
	Width     int
	Paused    bool
}

// View renders the status bar as a single line.
// Adapts to narrow terminals by dropping low-priority segments
// (elapsed, then rings, then map) to guarantee single-line rendering.
func (s StatusBar) View() string {
	const barPadding = 2
	innerWidth := s.Width - barPadding
	if innerWidth < 0 {
		innerWidth = 0
	}

	barBg := lipgloss.NewStyle().Background(colorSurface)
	left := barBg.Render(" ") + Logo() + barBg.Render("  ") + s.stageSegment()
	if s.Paused {
		left += barBg.Render("  ") + lipgloss.NewStyle().Background(colorSurface).Foreground(colorAccent).Render("PAUSED")
	}
	leftWidth := lipgloss.Width(left)

	const minGap = 1
	segments := dropSegments(s.buildRightSegments(), innerWidth-leftWidth-minGap)
	right := joinSegments(segments)

	gap := innerWidth - leftWidth - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	line := left + barBg.Render(strings.Repeat(" ", gap)) + right
	if lipgloss.Width(line) > innerWidth {
		line = truncateToWidth(line, innerWidth)
	}
	return styleStatusBar.Width(s.Width).Render(line)
}

func (s StatusBar) stageSegment() string {
	title := lipgloss.NewStyle().Background(colorSurface).Foreground(stageColor(s.Stage)).Bold(true).Render(s.Stage.Title())
	if s.Stage == stage.Home {
		return title
	}
	return title + styleStatusValue.Background(colorSurface).Render(fmt.Sprintf(" %d%%", s.Percent))
}

// statusSegment represents a styled segment of the status bar with a drop priority.
// Lower priority values are dropped first when the terminal is too narrow.
type statusSegment struct {
	text     string
	priority int // higher = keep longer; elapsed=1, rings=2, map=3
}

// buildRightSegments assembles the right-side segments in display order.
func (s StatusBar) buildRightSegments() []statusSegment {
	barBg := lipgloss.NewStyle().Background(colorSurface)
	var segments []statusSegment

	if s.MapName != "" {
		segments = append(segments, statusSegment{
			text:     styleStatusLabel.Background(colorSurface).Render("map ") + styleStatusValue.Background(colorSurface).Render(s.MapName),
			priority: 3,
		})
	}
	if s.Rings != "" {
		segments = append(segments, statusSegment{
			text:     barBg.Render("  ") + styleStatusLabel.Background(colorSurface).Render("rings ") + styleStatusValue.Background(colorSurface).Render(s.Rings),
			priority: 2,
		})
	}
	if !s.StartTime.IsZero() {
		elapsed := time.Since(s.StartTime).Truncate(time.Second)
		segments = append(segments, statusSegment{
			text:     styleStatusDim.Background(colorSurface).Render("  " + formatElapsedCompact(elapsed)),
			priority: 1,
		})
	}
	return segments
}

// joinSegments concatenates segment text with a trailing styled space.
// The trailing space carries the bar background to prevent gaps.
func joinSegments(segments []statusSegment) string {
	barBg := lipgloss.NewStyle().Background(colorSurface)
	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(seg.text)
	}
	b.WriteString(barBg.Render(" "))
	return b.String()
}

// dropSegments removes lowest-priority segments until the combined width fits within maxWidth.
func dropSegments(segments []statusSegment, maxWidth int) []statusSegment {
	result := make([]statusSegment, len(segments))
	copy(result, segments)

	for totalWidth(result) > maxWidth && len(result) > 0 {
		minIdx := 0
		minPri := result[0].priority
		for i, seg := range result {
			if seg.priority < minPri {
				minPri = seg.priority
				minIdx = i
			}
		}
		result = append(result[:minIdx], result[minIdx+1:]...)
	}
	return result
}

// totalWidth computes the rendered width of all segments plus trailing space.
func totalWidth(segments []statusSegment) int {
	w := 1 // trailing space from joinSegments
	for _, seg := range segments {
		w += lipgloss.Width(seg.text)
	}
	return w
}

// formatElapsedCompact formats a duration as "Xm Xs" or "Xh Xm" for longer runs.
// Zero duration renders as "0s".
func formatElapsedCompact(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60

	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm %ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}

// truncateToWidth hard-truncates a string that may contain ANSI escape
// sequences so its rendered width does not exceed maxWidth.
func truncateToWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	var b strings.Builder
	width := 0
	inEscape := false
	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			b.WriteRune(r)
			continue
		}
		if inEscape {
			b.WriteRune(r)
			// ESC sequences end at a letter (A-Z, a-z).
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEscape = false
			}
			continue
		}
		if width+1 > maxWidth {
			break
		}
		b.WriteRune(r)
		width++
	}
	return b.String()
}
