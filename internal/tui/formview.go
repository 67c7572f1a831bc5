package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/bbdl/internal/content"
	"github.com/papapumpkin/bbdl/internal/progress"
)

// fieldHeight is the number of visible lines in each text input.
const fieldHeight = 3

// FormView renders a stage page that collects free text and, on the
// reasoning stage, a set of pattern tags.
type FormView struct {
	Page          content.Page
	Inputs        []textarea.Model
	Patterns      progress.PatternSet
	PatternCursor int
	Focus         int // index into Inputs; len(Inputs) selects the pattern picker
	Width         int
}

// NewFormView builds inputs for every field on page. The first input starts focused.
func NewFormView(page content.Page, width int) *FormView {
	f := &FormView{Page: page}
	for _, fld := range page.Fields {
		ta := textarea.New()
		ta.Placeholder = fld.Placeholder
		ta.ShowLineNumbers = false
		ta.SetHeight(fieldHeight)
		ta.Blur()
		f.Inputs = append(f.Inputs, ta)
	}
	f.SetWidth(width)
	if len(f.Inputs) > 0 {
		f.Inputs[0].Focus()
	}
	return f
}

// HasPatterns reports whether the page offers the pattern picker.
func (f *FormView) HasPatterns() bool { return f.Page.Patterns != "" }

// PatternsFocused reports whether the pattern picker has focus.
func (f *FormView) PatternsFocused() bool {
	return f.HasPatterns() && f.Focus == len(f.Inputs)
}

// focusSlots is the number of focusable regions on the page.
func (f *FormView) focusSlots() int {
	n := len(f.Inputs)
	if f.HasPatterns() {
		n++
	}
	return n
}

// SetWidth resizes all inputs to fit width.
func (f *FormView) SetWidth(width int) {
	f.Width = width
	w := width - 6
	if w < 20 {
		w = 20
	}
	for i := range f.Inputs {
		f.Inputs[i].SetWidth(w)
	}
}

// Value returns the text of the field with the given key.
func (f *FormView) Value(key string) string {
	for i, fld := range f.Page.Fields {
		if fld.Key == key && i < len(f.Inputs) {
			return f.Inputs[i].Value()
		}
	}
	return ""
}

// SetValue replaces the text of the field with the given key.
func (f *FormView) SetValue(key, value string) {
	for i, fld := range f.Page.Fields {
		if fld.Key == key && i < len(f.Inputs) {
			f.Inputs[i].SetValue(value)
		}
	}
}

// FocusNext moves focus to the next region, wrapping around.
func (f *FormView) FocusNext() tea.Cmd { return f.setFocus((f.Focus + 1) % max(f.focusSlots(), 1)) }

// FocusPrev moves focus to the previous region, wrapping around.
func (f *FormView) FocusPrev() tea.Cmd {
	n := max(f.focusSlots(), 1)
	return f.setFocus((f.Focus + n - 1) % n)
}

func (f *FormView) setFocus(i int) tea.Cmd {
	var cmd tea.Cmd
	for j := range f.Inputs {
		if j == i {
			cmd = f.Inputs[j].Focus()
		} else {
			f.Inputs[j].Blur()
		}
	}
	f.Focus = i
	return cmd
}

// Update forwards msg to the focused input and reports whether its text changed.
func (f *FormView) Update(msg tea.Msg) (changed bool, cmd tea.Cmd) {
	if f.Focus < 0 || f.Focus >= len(f.Inputs) {
		return false, nil
	}
	before := f.Inputs[f.Focus].Value()
	f.Inputs[f.Focus], cmd = f.Inputs[f.Focus].Update(msg)
	return f.Inputs[f.Focus].Value() != before, cmd
}

// MovePattern shifts the picker cursor by delta, clamped to the catalog.
func (f *FormView) MovePattern(delta int) {
	f.PatternCursor += delta
	if f.PatternCursor < 0 {
		f.PatternCursor = 0
	}
	if last := len(progress.DefaultPatterns) - 1; f.PatternCursor > last {
		f.PatternCursor = last
	}
}

// TogglePattern flips the tag under the cursor.
func (f *FormView) TogglePattern() {
	f.Patterns = f.Patterns.Toggle(progress.DefaultPatterns[f.PatternCursor])
}

// Input snapshots for the progress calculators.

func (f *FormView) EmpathyInput() progress.EmpathyInput {
	return progress.EmpathyInput{
		Listening: f.Value("listening"),
		Observing: f.Value("observing"),
		Engaging:  f.Value("engaging"),
	}
}

func (f *FormView) ReasoningInput() progress.ReasoningInput {
	return progress.ReasoningInput{
		Synthesis: f.Value("synthesis"),
		Insights:  f.Value("insights"),
		Patterns:  f.Patterns,
	}
}

// View renders the page with its intro, progress bar, and inputs.
func (f *FormView) View(percent int) string {
	width := f.Width
	if width <= 0 {
		width = 80
	}
	color := stageColor(f.Page.Stage)

	var b strings.Builder
	b.WriteString("  " + styleTitle.Foreground(color).Render(f.Page.Stage.Title()) + styleDim.Render("  "+f.Page.Description) + "\n")
	b.WriteString(indent(styleBody.Width(width-4).Render(f.Page.Intro), 2) + "\n")
	b.WriteString("  " + progressBar(percent, min(40, width-12), color) + styleDim.Render(fmt.Sprintf(" %d%% complete", percent)) + "\n\n")

	for i, fld := range f.Page.Fields {
		b.WriteString(f.renderFieldHeader(i, fld.Title) + "\n")
		b.WriteString(indent(styleDim.Width(width-6).Render(fld.Prompt), 4) + "\n")
		if i < len(f.Inputs) {
			b.WriteString(indent(f.Inputs[i].View(), 4) + "\n")
		}
		b.WriteString("\n")
	}
	if f.HasPatterns() {
		b.WriteString(f.renderPatterns(width) + "\n")
	}
	b.WriteString(f.renderButtons())
	return b.String()
}

func (f *FormView) renderFieldHeader(i int, title string) string {
	if i == f.Focus {
		return styleSelectionIndicator.Render(selectionIndicator) + " " + styleFieldFocused.Render(title)
	}
	return "  " + styleFieldTitle.Render(title)
}

// renderButtons shows the previous/continue affordances the page offers.
func (f *FormView) renderButtons() string {
	var parts []string
	if f.Page.Back {
		parts = append(parts, styleDim.Render("‹ previous stage"))
	}
	if f.Page.Continue {
		parts = append(parts, lipgloss.NewStyle().Foreground(stageColor(f.Page.Stage)).Bold(true).Render(f.Page.Call+" ›"))
	}
	if len(parts) == 0 {
		return ""
	}
	return "  " + strings.Join(parts, "    ") + "\n"
}

// renderPatterns draws the tag picker as wrapped rows of checkboxes.
func (f *FormView) renderPatterns(width int) string {
	var b strings.Builder
	b.WriteString(f.renderFieldHeader(len(f.Inputs), "Design Patterns") +
		styleDim.Render(fmt.Sprintf("  %d/%d selected", f.Patterns.Len(), progress.MinPatterns)) + "\n")
	b.WriteString(indent(styleDim.Width(width-6).Render(f.Page.Patterns), 4) + "\n")

	var tags []string
	for i, tag := range progress.DefaultPatterns {
		box := iconEmpty
		style := styleBody
		if f.Patterns.Has(tag) {
			box = iconChecked
			style = lipgloss.NewStyle().Foreground(stageColor(f.Page.Stage))
		}
		label := box + " " + tag
		if f.PatternsFocused() && i == f.PatternCursor {
			style = style.Bold(true).Underline(true)
		}
		tags = append(tags, style.Render(label))
	}
	b.WriteString(indent(wrapJoin(tags, "   ", width-6), 4) + "\n")
	return b.String()
}

// wrapJoin joins styled items with sep, breaking lines before width is exceeded.
func wrapJoin(items []string, sep string, width int) string {
	var lines []string
	cur := ""
	for _, it := range items {
		next := it
		if cur != "" {
			next = cur + sep + it
		}
		if cur != "" && lipgloss.Width(next) > width {
			lines = append(lines, cur)
			next = it
		}
		cur = next
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return strings.Join(lines, "\n")
}
