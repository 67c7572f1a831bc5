package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/bbdl/internal/progress"
	"github.com/papapumpkin/bbdl/internal/stage"
)

// scheduleRecalc arranges for s to be recalculated once typing settles.
func (m AppModel) scheduleRecalc(s stage.Stage) tea.Cmd {
	if m.recalc != nil {
		m.recalc.Trigger()
		return nil
	}
	return func() tea.Msg { return MsgRecalc{Stage: s} }
}

// recalcNow drops any pending debounced recalculation and applies it at once.
func (m *AppModel) recalcNow() {
	if m.recalc != nil {
		m.recalc.Cancel()
	}
	m.applyRecalc(stage.Home)
}

// applyRecalc pushes fresh percentages into the navigator.
func (m *AppModel) applyRecalc(s stage.Stage) {
	for _, st := range []stage.Stage{stage.Empathy, stage.Reasoning} {
		if s != stage.Home && s != st {
			continue
		}
		m.Nav.UpdateProgress(st, m.computeProgress(st))
	}
}

// computeProgress runs the calculator for s over the current inputs.
func (m AppModel) computeProgress(s stage.Stage) int {
	f := m.Forms[s]
	if f == nil {
		return 0
	}
	switch s {
	case stage.Empathy:
		return progress.Empathy(f.EmpathyInput())
	case stage.Reasoning:
		return progress.Reasoning(f.ReasoningInput())
	}
	return 0
}
