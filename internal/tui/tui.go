// Package tui provides the BubbleTea-based terminal UI for the design process.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/bbdl/internal/orbit"
	"github.com/papapumpkin/bbdl/internal/progress"
)

// Program is an alias for tea.Program, exposed so callers don't need
// to import bubbletea directly.
type Program = tea.Program

// NewProgram creates a BubbleTea program for opts. Keystrokes on stage pages
// are coalesced over debounce before progress is recalculated.
// The program uses the alternate screen buffer for a clean TUI experience.
func NewProgram(opts Options, debounce time.Duration, popts ...tea.ProgramOption) *Program {
	model := NewAppModel(opts)

	// The debouncer needs the program to deliver results, and the program
	// needs the model; p is assigned before any Trigger can fire.
	var p *tea.Program
	model.SetDebouncer(progress.NewDebouncer(debounce, func() {
		p.Send(MsgRecalc{})
	}))

	allOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
	}
	allOpts = append(allOpts, popts...)

	p = tea.NewProgram(model, allOpts...)
	return p
}

// WatchDataset forwards reloads from w into p until w is stopped.
func WatchDataset(p *Program, w *orbit.Watcher) {
	go func() {
		for r := range w.Reloads {
			p.Send(MsgDatasetReloaded{Reload: r})
		}
	}()
}
