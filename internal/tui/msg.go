package tui

import (
	"time"

	"github.com/papapumpkin/bbdl/internal/orbit"
	"github.com/papapumpkin/bbdl/internal/stage"
)

// MsgRotate advances every orbit ring by one step.
type MsgRotate struct {
	Time time.Time
}

// MsgHighlight advances the home page stage highlight.
type MsgHighlight struct {
	Time time.Time
}

// MsgRecalc asks the model to recompute the progress of a stage from the
// current field contents. It is sent once input has settled. The zero
// Stage (Home) recalculates every stage that has inputs.
type MsgRecalc struct {
	Stage stage.Stage
}

// MsgDatasetReloaded carries a re-read of the watched dataset file.
type MsgDatasetReloaded struct {
	Reload orbit.Reload
}

// MsgInfo is sent for informational messages.
type MsgInfo struct {
	Msg string
}

// MsgError is sent for error messages.
type MsgError struct {
	Msg string
}
