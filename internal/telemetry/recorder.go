package telemetry

import (
	"github.com/papapumpkin/bbdl/internal/stage"
)

// StageChange is the payload of a stage_changed event.
type StageChange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// ProgressUpdate is the payload of a progress_updated event.
type ProgressUpdate struct {
	Percent int `json:"percent"`
}

// RingToggle is the payload of a ring_toggled event.
type RingToggle struct {
	Ring   int   `json:"ring"`
	Active []int `json:"active"`
}

// MapSelection is the payload of a map_selected event.
type MapSelection struct {
	Map   string `json:"map"`
	Items int    `json:"items"`
}

// Record subscribes to nav and journals every stage change and progress
// update. The returned func detaches the subscription. Emit errors are
// dropped; the journal is best effort.
func (e *Emitter) Record(nav *stage.Navigator) (detach func()) {
	if e == nil {
		return func() {}
	}
	return nav.Subscribe(func(evt stage.Event) {
		switch evt.Kind {
		case stage.EventStageChanged:
			_ = e.Emit(Event{
				Kind:  KindStageChanged,
				Stage: evt.To.String(),
				Data:  StageChange{From: evt.From.String(), To: evt.To.String()},
			})
		case stage.EventProgressUpdated:
			_ = e.Emit(Event{
				Kind:  KindProgressUpdated,
				Stage: evt.Stage.String(),
				Data:  ProgressUpdate{Percent: evt.Progress},
			})
		}
	})
}
