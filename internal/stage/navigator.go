package stage

import "sync"

// EventKind distinguishes navigator notifications.
type EventKind int

const (
	// EventStageChanged is emitted when the current stage moves.
	EventStageChanged EventKind = iota
	// EventProgressUpdated is emitted when a stored percentage changes.
	EventProgressUpdated
)

// Event describes a state change observed by a subscriber.
type Event struct {
	Kind     EventKind
	From     Stage // previous stage (EventStageChanged)
	To       Stage // new stage (EventStageChanged)
	Stage    Stage // stage whose progress changed (EventProgressUpdated)
	Progress int   // new percentage (EventProgressUpdated)
}

// Navigator owns the current stage and the progress map for one session.
// Listeners are invoked synchronously after the state change, outside the lock.
// It is safe for concurrent use.
type Navigator struct {
	mu        sync.RWMutex
	current   Stage
	progress  ProgressMap
	listeners map[int]func(Event)
	nextID    int
}

// NewNavigator returns a navigator positioned at Home with zero progress.
func NewNavigator() *Navigator {
	return &Navigator{
		progress:  make(ProgressMap),
		listeners: make(map[int]func(Event)),
	}
}

// Current returns the active stage.
func (n *Navigator) Current() Stage {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.current
}

// Progress returns a snapshot of the progress map.
func (n *Navigator) Progress() ProgressMap {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.progress.Clone()
}

// IsAccessible reports whether s may be entered through a navigation link.
func (n *Navigator) IsAccessible(s Stage) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.progress.Accessible(s)
}

// GoTo jumps to target without consulting the unlock rule. Values outside the
// closed set are ignored. Callers that represent user links should use Navigate.
func (n *Navigator) GoTo(target Stage) {
	if !target.Valid() {
		return
	}
	n.move(func(Stage) Stage { return target })
}

// Navigate is the gated jump: it moves to target only when the stage is
// accessible and reports whether the move was allowed.
func (n *Navigator) Navigate(target Stage) bool {
	n.mu.Lock()
	if !target.Valid() || !n.progress.Accessible(target) {
		n.mu.Unlock()
		return false
	}
	from := n.current
	n.current = target
	n.mu.Unlock()

	if from != target {
		n.notify(Event{Kind: EventStageChanged, From: from, To: target})
	}
	return true
}

// Next advances one step along the fixed sequence. It stops at Materialization.
func (n *Navigator) Next() {
	n.move(func(cur Stage) Stage {
		if cur >= Materialization {
			return cur
		}
		return cur + 1
	})
}

// Prev steps back along the fixed sequence. It stops at Home.
func (n *Navigator) Prev() {
	n.move(func(cur Stage) Stage {
		if cur <= Home {
			return cur
		}
		return cur - 1
	})
}

// UpdateProgress stores clamp(value, 0, 100) for s. Home has no progress and is ignored.
func (n *Navigator) UpdateProgress(s Stage, value int) {
	if !s.Valid() || s == Home {
		return
	}
	v := Clamp(value)

	n.mu.Lock()
	old := n.progress.Get(s)
	n.progress[s] = v
	n.mu.Unlock()

	if old == v {
		return
	}
	n.notify(Event{Kind: EventProgressUpdated, Stage: s, Progress: v})
}

// Subscribe registers fn for future events and returns a function that removes it.
func (n *Navigator) Subscribe(fn func(Event)) (unsubscribe func()) {
	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.listeners[id] = fn
	n.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.listeners, id)
			n.mu.Unlock()
		})
	}
}

func (n *Navigator) move(step func(Stage) Stage) {
	n.mu.Lock()
	from := n.current
	to := step(from)
	n.current = to
	n.mu.Unlock()

	if from != to {
		n.notify(Event{Kind: EventStageChanged, From: from, To: to})
	}
}

func (n *Navigator) notify(evt Event) {
	n.mu.RLock()
	fns := make([]func(Event), 0, len(n.listeners))
	for id := 0; id < n.nextID; id++ {
		if fn, ok := n.listeners[id]; ok {
			fns = append(fns, fn)
		}
	}
	n.mu.RUnlock()

	for _, fn := range fns {
		fn(evt)
	}
}
