// Package telemetry provides a JSONL journal of design-session activity.
// Every stage change, progress update, ring toggle, and map selection is
// recorded as a structured JSON event so a session can be reviewed later.
package telemetry

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event kinds identify the type of journal event.
const (
	KindSessionStart    = "session_start"
	KindSessionEnd      = "session_end"
	KindStageChanged    = "stage_changed"
	KindProgressUpdated = "progress_updated"
	KindRingToggled     = "ring_toggled"
	KindMapSelected     = "map_selected"
	KindDatasetReloaded = "dataset_reloaded"
)

// Event represents a single journal record. Each event carries a timestamp,
// a kind tag, the session it belongs to, and optional structured data.
type Event struct {
	Timestamp time.Time `json:"ts"`
	Kind      string    `json:"kind"`
	SessionID string    `json:"session,omitempty"`
	Stage     string    `json:"stage,omitempty"`
	Data      any       `json:"data,omitempty"`
}

// Emitter writes journal events to a JSONL file. It is safe for concurrent
// use by multiple goroutines. A nil *Emitter is a valid no-op emitter.
type Emitter struct {
	file    *os.File
	enc     *json.Encoder
	mu      sync.Mutex
	session string
	now     func() time.Time
}

// NewEmitter creates a new Emitter that writes JSONL events to the file at
// path. The file is created if it does not exist, or appended to if it does.
// Each Emitter stamps its events with a fresh random session ID.
func NewEmitter(path string) (*Emitter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("telemetry: open %s: %w", path, err)
	}
	return &Emitter{
		file:    f,
		enc:     json.NewEncoder(f),
		session: uuid.NewString(),
		now:     time.Now,
	}, nil
}

// SessionID returns the ID stamped on every event. A nil Emitter has none.
func (e *Emitter) SessionID() string {
	if e == nil {
		return ""
	}
	return e.session
}

// Emit writes a single event to the JSONL file. Zero timestamps and an empty
// session ID are filled in. Calling Emit on a nil Emitter is a no-op.
func (e *Emitter) Emit(evt Event) error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if evt.Timestamp.IsZero() {
		evt.Timestamp = e.now().UTC()
	}
	if evt.SessionID == "" {
		evt.SessionID = e.session
	}
	if err := e.enc.Encode(evt); err != nil {
		return fmt.Errorf("telemetry: encode event: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying file. Calling Close on a nil
// Emitter is a no-op.
func (e *Emitter) Close() error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.file.Close(); err != nil {
		return fmt.Errorf("telemetry: close: %w", err)
	}
	return nil
}

// Decode reads JSONL events from r. Blank lines are skipped; a malformed
// line stops decoding and reports its line number.
func Decode(r io.Reader) ([]Event, error) {
	var out []Event
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		b := sc.Bytes()
		if len(b) == 0 {
			continue
		}
		var evt Event
		if err := json.Unmarshal(b, &evt); err != nil {
			return out, fmt.Errorf("telemetry: line %d: %w", line, err)
		}
		out = append(out, evt)
	}
	if err := sc.Err(); err != nil {
		return out, fmt.Errorf("telemetry: read: %w", err)
	}
	return out, nil
}

// ReadFile decodes every event in the journal at path.
func ReadFile(path string) ([]Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("telemetry: open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}
