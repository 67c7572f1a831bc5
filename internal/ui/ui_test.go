package ui

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/papapumpkin/bbdl/internal/ansi"
	"github.com/papapumpkin/bbdl/internal/orbit"
	"github.com/papapumpkin/bbdl/internal/stage"
	"github.com/papapumpkin/bbdl/internal/telemetry"
)

// captureStderr redirects os.Stderr to a pipe and returns the captured output.
func captureStderr(fn func()) string {
	r, w, _ := os.Pipe()
	orig := os.Stderr
	os.Stderr = w

	fn()

	w.Close()
	os.Stderr = orig

	buf := make([]byte, 8192)
	n, _ := r.Read(buf)
	r.Close()
	return string(buf[:n])
}

func TestBar(t *testing.T) {
	tests := []struct {
		pct, width int
		want       string
	}{
		{0, 4, "[····]"},
		{50, 4, "[██··]"},
		{100, 4, "[████]"},
		{150, 4, "[████]"},
		{-5, 4, "[····]"},
		{66, 10, "[██████····]"},
	}
	for _, tt := range tests {
		if got := Bar(tt.pct, tt.width); got != tt.want {
			t.Errorf("Bar(%d, %d) = %q, want %q", tt.pct, tt.width, got, tt.want)
		}
	}
}

func TestProgressSummary(t *testing.T) {
	p := New()
	pm := stage.ProgressMap{stage.Empathy: 66, stage.Reasoning: 10}
	output := captureStderr(func() {
		p.ProgressSummary(stage.Reasoning, pm)
	})

	checks := []struct {
		name   string
		substr string
	}{
		{"current stage", "Reasoning"},
		{"empathy percent", " 66%"},
		{"reasoning percent", " 10%"},
		{"materialization locked", "locked"},
	}
	for _, c := range checks {
		if !strings.Contains(output, c.substr) {
			t.Errorf("expected output to contain %s (%q), got:\n%s", c.name, c.substr, output)
		}
	}
}

func TestDatasetValidateResult(t *testing.T) {
	p := New()

	t.Run("clean", func(t *testing.T) {
		output := captureStderr(func() {
			p.DatasetValidateResult("maps.toml", orbit.DefaultCatalog(), nil)
		})
		if !strings.Contains(output, "no errors") || !strings.Contains(output, "17 item(s)") {
			t.Errorf("unexpected output:\n%s", output)
		}
	})

	t.Run("errors", func(t *testing.T) {
		errs := []orbit.ValidationError{
			{Category: orbit.ValCatAngle, MapKey: "m", Index: 2, Field: "angle", Err: orbit.ErrAngleRange},
		}
		output := captureStderr(func() {
			p.DatasetValidateResult("bad.toml", nil, errs)
		})
		if !strings.Contains(output, "1 error(s)") {
			t.Errorf("expected error count, got:\n%s", output)
		}
		if !strings.Contains(output, errs[0].Error()) {
			t.Errorf("expected error text, got:\n%s", output)
		}
	})
}

func TestOrbitFrame(t *testing.T) {
	p := New()
	rings := orbit.DefaultRings()
	rot := orbit.NewRotation(rings)
	items := []orbit.Item{{Ring: 1, Angle: 0, Text: "Cyrkularność"}}
	var lines int
	output := captureStderr(func() {
		lines = p.OrbitFrame(0, rot, orbit.Layout(items, rot, rings, orbit.NewActiveRings()))
	})
	if got := strings.Count(output, "\n"); got != lines {
		t.Errorf("OrbitFrame reported %d lines, wrote %d", lines, got)
	}
	for _, want := range []string{"tick 0", "ring 1", "ring 3", "Cyrkularność"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}

	empty := captureStderr(func() { lines = p.OrbitFrame(1, rot, nil) })
	if !strings.Contains(empty, "(no items)") {
		t.Errorf("expected empty marker, got:\n%s", empty)
	}
	if lines != 6 {
		t.Errorf("empty frame lines = %d, want 6", lines)
	}
}

func TestRewind(t *testing.T) {
	p := New()
	out := captureStderr(func() { p.Rewind(2) })
	if out != ansi.Rewind(2) {
		t.Errorf("Rewind wrote %q", out)
	}
}

func TestJournalLine(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	evt := telemetry.Event{
		Timestamp: now.Add(-3 * time.Minute),
		Kind:      telemetry.KindStageChanged,
		Stage:     "reasoning",
	}
	line := JournalLine(evt, now)
	for _, want := range []string{"3 minutes ago", "stage_changed", "reasoning"} {
		if !strings.Contains(line, want) {
			t.Errorf("JournalLine = %q, want it to contain %q", line, want)
		}
	}
}

func TestJournalSummary(t *testing.T) {
	p := New()
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	events := []telemetry.Event{
		{Timestamp: start, Kind: telemetry.KindSessionStart, SessionID: "a"},
		{Timestamp: start.Add(2 * time.Hour), Kind: telemetry.KindSessionEnd, SessionID: "a"},
		{Timestamp: start.Add(2 * time.Hour), Kind: telemetry.KindSessionStart, SessionID: "b"},
	}
	output := captureStderr(func() { p.JournalSummary(events) })
	if !strings.Contains(output, "3 event(s)") || !strings.Contains(output, "2 session(s)") {
		t.Errorf("unexpected summary:\n%s", output)
	}
	if !strings.Contains(output, "2 hours") {
		t.Errorf("expected humanized span, got:\n%s", output)
	}

	empty := captureStderr(func() { p.JournalSummary(nil) })
	if !strings.Contains(empty, "empty") {
		t.Errorf("expected empty notice, got:\n%s", empty)
	}
}
