package ui

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/papapumpkin/bbdl/internal/ansi"
	"github.com/papapumpkin/bbdl/internal/orbit"
	"github.com/papapumpkin/bbdl/internal/stage"
	"github.com/papapumpkin/bbdl/internal/telemetry"
)

type Printer struct{}

func New() *Printer {
	return &Printer{}
}

func (p *Printer) Banner() {
	fmt.Fprintln(os.Stderr, ansi.Bold+ansi.Cyan+"  ╔═══════════════════════════════════╗"+ansi.Reset)
	fmt.Fprintln(os.Stderr, ansi.Bold+ansi.Cyan+"  ║"+ansi.Reset+ansi.Bold+"   BBDL  "+ansi.Dim+"sustainable design process"+ansi.Reset+ansi.Bold+ansi.Cyan+"  ║"+ansi.Reset)
	fmt.Fprintln(os.Stderr, ansi.Bold+ansi.Cyan+"  ╚═══════════════════════════════════╝"+ansi.Reset)
	fmt.Fprintln(os.Stderr)
}

func (p *Printer) Error(msg string) {
	fmt.Fprintf(os.Stderr, ansi.Red+ansi.Bold+"error: "+ansi.Reset+"%s\n", msg)
}

func (p *Printer) Warn(msg string) {
	fmt.Fprintf(os.Stderr, ansi.Yellow+ansi.Bold+"warning: "+ansi.Reset+"%s\n", msg)
}

func (p *Printer) Info(msg string) {
	fmt.Fprintf(os.Stderr, ansi.Dim+"%s"+ansi.Reset+"\n", msg)
}

// DatasetValidateResult reports the outcome of validating a dataset file.
func (p *Printer) DatasetValidateResult(path string, c *orbit.Catalog, errs []orbit.ValidationError) {
	if len(errs) == 0 {
		items := 0
		for _, m := range c.Maps {
			items += len(m.Items)
		}
		fmt.Fprintf(os.Stderr, ansi.Green+ansi.Bold+"✓ dataset %q"+ansi.Reset+" (v%s) %d ring(s), %d map(s), %d item(s), no errors\n",
			path, c.Version, len(c.Rings), len(c.Maps), items)
		return
	}
	fmt.Fprintf(os.Stderr, ansi.Red+ansi.Bold+"✗ dataset %q"+ansi.Reset+" %d error(s):\n", path, len(errs))
	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "  "+ansi.Red+"• "+ansi.Reset+"%s\n", e.Error())
	}
}

// ProgressSummary prints one line per working stage with its percentage
// and whether the stage is currently reachable.
func (p *Printer) ProgressSummary(current stage.Stage, pm stage.ProgressMap) {
	fmt.Fprintf(os.Stderr, ansi.Bold+"stage:"+ansi.Reset+" %s\n", current.Title())
	for _, s := range stage.Process() {
		lock := ansi.Green + "open" + ansi.Reset
		if !pm.Accessible(s) {
			lock = ansi.Dim + "locked" + ansi.Reset
		}
		fmt.Fprintf(os.Stderr, "  %-16s %s %3d%%  %s\n", s.Title(), Bar(pm.Get(s), 20), pm.Get(s), lock)
	}
}

// Bar renders a fixed-width text progress bar for a percentage in [0,100].
func Bar(pct, width int) string {
	pct = stage.Clamp(pct)
	filled := pct * width / 100
	return "[" + strings.Repeat("█", filled) + strings.Repeat("·", width-filled) + "]"
}

// OrbitFrame prints the visible placements after tick rotation steps and
// returns the number of lines written.
func (p *Printer) OrbitFrame(tick int, rot orbit.Rotation, placements []orbit.Placement) int {
	fmt.Fprintf(os.Stderr, "\n"+ansi.Bold+ansi.Magenta+"── tick %d ──"+ansi.Reset+"\n", tick)
	lines := 2
	for _, id := range sortedRingIDs(rot) {
		fmt.Fprintf(os.Stderr, ansi.Dim+"  ring %d rotation %7.3f°"+ansi.Reset+"\n", id, rot[id])
		lines++
	}
	if len(placements) == 0 {
		fmt.Fprintln(os.Stderr, ansi.Dim+"  (no items)"+ansi.Reset)
		return lines + 1
	}
	for _, pl := range placements {
		fmt.Fprintf(os.Stderr, "  "+ansi.Cyan+"%d"+ansi.Reset+" %7.2f° label(%8.2f, %8.2f) w=%3d  %s\n",
			pl.Item.Ring, pl.Angle, pl.Label.X, pl.Label.Y, pl.LabelWidth, pl.Item.Text)
		lines++
	}
	return lines
}

// Rewind erases the last n lines so the next frame overwrites them.
func (p *Printer) Rewind(n int) {
	fmt.Fprint(os.Stderr, ansi.Rewind(n))
}

func sortedRingIDs(rot orbit.Rotation) []int {
	ids := make([]int, 0, len(rot))
	for id := range rot {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// JournalLine formats a journal event for terminal display, with its age
// relative to now.
func JournalLine(evt telemetry.Event, now time.Time) string {
	var b strings.Builder
	b.WriteString(ansi.Dim + humanize.RelTime(evt.Timestamp, now, "ago", "from now") + ansi.Reset + " ")
	b.WriteString(ansi.Bold + evt.Kind + ansi.Reset)
	if evt.Stage != "" {
		b.WriteString(" " + ansi.Cyan + evt.Stage + ansi.Reset)
	}
	if evt.Data != nil {
		fmt.Fprintf(&b, " %v", evt.Data)
	}
	return b.String()
}

// JournalEvent writes a single journal event line.
func (p *Printer) JournalEvent(evt telemetry.Event) {
	fmt.Fprintln(os.Stderr, JournalLine(evt, time.Now()))
}

// JournalSummary prints event counts for a journal with humanized totals.
func (p *Printer) JournalSummary(events []telemetry.Event) {
	if len(events) == 0 {
		fmt.Fprintln(os.Stderr, ansi.Dim+"journal is empty"+ansi.Reset)
		return
	}
	sessions := make(map[string]bool)
	for _, e := range events {
		sessions[e.SessionID] = true
	}
	first, last := events[0].Timestamp, events[len(events)-1].Timestamp
	fmt.Fprintf(os.Stderr, ansi.Bold+"%s event(s)"+ansi.Reset+" across %d session(s), spanning %s\n",
		humanize.Comma(int64(len(events))), len(sessions), strings.TrimSpace(humanize.RelTime(first, last, "", "")))
}
