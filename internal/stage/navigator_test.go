package stage

import (
	"sync"
	"testing"
)

func TestNavigatorStartsAtHome(t *testing.T) {
	t.Parallel()
	n := NewNavigator()
	if got := n.Current(); got != Home {
		t.Errorf("Current() = %v, want home", got)
	}
	for _, s := range Process() {
		if got := n.Progress().Get(s); got != 0 {
			t.Errorf("Progress()[%v] = %d, want 0", s, got)
		}
	}
}

func TestUpdateProgressClamps(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		value int
		want  int
	}{
		{"negative", -5, 0},
		{"zero", 0, 0},
		{"middle", 42, 42},
		{"full", 100, 100},
		{"overflow", 250, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			n := NewNavigator()
			n.UpdateProgress(Empathy, tt.value)
			if got := n.Progress().Get(Empathy); got != tt.want {
				t.Errorf("UpdateProgress(%d) stored %d, want %d", tt.value, got, tt.want)
			}
			if n.Current() != Home {
				t.Errorf("UpdateProgress moved the current stage to %v", n.Current())
			}
		})
	}
}

func TestUpdateProgressIgnoresHome(t *testing.T) {
	t.Parallel()
	n := NewNavigator()
	n.UpdateProgress(Home, 80)
	if _, ok := n.Progress()[Home]; ok {
		t.Error("expected Home to have no progress entry")
	}
}

func TestIsAccessible(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		empathy   int
		reasoning int
		stage     Stage
		want      bool
	}{
		{"home always", 0, 0, Home, true},
		{"empathy always", 0, 0, Empathy, true},
		{"reasoning locked", 49, 0, Reasoning, false},
		{"reasoning unlocked at threshold", 50, 0, Reasoning, true},
		{"materialization locked", 100, 49, Materialization, false},
		{"materialization unlocked", 0, 66, Materialization, true},
		{"out of range", 100, 100, Stage(9), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			n := NewNavigator()
			n.UpdateProgress(Empathy, tt.empathy)
			n.UpdateProgress(Reasoning, tt.reasoning)
			if got := n.IsAccessible(tt.stage); got != tt.want {
				t.Errorf("IsAccessible(%v) = %v, want %v", tt.stage, got, tt.want)
			}
		})
	}
}

func TestNextWalksSequence(t *testing.T) {
	t.Parallel()
	n := NewNavigator()
	want := []Stage{Empathy, Reasoning, Materialization, Materialization, Materialization}
	for i, w := range want {
		n.Next()
		if got := n.Current(); got != w {
			t.Fatalf("after %d Next() calls Current() = %v, want %v", i+1, got, w)
		}
	}
}

func TestPrevWalksSequence(t *testing.T) {
	t.Parallel()
	n := NewNavigator()
	n.GoTo(Materialization)
	want := []Stage{Reasoning, Empathy, Home, Home, Home}
	for i, w := range want {
		n.Prev()
		if got := n.Current(); got != w {
			t.Fatalf("after %d Prev() calls Current() = %v, want %v", i+1, got, w)
		}
	}
}

func TestGoToBypassesGate(t *testing.T) {
	t.Parallel()
	n := NewNavigator()
	n.GoTo(Materialization)
	if got := n.Current(); got != Materialization {
		t.Errorf("GoTo(materialization) = %v, want materialization", got)
	}
	n.GoTo(Stage(-1))
	if got := n.Current(); got != Materialization {
		t.Errorf("GoTo(invalid) changed stage to %v", got)
	}
}

func TestNavigateRespectsGate(t *testing.T) {
	t.Parallel()
	n := NewNavigator()

	if n.Navigate(Reasoning) {
		t.Error("Navigate(reasoning) allowed with zero empathy progress")
	}
	if n.Current() != Home {
		t.Errorf("refused Navigate changed stage to %v", n.Current())
	}

	n.UpdateProgress(Empathy, 66)
	if !n.Navigate(Reasoning) {
		t.Fatal("Navigate(reasoning) refused after empathy reached 66")
	}
	if n.Current() != Reasoning {
		t.Errorf("Current() = %v, want reasoning", n.Current())
	}
	if n.Navigate(Materialization) {
		t.Error("Navigate(materialization) allowed with zero reasoning progress")
	}
}

func TestNavigationNeverLowersProgress(t *testing.T) {
	t.Parallel()
	n := NewNavigator()
	n.UpdateProgress(Empathy, 66)
	n.Next()
	n.Next()
	n.Prev()
	n.GoTo(Home)
	if got := n.Progress().Get(Empathy); got != 66 {
		t.Errorf("empathy progress = %d after navigation, want 66", got)
	}
}

func TestProgressSnapshotIsCopy(t *testing.T) {
	t.Parallel()
	n := NewNavigator()
	snap := n.Progress()
	snap[Empathy] = 99
	if got := n.Progress().Get(Empathy); got != 0 {
		t.Errorf("mutating snapshot leaked into navigator: %d", got)
	}
}

func TestSubscribe(t *testing.T) {
	t.Parallel()
	n := NewNavigator()

	var events []Event
	unsubscribe := n.Subscribe(func(e Event) { events = append(events, e) })

	n.Next()                     // home -> empathy
	n.Prev()                     // empathy -> home
	n.Prev()                     // no-op
	n.Navigate(Reasoning)        // refused
	n.UpdateProgress(Empathy, 0) // unchanged
	n.UpdateProgress(Empathy, 70)

	want := []Event{
		{Kind: EventStageChanged, From: Home, To: Empathy},
		{Kind: EventStageChanged, From: Empathy, To: Home},
		{Kind: EventProgressUpdated, Stage: Empathy, Progress: 70},
	}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d: %+v", len(events), len(want), events)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, events[i], want[i])
		}
	}

	unsubscribe()
	unsubscribe()
	n.Next()
	if len(events) != len(want) {
		t.Errorf("listener still called after unsubscribe")
	}
}

func TestNavigatorConcurrentUse(t *testing.T) {
	t.Parallel()
	n := NewNavigator()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				n.UpdateProgress(Empathy, j)
				n.Next()
				_ = n.IsAccessible(Reasoning)
				n.Prev()
			}
		}(i)
	}
	wg.Wait()

	if !n.Current().Valid() {
		t.Errorf("Current() = %d, outside the closed set", n.Current())
	}
}
