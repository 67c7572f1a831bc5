// Package stage models the three-stage BBDL design process: the closed set of
// stages, per-stage progress, and the navigator that moves between them.
package stage

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownStage indicates a stage key outside the closed set.
var ErrUnknownStage = errors.New("unknown stage")

// Stage identifies one step of the process. The zero value is Home.
type Stage int

const (
	Home Stage = iota
	Empathy
	Reasoning
	Materialization
)

// stageCount is the number of members in the closed set.
const stageCount = 4

// Info is the static metadata attached to a stage.
type Info struct {
	Key   string // lowercase identifier used in config, journal and CLI flags
	Title string
	Color string // hex color used by every renderer
	Order int    // position in the fixed sequence
	// Requires is the stage whose progress unlocks this one. Home means the
	// stage is always open; Home itself has no progress to gate on.
	Requires Stage
}

var infos = [stageCount]Info{
	Home:            {Key: "home", Color: "#00BFFF"},
	Empathy:         {Key: "empathy", Color: "#7CC9E8"},
	Reasoning:       {Key: "reasoning", Color: "#FCC900", Requires: Empathy},
	Materialization: {Key: "materialization", Color: "#F85974", Requires: Reasoning},
}

func init() {
	title := cases.Title(language.English)
	for i := range infos {
		infos[i].Title = title.String(infos[i].Key)
		infos[i].Order = i
	}
}

// All returns every stage in sequence order, Home first.
func All() []Stage {
	return []Stage{Home, Empathy, Reasoning, Materialization}
}

// Process returns the three working stages (everything except Home).
func Process() []Stage {
	return []Stage{Empathy, Reasoning, Materialization}
}

// Valid reports whether s is a member of the closed set.
func (s Stage) Valid() bool {
	return s >= Home && s < stageCount
}

// Info returns the metadata for s. Invalid stages get a placeholder entry.
func (s Stage) Info() Info {
	if !s.Valid() {
		return Info{Key: "unknown", Title: "Unknown", Color: "#636363", Order: -1}
	}
	return infos[s]
}

// String returns the stage key.
func (s Stage) String() string { return s.Info().Key }

// Title returns the capitalized display name.
func (s Stage) Title() string { return s.Info().Title }

// Color returns the stage's hex color.
func (s Stage) Color() string { return s.Info().Color }

// Requires returns the stage that must reach UnlockThreshold before s opens.
// ok is false for stages that are always open and for invalid stages.
func (s Stage) Requires() (prereq Stage, ok bool) {
	if !s.Valid() || infos[s].Requires == Home {
		return Home, false
	}
	return infos[s].Requires, true
}

// ParseStage converts a key such as "Reasoning" into a Stage.
func ParseStage(key string) (Stage, error) {
	k := strings.ToLower(strings.TrimSpace(key))
	for i, info := range infos {
		if info.Key == k {
			return Stage(i), nil
		}
	}
	return Home, fmt.Errorf("%w: %q", ErrUnknownStage, key)
}

// MarshalText implements encoding.TextMarshaler so stages serialize by key.
func (s Stage) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStage, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Stage) UnmarshalText(b []byte) error {
	v, err := ParseStage(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
