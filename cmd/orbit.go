package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/bbdl/internal/config"
	"github.com/papapumpkin/bbdl/internal/orbit"
	"github.com/papapumpkin/bbdl/internal/ui"
)

// orbitCmd prints the orbit layout after a number of rotation ticks.
var orbitCmd = &cobra.Command{
	Use:   "orbit",
	Short: "Print the orbit layout of a map after N rotation ticks",
	Long: `Computes where every visible item of a map sits after the given number
of rotation ticks and prints the angles and label positions. Useful for
checking a dataset without opening the TUI or the window.`,
	Args: cobra.NoArgs,
	RunE: runOrbit,
}

func init() {
	orbitCmd.Flags().String("dataset", "", "orbit dataset TOML file (default: built-in maps)")
	orbitCmd.Flags().Int("ticks", 0, "rotation ticks to apply")
	orbitCmd.Flags().String("rings", "1", "comma-separated visible ring ids, e.g. 1,3")
	orbitCmd.Flags().String("map", "", "map key (default: first map with items)")
	orbitCmd.Flags().Int("frames", 1, "number of frames to print, one tick apart")
	orbitCmd.Flags().Duration("every", 0, "delay between frames (default: rotation_interval)")
	rootCmd.AddCommand(orbitCmd)
}

func runOrbit(cmd *cobra.Command, _ []string) error {
	printer := ui.New()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dataset, _ := cmd.Flags().GetString("dataset")
	catalog, err := loadCatalog(printer, dataset)
	if err != nil {
		return err
	}

	ticks, _ := cmd.Flags().GetInt("ticks")
	if ticks < 0 {
		return fmt.Errorf("--ticks must not be negative, got %d", ticks)
	}

	ringsFlag, _ := cmd.Flags().GetString("rings")
	active, err := parseRings(ringsFlag, catalog.Rings)
	if err != nil {
		return err
	}

	key, _ := cmd.Flags().GetString("map")
	var m orbit.Map
	if key == "" {
		first, ok := catalog.First()
		if !ok {
			return fmt.Errorf("dataset has no map with items: %w", orbit.ErrEmptyMap)
		}
		m = first
	} else if m, err = catalog.Select(key); err != nil {
		return fmt.Errorf("map %q: %w", key, err)
	}

	frames, _ := cmd.Flags().GetInt("frames")
	every, _ := cmd.Flags().GetDuration("every")
	if every <= 0 {
		every = cfg.RotationInterval
	}

	rot := orbit.NewRotation(catalog.Rings).AdvanceN(catalog.Rings, ticks)
	printer.Info(fmt.Sprintf("map %s (%s), rings %s", m.Key, m.Name, active))

	// On a terminal, later frames overwrite the previous one.
	inPlace := isStderrTTY()
	lines := 0
	for i := 0; i < max(frames, 1); i++ {
		if i > 0 {
			time.Sleep(every)
			if inPlace {
				printer.Rewind(lines)
			}
			rot = rot.Advance(catalog.Rings)
		}
		lines = printer.OrbitFrame(ticks+i, rot, orbit.Layout(m.Items, rot, catalog.Rings, active))
	}
	return nil
}

// parseRings turns "1,3" into an active ring set, rejecting unknown ids.
func parseRings(s string, rings orbit.Rings) (orbit.ActiveRings, error) {
	var ids []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		id, err := strconv.Atoi(f)
		if err != nil {
			return orbit.ActiveRings{}, fmt.Errorf("--rings: %q is not a ring id", f)
		}
		if _, ok := rings.Get(id); !ok {
			return orbit.ActiveRings{}, fmt.Errorf("--rings: ring %d: %w", id, orbit.ErrUnknownRing)
		}
		ids = append(ids, id)
	}
	return orbit.ActiveFrom(ids...), nil
}
