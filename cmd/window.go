package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/bbdl/internal/config"
	"github.com/papapumpkin/bbdl/internal/orbit"
	"github.com/papapumpkin/bbdl/internal/orbitwin"
	"github.com/papapumpkin/bbdl/internal/ui"
)

// windowCmd opens the orbit presentation in a desktop window.
var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Open the orbit presentation in a desktop window",
	Long: `Opens a window showing the rotating rings of the selected map.
Keys: 1/2/3 toggle rings, m switches map, space pauses, esc quits.`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().String("dataset", "", "orbit dataset TOML file (default: built-in maps)")
	windowCmd.Flags().String("map", "", "map key to start on (default: first map with items)")
	rootCmd.AddCommand(windowCmd)
}

func runWindow(cmd *cobra.Command, _ []string) error {
	printer := ui.New()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dataset, _ := cmd.Flags().GetString("dataset")
	if dataset == "" {
		dataset = cfg.Dataset
	}
	catalog, err := loadCatalog(printer, dataset)
	if err != nil {
		return err
	}

	scene := orbitwin.NewScene(catalog, cfg.RotationInterval)
	if key, _ := cmd.Flags().GetString("map"); key != "" {
		if err := scene.Select(key); err != nil {
			return fmt.Errorf("map %q: %w", key, err)
		}
	}

	opts := orbitwin.Options{Width: cfg.Window.Width, Height: cfg.Window.Height, Scale: cfg.Window.Scale}
	if dataset != "" {
		w, err := orbit.NewWatcher(dataset)
		if err == nil {
			err = w.Start()
		}
		if err != nil {
			printer.Warn(fmt.Sprintf("dataset hot reload unavailable: %v", err))
		} else {
			defer w.Stop()
			opts.Reloads = w.Reloads
		}
	}

	if err := orbitwin.Run(scene, opts); err != nil {
		if errors.Is(err, orbitwin.ErrUnavailable) {
			printer.Error("this binary was built without window support (nowindow tag)")
		}
		return err
	}
	return nil
}
