package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/bbdl/internal/config"
	"github.com/papapumpkin/bbdl/internal/orbit"
	"github.com/papapumpkin/bbdl/internal/stage"
	"github.com/papapumpkin/bbdl/internal/telemetry"
	"github.com/papapumpkin/bbdl/internal/tui"
	"github.com/papapumpkin/bbdl/internal/ui"
)

// tuiCmd launches the interactive design-process TUI.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive design-process TUI",
	Long: `Launch the BBDL TUI. The home page introduces the three stages; each
stage page collects notes and patterns and reports its progress. The
Materialization stage shows the orbit presentation of the selected map.

With --dataset, the orbit maps are read from a TOML file and reloaded
whenever it changes. With --journal, session activity is appended to a
JSONL file that "bbdl journal" can print.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().String("dataset", "", "orbit dataset TOML file (default: built-in maps)")
	tuiCmd.Flags().String("journal", "", "append session events to this JSONL file")
	tuiCmd.Flags().Bool("no-splash", false, "skip the startup splash animation")
	tuiCmd.Flags().Bool("enforce-gate", false, "home cards refuse stages that are still locked")
	_ = viper.BindPFlag("dataset", tuiCmd.Flags().Lookup("dataset"))
	_ = viper.BindPFlag("journal", tuiCmd.Flags().Lookup("journal"))
	_ = viper.BindPFlag("no_splash", tuiCmd.Flags().Lookup("no-splash"))
	_ = viper.BindPFlag("enforce_gate", tuiCmd.Flags().Lookup("enforce-gate"))
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	printer := ui.New()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if !isStderrTTY() {
		return errors.New("bbdl tui requires a TTY (terminal)")
	}

	catalog, err := loadCatalog(printer, cfg.Dataset)
	if err != nil {
		return err
	}

	journal, err := openJournal(cfg.Journal)
	if err != nil {
		return err
	}
	defer journal.Close()

	nav := stage.NewNavigator()
	detach := journal.Record(nav)
	defer detach()

	_ = journal.Emit(telemetry.Event{Kind: telemetry.KindSessionStart, Stage: nav.Current().String()})

	p := tui.NewProgram(tui.Options{
		Navigator:         nav,
		Catalog:           catalog,
		Journal:           journal,
		RotationInterval:  cfg.RotationInterval,
		HighlightInterval: cfg.HighlightInterval,
		EnforceGate:       cfg.EnforceGate,
		Splash:            !cfg.NoSplash,
	}, cfg.DebounceDelay)

	if cfg.Dataset != "" {
		w, err := orbit.NewWatcher(cfg.Dataset)
		if err != nil {
			printer.Warn(fmt.Sprintf("dataset hot reload unavailable: %v", err))
		} else if err := w.Start(); err != nil {
			printer.Warn(fmt.Sprintf("dataset hot reload unavailable: %v", err))
		} else {
			defer w.Stop()
			tui.WatchDataset(p, w)
		}
	}

	_, runErr := p.Run()

	_ = journal.Emit(telemetry.Event{
		Kind:  telemetry.KindSessionEnd,
		Stage: nav.Current().String(),
		Data:  nav.Progress(),
	})

	if runErr != nil {
		return fmt.Errorf("TUI error: %w", runErr)
	}
	if cfg.Verbose {
		printer.ProgressSummary(nav.Current(), nav.Progress())
	}
	return nil
}

// loadCatalog returns the dataset at path, or the built-in maps when path is
// empty. A dataset that fails validation is rejected with its errors printed.
func loadCatalog(printer *ui.Printer, path string) (*orbit.Catalog, error) {
	if path == "" {
		return orbit.DefaultCatalog(), nil
	}
	c, errs, err := orbit.LoadValid(path)
	if len(errs) > 0 {
		printer.DatasetValidateResult(path, c, errs)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	return c, nil
}

// openJournal opens the session journal, or returns a nil (no-op) emitter
// when path is empty.
func openJournal(path string) (*telemetry.Emitter, error) {
	if path == "" {
		return nil, nil
	}
	em, err := telemetry.NewEmitter(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	return em, nil
}
