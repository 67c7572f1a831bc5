package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/bbdl/internal/telemetry"
	"github.com/papapumpkin/bbdl/internal/ui"
)

var journalCmd = &cobra.Command{
	Use:   "journal [path]",
	Short: "Print a session journal",
	Long: `Reads and formats a JSONL session journal written by "bbdl tui --journal".

Without a path, the configured journal file is used.
With --follow (-f), watches the file for new events (like tail -f).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runJournal,
}

func init() {
	journalCmd.Flags().BoolP("follow", "f", false, "follow the file for new events")
	rootCmd.AddCommand(journalCmd)
}

func runJournal(cmd *cobra.Command, args []string) error {
	printer := ui.New()
	follow, _ := cmd.Flags().GetBool("follow")

	path := viper.GetString("journal")
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return fmt.Errorf("journal: no path given and no journal configured")
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("journal: open %s: %w", path, err)
	}
	defer f.Close()

	events, err := telemetry.Decode(f)
	if err != nil {
		return err
	}
	now := time.Now()
	for _, evt := range events {
		fmt.Fprintln(cmd.OutOrStdout(), ui.JournalLine(evt, now))
	}
	printer.JournalSummary(events)

	if !follow {
		return nil
	}
	return tailFollow(cmd.OutOrStdout(), f, path)
}

// tailFollow watches the file for new data using fsnotify and prints new events.
func tailFollow(w io.Writer, f *os.File, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("journal: create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("journal: watch %s: %w", path, err)
	}

	reader := bufio.NewReader(f)
	for event := range watcher.Events {
		if event.Op&fsnotify.Write == 0 {
			continue
		}
		// Read all new lines available.
		for {
			line, err := reader.ReadString('\n')
			line = strings.TrimSpace(line)
			if line != "" {
				printLine(w, line)
			}
			if err != nil {
				break
			}
		}
	}
	return nil
}

// printLine decodes one JSONL line and prints it, or echoes it when malformed.
func printLine(w io.Writer, line string) {
	var evt telemetry.Event
	if err := json.Unmarshal([]byte(line), &evt); err != nil {
		fmt.Fprintf(w, "??? %s\n", line)
		return
	}
	fmt.Fprintln(w, ui.JournalLine(evt, time.Now()))
}
