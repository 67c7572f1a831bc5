package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/bbdl/internal/orbit"
	"github.com/papapumpkin/bbdl/internal/ui"
)

// errValidation signals that a dataset had problems already reported to the user.
var errValidation = errors.New("validation failed")

var validateCmd = &cobra.Command{
	Use:   "validate <dataset.toml>",
	Short: "Check an orbit dataset file for errors",
	Long: `Parses the dataset and checks the schema version, ring configuration,
map keys, and every item (ring reference, base angle, text).`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	printer := ui.New()
	path := args[0]

	c, err := orbit.Load(path)
	if err != nil {
		printer.Error(err.Error())
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	errs := orbit.Validate(c)
	printer.DatasetValidateResult(path, c, errs)
	if len(errs) > 0 {
		return errValidation
	}
	return nil
}
