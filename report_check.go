package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate every locale file against the reference",
	Long: `Validate every locale file in the locales directory against the
reference file. The run fails if the reference does not parse, if any
locale file does not parse, or if any locale file is missing keys that
the reference has. Extra keys are reported but never fail the run.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, refPath, err := referencePath()
		if err != nil {
			return err
		}
		candidates, err := discoverLocales(dir, flagReference)
		if err != nil {
			return err
		}
		rep, err := validateLocales(refPath, candidates)
		if err != nil {
			return err
		}
		if err := renderReport(os.Stdout, rep, flagFormat, styles()); err != nil {
			return err
		}
		if rep.failed() {
			return errors.New("locale validation failed")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
