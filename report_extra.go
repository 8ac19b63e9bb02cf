package main

import (
	"os"

	"github.com/spf13/cobra"
)

var extraLocale string

var extraCmd = &cobra.Command{
	Use:   "extra",
	Short: "Keys in a locale file absent from the reference",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, cand, err := loadLocalePair(extraLocale)
		if err != nil {
			return err
		}
		d := diffKeys(ref, cand)
		return outputStrings(os.Stdout, d.Extra, flagFormat, "extra keys in "+extraLocale)
	},
}

func init() {
	extraCmd.Flags().StringVar(&extraLocale, "locale", "", "Target locale code (required)")
	extraCmd.MarkFlagRequired("locale")
	rootCmd.AddCommand(extraCmd)
}
