package main

import (
	"os"

	"github.com/spf13/cobra"
)

var missingLocale string

var missingCmd = &cobra.Command{
	Use:   "missing",
	Short: "Keys in the reference absent from a target locale",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ref, cand, err := loadLocalePair(missingLocale)
		if err != nil {
			return err
		}
		d := diffKeys(ref, cand)
		return outputStrings(os.Stdout, d.Missing, flagFormat, "missing keys in "+missingLocale)
	},
}

func init() {
	missingCmd.Flags().StringVar(&missingLocale, "locale", "", "Target locale code (required)")
	missingCmd.MarkFlagRequired("locale")
	rootCmd.AddCommand(missingCmd)
}

// loadLocalePair loads the reference key set and the key set of one
// target locale.
func loadLocalePair(locale string) (ref, cand *keySet, err error) {
	dir, refPath, err := referencePath()
	if err != nil {
		return nil, nil, err
	}
	candPath, err := localePath(dir, locale)
	if err != nil {
		return nil, nil, err
	}
	refDoc, err := loadLocale(refPath)
	if err != nil {
		return nil, nil, err
	}
	candDoc, err := loadLocale(candPath)
	if err != nil {
		return nil, nil, err
	}
	return extractKeys(refDoc), extractKeys(candDoc), nil
}
