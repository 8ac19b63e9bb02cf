package main

import (
	"os"

	"github.com/spf13/cobra"
)

var untranslatedLocale string

var untranslatedCmd = &cobra.Command{
	Use:   "untranslated",
	Short: "Locale keys whose value still equals the reference value",
	Long: `List keys a locale file contains but whose value is byte-identical to
the reference value. These usually mean the English text was copied over
as a placeholder and never translated. Advisory: short strings ("OK",
emoji, brand names) legitimately match.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, refPath, err := referencePath()
		if err != nil {
			return err
		}
		candPath, err := localePath(dir, untranslatedLocale)
		if err != nil {
			return err
		}
		refValues, err := loadLocaleFlat(refPath)
		if err != nil {
			return err
		}
		candValues, err := loadLocaleFlat(candPath)
		if err != nil {
			return err
		}

		var same []string
		for _, k := range sortedKeys(candValues) {
			refVal, found := refValues[k]
			if found && refVal != "" && candValues[k] == refVal {
				same = append(same, k)
			}
		}

		return outputStrings(os.Stdout, same, flagFormat, "untranslated keys in "+untranslatedLocale)
	},
}

func init() {
	untranslatedCmd.Flags().StringVar(&untranslatedLocale, "locale", "", "Target locale code (required)")
	untranslatedCmd.MarkFlagRequired("locale")
	rootCmd.AddCommand(untranslatedCmd)
}
