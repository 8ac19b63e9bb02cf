package main

import (
	"os"

	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys [file]",
	Short: "Dump the extracted key set of a locale file",
	Long: `Dump the dotted key paths of a locale file, container nodes included.
With no argument the reference file is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, path, err := referencePath()
		if err != nil {
			return err
		}
		if len(args) == 1 {
			path = args[0]
		}
		doc, err := loadLocale(path)
		if err != nil {
			return err
		}
		set := extractKeys(doc)
		return outputStrings(os.Stdout, set.keys(), flagFormat, "keys in "+path)
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}
