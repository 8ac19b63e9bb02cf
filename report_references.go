package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var referencesCmd = &cobra.Command{
	Use:   "references",
	Short: "Where each reference key is used (file:line)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := repoRoot()
		if err != nil {
			return err
		}
		_, refPath, err := referencePath()
		if err != nil {
			return err
		}
		keys, err := loadLocaleFlat(refPath)
		if err != nil {
			return err
		}

		refs, err := findKeyReferences(root, keys)
		if err != nil {
			return err
		}

		if flagFormat == "json" {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(refs)
		}

		for _, k := range sortedKeys(keys) {
			locations := refs[k]
			if len(locations) == 0 {
				continue
			}
			fmt.Printf("%s:\n", k)
			for _, loc := range locations {
				fmt.Printf("  %s:%d\n", loc.File, loc.Line)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(referencesCmd)
}
