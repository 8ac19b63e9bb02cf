package main

import (
	"os"

	"github.com/spf13/cobra"
)

var unusedCmd = &cobra.Command{
	Use:   "unused",
	Short: "Reference keys never referenced in the bot source",
	Long: `List keys of the reference file that no source file references, either
literally or through a dynamic template-literal prefix. Container nodes
are not listed; only leaf keys hold translatable strings.`,
	Args: cobra.NoArgs,
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
		prefixes, err := dynamicKeyPrefixes(root)
		if err != nil {
			return err
		}

		var unused []string
		for _, k := range sortedKeys(keys) {
			if _, found := refs[k]; found {
				continue
			}
			if matchesDynamicPrefix(k, prefixes) {
				continue
			}
			unused = append(unused, k)
		}

		return outputStrings(os.Stdout, unused, flagFormat, "unused keys")
	},
}

func init() {
	rootCmd.AddCommand(unusedCmd)
}
