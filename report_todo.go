package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	todoLocale string
	todoUsed   bool
)

var todoCmd = &cobra.Command{
	Use:   "todo",
	Short: "Missing keys with their reference values",
	Long: `Output key=value pairs for keys missing from a locale, with the
reference (English) text as the value. This is the work list handed to
translators. With --used, only keys actually referenced in the bot
source are listed, directly or through a dynamic key prefix.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return reportTodo(todoLocale, flagFormat, todoUsed)
	},
}

func init() {
	todoCmd.Flags().StringVar(&todoLocale, "locale", "", "Target locale code (required)")
	todoCmd.Flags().BoolVar(&todoUsed, "used", false, "Only keys referenced in the bot source")
	todoCmd.MarkFlagRequired("locale")
	rootCmd.AddCommand(todoCmd)
}

func reportTodo(locale, format string, usedOnly bool) error {
	dir, refPath, err := referencePath()
	if err != nil {
		return err
	}
	candPath, err := localePath(dir, locale)
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

	var refs map[string][]keyReference
	var prefixes []string
	if usedOnly {
		root, err := repoRoot()
		if err != nil {
			return err
		}
		if refs, err = findKeyReferences(root, refValues); err != nil {
			return err
		}
		if prefixes, err = dynamicKeyPrefixes(root); err != nil {
			return err
		}
	}

	type kv struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	var pairs []kv
	for _, k := range sortedKeys(refValues) {
		if _, found := candValues[k]; found {
			continue
		}
		if usedOnly {
			if _, found := refs[k]; !found && !matchesDynamicPrefix(k, prefixes) {
				continue
			}
		}
		pairs = append(pairs, kv{k, refValues[k]})
	}

	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(pairs)
	}

	if len(pairs) == 0 {
		fmt.Printf("No keys missing from %s.\n", locale)
		return nil
	}

	fmt.Printf("Found %d keys missing from %s:\n\n", len(pairs), locale)
	for _, p := range pairs {
		fmt.Printf("%s=%s\n", p.Key, p.Value)
	}
	return nil
}
