// i18n-check keeps the ChilledBot locale files in sync with the
// reference locale (en.json by default).
//
// Usage:
//
//	i18n-check <command> [flags]
//
// Run "i18n-check --help" for the list of commands.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	flagDir       string
	flagReference string
	flagFormat    string
	flagNoColor   bool
)

var rootCmd = &cobra.Command{
	Use:   "i18n-check",
	Short: "Validate and maintain ChilledBot translation files",
	Long: `i18n-check validates the bot's locale files against the reference
locale and helps with routine translation maintenance.

The reference file (en.json) defines the authoritative key set. Every
other locale file must contain at least those keys; keys missing from a
locale are fatal, keys not present in the reference are advisory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDir, "dir", "", "Locales directory (default: <repo root>/locales)")
	rootCmd.PersistentFlags().StringVar(&flagReference, "reference", "en.json", "Reference locale file name")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text, json")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// styles returns the style set for this run.
func styles() reportStyles {
	return newReportStyles(!flagNoColor)
}

// referencePath returns the locales directory and the full path of the
// reference file inside it.
func referencePath() (dir, path string, err error) {
	dir, err = localesDir()
	if err != nil {
		return "", "", err
	}
	return dir, filepath.Join(dir, flagReference), nil
}
