package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var pruneExtra bool

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove keys from locale files (stdin list or --extra)",
	Long: `Remove dotted keys from every candidate locale file, pruning parent
nodes that become empty. By default the keys are read from stdin, one
per line, so the output of "extra" or "unused" can be piped in. With
--extra, each file instead drops its own extra keys (keys absent from
the reference).`,
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

		if pruneExtra {
			return pruneExtraKeys(refPath, candidates)
		}

		keys, err := readKeysFromStdin()
		if err != nil {
			return err
		}
		if len(keys) == 0 {
			return fmt.Errorf("no valid keys provided on stdin")
		}
		for _, path := range candidates {
			removed, err := removeKeysFromFile(path, keys)
			if err != nil {
				return err
			}
			if removed > 0 {
				fmt.Fprintf(os.Stderr, "Removed %d keys from %s\n", removed, filepath.Base(path))
			}
		}
		return nil
	},
}

func init() {
	pruneCmd.Flags().BoolVar(&pruneExtra, "extra", false, "Remove each file's extra keys (keys not in the reference)")
	rootCmd.AddCommand(pruneCmd)
}

// pruneExtraKeys removes from each candidate file the keys the
// reference does not have.
func pruneExtraKeys(refPath string, candidates []string) error {
	refDoc, err := loadLocale(refPath)
	if err != nil {
		return err
	}
	refKeys := extractKeys(refDoc)

	for _, path := range candidates {
		doc, err := loadLocale(path)
		if err != nil {
			return err
		}
		extra := diffKeys(refKeys, extractKeys(doc)).Extra
		if len(extra) == 0 {
			continue
		}
		removed, err := removeKeysFromFile(path, extra)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Removed %d extra keys from %s\n", removed, filepath.Base(path))
	}
	return nil
}

// readKeysFromStdin reads dotted translation keys from stdin, one per
// line. Lines that are not valid dotted keys are skipped, so the text
// output of "extra" or "unused" can be piped directly.
func readKeysFromStdin() ([]string, error) {
	var keys []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		key := strings.TrimSpace(scanner.Text())
		if isValidDottedKey(key) {
			keys = append(keys, key)
		}
	}
	return keys, scanner.Err()
}

// isValidDottedKey returns true if s looks like a dotted translation key
// (e.g. "commands.ping.description").
func isValidDottedKey(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return false
	}
	for _, part := range parts {
		if part == "" {
			return false
		}
		for _, c := range part {
			if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' || c == '-') {
				return false
			}
		}
	}
	return true
}

// removeKeysFromFile removes the given dotted keys from a locale file
// and rewrites it in its own format. Returns the number of keys removed.
func removeKeysFromFile(path string, keys []string) (int, error) {
	doc, err := loadLocale(path)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, key := range keys {
		if removeKeyPath(doc, strings.Split(key, ".")) {
			removed++
		}
	}
	if removed == 0 {
		return 0, nil
	}

	if err := saveLocale(path, doc); err != nil {
		return 0, err
	}
	return removed, nil
}

// removeKeyPath removes a dotted key path from a nested mapping,
// pruning parents that become empty. Returns true if the key existed.
func removeKeyPath(node map[string]interface{}, parts []string) bool {
	if len(parts) == 0 {
		return false
	}
	value, found := node[parts[0]]
	if !found {
		return false
	}
	if len(parts) == 1 {
		delete(node, parts[0])
		return true
	}
	child, ok := value.(map[string]interface{})
	if !ok {
		return false
	}
	if removeKeyPath(child, parts[1:]) {
		if len(child) == 0 {
			delete(node, parts[0])
		}
		return true
	}
	return false
}
