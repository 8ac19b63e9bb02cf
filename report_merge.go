package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var mergeLocale string

var mergeCmd = &cobra.Command{
	Use:   "merge [file...]",
	Short: "Merge flat translations into a nested locale file",
	Long: `Read flat translations and merge them into a locale file, nesting the
dotted keys. Input comes from the file arguments, or from stdin when no
files are given. Two input shapes are accepted: a JSON object mapping
dotted keys to strings (what the crowd-sourcing export produces), or
plain key=value lines (what "todo" prints). Existing values are
overwritten; the file is created if it does not exist yet.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return reportMerge(mergeLocale, args)
	},
}

func init() {
	mergeCmd.Flags().StringVar(&mergeLocale, "locale", "", "Target locale code (required)")
	mergeCmd.MarkFlagRequired("locale")
	rootCmd.AddCommand(mergeCmd)
}

func reportMerge(locale string, files []string) error {
	dir, _, err := referencePath()
	if err != nil {
		return err
	}
	path, err := localePath(dir, locale)
	if err != nil {
		// New locale: create it next to the reference, same format.
		path = filepath.Join(dir, locale+filepath.Ext(flagReference))
	}

	doc := make(map[string]interface{})
	if existing, err := loadLocale(path); err == nil {
		doc = existing
	}

	input, err := readMergeInput(files)
	if err != nil {
		return err
	}
	pairs, err := parseFlatTranslations(input)
	if err != nil {
		return err
	}
	if len(pairs) == 0 {
		return fmt.Errorf("no translations found in input")
	}

	merged := 0
	for _, k := range sortedKeys(pairs) {
		if setKeyPath(doc, strings.Split(k, "."), pairs[k]) {
			merged++
		} else {
			fmt.Fprintf(os.Stderr, "Skipping %s: conflicts with a non-mapping node\n", k)
		}
	}

	if err := saveLocale(path, doc); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Merged %d translations into %s\n", merged, filepath.Base(path))
	return nil
}

// readMergeInput concatenates the given files, or reads stdin when no
// files are given.
func readMergeInput(files []string) (string, error) {
	if len(files) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	var combined strings.Builder
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		combined.Write(data)
		combined.WriteString("\n")
	}
	return combined.String(), nil
}

// parseFlatTranslations parses flat translation input: a JSON object of
// dotted keys, or key=value lines.
func parseFlatTranslations(input string) (map[string]string, error) {
	trimmed := strings.TrimSpace(input)
	if strings.HasPrefix(trimmed, "{") {
		var pairs map[string]string
		if err := json.Unmarshal([]byte(trimmed), &pairs); err != nil {
			return nil, fmt.Errorf("parsing flat JSON input: %w", err)
		}
		return pairs, nil
	}

	pairs := make(map[string]string)
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !found || !isValidDottedKey(key) {
			continue
		}
		pairs[key] = strings.TrimSpace(value)
	}
	return pairs, nil
}

// setKeyPath sets a dotted key path in a nested mapping, creating
// intermediate mappings as needed. Returns false when an intermediate
// node exists but is not a mapping.
func setKeyPath(node map[string]interface{}, parts []string, value string) bool {
	if len(parts) == 1 {
		node[parts[0]] = value
		return true
	}
	child, found := node[parts[0]]
	if !found {
		next := make(map[string]interface{})
		node[parts[0]] = next
		return setKeyPath(next, parts[1:], value)
	}
	next, ok := child.(map[string]interface{})
	if !ok {
		return false
	}
	return setKeyPath(next, parts[1:], value)
}
