package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// localeExts are the file extensions discovery accepts, in the order
// localePath probes for them. The reference is JSON, but crowd-sourcing
// platforms export either format, so candidates may be YAML.
var localeExts = []string{".json", ".yaml", ".yml"}

// repoRoot returns the bot repository root by walking up from the
// current directory looking for package.json.
func repoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "package.json")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find repository root (no package.json found)")
		}
		dir = parent
	}
}

// localesDir resolves the locales directory: the --dir flag if given,
// otherwise <repo root>/locales.
func localesDir() (string, error) {
	if flagDir != "" {
		return flagDir, nil
	}
	root, err := repoRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "locales"), nil
}

// localeName derives the locale code from a file path: "locales/pt-BR.json"
// becomes "pt-BR".
func localeName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// localePath returns the path of the locale file for a locale code,
// probing the known extensions.
func localePath(dir, locale string) (string, error) {
	for _, ext := range localeExts {
		path := filepath.Join(dir, locale+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no locale file for %q in %s", locale, dir)
}

// discoverLocales lists the candidate locale files in a directory,
// excluding the reference file itself. The result is sorted by name.
func discoverLocales(dir, reference string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || e.Name() == reference {
			continue
		}
		ext := filepath.Ext(e.Name())
		for _, known := range localeExts {
			if ext == known {
				paths = append(paths, filepath.Join(dir, e.Name()))
				break
			}
		}
	}
	return paths, nil
}

// loadLocale reads and parses a locale file into a nested mapping.
// JSON files are parsed strictly with encoding/json; YAML files with
// yaml.v3. A top-level value that is not an object is a parse error.
func loadLocale(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc map[string]interface{}
	if filepath.Ext(path) == ".json" {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	return doc, nil
}

// loadLocaleFlat loads a locale file and returns its flattened leaf
// key-value pairs.
func loadLocaleFlat(path string) (map[string]string, error) {
	doc, err := loadLocale(path)
	if err != nil {
		return nil, err
	}
	return flattenValues("", doc), nil
}

// saveLocale writes a nested mapping back to a locale file in the
// format matching its extension. JSON keys come out sorted; YAML keeps
// two-space indentation like the hand-maintained files.
func saveLocale(path string, doc map[string]interface{}) error {
	var data []byte
	if filepath.Ext(path) == ".json" {
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding %s: %w", path, err)
		}
		data = append(out, '\n')
	} else {
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding %s: %w", path, err)
		}
		enc.Close()
		data = buf.Bytes()
	}
	return os.WriteFile(path, data, 0644)
}
