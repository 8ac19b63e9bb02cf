package main

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// keyReference records where a translation key is used.
type keyReference struct {
	File string `json:"file"`
	Line int    `json:"line"`
}

// Patterns for finding translation key references in the bot's source.
var (
	// t('...'), translate('...'), also i18n.t(...) and interaction.t(...)
	keyCallPattern = regexp.MustCompile(`(?:^|[^a-zA-Z])(?:t|translate)\(['"]([a-zA-Z0-9_.-]+)['"]`)
	// Dotted key literals in quoted strings (e.g. command option maps that
	// pass the key to t() elsewhere). Validated against the reference key
	// set to avoid false positives from URLs, versions and file paths.
	dottedKeyLiteral = regexp.MustCompile(`['"]([a-z][a-zA-Z0-9_-]*(?:\.[a-z][a-zA-Z0-9_-]*)+)['"]`)
	// Template-literal calls with interpolation, e.g.
	// t(`commands.${name}.description`). The literal prefix before the
	// first ${ marks a dynamic key family.
	dynamicCallPattern = regexp.MustCompile("(?:^|[^a-zA-Z])(?:t|translate)\\(`([a-zA-Z0-9_.-]*)\\$\\{")
)

// sourceExts are the file extensions scanned for key references.
var sourceExts = []string{".js", ".mjs", ".cjs", ".ts"}

// scanSourceFiles walks the bot source tree and returns file paths
// matching the given extensions.
func scanSourceFiles(root string, exts []string) ([]string, error) {
	var files []string
	extSet := make(map[string]bool, len(exts))
	for _, e := range exts {
		extSet[e] = true
	}
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if name == "node_modules" || name == ".git" || name == "dist" || name == "build" || name == "locales" {
				return filepath.SkipDir
			}
			return nil
		}
		if extSet[filepath.Ext(name)] {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// findKeyReferences scans source files for translation key usage. The
// keys map is the flattened reference file; indirect dotted-string
// matches only count when the string is an actual key.
func findKeyReferences(root string, keys map[string]string) (map[string][]keyReference, error) {
	files, err := scanSourceFiles(root, sourceExts)
	if err != nil {
		return nil, err
	}

	refs := make(map[string][]keyReference)

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			continue
		}
		lines := strings.Split(string(data), "\n")
		for i, line := range lines {
			relPath, _ := filepath.Rel(root, file)
			ref := keyReference{File: relPath, Line: i + 1}

			for _, m := range keyCallPattern.FindAllStringSubmatch(line, -1) {
				refs[m[1]] = append(refs[m[1]], ref)
			}
			for _, m := range dottedKeyLiteral.FindAllStringSubmatch(line, -1) {
				if _, exists := keys[m[1]]; exists {
					refs[m[1]] = append(refs[m[1]], ref)
				}
			}
		}
	}
	return refs, nil
}

// dynamicKeyPrefixes returns the literal prefixes of template-literal
// translation calls found in the source tree, deduplicated. A key under
// one of these prefixes may be looked up at runtime even though no
// literal reference to it exists.
func dynamicKeyPrefixes(root string) ([]string, error) {
	files, err := scanSourceFiles(root, sourceExts)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var prefixes []string
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			continue
		}
		for _, m := range dynamicCallPattern.FindAllStringSubmatch(string(data), -1) {
			prefix := m[1]
			if prefix == "" || seen[prefix] {
				continue
			}
			seen[prefix] = true
			prefixes = append(prefixes, prefix)
		}
	}
	return prefixes, nil
}

// matchesDynamicPrefix reports whether a key falls under one of the
// dynamic key prefixes.
func matchesDynamicPrefix(key string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}
