package main

import (
	"fmt"
	"sort"
)

// keySet is an ordered set of dotted key paths. Iteration order is the
// order keys were added in (sorted depth-first for extracted sets, so a
// parent node always precedes its children).
type keySet struct {
	order []string
	index map[string]bool
}

func newKeySet() *keySet {
	return &keySet{index: make(map[string]bool)}
}

// add appends a key unless it is already present.
func (s *keySet) add(key string) {
	if s.index[key] {
		return
	}
	s.index[key] = true
	s.order = append(s.order, key)
}

func (s *keySet) has(key string) bool {
	return s.index[key]
}

// keys returns the keys in iteration order. The slice is shared; callers
// must not modify it.
func (s *keySet) keys() []string {
	return s.order
}

func (s *keySet) size() int {
	return len(s.order)
}

// extractKeys flattens a nested locale document into a key set. Every
// node gets an entry, containers as well as leaves: {"b": {"c": 1}}
// yields both "b" and "b.c", matching what the reference file's
// structure demands of each locale. Arrays and null are terminal values
// and are never descended into. Keys that themselves contain a literal
// "." can collide with nested paths after flattening; dotted-path
// flattening cannot tell them apart, so such keys are simply not
// supported in locale files.
func extractKeys(doc map[string]interface{}) *keySet {
	set := newKeySet()
	collectKeys("", doc, set)
	return set
}

func collectKeys(prefix string, node map[string]interface{}, set *keySet) {
	for _, name := range sortedNames(node) {
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}
		set.add(key)
		if child, ok := node[name].(map[string]interface{}); ok {
			collectKeys(key, child, set)
		}
	}
}

// flattenValues flattens a nested locale document into leaf key-value
// pairs. Container nodes get no entry here; this feeds the commands
// that need the translated strings themselves (todo, untranslated,
// merge).
func flattenValues(prefix string, node map[string]interface{}) map[string]string {
	result := make(map[string]string)
	for name, value := range node {
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}
		switch child := value.(type) {
		case map[string]interface{}:
			for k, v := range flattenValues(key, child) {
				result[k] = v
			}
		default:
			result[key] = fmt.Sprintf("%v", value)
		}
	}
	return result
}

// sortedNames returns the property names of a mapping node in sorted order.
func sortedNames(node map[string]interface{}) []string {
	names := make([]string, 0, len(node))
	for name := range node {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// sortedKeys returns sorted keys of a flattened key-value map.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
