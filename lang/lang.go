// Package lang defines the supported source languages and their
// declaration queries.
package lang

import (
	"sort"

	sitter "github.com/smacker/go-tree-sitter"
)

// Language defines the interface for a supported source language.
type Language interface {
	// Name returns the language identifier (e.g., "c", "cpp").
	Name() string

	// Extensions returns file extensions for this language (e.g., [".c", ".h"]).
	Extensions() []string

	// TreeSitterLang returns the tree-sitter language grammar.
	TreeSitterLang() *sitter.Language

	// DeclsQuery returns the tree-sitter query for finding declarations.
	DeclsQuery() string
}

// registry holds all registered languages.
var registry = make(map[string]Language)

// Register adds a language to the registry.
// This is typically called from init() functions in language implementation files.
func Register(l Language) {
	registry[l.Name()] = l
}

// Get returns a language by name, or nil if not found.
func Get(name string) Language {
	return registry[name]
}

// List returns all registered language names, sorted.
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByExtension finds a language by file extension. Lookup order is
// deterministic: languages are tried in name order, so ".h" resolves to
// "c" rather than "cpp".
func ByExtension(ext string) Language {
	for _, name := range List() {
		l := registry[name]
		for _, e := range l.Extensions() {
			if e == ext {
				return l
			}
		}
	}
	return nil
}

// AllExtensions returns the union of extensions across registered
// languages, sorted.
func AllExtensions() []string {
	seen := make(map[string]struct{})
	for _, l := range registry {
		for _, e := range l.Extensions() {
			seen[e] = struct{}{}
		}
	}
	exts := make([]string, 0, len(seen))
	for e := range seen {
		exts = append(exts, e)
	}
	sort.Strings(exts)
	return exts
}
