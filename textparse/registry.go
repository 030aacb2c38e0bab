package textparse

import (
	"fmt"
	"sort"

	"github.com/martinemde/parsec/parsec"
)

// Entry is a named parser whose value type has been erased to any so that
// parsers of different types can share one registry.
type Entry struct {
	Name        string
	Description string
	Parser      parsec.Parser[any]
}

// Erase converts a typed parser into one producing any.
func Erase[T any](p parsec.Parser[T]) parsec.Parser[any] {
	return parsec.Map(p, func(v T) any { return v })
}

// Registry maps parser names to entries.
type Registry struct {
	entries map[string]Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register adds or replaces the entry for name.
func Register[T any](r *Registry, name, description string, p parsec.Parser[T]) {
	r.entries[name] = Entry{Name: name, Description: description, Parser: Erase(p)}
}

// Resolve returns the entry registered under name.
func (r *Registry) Resolve(name string) (Entry, error) {
	e, ok := r.entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("no parser registered for %q (known: %v)", name, r.Names())
	}
	return e, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries returns the registered entries sorted by name.
func (r *Registry) Entries() []Entry {
	names := r.Names()
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, r.entries[name])
	}
	return entries
}

// DefaultRegistry creates a registry pre-populated with the built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	Register(r, "date", "calendar date, YYYY-MM-DD or YYYY/MM/DD", DateParser)
	Register(r, "id", "identity number, letter + digits + (check digit), e.g. A123456(7)", IDParser)
	Register(r, "digit", "a single ASCII digit", parsec.Map(Digit, func(c rune) string { return string(c) }))
	Register(r, "letter", "a single ASCII letter", parsec.Map(Letter, func(c rune) string { return string(c) }))
	Register(r, "word", "one or more letters, digits or underscores", Word)
	return r
}
