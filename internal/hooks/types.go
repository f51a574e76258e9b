// Package hooks holds the styling-hook metadata model: the ordered
// value-to-hooks mapping, the deprecated token table and the CSS property
// resolution rules used to pick which hooks apply to a declaration.
package hooks

import (
	"errors"
	"iter"
)

// ErrEmptyMapping is returned when a metadata source decodes to no entries.
var ErrEmptyMapping = errors.New("styling hook mapping is empty")

// Wildcard in Entry.Properties makes a hook applicable to any property.
const Wildcard = "*"

// Entry is one styling hook registered for a value.
type Entry struct {
	Name       string   `yaml:"name" json:"name"`
	Properties []string `yaml:"properties" json:"properties"`
	Group      string   `yaml:"group" json:"group,omitempty"`
}

// AppliesTo reports whether the hook lists property exactly.
func (e Entry) AppliesTo(property string) bool {
	for _, p := range e.Properties {
		if p == property {
			return true
		}
	}
	return false
}

// AppliesToAny is AppliesTo that also accepts the "*" wildcard.
func (e Entry) AppliesToAny(property string) bool {
	for _, p := range e.Properties {
		if p == Wildcard || p == property {
			return true
		}
	}
	return false
}

// Mapping is an insertion-ordered map from a canonical CSS value to the hooks
// registered for it. It is built once and only read afterwards.
type Mapping struct {
	keys    []string
	entries map[string][]Entry
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{entries: make(map[string][]Entry)}
}

// Add appends entries under value, keeping the first-seen position of value.
func (m *Mapping) Add(value string, entries ...Entry) {
	if _, ok := m.entries[value]; !ok {
		m.keys = append(m.keys, value)
	}
	m.entries[value] = append(m.entries[value], entries...)
}

// Get returns the hooks registered for value.
func (m *Mapping) Get(value string) ([]Entry, bool) {
	e, ok := m.entries[value]
	return e, ok
}

// Len returns the number of distinct values.
func (m *Mapping) Len() int {
	return len(m.keys)
}

// Values returns the registered values in insertion order.
func (m *Mapping) Values() []string {
	return append([]string(nil), m.keys...)
}

// All iterates values and their hooks in insertion order.
func (m *Mapping) All() iter.Seq2[string, []Entry] {
	return func(yield func(string, []Entry) bool) {
		for _, k := range m.keys {
			if !yield(k, m.entries[k]) {
				return
			}
		}
	}
}
