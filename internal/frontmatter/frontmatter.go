// Package frontmatter reads, edits and writes the YAML front matter block of markdown notes.
package frontmatter

import (
	"maps"
	"sort"
	"strings"
)

// Quoted is a string value that is always written double-quoted.
type Quoted string

// Frontmatter holds front matter fields with keys kept in ascending order so
// serialization is deterministic regardless of the order they were read in.
type Frontmatter struct {
	fields map[string]any
	keys   []string
}

// New creates a new empty Frontmatter.
func New() *Frontmatter {
	return &Frontmatter{
		fields: make(map[string]any),
		keys:   []string{},
	}
}

// FromMap creates a Frontmatter holding the entries of m.
func FromMap(m map[string]any) *Frontmatter {
	fm := New()
	for key, value := range m {
		fm.Set(key, value)
	}
	return fm
}

// Get retrieves a value from frontmatter.
func (f *Frontmatter) Get(key string) (any, bool) {
	val, ok := f.fields[key]
	return val, ok
}

// Has reports whether key is present.
func (f *Frontmatter) Has(key string) bool {
	_, ok := f.fields[key]
	return ok
}

// Set sets a value in frontmatter, maintaining sorted key order.
func (f *Frontmatter) Set(key string, value any) {
	_, exists := f.fields[key]
	f.fields[key] = value

	if !exists {
		f.keys = append(f.keys, key)
		sort.Strings(f.keys)
	}
}

// Delete removes a key from frontmatter.
func (f *Frontmatter) Delete(key string) {
	if _, ok := f.fields[key]; !ok {
		return
	}
	delete(f.fields, key)
	for i, k := range f.keys {
		if k == key {
			f.keys = append(f.keys[:i], f.keys[i+1:]...)
			break
		}
	}
}

// Keys returns a copy of the sorted frontmatter keys.
func (f *Frontmatter) Keys() []string {
	result := make([]string, len(f.keys))
	copy(result, f.keys)
	return result
}

// Len returns the number of fields.
func (f *Frontmatter) Len() int {
	return len(f.keys)
}

// Clone returns a shallow copy; mutating the copy leaves f untouched.
func (f *Frontmatter) Clone() *Frontmatter {
	return &Frontmatter{
		fields: maps.Clone(f.fields),
		keys:   f.Keys(),
	}
}

// GetString retrieves a trimmed string value.
// Returns empty string if key doesn't exist or value is not a string.
func (f *Frontmatter) GetString(key string) string {
	val, ok := f.fields[key]
	if !ok {
		return ""
	}
	return StringFromAny(val)
}

// StringFromAny extracts a string from any type.
// Returns empty string if not a string type.
func StringFromAny(val any) string {
	switch v := val.(type) {
	case string:
		return strings.TrimSpace(v)
	case Quoted:
		return strings.TrimSpace(string(v))
	}
	return ""
}
