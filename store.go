// FILE: lixenwraith/settings/store.go
package settings

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Store maps keys to typed settings.
type Store struct {
	items     map[string]Setting
	separator string // separator the store was parsed with, reused when saving
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		items:     make(map[string]Setting),
		separator: DefaultSeparator,
	}
}

// FromMap creates a Store holding a copy of m.
func FromMap(m map[string]Setting) *Store {
	s := New()
	maps.Copy(s.items, m)
	return s
}

// Add inserts setting under key. It fails with ErrDuplicateKey, leaving the
// store unchanged, if key is already present.
func (s *Store) Add(key string, setting Setting) error {
	if _, exists := s.items[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, key)
	}
	s.items[key] = setting
	return nil
}

// put inserts or replaces the setting under key and reports whether an
// entry was replaced.
func (s *Store) put(key string, setting Setting) bool {
	_, exists := s.items[key]
	s.items[key] = setting
	return exists
}

// Update replaces the value of an existing key.
func (s *Store) Update(key string, value any) error {
	item, exists := s.items[key]
	if !exists {
		return fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	if err := item.Set(value); err != nil {
		return fmt.Errorf("failed to update %s: %w", key, err)
	}
	s.items[key] = item
	return nil
}

// Remove deletes key. Removing an absent key is a no-op.
func (s *Store) Remove(key string) {
	delete(s.items, key)
}

// Clear removes every entry.
func (s *Store) Clear() {
	clear(s.items)
}

// Get returns the value stored under key as float64, int64, bool or string.
func (s *Store) Get(key string) (any, error) {
	item, exists := s.items[key]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	val, err := item.Value()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, key)
	}
	return val, nil
}

// Lookup returns the setting stored under key and whether it exists.
func (s *Store) Lookup(key string) (Setting, bool) {
	item, exists := s.items[key]
	return item, exists
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.items)
}

// Keys returns all keys in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.items))
	for k := range s.items {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Map returns a copy of the underlying mapping.
func (s *Store) Map() map[string]Setting {
	return maps.Clone(s.items)
}

// Separator returns the separator used when the store was parsed.
func (s *Store) Separator() string {
	return s.separator
}

// Equal reports whether both stores hold the same keys with equal settings.
func (s *Store) Equal(other *Store) bool {
	if other == nil {
		return false
	}
	return maps.EqualFunc(s.items, other.items, Setting.Equal)
}

// String describes every entry as "key: <type>: value", joined by ", " in
// key order. An empty store describes as "".
func (s *Store) String() string {
	parts := make([]string, 0, len(s.items))
	for _, key := range s.Keys() {
		parts = append(parts, key+": "+s.items[key].String())
	}
	return strings.Join(parts, ", ")
}
