// File: lixenwraith/settings/convenience.go
package settings

import (
	"fmt"
	"strings"
)

// Quick loads a settings file on top of defaults taken from a struct.
// A nil structDefaults loads the file alone.
func Quick(structDefaults any, path string) (*Store, error) {
	b := NewBuilder().WithFile(path)
	if structDefaults != nil {
		b.WithDefaultStruct(structDefaults)
	}
	return b.Build()
}

// MustLoad is like Load but panics on error
func MustLoad(path string) *Store {
	store, err := Load(path)
	if err != nil {
		panic(fmt.Sprintf("settings initialization failed: %v", err))
	}
	return store
}

// Validate checks that all required keys are present and hold a value
func (s *Store) Validate(required ...string) error {
	var missing []string

	for _, key := range required {
		item, exists := s.items[key]
		if !exists {
			missing = append(missing, key)
			continue
		}
		if !item.IsSet() {
			missing = append(missing, key+" (unset)")
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingRequired, strings.Join(missing, ", "))
	}

	return nil
}

// Debug returns a formatted listing of every entry with its kind, one per line
func (s *Store) Debug() string {
	var b strings.Builder
	b.WriteString("Settings Debug Info:\n")
	fmt.Fprintf(&b, "Separator: %q\n", s.separator)
	fmt.Fprintf(&b, "Entries: %d\n", len(s.items))

	for _, key := range s.Keys() {
		item := s.items[key]
		fmt.Fprintf(&b, "  %s:\n", key)
		fmt.Fprintf(&b, "    Kind:  %s\n", item.Kind())
		fmt.Fprintf(&b, "    Value: %s\n", item.text())
	}

	return b.String()
}

// Clone creates an independent copy of the store
func (s *Store) Clone() *Store {
	clone := FromMap(s.items)
	clone.separator = s.separator
	return clone
}
