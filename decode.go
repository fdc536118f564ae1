// FILE: lixenwraith/settings/decode.go
package settings

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

// TagName is the struct tag read by Scan and WithDefaultStruct
const TagName = "settings"

// Scan decodes the store into target, which must be a non-nil pointer to a
// struct or map. Struct fields are matched by their `settings` tag or, when
// untagged, case-insensitively by field name. Dotted keys ("audio.volume")
// fill nested structs, the layout FromStruct produces. Weak conversions apply, so an
// int64 setting fills an int field and a string setting such as "30s" fills
// a time.Duration.
func (s *Store) Scan(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be non-nil pointer, got %T", target)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          TagName,
		WeaklyTypedInput: true,
		DecodeHook:       decodeHook(),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(s.nestedValues()); err != nil {
		return fmt.Errorf("failed to scan settings into %T: %w", target, err)
	}
	return nil
}

// decodeHook returns the composite decode hook for string conversions
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToTimeHookFunc(time.RFC3339),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// nestedValues builds a nested map from dotted keys. Keys are visited in
// order, so "a.b" replaces a plain "a" value.
func (s *Store) nestedValues() map[string]any {
	nested := make(map[string]any)
	for _, key := range s.Keys() {
		item := s.items[key]
		if !item.IsSet() {
			continue
		}
		val, _ := item.Value()
		setNestedValue(nested, key, val)
	}
	return nested
}

// setNestedValue stores value under the dot-separated path, creating
// intermediate maps and replacing scalars that sit in the way.
func setNestedValue(nested map[string]any, path string, value any) {
	segments := strings.Split(path, ".")
	current := nested

	for _, segment := range segments[:len(segments)-1] {
		next, ok := current[segment].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[segment] = next
		}
		current = next
	}
	current[segments[len(segments)-1]] = value
}
