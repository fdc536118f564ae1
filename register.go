package settings

import (
	"fmt"
	"reflect"
	"strings"
)

// FromStruct creates a Store from the exported scalar fields of a struct.
// Keys come from the `settings` tag or the field name; nested structs
// contribute dot-joined keys ("server.port"). Fields tagged "-" are skipped.
func FromStruct(structWithDefaults any) (*Store, error) {
	v := reflect.ValueOf(structWithDefaults)

	// Handle pointer or direct struct value
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, fmt.Errorf("FromStruct requires a non-nil struct pointer or value")
		}
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("FromStruct requires a struct or struct pointer, got %T", structWithDefaults)
	}

	store := New()
	var errors []string
	store.registerFields(v, "", &errors)

	if len(errors) > 0 {
		return nil, fmt.Errorf("failed to register %d field(s): %s", len(errors), strings.Join(errors, "; "))
	}
	return store, nil
}

// registerFields adds one setting per scalar field, recursing into nested structs.
func (s *Store) registerFields(v reflect.Value, prefix string, errors *[]string) {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get(TagName)
		if tag == "-" {
			continue
		}

		key := field.Name
		if tag != "" {
			if name, _, _ := strings.Cut(tag, ","); name != "" {
				key = name
			}
		}
		key = prefix + key

		// Nested structs, including non-nil pointers to structs
		if fieldValue.Kind() == reflect.Ptr && field.Type.Elem().Kind() == reflect.Struct {
			if fieldValue.IsNil() {
				continue
			}
			fieldValue = fieldValue.Elem()
		}
		if fieldValue.Kind() == reflect.Struct {
			s.registerFields(fieldValue, key+".", errors)
			continue
		}

		setting, err := settingFromValue(fieldValue)
		if err != nil {
			*errors = append(*errors, fmt.Sprintf("field %s (key %s): %v", field.Name, key, err))
			continue
		}
		if err := s.Add(key, setting); err != nil {
			*errors = append(*errors, fmt.Sprintf("field %s (key %s): %v", field.Name, key, err))
		}
	}
}

// settingFromValue converts a reflected scalar into a Setting by kind, so
// named types such as time.Duration are accepted as their underlying kind.
func settingFromValue(v reflect.Value) (Setting, error) {
	switch v.Kind() {
	case reflect.Bool:
		return NewBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return NewInt(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		var out Setting
		if err := out.setUint(v.Uint()); err != nil {
			return Setting{}, err
		}
		return out, nil
	case reflect.Float32, reflect.Float64:
		return NewFloat(v.Float()), nil
	case reflect.String:
		return NewString(v.String()), nil
	}
	return Setting{}, fmt.Errorf("%w: %s", ErrUnsupportedType, v.Type())
}
