// FILE: lixenwraith/settings/setting.go
package settings

import (
	"fmt"
	"math"
	"strconv"
)

// Kind identifies which variant a Setting holds.
type Kind int

const (
	// KindUnset is the zero Kind of a Setting that was never given a value
	KindUnset Kind = iota
	KindFloat
	KindInt
	KindBool
	KindString
)

// String returns the Go type name of the variant.
func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float64"
	case KindInt:
		return "int64"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	default:
		return "unset"
	}
}

// Setting holds a single typed value. The zero Setting is unset.
type Setting struct {
	kind Kind
	f    float64
	i    int64
	b    bool
	s    string
}

// NewFloat returns a float64 setting.
func NewFloat(v float64) Setting { return Setting{kind: KindFloat, f: v} }

// NewInt returns an int64 setting.
func NewInt(v int64) Setting { return Setting{kind: KindInt, i: v} }

// NewBool returns a bool setting.
func NewBool(v bool) Setting { return Setting{kind: KindBool, b: v} }

// NewString returns a string setting.
func NewString(v string) Setting { return Setting{kind: KindString, s: v} }

// NewSetting wraps a dynamically typed scalar.
// Integer widths are widened to int64 and float32 to float64.
func NewSetting(v any) (Setting, error) {
	var s Setting
	if err := s.Set(v); err != nil {
		return Setting{}, err
	}
	return s, nil
}

// Kind returns the variant currently held.
func (s Setting) Kind() Kind { return s.kind }

// IsSet reports whether a value has been stored.
func (s Setting) IsSet() bool { return s.kind != KindUnset }

// Value returns the stored value as float64, int64, bool or string.
func (s Setting) Value() (any, error) {
	switch s.kind {
	case KindFloat:
		return s.f, nil
	case KindInt:
		return s.i, nil
	case KindBool:
		return s.b, nil
	case KindString:
		return s.s, nil
	default:
		return nil, ErrValueUnset
	}
}

// Set replaces the stored value. The new value may be of a different kind
// than the previous one.
func (s *Setting) Set(v any) error {
	switch val := v.(type) {
	case float64:
		s.SetFloat(val)
	case float32:
		s.SetFloat(float64(val))
	case int64:
		s.SetInt(val)
	case int:
		s.SetInt(int64(val))
	case int8:
		s.SetInt(int64(val))
	case int16:
		s.SetInt(int64(val))
	case int32:
		s.SetInt(int64(val))
	case uint8:
		s.SetInt(int64(val))
	case uint16:
		s.SetInt(int64(val))
	case uint32:
		s.SetInt(int64(val))
	case uint:
		return s.setUint(uint64(val))
	case uint64:
		return s.setUint(val)
	case uintptr:
		return s.setUint(uint64(val))
	case bool:
		s.SetBool(val)
	case string:
		s.SetString(val)
	case Setting:
		*s = val
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
	return nil
}

func (s *Setting) setUint(v uint64) error {
	if v > math.MaxInt64 {
		return fmt.Errorf("%w: unsigned value %d overflows int64", ErrUnsupportedType, v)
	}
	s.SetInt(int64(v))
	return nil
}

// SetFloat replaces the stored value with a float64.
func (s *Setting) SetFloat(v float64) { *s = NewFloat(v) }

// SetInt replaces the stored value with an int64.
func (s *Setting) SetInt(v int64) { *s = NewInt(v) }

// SetBool replaces the stored value with a bool.
func (s *Setting) SetBool(v bool) { *s = NewBool(v) }

// SetString replaces the stored value with a string.
func (s *Setting) SetString(v string) { *s = NewString(v) }

// Equal reports whether both settings hold the same kind and value.
// Two NaN floats are equal.
func (s Setting) Equal(other Setting) bool {
	if s.kind != other.kind {
		return false
	}
	switch s.kind {
	case KindFloat:
		return s.f == other.f || (math.IsNaN(s.f) && math.IsNaN(other.f))
	case KindInt:
		return s.i == other.i
	case KindBool:
		return s.b == other.b
	case KindString:
		return s.s == other.s
	default:
		return true
	}
}

// String describes the setting as "<type>: <value>".
func (s Setting) String() string {
	return s.kind.String() + ": " + s.text()
}

// text formats the bare value; it is shared by String and the line encoder.
func (s Setting) text() string {
	switch s.kind {
	case KindFloat:
		return strconv.FormatFloat(s.f, 'g', -1, 64)
	case KindInt:
		return strconv.FormatInt(s.i, 10)
	case KindBool:
		return strconv.FormatBool(s.b)
	case KindString:
		return s.s
	default:
		return "<nil>"
	}
}
