// File: lixenwraith/settings/type.go
package settings

import "fmt"

// Scalar is the set of value types a Setting can hold.
type Scalar interface {
	float64 | int64 | bool | string
}

// As retrieves the value under key asserted to type T.
// Values are never converted: an int64 setting read as float64 fails with
// ErrTypeMismatch.
func As[T Scalar](s *Store, key string) (T, error) {
	var zero T

	val, err := s.Get(key)
	if err != nil {
		return zero, err
	}

	typed, ok := val.(T)
	if !ok {
		return zero, fmt.Errorf("%w: key %s holds %T, requested %T", ErrTypeMismatch, key, val, zero)
	}
	return typed, nil
}

// GetString retrieves a string setting.
func (s *Store) GetString(key string) (string, error) {
	return As[string](s, key)
}

// GetInt64 retrieves an int64 setting.
func (s *Store) GetInt64(key string) (int64, error) {
	return As[int64](s, key)
}

// GetFloat64 retrieves a float64 setting.
func (s *Store) GetFloat64(key string) (float64, error) {
	return As[float64](s, key)
}

// GetBool retrieves a bool setting.
func (s *Store) GetBool(key string) (bool, error) {
	return As[bool](s, key)
}

// Number retrieves a numeric setting as float64, accepting both int64 and
// float64 settings. Anything else fails with ErrTypeMismatch.
func (s *Store) Number(key string) (float64, error) {
	val, err := s.Get(key)
	if err != nil {
		return 0, err
	}

	switch v := val.(type) {
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	}
	return 0, fmt.Errorf("%w: key %s holds %T, requested a number", ErrTypeMismatch, key, val)
}
