// FILE: lixenwraith/settings/type_test.go
package settings

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTypedAccessors tests typed reads and mismatch errors
func TestTypedAccessors(t *testing.T) {
	s, err := Parse(strings.NewReader("port: 8080\nratio: 0.75\ndebug: T\nname: primary\n"))
	require.NoError(t, err)

	t.Run("MatchingTypes", func(t *testing.T) {
		port, err := s.GetInt64("port")
		require.NoError(t, err)
		assert.Equal(t, int64(8080), port)

		ratio, err := s.GetFloat64("ratio")
		require.NoError(t, err)
		assert.Equal(t, 0.75, ratio)

		debug, err := s.GetBool("debug")
		require.NoError(t, err)
		assert.True(t, debug)

		name, err := s.GetString("name")
		require.NoError(t, err)
		assert.Equal(t, "primary", name)
	})

	t.Run("Generic", func(t *testing.T) {
		port, err := As[int64](s, "port")
		require.NoError(t, err)
		assert.Equal(t, int64(8080), port)
	})

	t.Run("Mismatch", func(t *testing.T) {
		tests := []struct {
			name string
			read func() error
		}{
			{"IntAsFloat", func() error { _, err := s.GetFloat64("port"); return err }},
			{"FloatAsInt", func() error { _, err := s.GetInt64("ratio"); return err }},
			{"BoolAsString", func() error { _, err := s.GetString("debug"); return err }},
			{"StringAsBool", func() error { _, err := s.GetBool("name"); return err }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := tt.read()
				assert.ErrorIs(t, err, ErrTypeMismatch)
			})
		}
	})

	t.Run("MismatchMessage", func(t *testing.T) {
		_, err := s.GetFloat64("port")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "key port holds int64, requested float64")
	})

	t.Run("MissingKey", func(t *testing.T) {
		val, err := s.GetInt64("absent")
		assert.ErrorIs(t, err, ErrKeyNotFound)
		assert.Zero(t, val)
	})

	t.Run("Number", func(t *testing.T) {
		port, err := s.Number("port")
		require.NoError(t, err)
		assert.Equal(t, 8080.0, port)

		ratio, err := s.Number("ratio")
		require.NoError(t, err)
		assert.Equal(t, 0.75, ratio)

		_, err = s.Number("name")
		assert.ErrorIs(t, err, ErrTypeMismatch)

		_, err = s.Number("absent")
		assert.ErrorIs(t, err, ErrKeyNotFound)
	})
}
