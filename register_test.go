package settings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromStruct tests building settings from struct defaults
func TestFromStruct(t *testing.T) {
	type Audio struct {
		Volume float32 `settings:"volume"`
		Muted  bool    `settings:"muted"`
	}

	type Game struct {
		Lives    int           `settings:"lives"`
		Player   string        `settings:"player,omitempty"`
		Timeout  time.Duration `settings:"timeout"`
		Seed     uint32
		Audio    Audio  `settings:"audio"`
		Video    *Audio `settings:"video"`
		Internal string `settings:"-"`
		hidden   int
	}

	t.Run("ValidStruct", func(t *testing.T) {
		defaults := Game{
			Lives:   3,
			Player:  "anon",
			Timeout: 5 * time.Second,
			Seed:    42,
			Audio:   Audio{Volume: 0.5, Muted: true},
			hidden:  1,
		}

		s, err := FromStruct(&defaults)
		require.NoError(t, err)

		assert.Equal(t, []string{"Seed", "audio.muted", "audio.volume", "lives", "player", "timeout"}, s.Keys())

		lives, err := s.GetInt64("lives")
		require.NoError(t, err)
		assert.Equal(t, int64(3), lives)

		timeout, err := s.GetInt64("timeout")
		require.NoError(t, err)
		assert.Equal(t, int64(5*time.Second), timeout)

		volume, err := s.GetFloat64("audio.volume")
		require.NoError(t, err)
		assert.Equal(t, 0.5, volume)

		_, ok := s.Lookup("Internal")
		assert.False(t, ok)
	})

	t.Run("NonNilPointerStruct", func(t *testing.T) {
		s, err := FromStruct(Game{Video: &Audio{Volume: 1}})
		require.NoError(t, err)

		volume, err := s.GetFloat64("video.volume")
		require.NoError(t, err)
		assert.Equal(t, 1.0, volume)
	})

	t.Run("UnsupportedField", func(t *testing.T) {
		type Bad struct {
			Tags []string `settings:"tags"`
			Port int      `settings:"port"`
		}

		s, err := FromStruct(Bad{})
		assert.Nil(t, s)
		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to register 1 field(s)")
		assert.ErrorContains(t, err, "key tags")
	})

	t.Run("DuplicateKey", func(t *testing.T) {
		type Dup struct {
			A int `settings:"x"`
			B int `settings:"x"`
		}

		_, err := FromStruct(Dup{})
		assert.ErrorContains(t, err, "key already exists")
	})

	t.Run("NotAStruct", func(t *testing.T) {
		_, err := FromStruct(42)
		assert.Error(t, err)

		var nilGame *Game
		_, err = FromStruct(nilGame)
		assert.Error(t, err)
	})
}
