// File: lixenwraith/settings/helper.go
package settings

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// CommentPrefix marks a line that is never parsed as an entry.
const CommentPrefix = "//"

// int64 bounds as float64; 2^63 itself is not representable as int64.
const (
	minInt64Float = -(1 << 63)
	maxInt64Float = 1 << 63
)

// splitLine cuts a raw line into key and raw value on the first separator.
// ok is false for lines that produce no entry: no separator, or a comment.
func splitLine(line, sep string) (key, value string, ok bool) {
	k, v, found := strings.Cut(line, sep)
	if !found || strings.HasPrefix(line, CommentPrefix) {
		return "", "", false
	}
	return strings.TrimSpace(k), v, true
}

// InferValue classifies a raw value token.
// Numbers that are whole, finite and fit int64 become int settings, other
// numbers float settings. Otherwise "true"/"t" and "false"/"f" (any case)
// become bool settings, and anything else a trimmed string setting.
func InferValue(raw string) Setting {
	text := strings.TrimSpace(raw)

	if f, ok := parseNumber(text); ok {
		if isWhole(f) {
			return NewInt(int64(math.Round(f)))
		}
		return NewFloat(f)
	}

	switch strings.ToLower(text) {
	case "true", "t":
		return NewBool(true)
	case "false", "f":
		return NewBool(false)
	}
	return NewString(text)
}

// parseNumber reports whether text is a float literal. Out-of-range literals
// count as parsed and yield ±Inf.
func parseNumber(text string) (float64, bool) {
	f, err := strconv.ParseFloat(text, 64)
	if err == nil {
		return f, true
	}
	if errors.Is(err, strconv.ErrRange) {
		return f, true
	}
	return 0, false
}

// isWhole reports whether f is an integral value representable as int64.
func isWhole(f float64) bool {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return false
	}
	if f != math.Floor(f) {
		return false
	}
	return f >= minInt64Float && f < maxInt64Float
}
