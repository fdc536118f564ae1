// FILE: lixenwraith/settings/helper_test.go
package settings

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestInferValue tests type inference for raw value tokens
func TestInferValue(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Setting
	}{
		{"Integer", "50", NewInt(50)},
		{"IntegerWithSpaces", "  50 ", NewInt(50)},
		{"NegativeInteger", "-12", NewInt(-12)},
		{"WholeFloatLiteral", "50.0", NewInt(50)},
		{"Exponent", "1e3", NewInt(1000)},
		{"Float", "50.5", NewFloat(50.5)},
		{"NegativeFloat", "-0.25", NewFloat(-0.25)},
		{"BeyondInt64", "1e19", NewFloat(1e19)},
		{"Overflow", "1e400", NewFloat(math.Inf(1))},
		{"TrueWord", "true", NewBool(true)},
		{"TrueLetterUpper", "T", NewBool(true)},
		{"TrueMixedCase", " TrUe ", NewBool(true)},
		{"FalseWord", "false", NewBool(false)},
		{"FalseLetter", "f", NewBool(false)},
		{"FalseUpper", "FALSE", NewBool(false)},
		{"String", "3TS", NewString("3TS")},
		{"StringTrimmed", "  hello world  ", NewString("hello world")},
		{"StringCasePreserved", "Yes", NewString("Yes")},
		{"Empty", "", NewString("")},
		{"URL", "http://example.com:80", NewString("http://example.com:80")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InferValue(tt.raw)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}

	t.Run("NaN", func(t *testing.T) {
		got := InferValue("NaN")
		assert.Equal(t, KindFloat, got.Kind())
	})

	t.Run("Infinity", func(t *testing.T) {
		got := InferValue("-Inf")
		assert.True(t, NewFloat(math.Inf(-1)).Equal(got))
	})
}

// TestSplitLine tests the per-line splitter
func TestSplitLine(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		sep       string
		wantKey   string
		wantValue string
		wantOK    bool
	}{
		{"Simple", "one:50", ":", "one", "50", true},
		{"TrimmedKey", "  one  : 50", ":", "one", " 50", true},
		{"ExtraSeparatorsKept", "url:http://host:80", ":", "url", "http://host:80", true},
		{"EmptyValue", "key:", ":", "key", "", true},
		{"EmptyKey", ":value", ":", "", "value", true},
		{"NoSeparator", "just text", ":", "", "", false},
		{"Blank", "", ":", "", "", false},
		{"Whitespace", "   ", ":", "", "", false},
		{"CommentWithSeparator", "// note: ignored", ":", "", "", false},
		{"CommentWithoutSeparator", "// note", ":", "", "", false},
		{"IndentedCommentIsEntry", "  // a: b", ":", "// a", " b", true},
		{"MultiCharSeparator", "a => b", "=>", "a", " b", true},
		{"LiteralSeparator", "a.b", ".", "a", "b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, value, ok := splitLine(tt.line, tt.sep)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}
