package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWindow_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{
			name:     "one hour",
			input:    "1h",
			expected: 1,
		},
		{
			name:     "uppercase suffix",
			input:    "24H",
			expected: 24,
		},
		{
			name:     "multi digit",
			input:    "168h",
			expected: 168,
		},
		{
			name:     "leading zero",
			input:    "06h",
			expected: 6,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w, err := ParseWindow(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, w.Hours)
		})
	}
}

func TestParseWindow_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "missing suffix", input: "12"},
		{name: "wrong suffix", input: "12m"},
		{name: "suffix only", input: "h"},
		{name: "negative", input: "-1h"},
		{name: "trailing garbage", input: "1h "},
		{name: "embedded", input: "x1h"},
		{name: "fractional", input: "1.5h"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseWindow(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestWindow_Duration(t *testing.T) {
	t.Parallel()

	w, err := ParseWindow("12h")
	require.NoError(t, err)
	assert.Equal(t, 12*time.Hour, w.Duration())
}

func TestWindow_String(t *testing.T) {
	t.Parallel()

	w, err := ParseWindow("24H")
	require.NoError(t, err)
	assert.Equal(t, "24h", w.String())
}
