package exporters

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTimestamp_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		expected time.Time
	}{
		{
			name:     "full access log line",
			line:     `10.0.0.1 - alice [01/Jan/2024:23:59:59 +0000] "GET /repository/maven-releases/foo HTTP/1.1" 200 1234`,
			expected: time.Date(2024, time.January, 1, 23, 59, 59, 0, time.Local),
		},
		{
			name:     "timestamp mid-line",
			line:     `prefix [15/Aug/2025:07:03:21 suffix`,
			expected: time.Date(2025, time.August, 15, 7, 3, 21, 0, time.Local),
		},
		{
			name:     "december",
			line:     `[31/Dec/2023:00:00:00`,
			expected: time.Date(2023, time.December, 31, 0, 0, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ts, ok := extractTimestamp(tt.line)
			require.True(t, ok)
			assert.Equal(t, tt.expected, ts)
		})
	}
}

func TestExtractTimestamp_NoMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
	}{
		{name: "empty line", line: ""},
		{name: "no timestamp at all", line: "some random log noise"},
		{name: "missing bracket", line: "01/Jan/2024:23:59:59"},
		{name: "single digit day", line: "[1/Jan/2024:23:59:59"},
		{name: "numeric month", line: "[01/01/2024:23:59:59"},
		{name: "unknown month abbreviation", line: "[01/Foo/2024:23:59:59"},
		{name: "truncated time", line: "[01/Jan/2024:23:59"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, ok := extractTimestamp(tt.line)
			assert.False(t, ok)
		})
	}
}

func TestExtractTimestamp_AllMonths(t *testing.T) {
	t.Parallel()

	abbrevs := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	for i, abbrev := range abbrevs {
		ts, ok := extractTimestamp("[10/" + abbrev + "/2024:12:00:00")
		require.True(t, ok, "month %s should parse", abbrev)
		assert.Equal(t, time.Month(i+1), ts.Month())
	}
}
