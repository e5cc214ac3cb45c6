package exporters

import (
	"regexp"
	"strconv"
	"time"
)

// timestampPattern matches the "[DD/Mon/YYYY:HH:MM:SS" fragment embedded in
// an access-log line. The closing bracket and zone offset are irrelevant for
// windowing and deliberately not captured.
var timestampPattern = regexp.MustCompile(`\[(\d{2})/(\w{3})/(\d{4}):(\d{2}):(\d{2}):(\d{2})`)

var months = map[string]time.Month{
	"Jan": time.January,
	"Feb": time.February,
	"Mar": time.March,
	"Apr": time.April,
	"May": time.May,
	"Jun": time.June,
	"Jul": time.July,
	"Aug": time.August,
	"Sep": time.September,
	"Oct": time.October,
	"Nov": time.November,
	"Dec": time.December,
}

// extractTimestamp pulls the embedded timestamp out of a raw log line.
// It reports false for lines without a recognizable timestamp or month
// abbreviation; a malformed line never fails the scan. The logs carry no
// usable zone information, so timestamps are interpreted in local time,
// consistent across all files.
func extractTimestamp(line string) (time.Time, bool) {
	m := timestampPattern.FindStringSubmatch(line)
	if m == nil {
		return time.Time{}, false
	}
	month, ok := months[m[2]]
	if !ok {
		return time.Time{}, false
	}

	// The submatches are fixed-width digit runs, so Atoi cannot fail.
	day, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[3])
	hour, _ := strconv.Atoi(m[4])
	minute, _ := strconv.Atoi(m[5])
	second, _ := strconv.Atoi(m[6])

	return time.Date(year, month, day, hour, minute, second, 0, time.Local), true
}
