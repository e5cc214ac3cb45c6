package models

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// windowPattern accepts one or more digits followed by 'h' or 'H', e.g. "1h", "24H".
var windowPattern = regexp.MustCompile(`^(\d+)[hH]$`)

// Window is a trailing time span, in whole hours, over which logs are aggregated.
type Window struct {
	Hours int
}

// ParseWindow parses a window string like "12h" into a Window.
func ParseWindow(s string) (Window, error) {
	m := windowPattern.FindStringSubmatch(s)
	if m == nil {
		return Window{}, fmt.Errorf("invalid window %q: expected digits followed by 'h'", s)
	}
	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return Window{}, fmt.Errorf("invalid window %q: %w", s, err)
	}
	return Window{Hours: hours}, nil
}

func (w Window) Duration() time.Duration {
	return time.Duration(w.Hours) * time.Hour
}

func (w Window) String() string {
	return fmt.Sprintf("%dh", w.Hours)
}
