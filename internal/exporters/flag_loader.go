package exporters

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// FlagLoader loads the operator-curated list of literal substrings whose
// per-line occurrences are tallied during a scan. The list is loaded fresh
// for every export so edits take effect without a restart.
//
//go:generate mockgen -source=flag_loader.go -destination=./mocks/flag_loader_mock.go -package=mocks
type FlagLoader interface {
	Load() ([]string, error)
}

type fileFlagLoader struct {
	path string
}

func NewFileFlagLoader(path string) FlagLoader {
	return &fileFlagLoader{path: path}
}

// Load reads one whitespace-trimmed flag per non-blank line. A missing or
// unconfigured file yields an empty list, not an error.
func (l *fileFlagLoader) Load() ([]string, error) {
	if l.path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read flag file %q: %w", l.path, err)
	}

	var flags []string
	for _, line := range strings.Split(string(data), "\n") {
		if flag := strings.TrimSpace(line); flag != "" {
			flags = append(flags, flag)
		}
	}
	return flags, nil
}
