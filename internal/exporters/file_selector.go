package exporters

import (
	"fmt"
	"path/filepath"
	"time"
)

// liveLogName is the still-being-appended log with no date in its name.
const liveLogName = "request.log"

// candidateFiles returns every log file that may hold lines at or after
// cutoff, in deterministic scan order: calendar dates ascending from the
// cutoff day through today, the gzip archive before its uncompressed sibling
// for each date, and the live log last. Existence is not checked here;
// missing candidates are skipped by the caller.
func candidateFiles(dir string, cutoff, now time.Time) []string {
	var files []string
	last := startOfDay(now)
	for day := startOfDay(cutoff); !day.After(last); day = day.AddDate(0, 0, 1) {
		date := day.Format("2006-01-02")
		files = append(files,
			filepath.Join(dir, fmt.Sprintf("request-%s.log.gz", date)),
			filepath.Join(dir, fmt.Sprintf("request-%s.log", date)),
		)
	}
	return append(files, filepath.Join(dir, liveLogName))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
