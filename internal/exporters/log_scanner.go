package exporters

import (
	"bufio"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/klauspost/compress/gzip"
)

const maxLineBytes = 1024 * 1024

// logScanner streams one log file and yields only lines whose embedded
// timestamp is at or after the cutoff. It is forward-only and
// non-restartable; lines without a timestamp or before the cutoff are
// silently dropped.
type logScanner struct {
	file    *os.File
	gz      io.Closer
	scanner *bufio.Scanner
	cutoff  time.Time

	line string
	ts   time.Time
}

// openLogScanner opens path for sequential reading, transparently
// decompressing when the name ends in ".gz". The caller owns Close.
func openLogScanner(path string, cutoff time.Time) (*logScanner, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	s := &logScanner{file: file, cutoff: cutoff}
	var r io.Reader = file
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(file)
		if err != nil {
			_ = file.Close()
			return nil, err
		}
		s.gz = zr
		r = zr
	}

	s.scanner = bufio.NewScanner(r)
	s.scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return s, nil
}

// Scan advances to the next in-window line. It returns false at end of file
// or on a read error; check Err after the loop.
func (s *logScanner) Scan() bool {
	for s.scanner.Scan() {
		line := s.scanner.Text()
		if !utf8.ValidString(line) {
			// Best-effort decoding: drop undecodable byte sequences
			// instead of failing the file.
			line = strings.ToValidUTF8(line, "")
		}
		ts, ok := extractTimestamp(line)
		if !ok || ts.Before(s.cutoff) {
			continue
		}
		s.line, s.ts = line, ts
		return true
	}
	return false
}

// Line returns the current in-window line.
func (s *logScanner) Line() string { return s.line }

// Timestamp returns the timestamp extracted from the current line.
func (s *logScanner) Timestamp() time.Time { return s.ts }

func (s *logScanner) Err() error { return s.scanner.Err() }

func (s *logScanner) Close() error {
	if s.gz != nil {
		_ = s.gz.Close()
	}
	return s.file.Close()
}
