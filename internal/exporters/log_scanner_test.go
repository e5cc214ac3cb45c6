package exporters

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLogFile(t *testing.T, dir, name string, lines []string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	var data []byte
	for _, line := range lines {
		data = append(data, line...)
		data = append(data, '\n')
	}
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func writeGzipLogFile(t *testing.T, dir, name string, lines []string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	zw := gzip.NewWriter(f)
	for _, line := range lines {
		_, err := zw.Write([]byte(line + "\n"))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return path
}

func collectLines(t *testing.T, path string, cutoff time.Time) []string {
	t.Helper()
	scanner, err := openLogScanner(path, cutoff)
	require.NoError(t, err)
	defer scanner.Close()

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Line())
	}
	require.NoError(t, scanner.Err())
	return lines
}

func TestLogScanner_FiltersByCutoff(t *testing.T) {
	t.Parallel()

	cutoff := time.Date(2024, 1, 1, 23, 30, 0, 0, time.Local)
	lines := []string{
		`1.1.1.1 - a [01/Jan/2024:23:29:59 +0000] "GET /old HTTP/1.1" 200 1`,  // before cutoff
		`1.1.1.1 - b [01/Jan/2024:23:30:00 +0000] "GET /edge HTTP/1.1" 200 1`, // exactly at cutoff
		`1.1.1.1 - c [01/Jan/2024:23:59:59 +0000] "GET /new HTTP/1.1" 200 1`,
		`no timestamp on this line`,
	}
	path := writeLogFile(t, t.TempDir(), "request-2024-01-01.log", lines)

	got := collectLines(t, path, cutoff)

	require.Len(t, got, 2)
	assert.Contains(t, got[0], "/edge")
	assert.Contains(t, got[1], "/new")
}

func TestLogScanner_GzipTransparent(t *testing.T) {
	t.Parallel()

	cutoff := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	lines := []string{
		`1.1.1.1 - a [01/Jan/2024:10:00:00 +0000] "GET /a HTTP/1.1" 200 1`,
		`1.1.1.1 - b [01/Jan/2024:11:00:00 +0000] "GET /b HTTP/1.1" 200 1`,
	}

	dir := t.TempDir()
	plain := writeLogFile(t, dir, "request-2024-01-01.log", lines)
	gzipped := writeGzipLogFile(t, dir, "request-2024-01-01.log.gz", lines)

	assert.Equal(t, collectLines(t, plain, cutoff), collectLines(t, gzipped, cutoff))
}

func TestLogScanner_ExposesTimestamp(t *testing.T) {
	t.Parallel()

	cutoff := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	path := writeLogFile(t, t.TempDir(), "request.log", []string{
		`1.1.1.1 - a [01/Jan/2024:23:59:59 +0000] "GET / HTTP/1.1" 200 1`,
	})

	scanner, err := openLogScanner(path, cutoff)
	require.NoError(t, err)
	defer scanner.Close()

	require.True(t, scanner.Scan())
	assert.Equal(t, time.Date(2024, 1, 1, 23, 59, 59, 0, time.Local), scanner.Timestamp())
	assert.False(t, scanner.Scan())
}

func TestLogScanner_InvalidUTF8Tolerated(t *testing.T) {
	t.Parallel()

	cutoff := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	raw := []byte(`1.1.1.1 - a [01/Jan/2024:10:00:00 +0000] "GET /bin` + "\xff\xfe" + ` HTTP/1.1" 200 1` + "\n")
	path := filepath.Join(t.TempDir(), "request.log")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	got := collectLines(t, path, cutoff)

	require.Len(t, got, 1)
	assert.Contains(t, got[0], "/bin")
}

func TestOpenLogScanner_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := openLogScanner(filepath.Join(t.TempDir(), "request.log"), time.Now())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
