package exporters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileFlagLoader_Load(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "flags.txt")
	content := "SQLI_ATTEMPT\n\n  padded-flag  \n\t\nanother\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	flags, err := NewFileFlagLoader(path).Load()

	require.NoError(t, err)
	assert.Equal(t, []string{"SQLI_ATTEMPT", "padded-flag", "another"}, flags)
}

func TestFileFlagLoader_MissingFile(t *testing.T) {
	t.Parallel()

	flags, err := NewFileFlagLoader(filepath.Join(t.TempDir(), "nope.txt")).Load()

	require.NoError(t, err)
	assert.Empty(t, flags)
}

func TestFileFlagLoader_UnconfiguredPath(t *testing.T) {
	t.Parallel()

	flags, err := NewFileFlagLoader("").Load()

	require.NoError(t, err)
	assert.Empty(t, flags)
}

func TestFileFlagLoader_DuplicatesPreserved(t *testing.T) {
	t.Parallel()

	// Duplicate flags double-count by design; the loader does not dedup.
	path := filepath.Join(t.TempDir(), "flags.txt")
	require.NoError(t, os.WriteFile(path, []byte("dup\ndup\n"), 0o644))

	flags, err := NewFileFlagLoader(path).Load()

	require.NoError(t, err)
	assert.Equal(t, []string{"dup", "dup"}, flags)
}
