// Package testutil provides shared helpers for scaffolding tests: an
// in-memory filesystem, fakes for the external collaborators, and file
// assertions.
package testutil

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/scriptinit/pkg/filesystem"
	"github.com/arthur-debert/scriptinit/pkg/types"
)

// NewMemoryFS creates an in-memory types.FS for tests.
func NewMemoryFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// WriteFile writes a file through fs, failing the test on error.
func WriteFile(t *testing.T, fs types.FS, path, content string) {
	t.Helper()
	require.NoError(t, fs.WriteFile(path, []byte(content), 0644))
}

// ReadFile reads a file through fs, failing the test on error.
func ReadFile(t *testing.T, fs types.FS, path string) string {
	t.Helper()
	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// AssertFileExists fails the test when path does not exist.
func AssertFileExists(t *testing.T, fs types.FS, path string) {
	t.Helper()
	_, err := fs.Stat(path)
	require.NoError(t, err, "expected file to exist: %s", path)
}

// AssertFileNotExists fails the test when path exists.
func AssertFileNotExists(t *testing.T, fs types.FS, path string) {
	t.Helper()
	_, err := fs.Stat(path)
	require.Error(t, err, "expected file to not exist: %s", path)
}
