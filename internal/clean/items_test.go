package clean

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanDevCachesAbsentPathsAreSizeZero(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	items := ScanDevCaches()
	require.Len(t, items, 4)

	for _, it := range items {
		assert.False(t, it.Exists, it.Name)
		// Deliberately absent: size zero, never an enumeration error.
		assert.True(t, it.Sized, it.Name)
		assert.Zero(t, it.Size, it.Name)
		assert.Empty(t, it.SizeErr, it.Name)
	}
}

func TestScanDevCachesFindsExistingCache(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	gradle := filepath.Join(home, ".gradle", "caches")
	require.NoError(t, os.MkdirAll(gradle, 0o755))

	items := ScanDevCaches()
	require.Len(t, items, 4)

	assert.True(t, items[2].Exists)
	assert.False(t, items[2].Sized, "size is populated on demand, not at scan time")
}

func TestMeasureComputesSize(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blob"), make([]byte, 2048), 0o644))

	it := CleanItem{Path: dir, Exists: true}
	it.Measure()

	assert.True(t, it.Sized)
	assert.Equal(t, int64(2048), it.Size)
}

func TestMeasureEnumerationFailureIsNotZero(t *testing.T) {
	// A regular file cannot be enumerated as a directory; the failure must
	// stay distinct from "absent, size zero".
	file := filepath.Join(t.TempDir(), "notadir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	it := CleanItem{Path: file, Exists: true}
	it.Measure()

	assert.False(t, it.Sized)
	assert.NotEmpty(t, it.SizeErr)
}

func TestExecuteAttemptsEachTargetIndependently(t *testing.T) {
	root := t.TempDir()
	present := filepath.Join(root, "present")
	require.NoError(t, os.MkdirAll(present, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(present, "f"), make([]byte, 10), 0o644))
	missing := filepath.Join(root, "missing")

	items := []CleanItem{
		{Name: "Missing", Path: missing},
		{Name: "Present", Path: present},
	}

	results := Execute(items, false)
	require.Len(t, results, 2)

	assert.True(t, results[0].NotFound(), "missing target reports not-found")
	assert.NoError(t, results[1].Err, "a failure earlier in the batch must not abort later targets")
	assert.Equal(t, int64(10), results[1].Freed)

	// Retrying the whole batch is safe: everything now reports not-found.
	retry := Execute(items, false)
	assert.True(t, retry[0].NotFound())
	assert.True(t, retry[1].NotFound())
}

func TestExecuteDryRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "f"), make([]byte, 7), 0o644))

	results := Execute([]CleanItem{{Name: "C", Path: dir}}, true)
	require.Len(t, results, 1)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, int64(7), results[0].Freed)
	assert.DirExists(t, dir)
}

func TestTotalFreed(t *testing.T) {
	results := []CleanResult{
		{Freed: 100},
		{Freed: 50, Err: os.ErrPermission},
		{Freed: 25},
	}
	assert.Equal(t, int64(125), TotalFreed(results))
}
