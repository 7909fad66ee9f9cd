package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownCachesFixedOrder(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	targets := KnownCaches()
	require.Len(t, targets, 4)

	assert.Equal(t, "AndroidStudioCaches", targets[0].Name)
	assert.Equal(t, "AndroidStudioSupport", targets[1].Name)
	assert.Equal(t, "GradleCaches", targets[2].Name)
	assert.Equal(t, "PubCache", targets[3].Name)
}

func TestKnownCachesFallbackWhenNoVersionedDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	targets := KnownCaches()

	assert.False(t, targets[0].Resolved)
	assert.Equal(t,
		filepath.Join(home, "Library", "Caches", "Google", "AndroidStudio"),
		targets[0].Path)
	assert.Equal(t, filepath.Join(home, ".gradle", "caches"), targets[2].Path)
	assert.Equal(t, filepath.Join(home, ".pub-cache"), targets[3].Path)
}

func TestKnownCachesResolvesNewestStudioVersion(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	base := filepath.Join(home, "Library", "Caches", "Google")
	require.NoError(t, os.MkdirAll(filepath.Join(base, "AndroidStudio2023.1"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(base, "AndroidStudio2024.2"), 0o755))

	targets := KnownCaches()

	assert.True(t, targets[0].Resolved)
	assert.Equal(t, filepath.Join(base, "AndroidStudio2024.2"), targets[0].Path)
}

func TestGetTargetsByCategory(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	ide := GetTargetsByCategory("ide")
	require.Len(t, ide, 2)
	assert.Equal(t, "AndroidStudioCaches", ide[0].Name)
}
