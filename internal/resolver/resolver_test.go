package resolver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkdirs(t *testing.T, base string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.Mkdir(filepath.Join(base, n), 0o755))
	}
}

func TestFindVersionedDirPicksLexicographicallyGreatest(t *testing.T) {
	base := t.TempDir()
	mkdirs(t, base, "AndroidStudio2023.1", "AndroidStudio2024.2", "Chrome")

	got, ok := FindVersionedDir(base, "AndroidStudio")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(base, "AndroidStudio2024.2"), got)
}

func TestFindVersionedDirNoMatch(t *testing.T) {
	base := t.TempDir()
	mkdirs(t, base, "Chrome", "Firefox")

	_, ok := FindVersionedDir(base, "AndroidStudio")
	assert.False(t, ok)
}

func TestFindVersionedDirMissingBase(t *testing.T) {
	_, ok := FindVersionedDir(filepath.Join(t.TempDir(), "nope"), "AndroidStudio")
	assert.False(t, ok)
}

func TestFindVersionedDirStringOrdering(t *testing.T) {
	// Plain string comparison is the documented behavior: a two-digit
	// version loses to a single-digit one.
	base := t.TempDir()
	mkdirs(t, base, "AndroidStudio9", "AndroidStudio10")

	got, ok := FindVersionedDir(base, "AndroidStudio")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(base, "AndroidStudio9"), got)
}

func TestLastUsableLine(t *testing.T) {
	out := "sh: /etc/profile.d/x.sh: Permission denied\n\n/opt/flutter/bin/flutter\n\n"
	assert.Equal(t, "/opt/flutter/bin/flutter", lastUsableLine(out))

	assert.Equal(t, "", lastUsableLine("\n\nPermission denied\n"))
}

// fakeShell writes an executable script that ignores its arguments and runs
// the given body, standing in for the user's login shell.
func fakeShell(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fakesh")
	script := "#!/bin/sh\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestResolveToolFiltersNoiseAndResolves(t *testing.T) {
	// The "tool" is a real file so symlink resolution succeeds.
	toolDir := t.TempDir()
	tool := filepath.Join(toolDir, "flutter")
	require.NoError(t, os.WriteFile(tool, []byte("#!/bin/sh\n"), 0o755))

	shell := fakeShell(t,
		`echo "sh: /etc/zprofile: Permission denied"
echo ""
echo "`+tool+`"`)
	t.Setenv("SHELL", shell)

	got, ok := ResolveTool(context.Background(), "flutter")
	require.True(t, ok)
	assert.Equal(t, tool, got)
}

func TestResolveToolFollowsSymlinks(t *testing.T) {
	toolDir := t.TempDir()
	real := filepath.Join(toolDir, "flutter-real")
	require.NoError(t, os.WriteFile(real, []byte("#!/bin/sh\n"), 0o755))
	link := filepath.Join(toolDir, "flutter")
	require.NoError(t, os.Symlink(real, link))

	shell := fakeShell(t, `echo "`+link+`"`)
	t.Setenv("SHELL", shell)

	got, ok := ResolveTool(context.Background(), "flutter")
	require.True(t, ok)
	assert.Equal(t, real, got)
}

func TestResolveToolNotFound(t *testing.T) {
	shell := fakeShell(t, "exit 1")
	t.Setenv("SHELL", shell)

	_, ok := ResolveTool(context.Background(), "flutter")
	assert.False(t, ok)
}

func TestResolveToolRejectsRelativeOutput(t *testing.T) {
	shell := fakeShell(t, `echo "flutter not found"`)
	t.Setenv("SHELL", shell)

	_, ok := ResolveTool(context.Background(), "flutter")
	assert.False(t, ok)
}
