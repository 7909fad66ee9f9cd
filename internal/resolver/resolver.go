// Package resolver locates version-suffixed tool directories and external
// executables through the user's shell environment.
package resolver

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// defaultShell is used when $SHELL is unset. macOS has defaulted to zsh
// since Catalina.
const defaultShell = "/bin/zsh"

// FindVersionedDir lists the immediate children of base, keeps those whose
// name starts with prefix, and returns the full path of the lexicographically
// greatest name. Plain string ordering is used as a proxy for "newest
// version"; it mis-sorts once numbering crosses a digit-count boundary
// (AndroidStudio9 vs AndroidStudio10), which matches the observed tool
// layouts today. Returns false when base is missing, unreadable, or no
// child matches.
func FindVersionedDir(base, prefix string) (string, bool) {
	entries, err := os.ReadDir(base)
	if err != nil {
		log.Debug().Str("base", base).Err(err).Msg("versioned dir lookup failed")
		return "", false
	}

	var best string
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if name > best {
			best = name
		}
	}

	if best == "" {
		return "", false
	}
	return filepath.Join(base, best), true
}

// ResolveTool finds the absolute path of an executable by asking the user's
// interactive login shell, so PATH entries added by shell profiles (rvm,
// fvm, asdf, Homebrew) are honored. Combined output is filtered: blank lines
// and permission-denied noise from profile sourcing are dropped, and the
// last remaining line is taken as the candidate path. Symlinks are resolved.
// Returns false on any failure — "not found" is an expected outcome, never a
// fault.
func ResolveTool(ctx context.Context, tool string) (string, bool) {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = defaultShell
	}

	cmd := exec.CommandContext(ctx, shell, "-l", "-i", "-c", "which "+tool)
	out, err := cmd.CombinedOutput()
	if err != nil && len(out) == 0 {
		log.Debug().Str("tool", tool).Str("shell", shell).Err(err).Msg("shell lookup failed")
		return "", false
	}

	candidate := lastUsableLine(string(out))
	if candidate == "" || !filepath.IsAbs(candidate) {
		log.Debug().Str("tool", tool).Str("output", strings.TrimSpace(string(out))).Msg("no usable path in shell output")
		return "", false
	}

	resolved, err := filepath.EvalSymlinks(candidate)
	if err != nil {
		log.Debug().Str("candidate", candidate).Err(err).Msg("symlink resolution failed")
		return "", false
	}

	return resolved, true
}

// lastUsableLine returns the last line of shell output that is neither blank
// nor a permission diagnostic. Interactive login shells routinely print
// profile noise before the actual `which` result.
func lastUsableLine(output string) string {
	var last string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.Contains(line, "Permission denied") ||
			strings.Contains(line, "Operation not permitted") {
			continue
		}
		last = line
	}
	return last
}
