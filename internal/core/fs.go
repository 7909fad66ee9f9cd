package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// ErrNotFound is returned by SafeDelete when the target path does not exist.
// Deleting an already-deleted path is a normal outcome, not a fault; callers
// report it and move on.
var ErrNotFound = errors.New("path not found")

// ErrProtected is returned by SafeDelete when the target is a protected
// system or user root that must never be removed.
var ErrProtected = errors.New("path is protected")

// protectedRoots returns paths that must NEVER be deleted under any
// circumstances, regardless of what cache discovery produced.
func protectedRoots() []string {
	roots := []string{
		"/",
		"/Applications",
		"/Library",
		"/System",
		"/Users",
		"/private",
		"/usr",
	}
	if home, err := os.UserHomeDir(); err == nil {
		roots = append(roots,
			home,
			filepath.Join(home, "Library"),
			filepath.Join(home, "Documents"),
			filepath.Join(home, "Desktop"),
		)
	}
	return roots
}

// isProtected reports whether path equals one of the protected roots.
func isProtected(path string) bool {
	cleaned := filepath.Clean(path)
	for _, root := range protectedRoots() {
		if cleaned == root {
			return true
		}
	}
	return false
}

// DirSize recursively sums the sizes of all regular files under path.
// Directories, symlinks, and special files contribute zero. Entries that
// cannot be statted or listed mid-walk are skipped silently — only a failure
// to enumerate the root itself is an error. Callers must keep that case
// distinct from "path absent", which they report as size zero.
func DirSize(path string) (int64, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, e := range entries {
		child := filepath.Join(path, e.Name())

		if e.IsDir() {
			if sub, err := DirSize(child); err == nil {
				total += sub
			}
			continue
		}

		if !e.Type().IsRegular() {
			continue
		}

		info, err := e.Info()
		if err != nil {
			continue
		}
		total += info.Size()
	}

	return total, nil
}

// SafeDelete removes path and everything under it, returning the number of
// bytes freed. The freed count is a best-effort DirSize snapshot taken before
// removal. In dryRun mode the size is measured but nothing is deleted.
func SafeDelete(path string, dryRun bool) (int64, error) {
	cleaned := filepath.Clean(path)

	if isProtected(cleaned) {
		return 0, fmt.Errorf("%w: %s", ErrProtected, cleaned)
	}

	info, err := os.Lstat(cleaned)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("%w: %s", ErrNotFound, cleaned)
		}
		return 0, fmt.Errorf("cannot stat %s: %w", cleaned, err)
	}

	var size int64
	if info.IsDir() {
		size, _ = DirSize(cleaned) // Best effort — partial sums are fine.
	} else {
		size = info.Size()
	}

	if dryRun {
		return size, nil
	}

	// Removal needs write permission on the parent; probe up front so the
	// failure message names the real obstacle instead of a nested entry.
	if err := unix.Access(filepath.Dir(cleaned), unix.W_OK); err != nil {
		return 0, fmt.Errorf("no write access to %s: %w", filepath.Dir(cleaned), err)
	}

	if err := os.RemoveAll(cleaned); err != nil {
		return 0, fmt.Errorf("failed to remove %s: %w", cleaned, err)
	}

	return size, nil
}

// FormatSize renders a byte count as a human-readable string.
func FormatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	value := float64(bytes) / float64(div)
	suffix := []string{"KB", "MB", "GB", "TB", "PB"}[exp]
	s := fmt.Sprintf("%.1f", value)
	s = strings.TrimSuffix(s, ".0")
	return s + " " + suffix
}
