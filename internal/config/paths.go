package config

import (
	"os"
	"path/filepath"

	"github.com/lakshaymaurya-felt/devmole/internal/resolver"
)

// CacheTarget represents one well-known developer cache location.
type CacheTarget struct {
	// Name is the unique identifier for this target.
	Name string

	// Path is the resolved filesystem path to clean.
	Path string

	// Description is a human-readable description.
	Description string

	// Resolved indicates the path came from a versioned-prefix search
	// rather than the hardcoded fallback.
	Resolved bool

	// Category groups related targets (e.g., "ide", "build", "packages").
	Category string
}

// home returns the user's home directory. An empty string only occurs in
// pathological environments (no $HOME, no passwd entry); targets built from
// it will simply not exist and report size zero.
func home() string {
	h, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return h
}

// versionedOrFallback resolves the newest version-suffixed directory under
// base, falling back to base/prefix when none is found. Android Studio keeps
// its caches in per-version folders (AndroidStudio2024.2), so the newest one
// is the live cache.
func versionedOrFallback(base, prefix string) (string, bool) {
	if path, ok := resolver.FindVersionedDir(base, prefix); ok {
		return path, true
	}
	return filepath.Join(base, prefix), false
}

// KnownCaches returns the fixed, ordered set of developer cache locations.
// Paths are resolved at call time; whether they exist on disk is the
// caller's concern — a missing cache reports size zero, not an error.
func KnownCaches() []CacheTarget {
	h := home()

	studioCaches, cachesResolved := versionedOrFallback(
		filepath.Join(h, "Library", "Caches", "Google"), "AndroidStudio")
	studioSupport, supportResolved := versionedOrFallback(
		filepath.Join(h, "Library", "Application Support", "Google"), "AndroidStudio")

	return []CacheTarget{
		{
			Name:        "AndroidStudioCaches",
			Path:        studioCaches,
			Description: "Android Studio system caches (indexes, compile caches)",
			Resolved:    cachesResolved,
			Category:    "ide",
		},
		{
			Name:        "AndroidStudioSupport",
			Path:        studioSupport,
			Description: "Android Studio application support data",
			Resolved:    supportResolved,
			Category:    "ide",
		},
		{
			Name:        "GradleCaches",
			Path:        filepath.Join(h, ".gradle", "caches"),
			Description: "Gradle build cache",
			Category:    "build",
		},
		{
			Name:        "PubCache",
			Path:        filepath.Join(h, ".pub-cache"),
			Description: "Flutter / Dart pub package cache",
			Category:    "packages",
		},
	}
}

// GetTargetsByCategory returns cache targets filtered by category.
func GetTargetsByCategory(category string) []CacheTarget {
	var result []CacheTarget
	for _, t := range KnownCaches() {
		if t.Category == category {
			result = append(result, t)
		}
	}
	return result
}

// Marker filenames that identify a directory as a buildable project.
// A directory qualifies only if at least one marker is present.
var (
	FlutterMarkers = []string{"pubspec.yaml"}
	KotlinMarkers  = []string{"build.gradle", "settings.gradle"}
)
