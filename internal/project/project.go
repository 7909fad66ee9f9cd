// Package project discovers Flutter and Kotlin projects by marker files and
// cleans their build artifacts.
package project

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/lakshaymaurya-felt/devmole/internal/config"
)

// Project is a directory identified as a buildable project. It exists only
// when at least one recognized marker file is present.
type Project struct {
	Name    string
	Path    string
	Flutter bool
	Kotlin  bool
}

// detect checks a directory against the marker-file rules.
func detect(dir string) (flutter, kotlin bool) {
	for _, marker := range config.FlutterMarkers {
		if info, err := os.Stat(filepath.Join(dir, marker)); err == nil && !info.IsDir() {
			flutter = true
			break
		}
	}
	for _, marker := range config.KotlinMarkers {
		if info, err := os.Stat(filepath.Join(dir, marker)); err == nil && !info.IsDir() {
			kotlin = true
			break
		}
	}
	return flutter, kotlin
}

// Scan checks root itself and each of its immediate non-hidden
// subdirectories against the marker rules. It does not recurse deeper. The
// root entry, when it qualifies, comes first; subdirectories follow in
// ReadDir order. An unreadable root is an error; unreadable children are
// skipped.
func Scan(root string) ([]Project, error) {
	root = filepath.Clean(root)

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var projects []Project

	if flutter, kotlin := detect(root); flutter || kotlin {
		projects = append(projects, Project{
			Name:    filepath.Base(root),
			Path:    root,
			Flutter: flutter,
			Kotlin:  kotlin,
		})
	}

	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		dir := filepath.Join(root, e.Name())
		flutter, kotlin := detect(dir)
		if !flutter && !kotlin {
			continue
		}
		projects = append(projects, Project{
			Name:    e.Name(),
			Path:    dir,
			Flutter: flutter,
			Kotlin:  kotlin,
		})
	}

	log.Debug().Str("root", root).Int("projects", len(projects)).Msg("project scan complete")
	return projects, nil
}
