package project

import (
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/lakshaymaurya-felt/devmole/internal/core"
)

// PurgeResult is the outcome of one build-directory deletion attempt.
type PurgeResult struct {
	Path  string
	Freed int64
	Err   error
}

// PurgeBuildDirs walks the whole tree under root and deletes every
// subdirectory literally named "build", at any depth. Each attempt is logged
// and recorded; individual failures never stop the walk. The root itself is
// never a candidate, even if it happens to be named "build".
func PurgeBuildDirs(root string, dryRun bool) []PurgeResult {
	root = filepath.Clean(root)
	var results []PurgeResult

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Debug().Str("path", path).Err(err).Msg("skipping unreadable entry")
			return nil
		}
		if !d.IsDir() || path == root || d.Name() != "build" {
			return nil
		}

		freed, delErr := core.SafeDelete(path, dryRun)
		results = append(results, PurgeResult{Path: path, Freed: freed, Err: delErr})

		evt := log.Info().Str("path", path).Bool("dry_run", dryRun)
		if delErr != nil {
			evt.Err(delErr).Msg("build dir removal failed")
		} else {
			evt.Int64("freed", freed).Msg("build dir removed")
		}

		// Whether or not the delete succeeded, do not descend into it.
		return filepath.SkipDir
	})

	return results
}
