package clean

import (
	"errors"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/lakshaymaurya-felt/devmole/internal/config"
	"github.com/lakshaymaurya-felt/devmole/internal/core"
)

// CleanItem is one cache location offered for cleanup.
type CleanItem struct {
	Name        string
	Path        string
	Description string
	Selected    bool

	// Exists is whether the path was present at scan time. A missing cache
	// is listed with size zero — it is deliberately absent, not an error.
	Exists bool

	// Size is valid only when Sized is true. Sized stays false while the
	// measurement is pending or when the directory could not be enumerated;
	// the two cases are told apart by SizeErr.
	Size    int64
	Sized   bool
	SizeErr string
}

// CleanResult is the outcome of one deletion attempt.
type CleanResult struct {
	Name  string
	Path  string
	Freed int64
	Err   error
}

// NotFound reports whether the failure was "path already absent".
func (r CleanResult) NotFound() bool {
	return errors.Is(r.Err, core.ErrNotFound)
}

// ScanDevCaches produces the fixed set of known developer cache locations,
// in stable order. Sizes are not measured here; callers populate them on
// demand via Measure so a UI can stay responsive.
func ScanDevCaches() []CleanItem {
	targets := config.KnownCaches()
	items := make([]CleanItem, 0, len(targets))

	for _, t := range targets {
		info, err := os.Stat(t.Path)
		exists := err == nil && info.IsDir()

		item := CleanItem{
			Name:        t.Name,
			Path:        t.Path,
			Description: t.Description,
			Exists:      exists,
		}
		if !exists {
			// Absent caches contribute zero, never an enumeration error.
			item.Size = 0
			item.Sized = true
		}

		log.Debug().Str("cache", t.Name).Str("path", t.Path).Bool("exists", exists).Msg("cache target")
		items = append(items, item)
	}

	return items
}

// Measure computes the item's on-disk size. An enumeration failure leaves
// Sized false and records the cause; it must not be rendered as zero.
func (it *CleanItem) Measure() {
	if !it.Exists {
		it.Size = 0
		it.Sized = true
		return
	}

	size, err := core.DirSize(it.Path)
	if err != nil {
		it.Sized = false
		it.SizeErr = err.Error()
		log.Debug().Str("path", it.Path).Err(err).Msg("size calculation failed")
		return
	}

	it.Size = size
	it.Sized = true
}

// Execute deletes each item independently and records a per-path outcome.
// One failure never aborts the batch; retrying a finished batch yields
// not-found results for everything already removed.
func Execute(items []CleanItem, dryRun bool) []CleanResult {
	results := make([]CleanResult, 0, len(items))

	for _, it := range items {
		freed, err := core.SafeDelete(it.Path, dryRun)
		results = append(results, CleanResult{
			Name:  it.Name,
			Path:  it.Path,
			Freed: freed,
			Err:   err,
		})

		evt := log.Debug().Str("cache", it.Name).Str("path", it.Path).Bool("dry_run", dryRun)
		if err != nil {
			evt.Err(err).Msg("delete failed")
		} else {
			evt.Int64("freed", freed).Msg("deleted")
		}
	}

	return results
}

// TotalFreed sums the bytes freed across successful results.
func TotalFreed(results []CleanResult) int64 {
	var total int64
	for _, r := range results {
		if r.Err == nil {
			total += r.Freed
		}
	}
	return total
}
