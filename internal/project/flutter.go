package project

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/rs/zerolog/log"
)

// ErrSpawn marks a failure to launch the external tool at all — missing
// executable, bad permissions, dead path. It is distinct from the tool
// running and printing its own error text, which is surfaced in the output
// blob and deliberately not classified further.
var ErrSpawn = errors.New("failed to start external tool")

// FlutterClean runs `<exe> clean` with the working directory set to dir and
// returns the combined stdout/stderr as one blob. Exit status is not
// inspected; a non-zero exit with output is still a successful run from the
// caller's point of view. Cancellation comes from ctx — no timeout is
// imposed here.
func FlutterClean(ctx context.Context, exe, dir string) (string, error) {
	cmd := exec.CommandContext(ctx, exe, "clean")
	cmd.Dir = dir

	out, err := cmd.CombinedOutput()
	output := string(out)

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return output, fmt.Errorf("flutter clean interrupted: %w", ctxErr)
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The tool ran and chose its own exit code; its output is the
			// only contract we surface.
			log.Debug().Str("dir", dir).Int("exit", exitErr.ExitCode()).Msg("flutter clean exited non-zero")
			return output, nil
		}

		return output, fmt.Errorf("%w: %v", ErrSpawn, err)
	}

	log.Debug().Str("dir", dir).Msg("flutter clean finished")
	return output, nil
}
