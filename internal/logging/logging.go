package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global zerolog logger. Operational output goes to
// stdout via the command layer; the log is the debug/audit trail on stderr,
// silenced to warnings unless --debug is set.
func Setup(debug bool) {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	log.Logger = zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
