package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/topix-labs/topix/internal/branding"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: branding.CLIName(),
	Level:  log.WarnLevel,
})

// configureLogger points the shared logger at w with the configured level.
// verbose forces debug output.
func configureLogger(w io.Writer, level string, verbose bool) {
	logger.SetOutput(w)
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}
	if verbose {
		lvl = log.DebugLevel
	}
	logger.SetLevel(lvl)
	if err != nil && level != "" {
		logger.Warn("unknown log level, using warn", "level", level)
	}
}
