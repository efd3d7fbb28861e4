package cli

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// LogLevelEnv overrides the log level chosen by --verbose.
const LogLevelEnv = "NORMALIZE_TRIPLET_LOG_LEVEL"

// newLogger configures logging based on the verbose flag.
func newLogger(w io.Writer, verbose bool) hclog.Logger {
	level := hclog.Off
	if verbose {
		level = hclog.Debug
	}
	if env := os.Getenv(LogLevelEnv); env != "" {
		if l := hclog.LevelFromString(env); l != hclog.NoLevel {
			level = l
		}
	}

	if level == hclog.Off {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "normalize-triplet",
			Output: io.Discard,
			Level:  hclog.Off,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "normalize-triplet",
		Output: w,
		Level:  level,
	})
}
