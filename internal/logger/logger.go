// Package logger provides the service's zerolog logger. It is built before
// configuration loads, so level and environment come straight from the
// process environment under the same ASSISTANT_ prefix config uses.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New returns a logger tagged with the service name. ASSISTANT_LOG_LEVEL
// selects the level (default info); outside production output goes through
// the console writer for readability.
func New(serviceName string) zerolog.Logger {
	return newWithEnv(serviceName, os.Getenv("ASSISTANT_LOG_LEVEL"), os.Getenv("ASSISTANT_ENVIRONMENT"))
}

func newWithEnv(serviceName, levelStr, environment string) zerolog.Logger {
	level, err := zerolog.ParseLevel(levelStr)
	if err != nil || levelStr == "" {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if environment != "production" {
		out = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	return zerolog.New(out).Level(level).With().
		Str("service", serviceName).
		Timestamp().
		Logger()
}
