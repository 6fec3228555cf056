// Package debug carries the library's diagnostic logging. Build with
// -tags debug to get output on stderr; otherwise every call is a no-op.
package debug

import "github.com/rs/zerolog"

// Logger returns the package logger.
func Logger() *zerolog.Logger {
	return &logger
}

// Log writes a debug-level message. Guard hot paths with Enabled.
func Log(format string, args ...interface{}) {
	logger.Debug().Msgf(format, args...)
}
