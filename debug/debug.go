//go:build debug
// +build debug

package debug

import (
	"os"

	"github.com/rs/zerolog"
)

const Enabled = true

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	Level(zerolog.DebugLevel).
	With().
	Timestamp().
	Str("component", "bitvlq").
	Logger()
