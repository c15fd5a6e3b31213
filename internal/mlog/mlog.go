// Package mlog is the structured-warning sink for numerical events where
// execution continues with degraded accuracy — adaptive-dt refusal, NNLS
// non-convergence, large size-change steps — as opposed to domain or
// invariant-violation errors, which are always returned as plain errors
// and never routed through here.
//
// Every warning carries the simulated time t and the offending quantity.
package mlog

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.Mutex
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
	// verbose gates informational progress events; warnings are always emitted.
	verbose bool
)

// SetVerbose toggles progress-level logging; the integrator reports
// progress only under an explicit verbose flag.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// Warn logs a numerical warning tagged with simulated time t, the
// offending quantity's name and value, and a human-readable message.
func Warn(t float64, quantity string, value float64, msg string) {
	mu.Lock()
	defer mu.Unlock()
	logger.Warn().
		Float64("t", t).
		Str("quantity", quantity).
		Float64("value", value).
		Msg(msg)
}

// Progress logs an informational step event, gated by SetVerbose.
func Progress(t, dt float64, msg string) {
	mu.Lock()
	defer mu.Unlock()
	if !verbose {
		return
	}
	logger.Info().Float64("t", t).Float64("dt", dt).Msg(msg)
}
