// Package monitoring carries non-fatal numeric diagnostics out of the grid
// construction pipeline. Conditions that can degrade accuracy without
// invalidating a result (negative angular weights, degenerate partition
// normalization) are reported here rather than as errors.
package monitoring

import (
	"io"
	"log"
	"os"
)

// Logf is the package-level diagnostic logger. It defaults to a stderr logger
// tagged "grid:" but may be replaced by SetLogger. Tests or production code
// can redirect or mute it.
var Logf func(format string, v ...interface{}) = defaultLogf(os.Stderr)

func defaultLogf(w io.Writer) func(format string, v ...interface{}) {
	return log.New(w, "grid: ", log.LstdFlags).Printf
}

// SetLogger replaces the package logger. Passing nil will set a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}
