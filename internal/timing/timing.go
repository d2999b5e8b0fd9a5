// Package timing provides a scoped helper for logging phase durations.
package timing

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/marmos91/dirsplit/internal/logger"
)

// Phase marks the start of a named phase and returns a function that logs the
// elapsed time when called. Callers invoke it once the phase completes, so a
// failed phase logs no duration line:
//
//	done := timing.Phase(log, "get file list")
//	files, err := EnumerateFiles(dir)
//	if err != nil {
//		return nil, err
//	}
//	done()
func Phase(log *slog.Logger, name string) func() {
	start := time.Now()
	return func() {
		elapsed := time.Since(start)
		log.Info(fmt.Sprintf("It took %.2fs to %s.", elapsed.Seconds(), name),
			logger.Phase(name),
			logger.DurationMs(float64(elapsed.Microseconds())/1000.0),
		)
	}
}
