package launcher

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger returns the diagnostic logger. Debug records are only emitted
// in debug builds; warnings always are.
func NewLogger(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "ppl",
		Level:  log.WarnLevel,
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
		logger.SetReportCaller(true)
	}
	return logger
}
