package walknet

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger returns timestamped logger writing to w. Debug messages are shown only if verbose is set
func NewLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

// done logs msg along with time elapsed since st
func done(logger *log.Logger, st time.Time, msg string, keyvals ...interface{}) {
	keyvals = append(keyvals, "elapsed", time.Since(st).Round(time.Millisecond))
	logger.Info(msg, keyvals...)
}
