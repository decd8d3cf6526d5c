package testhelpers

import (
	"github.com/myrjola/ftracker/internal/logging"
	"io"
	"log/slog"
)

// NewLogger creates a debug level logger writing to logSink, typically a [Writer] from [NewWriter].
func NewLogger(logSink io.Writer) *slog.Logger {
	return logging.NewLogger(logSink, slog.LevelDebug)
}
