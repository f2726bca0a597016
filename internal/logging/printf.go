package logging

import (
	"fmt"
	"log/slog"
	"strings"
)

// PrintfLogger adapts a slog.Logger to the Errorf/Warnf/Debugf interface
// used by HTTP client libraries.
type PrintfLogger struct {
	logger *slog.Logger
}

// NewPrintfLogger wraps logger. The component attribute tags every record.
func NewPrintfLogger(logger *slog.Logger, component string) *PrintfLogger {
	return &PrintfLogger{logger: logger.With(slog.String("component", component))}
}

func (l *PrintfLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error(sprintf(format, v...))
}

func (l *PrintfLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn(sprintf(format, v...))
}

func (l *PrintfLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug(sprintf(format, v...))
}

// sprintf formats and trims the trailing newline many libraries append.
func sprintf(format string, v ...interface{}) string {
	return strings.TrimRight(fmt.Sprintf(format, v...), "\n")
}
