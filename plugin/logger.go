package plugin

import (
	"fmt"
	"io"
	"log"

	"github.com/dbpager/dbpager/core"
)

var _ core.Logger = (*Logger)(nil)

// Logger writes leveled messages through the standard library logger.
type Logger struct {
	logger *log.Logger
}

func NewLogger(out io.Writer) *Logger {
	return &Logger{
		logger: log.New(out, "", log.Ldate|log.Ltime),
	}
}

func (l *Logger) write(level, message string) {
	l.logger.Printf("[%s]: %s", level, message)
}

func (l *Logger) Debug(msg string) {
	l.write("debug", msg)
}

func (l *Logger) Debugf(format string, args ...any) {
	l.write("debug", fmt.Sprintf(format, args...))
}

func (l *Logger) Info(msg string) {
	l.write("info", msg)
}

func (l *Logger) Infof(format string, args ...any) {
	l.write("info", fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(msg string) {
	l.write("warning", msg)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.write("warning", fmt.Sprintf(format, args...))
}

func (l *Logger) Error(msg string) {
	l.write("error", msg)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.write("error", fmt.Sprintf(format, args...))
}
