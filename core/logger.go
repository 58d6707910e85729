package core

type Logger interface {
	Debug(msg string)
	Debugf(format string, args ...any)
	Info(msg string)
	Infof(format string, args ...any)
	Warn(msg string)
	Warnf(format string, args ...any)
	Error(msg string)
	Errorf(format string, args ...any)
}

// nopLogger is used when no logger is provided.
type nopLogger struct{}

func (nopLogger) Debug(string) {}
func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Info(string) {}
func (nopLogger) Infof(string, ...any) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Warnf(string, ...any) {}
func (nopLogger) Error(string) {}
func (nopLogger) Errorf(string, ...any) {}
