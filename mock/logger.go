package mock

import (
	"fmt"
)

// Logger implements log.Logger, keeping the error lines so tests can check
// that swallowed failures are at least logged.
type Logger struct {
	Errors []string
}

func (l *Logger) Debug(args ...interface{})                 {}
func (l *Logger) Debugf(format string, args ...interface{}) {}
func (l *Logger) Print(args ...interface{})                 {}
func (l *Logger) Printf(format string, args ...interface{}) {}

func (l *Logger) Error(args ...interface{}) {
	l.Errors = append(l.Errors, fmt.Sprint(args...))
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Errors = append(l.Errors, fmt.Sprintf(format, args...))
}

func (l *Logger) Fatal(args ...interface{}) {
	panic(fmt.Sprint(args...))
}

func (l *Logger) Fatalf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}
