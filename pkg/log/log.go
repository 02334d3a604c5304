// Package log provides the small logging interface every subsystem logs
// through, backed by logrus instead of bare fmt.Printf.
package log

import "github.com/sirupsen/logrus"

// Logger is the interface call sites depend on, so a test can swap in
// NewNullLogger without touching any subsystem.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Fatal(args ...interface{})
}

type logger struct {
	*logrus.Logger
}

// New returns a Logger backed by a logrus.Logger configured with a plain,
// timestamp-free text formatter, matching the CLI's diagnostic output
// described in spec.md §7.
func New() Logger {
	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return &logger{l}
}

func (l *logger) Infof(format string, args ...interface{})  { l.Logger.Infof(format, args...) }
func (l *logger) Errorf(format string, args ...interface{}) { l.Logger.Errorf(format, args...) }
func (l *logger) Debugf(format string, args ...interface{}) { l.Logger.Debugf(format, args...) }

// Fatal logs at fatal level and calls os.Exit(1) via logrus, matching the
// "exit non-zero" contract for startup/structural errors in spec.md §7.
func (l *logger) Fatal(args ...interface{}) { l.Logger.Fatal(args...) }
