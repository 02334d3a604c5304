package log

// nullLogger discards everything. Useful in tests that exercise code
// paths which log but shouldn't produce test output.
type nullLogger struct{}

func (n nullLogger) Infof(format string, args ...interface{})  {}
func (n nullLogger) Errorf(format string, args ...interface{}) {}
func (n nullLogger) Debugf(format string, args ...interface{}) {}
func (n nullLogger) Fatal(args ...interface{})                 {}

// NewNullLogger returns a Logger that discards all output.
func NewNullLogger() Logger {
	return nullLogger{}
}
