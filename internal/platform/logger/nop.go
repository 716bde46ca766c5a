package logger

var nop = &nopLogger{}

type nopLogger struct{}

func NewNop() Logger {
	return nop
}

func (*nopLogger) Info(string, ...Field)  {}
func (*nopLogger) Error(string, ...Field) {}
func (*nopLogger) Debug(string, ...Field) {}
func (*nopLogger) Warn(string, ...Field)  {}

func (n *nopLogger) With(...Field) Logger { return n }
