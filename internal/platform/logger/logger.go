package logger

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type Config struct {
	Environment string
	// Level overrides the environment's default level when set.
	Level  Level
	Format Format
	// Output is a zap sink such as "stdout", "stderr" or a file path.
	// Empty means stdout.
	Output string
	// Name is attached to every entry as the logger name.
	Name string
}

// Logger is the structured logger used across the service. Fields carry
// field names, counts and identifiers; submitted values never go in.
type Logger interface {
	Info(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Debug(msg string, fields ...Field)
	Warn(msg string, fields ...Field)

	With(fields ...Field) Logger
}

type Field struct {
	Key   string
	Value interface{}
}

func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Strings(key string, values []string) Field {
	return Field{Key: key, Value: values}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value}
}

func Error(err error) Field {
	return Field{Key: "error", Value: err}
}

type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

var levels = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

func ParseLevel(value string) (Level, error) {
	level, ok := levels[strings.ToLower(strings.TrimSpace(value))]
	if !ok {
		return "", fmt.Errorf("invalid log level: %q", value)
	}
	return level, nil
}

// Decode lets envconfig parse LOG_LEVEL.
func (l *Level) Decode(value string) error {
	level, err := ParseLevel(value)
	if err != nil {
		return err
	}
	*l = level
	return nil
}

type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

func ParseFormat(value string) (Format, error) {
	switch format := Format(strings.ToLower(strings.TrimSpace(value))); format {
	case FormatJSON, FormatText:
		return format, nil
	default:
		return "", fmt.Errorf("invalid log format: %q", value)
	}
}

func (f *Format) Decode(value string) error {
	format, err := ParseFormat(value)
	if err != nil {
		return err
	}
	*f = format
	return nil
}

type loggerKey struct{}

func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the request logger, or a no-op logger when none is set.
func FromContext(ctx context.Context) Logger {
	return FromContextOr(ctx, nop)
}

// FromContextOr returns the request logger, or fallback when none is set.
func FromContextOr(ctx context.Context, fallback Logger) Logger {
	if logger, ok := ctx.Value(loggerKey{}).(Logger); ok {
		return logger
	}
	return fallback
}

type syncer interface {
	Sync() error
}

// Sync flushes buffered entries if the logger buffers any.
func Sync(l Logger) error {
	if s, ok := l.(syncer); ok {
		return s.Sync()
	}
	return nil
}
