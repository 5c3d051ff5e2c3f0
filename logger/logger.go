package logger

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level represents the logging level
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelSilent
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelSilent:
		return "SILENT"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a level name to a Level, defaulting to LevelInfo.
func ParseLevel(name string) Level {
	switch name {
	case "debug", "DEBUG", "trace", "TRACE":
		return LevelDebug
	case "warn", "WARN":
		return LevelWarn
	case "error", "ERROR":
		return LevelError
	case "silent", "SILENT", "off", "OFF":
		return LevelSilent
	default:
		return LevelInfo
	}
}

// zapLevel maps a Level to the zap level that gates it. LevelSilent sits
// above every level zap can emit.
func (l Level) zapLevel() zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	case LevelSilent:
		return zapcore.FatalLevel + 1
	default:
		return zapcore.InfoLevel
	}
}

// Logger provides structured logging with configurable levels
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	WithFields(fields ...Field) Logger
	SetLevel(level Level)
}

// Field represents a structured log field
type Field struct {
	Key   string
	Value any
}

// F is a convenience function for creating fields
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// zapLogger implements Logger on top of zap. Children created by WithFields
// share the parent's atomic level.
type zapLogger struct {
	base  *zap.Logger
	level zap.AtomicLevel
}

// NewLogger creates a new logger with the specified level and output.
// Lines are written in zap's console encoding.
func NewLogger(level Level, out io.Writer) Logger {
	if out == nil {
		out = os.Stderr
	}

	atom := zap.NewAtomicLevelAt(level.zapLevel())
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(&lockedWriter{w: out}),
		atom,
	)

	return &zapLogger{base: zap.New(core), level: atom}
}

// NewDefaultLogger creates a logger with Info level writing to stderr.
// Stdout is left to prompt results.
func NewDefaultLogger() Logger {
	return NewLogger(LevelInfo, os.Stderr)
}

// NewSilentLogger creates a logger that outputs nothing
func NewSilentLogger() Logger {
	return &zapLogger{base: zap.NewNop(), level: zap.NewAtomicLevelAt(LevelSilent.zapLevel())}
}

// SetLevel sets the minimum logging level
func (l *zapLogger) SetLevel(level Level) {
	l.level.SetLevel(level.zapLevel())
}

// WithFields returns a new logger with additional fields
func (l *zapLogger) WithFields(fields ...Field) Logger {
	return &zapLogger{base: l.base.With(toZap(fields)...), level: l.level}
}

func (l *zapLogger) Debug(msg string, fields ...Field) {
	l.base.Debug(msg, toZap(fields)...)
}

func (l *zapLogger) Info(msg string, fields ...Field) {
	l.base.Info(msg, toZap(fields)...)
}

func (l *zapLogger) Warn(msg string, fields ...Field) {
	l.base.Warn(msg, toZap(fields)...)
}

func (l *zapLogger) Error(msg string, fields ...Field) {
	l.base.Error(msg, toZap(fields)...)
}

func toZap(fields []Field) []zap.Field {
	out := make([]zap.Field, len(fields))
	for i, f := range fields {
		out[i] = zap.Any(f.Key, f.Value)
	}
	return out
}

// lockedWriter serialises writes from loggers sharing one io.Writer.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (w *lockedWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.w.Write(p)
}

// Global default logger. Library code stays quiet unless a caller opts in.
var defaultLogger = NewSilentLogger()

// SetDefault sets the global default logger
func SetDefault(l Logger) {
	defaultLogger = l
}

// Default returns the global default logger
func Default() Logger {
	return defaultLogger
}

// Convenience functions using the default logger
func Debug(msg string, fields ...Field) {
	defaultLogger.Debug(msg, fields...)
}

func Info(msg string, fields ...Field) {
	defaultLogger.Info(msg, fields...)
}

func Warn(msg string, fields ...Field) {
	defaultLogger.Warn(msg, fields...)
}

func Error(msg string, fields ...Field) {
	defaultLogger.Error(msg, fields...)
}
