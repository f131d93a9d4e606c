package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Component names passed to (*zap.Logger).Named.
const (
	ComponentCLI       = "cli"
	ComponentSession   = "session"
	ComponentLLM       = "llm"
	ComponentGenerator = "questiongen"
	ComponentConsole   = "console"
)

// Format selects the log encoder.
type Format string

const (
	FormatConsole Format = "CONSOLE"
	FormatJSON    Format = "JSON"
)

// Environment variables read by FromEnv.
const (
	EnvLevel  = "QUIZZY_LOG_LEVEL"
	EnvFormat = "QUIZZY_LOG_FORMAT"
)

// ParseLevel converts a level name to a zapcore.Level. Unknown names map to INFO.
func ParseLevel(name string) zapcore.Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "WARN", "WARNING":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// ParseFormat converts a format name to a Format. Unknown names map to CONSOLE.
func ParseFormat(name string) Format {
	if Format(strings.ToUpper(strings.TrimSpace(name))) == FormatJSON {
		return FormatJSON
	}
	return FormatConsole
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05 MST"))
}

// New creates a zap logger writing to w.
func New(level string, format Format, w io.Writer) *zap.Logger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "component",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var encoder zapcore.Encoder
	if format == FormatJSON {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoderConfig.EncodeTime = timeEncoder
		encoderConfig.ConsoleSeparator = " | "
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(
		encoder,
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(ParseLevel(level)),
	)
	return zap.New(core, zap.AddCaller())
}

// FromEnv creates a logger configured by QUIZZY_LOG_LEVEL and
// QUIZZY_LOG_FORMAT, writing to w.
func FromEnv(w io.Writer) *zap.Logger {
	return New(os.Getenv(EnvLevel), ParseFormat(os.Getenv(EnvFormat)), w)
}

// OpenFile creates a logger appending to path. The returned close function
// syncs the logger and closes the file.
func OpenFile(path, level string, format Format) (*zap.Logger, func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	l := New(level, format, f)
	return l, func() error {
		_ = l.Sync()
		return f.Close()
	}, nil
}
