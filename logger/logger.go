package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	base  *zap.Logger
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init builds the process logger. Only the first call has any effect.
// Valid levels: debug, info, warn, error, dpanic, panic, fatal.
func Init(level string, json bool) {
	once.Do(func() {
		var zapLevel zapcore.Level
		if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
			zapLevel = zap.InfoLevel
		}

		encoderConfig := zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			FunctionKey:    zapcore.OmitKey,
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		}

		encoder := zapcore.NewConsoleEncoder(encoderConfig)
		if json {
			encoder = zapcore.NewJSONEncoder(encoderConfig)
		}

		// stdout is reserved for command output and the MCP stdio transport.
		core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), zapLevel)
		base = zap.New(core, zap.AddCaller())
		sugar = base.WithOptions(zap.AddCallerSkip(1)).Sugar()
	})
}

// L returns the process logger, initializing it at info level if needed.
func L() *zap.Logger {
	if base == nil {
		Init("info", false)
	}
	return base
}

func Sugar() *zap.SugaredLogger {
	if sugar == nil {
		Init("info", false)
	}
	return sugar
}

// Sync flushes buffered entries.
func Sync() {
	if base != nil {
		_ = base.Sync()
	}
}

func Debugf(template string, args ...interface{}) {
	Sugar().Debugf(template, args...)
}

func Infof(template string, args ...interface{}) {
	Sugar().Infof(template, args...)
}

func Warnf(template string, args ...interface{}) {
	Sugar().Warnf(template, args...)
}

func Errorf(template string, args ...interface{}) {
	Sugar().Errorf(template, args...)
}
