package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logger defaults to a nop logger so packages may log before Init runs.
var logger = zap.NewNop()

// Init configures the package logger. In development mode output is
// human-readable and verbose; in production mode only warnings and
// errors are emitted, keeping normal CLI output clean.
func Init(development bool) error {
	var (
		cfg zap.Config
		err error
	)
	if development {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05")

	logger, err = cfg.Build()
	return err
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = logger.Sync()
}

// Debug logs a message at debug level.
func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}

// Info logs a message at info level.
func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

// Warn logs a message at warn level.
func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

// Error logs a message at error level, appending the error as a field.
func Error(msg string, err error, fields ...zap.Field) {
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	logger.Error(msg, fields...)
}
