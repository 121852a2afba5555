package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logger defaults to a nop implementation so packages can log
// unconditionally before Init runs (and in tests).
var logger = zap.NewNop()

// Init builds the global logger. Verbose mode uses the human-readable
// development config at debug level; otherwise only warnings and errors
// reach stderr so command output stays clean.
func Init(verbose bool) error {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05")
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05")
	}

	built, err := cfg.Build()
	if err != nil {
		return err
	}
	logger = built
	return nil
}

// Sync flushes any buffered log entries
func Sync() {
	_ = logger.Sync()
}

// Debug logs a message at debug level
func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}

// Info logs a message at info level
func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

// Warn logs a message at warn level
func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

// Error logs a message at error level, attaching the error when present
func Error(msg string, err error, fields ...zap.Field) {
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	logger.Error(msg, fields...)
}
