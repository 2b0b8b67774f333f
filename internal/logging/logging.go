// Package logging builds the shared zap logger: console output always,
// plus a rotated JSON log file when one is configured.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New creates the application logger. With verbose set, debug-level
// entries reach the console; the file core stays at info.
func New(logFile string, verbose bool) *zap.Logger {
	consoleLevel := zap.InfoLevel
	if verbose {
		consoleLevel = zap.DebugLevel
	}

	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		consoleLevel,
	)

	if logFile == "" {
		return zap.New(consoleCore)
	}

	rotator := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(rotator),
		zap.InfoLevel,
	)

	return zap.New(zapcore.NewTee(fileCore, consoleCore))
}
