package logger

import (
	"go.uber.org/zap"
)

// Logger is the global sugared logger instance.
var Logger *zap.SugaredLogger

func init() {
	// Safe no-op logger until Initialize is called, so early callers
	// (tests, package init) never hit a nil pointer.
	Logger = zap.NewNop().Sugar()
}

// Initialize sets up the global logger. Development mode uses the
// human-readable console encoder, production mode structured JSON.
func Initialize(development bool) error {
	var zapLogger *zap.Logger
	var err error

	if development {
		zapLogger, err = zap.NewDevelopment()
	} else {
		zapLogger, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}

	Logger = zapLogger.Sugar()
	return nil
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = Logger.Sync()
}
