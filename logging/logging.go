// Package logging provides structured logging with zap.
package logging

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu           sync.Mutex
	globalLogger *zap.SugaredLogger
	isSetup      bool
)

// SetupLogger initializes the global logger. When logFilePath is empty,
// messages go to stderr; otherwise they are appended to the given file.
// Debug mode lowers the level to include per-file processing entries.
func SetupLogger(logFilePath string, debug bool) error {
	mu.Lock()
	defer mu.Unlock()

	if isSetup {
		return nil
	}

	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if logFilePath != "" {
		config.OutputPaths = []string{logFilePath}
		config.ErrorOutputPaths = []string{logFilePath}
	}

	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	globalLogger = logger.Sugar()
	isSetup = true
	return nil
}

// CloseLogger flushes any buffered log entries.
func CloseLogger() {
	mu.Lock()
	defer mu.Unlock()

	if globalLogger != nil {
		globalLogger.Sync()
		globalLogger = nil
		isSetup = false
	}
}

// LogInfo logs an information message.
func LogInfo(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if globalLogger != nil {
		globalLogger.Infof(format, args...)
	}
}

// DebugLog logs a message if debug mode is enabled.
func DebugLog(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if globalLogger != nil {
		globalLogger.Debugf(format, args...)
	}
}

// LogError logs an error message.
func LogError(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if globalLogger != nil {
		globalLogger.Errorf(format, args...)
	}
}

// LogWarning logs a warning message.
func LogWarning(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if globalLogger != nil {
		globalLogger.Warnf(format, args...)
	}
}

// LogImageProcessed logs the outcome of hashing a single image.
func LogImageProcessed(path string, success bool, errMsg string) {
	mu.Lock()
	defer mu.Unlock()

	if globalLogger == nil {
		return
	}
	if success {
		globalLogger.Debugf("PROCESSED: %s", path)
	} else {
		globalLogger.Errorf("FAILED: %s - %s", path, errMsg)
	}
}
