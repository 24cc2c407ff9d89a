// Package log holds the process-wide zap logger used by the komet command.
package log

import (
	"fmt"

	"go.uber.org/zap"
)

var log *zap.SugaredLogger
var baseLogger *zap.Logger

// Init initializes the package-level logger
func Init(debug bool) error {
	var zapLogger *zap.Logger
	var err error

	if debug {
		zapLogger, err = zap.NewDevelopment()
	} else {
		zapLogger, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %v", err)
	}

	baseLogger = zapLogger
	log = wrapperSugar(zapLogger)
	return nil
}

// wrapperSugar skips the convenience wrapper frame so entries report their
// real caller.
func wrapperSugar(l *zap.Logger) *zap.SugaredLogger {
	return l.WithOptions(zap.AddCallerSkip(1)).Sugar()
}

// GetZapLogger returns the base logger, for handing to components that take
// a *zap.Logger such as plugin.Host.
func GetZapLogger() *zap.Logger {
	if baseLogger == nil {
		baseLogger, _ = zap.NewProduction()
		log = wrapperSugar(baseLogger)
	}
	return baseLogger
}

// GetSugaredLogger returns the sugared logger behind the package-level
// wrappers. Its caller skip assumes one wrapper frame.
func GetSugaredLogger() *zap.SugaredLogger {
	if log == nil {
		log = wrapperSugar(GetZapLogger())
	}
	return log
}

// Sync flushes any buffered log entries
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}

func Debugf(template string, args ...interface{}) {
	GetSugaredLogger().Debugf(template, args...)
}

func Infow(msg string, keysAndValues ...interface{}) {
	GetSugaredLogger().Infow(msg, keysAndValues...)
}

func Errorf(template string, args ...interface{}) {
	GetSugaredLogger().Errorf(template, args...)
}
