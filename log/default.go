package log

import (
	"sync"

	"github.com/Invicton-Labs/go-search/collections"
	"go.uber.org/zap/zapcore"
)

var defaultLogger Logger
var defaultLoggerLock sync.RWMutex

func init() {
	InitDefault(NewInput{
		Level: zapcore.InfoLevel,
	})
}

// Default returns the current global default logger.
func Default() Logger {
	defaultLoggerLock.RLock()
	defer defaultLoggerLock.RUnlock()
	return defaultLogger
}

var Debugf func(template string, args ...interface{})
var Infof func(template string, args ...interface{})
var Warnf func(template string, args ...interface{})
var Errorf func(template string, args ...interface{})

var Debugw func(msg string, keysAndValues ...interface{})
var Infow func(msg string, keysAndValues ...interface{})
var Warnw func(msg string, keysAndValues ...interface{})
var Errorw func(msg string, keysAndValues ...interface{})

var Error func(err error)

// InitDefault will create a new logger with the given settings
// and will set it as the default global logger. The package-level
// shortcut functions are not thread-safe to reassign, so this should
// not be called while other routines are logging through them.
func InitDefault(input NewInput) {
	defaultLoggerLock.Lock()
	defer defaultLoggerLock.Unlock()

	defaultLogger = New(input)

	Debugf = defaultLogger.Debugf
	Infof = defaultLogger.Infof
	Warnf = defaultLogger.Warnf
	Errorf = defaultLogger.Errorf

	Debugw = defaultLogger.Debugw
	Infow = defaultLogger.Infow
	Warnw = defaultLogger.Warnw
	Errorw = defaultLogger.Errorw

	Error = defaultLogger.Error
}

// SweetenDefaultLogger will add fields to the default logger.
func SweetenDefaultLogger(fields map[string]any) {
	input := Default().Config()
	input.InitialFields = collections.MergeMaps(input.InitialFields, fields)
	InitDefault(input)
}

// UnsweetenDefaultLogger will remove fields from the default logger.
func UnsweetenDefaultLogger(fieldKeys []string) {
	input := Default().Config()
	needsUpdate := false
	for _, key := range fieldKeys {
		if _, ok := input.InitialFields[key]; ok {
			needsUpdate = true
			delete(input.InitialFields, key)
		}
	}
	if needsUpdate {
		InitDefault(input)
	}
}
