package log

import (
	"errors"
	"io"
	"sort"
	"time"

	"github.com/Invicton-Labs/go-search/collections"
	"github.com/Invicton-Labs/go-stackerr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})

	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})

	// Error will add the error's fields as log fields and log the
	// error message at the Error level.
	Error(err error)

	With(args ...interface{}) Logger
	WithOptions(opts ...zap.Option) Logger

	// Sync flushes any buffered log entries.
	Sync() error

	// Config gets the config values that can be used to re-create this logger
	Config() NewInput

	// Clone returns a copy of the logger
	Clone() Logger
}

type logger struct {
	*zap.SugaredLogger
	config NewInput
}

func (l logger) Clone() Logger {
	return logger{
		SugaredLogger: l.SugaredLogger.With(),
		config:        l.config.Clone(),
	}
}

func (l logger) Config() NewInput {
	return l.config.Clone()
}

func (l logger) errorFields(err error) []any {
	var serr stackerr.Error
	if !errors.As(err, &serr) {
		serr = stackerr.Wrap(err)
	}
	kvp := make([]any, 0, 2+2*len(serr.Fields()))
	for k, v := range serr.Fields() {
		kvp = append(kvp, k, v)
	}
	return kvp
}

func (l logger) Error(err error) {
	if err == nil {
		return
	}
	l.SugaredLogger.WithOptions(zap.AddCallerSkip(1)).Errorw(err.Error(), l.errorFields(err)...)
}

func (l logger) With(args ...interface{}) Logger {
	return logger{l.SugaredLogger.With(args...), l.config.Clone()}
}

func (l logger) WithOptions(opts ...zap.Option) Logger {
	return logger{l.SugaredLogger.WithOptions(opts...), l.config.Clone()}
}

type NewInput struct {
	Name          string
	Level         zapcore.Level
	IsDevelopment bool
	InitialFields map[string]any
	SkippedFrames int
	// Output is where log entries are written. Defaults to stdout.
	Output io.Writer
}

func (ni *NewInput) Clone() NewInput {
	return NewInput{
		Name:          ni.Name,
		Level:         ni.Level,
		IsDevelopment: ni.IsDevelopment,
		InitialFields: collections.CopyMap(ni.InitialFields),
		SkippedFrames: ni.SkippedFrames,
		Output:        ni.Output,
	}
}

func New(input NewInput) Logger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var encoder zapcore.Encoder

	if input.IsDevelopment {
		// If it's development mode, modify some settings
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoderConfig.EncodeDuration = zapcore.StringDurationEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	var sink zapcore.WriteSyncer
	if input.Output != nil {
		sink = zapcore.AddSync(input.Output)
	} else {
		out, _, err := zap.Open("stdout")
		if err != nil {
			panic(err)
		}
		sink = out
	}
	errSink, _, err := zap.Open("stderr")
	if err != nil {
		panic(err)
	}

	buildOpts := []zap.Option{
		zap.ErrorOutput(errSink),
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
	}

	if input.IsDevelopment {
		buildOpts = append(buildOpts, zap.Development())
	} else {
		buildOpts = append(buildOpts, zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewSamplerWithOptions(core, time.Second, 100, 100)
		}))
	}

	if input.InitialFields == nil {
		input.InitialFields = map[string]any{}
	}

	// Add any initial field as a build option, in a stable order
	if len(input.InitialFields) > 0 {
		keys := collections.MapKeys(input.InitialFields)
		sort.Strings(keys)
		fs := make([]zap.Field, 0, len(keys))
		for _, k := range keys {
			if f, ok := input.InitialFields[k].(zap.Field); ok {
				f.Key = k
				fs = append(fs, f)
			} else {
				fs = append(fs, zap.Any(k, input.InitialFields[k]))
			}
		}
		buildOpts = append(buildOpts, zap.Fields(fs...))
	}

	if input.SkippedFrames != 0 {
		buildOpts = append(buildOpts, zap.AddCallerSkip(input.SkippedFrames))
	}

	core := zapcore.NewCore(encoder, sink, zap.NewAtomicLevelAt(input.Level))
	zapLogger := zap.New(core, buildOpts...)
	if input.Name != "" {
		zapLogger = zapLogger.Named(input.Name)
	}

	return logger{zapLogger.Sugar(), input}
}
