package log

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ Log = (*Logger)(nil)

var (
	defaultLogger *Logger
	defaultOnce   sync.Once
)

// Logger is the zap-backed implementation of Log.
type Logger struct {
	zl    *zap.Logger
	level Level
}

// New builds a json logger writing to stderr at the given level. LevelSilent
// produces a logger that discards everything.
func New(level Level) *Logger {
	var zl *zap.Logger
	if level == LevelSilent {
		zl = zap.NewNop()
	} else {
		cfg := zap.Config{
			Level:            zap.NewAtomicLevelAt(toZapLevel(level)),
			Encoding:         "json",
			EncoderConfig:    zap.NewProductionEncoderConfig(),
			OutputPaths:      []string{"stderr"},
			ErrorOutputPaths: []string{"stderr"},
			DisableCaller:    true,
		}
		built, err := cfg.Build()
		if err != nil {
			panic(err)
		}
		zl = built
	}

	l := &Logger{zl: zl, level: level}
	defaultOnce.Do(func() { defaultLogger = l })
	return l
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zl: zap.NewNop(), level: LevelSilent}
}

// Provide returns the first logger built by New, for dependency injection.
// It is nil until New has been called.
func Provide() *Logger {
	return defaultLogger
}

func (l *Logger) Debug(msg string, fields ...Field) { l.zl.Debug(msg, toZap(fields)...) }
func (l *Logger) Info(msg string, fields ...Field)  { l.zl.Info(msg, toZap(fields)...) }
func (l *Logger) Warn(msg string, fields ...Field)  { l.zl.Warn(msg, toZap(fields)...) }
func (l *Logger) Error(msg string, fields ...Field) { l.zl.Error(msg, toZap(fields)...) }

func (l *Logger) With(fields ...Field) Log {
	return &Logger{zl: l.zl.With(toZap(fields)...), level: l.level}
}

func (l *Logger) Level() Level { return l.level }

func toZapLevel(level Level) zapcore.Level {
	switch level {
	case LevelDebug:
		return zap.DebugLevel
	case LevelInfo:
		return zap.InfoLevel
	case LevelWarn:
		return zap.WarnLevel
	case LevelError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

func toZap(fields []Field) []zap.Field {
	out := make([]zap.Field, len(fields))
	for i, f := range fields {
		switch f.Kind {
		case KindBool:
			out[i] = zap.Bool(f.Key, f.Value.(bool))
		case KindDuration:
			out[i] = zap.Duration(f.Key, f.Value.(time.Duration))
		case KindError:
			err, _ := f.Value.(error)
			out[i] = zap.NamedError(f.Key, err)
		case KindFloat64:
			out[i] = zap.Float64(f.Key, f.Value.(float64))
		case KindInt:
			out[i] = zap.Int(f.Key, f.Value.(int))
		case KindString:
			out[i] = zap.String(f.Key, f.Value.(string))
		case KindUint32:
			out[i] = zap.Uint32(f.Key, f.Value.(uint32))
		case KindUint64:
			out[i] = zap.Uint64(f.Key, f.Value.(uint64))
		default:
			out[i] = zap.Any(f.Key, f.Value)
		}
	}
	return out
}
