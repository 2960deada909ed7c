// Package log is a thin structured-logging facade over zap. The engine
// only depends on the Log interface, so the backend stays swappable and
// tests can run against the no-op logger.
package log

import "time"

type Log interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	With(fields ...Field) Log
	Level() Level
}

type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelSilent
)

// ParseLevel maps a config string to a Level. Unknown values fall back to
// info.
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "silent", "none", "off":
		return LevelSilent
	default:
		return LevelInfo
	}
}

// Field is one structured key/value pair. The Kind steers the zap encoder
// without forcing callers to import zap.
type Field struct {
	Key   string
	Kind  FieldKind
	Value any
}

type FieldKind uint8

const (
	KindAny FieldKind = iota
	KindBool
	KindDuration
	KindError
	KindFloat64
	KindInt
	KindString
	KindUint32
	KindUint64
)

func Any(key string, val any) Field       { return Field{Key: key, Kind: KindAny, Value: val} }
func Bool(key string, val bool) Field     { return Field{Key: key, Kind: KindBool, Value: val} }
func Float64(key string, v float64) Field { return Field{Key: key, Kind: KindFloat64, Value: v} }
func Int(key string, val int) Field       { return Field{Key: key, Kind: KindInt, Value: val} }
func String(key, val string) Field        { return Field{Key: key, Kind: KindString, Value: val} }
func Uint32(key string, v uint32) Field   { return Field{Key: key, Kind: KindUint32, Value: v} }
func Uint64(key string, v uint64) Field   { return Field{Key: key, Kind: KindUint64, Value: v} }

func Duration(key string, val time.Duration) Field {
	return Field{Key: key, Kind: KindDuration, Value: val}
}

func Error(err error) Field {
	return Field{Key: "error", Kind: KindError, Value: err}
}
