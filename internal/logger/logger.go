package logger

import (
	"os"
	"strings"

	"github.com/gookit/slog"
	"github.com/gookit/slog/handler"
)

// Fields carries structured log fields. Each key is written as a top-level
// JSON key next to datetime, level and message.
type Fields map[string]any

const redacted = "[redacted]"

// keys whose values never reach the log output
var sensitiveKeys = map[string]struct{}{
	"access_token":  {},
	"authorization": {},
	"code":          {},
	"cookie":        {},
	"password":      {},
	"secret":        {},
	"state":         {},
	"token":         {},
}

// std is usable at info level before Init is called.
var std = newLogger(slog.InfoLevel)

// InitFromEnv sets the level from envKey, then fallback, then info.
func InitFromEnv(envKey, fallback string) {
	level := os.Getenv(envKey)
	if level == "" {
		level = fallback
	}
	Init(level)
}

func Init(level string) {
	std = newLogger(parseLevel(level))
}

func parseLevel(name string) slog.Level {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return slog.InfoLevel
	}
	return slog.LevelByName(name)
}

func newLogger(max slog.Level) *slog.Logger {
	var levels slog.Levels
	for _, lv := range slog.AllLevels {
		if lv <= max {
			levels = append(levels, lv)
		}
	}

	h := handler.NewConsoleHandler(levels)
	h.SetFormatter(slog.NewJSONFormatter(func(f *slog.JSONFormatter) {
		f.Fields = []string{
			slog.FieldKeyDatetime,
			slog.FieldKeyLevel,
			slog.FieldKeyMessage,
		}
		f.Aliases = slog.StringMap{
			slog.FieldKeyDatetime: "datetime",
			slog.FieldKeyLevel:    "level",
			slog.FieldKeyMessage:  "message",
		}
		f.TimeFormat = "2006-01-02T15:04:05"
	}))
	return slog.NewWithHandlers(h)
}

// prepare copies fields, masks sensitive values and adds service_name from
// SERVICE_NAME. The caller's map is not modified.
func prepare(fields Fields) slog.M {
	out := make(slog.M, len(fields)+1)
	for k, v := range fields {
		if _, ok := sensitiveKeys[strings.ToLower(k)]; ok {
			v = redacted
		}
		out[k] = v
	}
	if _, ok := out["service_name"]; !ok {
		if sn := os.Getenv("SERVICE_NAME"); sn != "" {
			out["service_name"] = sn
		}
	}
	return out
}

func DebugWithFields(msg string, fields Fields) {
	std.WithFields(prepare(fields)).Debug(msg)
}

func InfoWithFields(msg string, fields Fields) {
	std.WithFields(prepare(fields)).Info(msg)
}

func WarnWithFields(msg string, fields Fields) {
	std.WithFields(prepare(fields)).Warn(msg)
}

func ErrorWithFields(msg string, fields Fields) {
	std.WithFields(prepare(fields)).Error(msg)
}
