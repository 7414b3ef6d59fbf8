package logx

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

var Error = tint.Err //nolint:gochecknoglobals

const (
	FormatTint = "tint"
	FormatText = "text"
	FormatJSON = "json"
)

func Stringer(name string, value fmt.Stringer) slog.Attr {
	return slog.String(name, value.String())
}

// NewLogger builds the process logger for the given output format and level
// name. Unknown formats fall back to tint, unknown levels to info.
func NewLogger(w io.Writer, format, level string) *slog.Logger {
	lvl := ParseLevel(level)

	switch strings.ToLower(format) {
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
	case FormatText:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
	default:
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      lvl,
			TimeFormat: time.DateTime,
		}))
	}
}

func ParseLevel(level string) slog.Level {
	var lvl slog.Level

	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}

	return lvl
}
