package logx_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"boatmatch/pkg/logx"
)

func TestParseLevel(t *testing.T) {
	rq := require.New(t)

	rq.Equal(slog.LevelDebug, logx.ParseLevel("debug"))
	rq.Equal(slog.LevelWarn, logx.ParseLevel("WARN"))
	rq.Equal(slog.LevelInfo, logx.ParseLevel("loud"))
	rq.Equal(slog.LevelInfo, logx.ParseLevel(""))
}

func TestNewLoggerJSON(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	logger := logx.NewLogger(&buf, logx.FormatJSON, "info")
	logger.Debug("hidden")
	logger.Info("visible", slog.String(logx.FieldPreset, "default"), logx.Error(errors.New("boom")))

	rq.NotContains(buf.String(), "hidden")
	rq.Contains(buf.String(), `"msg":"visible"`)
	rq.Contains(buf.String(), `"preset":"default"`)
	rq.Contains(buf.String(), "boom")
}
