package config_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/isoshelf/pkg/cli/config"
)

func TestLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		level string
		want  []string
		drop  []string
	}{
		{level: "debug", want: []string{"dbg", "inf", "wrn", "err"}},
		{level: "INFO", want: []string{"inf", "wrn", "err"}, drop: []string{"dbg"}},
		{level: "Warn", want: []string{"wrn", "err"}, drop: []string{"dbg", "inf"}},
		{level: "error", want: []string{"err"}, drop: []string{"dbg", "inf", "wrn"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := (&config.Logger{Level: tt.level, Output: &buf}).Configure()
			gt.NoError(t, err)

			logger.Debug("dbg")
			logger.Info("inf")
			logger.Warn("wrn")
			logger.Error("err")

			for _, msg := range tt.want {
				gt.String(t, buf.String()).Contains("msg=" + msg)
			}
			for _, msg := range tt.drop {
				gt.False(t, strings.Contains(buf.String(), "msg="+msg))
			}
		})
	}
}

func TestLogger_InvalidLevel(t *testing.T) {
	for _, level := range []string{"", "verbose", "trace"} {
		t.Run("level="+level, func(t *testing.T) {
			logger, err := (&config.Logger{Level: level}).Configure()
			gt.Error(t, err)
			gt.Value(t, logger).Nil()
		})
	}
}

func TestLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := (&config.Logger{Level: "info", JSON: true, Output: &buf}).Configure()
	gt.NoError(t, err)

	logger.Info("Catalog loaded", slog.Int("records", 2))

	var record map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	gt.Value(t, record["msg"]).Equal("Catalog loaded")
	gt.Value(t, record["records"]).Equal(float64(2))
}

func TestLogger_Flags(t *testing.T) {
	var names []string
	for _, f := range (&config.Logger{}).Flags() {
		names = append(names, f.Names()...)
	}
	gt.A(t, names).Length(2)
	gt.Value(t, names[0]).Equal("log-level")
	gt.Value(t, names[1]).Equal("log-json")
}

func TestLogger_RedactsSecrets(t *testing.T) {
	t.Run("sentry DSN is hidden", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := (&config.Logger{Level: "info", JSON: true, Output: &buf}).Configure()
		gt.NoError(t, err)

		sentryCfg := config.Sentry{DSN: "https://key@sentry.example.com/1", Env: "prod"}
		logger.Info("configured", slog.Any("sentry", sentryCfg))

		gt.False(t, strings.Contains(buf.String(), "key@sentry.example.com"))
		gt.String(t, buf.String()).Contains("prod")
	})

	t.Run("untagged fields are kept", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := (&config.Logger{Level: "info", Output: &buf}).Configure()
		gt.NoError(t, err)

		src := config.GitHub{Owner: "octo", Repo: "images"}
		logger.Info("configured", slog.Any("source", src))

		gt.String(t, buf.String()).Contains("octo")
		gt.String(t, buf.String()).Contains("images")
	})
}
