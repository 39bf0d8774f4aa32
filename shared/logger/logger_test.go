package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"hotelinv/config"
	"hotelinv/shared/constant"
	"hotelinv/shared/logger"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()

	original := log.Logger
	level := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = original
		zerolog.SetGlobalLevel(level)
	})

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	return &buf
}

func TestInitLogger(t *testing.T) {
	capture(t)

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	buf := capture(t)

	logger.ErrorWithStack(errors.New("sheet save failed"))

	assert.Contains(t, buf.String(), "sheet save failed")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		want     zerolog.Level
	}{
		{name: "debug", logLevel: "debug", want: zerolog.DebugLevel},
		{name: "warn", logLevel: "warn", want: zerolog.WarnLevel},
		{name: "disabled", logLevel: "disabled", want: zerolog.Disabled},
		{name: "unknown falls back to info", logLevel: "chatty", want: zerolog.InfoLevel},
		{name: "empty falls back to info", logLevel: "", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			capture(t)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestSetLogLevelProductionTagsApp(t *testing.T) {
	capture(t)

	cfg := &config.Config{}
	cfg.Server.Env = constant.ServerEnvProduction
	cfg.Server.LogLevel = "info"
	cfg.App.Name = "hotelinv"

	logger.SetLogLevel(cfg)

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)
	log.Info().Msg("ready")

	assert.Contains(t, buf.String(), `"app":"hotelinv"`)
}

func TestWithProcess(t *testing.T) {
	buf := capture(t)

	logger.WithProcess("notifier")
	log.Info().Msg("consuming")

	assert.Contains(t, buf.String(), `"process":"notifier"`)
}
