package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"

	"github.com/apna-adda/adda/internal/common/config"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"fatal":   zapcore.FatalLevel,
		"unknown": zapcore.InfoLevel, // default
		"":        zapcore.InfoLevel,
	}
	for in, exp := range cases {
		assert.Equal(t, exp, parseLevel(in))
	}
}

func TestSetDefaults(t *testing.T) {
	cfg := &config.LoggerConfig{}
	setDefaults(cfg)
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "stdout", cfg.Output)
	assert.Equal(t, 100, cfg.MaxSize)
	assert.Equal(t, 3, cfg.MaxBackups)
	assert.Equal(t, 7, cfg.MaxAge)
	assert.NotEmpty(t, cfg.TimeFormat)
}

func TestNewLogger_Stdout(t *testing.T) {
	lg, err := NewLogger(&config.LoggerConfig{})
	assert.NoError(t, err)
	assert.NotNil(t, lg)
}

func TestNewLogger_File(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.LoggerConfig{
		Output:   "file",
		FilePath: filepath.Join(dir, "logs", "apiserver.log"),
		Format:   "console",
		Color:    true,
	}
	lg, err := NewLogger(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, lg)

	// The log directory was provisioned.
	_, err = os.Stat(filepath.Join(dir, "logs"))
	assert.NoError(t, err)
}
