package config

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setEnv(t *testing.T, env map[string]string) {
	t.Helper()
	for _, key := range []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"PORT", "SECRET_KEY", "GIN_MODE", "LOG_LEVEL", "LOG_FORMAT", "REQUEST_TIMEOUT",
	} {
		t.Setenv(key, env[key])
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	setEnv(t, map[string]string{
		"DB_HOST":    "localhost",
		"DB_PORT":    "5432",
		"DB_USER":    "fyyur",
		"DB_NAME":    "fyyur",
		"SECRET_KEY": "s3cret",
	})

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "host=localhost user=fyyur password= dbname=fyyur port=5432 sslmode=disable TimeZone=UTC", cfg.DSN())
}

func TestLoadConfigOverrides(t *testing.T) {
	setEnv(t, map[string]string{
		"SECRET_KEY":      "s3cret",
		"PORT":            "5000",
		"LOG_LEVEL":       "debug",
		"LOG_FORMAT":      "json",
		"REQUEST_TIMEOUT": "0",
		"DB_SSLMODE":      "require",
	})

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Zero(t, cfg.RequestTimeout)
	assert.Contains(t, cfg.DSN(), "sslmode=require")
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing secret", env: map[string]string{}},
		{name: "bad level", env: map[string]string{"SECRET_KEY": "x", "LOG_LEVEL": "loud"}},
		{name: "bad format", env: map[string]string{"SECRET_KEY": "x", "LOG_FORMAT": "xml"}},
		{name: "bad timeout", env: map[string]string{"SECRET_KEY": "x", "REQUEST_TIMEOUT": "soon"}},
		{name: "negative timeout", env: map[string]string{"SECRET_KEY": "x", "REQUEST_TIMEOUT": "-1s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.env)
			cfg, err := LoadConfig()
			assert.Nil(t, cfg)
			assert.Error(t, err)
		})
	}

	setEnv(t, map[string]string{})
	_, err := LoadConfig()
	assert.ErrorIs(t, err, ErrMissingSecretKey)
}

func TestInitLogger(t *testing.T) {
	defer logrus.SetFormatter(&logrus.TextFormatter{})
	defer logrus.SetLevel(logrus.InfoLevel)

	InitLogger(&Config{LogLevel: logrus.WarnLevel, LogFormat: "json"})
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)
}

func TestGormLoggerReportsFailuresOnly(t *testing.T) {
	log, hook := test.NewNullLogger()
	gormLogger := NewGormLogger(log)
	sql := func() (string, int64) { return `SELECT * FROM "venue"`, 0 }
	ctx := context.Background()

	gormLogger.Trace(ctx, time.Now(), sql, nil)
	assert.Empty(t, hook.AllEntries())

	gormLogger.Trace(ctx, time.Now(), sql, gorm.ErrRecordNotFound)
	assert.Empty(t, hook.AllEntries())

	gormLogger.Trace(ctx, time.Now(), sql, errors.New("boom"))
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, `SELECT * FROM "venue"`, hook.LastEntry().Data["sql"])

	gormLogger.Trace(ctx, time.Now().Add(-time.Second), sql, nil)
	require.Len(t, hook.AllEntries(), 2)
	assert.Equal(t, "Slow query", hook.LastEntry().Message)

	hook.Reset()
	gormLogger.LogMode(logger.Silent).Trace(ctx, time.Now(), sql, errors.New("boom"))
	assert.Empty(t, hook.AllEntries())
}
