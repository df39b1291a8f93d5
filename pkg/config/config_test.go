package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "spendguard", cfg.Database.DBName)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, 168*time.Hour, cfg.JWT.RefreshExp)
	assert.Equal(t, "GIGACHAT_API_PERS", cfg.GigaChat.Scope)
	assert.True(t, cfg.GigaChat.InsecureSkipVerify)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_NAME", "spendguard_test")
	t.Setenv("JWT_EXPIRATION_HOURS", "2")
	t.Setenv("GIGACHAT_INSECURE_SKIP_VERIFY", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "spendguard_test", cfg.Database.DBName)
	assert.Equal(t, 2*time.Hour, cfg.JWT.Expiration)
	assert.False(t, cfg.GigaChat.InsecureSkipVerify)
	assert.Equal(t, "debug", cfg.Logger.Level)
}
