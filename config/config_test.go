package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		ServerPort:       "8080",
		ServerHost:       "0.0.0.0",
		MongoURI:         "mongodb://localhost:27017",
		MongoDBName:      "recipes",
		JWTSecret:        "a-secret-long-enough",
		PublishCheckHour: 3,
	}
}

func TestValidateAcceptsCompleteConfig(t *testing.T) {
	assert.NoError(t, Validate(validConfig()))
}

func TestValidateRejectsMissingValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"no jwt secret", func(c *Config) { c.JWTSecret = "" }, "JWT_SECRET"},
		{"no mongo uri", func(c *Config) { c.MongoURI = "" }, "MONGO_URI"},
		{"no db name", func(c *Config) { c.MongoDBName = "" }, "MONGO_DB_NAME"},
		{"short jwt secret", func(c *Config) { c.JWTSecret = "short" }, "at least 16"},
		{"hour too large", func(c *Config) { c.PublishCheckHour = 24 }, "PUBLISH_CHECK_HOUR"},
		{"hour negative", func(c *Config) { c.PublishCheckHour = -1 }, "PUBLISH_CHECK_HOUR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			err := Validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoadUsesDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "a-secret-long-enough")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "recipes", cfg.MongoDBName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Zero(t, cfg.PublishCheckHour)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "a-secret-long-enough")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("PUBLISH_CHECK_HOUR", "5")
	t.Setenv("REDIS_DB", "2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, 5, cfg.PublishCheckHour)
	assert.Equal(t, 2, cfg.RedisDB)
}

func TestLoadRejectsMalformedInteger(t *testing.T) {
	t.Setenv("JWT_SECRET", "a-secret-long-enough")
	t.Setenv("PUBLISH_CHECK_HOUR", "noon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PUBLISH_CHECK_HOUR")
}

func TestLoadFailsWithoutSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}
