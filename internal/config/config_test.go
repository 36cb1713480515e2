package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, 10, cfg.Solver.EnumerationLimit)
	assert.Equal(t, 100000, cfg.Solver.MaxDisks)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "development", cfg.Observability.Environment)
	assert.False(t, cfg.Observability.NewRelicEnabled())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("HANOI_PRIMARY__ENV", "production")
	t.Setenv("HANOI_SERVER__PORT", "9090")
	t.Setenv("HANOI_SERVER__READ_TIMEOUT", "5")
	t.Setenv("HANOI_SERVER__CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("HANOI_SOLVER__ENUMERATION_LIMIT", "12")
	t.Setenv("HANOI_SOLVER__MAX_DISKS", "500")
	t.Setenv("HANOI_OBSERVABILITY__LOGGING__LEVEL", "warn")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Primary.Env)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadTimeout)
	assert.Equal(t, 30, cfg.Server.WriteTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, 12, cfg.Solver.EnumerationLimit)
	assert.Equal(t, 500, cfg.Solver.MaxDisks)
	assert.Equal(t, "warn", cfg.Observability.Logging.Level)
	assert.Equal(t, "production", cfg.Observability.Environment)
	assert.True(t, cfg.Observability.IsProduction())
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "enumeration limit too high", key: "HANOI_SOLVER__ENUMERATION_LIMIT", val: "21"},
		{name: "max disks below limit", key: "HANOI_SOLVER__MAX_DISKS", val: "5"},
		{name: "max disks above ceiling", key: "HANOI_SOLVER__MAX_DISKS", val: "2147483647"},
		{name: "unknown log level", key: "HANOI_OBSERVABILITY__LOGGING__LEVEL", val: "loud"},
		{name: "unknown log format", key: "HANOI_OBSERVABILITY__LOGGING__FORMAT", val: "xml"},
		{name: "zero timeout", key: "HANOI_SERVER__IDLE_TIMEOUT", val: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestObservabilityConfig_GetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Logging.Level = ""
	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())
}
