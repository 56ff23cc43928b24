package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Address())

	assert.Equal(t, 5, cfg.Recommend.DefaultLimit)
	assert.Equal(t, 10.0, cfg.Recommend.ScoreCutoff)
	assert.Equal(t, 3.8, cfg.Recommend.RatingFloor)
	assert.Equal(t, 90*time.Second, cfg.Recommend.PipelineTimeout)
	assert.False(t, cfg.Recommend.CoverProbe)
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	t.Setenv("NEXTREAD_PORT", "9000")
	t.Setenv("NEXTREAD_ENV", "production")

	cfg, err := Load([]string{"--port", "9001"})
	require.NoError(t, err)

	assert.Equal(t, 9001, cfg.Server.Port, "flag wins over env")
	assert.Equal(t, "production", cfg.Server.Environment, "env wins over default")
}

func TestLoadEnvTuning(t *testing.T) {
	t.Setenv("NEXTREAD_SCORE_CUTOFF", "12.5")
	t.Setenv("NEXTREAD_PIPELINE_TIMEOUT", "30s")
	t.Setenv("NEXTREAD_COVER_PROBE", "true")
	t.Setenv("READWISE_TOKEN", "tok-123")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 12.5, cfg.Recommend.ScoreCutoff)
	assert.Equal(t, 30*time.Second, cfg.Recommend.PipelineTimeout)
	assert.True(t, cfg.Recommend.CoverProbe)
	assert.Equal(t, "tok-123", cfg.Providers.ReadwiseToken)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
		{"bad environment", func(c *Config) { c.Server.Environment = "staging" }},
		{"limit above max", func(c *Config) { c.Recommend.DefaultLimit = 100 }},
		{"zero concurrency", func(c *Config) { c.Recommend.AdapterConcurrency = 0 }},
		{"zero timeout", func(c *Config) { c.Recommend.PipelineTimeout = 0 }},
		{"zero rate", func(c *Config) { c.Providers.RatePerSecond = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(nil)
			require.NoError(t, err)
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
