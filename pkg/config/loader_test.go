package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Level   string `envconfig:"LOG_LEVEL"`
	Retries int    `envconfig:"RETRIES" default:"3"`
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "WARNING")

	var cfg testConfig
	require.NoError(t, Load("", &cfg))

	assert.Equal(t, "WARNING", cfg.Level)
	assert.Equal(t, 3, cfg.Retries)
}

func TestLoadAppliesPrefix(t *testing.T) {
	t.Setenv("WORKER_LOG_LEVEL", "debug")

	var cfg testConfig
	require.NoError(t, Load("worker", &cfg))

	assert.Equal(t, "debug", cfg.Level)
}

func TestLoadUnparsableValue(t *testing.T) {
	t.Setenv("RETRIES", "many")

	var cfg testConfig
	assert.Error(t, Load("", &cfg))
}

func TestMustLoadPanicsOnBadSpec(t *testing.T) {
	assert.Panics(t, func() {
		var notAPointer testConfig
		MustLoad("", notAPointer)
	})
}
