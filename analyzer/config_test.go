package analyzer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("BASE_URL", "")
	t.Setenv("MODEL", "")
	t.Setenv("APIKEY", "")
	t.Setenv("ADB_SERIAL", "")

	cfg := FromEnv()

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultModel, cfg.Model)
	assert.Empty(t, cfg.APIKey)
	assert.Empty(t, cfg.Serial)
	assert.Equal(t, 60*time.Second, cfg.Timeout)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("BASE_URL", "http://localhost:11434/v1")
	t.Setenv("MODEL", "qwen2.5-vl")
	t.Setenv("APIKEY", "sk-test")
	t.Setenv("ADB_SERIAL", "emulator-5554")

	cfg := FromEnv()

	assert.Equal(t, "http://localhost:11434/v1", cfg.BaseURL)
	assert.Equal(t, "qwen2.5-vl", cfg.Model)
	assert.Equal(t, "sk-test", cfg.APIKey)
	assert.Equal(t, "emulator-5554", cfg.Serial)
}
