package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/", c.BaseURL)
	assert.Equal(t, 1.0, c.TimeoutMultiplier)
	assert.Equal(t, 250*time.Millisecond, c.PollInterval)
	assert.False(t, c.AllowLocatorReload)
	assert.True(t, c.Headless)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("UIWAIT_TIMEOUT_MULTIPLIER", "4")
	t.Setenv("UIWAIT_BASE_URL", "https://shared.example.org/app/")
	t.Setenv("UIWAIT_ALLOW_LOCATOR_RELOAD", "true")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 4.0, c.TimeoutMultiplier)
	assert.Equal(t, "https://shared.example.org/app/", c.BaseURL)
	assert.True(t, c.AllowLocatorReload)
}

func TestLoad_RejectsNonPositiveMultiplier(t *testing.T) {
	t.Setenv("UIWAIT_TIMEOUT_MULTIPLIER", "0")

	_, err := Load()
	assert.Error(t, err)
}
