// Package config loads session configuration from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds one test session's settings.
type Config struct {
	// BaseURL is the root of the application under test
	BaseURL string

	// SessionCookie names the cookie carrying the API session credential
	SessionCookie string

	// TimeoutMultiplier rescales every catalog wait length at once; raise it
	// for loaded shared instances
	TimeoutMultiplier float64

	// PollInterval is the re-check interval for blocking waits
	PollInterval time.Duration

	// AllowLocatorReload enables the interactive locator catalog reload
	AllowLocatorReload bool

	// Headless controls whether the browser runs without a window
	Headless bool
}

// Load reads configuration from file and env. Env var overrides use prefix
// UIWAIT_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("base_url", "http://localhost:8080/")
	v.SetDefault("session_cookie", "galaxysession")
	v.SetDefault("timeout_multiplier", 1.0)
	v.SetDefault("poll_interval", "250ms")
	v.SetDefault("allow_locator_reload", false)
	v.SetDefault("headless", true)

	v.SetConfigType("yaml")

	cfgPath := os.Getenv("UIWAIT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "uiwait"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("UIWAIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	c := Config{
		BaseURL:            v.GetString("base_url"),
		SessionCookie:      v.GetString("session_cookie"),
		TimeoutMultiplier:  v.GetFloat64("timeout_multiplier"),
		PollInterval:       v.GetDuration("poll_interval"),
		AllowLocatorReload: v.GetBool("allow_locator_reload"),
		Headless:           v.GetBool("headless"),
	}

	if c.TimeoutMultiplier <= 0 {
		return Config{}, fmt.Errorf("timeout_multiplier must be positive, got %v", c.TimeoutMultiplier)
	}
	if c.BaseURL == "" {
		return Config{}, fmt.Errorf("base_url must be set")
	}
	return c, nil
}
