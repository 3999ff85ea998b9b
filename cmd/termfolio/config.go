package main

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/tinytelemetry/termfolio/internal/typewriter"
)

const (
	defaultBindHost      = "127.0.0.1"
	defaultAPIPort       = 3000
	defaultIntroDuration = 2 * time.Second
	defaultLogLevel      = "info"
)

// appConfig is internal runtime configuration.
// It is package-private to keep defaults and shape local to the CLI entrypoint.
type appConfig struct {
	Profile           string        `mapstructure:"profile"`
	TypeDelay         time.Duration `mapstructure:"type-delay"`
	DeleteDelay       time.Duration `mapstructure:"delete-delay"`
	PauseAfterTyped   time.Duration `mapstructure:"pause-after-typed"`
	PauseAfterDeleted time.Duration `mapstructure:"pause-after-deleted"`
	CursorInterval    time.Duration `mapstructure:"cursor-interval"`
	Loop              bool          `mapstructure:"loop"`
	IntroDuration     time.Duration `mapstructure:"intro-duration"`
	APIHost           string        `mapstructure:"api-host"`
	APIPort           int           `mapstructure:"api-port"`
	APIAddr           string        `mapstructure:"api-addr"`
	LogLevel          string        `mapstructure:"log-level"`
	ConfigPath        string        `mapstructure:"-"` // not from config file
}

// typewriterConfig maps the delay settings onto the engine config.
// Out-of-range delays are clamped by the engine, not rejected here.
func (c appConfig) typewriterConfig() typewriter.Config {
	return typewriter.Config{
		TypeDelay:         c.TypeDelay,
		DeleteDelay:       c.DeleteDelay,
		PauseAfterTyped:   c.PauseAfterTyped,
		PauseAfterDeleted: c.PauseAfterDeleted,
		Loop:              c.Loop,
	}.Normalize()
}

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("TERMFOLIO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("profile", "")
	v.SetDefault("type-delay", typewriter.DefaultTypeDelay)
	v.SetDefault("delete-delay", typewriter.DefaultDeleteDelay)
	v.SetDefault("pause-after-typed", typewriter.DefaultPauseAfterTyped)
	v.SetDefault("pause-after-deleted", typewriter.DefaultPauseAfterDeleted)
	v.SetDefault("cursor-interval", typewriter.DefaultCursorInterval)
	v.SetDefault("loop", true)
	v.SetDefault("intro-duration", defaultIntroDuration)
	v.SetDefault("api-host", defaultBindHost)
	v.SetDefault("api-port", defaultAPIPort)
	v.SetDefault("api-addr", "")
	v.SetDefault("log-level", defaultLogLevel)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "termfolio", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	cfg.ConfigPath = v.ConfigFileUsed()
	if cfg.APIPort <= 0 || cfg.APIPort > 65535 {
		return cfg, fmt.Errorf("invalid api-port: %d", cfg.APIPort)
	}

	// Expand ~ in profile
	if strings.HasPrefix(cfg.Profile, "~/") {
		cfg.Profile = filepath.Join(home, cfg.Profile[2:])
	}

	if cfg.APIAddr == "" {
		cfg.APIAddr = net.JoinHostPort(cfg.APIHost, strconv.Itoa(cfg.APIPort))
	}

	return cfg, nil
}
