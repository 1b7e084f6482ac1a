// Package config loads the runtime settings from configs/config.yml with
// HEATGAME_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	envPrefix  = "HEATGAME"
	configName = "config"
	configDir  = "configs"

	keyPort          = "port"
	keyLogLevel      = "log_level"
	keyDBPath        = "db.path"
	keyFrameInterval = "sim.frame_interval"
	keyWSInterval    = "ws.interval"
	keyPassHash      = "auth.passphrase_hash"
	keySigningKey    = "auth.signing_key"
	keyTokenTTL      = "auth.token_ttl"
)

// Defaults applied before the file and the environment are read.
const (
	DefaultPort          = "8080"
	DefaultLogLevel      = "info"
	DefaultDBPath        = ":memory:"
	DefaultFrameInterval = 16 * time.Millisecond
	DefaultWSInterval    = 50 * time.Millisecond
	DefaultTokenTTL      = time.Hour
)

var (
	errBadFrameInterval = errors.New("sim.frame_interval must be positive")
	errBadWSInterval    = errors.New("ws.interval must not be negative")
	errBadTokenTTL      = errors.New("auth.token_ttl must be positive")
	errNoSigningKey     = errors.New("auth.signing_key is required when auth.passphrase_hash is set")
)

type Config struct {
	Port     string     `mapstructure:"port"`
	LogLevel string     `mapstructure:"log_level"`
	DB       DBConfig   `mapstructure:"db"`
	Sim      SimConfig  `mapstructure:"sim"`
	WS       WSConfig   `mapstructure:"ws"`
	Auth     AuthConfig `mapstructure:"auth"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type SimConfig struct {
	FrameInterval time.Duration `mapstructure:"frame_interval"`
}

// WSConfig holds the default push interval of the snapshot stream.
// Clients may ask for a different one per connection.
type WSConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

// AuthConfig: an empty PassphraseHash leaves the intent endpoints open.
type AuthConfig struct {
	PassphraseHash string        `mapstructure:"passphrase_hash"`
	SigningKey     string        `mapstructure:"signing_key"`
	TokenTTL       time.Duration `mapstructure:"token_ttl"`
}

// Load reads settings into v. file overrides the default lookup of
// configs/config.yml; a missing default file is not an error, a missing
// explicit file is.
func Load(v *viper.Viper, file string) (Config, error) {
	if v == nil {
		v = viper.New()
	}
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(configDir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyPort, DefaultPort)
	v.SetDefault(keyLogLevel, DefaultLogLevel)
	v.SetDefault(keyDBPath, DefaultDBPath)
	v.SetDefault(keyFrameInterval, DefaultFrameInterval)
	v.SetDefault(keyWSInterval, DefaultWSInterval)
	v.SetDefault(keyPassHash, "")
	v.SetDefault(keySigningKey, "")
	v.SetDefault(keyTokenTTL, DefaultTokenTTL)
}

// Validate rejects settings the services cannot run with.
func (c Config) Validate() error {
	if c.Sim.FrameInterval <= 0 {
		return errBadFrameInterval
	}
	if c.WS.Interval < 0 {
		return errBadWSInterval
	}
	if c.Auth.TokenTTL <= 0 {
		return errBadTokenTTL
	}
	if strings.TrimSpace(c.Auth.PassphraseHash) != "" && c.Auth.SigningKey == "" {
		return errNoSigningKey
	}
	return nil
}

// tomlView is the printable form of Config. Durations are spelled the way
// they are written in config.yml, and the signing key is masked.
type tomlView struct {
	Port     string `toml:"port"`
	LogLevel string `toml:"log_level"`
	DB       struct {
		Path string `toml:"path"`
	} `toml:"db"`
	Sim struct {
		FrameInterval string `toml:"frame_interval"`
	} `toml:"sim"`
	WS struct {
		Interval string `toml:"interval"`
	} `toml:"ws"`
	Auth struct {
		Enabled        bool   `toml:"enabled"`
		PassphraseHash string `toml:"passphrase_hash"`
		SigningKey     string `toml:"signing_key"`
		TokenTTL       string `toml:"token_ttl"`
	} `toml:"auth"`
}

const maskedSecret = "********"

// TOML renders the effective configuration.
func (c Config) TOML() ([]byte, error) {
	var view tomlView
	view.Port = c.Port
	view.LogLevel = c.LogLevel
	view.DB.Path = c.DB.Path
	view.Sim.FrameInterval = c.Sim.FrameInterval.String()
	view.WS.Interval = c.WS.Interval.String()
	view.Auth.Enabled = strings.TrimSpace(c.Auth.PassphraseHash) != ""
	view.Auth.PassphraseHash = c.Auth.PassphraseHash
	if c.Auth.SigningKey != "" {
		view.Auth.SigningKey = maskedSecret
	}
	view.Auth.TokenTTL = c.Auth.TokenTTL.String()

	out, err := toml.Marshal(view)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return out, nil
}
