package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds the settings of a shell session
type Config struct {
	// Color renders ANSI colors on interactive output
	Color bool `mapstructure:"color"`
	// Width is used when the size of the terminal is unknown
	Width int `mapstructure:"width"`
	// Prompt is shown before every interactive command, {resource} is
	// replaced with the name of the current resource
	Prompt string `mapstructure:"prompt"`

	Piped Piped `mapstructure:"piped"`
	Ls    Ls    `mapstructure:"ls"`
	Log   Log   `mapstructure:"log"`
}

// Piped controls column output consumed by another program
type Piped struct {
	Width   int `mapstructure:"width"`
	Columns int `mapstructure:"columns"`
}

// Ls controls interactive column output
type Ls struct {
	// Limit is the maximum number of entries printed, zero for no limit
	Limit    int  `mapstructure:"limit"`
	Truncate bool `mapstructure:"truncate"`
}

type Log struct {
	Level string `mapstructure:"level"`
}

// EnvPrefix prefixes the environment variables that override settings,
// ex: JAVASH_PIPED_WIDTH
const EnvPrefix = "JAVASH"

func setDefaults(v *viper.Viper) {
	cfg := Default()
	v.SetDefault("color", cfg.Color)
	v.SetDefault("width", cfg.Width)
	v.SetDefault("prompt", cfg.Prompt)
	v.SetDefault("piped.width", cfg.Piped.Width)
	v.SetDefault("piped.columns", cfg.Piped.Columns)
	v.SetDefault("ls.limit", cfg.Ls.Limit)
	v.SetDefault("ls.truncate", cfg.Ls.Truncate)
	v.SetDefault("log.level", cfg.Log.Level)
}

// Default returns the settings used when nothing is configured
func Default() Config {
	return Config{
		Color:  true,
		Width:  80,
		Prompt: "[{resource}]$ ",
		Piped:  Piped{Width: 120, Columns: 1},
		Ls:     Ls{Limit: 0, Truncate: true},
		Log:    Log{Level: "warn"},
	}
}

func decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// Load reads the given config files, later files taking priority over earlier
// ones, then applies any environment overrides. Without files, a config.yaml
// in the working directory or in $HOME/.javash is used if present
func Load(files []string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if len(files) > 0 {
		v.SetConfigFile(files[0])
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", files[0], err)
		}
		for _, file := range files[1:] {
			data, err := os.ReadFile(file)
			if err != nil {
				return Config{}, fmt.Errorf("reading config %s: %w", file, err)
			}
			// Every file is decoded in the format of its own extension
			v.SetConfigType(strings.TrimPrefix(filepath.Ext(file), "."))
			if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
				return Config{}, fmt.Errorf("merging config %s: %w", file, err)
			}
			log.WithFields(log.Fields{"file": file}).Debug("Merged config file")
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home + "/.javash")
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	if used := v.ConfigFileUsed(); used != "" {
		log.WithFields(log.Fields{"config": used}).Debug("Using config file")
	}

	return decode(v)
}
