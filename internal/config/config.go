// Package config loads runtime settings from defaults, an optional YAML
// file and B64CONV_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "B64CONV"
	ConfigName = "base64-converter"
)

type Config struct {
	Window    WindowConfig    `mapstructure:"window"`
	Log       LogConfig       `mapstructure:"log"`
	Clipboard ClipboardConfig `mapstructure:"clipboard"`
	Display   DisplayConfig   `mapstructure:"display"`
	Convert   ConvertConfig   `mapstructure:"convert"`
	Save      SaveConfig      `mapstructure:"save"`
}

type WindowConfig struct {
	Width  float32 `mapstructure:"width"`
	Height float32 `mapstructure:"height"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ClipboardConfig struct {
	// Backend is "app" for the toolkit clipboard or "system" for the
	// OS clipboard utilities.
	Backend string `mapstructure:"backend"`
}

type DisplayConfig struct {
	// MaxChars caps the preview length; zero shows everything.
	MaxChars int `mapstructure:"max_chars"`
}

type ConvertConfig struct {
	MaxSize int64         `mapstructure:"max_size"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type SaveConfig struct {
	Extension string `mapstructure:"extension"`
}

// SetDefaults registers every known key so env overrides work without a file.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 760)
	v.SetDefault("window.height", 560)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("clipboard.backend", "app")
	v.SetDefault("display.max_chars", 0)
	v.SetDefault("convert.max_size", 0)
	v.SetDefault("convert.timeout", 30*time.Second)
	v.SetDefault("save.extension", ".txt")
}

// New returns a viper instance with defaults and env binding applied.
// cfgFile overrides the search path when non-empty.
func New(cfgFile string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", ConfigName))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file if present and decodes the result. A missing
// file is not an error unless it was named explicitly.
func Load(v *viper.Viper) (*Config, error) {
	explicit := v.ConfigFileUsed() != ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %vx%v", c.Window.Width, c.Window.Height)
	}
	switch c.Clipboard.Backend {
	case "app", "system":
	default:
		return fmt.Errorf("unknown clipboard backend %q", c.Clipboard.Backend)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	if c.Display.MaxChars < 0 {
		return fmt.Errorf("display.max_chars must not be negative")
	}
	if c.Convert.MaxSize < 0 {
		return fmt.Errorf("convert.max_size must not be negative")
	}
	if c.Save.Extension != "" && !strings.HasPrefix(c.Save.Extension, ".") {
		c.Save.Extension = "." + c.Save.Extension
	}
	return nil
}
