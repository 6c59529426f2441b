// Package config loads viewer settings from defaults, an optional YAML file,
// SPHERETRACE_* environment variables and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"spheretrace/internal/logging"
	"spheretrace/internal/tracer"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. SPHERETRACE_WINDOW_SCALE.
const EnvPrefix = "SPHERETRACE"

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Image  ImageConfig  `mapstructure:"image"`
	Camera CameraConfig `mapstructure:"camera"`
	Render RenderConfig `mapstructure:"render"`
	Input  InputConfig  `mapstructure:"input"`
	Window WindowConfig `mapstructure:"window"`
	Log    LogConfig    `mapstructure:"log"`
}

type ImageConfig struct {
	Width       int     `mapstructure:"width"`
	AspectRatio float32 `mapstructure:"aspect_ratio"`
}

type CameraConfig struct {
	ViewportHeight float32 `mapstructure:"viewport_height"`
	FocalLength    float32 `mapstructure:"focal_length"`
	// RowAnchor < 0 selects image height - 1.
	RowAnchor    int  `mapstructure:"row_anchor"`
	FollowOrigin bool `mapstructure:"follow_origin"`
}

type RenderConfig struct {
	Parallel bool `mapstructure:"parallel"`
	Workers  int  `mapstructure:"workers"`
}

type InputConfig struct {
	Step float32 `mapstructure:"step"`
}

type WindowConfig struct {
	Scale int  `mapstructure:"scale"`
	TPS   int  `mapstructure:"tps"`
	HUD   bool `mapstructure:"hud"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// SetDefaults registers every key with its default value.
func SetDefaults(v *viper.Viper) {
	def := tracer.DefaultOptions()
	v.SetDefault("image.width", def.ImageWidth)
	v.SetDefault("image.aspect_ratio", def.AspectRatio)
	v.SetDefault("camera.viewport_height", def.ViewportHeight)
	v.SetDefault("camera.focal_length", def.FocalLength)
	v.SetDefault("camera.row_anchor", def.RowAnchor)
	v.SetDefault("camera.follow_origin", false)
	v.SetDefault("render.parallel", false)
	v.SetDefault("render.workers", 0)
	v.SetDefault("input.step", 0.01)
	v.SetDefault("window.scale", 2)
	v.SetDefault("window.tps", 60)
	v.SetDefault("window.hud", true)
	v.SetDefault("log.level", "info")
}

// New returns a viper instance with defaults and environment overrides.
//
// If file is set it must exist. Otherwise spheretrace.yaml is looked up in the
// working directory and in $HOME/.spheretrace; a missing file is not an error.
func New(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
		return v, nil
	}

	v.SetConfigName("spheretrace")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".spheretrace"))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

// Load decodes and validates the settings held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Image.Width < 2:
		return fmt.Errorf("%w: image.width %d < 2", ErrInvalid, c.Image.Width)
	case !(c.Image.AspectRatio > 0):
		return fmt.Errorf("%w: image.aspect_ratio must be positive", ErrInvalid)
	case int(float32(c.Image.Width)/c.Image.AspectRatio) < 2:
		return fmt.Errorf("%w: image height below 2 pixels", ErrInvalid)
	case !(c.Camera.ViewportHeight > 0):
		return fmt.Errorf("%w: camera.viewport_height must be positive", ErrInvalid)
	case !(c.Camera.FocalLength > 0):
		return fmt.Errorf("%w: camera.focal_length must be positive", ErrInvalid)
	case c.Camera.RowAnchor == 0:
		return fmt.Errorf("%w: camera.row_anchor 0 is reserved, use a negative value for height-1", ErrInvalid)
	case c.Render.Workers < 0:
		return fmt.Errorf("%w: render.workers %d < 0", ErrInvalid, c.Render.Workers)
	case !(c.Input.Step > 0):
		return fmt.Errorf("%w: input.step must be positive", ErrInvalid)
	case c.Window.Scale < 1:
		return fmt.Errorf("%w: window.scale %d < 1", ErrInvalid, c.Window.Scale)
	case c.Window.TPS < 1:
		return fmt.Errorf("%w: window.tps %d < 1", ErrInvalid, c.Window.TPS)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	return nil
}

// TracerOptions converts the image and camera sections into camera options.
func (c Config) TracerOptions() tracer.Options {
	return tracer.Options{
		AspectRatio:    c.Image.AspectRatio,
		ImageWidth:     c.Image.Width,
		ViewportHeight: c.Camera.ViewportHeight,
		FocalLength:    c.Camera.FocalLength,
		RowAnchor:      c.Camera.RowAnchor,
		FollowOrigin:   c.Camera.FollowOrigin,
	}
}
