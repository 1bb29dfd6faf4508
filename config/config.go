// Package config loads bounce settings from defaults, an optional YAML file, and BOUNCE_ environment variables
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/bounce/audio"
	"github.com/lixenwraith/bounce/constants"
	"github.com/lixenwraith/bounce/effect"
	"github.com/lixenwraith/bounce/engine"
	"github.com/lixenwraith/bounce/input"
	"github.com/lixenwraith/bounce/overlay"
	"github.com/lixenwraith/bounce/particle"
	"github.com/lixenwraith/bounce/physics"
)

// EnvPrefix namespaces environment overrides, e.g. BOUNCE_SIM_SPEED
const EnvPrefix = "BOUNCE"

type Config struct {
	Sim     SimConfig     `mapstructure:"sim" yaml:"sim"`
	Logo    LogoConfig    `mapstructure:"logo" yaml:"logo"`
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
	Effect  EffectConfig  `mapstructure:"effect" yaml:"effect"`
	Keys    KeysConfig    `mapstructure:"keys" yaml:"keys"`
	Audio   AudioConfig   `mapstructure:"audio" yaml:"audio"`
	Logger  LoggerConfig  `mapstructure:"logger" yaml:"logger"`
}

type SimConfig struct {
	Speed           float64       `mapstructure:"speed" yaml:"speed"`
	FrameInterval   time.Duration `mapstructure:"frame_interval" yaml:"frame_interval"`
	CornerThreshold float64       `mapstructure:"corner_threshold" yaml:"corner_threshold"`
	ConeThreshold   float64       `mapstructure:"cone_threshold" yaml:"cone_threshold"`
	RayLength       float64       `mapstructure:"ray_length" yaml:"ray_length"`
	Debug           bool          `mapstructure:"debug" yaml:"debug"` // Start with the overlay on
}

type LogoConfig struct {
	Width       float64 `mapstructure:"width" yaml:"width"`
	AspectRatio float64 `mapstructure:"aspect_ratio" yaml:"aspect_ratio"`
}

// DisplayConfig maps terminal cells to virtual pixels
type DisplayConfig struct {
	CellWidth  float64 `mapstructure:"cell_width" yaml:"cell_width"`
	CellHeight float64 `mapstructure:"cell_height" yaml:"cell_height"`
}

type EffectConfig struct {
	CornerParticles int           `mapstructure:"corner_particles" yaml:"corner_particles"`
	CornerSpread    float64       `mapstructure:"corner_spread" yaml:"corner_spread"`
	ManualParticles int           `mapstructure:"manual_particles" yaml:"manual_particles"`
	ManualSpread    float64       `mapstructure:"manual_spread" yaml:"manual_spread"`
	Gravity         float64       `mapstructure:"gravity" yaml:"gravity"`
	Lifetime        time.Duration `mapstructure:"lifetime" yaml:"lifetime"`
	MaxParticles    int           `mapstructure:"max_particles" yaml:"max_particles"`
}

type KeysConfig struct {
	Debug string `mapstructure:"debug" yaml:"debug"`
	Burst string `mapstructure:"burst" yaml:"burst"`
}

type AudioConfig struct {
	Enabled  bool          `mapstructure:"enabled" yaml:"enabled"`
	Volume   float64       `mapstructure:"volume" yaml:"volume"`
	Cooldown time.Duration `mapstructure:"cooldown" yaml:"cooldown"`
}

// LoggerConfig controls the file logger, an empty File disables logging
type LoggerConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	File       string `mapstructure:"file" yaml:"file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"` // Megabytes
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"` // Days
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// SetDefaults registers every key so env overrides and Unmarshal see the full tree
func SetDefaults(v *viper.Viper) {
	// -- Sim --
	v.SetDefault("sim.speed", constants.DefaultSpeed)
	v.SetDefault("sim.frame_interval", constants.FrameUpdateInterval)
	v.SetDefault("sim.corner_threshold", constants.CornerThreshold)
	v.SetDefault("sim.cone_threshold", constants.ConeThreshold)
	v.SetDefault("sim.ray_length", constants.RayLength)
	v.SetDefault("sim.debug", false)

	// -- Logo --
	v.SetDefault("logo.width", constants.LogoWidth)
	v.SetDefault("logo.aspect_ratio", constants.LogoAspectRatio)

	// -- Display --
	v.SetDefault("display.cell_width", constants.DefaultCellWidth)
	v.SetDefault("display.cell_height", constants.DefaultCellHeight)

	// -- Effect --
	v.SetDefault("effect.corner_particles", constants.CornerParticleCount)
	v.SetDefault("effect.corner_spread", constants.CornerSpread)
	v.SetDefault("effect.manual_particles", constants.ManualParticleCount)
	v.SetDefault("effect.manual_spread", constants.ManualSpread)
	v.SetDefault("effect.gravity", constants.ParticleGravity)
	v.SetDefault("effect.lifetime", constants.ParticleLifetime)
	v.SetDefault("effect.max_particles", constants.MaxParticles)

	// -- Keys --
	v.SetDefault("keys.debug", string(constants.KeyToggleDebug))
	v.SetDefault("keys.burst", string(constants.KeyBurst))

	// -- Audio --
	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.5)
	v.SetDefault("audio.cooldown", constants.ChimeCooldown)

	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)
}

// NewDefaultConfig returns the configuration with no file or environment applied
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := NewConfigFromViper(v)
	if err != nil {
		// Defaults are constants, failing here is a programming error
		panic(fmt.Sprintf("default config invalid: %v", err))
	}
	return cfg
}

// Load reads path if given, else ./bounce.yaml when present, and applies BOUNCE_ env overrides
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("bounce")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No file, defaults and env only
	}
	return NewConfigFromViper(v)
}

// NewConfigFromViper unmarshals and validates
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for sane values
func (c *Config) Validate() error {
	if c.Sim.Speed <= 0 {
		return fmt.Errorf("sim.speed must be positive")
	}
	if c.Sim.FrameInterval <= 0 {
		return fmt.Errorf("sim.frame_interval must be positive")
	}
	if c.Sim.CornerThreshold < 0 {
		return fmt.Errorf("sim.corner_threshold must not be negative")
	}
	if c.Sim.ConeThreshold <= 0 || c.Sim.ConeThreshold > 180 {
		return fmt.Errorf("sim.cone_threshold must be in (0, 180] degrees")
	}
	if c.Sim.RayLength < 0 {
		return fmt.Errorf("sim.ray_length must not be negative")
	}
	if c.Logo.Width <= 0 {
		return fmt.Errorf("logo.width must be positive")
	}
	if c.Logo.AspectRatio <= 0 {
		return fmt.Errorf("logo.aspect_ratio must be positive")
	}
	if c.Display.CellWidth <= 0 || c.Display.CellHeight <= 0 {
		return fmt.Errorf("display.cell_width and display.cell_height must be positive")
	}
	if c.Effect.CornerParticles < 0 || c.Effect.ManualParticles < 0 {
		return fmt.Errorf("effect particle counts must not be negative")
	}
	if c.Effect.MaxParticles <= 0 {
		return fmt.Errorf("effect.max_particles must be positive")
	}
	if c.Effect.Lifetime <= 0 {
		return fmt.Errorf("effect.lifetime must be positive")
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be in [0, 1]")
	}
	if _, err := input.NewKeymap(c.Keys.Debug, c.Keys.Burst); err != nil {
		return fmt.Errorf("keys: %w", err)
	}
	return nil
}

// EngineParams converts to scene tuning
func (c *Config) EngineParams() engine.Params {
	return engine.Params{
		Speed:           c.Sim.Speed,
		CornerThreshold: c.Sim.CornerThreshold,
		Overlay:         overlay.Params{ConeDeg: c.Sim.ConeThreshold, RayLength: c.Sim.RayLength},
		CornerBurst:     effect.Shape{ParticleCount: c.Effect.CornerParticles, Spread: c.Effect.CornerSpread},
		ManualBurst:     effect.Shape{ParticleCount: c.Effect.ManualParticles, Spread: c.Effect.ManualSpread},
		Extent:          physics.ExtentFromAspect(c.Logo.Width, c.Logo.AspectRatio),
		CellWidth:       c.Display.CellWidth,
		CellHeight:      c.Display.CellHeight,
		FrameInterval:   c.Sim.FrameInterval,
	}
}

// ParticleConfig converts to confetti tuning, seed is left to the caller
func (c *Config) ParticleConfig() particle.Config {
	p := particle.DefaultConfig()
	p.Gravity = c.Effect.Gravity
	p.Lifetime = c.Effect.Lifetime
	p.Max = c.Effect.MaxParticles
	return p
}

func (c *Config) AudioConfig() audio.Config {
	return audio.Config{
		Enabled:  c.Audio.Enabled,
		Volume:   c.Audio.Volume,
		Cooldown: c.Audio.Cooldown,
	}
}

// Keymap returns the validated key bindings
func (c *Config) Keymap() (input.Keymap, error) {
	return input.NewKeymap(c.Keys.Debug, c.Keys.Burst)
}
