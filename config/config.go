package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"termpong/constants"
)

// Config holds user-tunable settings loaded from an optional YAML file
// Zero values fall back to defaults, so a partial file is fine
type Config struct {
	Audio    AudioConfig    `yaml:"audio"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Debug    DebugConfig    `yaml:"debug"`
}

// AudioConfig controls sound synthesis
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// GameplayConfig controls match behavior
type GameplayConfig struct {
	// LeftManual and RightManual start the paddles under key control
	// instead of the autopilot
	LeftManual  bool `yaml:"left_manual"`
	RightManual bool `yaml:"right_manual"`

	// PaddleStep is the cells moved per manual key press
	PaddleStep int `yaml:"paddle_step"`

	// SpeedScoreCap bounds the score contribution to the speed ramp
	SpeedScoreCap int `yaml:"speed_score_cap"`
}

// DebugConfig controls diagnostics
type DebugConfig struct {
	// LogFile receives structured debug logs; empty disables logging
	LogFile string `yaml:"log_file"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Audio: AudioConfig{
			Enabled: true,
			Volume:  1.0,
		},
		Gameplay: GameplayConfig{
			PaddleStep:    constants.PaddleStep,
			SpeedScoreCap: constants.SpeedRampScoreCap,
		},
	}
}

// Load reads configuration from a YAML file
// A missing file is not an error: defaults apply
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := cfg.decode(f); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// decode overlays YAML content onto the current values
func (c *Config) decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return err
	}
	return nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume %v out of range [0, 1]", c.Audio.Volume)
	}
	if c.Gameplay.PaddleStep < 1 || c.Gameplay.PaddleStep > 5 {
		return fmt.Errorf("gameplay.paddle_step %d out of range [1, 5]", c.Gameplay.PaddleStep)
	}
	if c.Gameplay.SpeedScoreCap < 0 {
		return fmt.Errorf("gameplay.speed_score_cap %d must not be negative", c.Gameplay.SpeedScoreCap)
	}
	return nil
}
