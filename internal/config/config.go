// Package config provides YAML-based game configuration loading for the
// arcade platform.
package config

import "fmt"

// ChompConfig contains all configuration for the Chomp game.
type ChompConfig struct {
	Game  ChompGame   `yaml:"game"`
	Audio AudioConfig `yaml:"audio"`
}

// ChompGame defines gameplay parameters.
type ChompGame struct {
	Lives      int `yaml:"lives"`       // starting life count
	StartRound int `yaml:"start_round"` // 0-based round the game starts at
}

// AudioConfig defines the sound engine parameters.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`      // 0.0 silent .. 1.0 full
	SampleRate int     `yaml:"sample_rate"` // output sample rate in Hz
}

// Validate checks the configuration for values the game cannot run with.
func (c ChompConfig) Validate() error {
	if c.Game.Lives < 1 {
		return fmt.Errorf("game.lives must be at least 1, got %d", c.Game.Lives)
	}
	if c.Game.StartRound < 0 {
		return fmt.Errorf("game.start_round must not be negative, got %d", c.Game.StartRound)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be between 0 and 1, got %g", c.Audio.Volume)
	}
	if c.Audio.SampleRate < 8000 {
		return fmt.Errorf("audio.sample_rate must be at least 8000, got %d", c.Audio.SampleRate)
	}
	return nil
}
