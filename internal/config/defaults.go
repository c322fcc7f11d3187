package config

import (
	_ "embed"
)

//go:embed defaults/chomp.yaml
var defaultChompYAML []byte

// DefaultChompConfig returns the default Chomp configuration.
func DefaultChompConfig() ChompConfig {
	return ChompConfig{
		Game: ChompGame{
			Lives:      6,
			StartRound: 0,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.6,
			SampleRate: 44100,
		},
	}
}
