package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadChompEmbeddedDefault(t *testing.T) {
	cfg, err := LoadChomp("")
	if err != nil {
		t.Fatalf("LoadChomp with no path failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded default is invalid: %v", err)
	}
	if cfg.Game.Lives != 6 {
		t.Errorf("default lives = %d, expected 6", cfg.Game.Lives)
	}
	if cfg.Game.StartRound != 0 {
		t.Errorf("default start round = %d, expected 0", cfg.Game.StartRound)
	}
	if !cfg.Audio.Enabled {
		t.Error("audio disabled by default, expected enabled")
	}
}

func TestLoadChompCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chomp.yaml")
	data := []byte("game:\n  lives: 3\n  start_round: 5\naudio:\n  enabled: false\n  volume: 0.2\n  sample_rate: 22050\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadChomp(path)
	if err != nil {
		t.Fatalf("LoadChomp(%s) failed: %v", path, err)
	}
	if cfg.Game.Lives != 3 || cfg.Game.StartRound != 5 {
		t.Errorf("game config = %+v, expected lives 3 start_round 5", cfg.Game)
	}
	if cfg.Audio.Enabled || cfg.Audio.Volume != 0.2 || cfg.Audio.SampleRate != 22050 {
		t.Errorf("audio config = %+v, expected disabled/0.2/22050", cfg.Audio)
	}
}

func TestLoadChompMissingCustomPathFails(t *testing.T) {
	if _, err := LoadChomp(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing explicit config path")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ChompConfig)
		wantErr bool
	}{
		{"default is valid", func(c *ChompConfig) {}, false},
		{"zero lives", func(c *ChompConfig) { c.Game.Lives = 0 }, true},
		{"negative round", func(c *ChompConfig) { c.Game.StartRound = -1 }, true},
		{"volume above one", func(c *ChompConfig) { c.Audio.Volume = 1.5 }, true},
		{"tiny sample rate", func(c *ChompConfig) { c.Audio.SampleRate = 300 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultChompConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
