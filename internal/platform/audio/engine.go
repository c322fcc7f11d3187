// Package audio plays the procedural sound effects games emit, using the
// beep library for mixing and output. Effects are synthesized rather than
// sampled: each one is a small register program evaluated at 60 steps per
// second, mirroring how the original arcade sound hardware was driven.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/mkravets/chomp-arcade/internal/config"
	"github.com/mkravets/chomp-arcade/internal/core"
)

// Engine owns the speaker and one playback slot per game voice channel.
// Starting an effect in a slot replaces whatever the slot was playing.
type Engine struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	slots       [core.NumSoundSlots]*beep.Ctrl
	rate        beep.SampleRate
	volume      float64
	initialized bool
}

// NewEngine initializes the speaker and returns a ready engine.
// If audio is disabled in the config, the returned engine is inert and all
// calls on it are no-ops.
func NewEngine(cfg config.AudioConfig) (*Engine, error) {
	e := &Engine{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(cfg.SampleRate),
		volume: cfg.Volume,
	}

	if !cfg.Enabled || cfg.Volume <= 0 {
		return e, nil
	}

	if err := speaker.Init(e.rate, e.rate.N(time.Millisecond*100)); err != nil {
		return nil, err
	}

	speaker.Play(e.mixer)
	e.initialized = true
	return e, nil
}

// Handle applies a batch of sound events emitted by a game step.
func (e *Engine) Handle(events []core.SoundEvent) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	for _, ev := range events {
		switch ev.Op {
		case core.SoundOpStart:
			e.startLocked(ev.Slot, ev.Effect)
		case core.SoundOpClearAll:
			e.clearAllLocked()
		}
	}
}

// startLocked replaces the slot's streamer with a fresh program.
// Caller holds both the engine and speaker locks.
func (e *Engine) startLocked(slot int, effect core.SoundEffect) {
	if slot < 0 || slot >= core.NumSoundSlots {
		return
	}

	if ctrl := e.slots[slot]; ctrl != nil {
		ctrl.Paused = true
		e.slots[slot] = nil
	}

	prog := programFor(effect)
	if prog == nil {
		return
	}

	var streamer beep.Streamer = newProgramStreamer(prog, e.rate)
	streamer = &effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   math.Log2(e.volume),
	}

	ctrl := &beep.Ctrl{Streamer: streamer}
	e.slots[slot] = ctrl
	e.mixer.Add(ctrl)
}

// clearAllLocked silences every slot immediately.
func (e *Engine) clearAllLocked() {
	for i, ctrl := range e.slots {
		if ctrl != nil {
			ctrl.Paused = true
			e.slots[i] = nil
		}
	}
	e.mixer.Clear()
}

// Close stops all playback. The speaker itself stays open; beep does not
// expose a way to close it, but an empty mixer produces silence.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	speaker.Lock()
	e.clearAllLocked()
	speaker.Unlock()
	e.initialized = false
}
