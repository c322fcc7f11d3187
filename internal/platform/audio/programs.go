package audio

import (
	"math"

	"github.com/gopxl/beep"

	"github.com/mkravets/chomp-arcade/internal/core"
)

// voiceState is one 60Hz step of a register program: the volume (0..15),
// the wavetable index, and the 20-bit frequency register of a single voice.
type voiceState struct {
	vol  int
	wave int
	freq uint32
}

// program evaluates the voice registers for a step. The second return is
// false once the program has finished; looping programs never finish.
type program func(step int) (voiceState, bool)

// programFor returns the register program for an effect, or nil for
// SoundNone and unknown effects.
func programFor(effect core.SoundEffect) program {
	switch effect {
	case core.SoundPrelude:
		return preludeProgram
	case core.SoundSiren:
		return sirenProgram
	case core.SoundFrightened:
		return frightenedProgram
	case core.SoundEatDotA:
		return eatDotAProgram
	case core.SoundEatDotB:
		return eatDotBProgram
	case core.SoundEatGhost:
		return eatGhostProgram
	case core.SoundEatFruit:
		return eatFruitProgram
	case core.SoundDeath:
		return deathProgram
	default:
		return nil
	}
}

// eatDotAProgram is the first half of the alternating munch: a short
// falling chirp.
func eatDotAProgram(step int) (voiceState, bool) {
	if step >= 5 {
		return voiceState{}, false
	}
	return voiceState{vol: 12, wave: 2, freq: 0x1500 - 0x300*uint32(step)}, true
}

// eatDotBProgram is the second half of the munch: the same chirp rising.
func eatDotBProgram(step int) (voiceState, bool) {
	if step >= 5 {
		return voiceState{}, false
	}
	return voiceState{vol: 12, wave: 2, freq: 0x0900 + 0x300*uint32(step)}, true
}

// sirenProgram is the looping background wail while ghosts roam. A full
// up-down sweep takes 24 steps.
func sirenProgram(step int) (voiceState, bool) {
	phase := uint32(step % 24)
	if phase >= 12 {
		phase = 24 - phase
	}
	return voiceState{vol: 6, wave: 6, freq: 0x0A00 + 0x200*phase}, true
}

// frightenedProgram is the looping gulping ramp heard while ghosts are blue:
// a rising run of eight steps that snaps back to the bottom.
func frightenedProgram(step int) (voiceState, bool) {
	return voiceState{vol: 10, wave: 4, freq: 0x0180 * uint32(1+step%8)}, true
}

// eatGhostProgram is the half-second rising glissando for a captured ghost.
func eatGhostProgram(step int) (voiceState, bool) {
	if step >= 32 {
		return voiceState{}, false
	}
	return voiceState{vol: 12, wave: 5, freq: 0x20 * uint32(step)}, true
}

// eatFruitProgram dips and recovers: down for eleven steps, back up for
// twelve.
func eatFruitProgram(step int) (voiceState, bool) {
	if step >= 23 {
		return voiceState{}, false
	}
	var freq uint32
	if step < 11 {
		freq = 0x1600 - 0x200*uint32(step)
	} else {
		freq = 0x0200 + 0x200*uint32(step-10)
	}
	return voiceState{vol: 15, wave: 6, freq: freq}, true
}

// deathProgram is the player death sound: four descending warbles followed
// by two low sputters.
func deathProgram(step int) (voiceState, bool) {
	if step >= 90 {
		return voiceState{}, false
	}
	if step >= 72 {
		// Sputters: two short low bursts with gaps.
		ph := (step - 72) % 9
		if ph >= 5 {
			return voiceState{vol: 0, wave: 2, freq: 0}, true
		}
		return voiceState{vol: 12, wave: 2, freq: 0x0400 + 0x100*uint32(ph)}, true
	}
	band := uint32(step / 18)
	ph := uint32(step % 18)
	return voiceState{vol: 12, wave: 2, freq: 0x1C00 - 0x200*band - 0x80*ph}, true
}

// preludeNotes is the intro melody, one entry per note. Each note is held
// for six steps followed by two steps of silence.
var preludeNotes = []uint32{
	0x1512, 0x2A25, 0x1F93, 0x1A8D, // B4  B5  F#5 D#5
	0x2A25, 0x1F93, 0x1A8D, 0x1512, // B5  F#5 D#5 B4
	0x1653, 0x2CA7, 0x2173, 0x1C21, // C5  C6  G5  E5
	0x2CA7, 0x2173, 0x1C21, 0x1653, // C6  G5  E5  C5
	0x1512, 0x2A25, 0x1F93, 0x1A8D, // B4  B5  F#5 D#5
	0x2A25, 0x1F93, 0x1A8D, 0x1512, // B5  F#5 D#5 B4
	0x1A8D, 0x1C21, 0x1DCD, 0x1F93, // closing chromatic run
	0x2173, 0x27C8, 0x2A25, 0x2A25,
}

const preludeNoteSteps = 8

// preludeProgram plays the round-start melody.
func preludeProgram(step int) (voiceState, bool) {
	note := step / preludeNoteSteps
	if note >= len(preludeNotes) {
		return voiceState{}, false
	}
	if step%preludeNoteSteps >= 6 {
		return voiceState{vol: 0, wave: 0, freq: 0}, true
	}
	return voiceState{vol: 13, wave: 0, freq: preludeNotes[note]}, true
}

// freqHz converts a 20-bit frequency register to Hertz. The register is a
// phase increment against a 96kHz accumulator clock.
func freqHz(reg uint32) float64 {
	return float64(reg) * 96000 / (1 << 20)
}

// waveSample evaluates one wavetable shape at a phase in [0, 1).
func waveSample(wave int, phase float64) float64 {
	switch wave {
	case 0, 1:
		return math.Sin(2 * math.Pi * phase)
	case 2, 3:
		// Triangle
		if phase < 0.5 {
			return 4*phase - 1
		}
		return 3 - 4*phase
	case 4:
		// Square
		if phase < 0.5 {
			return 1
		}
		return -1
	case 5:
		// Narrow pulse
		if phase < 0.25 {
			return 1
		}
		return -1
	default:
		// Saw
		return 2*phase - 1
	}
}

// programStreamer renders a register program to PCM. It re-evaluates the
// program at 60Hz and synthesizes the voice in between, so effect timing is
// independent of the output sample rate.
type programStreamer struct {
	prog        program
	rate        beep.SampleRate
	stepSamples int

	step      int
	remaining int
	cur       voiceState
	phase     float64
	done      bool
}

func newProgramStreamer(prog program, rate beep.SampleRate) *programStreamer {
	return &programStreamer{
		prog:        prog,
		rate:        rate,
		stepSamples: int(rate) / 60,
	}
}

func (p *programStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if p.remaining == 0 {
			state, more := p.prog(p.step)
			if !more {
				p.done = true
				return i, i > 0
			}
			p.cur = state
			p.step++
			p.remaining = p.stepSamples
		}

		var val float64
		if p.cur.vol > 0 && p.cur.freq > 0 {
			val = waveSample(p.cur.wave, p.phase) * float64(p.cur.vol) / 15
			p.phase += freqHz(p.cur.freq) / float64(p.rate)
			p.phase -= math.Floor(p.phase)
		}

		samples[i][0] = val
		samples[i][1] = val
		p.remaining--
	}
	return len(samples), true
}

func (p *programStreamer) Err() error { return nil }
