package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"

	"github.com/mkravets/chomp-arcade/internal/core"
)

func TestProgramForCoversAllEffects(t *testing.T) {
	effects := []core.SoundEffect{
		core.SoundPrelude,
		core.SoundSiren,
		core.SoundFrightened,
		core.SoundEatDotA,
		core.SoundEatDotB,
		core.SoundEatGhost,
		core.SoundEatFruit,
		core.SoundDeath,
	}
	for _, e := range effects {
		if programFor(e) == nil {
			t.Errorf("programFor(%v) = nil", e)
		}
	}
	if programFor(core.SoundNone) != nil {
		t.Error("programFor(SoundNone) should be nil")
	}
}

func TestEatDotProgramsEndAfterFiveSteps(t *testing.T) {
	for name, prog := range map[string]program{"A": eatDotAProgram, "B": eatDotBProgram} {
		for step := 0; step < 5; step++ {
			if _, ok := prog(step); !ok {
				t.Errorf("munch %s: ended early at step %d", name, step)
			}
		}
		if _, ok := prog(5); ok {
			t.Errorf("munch %s: still running at step 5", name)
		}
	}
}

func TestEatDotChirpsMirrorEachOther(t *testing.T) {
	a0, _ := eatDotAProgram(0)
	a4, _ := eatDotAProgram(4)
	b0, _ := eatDotBProgram(0)
	b4, _ := eatDotBProgram(4)

	if a0.freq <= a4.freq {
		t.Errorf("munch A should fall: step0=%#x step4=%#x", a0.freq, a4.freq)
	}
	if b0.freq >= b4.freq {
		t.Errorf("munch B should rise: step0=%#x step4=%#x", b0.freq, b4.freq)
	}
}

func TestSirenLoopsAndSweeps(t *testing.T) {
	// Never finishes.
	if _, ok := sirenProgram(100000); !ok {
		t.Fatal("siren should loop forever")
	}

	// One full sweep period: rises for 12 steps, falls for 12, repeats.
	bottom, _ := sirenProgram(0)
	top, _ := sirenProgram(12)
	again, _ := sirenProgram(24)

	if top.freq <= bottom.freq {
		t.Errorf("siren peak %#x not above trough %#x", top.freq, bottom.freq)
	}
	if again.freq != bottom.freq {
		t.Errorf("siren not periodic: step24=%#x step0=%#x", again.freq, bottom.freq)
	}
}

func TestFrightenedRampResetsEveryEightSteps(t *testing.T) {
	first, _ := frightenedProgram(0)
	last, _ := frightenedProgram(7)
	wrapped, _ := frightenedProgram(8)

	if last.freq <= first.freq {
		t.Errorf("ramp should rise within a period: %#x -> %#x", first.freq, last.freq)
	}
	if wrapped.freq != first.freq {
		t.Errorf("ramp should reset: step8=%#x step0=%#x", wrapped.freq, first.freq)
	}
}

func TestEatFruitDipsThenRecovers(t *testing.T) {
	start, _ := eatFruitProgram(0)
	trough, _ := eatFruitProgram(10)
	end, _ := eatFruitProgram(22)

	if trough.freq >= start.freq {
		t.Errorf("should dip by step 10: start=%#x trough=%#x", start.freq, trough.freq)
	}
	if end.freq <= trough.freq {
		t.Errorf("should recover after the dip: trough=%#x end=%#x", trough.freq, end.freq)
	}
	if _, ok := eatFruitProgram(23); ok {
		t.Error("should end at step 23")
	}
}

func TestDeathProgramEnds(t *testing.T) {
	if _, ok := deathProgram(89); !ok {
		t.Error("should still run at step 89")
	}
	if _, ok := deathProgram(90); ok {
		t.Error("should end at step 90")
	}
}

func TestPreludeHasNoteGaps(t *testing.T) {
	// Each note is 6 steps of tone followed by 2 steps of silence.
	tone, _ := preludeProgram(0)
	gap, _ := preludeProgram(6)

	if tone.vol == 0 {
		t.Error("note should be audible")
	}
	if gap.vol != 0 {
		t.Error("gap between notes should be silent")
	}

	total := len(preludeNotes) * preludeNoteSteps
	if _, ok := preludeProgram(total - 1); !ok {
		t.Error("ended before last note")
	}
	if _, ok := preludeProgram(total); ok {
		t.Error("should end after last note")
	}
}

func TestFreqHzConversion(t *testing.T) {
	// The register is a phase increment against a 96kHz clock, so the
	// full 20-bit range maps to 96kHz.
	if got := freqHz(1 << 20); got != 96000 {
		t.Errorf("freqHz(1<<20) = %v, want 96000", got)
	}

	// A4 register computed the other way round.
	reg := uint32(math.Round(440 * (1 << 20) / 96000))
	if got := freqHz(reg); math.Abs(got-440) > 0.1 {
		t.Errorf("freqHz(%#x) = %v, want ~440", reg, got)
	}
}

func TestProgramStreamerStepTiming(t *testing.T) {
	rate := beep.SampleRate(48000)
	s := newProgramStreamer(eatDotAProgram, rate)

	// 5 steps at 800 samples each.
	want := 5 * int(rate) / 60
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
	if err := s.Err(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestProgramStreamerSilenceIsZero(t *testing.T) {
	rate := beep.SampleRate(48000)
	// Death program's sputter gaps have zero volume.
	s := newProgramStreamer(func(step int) (voiceState, bool) {
		if step >= 2 {
			return voiceState{}, false
		}
		return voiceState{vol: 0, wave: 0, freq: 0}, true
	}, rate)

	buf := make([][2]float64, 256)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 || buf[i][1] != 0 {
			t.Fatalf("sample %d not silent: %v", i, buf[i])
		}
	}
}
