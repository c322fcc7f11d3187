package core

// SoundEffect identifies one of the closed set of sound programs a game can
// start. The audio platform maps each effect to a procedural synthesizer
// program; games only name the effect and the slot it plays in.
type SoundEffect uint8

const (
	SoundNone SoundEffect = iota
	SoundPrelude
	SoundSiren
	SoundFrightened
	SoundEatDotA
	SoundEatDotB
	SoundEatGhost
	SoundEatFruit
	SoundDeath
)

// String returns a human-readable name for the effect.
func (e SoundEffect) String() string {
	switch e {
	case SoundNone:
		return "None"
	case SoundPrelude:
		return "Prelude"
	case SoundSiren:
		return "Siren"
	case SoundFrightened:
		return "Frightened"
	case SoundEatDotA:
		return "EatDotA"
	case SoundEatDotB:
		return "EatDotB"
	case SoundEatGhost:
		return "EatGhost"
	case SoundEatFruit:
		return "EatFruit"
	case SoundDeath:
		return "Death"
	default:
		return "Unknown"
	}
}

// SoundOp is the operation carried by a SoundEvent.
type SoundOp uint8

const (
	// SoundOpStart starts an effect in a slot, replacing whatever the slot
	// was playing.
	SoundOpStart SoundOp = iota
	// SoundOpClearAll stops all slots immediately. Slot and Effect are
	// ignored.
	SoundOpClearAll
)

// NumSoundSlots is the number of independent playback slots. Slots mirror
// the three hardware voice channels of the original arcade sound unit:
// slot 0 music, slot 1 looping ambience, slot 2 one-shot cues.
const NumSoundSlots = 3

// SoundEvent is a single audio command emitted by a game during Step.
// The platform's audio engine consumes events asynchronously; the game has
// no further interaction with a sound once started.
type SoundEvent struct {
	Op     SoundOp
	Slot   int
	Effect SoundEffect
}

// StartSound builds a start event for the given slot and effect.
func StartSound(slot int, effect SoundEffect) SoundEvent {
	return SoundEvent{Op: SoundOpStart, Slot: slot, Effect: effect}
}

// ClearSounds builds an event that silences every slot.
func ClearSounds() SoundEvent {
	return SoundEvent{Op: SoundOpClearAll}
}
