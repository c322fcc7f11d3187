package chomp

import "github.com/mkravets/chomp-arcade/internal/core"

// Sound events are buffered during a tick and handed to the platform in
// the StepResult. The core never touches audio hardware; once an effect
// is started it has no further interaction with it.

func (g *Game) startSound(slot int, effect core.SoundEffect) {
	g.pendingSounds = append(g.pendingSounds, core.StartSound(slot, effect))
}

func (g *Game) clearAllSounds() {
	g.pendingSounds = append(g.pendingSounds, core.ClearSounds())
}

// drainSounds returns the tick's buffered events and resets the buffer.
func (g *Game) drainSounds() []core.SoundEvent {
	if len(g.pendingSounds) == 0 {
		return nil
	}
	out := g.pendingSounds
	g.pendingSounds = nil
	return out
}
