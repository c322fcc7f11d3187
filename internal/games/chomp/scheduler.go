package chomp

import "time"

// Tick pacing constants. A logic tick is 1/60s; the tolerance forgives
// tiny frame jitter, and the frame clamp keeps a single long frame (a
// debugger pause, a suspended terminal) from producing a runaway
// catch-up burst.
const (
	TickDuration  = 16_666_666 * time.Nanosecond
	tickTolerance = 1_000_000 * time.Nanosecond
	maxFrameTime  = 33_333_333 * time.Nanosecond
)

// Scheduler converts variable wall-clock frame durations into a fixed
// number of logic ticks with drift correction. It accumulates elapsed
// time and drains it in tick-sized quanta, so a rendered frame can carry
// zero, one or several simulation steps.
type Scheduler struct {
	accum time.Duration
}

// Advance adds one frame's elapsed wall-clock time and returns how many
// logic ticks to run. Negative elapsed values count as zero.
func (s *Scheduler) Advance(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > maxFrameTime {
		elapsed = maxFrameTime
	}
	s.accum += elapsed

	ticks := 0
	for s.accum > -tickTolerance {
		s.accum -= TickDuration
		ticks++
	}
	return ticks
}
