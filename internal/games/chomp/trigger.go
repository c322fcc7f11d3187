package chomp

// disabledTicks is the sentinel tick value of a trigger that never fires.
const disabledTicks = 0xFFFFFFFF

// Clock is a monotonic tick counter owned by one Game instance. All trigger
// arithmetic is relative to it, so independent simulations never interfere.
type Clock struct {
	tick uint32
}

// Advance increments the tick counter by one.
func (c *Clock) Advance() {
	c.tick++
}

// Ticks returns the current tick value.
func (c Clock) Ticks() uint32 {
	return c.tick
}

// Trigger is a deferred one-shot event: a single future tick value, or the
// disabled sentinel. A trigger fires on exactly one tick and is never
// mutated by firing, so "fired this tick" is a point predicate and "ticks
// since fired" remains queryable forever after. Re-arming replaces the
// stored value silently.
type Trigger struct {
	tick uint32
}

// NewTrigger returns a disabled trigger.
func NewTrigger() Trigger {
	return Trigger{tick: disabledTicks}
}

// Start arms the trigger to fire on the next tick.
func (t *Trigger) Start(c Clock) {
	t.tick = c.tick + 1
}

// StartAfter arms the trigger to fire n ticks from now. n=0 fires on the
// current tick's remaining evaluations.
func (t *Trigger) StartAfter(c Clock, n uint32) {
	t.tick = c.tick + n
}

// Disable sets the sentinel; the trigger never fires and all derived
// queries report not-fired.
func (t *Trigger) Disable() {
	t.tick = disabledTicks
}

// Disabled reports whether the trigger holds the sentinel.
func (t Trigger) Disabled() bool {
	return t.tick == disabledTicks
}

// Now reports whether the trigger fires on exactly the current tick.
func (t Trigger) Now(c Clock) bool {
	return t.tick == c.tick
}

// Since returns the number of ticks elapsed since the trigger fired, or
// disabledTicks if it is disabled or still in the future. Callers should
// prefer Between/After/Before, which handle the sentinel internally.
func (t Trigger) Since(c Clock) uint32 {
	if c.tick >= t.tick {
		return c.tick - t.tick
	}
	return disabledTicks
}

// Between reports whether the trigger fired and begin <= since < end.
func (t Trigger) Between(c Clock, begin, end uint32) bool {
	if t.tick == disabledTicks {
		return false
	}
	s := t.Since(c)
	return s >= begin && s < end
}

// After reports whether the trigger fired at least n ticks ago.
func (t Trigger) After(c Clock, n uint32) bool {
	s := t.Since(c)
	return s != disabledTicks && s >= n
}

// Before reports whether the trigger fired fewer than n ticks ago.
func (t Trigger) Before(c Clock, n uint32) bool {
	s := t.Since(c)
	return s != disabledTicks && s < n
}

// AfterOnce reports whether exactly n ticks have elapsed since firing.
// True on one tick only; used for one-shot follow-up actions.
func (t Trigger) AfterOnce(c Clock, n uint32) bool {
	return t.Since(c) == n
}
