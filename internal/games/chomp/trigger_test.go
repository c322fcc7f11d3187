package chomp

import "testing"

func TestTriggerNowFiresExactlyOnce(t *testing.T) {
	var c Clock
	tr := NewTrigger()

	if tr.Now(c) {
		t.Error("disabled trigger should never fire")
	}

	tr.Start(c) // fires at tick 1
	fired := 0
	for i := 0; i < 10; i++ {
		c.Advance()
		if tr.Now(c) {
			fired++
			if c.Ticks() != 1 {
				t.Errorf("trigger fired at tick %d, expected 1", c.Ticks())
			}
		}
	}
	if fired != 1 {
		t.Errorf("trigger fired %d times, expected exactly 1", fired)
	}
}

func TestTriggerStartAfter(t *testing.T) {
	tests := []struct {
		name     string
		after    uint32
		fireTick uint32
	}{
		{"zero fires on current tick", 0, 5},
		{"one tick ahead", 1, 6},
		{"long delay", 120, 125},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Clock
			for c.Ticks() < 5 {
				c.Advance()
			}
			tr := NewTrigger()
			tr.StartAfter(c, tt.after)

			for c.Ticks() < tt.fireTick {
				if tr.Now(c) && c.Ticks() != tt.fireTick {
					t.Errorf("fired early at tick %d", c.Ticks())
				}
				c.Advance()
			}
			if !tr.Now(c) {
				t.Errorf("trigger did not fire at tick %d", tt.fireTick)
			}
		})
	}
}

func TestTriggerDisabled(t *testing.T) {
	var c Clock
	tr := NewTrigger()
	tr.Start(c)
	tr.Disable()

	for i := 0; i < 10; i++ {
		c.Advance()
		if tr.Now(c) {
			t.Error("disabled trigger fired")
		}
		if tr.Since(c) != disabledTicks {
			t.Errorf("Since() = %d, expected sentinel for disabled trigger", tr.Since(c))
		}
		if tr.Between(c, 0, 100) || tr.After(c, 0) || tr.Before(c, 100) {
			t.Error("window queries must be false for a disabled trigger")
		}
	}
}

func TestTriggerSinceMonotonic(t *testing.T) {
	var c Clock
	tr := NewTrigger()
	tr.Start(c)

	if tr.Since(c) != disabledTicks {
		t.Errorf("Since() = %d before firing, expected sentinel", tr.Since(c))
	}

	prev := uint32(0)
	c.Advance() // fire tick
	for i := 0; i < 20; i++ {
		s := tr.Since(c)
		if s != uint32(i) {
			t.Errorf("Since() = %d at offset %d", s, i)
		}
		if i > 0 && s < prev {
			t.Errorf("Since() decreased: %d -> %d", prev, s)
		}
		prev = s
		c.Advance()
	}
}

func TestTriggerWindows(t *testing.T) {
	var c Clock
	tr := NewTrigger()
	tr.Start(c) // fires at tick 1
	for c.Ticks() < 11 {
		c.Advance()
	}
	// since == 10

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"between includes begin", tr.Between(c, 10, 20), true},
		{"between excludes end", tr.Between(c, 0, 10), false},
		{"after at boundary", tr.After(c, 10), true},
		{"after beyond", tr.After(c, 11), false},
		{"before excludes boundary", tr.Before(c, 10), false},
		{"before within", tr.Before(c, 11), true},
		{"afterOnce exact", tr.AfterOnce(c, 10), true},
		{"afterOnce off by one", tr.AfterOnce(c, 9), false},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %v, expected %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestTriggerRearmReplaces(t *testing.T) {
	var c Clock
	tr := NewTrigger()
	tr.StartAfter(c, 5)
	tr.StartAfter(c, 10) // silently replaces

	for c.Ticks() < 5 {
		c.Advance()
	}
	if tr.Now(c) {
		t.Error("trigger fired on the replaced tick")
	}
	for c.Ticks() < 10 {
		c.Advance()
	}
	if !tr.Now(c) {
		t.Error("trigger did not fire on the re-armed tick")
	}
}
