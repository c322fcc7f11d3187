package chomp

import "testing"

func TestXorshift32Sequence(t *testing.T) {
	// First outputs for the fixed seed; the attract/round RNG must
	// reproduce these exactly or replays diverge.
	want := []uint32{
		0x87985AA5, 0x155B24A3, 0x4820F4C4, 0x81B3AC98,
		0x703A0788, 0x29A8E24D, 0x89CA4F1D, 0xC5186E29,
	}

	var r xorshift32
	r.seed(randSeed)
	for i, w := range want {
		got := r.next()
		if got != w {
			t.Errorf("next() #%d = %#08X, expected %#08X", i, got, w)
		}
	}
}

func TestXorshift32Reseed(t *testing.T) {
	var a, b xorshift32
	a.seed(randSeed)
	b.seed(randSeed)
	for i := 0; i < 100; i++ {
		a.next()
	}
	a.seed(randSeed)
	for i := 0; i < 16; i++ {
		if x, y := a.next(), b.next(); x != y {
			t.Fatalf("reseeded stream diverged at step %d: %#08X != %#08X", i, x, y)
		}
	}
}
