package chomp

// randSeed is the xorshift seed installed at every round init, pinning the
// frightened-ghost wander pattern for a given input sequence.
const randSeed = 0x12345678

// xorshift32 is the tiny deterministic PRNG used for frightened-ghost
// targets. Marsaglia's 13/17/5 variant, period 2^32-1.
type xorshift32 struct {
	x uint32
}

func (r *xorshift32) seed(s uint32) {
	r.x = s
}

func (r *xorshift32) next() uint32 {
	x := r.x
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.x = x
	return x
}
