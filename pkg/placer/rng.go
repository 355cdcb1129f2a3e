package placer

import "math/rand/v2"

// NewRNG builds the PCG source used by every randomized step of a run. A
// non-zero seed yields a fully reproducible run; seed zero draws fresh
// entropy so repeated runs explore different layouts.
func NewRNG(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}
