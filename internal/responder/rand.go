package responder

import "math/rand/v2"

// Rand picks an index in [0, n). Implementations must be uniform.
type Rand interface {
	IntN(n int) int
}

// globalRand uses the runtime-seeded top-level source, which is safe for
// concurrent use.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }
