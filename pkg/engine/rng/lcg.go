// Package rng provides the deterministic random stream that drives dungeon generation.
package rng

// LCG constants. Changing any of them changes every dungeon ever generated.
const (
	Multiplier = 9301
	Increment  = 49297
	Modulus    = 233280
)

// LCG is a linear-congruential generator producing a reproducible stream of
// floats in [0,1). Seeds are expected to be non-negative.
type LCG struct {
	seed  int64
	state int64
	draws int
}

// New creates a generator positioned at the start of the stream for seed
func New(seed int64) *LCG {
	return &LCG{
		seed:  seed,
		state: seed,
	}
}

// Seed returns the seed the generator was created with
func (r *LCG) Seed() int64 {
	return r.seed
}

// Draws returns how many values have been taken from the stream
func (r *LCG) Draws() int {
	return r.draws
}

// Next advances the stream and returns a value in [0,1)
func (r *LCG) Next() float64 {
	r.state = (r.state*Multiplier + Increment) % Modulus
	r.draws++
	return float64(r.state) / Modulus
}

// Intn returns floor(Next()*n). It consumes exactly one draw.
func (r *LCG) Intn(n int) int {
	return int(r.Next() * float64(n))
}

// Reset rewinds the generator to the start of its stream
func (r *LCG) Reset() {
	r.state = r.seed
	r.draws = 0
}
