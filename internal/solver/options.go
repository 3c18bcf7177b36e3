package solver

import "math/rand"

// Options configures a Solver, per spec.md §4.2. It is a plain value type,
// validated once by New and never mutated afterward — the same convention
// katalvlaran/lvlath's tsp.Options follows.
type Options struct {
	// NumberOfTrials is the number of independent randomized descents to
	// attempt. Default 1000.
	NumberOfTrials int

	// CostLimit aborts a trial once its running cost exceeds this value.
	CostLimit int

	// DepthLimit aborts a trial once recursion depth exceeds this value.
	DepthLimit int

	// MinCost discards completed trials whose cost is below this value,
	// letting callers require a minimum complexity.
	MinCost int

	// Random is the seedable RNG used for all dependency choices. If nil,
	// New derives one from Seed.
	Random *rand.Rand

	// Seed seeds a deterministic RNG when Random is nil. Seed==0 selects a
	// fixed default seed, not a time-based one — there is no ambient
	// randomness anywhere in javamake, per spec.md §9.
	Seed int64

	// Trace records a TrialRecord for every trial (success or failure) on
	// the Solver that ran it, for CLI --verbose diagnostics. Purely
	// additive; no invariant in spec.md §8 depends on it.
	Trace bool
}

// DefaultOptions returns the spec's default budgets: 1000 trials, generous
// cost and depth limits, and no minimum cost floor.
func DefaultOptions() Options {
	return Options{
		NumberOfTrials: 1000,
		CostLimit:      50,
		DepthLimit:     25,
		MinCost:        0,
	}
}

// rng returns o.Random if set, else a deterministic RNG derived from
// o.Seed.
func (o Options) rng() *rand.Rand {
	if o.Random != nil {
		return o.Random
	}
	return rngFromSeed(o.Seed)
}
