// Package pipeline wires the miner, solver, and emitter together for one or
// more target classes, fanning out across a worker pool the way the
// teacher's parseFilesConcurrent fans out file parsing — adapted here from
// "parse N source files" to "solve N construction plans", per
// SPEC_FULL.md's "Multiple target classes in one invocation" supplement.
package pipeline

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/phobologic/javamake/internal/emit"
	"github.com/phobologic/javamake/internal/miner"
	"github.com/phobologic/javamake/internal/model"
	"github.com/phobologic/javamake/internal/solver"
	"github.com/phobologic/javamake/internal/target"
	"github.com/phobologic/javamake/internal/view"
)

// Result is the outcome of solving and emitting one target.
type Result struct {
	Target string
	Source string
	Plan   *model.Plan
	Trials []solver.TrialRecord
	Err    error
}

// RunOne mines v with a fresh Miner/Solver/Emitter, solves targetSpec, and
// emits its Java source. Each call builds its own Solver: per spec.md §5, a
// Solver is not safe for concurrent use, so RunMany gives every worker its
// own.
func RunOne(v view.View, targetSpec string, opts solver.Options) Result {
	res := Result{Target: targetSpec}

	node, err := target.Parse(v, targetSpec)
	if err != nil {
		res.Err = err
		return res
	}

	m := miner.New(v)
	s := solver.New(m, opts)

	plan, err := s.Solve(node)
	if err != nil {
		res.Err = fmt.Errorf("solving %s: %w", targetSpec, err)
		res.Trials = s.Trials
		return res
	}
	res.Plan = plan
	res.Trials = s.Trials

	source, err := emit.New().Emit(plan)
	if err != nil {
		res.Err = fmt.Errorf("emitting %s: %w", targetSpec, err)
		return res
	}
	res.Source = source
	return res
}

// RunMany solves every target concurrently, bounded by GOMAXPROCS workers,
// and returns results in the same order as targets.
func RunMany(v view.View, targets []string, opts solver.Options) []Result {
	results := make([]Result, len(targets))

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers > len(targets) {
		numWorkers = len(targets)
	}
	if numWorkers == 0 {
		return results
	}

	work := make(chan int, len(targets))
	for i := range targets {
		work <- i
	}
	close(work)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range work {
				// Each worker gets its own Options with a per-target seed
				// derived from idx: a shared opts.Random would race across
				// goroutines (math/rand.Rand is not concurrency-safe, per
				// spec.md §5), so RunMany never forwards one.
				workerOpts := opts
				workerOpts.Random = nil
				workerOpts.Seed = opts.Seed + int64(idx) + 1
				results[idx] = RunOne(v, targets[idx], workerOpts)
			}
		}()
	}
	wg.Wait()

	return results
}
