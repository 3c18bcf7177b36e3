// Package solver implements the Monte Carlo AND/OR search of spec.md §4.2:
// repeated randomized descents over a Miner's dependency oracle, bounded by
// cost and depth, keeping the cheapest successful trial.
package solver

import (
	"math/rand"

	"github.com/phobologic/javamake/internal/model"
)

// Miner is the lazy oracle the solver consumes: given a Node, the list of
// candidate Dependencies that could satisfy it (the OR-choices), in a
// stable order. internal/miner.Miner satisfies this interface; tests may
// supply a stub.
type Miner interface {
	DependenciesOf(node model.Node) []model.Dependency
}

// Solver runs Monte Carlo trials against a fixed Miner. It owns a
// memoization table shared across trials and across repeated Solve calls,
// per spec.md §4.2/§5. A Solver is not safe for concurrent use — callers
// wanting parallelism must build one Solver (and one Options, with its own
// RNG) per goroutine.
type Solver struct {
	miner Miner
	opts  Options
	rng   *rand.Rand
	memo  map[string][]model.Dependency

	// Trials accumulates one TrialRecord per attempted trial when
	// opts.Trace is set. Reset at the start of every Solve call.
	Trials []TrialRecord
}

// New builds a Solver over miner with opts. If opts.NumberOfTrials,
// CostLimit, or DepthLimit are zero, DefaultOptions' values are substituted
// for the corresponding zero field so a caller can supply a partial
// Options.
func New(m Miner, opts Options) *Solver {
	defaults := DefaultOptions()
	if opts.NumberOfTrials == 0 {
		opts.NumberOfTrials = defaults.NumberOfTrials
	}
	if opts.CostLimit == 0 {
		opts.CostLimit = defaults.CostLimit
	}
	if opts.DepthLimit == 0 {
		opts.DepthLimit = defaults.DepthLimit
	}

	return &Solver{
		miner: m,
		opts:  opts,
		rng:   opts.rng(),
		memo:  make(map[string][]model.Dependency),
	}
}

// Solve finds a plan for root, minimizing total cost under the Solver's
// budgets, per spec.md §4.2's "Solve" algorithm. It runs up to
// opts.NumberOfTrials independent trials; a completed trial whose cost is
// below opts.MinCost is discarded; the first success, or any strictly
// cheaper later success, becomes the new best. Returns ErrNoPlan if no
// trial both succeeds and clears MinCost.
func (s *Solver) Solve(root model.Node) (*model.Plan, error) {
	if s.opts.Trace {
		s.Trials = nil
	}

	var best *model.Plan

	for i := 0; i < s.opts.NumberOfTrials; i++ {
		t := newTrial(s)
		ok := t.recurse(root, 0)

		if s.opts.Trace {
			rec := newTrialRecord()
			rec.Success = ok
			rec.Cost = t.cost
			if !ok {
				rec.Reason = t.failureReason
			}
			s.Trials = append(s.Trials, rec)
		}

		if !ok {
			continue
		}
		if t.cost < s.opts.MinCost {
			if s.opts.Trace {
				s.Trials[len(s.Trials)-1].Success = false
				s.Trials[len(s.Trials)-1].Reason = "below minimum cost"
			}
			continue
		}

		if best == nil || t.cost < best.Cost {
			best = &model.Plan{
				Result:          root,
				CreationOrder:   t.creationOrder,
				DependencyOrder: t.dependencyOrder,
				Cost:            t.cost,
			}
		}
	}

	if best == nil {
		return nil, ErrNoPlan
	}
	return best, nil
}

// dependenciesOf is the shared, memoized oracle every trial consults.
// Entries are immutable once inserted, per spec.md §9.
func (s *Solver) dependenciesOf(node model.Node) []model.Dependency {
	key := node.Key()
	if deps, ok := s.memo[key]; ok {
		return deps
	}
	deps := s.miner.DependenciesOf(node)
	s.memo[key] = deps
	return deps
}

// trial holds the per-trial scratch state of spec.md §4.2: creationOrder,
// dependencyOrder, a running cost, and the set of nodes already proven
// satisfied this trial.
type trial struct {
	s *Solver

	creationOrder   []model.Node
	dependencyOrder []model.Dependency
	cost            int
	created         map[string]struct{}

	failureReason string
}

func newTrial(s *Solver) *trial {
	return &trial{s: s, created: make(map[string]struct{})}
}

// recurse implements spec.md §4.2's seven-step algorithm exactly. The
// per-trial created set renders cycles harmless: a node already proven
// satisfied this trial returns true immediately, so a cycle only manifests
// as extra depth on the path that discovers it, bounded by DepthLimit.
func (t *trial) recurse(node model.Node, depth int) bool {
	key := node.Key()
	if _, ok := t.created[key]; ok {
		return true
	}

	if depth > t.s.opts.DepthLimit {
		t.failureReason = "depth limit exceeded"
		return false
	}

	deps := t.s.dependenciesOf(node)
	if len(deps) == 0 {
		t.failureReason = "no dependency candidates"
		return false
	}

	d := deps[t.s.rng.Intn(len(deps))]

	t.cost += d.Cost()
	if t.cost > t.s.opts.CostLimit {
		t.failureReason = "cost limit exceeded"
		return false
	}

	for _, req := range d.Requirements() {
		if !t.recurse(req, depth+1) {
			return false
		}
	}

	t.created[key] = struct{}{}
	t.creationOrder = append(t.creationOrder, node)
	t.dependencyOrder = append(t.dependencyOrder, d)
	return true
}
