package model

import "fmt"

// Plan is the Solution of spec.md §3: a linearized, budget-respecting
// sequence of (Node, Dependency) pairs realizing Result.
//
// Invariant: len(CreationOrder) == len(DependencyOrder); for every index i,
// every node in DependencyOrder[i].Requirements() appears in
// CreationOrder[0:i]; CreationOrder has no duplicates; CreationOrder's last
// element has the same Key as Result.
type Plan struct {
	Result          Node
	CreationOrder   []Node
	DependencyOrder []Dependency
	Cost            int
}

// Validate checks the topological, no-duplicate, and result invariants from
// spec.md §8 property 1 and 3. It does not check the budget invariant
// (property 2) since a Plan can be constructed and validated independently
// of the Options that produced it.
func (p *Plan) Validate() error {
	if len(p.CreationOrder) != len(p.DependencyOrder) {
		return fmt.Errorf("model: plan has %d creation nodes but %d dependencies", len(p.CreationOrder), len(p.DependencyOrder))
	}
	if len(p.CreationOrder) == 0 {
		return fmt.Errorf("model: plan has an empty creation order")
	}

	seen := make(map[string]struct{}, len(p.CreationOrder))
	for i, n := range p.CreationOrder {
		key := n.Key()
		if _, dup := seen[key]; dup {
			return fmt.Errorf("model: duplicate node %q at position %d", key, i)
		}

		for _, req := range p.DependencyOrder[i].Requirements() {
			if _, ok := seen[req.Key()]; !ok {
				return fmt.Errorf("model: node %q requires %q before it is created", key, req.Key())
			}
		}

		seen[key] = struct{}{}
	}

	last := p.CreationOrder[len(p.CreationOrder)-1]
	if last.Key() != p.Result.Key() {
		return fmt.Errorf("model: plan's last created node %q does not match result %q", last.Key(), p.Result.Key())
	}

	return nil
}
