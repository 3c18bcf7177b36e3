package solver

import "github.com/google/uuid"

// TrialRecord diagnoses one Monte Carlo trial when Options.Trace is set.
// Not part of the core contract in spec.md §4.2 — a supplemental
// diagnostic for CLI --verbose output, analogous to the warnings the
// teacher CLI writes to stderr during discovery and parsing.
type TrialRecord struct {
	ID      uuid.UUID
	Success bool
	Cost    int
	// Reason explains an aborted trial ("cost limit exceeded", "depth
	// limit exceeded", "no dependency candidates", "below minimum cost")
	// or is empty for a successful, retained trial.
	Reason string
}

func newTrialRecord() TrialRecord {
	return TrialRecord{ID: uuid.New()}
}
