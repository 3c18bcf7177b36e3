package solver

import "errors"

// ErrNoPlan is returned by Solve when no trial, within NumberOfTrials,
// produced a valid plan meeting Options.MinCost. Per spec.md §7, this is
// surfaced as an ordinary error value, not a panic — callers decide
// whether to retry with larger budgets.
var ErrNoPlan = errors.New("solver: no plan found within the trial budget")
