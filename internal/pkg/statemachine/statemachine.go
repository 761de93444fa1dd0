// Package statemachine holds the shared transition-table helper behind the
// pay period, payroll run, invoice, and time off lifecycles.
package statemachine

import (
	"fmt"
	"sort"
	"strings"
)

// Table maps a current state to the set of states reachable from it.
// States missing from the table are terminal.
type Table map[string][]string

// InvalidTransitionError reports a requested status change that is not in the
// allowed-from-current set.
type InvalidTransitionError struct {
	Entity  string
	Current string
	Target  string
	Allowed []string
}

func (e *InvalidTransitionError) Error() string {
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("%s status %q is terminal, cannot transition to %q", e.Entity, e.Current, e.Target)
	}
	return fmt.Sprintf("%s cannot transition from %q to %q (allowed: %s)",
		e.Entity, e.Current, e.Target, strings.Join(e.Allowed, ", "))
}

// Attempt validates a transition against the table. It returns an
// *InvalidTransitionError when the target is not reachable from current.
func Attempt(entity string, table Table, current, target string) error {
	allowed := table[current]
	for _, s := range allowed {
		if s == target {
			return nil
		}
	}
	sorted := append([]string(nil), allowed...)
	sort.Strings(sorted)
	return &InvalidTransitionError{Entity: entity, Current: current, Target: target, Allowed: sorted}
}

// CanTransition reports whether target is reachable from current.
func CanTransition(table Table, current, target string) bool {
	for _, s := range table[current] {
		if s == target {
			return true
		}
	}
	return false
}
