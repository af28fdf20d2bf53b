package jobs

import (
	"slices"
	"strings"
)

// Compare is the default display ordering, a strict total order:
//
//  1. active jobs before inactive jobs
//  2. jobs with a parseable next run before jobs without one
//  3. earlier next run first
//  4. case-insensitive name
//  5. id
//
// The final id key guarantees determinism regardless of input order.
func Compare(a, b Job) int {
	if a.IsActive != b.IsActive {
		if a.IsActive {
			return -1
		}
		return 1
	}

	at, aok := a.NextExecution()
	bt, bok := b.NextExecution()
	if aok != bok {
		if aok {
			return -1
		}
		return 1
	}
	if aok && bok {
		if c := at.Compare(bt); c != 0 {
			return c
		}
	}

	if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}

// SortDefault returns a new slice sorted by Compare. The input is never
// mutated.
func SortDefault(in []Job) []Job {
	out := slices.Clone(in)
	slices.SortStableFunc(out, Compare)
	return out
}
