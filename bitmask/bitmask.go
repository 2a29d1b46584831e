// Package bitmask implements dynamic programming over subsets encoded
// as bitmasks: submask enumeration and the Held-Karp travelling
// salesman solver. State spaces grow as 2^n, so inputs beyond roughly
// 20 elements stop being practical.
package bitmask

import (
	"errors"
	"fmt"
)

// ErrBadMatrix is returned when a distance matrix is empty or not
// square.
var ErrBadMatrix = errors.New("bad distance matrix")

// Submasks returns every subset of mask, in descending numeric order,
// ending with the empty set. The classic (s-1)&mask step visits each of
// the 2^popcount(mask) submasks exactly once.
func Submasks(mask uint32) []uint32 {
	out := make([]uint32, 0, 1)

	for sub := mask; sub > 0; sub = (sub - 1) & mask {
		out = append(out, sub)
	}

	return append(out, 0)
}

// TSP returns the cost of the cheapest tour that starts at city 0,
// visits every city exactly once and returns to 0, given a complete
// n x n distance matrix. Held-Karp: O(2^n * n^2) time, O(2^n * n)
// space.
func TSP(dist [][]int64) (int64, error) {
	n := len(dist)
	if n == 0 {
		return 0, fmt.Errorf("%w: empty", ErrBadMatrix)
	}

	for i, row := range dist {
		if len(row) != n {
			return 0, fmt.Errorf("%w: row %d has %d entries, want %d", ErrBadMatrix, i, len(row), n)
		}
	}

	if n == 1 {
		return 0, nil
	}

	const unreached = int64(1) << 62

	// cost[mask][last] = cheapest way to visit the cities in mask,
	// ending at city last. Start pinned at city 0.
	cost := make([][]int64, 1<<n)
	for mask := range cost {
		cost[mask] = make([]int64, n)
		for i := range cost[mask] {
			cost[mask][i] = unreached
		}
	}
	cost[1][0] = 0

	for mask := 1; mask < 1<<n; mask++ {
		for last := 0; last < n; last++ {
			if mask&(1<<last) == 0 || cost[mask][last] == unreached {
				continue
			}

			for next := 0; next < n; next++ {
				if mask&(1<<next) != 0 {
					continue
				}

				candidate := cost[mask][last] + dist[last][next]
				extended := mask | 1<<next

				if candidate < cost[extended][next] {
					cost[extended][next] = candidate
				}
			}
		}
	}

	full := 1<<n - 1
	best := unreached

	for last := 1; last < n; last++ {
		if cost[full][last] == unreached {
			continue
		}

		if tour := cost[full][last] + dist[last][0]; tour < best {
			best = tour
		}
	}

	return best, nil
}
