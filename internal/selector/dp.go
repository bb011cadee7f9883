package selector

import (
	"math"
	"sort"
)

const inf = math.MaxInt64 / 2

// pathNode is one link in the immutable chain of picks that produced a
// cell. Nodes are never mutated after creation, so a cell overwritten by
// a later transition leaves previously captured chains intact.
type pathNode struct {
	pick int
	prev *pathNode
}

// dpTables holds the cost table and the pick chains needed for
// reconstruction. cost[n][b] is the minimum total cost of reaching value
// bucket b with exactly n picks; path[n][b] is the chain of picks that
// achieved it. Built fresh per solve, discarded after reconstruction.
type dpTables struct {
	cost [][]int64
	path [][]*pathNode

	// unitOwner maps an expanded unit index back to its candidate in the
	// bounded regime; nil in the unbounded regime, where picks already
	// hold candidate indices.
	unitOwner []int
}

func newTables(maxCount, maxBucket int) *dpTables {
	t := &dpTables{
		cost: make([][]int64, maxCount+1),
		path: make([][]*pathNode, maxCount+1),
	}
	for n := 0; n <= maxCount; n++ {
		t.cost[n] = make([]int64, maxBucket+1)
		t.path[n] = make([]*pathNode, maxBucket+1)
		for b := 0; b <= maxBucket; b++ {
			t.cost[n][b] = inf
		}
	}
	t.cost[0][0] = 0
	return t
}

// solveUnbounded fills the table for the flea regime: any candidate may
// repeat, bounded only by the overall pick count. Unboundedness comes from
// transitioning off the count-1 row, so the candidate just used remains
// available at the next count level.
func solveUnbounded(candidates []Candidate, maxCount, maxBucket int) *dpTables {
	t := newTables(maxCount, maxBucket)

	for n := 1; n <= maxCount; n++ {
		prevRow := t.cost[n-1]
		for b := 0; b <= maxBucket; b++ {
			best := t.cost[n][b]
			bestBucket, bestPick := -1, -1
			for idx := range candidates {
				pb := b - candidates[idx].bucket
				if pb < 0 || prevRow[pb] == inf {
					continue
				}
				if c := prevRow[pb] + int64(candidates[idx].Cost); c < best {
					best = c
					bestBucket = pb
					bestPick = idx
				}
			}
			if bestPick >= 0 {
				t.cost[n][b] = best
				t.path[n][b] = &pathNode{pick: bestPick, prev: t.path[n-1][bestBucket]}
			}
		}
	}
	return t
}

// solveBounded fills the table for the trader regime. Each candidate is
// expanded into cap single-use units and a 0/1 knapsack with a count
// dimension runs over them. The descending count/bucket order is what
// guarantees a unit contributes at most once, enforcing the buy limit:
// when unit u writes row n, row n-1 still holds the state from units
// before u, so the captured chain never contains u twice.
func solveBounded(candidates []Candidate, maxCount, maxBucket int) *dpTables {
	var units []int // candidate index per expanded unit
	for idx := range candidates {
		for r := 0; r < candidates[idx].Cap; r++ {
			units = append(units, idx)
		}
	}

	t := newTables(maxCount, maxBucket)
	t.unitOwner = units

	for u, idx := range units {
		ub := candidates[idx].bucket
		uc := int64(candidates[idx].Cost)
		for n := maxCount; n >= 1; n-- {
			for b := maxBucket; b >= ub; b-- {
				prev := t.cost[n-1][b-ub]
				if prev == inf {
					continue
				}
				if c := prev + uc; c < t.cost[n][b] {
					t.cost[n][b] = c
					t.path[n][b] = &pathNode{pick: u, prev: t.path[n-1][b-ub]}
				}
			}
		}
	}
	return t
}

type feasible struct {
	cost   int
	count  int
	bucket int
}

// bestFeasible scans every reachable cell at or past the threshold bucket
// and picks the winner by ascending (cost, count, bucket): minimum cost
// first, then fewest items, then least overshoot.
func bestFeasible(t *dpTables, thresholdBucket int) (feasible, bool) {
	var options []feasible
	for n := 1; n < len(t.cost); n++ {
		for b := thresholdBucket; b < len(t.cost[n]); b++ {
			if t.cost[n][b] < inf {
				options = append(options, feasible{cost: int(t.cost[n][b]), count: n, bucket: b})
			}
		}
	}
	if len(options) == 0 {
		return feasible{}, false
	}

	sort.Slice(options, func(i, j int) bool {
		if options[i].cost != options[j].cost {
			return options[i].cost < options[j].cost
		}
		if options[i].count != options[j].count {
			return options[i].count < options[j].count
		}
		return options[i].bucket < options[j].bucket
	})
	return options[0], true
}

// reconstruct walks the pick chain of the chosen cell and tallies
// repetitions per candidate.
func (t *dpTables) reconstruct(count, bucket int) map[int]int {
	counts := make(map[int]int)
	for node := t.path[count][bucket]; node != nil; node = node.prev {
		pick := node.pick
		if t.unitOwner != nil {
			pick = t.unitOwner[pick]
		}
		counts[pick]++
	}
	return counts
}
