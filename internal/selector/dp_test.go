package selector

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/cultistcircle/circlebot/internal/models"
)

// bruteForce enumerates every multiset of up to maxItems candidates
// (respecting per-candidate caps when bounded) and returns the minimum cost
// among those whose bucket sum lands in [thresholdBucket, maxBucket].
// Mirrors the DP's feasibility window exactly.
func bruteForce(candidates []Candidate, maxItems, step, maxOvershoot, threshold int, bounded bool) (int, bool) {
	thresholdBucket := ceilDiv(threshold, step)
	maxBucket := ceilDiv(threshold+maxOvershoot, step)

	buckets := make([]int, len(candidates))
	for i, c := range candidates {
		buckets[i] = ceilDiv(c.Value, step)
		if buckets[i] > maxBucket {
			buckets[i] = maxBucket
		}
	}

	best := -1

	var walk func(idx, used, bucketSum, cost int)
	walk = func(idx, used, bucketSum, cost int) {
		if used >= 1 && bucketSum >= thresholdBucket && bucketSum <= maxBucket {
			if best < 0 || cost < best {
				best = cost
			}
		}
		if idx == len(candidates) || used == maxItems {
			return
		}
		limit := maxItems - used
		if bounded && candidates[idx].Cap < limit {
			limit = candidates[idx].Cap
		}
		for n := 0; n <= limit; n++ {
			walk(idx+1, used+n, bucketSum+n*buckets[idx], cost+n*candidates[idx].Cost)
		}
	}
	walk(0, 0, 0, 0)
	return best, best >= 0
}

func TestSolveMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.Intn(6)
		items := make([]models.Item, n)
		for i := range items {
			items[i] = models.Item{
				Name:           string(rune('A' + i)),
				BasePrice:      100 + rng.Intn(4000),
				PvePrice:       10 + rng.Intn(500),
				TraderBuyPrice: 10 + rng.Intn(500),
				BuyLimit:       rng.Intn(4), // 0 means uncapped
			}
		}
		catalog := &models.Catalog{Items: items}
		threshold := 500 + rng.Intn(8000)
		maxItems := 1 + rng.Intn(3)

		for _, regime := range models.AllRegimes() {
			req := Request{Threshold: threshold, MaxItems: maxItems, Regime: regime}
			sel, err := New().Solve(catalog, req)

			bounded := regime == models.RegimeTrader
			expected := prepareCandidates(items, regime, maxItems)
			want, feasible := bruteForce(expected, maxItems, Step, MaxOvershoot, threshold, bounded)

			if !feasible {
				if !errors.Is(err, models.ErrNoFeasibleSelection) {
					t.Errorf("trial %d %s: err = %v, want ErrNoFeasibleSelection", trial, regime, err)
				}
				continue
			}
			if err != nil {
				t.Errorf("trial %d %s: Solve failed: %v (brute force found cost %d)", trial, regime, err, want)
				continue
			}
			if sel.TotalCost != want {
				t.Errorf("trial %d %s: TotalCost = %d, brute force found %d (threshold=%d k=%d items=%+v)",
					trial, regime, sel.TotalCost, want, threshold, maxItems, items)
			}
		}
	}
}

func TestSolveTotalCostMatchesPickSum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 50; trial++ {
		n := 2 + rng.Intn(4)
		items := make([]models.Item, n)
		for i := range items {
			items[i] = models.Item{
				Name:      string(rune('A' + i)),
				BasePrice: 200 + rng.Intn(3000),
				PvePrice:  20 + rng.Intn(400),
			}
		}
		catalog := &models.Catalog{Items: items}

		sel, err := New().Solve(catalog, Request{Threshold: 1000 + rng.Intn(5000), MaxItems: 3, Regime: models.RegimeFlea})
		if errors.Is(err, models.ErrNoFeasibleSelection) {
			continue
		}
		if err != nil {
			t.Fatalf("trial %d: Solve failed: %v", trial, err)
		}

		// The DP cost is authoritative, but a recomputed sum must agree.
		sum := 0
		for _, p := range sel.Picks {
			sum += p.Candidate.Cost * p.Count
		}
		if sum != sel.TotalCost {
			t.Errorf("trial %d: pick sum %d != TotalCost %d (%+v)", trial, sum, sel.TotalCost, sel.Picks)
		}
	}
}

func TestBoundedReconstructionStaysWithinCaps(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 100; trial++ {
		n := 1 + rng.Intn(5)
		items := make([]models.Item, n)
		for i := range items {
			items[i] = models.Item{
				Name:           string(rune('A' + i)),
				BasePrice:      300 + rng.Intn(2500),
				TraderBuyPrice: 30 + rng.Intn(300),
				BuyLimit:       1 + rng.Intn(3),
			}
		}
		catalog := &models.Catalog{Items: items}
		maxItems := 1 + rng.Intn(5)

		sel, err := New().Solve(catalog, Request{Threshold: 1000 + rng.Intn(4000), MaxItems: maxItems, Regime: models.RegimeTrader})
		if errors.Is(err, models.ErrNoFeasibleSelection) {
			continue
		}
		if err != nil {
			t.Fatalf("trial %d: Solve failed: %v", trial, err)
		}

		total := 0
		for _, p := range sel.Picks {
			total += p.Count
			if p.Count > p.Candidate.Cap {
				t.Errorf("trial %d: %s picked %d times, cap %d", trial, p.Candidate.Name, p.Count, p.Candidate.Cap)
			}
		}
		if total > maxItems {
			t.Errorf("trial %d: %d items picked, limit %d", trial, total, maxItems)
		}
	}
}
