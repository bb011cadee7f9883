package selector

import (
	"fmt"
	"math/rand"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cultistcircle/circlebot/internal/models"
)

// Quantization constants. Values are bucketed to Step roubles, and no
// solution may land more than MaxOvershoot roubles past the threshold.
const (
	Step         = 500
	MaxOvershoot = 50_000
)

// Candidate is one tradeable item after ingestion-boundary validation:
// value and cost are known positive, and the repetition cap (trader regime
// only) is already clamped to the overall item limit.
type Candidate struct {
	Name   string
	Value  int
	Cost   int
	Cap    int
	Trader string
	Link   string

	bucket int
}

// Request describes one selection problem.
type Request struct {
	Threshold int
	MaxItems  int
	Regime    models.Regime
	Randomize bool
}

// Pick is one distinct candidate in the chosen multiset.
type Pick struct {
	Candidate Candidate
	Count     int
}

// Selection is the solved result: the chosen multiset, its totals, and
// display-ready lines ordered by descending value then ascending cost.
// TotalCost is the DP minimum, not a recomputed sum.
type Selection struct {
	TotalValue int
	TotalCost  int
	Picks      []Pick
	Lines      []string
}

// Solver picks a multiset of up to MaxItems catalog items whose total base
// value reaches a threshold at minimum acquisition cost. It is pure and
// reentrant: all state lives on the stack of a single Solve call.
type Solver struct {
	Step         int
	MaxOvershoot int

	rng *rand.Rand
}

// New creates a solver with the default quantization parameters.
func New() *Solver {
	return &Solver{Step: Step, MaxOvershoot: MaxOvershoot}
}

// NewSeeded creates a solver whose candidate shuffle is driven by a fixed
// seed. Only the tie-break among equal-cost solutions is affected.
func NewSeeded(seed int64) *Solver {
	s := New()
	s.rng = rand.New(rand.NewSource(seed))
	return s
}

// Solve runs the selection for the given catalog and request.
func (s *Solver) Solve(catalog *models.Catalog, req Request) (*Selection, error) {
	if catalog == nil || catalog.Items == nil {
		return nil, models.ErrMissingCatalog
	}

	k := req.MaxItems
	if k < 1 {
		k = 1
	}

	candidates := prepareCandidates(catalog.Items, req.Regime, k)
	if len(candidates) == 0 {
		return nil, models.ErrNoValidCandidates
	}

	if req.Randomize {
		s.shuffle(candidates)
	}

	thresholdBucket := ceilDiv(req.Threshold, s.Step)
	maxBucket := ceilDiv(req.Threshold+s.MaxOvershoot, s.Step)
	for i := range candidates {
		b := ceilDiv(candidates[i].Value, s.Step)
		if b > maxBucket {
			b = maxBucket
		}
		candidates[i].bucket = b
	}

	var tables *dpTables
	if req.Regime == models.RegimeTrader {
		tables = solveBounded(candidates, k, maxBucket)
	} else {
		tables = solveUnbounded(candidates, k, maxBucket)
	}

	best, ok := bestFeasible(tables, thresholdBucket)
	if !ok {
		return nil, models.ErrNoFeasibleSelection
	}

	counts := tables.reconstruct(best.count, best.bucket)
	return aggregate(candidates, counts, best.cost, req.Regime), nil
}

// prepareCandidates filters raw entries into valid candidates for the
// regime. Entries with missing or non-positive value or cost are skipped
// silently rather than reported.
func prepareCandidates(items []models.Item, regime models.Regime, maxItems int) []Candidate {
	candidates := make([]Candidate, 0, len(items))
	for i := range items {
		it := &items[i]
		if it.BasePrice <= 0 {
			continue
		}

		c := Candidate{
			Name:  it.DisplayName(),
			Value: it.BasePrice,
			Link:  it.Link,
		}

		if regime == models.RegimeTrader {
			if it.TraderBuyPrice <= 0 {
				continue
			}
			c.Cost = it.TraderBuyPrice
			c.Trader = it.TraderBuyName
			c.Cap = maxItems
			if it.BuyLimit > 0 && it.BuyLimit < maxItems {
				c.Cap = it.BuyLimit
			}
		} else {
			if it.PvePrice <= 0 {
				continue
			}
			c.Cost = it.PvePrice
		}

		candidates = append(candidates, c)
	}
	return candidates
}

func (s *Solver) shuffle(candidates []Candidate) {
	swap := func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}
	if s.rng != nil {
		s.rng.Shuffle(len(candidates), swap)
	} else {
		rand.Shuffle(len(candidates), swap)
	}
}

// aggregate groups the reconstructed per-candidate counts into the final
// selection. Sorting by (-value, cost) here is display order only; the
// multiset itself was fixed by the feasible-cell choice.
func aggregate(candidates []Candidate, counts map[int]int, bestCost int, regime models.Regime) *Selection {
	order := make([]int, 0, len(counts))
	for idx := range counts {
		order = append(order, idx)
	}
	sort.Slice(order, func(a, b int) bool {
		ca, cb := candidates[order[a]], candidates[order[b]]
		if ca.Value != cb.Value {
			return ca.Value > cb.Value
		}
		if ca.Cost != cb.Cost {
			return ca.Cost < cb.Cost
		}
		return ca.Name < cb.Name
	})

	sel := &Selection{
		TotalCost: bestCost,
		Picks:     make([]Pick, 0, len(order)),
		Lines:     make([]string, 0, len(order)),
	}

	for _, idx := range order {
		c := candidates[idx]
		n := counts[idx]
		sel.TotalValue += c.Value * n
		sel.Picks = append(sel.Picks, Pick{Candidate: c, Count: n})
		sel.Lines = append(sel.Lines, formatLine(c, n, regime))
	}
	return sel
}

var roubles = message.NewPrinter(language.English)

func formatLine(c Candidate, count int, regime models.Regime) string {
	name := c.Name
	if c.Link != "" {
		name = fmt.Sprintf("[%s](%s)", c.Name, c.Link)
	}
	line := roubles.Sprintf("x%d — %s | value %d₽ | cost %d₽", count, name, c.Value, c.Cost)
	if regime == models.RegimeTrader && c.Trader != "" {
		line += " | " + c.Trader
	}
	return line
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
