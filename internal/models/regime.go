package models

import "fmt"

// Regime selects where a candidate's acquisition cost comes from.
type Regime string

const (
	// RegimeTrader prices candidates at the trader buy cost, bounded by
	// each item's buy limit.
	RegimeTrader Regime = "trader"
	// RegimeFlea prices candidates at the flea market cost with no
	// per-item repetition cap.
	RegimeFlea Regime = "flea"
)

// AllRegimes returns the regimes in deterministic order.
func AllRegimes() []Regime {
	return []Regime{RegimeTrader, RegimeFlea}
}

// ParseRegime accepts the regime names and their common aliases.
func ParseRegime(s string) (Regime, error) {
	switch s {
	case "trader", "pvp":
		return RegimeTrader, nil
	case "flea", "pve":
		return RegimeFlea, nil
	}
	return "", fmt.Errorf("unknown regime %q (want trader/pvp or flea/pve)", s)
}

// Label returns the user-facing name for the regime.
func (r Regime) Label() string {
	switch r {
	case RegimeFlea:
		return "PvE (Flea)"
	default:
		return "PvP (Trader)"
	}
}
