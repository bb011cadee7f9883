package ammo

import (
	"fmt"
	"sort"
	"strings"
)

// Find looks up a round by name: exact match first, then the first partial
// match in alphabetical order. Returns the proper name alongside the round.
func Find(name string) (string, Round, bool) {
	query := strings.ToUpper(strings.TrimSpace(name))
	if query == "" {
		return "", Round{}, false
	}
	if r, ok := rounds[query]; ok {
		return query, r, true
	}

	var matches []string
	for k := range rounds {
		if strings.Contains(k, query) {
			matches = append(matches, k)
		}
	}
	if len(matches) == 0 {
		return "", Round{}, false
	}
	sort.Strings(matches)
	return matches[0], rounds[matches[0]], true
}

// Names returns every known round name in alphabetical order.
func Names() []string {
	out := make([]string, 0, len(rounds))
	for k := range rounds {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// TotalDamage is the summed damage across pellets, or the flat damage for
// single-projectile rounds.
func (r Round) TotalDamage() int {
	if r.Pellets > 0 {
		return r.Pellets * r.Damage
	}
	return r.Damage
}

// DamageString renders damage the way the community writes it, e.g. "8x37"
// for buckshot.
func (r Round) DamageString() string {
	if r.Pellets > 0 {
		return fmt.Sprintf("%dx%d", r.Pellets, r.Damage)
	}
	return fmt.Sprintf("%d", r.Damage)
}

// PenColor maps penetration onto the tier color used in embeds.
func (r Round) PenColor() int {
	switch {
	case r.Penetration >= 50:
		return 0xFF0000
	case r.Penetration >= 30:
		return 0xFFA500
	case r.Penetration >= 20:
		return 0xFFFF00
	default:
		return 0x00FF00
	}
}

// PenDescription is the footer text for the round's penetration tier.
func (r Round) PenDescription() string {
	switch {
	case r.Penetration >= 50:
		return "High penetration - Effective against high-tier armor"
	case r.Penetration >= 30:
		return "Medium penetration - Effective against medium-tier armor"
	case r.Penetration >= 20:
		return "Low-medium penetration - Effective against low-tier armor"
	default:
		return "Low penetration - Best used against unarmored targets"
	}
}
