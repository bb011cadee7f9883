// Package faq answers Cultist Circle help questions with canned responses
// matched by ordered keyword rules. First rule wins, so more specific
// phrasings sit above the generic ones.
package faq

import "strings"

// rule pairs the trigger terms with the canned answer. An optional guard
// requires every one of its terms to also be present.
type rule struct {
	terms  []string
	all    []string
	answer string
}

var rules = []rule{
	// Thresholds and durations
	{terms: []string{"6h", "6 h", "6-hour", "six hour"}, answer: "6h (quest/hideout items) requires ≥400k base value. At ≥400k: 25% 6h, 75% 14h (high tier loot). Going over 400k doesn't increase the chance."},
	{terms: []string{"14h", "14 h", "better loot"}, answer: "≥350k gives a chance at 14h (high tier loot). At ≥400k: 75% 14h, 25% 6h (quest/hideout items)."},
	{terms: []string{"12h", "12 h", "default"}, answer: "12h (normal loot) is the default. <350k is guaranteed 12h; 350–399k can give 12h (normal) or 14h (high tier)."},
	{terms: []string{"threshold", "thresholds", "explain thresholds"}, answer: ThresholdsTable()},

	// Base value calculation
	{terms: []string{"base value", "multiplier", "vendor"}, answer: "Base value = vendor sell price ÷ vendor trading multiplier (avoid Fence). Example: 126,000 ÷ 0.63 = 200,000."},

	// Examples
	{terms: []string{"moonshine"}, answer: "Moonshine base value: 126,000 ÷ 0.63 = 200,000. Two bottles reach 400k (6h/14h pool)."},
	{terms: []string{"vase", "antique"}, answer: "Antique Vase: 33,222 ÷ 0.49 ≈ 67,800. Five = ~339k (12h). 1 Moonshine + 3 Vases ≈ 403.4k (6h/14h pool)."},

	// Item count rule
	{terms: []string{"how many", "how much", "items", "slots"}, answer: "You can place 1–5 items in the circle. Any mix is fine as long as total base value hits your target threshold."},

	// Weapon-specific behavior and example combos
	{terms: []string{"investigating"}, all: []string{"weapon"}, answer: "We're investigating why some weapons return higher base values in the circle; weapon-specific values may apply."},
	{terms: []string{"higher"}, all: []string{"base", "weapon"}, answer: "We're investigating why some weapons return higher base values in the circle; weapon-specific values may apply."},
	{terms: []string{"weapon", "weapons", "gun"}, answer: "Weapons have special circle values; vendor-base math may not apply. Durability can affect value, so totals can differ."},
	{terms: []string{"durability"}, answer: "Item durability can influence effective circle value, especially for weapons."},
	{terms: []string{"mp5sd", "slim diary"}, answer: "Reported combo: 2× MP5SD (~$900 total from Peacekeeper) + 1× Slim Diary (~40–50k₽) can reach the 400k threshold due to weapon-specific values."},
	{terms: []string{"flash drive"}, answer: "Flash Drive may be a cheaper alternative to Slim Diary depending on market; try 2× MP5SD + Diary/Flash Drive."},
	{terms: []string{"5x mp5", "5 x mp5", "five mp5", "mp5"}, answer: "Reported combo: 5× MP5 (Peacekeeper L1) can trigger 6/14h due to special weapon circle values."},
	{terms: []string{"g28", "labs access", "labs card"}, answer: "Reported combo: 1× G28 Patrol Rifle via barter (1 Labs Access Card, ~166k from Therapist) can trigger 6/14h due to special weapon values."},

	// Calculator features
	{terms: []string{"auto select", "autoselect"}, answer: "Auto Select finds the most cost-effective combo to hit your target (e.g., ≥400k) automatically."},
	{terms: []string{"pin"}, answer: "Pin locks chosen items so Auto Select must include them in the final combination."},
	{terms: []string{"override"}, answer: "Override lets you set custom flea prices when market differs from API data."},
	{terms: []string{"share"}, answer: "Share creates a compact code to save or send your selection to others."},
	{terms: []string{"red price", "unstable"}, answer: "Red price text = unstable flea price (low offer count at capture)."},
	{terms: []string{"yellow price", "manual"}, answer: "Yellow price text = price manually overridden by you."},
	{terms: []string{"exclude", "categories"}, answer: "Exclude categories you don't want to sacrifice to narrow results."},
	{terms: []string{"sort"}, answer: "Sort items by most recently updated or best value for rubles."},

	// Pricing modes
	{terms: []string{"flea disabled", "flea off"}, answer: "PVP: Flea is disabled. Use Settings → Price Mode: Trader, then set Trader Levels to calculate trader-only prices."},
	{terms: []string{"flea"}, all: []string{"pvp"}, answer: "PVP: Flea is disabled. Use Settings → Price Mode: Trader, then set Trader Levels to calculate trader-only prices."},
	{terms: []string{"trader price", "price mode", "trader levels"}, answer: "Switch Price Mode to Trader in Settings, then pick your Trader Levels (LL1–LL4) to use trader-only prices."},
	{terms: []string{"hardcore", "l1 traders", "ll1"}, answer: "Hardcore PVP tip (LL1): 5× MP5 from Peacekeeper ≈ 400k+. Cost: $478 (~63,547₽) × 5 = $2,390 (~317,735₽)."},
	{terms: []string{"level 1"}, all: []string{"trader"}, answer: "Hardcore PVP tip (LL1): 5× MP5 from Peacekeeper ≈ 400k+. Cost: $478 (~63,547₽) × 5 = $2,390 (~317,735₽)."},
	{terms: []string{"limitation", "wip", "work in progress", "quest locked"}, answer: "Trader pricing is work-in-progress: quest-locked items are currently included."},
	{terms: []string{"mode", "pve", "pvp"}, answer: "Toggle PVE/PVP to match the correct flea market for pricing/search."},
	{terms: []string{"tips", "strategy", "optimal"}, answer: "Aim slightly over 400k, use Auto Select, pin items you own, and ensure relevant quests are active for quest rewards."},
	{terms: []string{"discord", "discord server", "discord community"}, answer: "Join our Discord server for support, updates, and community discussion. https://discord.com/invite/3dFmr5qaJK"},

	// Calculator usage
	{terms: []string{"calculator", "how to use", "use it", "help"}, answer: "Pick up to 5 items and check total base value: ≥350k for 14h (high tier) chance; ≥400k for 25% 6h (quest/hideout) / 75% 14h (high tier). Base value uses vendor price ÷ multiplier."},
}

const defaultAnswer = "Ask about thresholds (350k/400k), 6h/12h/14h chances, base value math (vendor ÷ trader multiplier), " +
	"PVE/PVP flea, item combos, Auto Select/Pin/Override/Share/Refresh, price indicators, excluding categories, sorting, tips, or Discord."

// Answer returns a short canned explanation for a help question.
func Answer(question string) string {
	q := strings.ToLower(strings.TrimSpace(question))
	for _, r := range rules {
		if !r.matches(q) {
			continue
		}
		return r.answer
	}
	return defaultAnswer
}

func (r rule) matches(q string) bool {
	hit := false
	for _, t := range r.terms {
		if strings.Contains(q, t) {
			hit = true
			break
		}
	}
	if !hit {
		return false
	}
	for _, t := range r.all {
		if !strings.Contains(q, t) {
			return false
		}
	}
	return true
}

// Color picks the embed accent from the question's topic cluster.
func Color(question string) int {
	q := strings.ToLower(question)
	for _, k := range []string{"6h", "6-hour", "14h", "12h"} {
		if strings.Contains(q, k) {
			return 0x9b59b6
		}
	}
	for _, k := range []string{"base value", "multiplier", "vendor"} {
		if strings.Contains(q, k) {
			return 0x3498db
		}
	}
	for _, k := range []string{"weapon", "mp5", "g28"} {
		if strings.Contains(q, k) {
			return 0xe67e22
		}
	}
	return 0x2ecc71
}

// ThresholdsTable is the preformatted threshold summary, fenced for
// monospace rendering.
func ThresholdsTable() string {
	return "```\n" +
		"┌─────────────────┬──────────┬─────────────────────────────────────────┐\n" +
		"│ Range (Value)   │ Time     │ Results                                 │\n" +
		"├─────────────────┼──────────┼─────────────────────────────────────────┤\n" +
		"│ 0 - 10,000      │ 2 hours  │ Normal value item                       │\n" +
		"│ 10,001 - 25,000 │ 3 hours  │ Normal value item                       │\n" +
		"│ 25,001 - 50,000 │ 4 hours  │ Normal value item                       │\n" +
		"│ 50,001 - 100,000│ 5 hours  │ Normal value item                       │\n" +
		"│ 100,001 - 200,000│ 8 hours │ Normal value item                       │\n" +
		"│ 200,001 - 350,000│ 12 hours│ Normal value item                       │\n" +
		"│ >= 350,001      │ 14 hours │ High value item                         │\n" +
		"│ High value item │ 14 hours │ High value item (14h) or 25% chance of │\n" +
		"│ >= 400,000      │ or 25%   │ Quest/Hideout items (6h)                │\n" +
		"│                 │ chance   │                                         │\n" +
		"│                 │ of 6h    │                                         │\n" +
		"└─────────────────┴──────────┴─────────────────────────────────────────┘\n" +
		"```"
}
