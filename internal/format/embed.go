// Package format builds the presentation objects shared by the CLI and the
// Discord front end: a transport-neutral Embed that each surface renders
// its own way.
package format

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cultistcircle/circlebot/internal/ammo"
	"github.com/cultistcircle/circlebot/internal/faq"
	"github.com/cultistcircle/circlebot/internal/models"
	"github.com/cultistcircle/circlebot/internal/selector"
)

// Embed colors shared across builders.
const (
	colorMet     = 0x2ecc71
	colorShort   = 0xe67e22
	colorNeutral = 0x2b2d31
)

// maxFieldLen is the per-field character limit on the chat transport;
// selection lists longer than this are chunked into several fields.
const maxFieldLen = 1000

// Field is one labelled value inside an Embed.
type Field struct {
	Name   string
	Value  string
	Inline bool
}

// Embed is a transport-neutral presentation object.
type Embed struct {
	Title     string
	URL       string
	Thumbnail string
	Descr     string
	Color     int
	Fields    []Field
	Footer    string
}

var printer = message.NewPrinter(language.English)

func roubles(n int) string {
	return printer.Sprintf("%d₽", n)
}

// Selection builds the auto-select result embed: status line, summary
// fields, and the selection list chunked to the field limit.
func Selection(sel *selector.Selection, req selector.Request) *Embed {
	met := sel.TotalValue >= req.Threshold
	e := &Embed{
		Title: "🕯️ Cultist Auto-Select",
		Descr: "✅ Threshold met",
		Color: colorMet,
	}
	if !met {
		e.Descr = "⚠️ Threshold not met"
		e.Color = colorShort
	}

	e.Fields = append(e.Fields,
		Field{Name: "Mode", Value: req.Regime.Label(), Inline: true},
		Field{Name: "Threshold", Value: roubles(req.Threshold), Inline: true},
		Field{Name: "Max items", Value: fmt.Sprintf("%d", req.MaxItems), Inline: true},
		Field{Name: "Total Value", Value: roubles(sel.TotalValue), Inline: true},
		Field{Name: "Total Cost", Value: roubles(sel.TotalCost), Inline: true},
	)

	var chunk []byte
	flush := func() {
		if len(chunk) > 0 {
			e.Fields = append(e.Fields, Field{Name: "Selection", Value: string(chunk)})
			chunk = chunk[:0]
		}
	}
	for _, line := range sel.Lines {
		if len(chunk)+len(line)+1 > maxFieldLen && len(chunk) > 0 {
			flush()
		}
		if len(chunk) > 0 {
			chunk = append(chunk, '\n')
		}
		chunk = append(chunk, line...)
	}
	flush()

	e.Footer = "Data via Tarkov.dev"
	return e
}

// Price builds the item price embed for the given regime.
func Price(it *models.Item, regime models.Regime, now time.Time) *Embed {
	e := &Embed{
		Title:     it.DisplayName(),
		URL:       it.Link,
		Thumbnail: it.GridImageLink,
		Color:     colorNeutral,
	}

	fleaPrice := it.FleaPrice
	if regime == models.RegimeFlea {
		fleaPrice = it.PvePrice
	}
	if fleaPrice > 0 {
		e.Fields = append(e.Fields, Field{Name: "Flea Market Price", Value: "**" + roubles(fleaPrice) + "**", Inline: true})
	}
	if it.TraderPrice > 0 {
		e.Fields = append(e.Fields, Field{Name: "Trader Buying Price", Value: "**" + roubles(it.TraderPrice) + "**", Inline: true})
	}

	// Price per slot from the regime's flea price; trader price stands in
	// when PvP flea is unavailable.
	pps := fleaPrice
	if pps == 0 && regime == models.RegimeTrader {
		pps = it.TraderPrice
	}
	if slots := it.Slots(); pps > 0 && slots > 0 {
		perSlot := (pps + slots/2) / slots
		e.Fields = append(e.Fields, Field{Name: "Price Per Slot", Value: roubles(perSlot), Inline: true})
	}

	if it.BasePrice > 0 {
		e.Fields = append(e.Fields, Field{Name: "🟡 Base Price", Value: "**" + roubles(it.BasePrice) + "**", Inline: true})
	}
	if it.Avg24hPrice > 0 {
		e.Fields = append(e.Fields, Field{Name: "24 Hour Price AVG", Value: roubles(it.Avg24hPrice), Inline: true})
	}

	trader := it.TraderName
	if trader == "" {
		trader = "Unknown Trader"
	}
	e.Fields = append(e.Fields, Field{Name: "Trader to sell to", Value: trader, Inline: true})

	e.Footer = fmt.Sprintf("Last Updated: %s - Data provided by Tarkov.dev", sinceLabel(it, regime, now))
	return e
}

// sinceLabel renders how long ago the regime's price was captured, falling
// back to the other regime's timestamp when missing.
func sinceLabel(it *models.Item, regime models.Regime, now time.Time) string {
	at := it.UpdatedAt(regime)
	if at.IsZero() {
		other := models.RegimeTrader
		if regime == models.RegimeTrader {
			other = models.RegimeFlea
		}
		at = it.UpdatedAt(other)
	}
	if at.IsZero() {
		return "N/A"
	}
	mins := int(now.Sub(at).Minutes())
	if mins < 0 {
		mins = 0
	}
	return AgeString(mins) + " ago"
}

// AgeString formats minutes as 1d3h, 2h5m or 45m.
func AgeString(mins int) string {
	if days := mins / (24 * 60); days > 0 {
		return fmt.Sprintf("%dd%dh", days, (mins/60)%24)
	}
	hours := mins / 60
	if hours > 0 {
		return fmt.Sprintf("%dh%dm", hours, mins%60)
	}
	return fmt.Sprintf("%dm", mins)
}

// BaseValue builds the minimal base-value embed.
func BaseValue(it *models.Item) *Embed {
	e := &Embed{
		Title:     it.DisplayName(),
		URL:       it.Link,
		Thumbnail: it.GridImageLink,
		Color:     colorNeutral,
	}
	val := "N/A"
	if it.BasePrice > 0 {
		val = "**" + roubles(it.BasePrice) + "**"
	}
	e.Fields = append(e.Fields, Field{Name: "Base Value", Value: val})
	return e
}

// Ammo builds the ammunition info embed, expanding multi-pellet loads into
// per-pellet and total damage fields.
func Ammo(name string, r ammo.Round) *Embed {
	e := &Embed{
		Title: name,
		Color: r.PenColor(),
	}
	e.Fields = append(e.Fields, Field{Name: "Category", Value: r.Category})

	if r.Pellets > 0 {
		e.Fields = append(e.Fields,
			Field{Name: "Damage Per Pellet", Value: fmt.Sprintf("%d", r.Damage), Inline: true},
			Field{Name: "Pellet Count", Value: fmt.Sprintf("%d", r.Pellets), Inline: true},
			Field{Name: "Total Damage", Value: fmt.Sprintf("%d", r.TotalDamage()), Inline: true},
		)
	} else {
		e.Fields = append(e.Fields, Field{Name: "Damage", Value: r.DamageString(), Inline: true})
	}
	e.Fields = append(e.Fields, Field{Name: "Penetration", Value: fmt.Sprintf("%d", r.Penetration), Inline: true})
	e.Footer = r.PenDescription()
	return e
}

// AmmoNotFound is the error embed for an unmatched ammo query.
func AmmoNotFound(query string) *Embed {
	return &Embed{
		Title: "Ammo Not Found",
		Descr: fmt.Sprintf("No ammunition found matching '%s'", query),
		Color: 0xFF0000,
	}
}

// Help builds the Cultist Circle help embed.
func Help(question string) *Embed {
	return &Embed{
		Title: "🕯️ Cultist Circle Help",
		Descr: faq.Answer(question),
		Color: faq.Color(question),
		Fields: []Field{
			{Name: "Question", Value: fmt.Sprintf("“%s”", question)},
			{Name: "Loot tiers", Value: "- 12h — normal loot\n- 14h — high tier loot\n- 6h — quest/hideout items"},
		},
		Footer: "Cultist Calculator • Help",
	}
}
