package format

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cultistcircle/circlebot/internal/models"
)

// maxBossChanges caps the feed embed at the newest entries.
const maxBossChanges = 3

var titler = cases.Title(language.English)

// BossChanges builds the boss spawn change embed from a newest-first list,
// showing at most the three latest entries.
func BossChanges(changes []models.BossChange, now time.Time) *Embed {
	e := &Embed{
		Title: "Latest Boss Changes",
		Descr: "Recent updates to boss spawn settings",
		Color: 0x9b59b6,
	}

	n := len(changes)
	if n > maxBossChanges {
		n = maxBossChanges
	}
	for _, ch := range changes[:n] {
		boss := titler.String(orUnknown(ch.Boss))
		mapName := titler.String(orUnknown(ch.Map))
		mode := ch.GameMode
		if mode == "" {
			mode = "regular"
		}
		field := ch.Field
		if field == "" {
			field = "field"
		}

		e.Fields = append(e.Fields, Field{
			Name: fmt.Sprintf("%s — %s (%s)", boss, mapName, mode),
			Value: fmt.Sprintf("%s: %s → %s\n%s",
				field, orQuestion(ch.OldValue), orQuestion(ch.NewValue), sinceMillis(ch.Timestamp, now)),
		})
	}

	e.Footer = "Source: Cultist Circle"
	return e
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

func orQuestion(s models.FlexString) string {
	if s == "" {
		return "?"
	}
	return string(s)
}

// sinceMillis renders a millisecond timestamp as a relative age label.
func sinceMillis(ms int64, now time.Time) string {
	if ms <= 0 {
		return "N/A"
	}
	mins := int(now.Sub(time.UnixMilli(ms)).Minutes())
	if mins < 1 {
		return "just now"
	}
	return AgeString(mins) + " ago"
}
