package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cultistcircle/circlebot/internal/models"
)

func TestBossChangesEmbedNewestThree(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	changes := []models.BossChange{
		{Boss: "reshala", Map: "customs", Field: "chance", NewValue: "10", Timestamp: now.Add(-30 * time.Second).UnixMilli()},
		{Boss: "killa", GameMode: "regular", Map: "interchange", Field: "chance", OldValue: "15", NewValue: "20", Timestamp: now.Add(-90 * time.Minute).UnixMilli()},
		{Boss: "tagilla", GameMode: "pve", Map: "factory", Field: "chance", OldValue: "30", NewValue: "35", Timestamp: now.Add(-26 * time.Hour).UnixMilli()},
		{Boss: "shturman", GameMode: "regular", Map: "woods", Field: "chance", OldValue: "10", NewValue: "25", Timestamp: now.Add(-48 * time.Hour).UnixMilli()},
	}

	e := BossChanges(changes, now)
	assert.Equal(t, "Latest Boss Changes", e.Title)
	assert.Equal(t, 0x9b59b6, e.Color)
	assert.Equal(t, "Source: Cultist Circle", e.Footer)
	require.Len(t, e.Fields, 3, "only the newest three entries are shown")

	assert.Equal(t, "Reshala — Customs (regular)", e.Fields[0].Name)
	assert.Equal(t, "chance: ? → 10\njust now", e.Fields[0].Value)

	assert.Equal(t, "Killa — Interchange (regular)", e.Fields[1].Name)
	assert.Equal(t, "chance: 15 → 20\n1h30m ago", e.Fields[1].Value)

	assert.Equal(t, "Tagilla — Factory (pve)", e.Fields[2].Name)
	assert.Contains(t, e.Fields[2].Value, "1d2h ago")
}

func TestBossChangesEmbedDefaults(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	e := BossChanges([]models.BossChange{
		{Timestamp: now.Add(-10 * time.Second).UnixMilli()},
	}, now)

	require.Len(t, e.Fields, 1)
	assert.Equal(t, "Unknown — Unknown (regular)", e.Fields[0].Name)
	assert.Equal(t, "field: ? → ?\njust now", e.Fields[0].Value)
}

func TestBossChangesEmbedMissingTimestamp(t *testing.T) {
	e := BossChanges([]models.BossChange{
		{Boss: "killa", Map: "interchange", Field: "chance", OldValue: "1", NewValue: "2"},
	}, time.Now().UTC())

	require.Len(t, e.Fields, 1)
	assert.Contains(t, e.Fields[0].Value, "N/A")
}
