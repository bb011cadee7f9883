package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/cultistcircle/circlebot/internal/models"
)

// BossChanges fetches the boss spawn change feed and returns it newest
// first. The feed is small and volatile, so it is never cached.
func (c *Client) BossChanges(ctx context.Context) ([]models.BossChange, error) {
	raw, err := c.fetch(ctx, c.bossURL)
	if err != nil {
		return nil, err
	}

	var changes []models.BossChange
	if err := json.Unmarshal(raw, &changes); err != nil {
		return nil, fmt.Errorf("decoding boss changes: %w", err)
	}

	sort.Slice(changes, func(i, j int) bool {
		return changes[i].Timestamp > changes[j].Timestamp
	})
	c.log.Info("fetched boss changes", "entries", len(changes))
	return changes, nil
}
