package models

import "time"

// Item is a single catalog record as served by the price worker API.
// Price fields are roubles; zero means the field was absent upstream.
type Item struct {
	ID             string `json:"id,omitempty"`
	Name           string `json:"name"`
	ShortName      string `json:"shortName,omitempty"`
	BasePrice      int    `json:"basePrice"`
	FleaPrice      int    `json:"price,omitempty"`
	PvePrice       int    `json:"pvePrice,omitempty"`
	Avg24hPrice    int    `json:"avg24hPrice,omitempty"`
	TraderBuyPrice int    `json:"traderBuyPrice,omitempty"`
	TraderBuyName  string `json:"traderBuyName,omitempty"`
	BuyLimit       int    `json:"buyLimit,omitempty"`
	TraderPrice    int    `json:"traderSellPrice,omitempty"`
	TraderName     string `json:"traderSellName,omitempty"`
	Link           string `json:"link,omitempty"`
	GridImageLink  string `json:"gridImageLink,omitempty"`
	Width          int    `json:"width,omitempty"`
	Height         int    `json:"height,omitempty"`
	Updated        string `json:"updated,omitempty"`
	PveUpdated     string `json:"pveUpdated,omitempty"`
}

// DisplayName prefers the full name, falls back to the short name.
func (it *Item) DisplayName() string {
	if it.Name != "" {
		return it.Name
	}
	if it.ShortName != "" {
		return it.ShortName
	}
	return "Unknown"
}

// Slots returns the grid footprint, or 0 if dimensions are missing.
func (it *Item) Slots() int {
	if it.Width <= 0 || it.Height <= 0 {
		return 0
	}
	return it.Width * it.Height
}

// UpdatedAt parses the price timestamp for the given regime.
// Returns the zero time when the field is absent or malformed.
func (it *Item) UpdatedAt(regime Regime) time.Time {
	raw := it.Updated
	if regime == RegimeFlea {
		raw = it.PveUpdated
	}
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Catalog is the full item list fetched from the price worker.
type Catalog struct {
	Items     []Item    `json:"items"`
	FetchedAt time.Time `json:"fetchedAt,omitempty"`
}
