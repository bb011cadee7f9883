package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cultistcircle/circlebot/internal/models"
)

func searchCatalog() *models.Catalog {
	return &models.Catalog{Items: []models.Item{
		{Name: "Physical Bitcoin", ShortName: "0.2BTC", BasePrice: 100000},
		{Name: "Bottle of Fierce Hatchling moonshine", ShortName: "Moonshine", BasePrice: 200000},
		{Name: "Golden neck chain", ShortName: "GoldChain", BasePrice: 22222},
		{Name: "Antique vase", ShortName: "Vase", BasePrice: 33222},
	}}
}

func TestFindItemExactName(t *testing.T) {
	for _, m := range []Matcher{FuzzyMatcher{}, SubstringMatcher{}} {
		it := FindItem(searchCatalog(), "Physical Bitcoin", m)
		require.NotNil(t, it, "%T found nothing", m)
		assert.Equal(t, "Physical Bitcoin", it.Name)
	}
}

func TestFindItemShortName(t *testing.T) {
	for _, m := range []Matcher{FuzzyMatcher{}, SubstringMatcher{}} {
		it := FindItem(searchCatalog(), "moonshine", m)
		require.NotNil(t, it, "%T found nothing", m)
		assert.Equal(t, "Bottle of Fierce Hatchling moonshine", it.Name)
	}
}

func TestFindItemPartial(t *testing.T) {
	it := FindItem(searchCatalog(), "vase", SubstringMatcher{})
	require.NotNil(t, it)
	assert.Equal(t, "Antique vase", it.Name)
}

func TestFindItemFuzzyTypo(t *testing.T) {
	it := FindItem(searchCatalog(), "moonshin", FuzzyMatcher{})
	require.NotNil(t, it)
	assert.Equal(t, "Bottle of Fierce Hatchling moonshine", it.Name)
}

func TestFuzzyMatcherSubsequenceOnly(t *testing.T) {
	// Transposed characters break the subsequence requirement; the ranker
	// returns nothing rather than a near hit.
	it := FindItem(searchCatalog(), "bitcion", FuzzyMatcher{})
	assert.Nil(t, it)

	// A dropped character still ranks.
	it = FindItem(searchCatalog(), "physical bitcoi", FuzzyMatcher{})
	require.NotNil(t, it)
	assert.Equal(t, "Physical Bitcoin", it.Name)
}

func TestFindItemNoMatch(t *testing.T) {
	for _, m := range []Matcher{FuzzyMatcher{}, SubstringMatcher{}} {
		assert.Nil(t, FindItem(searchCatalog(), "zzzzqqqq", m), "%T matched garbage", m)
	}
}

func TestFindItemEmptyInputs(t *testing.T) {
	assert.Nil(t, FindItem(nil, "bitcoin", FuzzyMatcher{}))
	assert.Nil(t, FindItem(&models.Catalog{}, "bitcoin", FuzzyMatcher{}))
	assert.Nil(t, FindItem(searchCatalog(), "   ", FuzzyMatcher{}))
}

func TestSubstringMatcherPrefersExact(t *testing.T) {
	name, score := SubstringMatcher{}.Match("vase", []string{"antique vase", "vase"})
	assert.Equal(t, "vase", name)
	assert.Equal(t, 100, score)
}
