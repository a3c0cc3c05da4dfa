package matching

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot() []Profile {
	return []Profile{
		{
			ID:                  1,
			Username:            "DeltaAce",
			Gender:              "male",
			Title:               "Assault specialist",
			Description:         "Five years of tactical shooter coaching",
			Experience:          5000,
			Rating:              decimal.RequireFromString("4.9"),
			ReviewCount:         145,
			ResponseTimeSeconds: 30,
			IsOnline:            true,
			IsAcceptingOrders:   true,
			Skills:              []string{"assault", "strategy"},
			LowestPrice:         decimal.RequireFromString("20"),
			HasActiveService:    true,
		},
		{
			ID:                  2,
			Username:            "SniperQueen",
			Gender:              "female",
			Title:               "Precision sniper",
			Description:         "Long range coaching, patient teacher",
			Experience:          3000,
			Rating:              decimal.RequireFromString("4.8"),
			ReviewCount:         78,
			ResponseTimeSeconds: 45,
			IsOnline:            false,
			IsAcceptingOrders:   true,
			Skills:              []string{"sniper", "recon"},
			LowestPrice:         decimal.RequireFromString("25"),
			HasActiveService:    true,
		},
		{
			ID:                  3,
			Username:            "BudgetBuddy",
			Gender:              "male",
			Title:               "Casual duo partner",
			Description:         "Relaxed games, good company",
			Experience:          800,
			Rating:              decimal.RequireFromString("4.2"),
			ReviewCount:         12,
			ResponseTimeSeconds: 120,
			IsOnline:            true,
			IsAcceptingOrders:   false,
			Skills:              []string{"assault"},
			LowestPrice:         decimal.RequireFromString("30"),
			HasActiveService:    true,
		},
	}
}

func TestSearchDefaultSortIsRatingDescending(t *testing.T) {
	result := Search(snapshot(), Filters{}, 1, 20)

	require.Len(t, result.Gamers, 3)
	assert.Equal(t, int64(1), result.Gamers[0].ID)
	assert.Equal(t, int64(2), result.Gamers[1].ID)
	assert.Equal(t, int64(3), result.Gamers[2].ID)
}

func TestSearchSortByPriceAscending(t *testing.T) {
	result := Search(snapshot(), Filters{SortBy: SortByPrice, SortOrder: SortAsc}, 1, 20)

	require.Len(t, result.Gamers, 3)
	assert.Equal(t, "20", result.Gamers[0].LowestPrice.String())
	assert.Equal(t, "25", result.Gamers[1].LowestPrice.String())
	assert.Equal(t, "30", result.Gamers[2].LowestPrice.String())
}

func TestSearchSortByResponseTimeDefaultsAscending(t *testing.T) {
	result := Search(snapshot(), Filters{SortBy: SortByResponseTime}, 1, 20)

	require.Len(t, result.Gamers, 3)
	assert.Equal(t, int32(30), result.Gamers[0].ResponseTimeSeconds)
	assert.Equal(t, int32(120), result.Gamers[2].ResponseTimeSeconds)
}

func TestSearchKeywordIsCaseInsensitive(t *testing.T) {
	result := Search(snapshot(), Filters{Keywords: "sniper"}, 1, 20)

	require.Equal(t, 1, result.Total)
	assert.Equal(t, "SniperQueen", result.Gamers[0].Username)
}

func TestSearchFiltersBySkillIntersection(t *testing.T) {
	result := Search(snapshot(), Filters{Skills: []string{"Assault"}}, 1, 20)

	require.Equal(t, 2, result.Total)
	for _, g := range result.Gamers {
		assert.Contains(t, g.Skills, "assault")
	}
}

func TestSearchFiltersByPriceRange(t *testing.T) {
	result := Search(snapshot(), Filters{
		PriceRange: &PriceRange{
			Min: decimal.RequireFromString("22"),
			Max: decimal.RequireFromString("28"),
		},
	}, 1, 20)

	require.Equal(t, 1, result.Total)
	assert.Equal(t, int64(2), result.Gamers[0].ID)
}

func TestSearchPriceRangeWithoutMaxIsOpenEnded(t *testing.T) {
	result := Search(snapshot(), Filters{
		PriceRange: &PriceRange{
			Min: decimal.RequireFromString("22"),
		},
	}, 1, 20)

	require.Equal(t, 2, result.Total)
	for _, g := range result.Gamers {
		assert.True(t, g.LowestPrice.GreaterThanOrEqual(decimal.RequireFromString("22")))
	}
}

func TestSearchFiltersByMinRatingGenderAndOnline(t *testing.T) {
	minRating := decimal.RequireFromString("4.5")
	online := true

	result := Search(snapshot(), Filters{
		MinRating: &minRating,
		Gender:    "male",
		IsOnline:  &online,
	}, 1, 20)

	require.Equal(t, 1, result.Total)
	assert.Equal(t, int64(1), result.Gamers[0].ID)
}

func TestSearchTieBreaksByReviewCountThenID(t *testing.T) {
	profiles := []Profile{
		{ID: 9, Rating: decimal.RequireFromString("4.5"), ReviewCount: 10},
		{ID: 4, Rating: decimal.RequireFromString("4.5"), ReviewCount: 10},
		{ID: 7, Rating: decimal.RequireFromString("4.5"), ReviewCount: 50},
	}

	result := Search(profiles, Filters{}, 1, 20)

	require.Len(t, result.Gamers, 3)
	assert.Equal(t, int64(7), result.Gamers[0].ID)
	assert.Equal(t, int64(4), result.Gamers[1].ID)
	assert.Equal(t, int64(9), result.Gamers[2].ID)
}

func TestSearchPagination(t *testing.T) {
	result := Search(snapshot(), Filters{}, 2, 2)

	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 2, result.TotalPages)
	require.Len(t, result.Gamers, 1)
	assert.Equal(t, int64(3), result.Gamers[0].ID)
}

func TestSearchPageBeyondRangeReturnsEmptySlice(t *testing.T) {
	result := Search(snapshot(), Filters{}, 5, 2)

	assert.Equal(t, 3, result.Total)
	assert.Empty(t, result.Gamers)
}
