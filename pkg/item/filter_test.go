package item

import (
	"testing"

	"github.com/Om136/rentals/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterFromQueryDefaults(t *testing.T) {
	filter := FilterFromQuery(map[string]string{})

	assert.Empty(t, filter.SearchTerm)
	assert.Empty(t, filter.Categories)
	assert.Empty(t, filter.Status)
	assert.Nil(t, filter.Lng)
	assert.Nil(t, filter.Lat)
	require.NotNil(t, filter.MaxDistance)
	assert.Equal(t, domain.DefaultMaxDistance, *filter.MaxDistance)
	assert.Equal(t, "created_at", filter.SortBy)
	assert.Equal(t, "desc", filter.SortOrder)
	assert.Nil(t, filter.MinPrice)
	assert.Nil(t, filter.MaxPrice)
	assert.Nil(t, filter.IsRental)
}

func TestFilterFromQueryCategoriesSplit(t *testing.T) {
	filter := FilterFromQuery(map[string]string{
		"categories": "Tools, Electronics,, ,Home",
	})

	assert.Equal(t, []string{"Tools", "Electronics", "Home"}, filter.Categories)
}

func TestFilterFromQueryCoordinates(t *testing.T) {
	filter := FilterFromQuery(map[string]string{
		"lng":         "77.209",
		"lat":         "28.6139",
		"maxDistance": "500",
	})

	require.NotNil(t, filter.Lng)
	require.NotNil(t, filter.Lat)
	assert.Equal(t, 77.209, *filter.Lng)
	assert.Equal(t, 28.6139, *filter.Lat)
	require.NotNil(t, filter.MaxDistance)
	assert.Equal(t, 500.0, *filter.MaxDistance)
	assert.True(t, filter.HasOrigin())
}

func TestFilterFromQueryBadNumbersLeftUnset(t *testing.T) {
	filter := FilterFromQuery(map[string]string{
		"lng":         "east",
		"lat":         "28.6139",
		"maxDistance": "close",
		"minPrice":    "cheap",
	})

	assert.Nil(t, filter.Lng)
	require.NotNil(t, filter.Lat)
	assert.False(t, filter.HasOrigin())
	require.NotNil(t, filter.MaxDistance)
	assert.Equal(t, domain.DefaultMaxDistance, *filter.MaxDistance)
	assert.Nil(t, filter.MinPrice)
}

func TestFilterFromQueryIsRental(t *testing.T) {
	cases := map[string]*bool{
		"true":  boolPtr(true),
		"false": boolPtr(false),
		"yes":   nil,
		"1":     nil,
		"":      nil,
	}
	for raw, want := range cases {
		filter := FilterFromQuery(map[string]string{"isRental": raw})
		if want == nil {
			assert.Nil(t, filter.IsRental, "isRental=%q", raw)
		} else {
			require.NotNil(t, filter.IsRental, "isRental=%q", raw)
			assert.Equal(t, *want, *filter.IsRental)
		}
	}
}

func TestFilterFromQuerySortOverrides(t *testing.T) {
	filter := FilterFromQuery(map[string]string{
		"sortBy":    "nearest",
		"sortOrder": "asc",
	})

	assert.Equal(t, "nearest", filter.SortBy)
	assert.Equal(t, "asc", filter.SortOrder)
}
