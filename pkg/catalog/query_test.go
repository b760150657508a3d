package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryValuesDefaults(t *testing.T) {
	params := Query{}.Values()

	assert.Equal(t, "1", params.Get("page"))
	assert.Equal(t, "8", params.Get("limit"))
	assert.Len(t, params, 2, "empty filters must be omitted")
}

func TestQueryValuesOmitsEmptyFilters(t *testing.T) {
	params := Query{
		Search:   "  cadeira  ",
		MaxPrice: "200",
		Page:     3,
	}.Values()

	assert.Equal(t, "cadeira", params.Get("search"))
	assert.Equal(t, "200", params.Get("maxPrice"))
	assert.Equal(t, "3", params.Get("page"))
	assert.False(t, params.Has("minPrice"))
	assert.False(t, params.Has("hasDiscount"))
	assert.False(t, params.Has("material"))
}

func TestQueryValuesAllFilters(t *testing.T) {
	params := Query{
		Search:      "mesa",
		MinPrice:    "50",
		MaxPrice:    "500",
		HasDiscount: "true",
		Material:    "wood",
		Page:        2,
		Limit:       16,
	}.Values()

	assert.Equal(t, "mesa", params.Get("search"))
	assert.Equal(t, "50", params.Get("minPrice"))
	assert.Equal(t, "500", params.Get("maxPrice"))
	assert.Equal(t, "true", params.Get("hasDiscount"))
	assert.Equal(t, "wood", params.Get("material"))
	assert.Equal(t, "2", params.Get("page"))
	assert.Equal(t, "16", params.Get("limit"))
}

func TestQueryValuesBlankSearchOmitted(t *testing.T) {
	params := Query{Search: "   "}.Values()
	assert.False(t, params.Has("search"))
}
