package handlers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarsService/internal/domain"
)

func TestCarFilterFromQuery(t *testing.T) {
	query := url.Values{}
	query.Set("search", "corolla")
	query.Set("mark", "Toyota")
	query.Set("year_min", "2015")
	query.Set("year_max", "2020")
	query.Set("price_min", "10000")
	query.Set("price_max", "50000.50")
	query.Set("sort_by", "-price")

	filter := CarFilterFromQuery(query, 7)

	assert.Equal(t, int64(7), filter.UserID)
	require.NotNil(t, filter.Search)
	assert.Equal(t, "corolla", *filter.Search)
	require.NotNil(t, filter.Mark)
	assert.Equal(t, "Toyota", *filter.Mark)
	assert.Nil(t, filter.Model)
	require.NotNil(t, filter.YearMin)
	assert.Equal(t, 2015, *filter.YearMin)
	require.NotNil(t, filter.PriceMax)
	assert.Equal(t, 50000.50, *filter.PriceMax)
	assert.Equal(t, domain.CarSort{Field: domain.SortByPrice, Desc: true}, filter.Sort)
}

func TestCarFilterFromQuery_MalformedNumbersIgnored(t *testing.T) {
	// Существующие клиенты шлют мусор в числовых фильтрах и ожидают
	// полную выборку, а не ошибку
	query := url.Values{}
	query.Set("year_min", "abc")
	query.Set("year_max", "20.20")
	query.Set("price_min", "dear")
	query.Set("sort_by", "unknown")

	filter := CarFilterFromQuery(query, 1)

	assert.Nil(t, filter.YearMin)
	assert.Nil(t, filter.YearMax)
	assert.Nil(t, filter.PriceMin)
	assert.Equal(t, domain.DefaultCarSort, filter.Sort)
}

func TestCarFilterFromQuery_EmptyQuery(t *testing.T) {
	filter := CarFilterFromQuery(url.Values{}, 1)

	assert.Nil(t, filter.Search)
	assert.Nil(t, filter.Mark)
	assert.Nil(t, filter.Fuel)
	assert.Nil(t, filter.Province)
	assert.Equal(t, domain.DefaultCarSort, filter.Sort)
}

func TestPageFromQuery(t *testing.T) {
	tests := []struct {
		name         string
		page         string
		pageSize     string
		wantPage     uint64
		wantPageSize uint64
	}{
		{"defaults", "", "", 1, domain.DefaultPageSize},
		{"explicit values", "3", "25", 3, 25},
		{"zero falls back", "0", "0", 1, domain.DefaultPageSize},
		{"garbage falls back", "abc", "-5", 1, domain.DefaultPageSize},
		{"page size capped", "1", "1000", 1, domain.MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := url.Values{}
			if tt.page != "" {
				query.Set("page", tt.page)
			}
			if tt.pageSize != "" {
				query.Set("page_size", tt.pageSize)
			}

			page, pageSize := PageFromQuery(query)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPageSize, pageSize)
		})
	}
}
