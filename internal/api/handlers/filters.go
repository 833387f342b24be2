package handlers

import (
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-CarsService/internal/domain"
)

// CarFilterFromQuery собирает domain.CarFilter из query-параметров.
// Нечисловые значения числовых фильтров молча игнорируются: существующие
// клиенты шлют мусор в year_min/price_max и ожидают полную выборку,
// а не ошибку.
func CarFilterFromQuery(query url.Values, userID int64) domain.CarFilter {
	filter := domain.CarFilter{
		UserID: userID,
		Sort:   domain.ParseCarSort(query.Get("sort_by")),
	}

	filter.Search = textParam(query, "search")
	filter.Mark = textParam(query, "mark")
	filter.Model = textParam(query, "model")
	filter.Fuel = textParam(query, "fuel")
	filter.Province = textParam(query, "province")

	filter.YearMin = intParam(query, "year_min")
	filter.YearMax = intParam(query, "year_max")
	filter.PriceMin = floatParam(query, "price_min")
	filter.PriceMax = floatParam(query, "price_max")

	return filter
}

// PageFromQuery извлекает номер страницы и ее размер.
// Некорректные значения заменяются значениями по умолчанию.
func PageFromQuery(query url.Values) (page, pageSize uint64) {
	page = uintParam(query, "page", 1)
	pageSize = uintParam(query, "page_size", domain.DefaultPageSize)

	if pageSize > domain.MaxPageSize {
		pageSize = domain.MaxPageSize
	}
	return page, pageSize
}

func textParam(query url.Values, name string) *string {
	value := query.Get(name)
	if value == "" {
		return nil
	}
	return &value
}

func intParam(query url.Values, name string) *int {
	raw := query.Get(name)
	if raw == "" {
		return nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &value
}

func floatParam(query url.Values, name string) *float64 {
	raw := query.Get(name)
	if raw == "" {
		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &value
}

func uintParam(query url.Values, name string, fallback uint64) uint64 {
	raw := query.Get(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		return fallback
	}
	return value
}
