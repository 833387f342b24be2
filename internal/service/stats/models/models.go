package models

import "github.com/m04kA/SMC-CarsService/internal/domain"

// FuelCount количество объявлений по виду топлива
type FuelCount struct {
	Fuel  string `json:"fuel"`
	Count int64  `json:"count"`
}

// MarkCount количество объявлений по марке
type MarkCount struct {
	Mark  string `json:"mark"`
	Count int64  `json:"count"`
}

// ProvinceCount количество объявлений по воеводству
type ProvinceCount struct {
	Province string `json:"province"`
	Count    int64  `json:"count"`
}

// PricePoint точка ценового тренда.
// Ключ называется month по историческим причинам, значение - год;
// существующие графики на фронтенде привязаны к этому имени.
type PricePoint struct {
	Month    string  `json:"month"`
	AvgPrice float64 `json:"avg_price"`
}

// StatisticsResponse сводная статистика по объявлениям пользователя
type StatisticsResponse struct {
	TotalCars      int64           `json:"total_cars"`
	AvgPrice       float64         `json:"avg_price"`
	MaxPrice       float64         `json:"max_price"`
	MinPrice       float64         `json:"min_price"`
	AvgYear        float64         `json:"avg_year"`
	AvgMileage     float64         `json:"avg_mileage"`
	CarsByFuel     []FuelCount     `json:"cars_by_fuel"`
	CarsByMark     []MarkCount     `json:"cars_by_mark"`
	CarsByProvince []ProvinceCount `json:"cars_by_province"`
	PriceTrends    []PricePoint    `json:"price_trends"`
}

// FuelCountsFromDomain конвертирует счетчики топлива в DTO
func FuelCountsFromDomain(counts []domain.FieldCount) []FuelCount {
	result := make([]FuelCount, 0, len(counts))
	for _, c := range counts {
		result = append(result, FuelCount{Fuel: c.Value, Count: c.Count})
	}
	return result
}

// MarkCountsFromDomain конвертирует счетчики марок в DTO
func MarkCountsFromDomain(counts []domain.FieldCount) []MarkCount {
	result := make([]MarkCount, 0, len(counts))
	for _, c := range counts {
		result = append(result, MarkCount{Mark: c.Value, Count: c.Count})
	}
	return result
}

// ProvinceCountsFromDomain конвертирует счетчики воеводств в DTO
func ProvinceCountsFromDomain(counts []domain.FieldCount) []ProvinceCount {
	result := make([]ProvinceCount, 0, len(counts))
	for _, c := range counts {
		result = append(result, ProvinceCount{Province: c.Value, Count: c.Count})
	}
	return result
}
