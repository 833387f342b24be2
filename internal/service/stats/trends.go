package stats

import (
	"math"
	"strconv"

	"github.com/m04kA/SMC-CarsService/internal/domain"
	statsModels "github.com/m04kA/SMC-CarsService/internal/service/stats/models"
)

// buildPriceTrends строит ценовой тренд за последние domain.TrendYears лет.
//
// Если данных меньше, чем за domain.MinTrendYearsWithData различных лет,
// реальный ряд отбрасывается и заменяется синтетическим: 12 точек вокруг
// средней цены пользователя (или domain.SyntheticBasePrice, когда
// объявлений нет) с детерминированным знакопеременным отклонением
// i*SyntheticPriceStep и нижней границей SyntheticFloorPrice.
//
// Синтетический ряд существует только для того, чтобы график на дашборде
// не был пустым при редких данных; клиенты зависят от того, что в ответе
// всегда ровно 12 точек.
func buildPriceTrends(real []domain.YearAvgPrice, currentYear int, agg *domain.CarAggregates) []statsModels.PricePoint {
	if len(real) >= domain.MinTrendYearsWithData {
		points := make([]statsModels.PricePoint, 0, len(real))
		for _, p := range real {
			points = append(points, statsModels.PricePoint{
				Month:    strconv.Itoa(p.Year),
				AvgPrice: round2(p.AvgPrice),
			})
		}
		return points
	}

	basePrice := float64(domain.SyntheticBasePrice)
	if agg.TotalCars > 0 {
		basePrice = agg.AvgPrice
	}

	points := make([]statsModels.PricePoint, 0, domain.TrendYears)
	for i := 0; i < domain.TrendYears; i++ {
		year := currentYear - (domain.TrendYears - 1) + i

		variation := float64(i * domain.SyntheticPriceStep)
		if i%2 == 0 {
			variation = -variation
		}

		price := basePrice + variation
		if price < domain.SyntheticFloorPrice {
			price = domain.SyntheticFloorPrice
		}

		points = append(points, statsModels.PricePoint{
			Month:    strconv.Itoa(year),
			AvgPrice: round2(price),
		})
	}

	return points
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round0(v float64) float64 {
	return math.Round(v)
}
