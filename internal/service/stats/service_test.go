package stats

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarsService/internal/domain"
	"github.com/m04kA/SMC-CarsService/internal/service/stats/models"
)

type fakeStatsRepo struct {
	agg    *domain.CarAggregates
	counts map[string][]domain.FieldCount
	trend  []domain.YearAvgPrice

	countLimits map[string]uint64
}

func (f *fakeStatsRepo) Aggregates(_ context.Context, _ int64) (*domain.CarAggregates, error) {
	return f.agg, nil
}

func (f *fakeStatsRepo) CountByField(_ context.Context, _ int64, field string, limit uint64) ([]domain.FieldCount, error) {
	if f.countLimits == nil {
		f.countLimits = make(map[string]uint64)
	}
	f.countLimits[field] = limit
	return f.counts[field], nil
}

func (f *fakeStatsRepo) YearlyAvgPrice(_ context.Context, _ int64, _, _ int) ([]domain.YearAvgPrice, error) {
	return f.trend, nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeStatsRepo, year int) *Service {
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = fixedClock{now: time.Date(year, time.June, 15, 12, 0, 0, 0, time.UTC)}
	return svc
}

func TestGetStatistics_AggregatesRounding(t *testing.T) {
	repo := &fakeStatsRepo{
		agg: &domain.CarAggregates{
			TotalCars:  3,
			AvgPrice:   20000,
			MaxPrice:   30000,
			MinPrice:   10000,
			AvgYear:    2015.3333333,
			AvgMileage: 123456.7,
		},
		counts: map[string][]domain.FieldCount{
			"fuel":     {{Value: "Gasoline", Count: 2}, {Value: "Diesel", Count: 1}},
			"mark":     {{Value: "Toyota", Count: 3}},
			"province": {{Value: "Mazowieckie", Count: 3}},
		},
	}

	result, err := newTestService(repo, 2024).GetStatistics(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(3), result.TotalCars)
	assert.Equal(t, 20000.0, result.AvgPrice)
	assert.Equal(t, 30000.0, result.MaxPrice)
	assert.Equal(t, 10000.0, result.MinPrice)
	assert.Equal(t, 2015.3, result.AvgYear)
	assert.Equal(t, 123457.0, result.AvgMileage)

	assert.Equal(t, []models.FuelCount{{Fuel: "Gasoline", Count: 2}, {Fuel: "Diesel", Count: 1}}, result.CarsByFuel)
	assert.Equal(t, []models.MarkCount{{Mark: "Toyota", Count: 3}}, result.CarsByMark)
	assert.Equal(t, []models.ProvinceCount{{Province: "Mazowieckie", Count: 3}}, result.CarsByProvince)

	// Топ марок ограничен, остальные распределения - нет
	assert.Equal(t, uint64(domain.TopMarksLimit), repo.countLimits["mark"])
	assert.Equal(t, uint64(0), repo.countLimits["fuel"])
	assert.Equal(t, uint64(0), repo.countLimits["province"])
}

func TestGetStatistics_RealTrendPassedThrough(t *testing.T) {
	trend := []domain.YearAvgPrice{
		{Year: 2018, AvgPrice: 15000.456},
		{Year: 2019, AvgPrice: 16000},
		{Year: 2020, AvgPrice: 17000},
		{Year: 2021, AvgPrice: 18000},
		{Year: 2022, AvgPrice: 19000},
		{Year: 2023, AvgPrice: 20000},
	}
	repo := &fakeStatsRepo{
		agg:   &domain.CarAggregates{TotalCars: 50, AvgPrice: 17500},
		trend: trend,
	}

	result, err := newTestService(repo, 2024).GetStatistics(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, result.PriceTrends, 6)
	assert.Equal(t, models.PricePoint{Month: "2018", AvgPrice: 15000.46}, result.PriceTrends[0])
	assert.Equal(t, models.PricePoint{Month: "2023", AvgPrice: 20000}, result.PriceTrends[5])
}

func TestGetStatistics_SyntheticTrendFromAvgPrice(t *testing.T) {
	// Данных меньше чем за 6 различных лет - реальный ряд заменяется
	// синтетическим вокруг средней цены пользователя
	repo := &fakeStatsRepo{
		agg: &domain.CarAggregates{TotalCars: 4, AvgPrice: 20000},
		trend: []domain.YearAvgPrice{
			{Year: 2022, AvgPrice: 19000},
			{Year: 2023, AvgPrice: 21000},
		},
	}

	result, err := newTestService(repo, 2024).GetStatistics(context.Background(), 1)
	require.NoError(t, err)

	expected := []float64{
		20000, 22000, 16000, 26000, 12000, 30000,
		10000, 34000, 10000, 38000, 10000, 42000,
	}

	require.Len(t, result.PriceTrends, domain.TrendYears)
	for i, point := range result.PriceTrends {
		assert.Equal(t, strconv.Itoa(2013+i), point.Month, "point %d year", i)
		assert.Equal(t, expected[i], point.AvgPrice, "point %d price", i)
	}
}

func TestGetStatistics_SyntheticTrendWithoutCars(t *testing.T) {
	repo := &fakeStatsRepo{
		agg: &domain.CarAggregates{TotalCars: 0},
	}

	result, err := newTestService(repo, 2024).GetStatistics(context.Background(), 1)
	require.NoError(t, err)

	expected := []float64{
		50000, 52000, 46000, 56000, 42000, 60000,
		38000, 64000, 34000, 68000, 30000, 72000,
	}

	require.Len(t, result.PriceTrends, domain.TrendYears)
	for i, point := range result.PriceTrends {
		assert.Equal(t, expected[i], point.AvgPrice, "point %d price", i)
	}
}
