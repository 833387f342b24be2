package stats

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CarsService/internal/domain"
	"github.com/m04kA/SMC-CarsService/internal/service/stats/models"
)

// Service сервис статистики по объявлениям пользователя
type Service struct {
	statsRepo    StatsRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса статистики
func NewService(statsRepo StatsRepository, logger Logger) *Service {
	return &Service{
		statsRepo:    statsRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetStatistics считает сводную статистику: количество, средние/мин/макс
// показатели, распределения по топливу, маркам и воеводствам и ценовой
// тренд за последние 12 лет. Все показатели ограничены объявлениями
// запрашивающего пользователя.
func (s *Service) GetStatistics(ctx context.Context, userID int64) (*models.StatisticsResponse, error) {
	s.logger.Info("GetStatistics: computing statistics for user=%d", userID)

	agg, err := s.statsRepo.Aggregates(ctx, userID)
	if err != nil {
		s.logger.Error("GetStatistics: aggregates error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetStatistics - aggregates error: %v", ErrInternal, err)
	}

	byFuel, err := s.statsRepo.CountByField(ctx, userID, "fuel", 0)
	if err != nil {
		s.logger.Error("GetStatistics: fuel counts error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetStatistics - fuel counts error: %v", ErrInternal, err)
	}

	byMark, err := s.statsRepo.CountByField(ctx, userID, "mark", domain.TopMarksLimit)
	if err != nil {
		s.logger.Error("GetStatistics: mark counts error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetStatistics - mark counts error: %v", ErrInternal, err)
	}

	byProvince, err := s.statsRepo.CountByField(ctx, userID, "province", 0)
	if err != nil {
		s.logger.Error("GetStatistics: province counts error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetStatistics - province counts error: %v", ErrInternal, err)
	}

	currentYear := s.timeProvider.Now().Year()
	startYear := currentYear - (domain.TrendYears - 1)

	realTrend, err := s.statsRepo.YearlyAvgPrice(ctx, userID, startYear, currentYear)
	if err != nil {
		s.logger.Error("GetStatistics: price trend error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetStatistics - price trend error: %v", ErrInternal, err)
	}

	trends := buildPriceTrends(realTrend, currentYear, agg)
	if len(realTrend) < domain.MinTrendYearsWithData {
		s.logger.Info("GetStatistics: sparse trend data for user=%d (%d years), synthetic series used",
			userID, len(realTrend))
	}

	s.logger.Info("GetStatistics: computed statistics for user=%d, total_cars=%d", userID, agg.TotalCars)

	return &models.StatisticsResponse{
		TotalCars:      agg.TotalCars,
		AvgPrice:       round2(agg.AvgPrice),
		MaxPrice:       agg.MaxPrice,
		MinPrice:       agg.MinPrice,
		AvgYear:        round1(agg.AvgYear),
		AvgMileage:     round0(agg.AvgMileage),
		CarsByFuel:     models.FuelCountsFromDomain(byFuel),
		CarsByMark:     models.MarkCountsFromDomain(byMark),
		CarsByProvince: models.ProvinceCountsFromDomain(byProvince),
		PriceTrends:    trends,
	}, nil
}
