package stats

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CarsService/internal/domain"
)

// StatsRepository интерфейс репозитория для агрегаций по объявлениям
type StatsRepository interface {
	Aggregates(ctx context.Context, userID int64) (*domain.CarAggregates, error)
	CountByField(ctx context.Context, userID int64, field string, limit uint64) ([]domain.FieldCount, error)
	YearlyAvgPrice(ctx context.Context, userID int64, yearMin, yearMax int) ([]domain.YearAvgPrice, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
