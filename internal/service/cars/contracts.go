package cars

import (
	"context"

	"github.com/m04kA/SMC-CarsService/internal/domain"
)

// CarRepository интерфейс репозитория объявлений
type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) (*domain.Car, error)
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
	ListWithFilter(ctx context.Context, filter domain.CarFilter) ([]*domain.Car, error)
	CountWithFilter(ctx context.Context, filter domain.CarFilter) (int64, error)
	Update(ctx context.Context, id int64, update domain.CarUpdate) (*domain.Car, error)
	Delete(ctx context.Context, id int64) error
	DistinctValues(ctx context.Context, userID int64, field string) ([]string, error)
	GetRecent(ctx context.Context, userID int64, limit uint64) ([]*domain.Car, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
