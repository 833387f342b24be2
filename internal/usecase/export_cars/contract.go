package export_cars

import (
	"context"

	"github.com/m04kA/SMC-CarsService/internal/domain"
)

// CarRepository интерфейс репозитория объявлений
type CarRepository interface {
	ListWithFilter(ctx context.Context, filter domain.CarFilter) ([]*domain.Car, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
