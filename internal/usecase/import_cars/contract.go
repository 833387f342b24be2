package import_cars

import (
	"context"

	"github.com/m04kA/SMC-CarsService/internal/domain"
)

// CarRepository интерфейс репозитория объявлений
type CarRepository interface {
	BatchCreate(ctx context.Context, cars []*domain.Car) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
