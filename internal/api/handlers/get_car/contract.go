package get_car

import (
	"context"

	"github.com/m04kA/SMC-CarsService/internal/service/cars/models"
)

type CarsService interface {
	GetByID(ctx context.Context, id int64, userID int64) (*models.CarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
