package list_cars

import (
	"context"

	"github.com/m04kA/SMC-CarsService/internal/service/cars/models"
)

type CarsService interface {
	List(ctx context.Context, req *models.ListCarsRequest) (*models.CarListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
