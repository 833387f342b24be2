package get_distinct_values

import (
	"context"

	"github.com/m04kA/SMC-CarsService/internal/service/cars/models"
)

type CarsService interface {
	DistinctValues(ctx context.Context, userID int64) (*models.DistinctValuesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
