package get_statistics

import (
	"context"

	"github.com/m04kA/SMC-CarsService/internal/service/stats/models"
)

type StatsService interface {
	GetStatistics(ctx context.Context, userID int64) (*models.StatisticsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
