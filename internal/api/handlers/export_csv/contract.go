package export_csv

import (
	"context"
	"io"

	"github.com/m04kA/SMC-CarsService/internal/domain"
)

type ExportCarsUseCase interface {
	ExportCSV(ctx context.Context, filter domain.CarFilter, w io.Writer) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
