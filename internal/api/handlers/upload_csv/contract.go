package upload_csv

import (
	"context"

	importCars "github.com/m04kA/SMC-CarsService/internal/usecase/import_cars"
)

type ImportCarsUseCase interface {
	Execute(ctx context.Context, req *importCars.Request) (*importCars.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
