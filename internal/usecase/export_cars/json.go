package export_cars

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/m04kA/SMC-CarsService/internal/domain"
	carsModels "github.com/m04kA/SMC-CarsService/internal/service/cars/models"
)

// ExportJSON выгружает объявления по фильтру в JSON-файл.
// Выборка ограничена domain.MaxJSONExportRows - выгрузка предназначена
// для ручного анализа, а не для репликации базы.
func (uc *UseCase) ExportJSON(ctx context.Context, filter domain.CarFilter, w io.Writer) error {
	uc.logger.Info("ExportCars: starting JSON export for user=%d", filter.UserID)

	filter.Limit = domain.MaxJSONExportRows
	filter.Offset = 0

	cars, err := uc.carRepo.ListWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("ExportCars: JSON export failed for user=%d: %v", filter.UserID, err)
		return fmt.Errorf("%w: list cars: %v", ErrInternal, err)
	}

	data, err := json.MarshalIndent(carsModels.FromDomainCarList(cars), "", "    ")
	if err != nil {
		return fmt.Errorf("%w: marshal cars: %v", ErrInternal, err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: write file: %v", ErrWrite, err)
	}

	uc.logger.Info("ExportCars: JSON export finished for user=%d, rows=%d", filter.UserID, len(cars))
	return nil
}
