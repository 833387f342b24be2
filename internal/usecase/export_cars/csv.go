package export_cars

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/m04kA/SMC-CarsService/internal/domain"
	"github.com/m04kA/SMC-CarsService/pkg/ptr"
)

// utf8BOM добавляется в начало файла, чтобы Excel корректно открывал кириллицу
const utf8BOM = "\ufeff"

// csvHeader фиксированный набор колонок выгрузки.
// Служебные поля (id, external_id, владелец) в файл не попадают.
var csvHeader = []string{
	"mark", "model", "generation_name", "year", "mileage",
	"vol_engine", "fuel", "city", "province", "price",
}

// ExportCSV выгружает объявления по фильтру в CSV.
// Данные вычитываются из репозитория страницами по domain.ExportBatchSize,
// чтобы не держать всю выборку в памяти.
func (uc *UseCase) ExportCSV(ctx context.Context, filter domain.CarFilter, w io.Writer) error {
	uc.logger.Info("ExportCars: starting CSV export for user=%d", filter.UserID)

	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("%w: write BOM: %v", ErrWrite, err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("%w: write header: %v", ErrWrite, err)
	}

	total := 0
	filter.Limit = domain.ExportBatchSize
	for offset := uint64(0); ; offset += domain.ExportBatchSize {
		filter.Offset = offset

		cars, err := uc.carRepo.ListWithFilter(ctx, filter)
		if err != nil {
			uc.logger.Error("ExportCars: CSV export failed for user=%d: %v", filter.UserID, err)
			return fmt.Errorf("%w: list cars: %v", ErrInternal, err)
		}

		for _, car := range cars {
			if err := writer.Write(csvRecord(car)); err != nil {
				return fmt.Errorf("%w: write row: %v", ErrWrite, err)
			}
		}
		total += len(cars)

		if uint64(len(cars)) < domain.ExportBatchSize {
			break
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("%w: flush: %v", ErrWrite, err)
	}

	uc.logger.Info("ExportCars: CSV export finished for user=%d, rows=%d", filter.UserID, total)
	return nil
}

// csvRecord форматирует объявление в строку файла.
// Нулевые и отсутствующие значения выводятся пустой ячейкой.
func csvRecord(car *domain.Car) []string {
	return []string{
		car.Mark,
		car.Model,
		ptr.Deref(car.GenerationName),
		intCell(car.Year),
		intCell(car.Mileage),
		floatCell(car.VolEngine),
		car.Fuel,
		car.City,
		car.Province,
		floatCell(car.Price),
	}
}

func intCell(value int) string {
	if value == 0 {
		return ""
	}
	return strconv.Itoa(value)
}

func floatCell(value float64) string {
	if value == 0 {
		return ""
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
