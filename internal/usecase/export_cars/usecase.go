package export_cars

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CarsService/internal/domain"
)

// UseCase use case экспорта отфильтрованных объявлений в CSV или JSON.
// Экспорт использует тот же domain.CarFilter, что и выдача списка, -
// клиент скачивает ровно то, что видит.
type UseCase struct {
	carRepo CarRepository
	logger  Logger
}

// NewUseCase создает новый экземпляр use case экспорта
func NewUseCase(carRepo CarRepository, logger Logger) *UseCase {
	return &UseCase{
		carRepo: carRepo,
		logger:  logger,
	}
}

// Filename возвращает имя файла выгрузки с меткой времени
func Filename(extension string, now time.Time) string {
	return fmt.Sprintf("car_data_%s.%s", now.Format(domain.FilenameTimeFormat), extension)
}
