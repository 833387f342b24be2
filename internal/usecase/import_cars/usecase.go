package import_cars

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CarsService/internal/domain"
)

// UseCase use case импорта объявлений из табличного файла.
// Весь файл импортируется в одной транзакции: либо сохраняются все
// строки, либо ни одной.
type UseCase struct {
	carRepo   CarRepository
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case импорта
func NewUseCase(carRepo CarRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		carRepo:   carRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute разбирает файл, собирает объявления пользователя и вставляет
// их пачками по domain.ImportBatchSize внутри одной транзакции.
// Любая ошибка разбора или вставки прерывает импорт целиком.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ImportCars: starting import for user=%d", req.UserID)

	parsed, err := parseTable(req.File)
	if err != nil {
		uc.logger.Warn("ImportCars: parse failed for user=%d: %v", req.UserID, err)
		return nil, err
	}

	totalRows := len(parsed.rows)
	if totalRows == 0 {
		uc.logger.Warn("ImportCars: empty file for user=%d", req.UserID)
		return nil, ErrEmptyFile
	}

	cars := make([]*domain.Car, 0, totalRows)
	for i, row := range parsed.rows {
		// Нумерация строк с единицы, без учета заголовка
		car, err := parsed.mapRow(i+1, row, req.UserID)
		if err != nil {
			uc.logger.Warn("ImportCars: row mapping failed for user=%d: %v", req.UserID, err)
			return nil, err
		}
		cars = append(cars, car)
	}

	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		for start := 0; start < len(cars); start += domain.ImportBatchSize {
			end := start + domain.ImportBatchSize
			if end > len(cars) {
				end = len(cars)
			}

			if err := uc.carRepo.BatchCreate(txCtx, cars[start:end]); err != nil {
				return fmt.Errorf("%w: insert batch [%d:%d]: %v", ErrInternal, start, end, err)
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("ImportCars: import failed for user=%d, rolled back: %v", req.UserID, err)
		return nil, err
	}

	uc.logger.Info("ImportCars: successfully imported %d rows for user=%d", totalRows, req.UserID)
	return &Response{TotalRows: totalRows}, nil
}
