package car

import "errors"

var (
	// ErrCarNotFound возвращается, когда объявление не найдено
	ErrCarNotFound = errors.New("car.repository: car not found")

	// ErrInvalidField возвращается при запросе агрегации по полю вне белого списка
	ErrInvalidField = errors.New("car.repository: invalid aggregation field")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("car.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("car.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("car.repository: failed to scan row")
)
