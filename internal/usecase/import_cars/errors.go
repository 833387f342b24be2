package import_cars

import "errors"

var (
	// ErrParseFailed возвращается, когда файл не разбирается как CSV
	ErrParseFailed = errors.New("import_cars: failed to parse file")

	// ErrEmptyFile возвращается для файла без строк данных
	ErrEmptyFile = errors.New("import_cars: file contains no data rows")

	// ErrMissingColumn возвращается, когда в файле нет обязательной колонки
	ErrMissingColumn = errors.New("import_cars: missing required column")

	// ErrMissingField возвращается, когда в строке нет значения обязательного поля
	ErrMissingField = errors.New("import_cars: missing required field")

	// ErrBadFieldValue возвращается, когда значение поля не приводится к нужному типу
	ErrBadFieldValue = errors.New("import_cars: bad field value")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("import_cars: internal error")
)
