package export_cars

import "errors"

var (
	// ErrWrite возвращается при ошибке записи в выходной поток
	ErrWrite = errors.New("export_cars: failed to write output")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("export_cars: internal error")
)
