package cars

import "errors"

var (
	// ErrCarNotFound возвращается, когда объявление не найдено
	// (или принадлежит другому пользователю - чужие объявления не видны)
	ErrCarNotFound = errors.New("car not found")

	// ErrAccessDenied возвращается при попытке изменить чужое объявление
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
