package auth

import "errors"

var (
	// ErrUsernameTaken возвращается, когда имя пользователя уже занято
	ErrUsernameTaken = errors.New("auth: username already taken")

	// ErrEmailTaken возвращается, когда email уже занят
	ErrEmailTaken = errors.New("auth: email already taken")

	// ErrInvalidCredentials возвращается при неверном логине или пароле
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("auth: user not found")

	// ErrWrongPassword возвращается, когда текущий пароль не подходит
	ErrWrongPassword = errors.New("auth: wrong current password")

	// ErrPasswordTooShort возвращается, когда новый пароль короче минимума
	ErrPasswordTooShort = errors.New("auth: password too short")

	// ErrInvalidToken возвращается при недействительном или истекшем токене
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("auth: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)
