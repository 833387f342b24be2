package domain

// User учетная запись пользователя сервиса
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
}

// UserUpdate частичное обновление профиля.
// nil-поле означает "не менять". Пароль меняется отдельной операцией.
type UserUpdate struct {
	Username  *string
	Email     *string
	FirstName *string
	LastName  *string
}

// IsEmpty возвращает true, если обновление не содержит ни одного поля
func (u *UserUpdate) IsEmpty() bool {
	return u.Username == nil && u.Email == nil && u.FirstName == nil && u.LastName == nil
}
