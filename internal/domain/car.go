package domain

import "fmt"

// Car объявление о продаже автомобиля.
// Каждое объявление принадлежит ровно одному пользователю.
type Car struct {
	ID     int64
	UserID int64

	ExternalID     *int64 // ID записи в системе-источнике (опционально)
	Mark           string
	Model          string
	GenerationName *string
	Year           int
	Mileage        int
	VolEngine      float64 // объем двигателя в литрах
	Fuel           string
	City           string
	Province       string
	Price          float64 // NUMERIC(10,2) в БД
}

// String возвращает краткое описание объявления
func (c *Car) String() string {
	return fmt.Sprintf("%s %s (%d)", c.Mark, c.Model, c.Year)
}

// CarUpdate частичное обновление объявления.
// nil-поле означает "не менять".
type CarUpdate struct {
	ExternalID     *int64
	Mark           *string
	Model          *string
	GenerationName *string
	Year           *int
	Mileage        *int
	VolEngine      *float64
	Fuel           *string
	City           *string
	Province       *string
	Price          *float64
}

// IsEmpty возвращает true, если обновление не содержит ни одного поля
func (u *CarUpdate) IsEmpty() bool {
	return u.ExternalID == nil && u.Mark == nil && u.Model == nil &&
		u.GenerationName == nil && u.Year == nil && u.Mileage == nil &&
		u.VolEngine == nil && u.Fuel == nil && u.City == nil &&
		u.Province == nil && u.Price == nil
}

// CarFilter фильтр выборки объявлений.
// UserID обязателен - все выборки ограничены объявлениями владельца.
// Остальные поля опциональны: nil означает "фильтр не применяется".
type CarFilter struct {
	UserID int64

	Search   *string // подстрока по mark, model, generation_name, city, province (OR)
	Mark     *string // подстрока по mark
	Model    *string // подстрока по model
	Fuel     *string // подстрока по fuel
	Province *string // подстрока по province

	YearMin  *int     // включительно
	YearMax  *int     // включительно
	PriceMin *float64 // включительно
	PriceMax *float64 // включительно

	Sort CarSort

	// Пагинация. Limit = 0 означает выборку без ограничения.
	Limit  uint64
	Offset uint64
}

// CarSort сортировка выборки объявлений
type CarSort struct {
	Field SortField
	Desc  bool
}

// SortField поле сортировки из белого списка
type SortField string

const (
	SortByID      SortField = "id"
	SortByYear    SortField = "year"
	SortByPrice   SortField = "price"
	SortByMileage SortField = "mileage"
	SortByMark    SortField = "mark"
	SortByModel   SortField = "model"
	SortByFuel    SortField = "fuel"
)

// DefaultCarSort сортировка по умолчанию - новые объявления первыми
var DefaultCarSort = CarSort{Field: SortByID, Desc: true}

var validSortFields = map[SortField]struct{}{
	SortByID:      {},
	SortByYear:    {},
	SortByPrice:   {},
	SortByMileage: {},
	SortByMark:    {},
	SortByModel:   {},
	SortByFuel:    {},
}

// ParseCarSort разбирает параметр sort_by ("price", "-year", ...).
// Неизвестные значения дают сортировку по умолчанию (-id) - это
// осознанная совместимость с существующими клиентами, а не ошибка.
func ParseCarSort(sortBy string) CarSort {
	if sortBy == "" {
		return DefaultCarSort
	}

	desc := false
	if sortBy[0] == '-' {
		desc = true
		sortBy = sortBy[1:]
	}

	field := SortField(sortBy)
	if _, ok := validSortFields[field]; !ok {
		return DefaultCarSort
	}

	return CarSort{Field: field, Desc: desc}
}

// OrderByClause возвращает выражение для ORDER BY
func (s CarSort) OrderByClause() string {
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	return fmt.Sprintf("%s %s", s.Field, direction)
}
