package domain

// CarAggregates сводные показатели по объявлениям пользователя.
// Для пользователя без объявлений все поля нулевые.
type CarAggregates struct {
	TotalCars  int64
	AvgPrice   float64
	MaxPrice   float64
	MinPrice   float64
	AvgYear    float64
	AvgMileage float64
}

// FieldCount количество объявлений для одного значения поля
// (топлива, марки, воеводства)
type FieldCount struct {
	Value string
	Count int64
}

// YearAvgPrice средняя цена объявлений за один год
type YearAvgPrice struct {
	Year     int
	AvgPrice float64
}
