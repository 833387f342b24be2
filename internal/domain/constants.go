package domain

// Пагинация списка объявлений
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Импорт и экспорт
const (
	// ImportBatchSize размер пачки при bulk-вставке импортируемых строк
	ImportBatchSize = 1000

	// ExportBatchSize размер страницы при потоковом CSV экспорте
	ExportBatchSize = 1000

	// MaxJSONExportRows максимум записей в JSON экспорте
	MaxJSONExportRows = 10000

	// ImportColumnCount число колонок файла, при котором колонки
	// сопоставляются позиционно, без учета заголовков
	ImportColumnCount = 11
)

// ImportPositionalColumns канонические имена колонок для позиционного
// сопоставления 11-колоночного файла (в фиксированном порядке)
var ImportPositionalColumns = []string{
	"external_id", "mark", "model", "generation_name", "year",
	"mileage", "vol_engine", "fuel", "city", "province", "price",
}

// Статистика
const (
	// TrendYears размер окна ценового тренда в годах
	TrendYears = 12

	// MinTrendYearsWithData минимум различных лет с данными; при меньшем
	// количестве реальный тренд заменяется синтетическим рядом
	MinTrendYearsWithData = 6

	// SyntheticBasePrice базовая цена синтетического ряда для пользователя
	// без объявлений
	SyntheticBasePrice = 50000

	// SyntheticFloorPrice нижняя граница точки синтетического ряда
	SyntheticFloorPrice = 10000

	// SyntheticPriceStep шаг отклонения точки синтетического ряда
	SyntheticPriceStep = 2000

	// TopMarksLimit размер топа марок в статистике
	TopMarksLimit = 10
)

// Учетные записи
const (
	// MinPasswordLength минимальная длина нового пароля
	MinPasswordLength = 6
)

// RecentCarsLimit число объявлений в выдаче recent-cars
const RecentCarsLimit = 5

// FilenameTimeFormat формат метки времени в имени файла экспорта
const FilenameTimeFormat = "20060102_150405"
