package import_cars

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-CarsService/internal/domain"
)

// requiredColumns обязательные поля строки импорта
var requiredColumns = []string{
	"mark", "model", "year", "mileage", "vol_engine",
	"fuel", "city", "province", "price",
}

// table разобранный файл: колонки и строки данных
type table struct {
	columns map[string]int // имя колонки -> индекс
	rows    [][]string
}

// parseTable разбирает файл как CSV. Первая строка - заголовки
// (пробелы по краям обрезаются). Файл ровно с ImportColumnCount
// колонками считается позиционным: заголовки игнорируются и колонкам
// присваиваются канонические имена в фиксированном порядке.
func parseTable(file io.Reader) (*table, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}

	if len(records) == 0 {
		return nil, ErrEmptyFile
	}

	header := records[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	if len(header) == domain.ImportColumnCount {
		header = domain.ImportPositionalColumns
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}

	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	return &table{
		columns: columns,
		rows:    records[1:],
	}, nil
}

// mapRow собирает domain.Car из строки файла.
// Обязательные поля должны присутствовать и приводиться к своему типу;
// external_id и generation_name берутся только при наличии непустого значения.
func (t *table) mapRow(rowNum int, row []string, userID int64) (*domain.Car, error) {
	car := &domain.Car{UserID: userID}

	var err error
	if car.Mark, err = t.stringField(row, "mark"); err != nil {
		return nil, rowError(rowNum, err)
	}
	if car.Model, err = t.stringField(row, "model"); err != nil {
		return nil, rowError(rowNum, err)
	}
	if car.Year, err = t.intField(row, "year"); err != nil {
		return nil, rowError(rowNum, err)
	}
	if car.Mileage, err = t.intField(row, "mileage"); err != nil {
		return nil, rowError(rowNum, err)
	}
	if car.VolEngine, err = t.floatField(row, "vol_engine"); err != nil {
		return nil, rowError(rowNum, err)
	}
	if car.Fuel, err = t.stringField(row, "fuel"); err != nil {
		return nil, rowError(rowNum, err)
	}
	if car.City, err = t.stringField(row, "city"); err != nil {
		return nil, rowError(rowNum, err)
	}
	if car.Province, err = t.stringField(row, "province"); err != nil {
		return nil, rowError(rowNum, err)
	}
	if car.Price, err = t.floatField(row, "price"); err != nil {
		return nil, rowError(rowNum, err)
	}

	if value, ok := t.optionalField(row, "external_id"); ok {
		externalID, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, rowError(rowNum, fmt.Errorf("%w: external_id=%q", ErrBadFieldValue, value))
		}
		car.ExternalID = &externalID
	}

	if value, ok := t.optionalField(row, "generation_name"); ok {
		generationName := value
		car.GenerationName = &generationName
	}

	return car, nil
}

func (t *table) stringField(row []string, name string) (string, error) {
	value, ok := t.optionalField(row, name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingField, name)
	}
	return value, nil
}

func (t *table) intField(row []string, name string) (int, error) {
	raw, err := t.stringField(row, name)
	if err != nil {
		return 0, err
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrBadFieldValue, name, raw)
	}
	return value, nil
}

func (t *table) floatField(row []string, name string) (float64, error) {
	raw, err := t.stringField(row, name)
	if err != nil {
		return 0, err
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrBadFieldValue, name, raw)
	}
	return value, nil
}

// optionalField возвращает значение колонки и признак того, что оно
// присутствует и непусто
func (t *table) optionalField(row []string, name string) (string, bool) {
	idx, ok := t.columns[name]
	if !ok || idx >= len(row) {
		return "", false
	}

	value := strings.TrimSpace(row[idx])
	if value == "" {
		return "", false
	}
	return value, true
}

func rowError(rowNum int, err error) error {
	return fmt.Errorf("row %d: %w", rowNum, err)
}
