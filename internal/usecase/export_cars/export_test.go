package export_cars_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarsService/internal/domain"
	exportCars "github.com/m04kA/SMC-CarsService/internal/usecase/export_cars"
	"github.com/m04kA/SMC-CarsService/pkg/ptr"
)

type fakeCarRepo struct {
	cars    []*domain.Car
	filters []domain.CarFilter
}

func (f *fakeCarRepo) ListWithFilter(_ context.Context, filter domain.CarFilter) ([]*domain.Car, error) {
	f.filters = append(f.filters, filter)

	start := filter.Offset
	if start >= uint64(len(f.cars)) {
		return nil, nil
	}
	end := start + filter.Limit
	if filter.Limit == 0 || end > uint64(len(f.cars)) {
		end = uint64(len(f.cars))
	}
	return f.cars[start:end], nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sampleCars() []*domain.Car {
	return []*domain.Car{
		{
			ID:             1,
			UserID:         7,
			ExternalID:     ptr.Ptr(int64(42)),
			Mark:           "Toyota",
			Model:          "Corolla",
			GenerationName: ptr.Ptr("E210"),
			Year:           2019,
			Mileage:        45000,
			VolEngine:      1.8,
			Fuel:           "Gasoline",
			City:           "Warszawa",
			Province:       "Mazowieckie",
			Price:          65000,
		},
		{
			ID:       2,
			UserID:   7,
			Mark:     "BMW",
			Model:    "X5",
			Fuel:     "Diesel",
			City:     "Krakow",
			Province: "Malopolskie",
			// year, mileage, vol_engine, price нулевые - в файле пустые ячейки
		},
	}
}

func TestExportCSV(t *testing.T) {
	repo := &fakeCarRepo{cars: sampleCars()}
	uc := exportCars.NewUseCase(repo, nopLogger{})

	var buf bytes.Buffer
	err := uc.ExportCSV(context.Background(), domain.CarFilter{UserID: 7}, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\ufeff"), "file must start with UTF-8 BOM")

	lines := strings.Split(strings.TrimRight(strings.TrimPrefix(out, "\ufeff"), "\n"), "\n")
	require.Len(t, lines, 3)

	// id, external_id и владелец в файл не попадают
	assert.Equal(t, "mark,model,generation_name,year,mileage,vol_engine,fuel,city,province,price", lines[0])
	assert.Equal(t, "Toyota,Corolla,E210,2019,45000,1.8,Gasoline,Warszawa,Mazowieckie,65000", lines[1])
	assert.Equal(t, "BMW,X5,,,,,Diesel,Krakow,Malopolskie,", lines[2])

	// Выборка идет страницами фиксированного размера
	require.NotEmpty(t, repo.filters)
	assert.Equal(t, uint64(domain.ExportBatchSize), repo.filters[0].Limit)
	assert.Equal(t, uint64(0), repo.filters[0].Offset)
}

func TestExportCSV_PagesThroughRepository(t *testing.T) {
	cars := make([]*domain.Car, domain.ExportBatchSize+10)
	for i := range cars {
		cars[i] = &domain.Car{
			ID:       int64(i + 1),
			UserID:   7,
			Mark:     "Toyota",
			Model:    "Corolla",
			Fuel:     "Gasoline",
			City:     "Warszawa",
			Province: "Mazowieckie",
			Price:    10000,
		}
	}
	repo := &fakeCarRepo{cars: cars}
	uc := exportCars.NewUseCase(repo, nopLogger{})

	var buf bytes.Buffer
	err := uc.ExportCSV(context.Background(), domain.CarFilter{UserID: 7}, &buf)
	require.NoError(t, err)

	require.Len(t, repo.filters, 2)
	assert.Equal(t, uint64(domain.ExportBatchSize), repo.filters[1].Offset)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, len(cars)+1)
}

func TestExportJSON(t *testing.T) {
	repo := &fakeCarRepo{cars: sampleCars()}
	uc := exportCars.NewUseCase(repo, nopLogger{})

	var buf bytes.Buffer
	err := uc.ExportJSON(context.Background(), domain.CarFilter{UserID: 7}, &buf)
	require.NoError(t, err)

	// Выборка ограничена максимумом JSON экспорта
	require.Len(t, repo.filters, 1)
	assert.Equal(t, uint64(domain.MaxJSONExportRows), repo.filters[0].Limit)

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 2)

	assert.Equal(t, float64(1), rows[0]["id"])
	assert.Equal(t, float64(42), rows[0]["external_id"])
	assert.Equal(t, "Toyota", rows[0]["mark"])
	assert.NotContains(t, rows[0], "user_id")
	assert.NotContains(t, rows[0], "user")

	// Файл отформатирован с отступами для ручного просмотра
	assert.True(t, strings.HasPrefix(buf.String(), "[\n    {"))
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, time.March, 5, 14, 30, 45, 0, time.UTC)

	assert.Equal(t, "car_data_20240305_143045.csv", exportCars.Filename("csv", now))
	assert.Equal(t, "car_data_20240305_143045.json", exportCars.Filename("json", now))
}
