package import_cars_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarsService/internal/domain"
	importCars "github.com/m04kA/SMC-CarsService/internal/usecase/import_cars"
)

type fakeCarRepo struct {
	batches [][]*domain.Car
	err     error
}

func (f *fakeCarRepo) BatchCreate(_ context.Context, cars []*domain.Car) error {
	if f.err != nil {
		return f.err
	}
	f.batches = append(f.batches, cars)
	return nil
}

func (f *fakeCarRepo) total() int {
	total := 0
	for _, batch := range f.batches {
		total += len(batch)
	}
	return total
}

// fakeTxManager выполняет fn без настоящей транзакции и запоминает исход
type fakeTxManager struct {
	calls  int
	failed bool
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if err := fn(ctx); err != nil {
		f.failed = true
		return err
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUseCase() (*importCars.UseCase, *fakeCarRepo, *fakeTxManager) {
	repo := &fakeCarRepo{}
	txMgr := &fakeTxManager{}
	return importCars.NewUseCase(repo, txMgr, nopLogger{}), repo, txMgr
}

const headerLine = "mark,model,generation_name,year,mileage,vol_engine,fuel,city,province,price\n"

func TestExecute_ImportsNamedColumns(t *testing.T) {
	uc, repo, txMgr := newUseCase()

	file := headerLine +
		"Toyota,Corolla,E210,2019,45000,1.8,Gasoline,Warszawa,Mazowieckie,65000\n" +
		"BMW,X5,,2015,120000,3.0,Diesel,Krakow,Malopolskie,98000.50\n"

	result, err := uc.Execute(context.Background(), &importCars.Request{
		UserID: 7,
		File:   strings.NewReader(file),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalRows)
	assert.Equal(t, 1, txMgr.calls)

	require.Equal(t, 2, repo.total())
	first := repo.batches[0][0]
	assert.Equal(t, int64(7), first.UserID)
	assert.Equal(t, "Toyota", first.Mark)
	assert.Equal(t, "Corolla", first.Model)
	require.NotNil(t, first.GenerationName)
	assert.Equal(t, "E210", *first.GenerationName)
	assert.Equal(t, 2019, first.Year)
	assert.Equal(t, 45000, first.Mileage)
	assert.Equal(t, 1.8, first.VolEngine)
	assert.Equal(t, 65000.0, first.Price)
	assert.Nil(t, first.ExternalID)

	second := repo.batches[0][1]
	assert.Nil(t, second.GenerationName)
	assert.Equal(t, 98000.50, second.Price)
}

func TestExecute_PositionalColumns(t *testing.T) {
	uc, repo, _ := newUseCase()

	// 11 колонок: заголовки игнорируются, имена присваиваются позиционно
	file := "col1,col2,col3,col4,col5,col6,col7,col8,col9,col10,col11\n" +
		"42,Audi,A4,B9,2020,30000,2.0,Diesel,Gdansk,Pomorskie,120000\n"

	result, err := uc.Execute(context.Background(), &importCars.Request{
		UserID: 1,
		File:   strings.NewReader(file),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalRows)

	car := repo.batches[0][0]
	require.NotNil(t, car.ExternalID)
	assert.Equal(t, int64(42), *car.ExternalID)
	assert.Equal(t, "Audi", car.Mark)
	assert.Equal(t, "A4", car.Model)
	require.NotNil(t, car.GenerationName)
	assert.Equal(t, "B9", *car.GenerationName)
	assert.Equal(t, 2020, car.Year)
	assert.Equal(t, 120000.0, car.Price)
}

func TestExecute_BadValueAbortsWholeImport(t *testing.T) {
	uc, repo, _ := newUseCase()

	file := headerLine +
		"Toyota,Corolla,,2019,45000,1.8,Gasoline,Warszawa,Mazowieckie,65000\n" +
		"BMW,X5,,not-a-year,120000,3.0,Diesel,Krakow,Malopolskie,98000\n"

	_, err := uc.Execute(context.Background(), &importCars.Request{
		UserID: 1,
		File:   strings.NewReader(file),
	})

	require.ErrorIs(t, err, importCars.ErrBadFieldValue)
	assert.Contains(t, err.Error(), "row 2")
	// Ни одна строка не должна попасть в базу
	assert.Zero(t, repo.total())
}

func TestExecute_MissingRequiredField(t *testing.T) {
	uc, _, _ := newUseCase()

	file := headerLine +
		"Toyota,,,2019,45000,1.8,Gasoline,Warszawa,Mazowieckie,65000\n"

	_, err := uc.Execute(context.Background(), &importCars.Request{
		UserID: 1,
		File:   strings.NewReader(file),
	})
	assert.ErrorIs(t, err, importCars.ErrMissingField)
}

func TestExecute_MissingColumn(t *testing.T) {
	uc, _, _ := newUseCase()

	file := "mark,model,year\nToyota,Corolla,2019\n"

	_, err := uc.Execute(context.Background(), &importCars.Request{
		UserID: 1,
		File:   strings.NewReader(file),
	})
	assert.ErrorIs(t, err, importCars.ErrMissingColumn)
}

func TestExecute_EmptyFile(t *testing.T) {
	uc, _, _ := newUseCase()

	_, err := uc.Execute(context.Background(), &importCars.Request{
		UserID: 1,
		File:   strings.NewReader(headerLine),
	})
	assert.ErrorIs(t, err, importCars.ErrEmptyFile)
}

func TestExecute_SplitsIntoBatches(t *testing.T) {
	uc, repo, txMgr := newUseCase()

	var sb strings.Builder
	sb.WriteString(headerLine)
	rows := domain.ImportBatchSize + 500
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&sb, "Toyota,Corolla,,2019,45000,1.8,Gasoline,Warszawa,Mazowieckie,%d\n", 10000+i)
	}

	result, err := uc.Execute(context.Background(), &importCars.Request{
		UserID: 1,
		File:   strings.NewReader(sb.String()),
	})
	require.NoError(t, err)
	assert.Equal(t, rows, result.TotalRows)

	// Все вставки в одной транзакции, но двумя пачками
	assert.Equal(t, 1, txMgr.calls)
	require.Len(t, repo.batches, 2)
	assert.Len(t, repo.batches[0], domain.ImportBatchSize)
	assert.Len(t, repo.batches[1], 500)
}

func TestExecute_RepositoryErrorRollsBack(t *testing.T) {
	repo := &fakeCarRepo{err: errors.New("insert failed")}
	txMgr := &fakeTxManager{}
	uc := importCars.NewUseCase(repo, txMgr, nopLogger{})

	file := headerLine +
		"Toyota,Corolla,,2019,45000,1.8,Gasoline,Warszawa,Mazowieckie,65000\n"

	_, err := uc.Execute(context.Background(), &importCars.Request{
		UserID: 1,
		File:   strings.NewReader(file),
	})

	assert.ErrorIs(t, err, importCars.ErrInternal)
	assert.True(t, txMgr.failed)
}
