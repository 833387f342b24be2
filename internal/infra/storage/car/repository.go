package car

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CarsService/internal/domain"
	"github.com/m04kA/SMC-CarsService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CarsService/pkg/psqlbuilder"
)

var carColumns = []string{
	"id",
	"user_id",
	"external_id",
	"mark",
	"model",
	"generation_name",
	"year",
	"mileage",
	"vol_engine",
	"fuel",
	"city",
	"province",
	"price",
}

// Белый список полей для distinct / group by агрегаций.
// Имя поля приходит из кода сервиса, но подстановка имен колонок в SQL
// в любом случае ограничена этим списком.
var aggregatableFields = map[string]struct{}{
	"fuel":     {},
	"mark":     {},
	"province": {},
}

// Repository репозиторий объявлений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория объявлений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает объявление и возвращает его с заполненным ID
func (r *Repository) Create(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("cars").
		Columns(
			"user_id",
			"external_id",
			"mark",
			"model",
			"generation_name",
			"year",
			"mileage",
			"vol_engine",
			"fuel",
			"city",
			"province",
			"price",
		).
		Values(
			car.UserID,
			car.ExternalID,
			car.Mark,
			car.Model,
			car.GenerationName,
			car.Year,
			car.Mileage,
			car.VolEngine,
			car.Fuel,
			car.City,
			car.Province,
			car.Price,
		).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&car.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return car, nil
}

// BatchCreate вставляет пачку объявлений одним multi-row INSERT.
// Используется импортом CSV; вызывается внутри транзакции импорта.
func (r *Repository) BatchCreate(ctx context.Context, cars []*domain.Car) error {
	if len(cars) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("cars").
		Columns(
			"user_id",
			"external_id",
			"mark",
			"model",
			"generation_name",
			"year",
			"mileage",
			"vol_engine",
			"fuel",
			"city",
			"province",
			"price",
		)

	for _, car := range cars {
		insertBuilder = insertBuilder.Values(
			car.UserID,
			car.ExternalID,
			car.Mark,
			car.Model,
			car.GenerationName,
			car.Year,
			car.Mileage,
			car.VolEngine,
			car.Fuel,
			car.City,
			car.Province,
			car.Price,
		)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: BatchCreate - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: BatchCreate - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByID получает объявление по ID без привязки к владельцу.
// Проверка прав доступа выполняется на уровне сервиса.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(carColumns...).
		From("cars").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	car, err := scanCar(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCarNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan car: %v", ErrScanRow, err)
	}

	return car, nil
}

// ListWithFilter получает объявления пользователя с фильтрацией,
// сортировкой и пагинацией (см. domain.CarFilter)
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.CarFilter) ([]*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := applyFilter(psqlbuilder.Select(carColumns...).From("cars"), filter).
		OrderBy(filter.Sort.OrderByClause())

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit).Offset(filter.Offset)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanCars(rows)
}

// CountWithFilter считает объявления, попадающие под фильтр
func (r *Repository) CountWithFilter(ctx context.Context, filter domain.CarFilter) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := applyFilter(psqlbuilder.Select("COUNT(*)").From("cars"), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountWithFilter - build count query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountWithFilter - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Update применяет частичное обновление и возвращает обновленное объявление
func (r *Repository) Update(ctx context.Context, id int64, update domain.CarUpdate) (*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("cars").Where(squirrel.Eq{"id": id})

	if update.ExternalID != nil {
		updateBuilder = updateBuilder.Set("external_id", *update.ExternalID)
	}
	if update.Mark != nil {
		updateBuilder = updateBuilder.Set("mark", *update.Mark)
	}
	if update.Model != nil {
		updateBuilder = updateBuilder.Set("model", *update.Model)
	}
	if update.GenerationName != nil {
		updateBuilder = updateBuilder.Set("generation_name", *update.GenerationName)
	}
	if update.Year != nil {
		updateBuilder = updateBuilder.Set("year", *update.Year)
	}
	if update.Mileage != nil {
		updateBuilder = updateBuilder.Set("mileage", *update.Mileage)
	}
	if update.VolEngine != nil {
		updateBuilder = updateBuilder.Set("vol_engine", *update.VolEngine)
	}
	if update.Fuel != nil {
		updateBuilder = updateBuilder.Set("fuel", *update.Fuel)
	}
	if update.City != nil {
		updateBuilder = updateBuilder.Set("city", *update.City)
	}
	if update.Province != nil {
		updateBuilder = updateBuilder.Set("province", *update.Province)
	}
	if update.Price != nil {
		updateBuilder = updateBuilder.Set("price", *update.Price)
	}

	query, args, err := updateBuilder.
		Suffix("RETURNING " + joinColumns(carColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	car, err := scanCar(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCarNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - scan car: %v", ErrScanRow, err)
	}

	return car, nil
}

// Delete физически удаляет объявление
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("cars").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCarNotFound
	}

	return nil
}

// Aggregates считает сводные показатели по объявлениям пользователя
func (r *Repository) Aggregates(ctx context.Context, userID int64) (*domain.CarAggregates, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"COUNT(*)",
		"COALESCE(AVG(price), 0)",
		"COALESCE(MAX(price), 0)",
		"COALESCE(MIN(price), 0)",
		"COALESCE(AVG(year), 0)",
		"COALESCE(AVG(mileage), 0)",
	).
		From("cars").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Aggregates - build select query: %v", ErrBuildQuery, err)
	}

	var agg domain.CarAggregates
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&agg.TotalCars,
		&agg.AvgPrice,
		&agg.MaxPrice,
		&agg.MinPrice,
		&agg.AvgYear,
		&agg.AvgMileage,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Aggregates - scan aggregates: %v", ErrScanRow, err)
	}

	return &agg, nil
}

// CountByField считает объявления пользователя, сгруппированные по полю
// из белого списка (fuel, mark, province), по убыванию количества.
// limit = 0 означает выборку всех групп.
func (r *Repository) CountByField(ctx context.Context, userID int64, field string, limit uint64) ([]domain.FieldCount, error) {
	if _, ok := aggregatableFields[field]; !ok {
		return nil, fmt.Errorf("%w: CountByField - field %q", ErrInvalidField, field)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(field, "COUNT(id) AS count").
		From("cars").
		Where(squirrel.Eq{"user_id": userID}).
		GroupBy(field).
		OrderBy("count DESC")

	if limit > 0 {
		selectBuilder = selectBuilder.Limit(limit)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CountByField - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByField - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make([]domain.FieldCount, 0)
	for rows.Next() {
		var fc domain.FieldCount
		if err := rows.Scan(&fc.Value, &fc.Count); err != nil {
			return nil, fmt.Errorf("%w: CountByField - scan row: %v", ErrScanRow, err)
		}
		counts = append(counts, fc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByField - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// YearlyAvgPrice считает среднюю цену объявлений пользователя по годам
// в диапазоне [yearMin, yearMax], по возрастанию года
func (r *Repository) YearlyAvgPrice(ctx context.Context, userID int64, yearMin, yearMax int) ([]domain.YearAvgPrice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("year", "AVG(price)").
		From("cars").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"year": yearMin}).
		Where(squirrel.LtOrEq{"year": yearMax}).
		GroupBy("year").
		OrderBy("year ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: YearlyAvgPrice - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: YearlyAvgPrice - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	trends := make([]domain.YearAvgPrice, 0)
	for rows.Next() {
		var point domain.YearAvgPrice
		if err := rows.Scan(&point.Year, &point.AvgPrice); err != nil {
			return nil, fmt.Errorf("%w: YearlyAvgPrice - scan row: %v", ErrScanRow, err)
		}
		trends = append(trends, point)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: YearlyAvgPrice - rows error: %v", ErrScanRow, err)
	}

	return trends, nil
}

// DistinctValues возвращает непустые уникальные значения поля из белого
// списка для объявлений пользователя
func (r *Repository) DistinctValues(ctx context.Context, userID int64, field string) ([]string, error) {
	if _, ok := aggregatableFields[field]; !ok {
		return nil, fmt.Errorf("%w: DistinctValues - field %q", ErrInvalidField, field)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT "+field).
		From("cars").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.NotEq{field: ""}).
		OrderBy(field + " ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: DistinctValues - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: DistinctValues - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("%w: DistinctValues - scan row: %v", ErrScanRow, err)
		}
		values = append(values, value)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: DistinctValues - rows error: %v", ErrScanRow, err)
	}

	return values, nil
}

// GetRecent возвращает последние добавленные объявления пользователя
func (r *Repository) GetRecent(ctx context.Context, userID int64, limit uint64) ([]*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(carColumns...).
		From("cars").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("id DESC").
		Limit(limit).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRecent - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRecent - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanCars(rows)
}

// applyFilter накладывает условия domain.CarFilter на SELECT.
// Все условия соединяются через AND; поля search объединяются через OR
// и входят в общий AND одним блоком.
func applyFilter(b squirrel.SelectBuilder, filter domain.CarFilter) squirrel.SelectBuilder {
	b = b.Where(squirrel.Eq{"user_id": filter.UserID})

	if filter.Search != nil {
		pattern := "%" + *filter.Search + "%"
		b = b.Where(squirrel.Or{
			squirrel.ILike{"mark": pattern},
			squirrel.ILike{"model": pattern},
			squirrel.ILike{"generation_name": pattern},
			squirrel.ILike{"city": pattern},
			squirrel.ILike{"province": pattern},
		})
	}

	if filter.Mark != nil {
		b = b.Where(squirrel.ILike{"mark": "%" + *filter.Mark + "%"})
	}
	if filter.Model != nil {
		b = b.Where(squirrel.ILike{"model": "%" + *filter.Model + "%"})
	}
	if filter.Fuel != nil {
		b = b.Where(squirrel.ILike{"fuel": "%" + *filter.Fuel + "%"})
	}
	if filter.Province != nil {
		b = b.Where(squirrel.ILike{"province": "%" + *filter.Province + "%"})
	}

	if filter.YearMin != nil {
		b = b.Where(squirrel.GtOrEq{"year": *filter.YearMin})
	}
	if filter.YearMax != nil {
		b = b.Where(squirrel.LtOrEq{"year": *filter.YearMax})
	}
	if filter.PriceMin != nil {
		b = b.Where(squirrel.GtOrEq{"price": *filter.PriceMin})
	}
	if filter.PriceMax != nil {
		b = b.Where(squirrel.LtOrEq{"price": *filter.PriceMax})
	}

	return b
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCar(row rowScanner) (*domain.Car, error) {
	var car domain.Car
	err := row.Scan(
		&car.ID,
		&car.UserID,
		&car.ExternalID,
		&car.Mark,
		&car.Model,
		&car.GenerationName,
		&car.Year,
		&car.Mileage,
		&car.VolEngine,
		&car.Fuel,
		&car.City,
		&car.Province,
		&car.Price,
	)
	if err != nil {
		return nil, err
	}
	return &car, nil
}

func scanCars(rows *sql.Rows) ([]*domain.Car, error) {
	cars := make([]*domain.Car, 0)

	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanCars - scan row: %v", ErrScanRow, err)
		}
		cars = append(cars, car)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanCars - rows error: %v", ErrScanRow, err)
	}

	return cars, nil
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
