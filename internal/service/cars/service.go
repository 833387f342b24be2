package cars

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CarsService/internal/domain"
	carRepo "github.com/m04kA/SMC-CarsService/internal/infra/storage/car"
	"github.com/m04kA/SMC-CarsService/internal/service/cars/models"
)

// Service сервис для работы с объявлениями
type Service struct {
	carRepo CarRepository
	logger  Logger
}

// NewService создает новый экземпляр сервиса объявлений
func NewService(carRepo CarRepository, logger Logger) *Service {
	return &Service{
		carRepo: carRepo,
		logger:  logger,
	}
}

// Create создает объявление, принадлежащее пользователю
func (s *Service) Create(ctx context.Context, req *models.CreateCarRequest) (*models.CarResponse, error) {
	s.logger.Info("Create: creating car for user=%d, mark=%s, model=%s", req.UserID, req.Mark, req.Model)

	if err := validateRequiredFields(req.Mark, req.Model, req.Fuel, req.City, req.Province); err != nil {
		s.logger.Warn("Create: validation failed for user=%d: %v", req.UserID, err)
		return nil, err
	}

	car, err := s.carRepo.Create(ctx, req.ToDomainCar())
	if err != nil {
		s.logger.Error("Create: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created car id=%d for user=%d", car.ID, req.UserID)
	return models.FromDomainCar(car), nil
}

// GetByID получает объявление по ID.
// Чужие объявления не видны - для них возвращается ErrCarNotFound,
// как если бы записи не существовало.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.CarResponse, error) {
	s.logger.Info("GetByID: fetching car id=%d for user=%d", id, userID)

	car, err := s.getOwnedForRead(ctx, id, userID, "GetByID")
	if err != nil {
		return nil, err
	}

	return models.FromDomainCar(car), nil
}

// List получает страницу объявлений пользователя с фильтрацией и сортировкой
func (s *Service) List(ctx context.Context, req *models.ListCarsRequest) (*models.CarListResponse, error) {
	s.logger.Info("List: fetching cars for user=%d, page=%d, page_size=%d",
		req.Filter.UserID, req.Page, req.PageSize)

	page := req.Page
	if page == 0 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize == 0 {
		pageSize = domain.DefaultPageSize
	}
	if pageSize > domain.MaxPageSize {
		pageSize = domain.MaxPageSize
	}

	count, err := s.carRepo.CountWithFilter(ctx, req.Filter)
	if err != nil {
		s.logger.Error("List: count error for user=%d: %v", req.Filter.UserID, err)
		return nil, fmt.Errorf("%w: List - count error: %v", ErrInternal, err)
	}

	filter := req.Filter
	filter.Limit = pageSize
	filter.Offset = (page - 1) * pageSize

	carsList, err := s.carRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", req.Filter.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	totalPages := uint64(count) / pageSize
	if uint64(count)%pageSize != 0 {
		totalPages++
	}

	s.logger.Info("List: successfully fetched %d of %d cars for user=%d",
		len(carsList), count, req.Filter.UserID)

	return &models.CarListResponse{
		Count:      count,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		Results:    models.FromDomainCarList(carsList),
	}, nil
}

// Update обновляет объявление. Обновлять можно только свои объявления:
// попытка изменить чужое возвращает ErrAccessDenied.
func (s *Service) Update(ctx context.Context, req *models.UpdateCarRequest) (*models.CarResponse, error) {
	s.logger.Info("Update: updating car id=%d by user=%d (partial=%v)", req.CarID, req.UserID, req.Partial)

	car, err := s.carRepo.GetByID(ctx, req.CarID)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			s.logger.Warn("Update: car id=%d not found", req.CarID)
			return nil, ErrCarNotFound
		}
		s.logger.Error("Update: repository error for car id=%d: %v", req.CarID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if car.UserID != req.UserID {
		s.logger.Warn("Update: access denied for user=%d to car id=%d (owner=%d)",
			req.UserID, req.CarID, car.UserID)
		return nil, ErrAccessDenied
	}

	if err := validateUpdate(req); err != nil {
		s.logger.Warn("Update: validation failed for car id=%d: %v", req.CarID, err)
		return nil, err
	}

	updated, err := s.carRepo.Update(ctx, req.CarID, req.Update)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			s.logger.Warn("Update: car id=%d not found during update", req.CarID)
			return nil, ErrCarNotFound
		}
		s.logger.Error("Update: repository error for car id=%d: %v", req.CarID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated car id=%d", req.CarID)
	return models.FromDomainCar(updated), nil
}

// Delete удаляет объявление. Удалять можно только свои объявления.
func (s *Service) Delete(ctx context.Context, id int64, userID int64) error {
	s.logger.Info("Delete: deleting car id=%d by user=%d", id, userID)

	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			s.logger.Warn("Delete: car id=%d not found", id)
			return ErrCarNotFound
		}
		s.logger.Error("Delete: repository error for car id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if car.UserID != userID {
		s.logger.Warn("Delete: access denied for user=%d to car id=%d (owner=%d)", userID, id, car.UserID)
		return ErrAccessDenied
	}

	if err := s.carRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			return ErrCarNotFound
		}
		s.logger.Error("Delete: repository error for car id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted car id=%d", id)
	return nil
}

// DistinctValues возвращает уникальные непустые марки и виды топлива
// объявлений пользователя
func (s *Service) DistinctValues(ctx context.Context, userID int64) (*models.DistinctValuesResponse, error) {
	s.logger.Info("DistinctValues: fetching for user=%d", userID)

	marks, err := s.carRepo.DistinctValues(ctx, userID, "mark")
	if err != nil {
		s.logger.Error("DistinctValues: marks error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: DistinctValues - marks error: %v", ErrInternal, err)
	}

	fuels, err := s.carRepo.DistinctValues(ctx, userID, "fuel")
	if err != nil {
		s.logger.Error("DistinctValues: fuels error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: DistinctValues - fuels error: %v", ErrInternal, err)
	}

	return &models.DistinctValuesResponse{Marks: marks, Fuels: fuels}, nil
}

// GetRecent возвращает последние добавленные объявления пользователя
func (s *Service) GetRecent(ctx context.Context, userID int64) ([]models.CarResponse, error) {
	s.logger.Info("GetRecent: fetching recent cars for user=%d", userID)

	recentCars, err := s.carRepo.GetRecent(ctx, userID, domain.RecentCarsLimit)
	if err != nil {
		s.logger.Error("GetRecent: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetRecent - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCarList(recentCars), nil
}

// getOwnedForRead получает объявление и скрывает чужие записи за ErrCarNotFound
func (s *Service) getOwnedForRead(ctx context.Context, id int64, userID int64, op string) (*domain.Car, error) {
	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			s.logger.Warn("%s: car id=%d not found", op, id)
			return nil, ErrCarNotFound
		}
		s.logger.Error("%s: repository error for car id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if car.UserID != userID {
		s.logger.Warn("%s: car id=%d belongs to user=%d, requested by user=%d", op, id, car.UserID, userID)
		return nil, ErrCarNotFound
	}

	return car, nil
}

// validateRequiredFields проверяет обязательные строковые поля объявления
func validateRequiredFields(mark, model, fuel, city, province string) error {
	if mark == "" || model == "" || fuel == "" || city == "" || province == "" {
		return fmt.Errorf("%w: mark, model, fuel, city and province are required", ErrInvalidInput)
	}
	return nil
}

// validateUpdate проверяет запрос обновления.
// PUT (Partial=false) требует полный набор обязательных полей;
// PATCH принимает любое непустое подмножество.
func validateUpdate(req *models.UpdateCarRequest) error {
	if req.Update.IsEmpty() {
		return fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	if !req.Partial {
		u := req.Update
		if u.Mark == nil || u.Model == nil || u.Year == nil || u.Mileage == nil ||
			u.VolEngine == nil || u.Fuel == nil || u.City == nil || u.Province == nil || u.Price == nil {
			return fmt.Errorf("%w: full update requires all required fields", ErrInvalidInput)
		}
		return validateRequiredFields(*u.Mark, *u.Model, *u.Fuel, *u.City, *u.Province)
	}

	return nil
}
