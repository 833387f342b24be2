package models

import "github.com/m04kA/SMC-CarsService/internal/domain"

// Request модели

// CreateCarRequest запрос на создание объявления
type CreateCarRequest struct {
	UserID         int64
	ExternalID     *int64
	Mark           string
	Model          string
	GenerationName *string
	Year           int
	Mileage        int
	VolEngine      float64
	Fuel           string
	City           string
	Province       string
	Price          float64
}

// ToDomainCar конвертирует запрос в domain модель
func (r *CreateCarRequest) ToDomainCar() *domain.Car {
	return &domain.Car{
		UserID:         r.UserID,
		ExternalID:     r.ExternalID,
		Mark:           r.Mark,
		Model:          r.Model,
		GenerationName: r.GenerationName,
		Year:           r.Year,
		Mileage:        r.Mileage,
		VolEngine:      r.VolEngine,
		Fuel:           r.Fuel,
		City:           r.City,
		Province:       r.Province,
		Price:          r.Price,
	}
}

// UpdateCarRequest запрос на обновление объявления.
// Для PATCH применяются только непустые поля; для PUT (Partial=false)
// обязательные поля должны присутствовать все.
type UpdateCarRequest struct {
	UserID  int64
	CarID   int64
	Partial bool
	Update  domain.CarUpdate
}

// ListCarsRequest запрос списка объявлений с фильтрацией и пагинацией
type ListCarsRequest struct {
	Filter   domain.CarFilter
	Page     uint64
	PageSize uint64
}

// Response модели

// CarResponse объявление в ответе API.
// Имена полей в snake_case - совместимость с существующими клиентами.
type CarResponse struct {
	ID             int64   `json:"id"`
	ExternalID     *int64  `json:"external_id"`
	Mark           string  `json:"mark"`
	Model          string  `json:"model"`
	GenerationName *string `json:"generation_name"`
	Year           int     `json:"year"`
	Mileage        int     `json:"mileage"`
	VolEngine      float64 `json:"vol_engine"`
	Fuel           string  `json:"fuel"`
	City           string  `json:"city"`
	Province       string  `json:"province"`
	Price          float64 `json:"price"`
}

// CarListResponse страница списка объявлений
type CarListResponse struct {
	Count      int64         `json:"count"`
	Page       uint64        `json:"page"`
	PageSize   uint64        `json:"page_size"`
	TotalPages uint64        `json:"total_pages"`
	Results    []CarResponse `json:"results"`
}

// DistinctValuesResponse уникальные значения марок и видов топлива
type DistinctValuesResponse struct {
	Marks []string `json:"marks"`
	Fuels []string `json:"fuels"`
}

// Методы конвертации

// FromDomainCar конвертирует domain модель в DTO.
// Поле владельца в ответ не попадает.
func FromDomainCar(c *domain.Car) *CarResponse {
	if c == nil {
		return nil
	}

	return &CarResponse{
		ID:             c.ID,
		ExternalID:     c.ExternalID,
		Mark:           c.Mark,
		Model:          c.Model,
		GenerationName: c.GenerationName,
		Year:           c.Year,
		Mileage:        c.Mileage,
		VolEngine:      c.VolEngine,
		Fuel:           c.Fuel,
		City:           c.City,
		Province:       c.Province,
		Price:          c.Price,
	}
}

// FromDomainCarList конвертирует список domain моделей в DTO
func FromDomainCarList(cars []*domain.Car) []CarResponse {
	result := make([]CarResponse, 0, len(cars))
	for _, car := range cars {
		if resp := FromDomainCar(car); resp != nil {
			result = append(result, *resp)
		}
	}
	return result
}
