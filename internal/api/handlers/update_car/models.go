package update_car

import (
	"github.com/m04kA/SMC-CarsService/internal/domain"
	"github.com/m04kA/SMC-CarsService/internal/service/cars/models"
)

// UpdateCarRequest тело запроса на обновление объявления.
// Отсутствующие поля не изменяются (для PATCH).
type UpdateCarRequest struct {
	ExternalID     *int64   `json:"external_id,omitempty"`
	Mark           *string  `json:"mark,omitempty"`
	Model          *string  `json:"model,omitempty"`
	GenerationName *string  `json:"generation_name,omitempty"`
	Year           *int     `json:"year,omitempty"`
	Mileage        *int     `json:"mileage,omitempty"`
	VolEngine      *float64 `json:"vol_engine,omitempty"`
	Fuel           *string  `json:"fuel,omitempty"`
	City           *string  `json:"city,omitempty"`
	Province       *string  `json:"province,omitempty"`
	Price          *float64 `json:"price,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateCarRequest) ToServiceRequest(userID, carID int64, partial bool) *models.UpdateCarRequest {
	return &models.UpdateCarRequest{
		UserID:  userID,
		CarID:   carID,
		Partial: partial,
		Update: domain.CarUpdate{
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
		},
	}
}
