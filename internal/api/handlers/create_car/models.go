package create_car

import "github.com/m04kA/SMC-CarsService/internal/service/cars/models"

// CreateCarRequest тело запроса на создание объявления
type CreateCarRequest struct {
	ExternalID     *int64  `json:"external_id,omitempty"`
	Mark           string  `json:"mark"`
	Model          string  `json:"model"`
	GenerationName *string `json:"generation_name,omitempty"`
	Year           int     `json:"year"`
	Mileage        int     `json:"mileage"`
	VolEngine      float64 `json:"vol_engine"`
	Fuel           string  `json:"fuel"`
	City           string  `json:"city"`
	Province       string  `json:"province"`
	Price          float64 `json:"price"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateCarRequest) ToServiceRequest(userID int64) *models.CreateCarRequest {
	return &models.CreateCarRequest{
		UserID:         userID,
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
