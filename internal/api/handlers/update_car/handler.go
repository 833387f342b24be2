package update_car

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CarsService/internal/api/handlers"
	"github.com/m04kA/SMC-CarsService/internal/api/middleware"
	"github.com/m04kA/SMC-CarsService/internal/service/cars"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCarID       = "некорректный ID объявления"
	msgInvalidInput       = "некорректные данные объявления"
	msgCarNotFound        = "объявление не найдено"
	msgAccessDenied       = "объявление принадлежит другому пользователю"
	msgUnauthorized       = "требуется аутентификация"
)

type Handler struct {
	service CarsService
	logger  Logger
}

func NewHandler(service CarsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT/PATCH /api/v1/cars/{carId}/.
// PUT заменяет объявление целиком, PATCH применяет только переданные поля.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	carID, err := strconv.ParseInt(mux.Vars(r)["carId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s /cars/{carId}/ - Invalid car ID: %v", r.Method, err)
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	var req UpdateCarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s /cars/{carId}/ - Invalid request body: %v", r.Method, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	partial := r.Method == http.MethodPatch
	result, err := h.service.Update(r.Context(), req.ToServiceRequest(userID, carID, partial))
	if err != nil {
		switch {
		case errors.Is(err, cars.ErrCarNotFound):
			h.logger.Warn("%s /cars/{carId}/ - Car not found: car_id=%d, user_id=%d", r.Method, carID, userID)
			handlers.RespondNotFound(w, msgCarNotFound)

		case errors.Is(err, cars.ErrAccessDenied):
			h.logger.Warn("%s /cars/{carId}/ - Access denied: car_id=%d, user_id=%d", r.Method, carID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, cars.ErrInvalidInput):
			h.logger.Warn("%s /cars/{carId}/ - Invalid input: car_id=%d, user_id=%d, error=%v",
				r.Method, carID, userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("%s /cars/{carId}/ - Failed to update car: car_id=%d, user_id=%d, error=%v",
				r.Method, carID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s /cars/{carId}/ - Car updated successfully: car_id=%d, user_id=%d", r.Method, carID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
