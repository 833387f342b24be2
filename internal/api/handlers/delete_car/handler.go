package delete_car

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
	msgInvalidCarID = "некорректный ID объявления"
	msgCarNotFound  = "объявление не найдено"
	msgAccessDenied = "объявление принадлежит другому пользователю"
	msgUnauthorized = "требуется аутентификация"
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

// Handle DELETE /api/v1/cars/{carId}/
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	carID, err := strconv.ParseInt(mux.Vars(r)["carId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /cars/{carId}/ - Invalid car ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	if err := h.service.Delete(r.Context(), carID, userID); err != nil {
		switch {
		case errors.Is(err, cars.ErrCarNotFound):
			h.logger.Warn("DELETE /cars/{carId}/ - Car not found: car_id=%d, user_id=%d", carID, userID)
			handlers.RespondNotFound(w, msgCarNotFound)

		case errors.Is(err, cars.ErrAccessDenied):
			h.logger.Warn("DELETE /cars/{carId}/ - Access denied: car_id=%d, user_id=%d", carID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("DELETE /cars/{carId}/ - Failed to delete car: car_id=%d, user_id=%d, error=%v",
				carID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /cars/{carId}/ - Car deleted successfully: car_id=%d, user_id=%d", carID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
