package list_cars

import (
	"net/http"

	"github.com/m04kA/SMC-CarsService/internal/api/handlers"
	"github.com/m04kA/SMC-CarsService/internal/api/middleware"
	"github.com/m04kA/SMC-CarsService/internal/service/cars/models"
)

const msgUnauthorized = "требуется аутентификация"

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

// Handle GET /api/v1/cars/
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	query := r.URL.Query()
	page, pageSize := handlers.PageFromQuery(query)

	result, err := h.service.List(r.Context(), &models.ListCarsRequest{
		Filter:   handlers.CarFilterFromQuery(query, userID),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		h.logger.Error("GET /cars/ - Failed to list cars: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /cars/ - Listed %d of %d cars: user_id=%d, page=%d",
		len(result.Results), result.Count, userID, result.Page)
	handlers.RespondJSON(w, http.StatusOK, result)
}
