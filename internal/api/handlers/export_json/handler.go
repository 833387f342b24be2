package export_json

import (
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CarsService/internal/api/handlers"
	"github.com/m04kA/SMC-CarsService/internal/api/middleware"
	exportCars "github.com/m04kA/SMC-CarsService/internal/usecase/export_cars"
)

const msgUnauthorized = "требуется аутентификация"

type Handler struct {
	useCase ExportCarsUseCase
	logger  Logger
}

func NewHandler(useCase ExportCarsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/export-json/
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	filter := handlers.CarFilterFromQuery(r.URL.Query(), userID)

	filename := exportCars.Filename("json", time.Now())
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.useCase.ExportJSON(r.Context(), filter, w); err != nil {
		h.logger.Error("GET /export-json/ - Export failed: user_id=%d, error=%v", userID, err)
		return
	}

	h.logger.Info("GET /export-json/ - Export finished: user_id=%d, file=%s", userID, filename)
}
