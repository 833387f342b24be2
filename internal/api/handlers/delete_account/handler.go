package delete_account

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarsService/internal/api/handlers"
	"github.com/m04kA/SMC-CarsService/internal/api/middleware"
	"github.com/m04kA/SMC-CarsService/internal/service/auth"
)

const (
	msgUserNotFound = "пользователь не найден"
	msgUnauthorized = "требуется аутентификация"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/users/me/.
// Вместе с учетной записью каскадно удаляются все объявления пользователя.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	if err := h.service.DeleteAccount(r.Context(), userID); err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			h.logger.Warn("DELETE /users/me/ - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("DELETE /users/me/ - Failed to delete account: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /users/me/ - Account deleted: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
