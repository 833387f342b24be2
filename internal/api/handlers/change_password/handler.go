package change_password

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-CarsService/internal/api/handlers"
	"github.com/m04kA/SMC-CarsService/internal/api/middleware"
	"github.com/m04kA/SMC-CarsService/internal/domain"
	"github.com/m04kA/SMC-CarsService/internal/service/auth"
	"github.com/m04kA/SMC-CarsService/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgWrongPassword      = "текущий пароль указан неверно"
	msgUserNotFound       = "пользователь не найден"
	msgUnauthorized       = "требуется аутентификация"
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

// Handle PUT /api/v1/users/change-password/.
// Ошибки валидации возвращаются в формате {"field": ["message"]} -
// формы на фронтенде подсвечивают конкретное поле.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.ChangePasswordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /users/change-password/ - Invalid request body: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.ChangePassword(r.Context(), userID, &req); err != nil {
		switch {
		case errors.Is(err, auth.ErrWrongPassword):
			h.logger.Warn("PUT /users/change-password/ - Wrong current password: user_id=%d", userID)
			handlers.RespondFieldErrors(w, handlers.FieldError("current_password", msgWrongPassword))

		case errors.Is(err, auth.ErrPasswordTooShort):
			h.logger.Warn("PUT /users/change-password/ - New password too short: user_id=%d", userID)
			handlers.RespondFieldErrors(w, handlers.FieldError("new_password",
				fmt.Sprintf("пароль должен быть не короче %d символов", domain.MinPasswordLength)))

		case errors.Is(err, auth.ErrUserNotFound):
			h.logger.Warn("PUT /users/change-password/ - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("PUT /users/change-password/ - Failed to change password: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /users/change-password/ - Password changed: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, handlers.DetailResponse{Detail: "пароль успешно изменен"})
}
