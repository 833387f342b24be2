package update_profile

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarsService/internal/api/handlers"
	"github.com/m04kA/SMC-CarsService/internal/api/middleware"
	"github.com/m04kA/SMC-CarsService/internal/service/auth"
	"github.com/m04kA/SMC-CarsService/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "username и email не могут быть пустыми"
	msgUserNotFound       = "пользователь не найден"
	msgUsernameTaken      = "пользователь с таким именем уже существует"
	msgEmailTaken         = "пользователь с таким email уже существует"
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

// Handle PUT /api/v1/users/me/
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.UpdateProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /users/me/ - Invalid request body: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			h.logger.Warn("PUT /users/me/ - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, auth.ErrUsernameTaken):
			h.logger.Warn("PUT /users/me/ - Username taken: user_id=%d", userID)
			handlers.RespondFieldErrors(w, handlers.FieldError("username", msgUsernameTaken))

		case errors.Is(err, auth.ErrEmailTaken):
			h.logger.Warn("PUT /users/me/ - Email taken: user_id=%d", userID)
			handlers.RespondFieldErrors(w, handlers.FieldError("email", msgEmailTaken))

		case errors.Is(err, auth.ErrInvalidInput):
			h.logger.Warn("PUT /users/me/ - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /users/me/ - Failed to update profile: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /users/me/ - Profile updated: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
