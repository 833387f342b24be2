package register

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarsService/internal/api/handlers"
	"github.com/m04kA/SMC-CarsService/internal/service/auth"
	"github.com/m04kA/SMC-CarsService/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingFields      = "username, email и password обязательны"
	msgUsernameTaken      = "пользователь с таким именем уже существует"
	msgEmailTaken         = "пользователь с таким email уже существует"
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

// Handle POST /api/v1/register/.
// Ошибки уникальности возвращаются в формате {"field": ["message"]} -
// формы на фронтенде подсвечивают конкретное поле.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /register/ - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUsernameTaken):
			h.logger.Warn("POST /register/ - Username taken: username=%s", req.Username)
			handlers.RespondFieldErrors(w, handlers.FieldError("username", msgUsernameTaken))

		case errors.Is(err, auth.ErrEmailTaken):
			h.logger.Warn("POST /register/ - Email taken: email=%s", req.Email)
			handlers.RespondFieldErrors(w, handlers.FieldError("email", msgEmailTaken))

		case errors.Is(err, auth.ErrInvalidInput):
			h.logger.Warn("POST /register/ - Missing fields: username=%s", req.Username)
			handlers.RespondBadRequest(w, msgMissingFields)

		default:
			h.logger.Error("POST /register/ - Failed to register: username=%s, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /register/ - User registered: user_id=%d, username=%s",
		result.User.ID, result.User.Username)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
