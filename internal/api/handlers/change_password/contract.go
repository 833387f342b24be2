package change_password

import (
	"context"

	"github.com/m04kA/SMC-CarsService/internal/service/auth/models"
)

type AuthService interface {
	ChangePassword(ctx context.Context, userID int64, req *models.ChangePasswordRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
