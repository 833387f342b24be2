package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-CarsService/internal/config"
	"github.com/m04kA/SMC-CarsService/internal/domain"
	userRepo "github.com/m04kA/SMC-CarsService/internal/infra/storage/user"
	"github.com/m04kA/SMC-CarsService/internal/service/auth/models"
)

// Service сервис учетных записей: регистрация, вход, профиль, пароль
type Service struct {
	userRepo  UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
	logger    Logger
}

// NewService создает новый экземпляр сервиса учетных записей
func NewService(userRepo UserRepository, cfg config.AuthConfig, logger Logger) *Service {
	return &Service{
		userRepo:  userRepo,
		jwtSecret: []byte(cfg.JWTSecret),
		tokenTTL:  time.Duration(cfg.TokenTTLHours) * time.Hour,
		logger:    logger,
	}
}

// Register регистрирует пользователя и возвращает токен вместе с профилем
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error) {
	s.logger.Info("Register: registering user username=%s", req.Username)

	if req.Username == "" || req.Email == "" || req.Password == "" {
		s.logger.Warn("Register: missing required fields for username=%s", req.Username)
		return nil, fmt.Errorf("%w: username, email and password are required", ErrInvalidInput)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Register: hash password for username=%s: %v", req.Username, err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	})
	if err != nil {
		switch {
		case errors.Is(err, userRepo.ErrUsernameTaken):
			s.logger.Warn("Register: username=%s already taken", req.Username)
			return nil, ErrUsernameTaken
		case errors.Is(err, userRepo.ErrEmailTaken):
			s.logger.Warn("Register: email=%s already taken", req.Email)
			return nil, ErrEmailTaken
		default:
			s.logger.Error("Register: repository error for username=%s: %v", req.Username, err)
			return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
		}
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		s.logger.Error("Register: issue token for user=%d: %v", user.ID, err)
		return nil, err
	}

	s.logger.Info("Register: successfully registered user id=%d username=%s", user.ID, user.Username)
	return &models.RegisterResponse{
		Token: token,
		User:  *models.FromDomainUser(user),
	}, nil
}

// Login проверяет учетные данные и возвращает токен
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	s.logger.Info("Login: login attempt username=%s", req.Username)

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown username=%s", req.Username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for username=%s: %v", req.Username, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for username=%s", req.Username)
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		s.logger.Error("Login: issue token for user=%d: %v", user.ID, err)
		return nil, err
	}

	s.logger.Info("Login: successful login user id=%d username=%s", user.ID, user.Username)
	return &models.LoginResponse{
		Token:     token,
		UserID:    user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}, nil
}

// GetProfile возвращает профиль пользователя
func (s *Service) GetProfile(ctx context.Context, userID int64) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetProfile: user id=%d not found", userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetProfile: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetProfile - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUser(user), nil
}

// UpdateProfile частично обновляет профиль.
// Уникальность username/email проверяется заново, исключая самого
// пользователя (обновление без смены значения не конфликтует само с собой).
func (s *Service) UpdateProfile(ctx context.Context, userID int64, req *models.UpdateProfileRequest) (*models.UserResponse, error) {
	s.logger.Info("UpdateProfile: updating profile user=%d", userID)

	update := req.ToDomainUpdate()
	if update.IsEmpty() {
		return s.GetProfile(ctx, userID)
	}

	if update.Username != nil && *update.Username == "" {
		return nil, fmt.Errorf("%w: username cannot be empty", ErrInvalidInput)
	}
	if update.Email != nil && *update.Email == "" {
		return nil, fmt.Errorf("%w: email cannot be empty", ErrInvalidInput)
	}

	user, err := s.userRepo.Update(ctx, userID, update)
	if err != nil {
		switch {
		case errors.Is(err, userRepo.ErrUserNotFound):
			s.logger.Warn("UpdateProfile: user id=%d not found", userID)
			return nil, ErrUserNotFound
		case errors.Is(err, userRepo.ErrUsernameTaken):
			s.logger.Warn("UpdateProfile: username already taken, user=%d", userID)
			return nil, ErrUsernameTaken
		case errors.Is(err, userRepo.ErrEmailTaken):
			s.logger.Warn("UpdateProfile: email already taken, user=%d", userID)
			return nil, ErrEmailTaken
		default:
			s.logger.Error("UpdateProfile: repository error for user=%d: %v", userID, err)
			return nil, fmt.Errorf("%w: UpdateProfile - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("UpdateProfile: successfully updated profile user=%d", userID)
	return models.FromDomainUser(user), nil
}

// DeleteAccount удаляет учетную запись пользователя.
// Все объявления пользователя удаляются каскадно на уровне БД.
func (s *Service) DeleteAccount(ctx context.Context, userID int64) error {
	s.logger.Info("DeleteAccount: deleting account user=%d", userID)

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("DeleteAccount: user id=%d not found", userID)
			return ErrUserNotFound
		}
		s.logger.Error("DeleteAccount: repository error for user=%d: %v", userID, err)
		return fmt.Errorf("%w: DeleteAccount - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteAccount: successfully deleted account user=%d", userID)
	return nil
}

// ChangePassword меняет пароль после проверки текущего.
// Новый пароль должен быть не короче domain.MinPasswordLength символов.
func (s *Service) ChangePassword(ctx context.Context, userID int64, req *models.ChangePasswordRequest) error {
	s.logger.Info("ChangePassword: changing password user=%d", userID)

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("ChangePassword: repository error for user=%d: %v", userID, err)
		return fmt.Errorf("%w: ChangePassword - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		s.logger.Warn("ChangePassword: wrong current password user=%d", userID)
		return ErrWrongPassword
	}

	if len(req.NewPassword) < domain.MinPasswordLength {
		s.logger.Warn("ChangePassword: new password too short user=%d", userID)
		return ErrPasswordTooShort
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("ChangePassword: hash password for user=%d: %v", userID, err)
		return fmt.Errorf("%w: ChangePassword - hash password: %v", ErrInternal, err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, string(passwordHash)); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("ChangePassword: repository error for user=%d: %v", userID, err)
		return fmt.Errorf("%w: ChangePassword - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ChangePassword: successfully changed password user=%d", userID)
	return nil
}
