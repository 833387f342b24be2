package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarsService/internal/config"
	"github.com/m04kA/SMC-CarsService/internal/domain"
	userRepo "github.com/m04kA/SMC-CarsService/internal/infra/storage/user"
	"github.com/m04kA/SMC-CarsService/internal/service/auth"
	"github.com/m04kA/SMC-CarsService/internal/service/auth/models"
)

type fakeUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*domain.User), nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range f.users {
		if existing.Username == user.Username {
			return nil, userRepo.ErrUsernameTaken
		}
		if existing.Email == user.Email {
			return nil, userRepo.ErrEmailTaken
		}
	}

	created := *user
	created.ID = f.nextID
	f.nextID++
	f.users[created.ID] = &created
	return &created, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, userRepo.ErrUserNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, id int64, update domain.UserUpdate) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}

	if update.Username != nil {
		user.Username = *update.Username
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	return user, nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	user, ok := f.users[id]
	if !ok {
		return userRepo.ErrUserNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return userRepo.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() (*auth.Service, *fakeUserRepo) {
	repo := newFakeUserRepo()
	cfg := config.AuthConfig{JWTSecret: "test-secret", TokenTTLHours: 1}
	return auth.NewService(repo, cfg, nopLogger{}), repo
}

func registerUser(t *testing.T, svc *auth.Service) *models.RegisterResponse {
	t.Helper()

	result, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username:  "jan",
		Email:     "jan@example.com",
		Password:  "secret123",
		FirstName: "Jan",
		LastName:  "Kowalski",
	})
	require.NoError(t, err)
	return result
}

func TestRegister_IssuesVerifiableToken(t *testing.T) {
	svc, _ := newTestService()

	result := registerUser(t, svc)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "jan", result.User.Username)

	userID, err := svc.VerifyToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, userID)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, _ := newTestService()
	registerUser(t, svc)

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "jan",
		Email:    "other@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, auth.ErrUsernameTaken)

	_, err = svc.Register(context.Background(), &models.RegisterRequest{
		Username: "other",
		Email:    "jan@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, auth.ErrEmailTaken)
}

func TestRegister_MissingFields(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "jan",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidInput)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService()
	registered := registerUser(t, svc)

	result, err := svc.Login(context.Background(), &models.LoginRequest{
		Username: "jan",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, result.UserID)
	assert.Equal(t, "jan@example.com", result.Email)
	assert.NotEmpty(t, result.Token)

	// Неверный пароль и неизвестный пользователь дают одну и ту же ошибку
	_, err = svc.Login(context.Background(), &models.LoginRequest{
		Username: "jan",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &models.LoginRequest{
		Username: "nobody",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestVerifyToken_RejectsGarbage(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.VerifyToken("not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := newTestService()
	registered := registerUser(t, svc)

	newName := "Janusz"
	result, err := svc.UpdateProfile(context.Background(), registered.User.ID, &models.UpdateProfileRequest{
		FirstName: &newName,
	})
	require.NoError(t, err)
	assert.Equal(t, "Janusz", result.FirstName)
	assert.Equal(t, "jan", result.Username)

	// Пустое обновление возвращает текущий профиль
	result, err = svc.UpdateProfile(context.Background(), registered.User.ID, &models.UpdateProfileRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Janusz", result.FirstName)

	// Пустой username отклоняется
	empty := ""
	_, err = svc.UpdateProfile(context.Background(), registered.User.ID, &models.UpdateProfileRequest{
		Username: &empty,
	})
	assert.ErrorIs(t, err, auth.ErrInvalidInput)
}

func TestChangePassword(t *testing.T) {
	svc, _ := newTestService()
	registered := registerUser(t, svc)
	userID := registered.User.ID

	// Неверный текущий пароль
	err := svc.ChangePassword(context.Background(), userID, &models.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "newsecret",
	})
	assert.ErrorIs(t, err, auth.ErrWrongPassword)

	// Слишком короткий новый пароль
	err = svc.ChangePassword(context.Background(), userID, &models.ChangePasswordRequest{
		CurrentPassword: "secret123",
		NewPassword:     "abc",
	})
	assert.ErrorIs(t, err, auth.ErrPasswordTooShort)

	// Успешная смена: старый пароль перестает работать, новый работает
	err = svc.ChangePassword(context.Background(), userID, &models.ChangePasswordRequest{
		CurrentPassword: "secret123",
		NewPassword:     "newsecret",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &models.LoginRequest{Username: "jan", Password: "secret123"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &models.LoginRequest{Username: "jan", Password: "newsecret"})
	assert.NoError(t, err)
}

func TestDeleteAccount(t *testing.T) {
	svc, repo := newTestService()
	registered := registerUser(t, svc)

	err := svc.DeleteAccount(context.Background(), registered.User.ID)
	require.NoError(t, err)
	assert.Empty(t, repo.users)

	err = svc.DeleteAccount(context.Background(), registered.User.ID)
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}
