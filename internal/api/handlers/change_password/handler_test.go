package change_password_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarsService/internal/api/handlers/change_password"
	"github.com/m04kA/SMC-CarsService/internal/api/middleware"
	"github.com/m04kA/SMC-CarsService/internal/service/auth"
	"github.com/m04kA/SMC-CarsService/internal/service/auth/models"
)

type fakeAuthService struct {
	err error

	gotUserID int64
	gotReq    *models.ChangePasswordRequest
}

func (f *fakeAuthService) ChangePassword(_ context.Context, userID int64, req *models.ChangePasswordRequest) error {
	f.gotUserID = userID
	f.gotReq = req
	return f.err
}

type staticVerifier struct {
	userID int64
}

func (v staticVerifier) VerifyToken(string) (int64, error) {
	return v.userID, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(svc *fakeAuthService, body string) *httptest.ResponseRecorder {
	handler := change_password.NewHandler(svc, nopLogger{})

	r := mux.NewRouter()
	protected := r.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(staticVerifier{userID: 7}))
	protected.HandleFunc("/users/change-password/", handler.Handle).Methods(http.MethodPut)

	req := httptest.NewRequest(http.MethodPut, "/users/change-password/", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer token")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	svc := &fakeAuthService{}

	rec := doRequest(svc, `{"current_password": "old", "new_password": "newsecret"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), svc.gotUserID)
	require.NotNil(t, svc.gotReq)
	assert.Equal(t, "old", svc.gotReq.CurrentPassword)
	assert.Equal(t, "newsecret", svc.gotReq.NewPassword)
}

func TestHandle_WrongCurrentPassword(t *testing.T) {
	svc := &fakeAuthService{err: auth.ErrWrongPassword}

	rec := doRequest(svc, `{"current_password": "bad", "new_password": "newsecret"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Ошибка привязана к конкретному полю формы
	var body map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body["current_password"], 1)
	assert.NotContains(t, body, "new_password")
}

func TestHandle_PasswordTooShort(t *testing.T) {
	svc := &fakeAuthService{err: auth.ErrPasswordTooShort}

	rec := doRequest(svc, `{"current_password": "old", "new_password": "abc"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body["new_password"], 1)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := doRequest(&fakeAuthService{}, "{broken")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
