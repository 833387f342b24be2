package get_car_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarsService/internal/api/handlers/get_car"
	"github.com/m04kA/SMC-CarsService/internal/api/middleware"
	"github.com/m04kA/SMC-CarsService/internal/service/cars"
	"github.com/m04kA/SMC-CarsService/internal/service/cars/models"
)

type fakeCarsService struct {
	car *models.CarResponse
	err error

	gotID     int64
	gotUserID int64
}

func (f *fakeCarsService) GetByID(_ context.Context, id int64, userID int64) (*models.CarResponse, error) {
	f.gotID = id
	f.gotUserID = userID
	return f.car, f.err
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

func doRequest(svc *fakeCarsService, path string) *httptest.ResponseRecorder {
	handler := get_car.NewHandler(svc, nopLogger{})

	r := mux.NewRouter()
	protected := r.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(staticVerifier{userID: 7}))
	protected.HandleFunc("/cars/{carId:[0-9]+}/", handler.Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer token")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_ReturnsCar(t *testing.T) {
	svc := &fakeCarsService{
		car: &models.CarResponse{ID: 15, Mark: "Toyota", Model: "Corolla", Price: 65000},
	}

	rec := doRequest(svc, "/cars/15/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(15), svc.gotID)
	assert.Equal(t, int64(7), svc.gotUserID)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Toyota", body["mark"])
	assert.NotContains(t, body, "user_id")
}

func TestHandle_NotFound(t *testing.T) {
	svc := &fakeCarsService{err: cars.ErrCarNotFound}

	rec := doRequest(svc, "/cars/99/")

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
}

func TestHandle_WithoutToken(t *testing.T) {
	handler := get_car.NewHandler(&fakeCarsService{}, nopLogger{})

	r := mux.NewRouter()
	protected := r.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(staticVerifier{userID: 7}))
	protected.HandleFunc("/cars/{carId:[0-9]+}/", handler.Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/cars/15/", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
