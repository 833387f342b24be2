package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func markHandler(called *string, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		*called = name
		w.WriteHeader(http.StatusNoContent)
	}
}

func testRouter(called *string) *mux.Router {
	h := routeHandlers{
		register:          markHandler(called, "register"),
		login:             markHandler(called, "login"),
		getProfile:        markHandler(called, "getProfile"),
		updateProfile:     markHandler(called, "updateProfile"),
		deleteAccount:     markHandler(called, "deleteAccount"),
		changePassword:    markHandler(called, "changePassword"),
		createCar:         markHandler(called, "createCar"),
		listCars:          markHandler(called, "listCars"),
		getCar:            markHandler(called, "getCar"),
		updateCar:         markHandler(called, "updateCar"),
		deleteCar:         markHandler(called, "deleteCar"),
		getStatistics:     markHandler(called, "getStatistics"),
		getDistinctValues: markHandler(called, "getDistinctValues"),
		getRecentCars:     markHandler(called, "getRecentCars"),
		uploadCSV:         markHandler(called, "uploadCSV"),
		exportCSV:         markHandler(called, "exportCSV"),
		exportJSON:        markHandler(called, "exportJSON"),
	}

	passAuth := mux.MiddlewareFunc(func(next http.Handler) http.Handler {
		return next
	})

	return newRouter(h, passAuth)
}

func TestNewRouter_Paths(t *testing.T) {
	tests := []struct {
		method string
		path   string
		want   string
	}{
		{http.MethodPost, "/api/v1/register/", "register"},
		{http.MethodPost, "/api/v1/login/", "login"},

		{http.MethodPost, "/api/v1/cars/", "createCar"},
		{http.MethodGet, "/api/v1/cars/", "listCars"},
		{http.MethodGet, "/api/v1/cars/15/", "getCar"},
		{http.MethodPut, "/api/v1/cars/15/", "updateCar"},
		{http.MethodPatch, "/api/v1/cars/15/", "updateCar"},
		{http.MethodDelete, "/api/v1/cars/15/", "deleteCar"},

		{http.MethodPost, "/api/v1/upload-csv/", "uploadCSV"},
		{http.MethodGet, "/api/v1/export-csv/", "exportCSV"},
		{http.MethodGet, "/api/v1/export-json/", "exportJSON"},
		{http.MethodGet, "/api/v1/statistics/", "getStatistics"},
		{http.MethodGet, "/api/v1/distinct/", "getDistinctValues"},
		{http.MethodGet, "/api/v1/recent-cars/", "getRecentCars"},

		{http.MethodGet, "/api/v1/users/me/", "getProfile"},
		{http.MethodPut, "/api/v1/users/me/", "updateProfile"},
		{http.MethodDelete, "/api/v1/users/me/", "deleteAccount"},
		{http.MethodPut, "/api/v1/users/change-password/", "changePassword"},
	}

	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			var called string
			r := testRouter(&called)

			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			require.Equal(t, http.StatusNoContent, rec.Code)
			assert.Equal(t, tc.want, called)
		})
	}
}

// Форма без завершающего слэша редиректится на каноническую.
func TestNewRouter_RedirectsMissingSlash(t *testing.T) {
	var called string
	r := testRouter(&called)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/statistics", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/api/v1/statistics/", rec.Header().Get("Location"))
	assert.Empty(t, called)
}

func TestNewRouter_UnknownPath(t *testing.T) {
	var called string
	r := testRouter(&called)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cars/abc/", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, called)
}
