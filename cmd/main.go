package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	changePasswordHandler "github.com/m04kA/SMC-CarsService/internal/api/handlers/change_password"
	createCarHandler "github.com/m04kA/SMC-CarsService/internal/api/handlers/create_car"
	deleteAccountHandler "github.com/m04kA/SMC-CarsService/internal/api/handlers/delete_account"
	deleteCarHandler "github.com/m04kA/SMC-CarsService/internal/api/handlers/delete_car"
	exportCSVHandler "github.com/m04kA/SMC-CarsService/internal/api/handlers/export_csv"
	exportJSONHandler "github.com/m04kA/SMC-CarsService/internal/api/handlers/export_json"
	getCarHandler "github.com/m04kA/SMC-CarsService/internal/api/handlers/get_car"
	getDistinctValuesHandler "github.com/m04kA/SMC-CarsService/internal/api/handlers/get_distinct_values"
	getProfileHandler "github.com/m04kA/SMC-CarsService/internal/api/handlers/get_profile"
	getRecentCarsHandler "github.com/m04kA/SMC-CarsService/internal/api/handlers/get_recent_cars"
	getStatisticsHandler "github.com/m04kA/SMC-CarsService/internal/api/handlers/get_statistics"
	listCarsHandler "github.com/m04kA/SMC-CarsService/internal/api/handlers/list_cars"
	loginHandler "github.com/m04kA/SMC-CarsService/internal/api/handlers/login"
	registerHandler "github.com/m04kA/SMC-CarsService/internal/api/handlers/register"
	updateCarHandler "github.com/m04kA/SMC-CarsService/internal/api/handlers/update_car"
	updateProfileHandler "github.com/m04kA/SMC-CarsService/internal/api/handlers/update_profile"
	uploadCSVHandler "github.com/m04kA/SMC-CarsService/internal/api/handlers/upload_csv"
	"github.com/m04kA/SMC-CarsService/internal/api/middleware"
	"github.com/m04kA/SMC-CarsService/internal/config"
	carRepo "github.com/m04kA/SMC-CarsService/internal/infra/storage/car"
	userRepo "github.com/m04kA/SMC-CarsService/internal/infra/storage/user"
	authService "github.com/m04kA/SMC-CarsService/internal/service/auth"
	carsService "github.com/m04kA/SMC-CarsService/internal/service/cars"
	statsService "github.com/m04kA/SMC-CarsService/internal/service/stats"
	exportCarsUC "github.com/m04kA/SMC-CarsService/internal/usecase/export_cars"
	importCarsUC "github.com/m04kA/SMC-CarsService/internal/usecase/import_cars"
	"github.com/m04kA/SMC-CarsService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CarsService/pkg/logger"
	"github.com/m04kA/SMC-CarsService/pkg/metrics"
	"github.com/m04kA/SMC-CarsService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-CarsService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-CarsService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		carRepository  *carRepo.Repository
		userRepository *userRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		carRepository = carRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		carRepository = carRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	carsSvc := carsService.NewService(carRepository, log)
	statsSvc := statsService.NewService(carRepository, log)
	authSvc := authService.NewService(userRepository, cfg.Auth, log)

	// Инициализируем use cases
	importCarsUseCase := importCarsUC.NewUseCase(carRepository, txMgr, log)
	exportCarsUseCase := exportCarsUC.NewUseCase(carRepository, log)

	// Инициализируем handlers
	register := registerHandler.NewHandler(authSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	getProfile := getProfileHandler.NewHandler(authSvc, log)
	updateProfile := updateProfileHandler.NewHandler(authSvc, log)
	deleteAccount := deleteAccountHandler.NewHandler(authSvc, log)
	changePassword := changePasswordHandler.NewHandler(authSvc, log)

	createCar := createCarHandler.NewHandler(carsSvc, log)
	listCars := listCarsHandler.NewHandler(carsSvc, log)
	getCar := getCarHandler.NewHandler(carsSvc, log)
	updateCar := updateCarHandler.NewHandler(carsSvc, log)
	deleteCar := deleteCarHandler.NewHandler(carsSvc, log)
	getDistinctValues := getDistinctValuesHandler.NewHandler(carsSvc, log)
	getRecentCars := getRecentCarsHandler.NewHandler(carsSvc, log)
	getStatistics := getStatisticsHandler.NewHandler(statsSvc, log)
	uploadCSV := uploadCSVHandler.NewHandler(importCarsUseCase, log)
	exportCSV := exportCSVHandler.NewHandler(exportCarsUseCase, log)
	exportJSON := exportJSONHandler.NewHandler(exportCarsUseCase, log)

	// Настраиваем роутер
	routes := routeHandlers{
		register:          register.Handle,
		login:             login.Handle,
		getProfile:        getProfile.Handle,
		updateProfile:     updateProfile.Handle,
		deleteAccount:     deleteAccount.Handle,
		changePassword:    changePassword.Handle,
		createCar:         createCar.Handle,
		listCars:          listCars.Handle,
		getCar:            getCar.Handle,
		updateCar:         updateCar.Handle,
		deleteCar:         deleteCar.Handle,
		getStatistics:     getStatistics.Handle,
		getDistinctValues: getDistinctValues.Handle,
		getRecentCars:     getRecentCars.Handle,
		uploadCSV:         uploadCSV.Handle,
		exportCSV:         exportCSV.Handle,
		exportJSON:        exportJSON.Handle,
	}
	r := newRouter(routes, middleware.Auth(authSvc))

	// Metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("HTTP metrics middleware enabled, endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// routeHandlers обработчики всех ручек API
type routeHandlers struct {
	register       http.HandlerFunc
	login          http.HandlerFunc
	getProfile     http.HandlerFunc
	updateProfile  http.HandlerFunc
	deleteAccount  http.HandlerFunc
	changePassword http.HandlerFunc

	createCar         http.HandlerFunc
	listCars          http.HandlerFunc
	getCar            http.HandlerFunc
	updateCar         http.HandlerFunc
	deleteCar         http.HandlerFunc
	getStatistics     http.HandlerFunc
	getDistinctValues http.HandlerFunc
	getRecentCars     http.HandlerFunc
	uploadCSV         http.HandlerFunc
	exportCSV         http.HandlerFunc
	exportJSON        http.HandlerFunc
}

// newRouter собирает маршруты API. Пути и методы повторяют контракт,
// на который завязаны существующие клиенты: канонична форма с
// завершающим слэшем, StrictSlash редиректит форму без слэша.
func newRouter(h routeHandlers, auth mux.MiddlewareFunc) *mux.Router {
	r := mux.NewRouter().StrictSlash(true)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Публичные ручки (без аутентификации)
	api.HandleFunc("/register/", h.register).Methods(http.MethodPost)
	api.HandleFunc("/login/", h.login).Methods(http.MethodPost)

	// Остальные требуют Bearer токен
	protected := api.PathPrefix("").Subrouter()
	protected.Use(auth)

	// --- Объявления ---
	protected.HandleFunc("/cars/", h.createCar).Methods(http.MethodPost)
	protected.HandleFunc("/cars/", h.listCars).Methods(http.MethodGet)
	protected.HandleFunc("/cars/{carId:[0-9]+}/", h.getCar).Methods(http.MethodGet)
	protected.HandleFunc("/cars/{carId:[0-9]+}/", h.updateCar).Methods(http.MethodPut, http.MethodPatch)
	protected.HandleFunc("/cars/{carId:[0-9]+}/", h.deleteCar).Methods(http.MethodDelete)

	protected.HandleFunc("/upload-csv/", h.uploadCSV).Methods(http.MethodPost)
	protected.HandleFunc("/export-csv/", h.exportCSV).Methods(http.MethodGet)
	protected.HandleFunc("/export-json/", h.exportJSON).Methods(http.MethodGet)
	protected.HandleFunc("/statistics/", h.getStatistics).Methods(http.MethodGet)
	protected.HandleFunc("/distinct/", h.getDistinctValues).Methods(http.MethodGet)
	protected.HandleFunc("/recent-cars/", h.getRecentCars).Methods(http.MethodGet)

	// --- Учетная запись ---
	protected.HandleFunc("/users/me/", h.getProfile).Methods(http.MethodGet)
	protected.HandleFunc("/users/me/", h.updateProfile).Methods(http.MethodPut)
	protected.HandleFunc("/users/me/", h.deleteAccount).Methods(http.MethodDelete)
	protected.HandleFunc("/users/change-password/", h.changePassword).Methods(http.MethodPut)

	return r
}
