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

	cancelAppointmentHandler "github.com/m04kA/HD-AppointmentService/internal/api/handlers/cancel_appointment"
	completeAppointmentHandler "github.com/m04kA/HD-AppointmentService/internal/api/handlers/complete_appointment"
	createAppointmentHandler "github.com/m04kA/HD-AppointmentService/internal/api/handlers/create_appointment"
	createDoctorHandler "github.com/m04kA/HD-AppointmentService/internal/api/handlers/create_doctor"
	createResourceHandler "github.com/m04kA/HD-AppointmentService/internal/api/handlers/create_resource"
	deleteResourceHandler "github.com/m04kA/HD-AppointmentService/internal/api/handlers/delete_resource"
	getAppointmentHandler "github.com/m04kA/HD-AppointmentService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/HD-AppointmentService/internal/api/handlers/get_available_slots"
	getDoctorHandler "github.com/m04kA/HD-AppointmentService/internal/api/handlers/get_doctor"
	getDoctorAppointmentsHandler "github.com/m04kA/HD-AppointmentService/internal/api/handlers/get_doctor_appointments"
	getPredictionHistoryHandler "github.com/m04kA/HD-AppointmentService/internal/api/handlers/get_prediction_history"
	getResourceHandler "github.com/m04kA/HD-AppointmentService/internal/api/handlers/get_resource"
	getUserActivityHandler "github.com/m04kA/HD-AppointmentService/internal/api/handlers/get_user_activity"
	getUserAppointmentsHandler "github.com/m04kA/HD-AppointmentService/internal/api/handlers/get_user_appointments"
	listResourcesHandler "github.com/m04kA/HD-AppointmentService/internal/api/handlers/list_resources"
	predictRiskHandler "github.com/m04kA/HD-AppointmentService/internal/api/handlers/predict_risk"
	searchDoctorsHandler "github.com/m04kA/HD-AppointmentService/internal/api/handlers/search_doctors"
	updateDoctorScheduleHandler "github.com/m04kA/HD-AppointmentService/internal/api/handlers/update_doctor_schedule"
	updateResourceHandler "github.com/m04kA/HD-AppointmentService/internal/api/handlers/update_resource"
	"github.com/m04kA/HD-AppointmentService/internal/api/middleware"
	"github.com/m04kA/HD-AppointmentService/internal/config"
	activityRepo "github.com/m04kA/HD-AppointmentService/internal/infra/storage/activity"
	appointmentRepo "github.com/m04kA/HD-AppointmentService/internal/infra/storage/appointment"
	doctorRepo "github.com/m04kA/HD-AppointmentService/internal/infra/storage/doctor"
	predictionRepo "github.com/m04kA/HD-AppointmentService/internal/infra/storage/prediction"
	resourceRepo "github.com/m04kA/HD-AppointmentService/internal/infra/storage/resource"
	predictorClient "github.com/m04kA/HD-AppointmentService/internal/integrations/predictor"
	activityService "github.com/m04kA/HD-AppointmentService/internal/service/activity"
	appointmentsService "github.com/m04kA/HD-AppointmentService/internal/service/appointments"
	doctorsService "github.com/m04kA/HD-AppointmentService/internal/service/doctors"
	predictionsService "github.com/m04kA/HD-AppointmentService/internal/service/predictions"
	resourcesService "github.com/m04kA/HD-AppointmentService/internal/service/resources"
	createAppointmentUC "github.com/m04kA/HD-AppointmentService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/HD-AppointmentService/internal/usecase/get_available_slots"
	predictRiskUC "github.com/m04kA/HD-AppointmentService/internal/usecase/predict_risk"
	"github.com/m04kA/HD-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/HD-AppointmentService/pkg/logger"
	"github.com/m04kA/HD-AppointmentService/pkg/metrics"
	"github.com/m04kA/HD-AppointmentService/pkg/simpletxmanager"
	"github.com/m04kA/HD-AppointmentService/pkg/txmanager"
)

// TxManager общий интерфейс для txmanager и simpletxmanager
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

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

	log.Info("Starting HD-AppointmentService...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем клиент модели предсказания
	predictor := predictorClient.NewClient(
		cfg.Predictor.URL,
		time.Duration(cfg.Predictor.Timeout)*time.Second,
		log,
	)
	log.Info("Predictor client initialized (url=%s)", cfg.Predictor.URL)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		doctorRepository      *doctorRepo.Repository
		predictionRepository  *predictionRepo.Repository
		resourceRepository    *resourceRepo.Repository
		activityRepository    *activityRepo.Repository
		txMgr                 TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		doctorRepository = doctorRepo.NewRepository(wrappedDB)
		predictionRepository = predictionRepo.NewRepository(wrappedDB)
		resourceRepository = resourceRepo.NewRepository(wrappedDB)
		activityRepository = activityRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		doctorRepository = doctorRepo.NewRepository(db)
		predictionRepository = predictionRepo.NewRepository(db)
		resourceRepository = resourceRepo.NewRepository(db)
		activityRepository = activityRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(appointmentRepository, activityRepository, log)
	doctorSvc := doctorsService.NewService(doctorRepository, log)
	predictionSvc := predictionsService.NewService(predictionRepository, log)
	resourceSvc := resourcesService.NewService(resourceRepository, log)
	activitySvc := activityService.NewService(activityRepository, log)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		doctorRepository,
		activityRepository,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		doctorRepository,
		appointmentRepository,
		log,
	)

	predictRiskUseCase := predictRiskUC.NewUseCase(
		predictionRepository,
		activityRepository,
		predictor,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	completeAppointment := completeAppointmentHandler.NewHandler(appointmentSvc, log)
	getUserAppointments := getUserAppointmentsHandler.NewHandler(appointmentSvc, log)
	getDoctorAppointments := getDoctorAppointmentsHandler.NewHandler(appointmentSvc, log)
	searchDoctors := searchDoctorsHandler.NewHandler(doctorSvc, log)
	getDoctor := getDoctorHandler.NewHandler(doctorSvc, log)
	createDoctor := createDoctorHandler.NewHandler(doctorSvc, log)
	updateDoctorSchedule := updateDoctorScheduleHandler.NewHandler(doctorSvc, log)
	predictRisk := predictRiskHandler.NewHandler(predictRiskUseCase, log)
	getPredictionHistory := getPredictionHistoryHandler.NewHandler(predictionSvc, log)
	getUserActivity := getUserActivityHandler.NewHandler(activitySvc, log)
	listResources := listResourcesHandler.NewHandler(resourceSvc, log)
	getResource := getResourceHandler.NewHandler(resourceSvc, log)
	createResource := createResourceHandler.NewHandler(resourceSvc, log)
	updateResource := updateResourceHandler.NewHandler(resourceSvc, log)
	deleteResource := deleteResourceHandler.NewHandler(resourceSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Публичные маршруты (без аутентификации)
	api.HandleFunc("/doctors/search", searchDoctors.Handle).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{doctorId}", getDoctor.Handle).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{doctorId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/resources", listResources.Handle).Methods(http.MethodGet)
	api.HandleFunc("/resources/{resourceId}", getResource.Handle).Methods(http.MethodGet)

	// Защищенные маршруты (требуют X-User-ID)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Записи на прием
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/complete", completeAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/appointments", getUserAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/{doctorId}/appointments", getDoctorAppointments.Handle).Methods(http.MethodGet)

	// Предсказание риска
	protected.HandleFunc("/predictions", predictRisk.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/users/{userId}/predictions", getPredictionHistory.Handle).Methods(http.MethodGet)

	// Журнал активности
	protected.HandleFunc("/users/{userId}/activity", getUserActivity.Handle).Methods(http.MethodGet)

	// Управление справочниками
	protected.HandleFunc("/doctors", createDoctor.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/doctors/{doctorId}/schedule", updateDoctorSchedule.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/resources", createResource.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/resources/{resourceId}", updateResource.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/resources/{resourceId}", deleteResource.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
