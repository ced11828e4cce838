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

	cancelAppointmentHandler "github.com/avtodetail/carshop-booking/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/avtodetail/carshop-booking/internal/api/handlers/create_appointment"
	exportICSHandler "github.com/avtodetail/carshop-booking/internal/api/handlers/export_ics"
	getAppointmentHandler "github.com/avtodetail/carshop-booking/internal/api/handlers/get_appointment"
	getAvailabilityHandler "github.com/avtodetail/carshop-booking/internal/api/handlers/get_availability"
	listAppointmentsHandler "github.com/avtodetail/carshop-booking/internal/api/handlers/list_appointments"
	listServicesHandler "github.com/avtodetail/carshop-booking/internal/api/handlers/list_services"
	updateStatusHandler "github.com/avtodetail/carshop-booking/internal/api/handlers/update_status"
	"github.com/avtodetail/carshop-booking/internal/api/middleware"
	"github.com/avtodetail/carshop-booking/internal/config"
	appointmentRepo "github.com/avtodetail/carshop-booking/internal/infra/storage/appointment"
	servicecatalogRepo "github.com/avtodetail/carshop-booking/internal/infra/storage/servicecatalog"
	telegramClient "github.com/avtodetail/carshop-booking/internal/integrations/telegram"
	"github.com/avtodetail/carshop-booking/internal/scheduling"
	appointmentsService "github.com/avtodetail/carshop-booking/internal/service/appointments"
	catalogService "github.com/avtodetail/carshop-booking/internal/service/catalog"
	createAppointmentUC "github.com/avtodetail/carshop-booking/internal/usecase/create_appointment"
	getAvailabilityUC "github.com/avtodetail/carshop-booking/internal/usecase/get_availability"
	"github.com/avtodetail/carshop-booking/pkg/dbmetrics"
	"github.com/avtodetail/carshop-booking/pkg/logger"
	"github.com/avtodetail/carshop-booking/pkg/metrics"
	"github.com/avtodetail/carshop-booking/pkg/simpletxmanager"
	"github.com/avtodetail/carshop-booking/pkg/txmanager"
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

	log.Info("Starting carshop-booking...")
	log.Info("Configuration loaded from config.toml")

	// Часовой пояс и рабочий календарь магазина
	loc, err := cfg.Shop.Location()
	if err != nil {
		log.Fatal("Failed to load shop timezone: %v", err)
	}
	hours, err := cfg.Shop.HoursTable()
	if err != nil {
		log.Fatal("Failed to parse shop hours: %v", err)
	}
	calendar := scheduling.NewCalendar(hours, loc)
	log.Info("Shop calendar initialized (timezone=%s, business days=%d)", cfg.Shop.Timezone, len(hours))

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

	// Telegram клиент для уведомлений о новых записях
	telegram := telegramClient.NewClient(
		cfg.Telegram.Token,
		cfg.Telegram.ChatID,
		time.Duration(cfg.Telegram.Timeout)*time.Second,
		log,
	)
	if telegram.Enabled() {
		log.Info("Telegram notifications enabled (chat_id=%s)", cfg.Telegram.ChatID)
	} else {
		log.Info("Telegram notifications disabled")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		apptRepository    *appointmentRepo.Repository
		catalogRepository *servicecatalogRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		apptRepository = appointmentRepo.NewRepository(wrappedDB)
		catalogRepository = servicecatalogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		apptRepository = appointmentRepo.NewRepository(db)
		catalogRepository = servicecatalogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Движок расчёта слотов
	projector := scheduling.NewProjector(calendar)
	capacity := scheduling.NewCapacityChecker(apptRepository, scheduling.CapacityTable(cfg.Shop.Capacities))
	enumerator := scheduling.NewEnumerator(calendar, projector, capacity, cfg.Shop.SlotStepMinutes)

	// Инициализируем сервисы
	apptSvc := appointmentsService.NewService(
		apptRepository,
		catalogRepository,
		loc,
		cfg.Shop.Timezone,
		log,
	)
	catalogSvc := catalogService.NewService(catalogRepository, log)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		catalogRepository,
		enumerator,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		apptRepository,
		catalogRepository,
		calendar,
		projector,
		capacity,
		txMgr,
		telegram,
		cfg.Shop.SlotStepMinutes,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, loc, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, loc, log)
	getAppointment := getAppointmentHandler.NewHandler(apptSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(apptSvc, loc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(apptSvc, log)
	updateStatus := updateStatusHandler.NewHandler(apptSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	exportICS := exportICSHandler.NewHandler(apptSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Календарные выгрузки (публичные, вне API префикса)
	r.HandleFunc("/ics/{appointmentId}.ics", exportICS.Handle).Methods(http.MethodGet)
	r.HandleFunc("/feed.ics", exportICS.HandleFeed).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Каталог услуг
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Доступные слоты на дату
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Создание записи
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Запись по ID
	api.HandleFunc("/appointments/{appointmentId:[0-9]+}", getAppointment.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Shop.AdminToken))

	// Список записей за период
	admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)

	// Отмена записи
	admin.HandleFunc("/appointments/{appointmentId:[0-9]+}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Смена статуса записи
	admin.HandleFunc("/appointments/{appointmentId:[0-9]+}/status", updateStatus.Handle).Methods(http.MethodPatch)

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
