package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelAppointmentHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/create_appointment"
	createClientHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/create_client"
	createEmployeeHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/create_employee"
	createPublicBookingHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/create_public_booking"
	deleteAppointmentHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/delete_appointment"
	deleteClientHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/delete_client"
	deleteEmployeeHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/delete_employee"
	getAgendaHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/get_agenda"
	getAvailableSlotsHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/get_available_slots"
	getCatalogHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/get_catalog"
	getClientStatsHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/get_client_stats"
	getDashboardHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/get_dashboard"
	getFinancialReportHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/get_financial_report"
	listClientsHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/list_clients"
	listDeletionLogsHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/list_deletion_logs"
	listEmployeesHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/list_employees"
	listNotificationsHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/list_notifications"
	resolveNotificationHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/resolve_notification"
	sweepNoShowsHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/sweep_no_shows"
	togglePaymentHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/toggle_payment"
	updateCheckpointHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/update_checkpoint"
	updateClientPhoneHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/update_client_phone"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/config"
	"github.com/m04kA/SMC-BarberService/internal/infra/auth"
	appointmentRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/catalog"
	clientRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/client"
	deletionLogRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/deletionlog"
	employeeRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/employee"
	notificationRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/notification"
	"github.com/m04kA/SMC-BarberService/internal/scheduler"
	appointmentsService "github.com/m04kA/SMC-BarberService/internal/service/appointments"
	catalogService "github.com/m04kA/SMC-BarberService/internal/service/catalog"
	clientsService "github.com/m04kA/SMC-BarberService/internal/service/clients"
	deletionLogsService "github.com/m04kA/SMC-BarberService/internal/service/deletionlogs"
	employeesService "github.com/m04kA/SMC-BarberService/internal/service/employees"
	notificationsService "github.com/m04kA/SMC-BarberService/internal/service/notifications"
	reportsService "github.com/m04kA/SMC-BarberService/internal/service/reports"
	createAppointmentUC "github.com/m04kA/SMC-BarberService/internal/usecase/create_appointment"
	createPublicBookingUC "github.com/m04kA/SMC-BarberService/internal/usecase/create_public_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-BarberService/internal/usecase/get_available_slots"
	getDashboardUC "github.com/m04kA/SMC-BarberService/internal/usecase/get_dashboard"
	sweepNoShowsUC "github.com/m04kA/SMC-BarberService/internal/usecase/sweep_no_shows"
	"github.com/m04kA/SMC-BarberService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
	"github.com/m04kA/SMC-BarberService/pkg/metrics"
	"github.com/m04kA/SMC-BarberService/pkg/txmanager"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to TOML config")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	location := cfg.Business.Location()

	log.Info("Starting SMC-BarberService...")
	log.Info("Configuration loaded from %s (timezone=%s)", *configPath, location)

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

	// При выключенных метриках обёртка просто проксирует вызовы
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	passwordVerifier, err := auth.NewPasswordVerifier(cfg.Admin.PasswordHash)
	if err != nil {
		log.Fatal("Failed to initialize admin password verifier: %v", err)
	}

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	clientRepository := clientRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	employeeRepository := employeeRepo.NewRepository(wrappedDB)
	notificationRepository := notificationRepo.NewRepository(wrappedDB)
	deletionLogRepository := deletionLogRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		deletionLogRepository,
		txMgr,
		passwordVerifier,
		cfg.Admin.Email,
		location,
		log,
	)
	clientSvc := clientsService.NewService(clientRepository, appointmentRepository, location, log)
	catalogSvc := catalogService.NewService(catalogRepository, employeeRepository, log)
	employeeSvc := employeesService.NewService(employeeRepository, passwordVerifier, log)
	notificationSvc := notificationsService.NewService(notificationRepository, clientRepository, txMgr, log)
	reportSvc := reportsService.NewService(appointmentRepository, location, log)
	deletionLogSvc := deletionLogsService.NewService(deletionLogRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(appointmentRepository, location, log)

	createPublicBookingUseCase := createPublicBookingUC.NewUseCase(
		appointmentRepository,
		clientRepository,
		catalogRepository,
		employeeRepository,
		notificationRepository,
		txMgr,
		metricsCollector,
		location,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		clientRepository,
		txMgr,
		metricsCollector,
		location,
		log,
	)

	sweepNoShowsUseCase := sweepNoShowsUC.NewUseCase(appointmentRepository, txMgr, metricsCollector, log)

	getDashboardUseCase := getDashboardUC.NewUseCase(
		appointmentRepository,
		clientRepository,
		sweepNoShowsUseCase,
		location,
		log,
	)

	// Инициализируем handlers
	getCatalog := getCatalogHandler.NewHandler(catalogSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, location, log)
	createPublicBooking := createPublicBookingHandler.NewHandler(createPublicBookingUseCase, location, log)

	getDashboard := getDashboardHandler.NewHandler(getDashboardUseCase, location, log)
	getAgenda := getAgendaHandler.NewHandler(appointmentSvc, location, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, location, log)
	updateCheckpoint := updateCheckpointHandler.NewHandler(appointmentSvc, log)
	togglePayment := togglePaymentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentSvc, log)
	sweepNoShows := sweepNoShowsHandler.NewHandler(sweepNoShowsUseCase, log)

	listClients := listClientsHandler.NewHandler(clientSvc, log)
	createClient := createClientHandler.NewHandler(clientSvc, log)
	updateClientPhone := updateClientPhoneHandler.NewHandler(clientSvc, log)
	deleteClient := deleteClientHandler.NewHandler(clientSvc, log)
	getClientStats := getClientStatsHandler.NewHandler(clientSvc, log)

	listEmployees := listEmployeesHandler.NewHandler(employeeSvc, log)
	createEmployee := createEmployeeHandler.NewHandler(employeeSvc, log)
	deleteEmployee := deleteEmployeeHandler.NewHandler(employeeSvc, log)

	listNotifications := listNotificationsHandler.NewHandler(notificationSvc, log)
	resolveNotification := resolveNotificationHandler.NewHandler(notificationSvc, log)

	getFinancialReport := getFinancialReportHandler.NewHandler(reportSvc, log)
	listDeletionLogs := listDeletionLogsHandler.NewHandler(deletionLogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (страница онлайн-записи, без аутентификации)
	// ============================================================

	public := api.PathPrefix("/public").Subrouter()

	// Каталог услуг и мастеров
	public.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)

	// Свободные слоты на дату
	public.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Онлайн-запись клиента
	public.HandleFunc("/bookings", createPublicBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют Authorization: Bearer <token>)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.APIToken, log))

	// --- Панель и агенда ---
	admin.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments", getAgenda.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/appointments/no-show-sweep", sweepNoShows.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/appointments/{id}/checkpoint", updateCheckpoint.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/appointments/{id}/payment", togglePayment.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{id}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{id}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// --- Клиенты ---
	admin.HandleFunc("/clients", listClients.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/clients", createClient.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/clients/{id}/phone", updateClientPhone.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/clients/{id}/stats", getClientStats.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/clients/{id}", deleteClient.Handle).Methods(http.MethodDelete)

	// --- Команда ---
	admin.HandleFunc("/employees", listEmployees.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/employees", createEmployee.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/employees/{id}", deleteEmployee.Handle).Methods(http.MethodDelete)

	// --- Уведомления, отчеты, журнал удалений ---
	admin.HandleFunc("/notifications", listNotifications.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/notifications/{id}/resolve", resolveNotification.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/reports/financial", getFinancialReport.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/deletion-logs", listDeletionLogs.Handle).Methods(http.MethodGet)

	// Периодическая проверка неявок
	var noShowJob *scheduler.NoShowJob
	if cfg.NoShow.Enabled {
		noShowJob, err = scheduler.NewNoShowJob(cfg.NoShow.Schedule, sweepNoShowsUseCase, location, log)
		if err != nil {
			log.Fatal("Failed to schedule no-show sweep: %v", err)
		}
		noShowJob.Start()
		log.Info("No-show sweep scheduled (%s)", cfg.NoShow.Schedule)
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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if noShowJob != nil {
		if err := noShowJob.Stop(shutdownCtx); err != nil {
			log.Error("No-show scheduler did not stop in time: %v", err)
		}
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	log.Info("Server stopped gracefully")
}
