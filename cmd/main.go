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
	"github.com/redis/go-redis/v9"

	addNoteHandler "github.com/m04kA/SMC-InterviewScheduler/internal/api/handlers/add_note"
	cancelBookingHandler "github.com/m04kA/SMC-InterviewScheduler/internal/api/handlers/cancel_booking"
	changeStatusHandler "github.com/m04kA/SMC-InterviewScheduler/internal/api/handlers/change_interviewee_status"
	createBookingHandler "github.com/m04kA/SMC-InterviewScheduler/internal/api/handlers/create_booking"
	getAvailabilityHandler "github.com/m04kA/SMC-InterviewScheduler/internal/api/handlers/get_availability"
	getAvailableSlotsHandler "github.com/m04kA/SMC-InterviewScheduler/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-InterviewScheduler/internal/api/handlers/get_booking"
	getSettingsHandler "github.com/m04kA/SMC-InterviewScheduler/internal/api/handlers/get_settings"
	getTenantBookingsHandler "github.com/m04kA/SMC-InterviewScheduler/internal/api/handlers/get_tenant_bookings"
	healthHandler "github.com/m04kA/SMC-InterviewScheduler/internal/api/handlers/health"
	listBookingsHandler "github.com/m04kA/SMC-InterviewScheduler/internal/api/handlers/list_bookings"
	listNotesHandler "github.com/m04kA/SMC-InterviewScheduler/internal/api/handlers/list_notes"
	recordRoundResultHandler "github.com/m04kA/SMC-InterviewScheduler/internal/api/handlers/record_round_result"
	updateAvailabilityHandler "github.com/m04kA/SMC-InterviewScheduler/internal/api/handlers/update_availability"
	updateSettingsHandler "github.com/m04kA/SMC-InterviewScheduler/internal/api/handlers/update_settings"
	"github.com/m04kA/SMC-InterviewScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-InterviewScheduler/internal/config"
	"github.com/m04kA/SMC-InterviewScheduler/internal/infra/lock"
	"github.com/m04kA/SMC-InterviewScheduler/internal/infra/migrations"
	availabilityRepo "github.com/m04kA/SMC-InterviewScheduler/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/SMC-InterviewScheduler/internal/infra/storage/booking"
	intervieweeRepo "github.com/m04kA/SMC-InterviewScheduler/internal/infra/storage/interviewee"
	interviewerRepo "github.com/m04kA/SMC-InterviewScheduler/internal/infra/storage/interviewer"
	settingsRepo "github.com/m04kA/SMC-InterviewScheduler/internal/infra/storage/settings"
	availabilityService "github.com/m04kA/SMC-InterviewScheduler/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-InterviewScheduler/internal/service/bookings"
	intervieweesService "github.com/m04kA/SMC-InterviewScheduler/internal/service/interviewees"
	settingsService "github.com/m04kA/SMC-InterviewScheduler/internal/service/settings"
	createBookingUC "github.com/m04kA/SMC-InterviewScheduler/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-InterviewScheduler/internal/usecase/get_available_slots"
	recordRoundResultUC "github.com/m04kA/SMC-InterviewScheduler/internal/usecase/record_round_result"
	"github.com/m04kA/SMC-InterviewScheduler/pkg/dbmetrics"
	"github.com/m04kA/SMC-InterviewScheduler/pkg/logger"
	"github.com/m04kA/SMC-InterviewScheduler/pkg/metrics"
	"github.com/m04kA/SMC-InterviewScheduler/pkg/txmanager"
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

	log.Info("Starting SMC-InterviewScheduler...")
	log.Info("Configuration loaded from config.toml")

	// Часовой пояс, в котором считаются границы дней (уже проверен при загрузке)
	location, err := cfg.Scheduling.Location()
	if err != nil {
		log.Fatal("Invalid scheduling timezone: %v", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var dbObserver dbmetrics.Observer
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		dbObserver = metricsCollector
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

	// Применяем миграции
	if cfg.Database.MigrateOnStart {
		migrator, err := migrations.NewMigrator(db, log)
		if err != nil {
			log.Fatal("Failed to initialize migrator: %v", err)
		}
		if err := migrator.Up(context.Background()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Обертка БД: метрики запросов и транзакция через context
	wrappedDB := dbmetrics.Wrap(db, dbObserver)

	stopPoolCollector := func() {}
	if cfg.Metrics.Enabled {
		stopPoolCollector, err = dbmetrics.StartPoolCollector(db, metricsCollector, cfg.Metrics.PoolSchedule)
		if err != nil {
			log.Fatal("Failed to start pool collector: %v", err)
		}
		log.Info("Database pool metrics collection started (%s)", cfg.Metrics.PoolSchedule)
	}

	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Блокировка дня интервьюера (Redis или без блокировки)
	var dayLocker createBookingUC.DayLocker = lock.NewNoopLocker()
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancelPing()
		if err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}

		dayLocker = lock.NewRedisLocker(redisClient, cfg.Redis.LockTTLDuration())
		log.Info("Redis day locker enabled (addr=%s, ttl=%s)", cfg.Redis.Addr, cfg.Redis.LockTTLDuration())
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	availabilityRepository := availabilityRepo.NewRepository(wrappedDB)
	settingsRepository := settingsRepo.NewRepository(wrappedDB)
	intervieweeRepository := intervieweeRepo.NewRepository(wrappedDB)
	interviewerRepository := interviewerRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		interviewerRepository,
		location,
		log,
	)
	availabilitySvc := availabilityService.NewService(
		availabilityRepository,
		interviewerRepository,
		txMgr,
		location,
		log,
	)
	settingsSvc := settingsService.NewService(
		settingsRepository,
		interviewerRepository,
		log,
	)
	intervieweesSvc := intervieweesService.NewService(
		intervieweeRepository,
		interviewerRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		availabilityRepository,
		settingsRepository,
		bookingRepository,
		interviewerRepository,
		location,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		settingsRepository,
		interviewerRepository,
		intervieweeRepository,
		txMgr,
		dayLocker,
		location,
		log,
	)
	createBookingUseCase.SetApplyBufferOnAdmission(cfg.Scheduling.ApplyBufferOnAdmission)

	if cfg.Metrics.Enabled {
		getAvailableSlotsUseCase.SetMetrics(metricsCollector)
		createBookingUseCase.SetMetrics(metricsCollector)
	}

	recordRoundResultUseCase := recordRoundResultUC.NewUseCase(
		intervieweeRepository,
		interviewerRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	health := healthHandler.NewHandler(wrappedDB, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, location, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, location, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, location, log)
	getTenantBookings := getTenantBookingsHandler.NewHandler(bookingSvc, location, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	updateAvailability := updateAvailabilityHandler.NewHandler(availabilitySvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)
	recordRoundResult := recordRoundResultHandler.NewHandler(recordRoundResultUseCase, log)
	changeStatus := changeStatusHandler.NewHandler(intervieweesSvc, log)
	listNotes := listNotesHandler.NewHandler(intervieweesSvc, log)
	addNote := addNoteHandler.NewHandler(intervieweesSvc, log)

	auth := middleware.NewAuth(cfg.Auth.JWTSecret, cfg.Auth.Issuer, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Проверка состояния
	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Получение доступных слотов интервьюера
	api.HandleFunc("/interviewers/{interviewerId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// OPTIONAL AUTH ROUTES (сессия используется, если передана)
	// ============================================================

	// Создание бронирования (тенант из тела или из сессии)
	api.Handle("/bookings", auth.Optional(http.HandlerFunc(createBooking.Handle))).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Authorization: Bearer <token>)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(auth.Required)

	// --- Бронирования ---
	// Бронирования текущего пользователя
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Бронирования тенанта (для ADMIN и HR)
	protected.HandleFunc("/tenant/bookings", getTenantBookings.Handle).Methods(http.MethodGet)

	// --- Расписание и настройки интервьюера ---
	protected.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/availability", updateAvailability.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

	// --- Кандидаты ---
	// Результат раунда интервью
	protected.HandleFunc("/interviewees/{intervieweeId}/round-result", recordRoundResult.Handle).Methods(http.MethodPost)

	// Ручная смена статуса
	protected.HandleFunc("/interviewees/{intervieweeId}/status", changeStatus.Handle).Methods(http.MethodPatch)

	// Заметки
	protected.HandleFunc("/interviewees/{intervieweeId}/notes", listNotes.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/interviewees/{intervieweeId}/notes", addNote.Handle).Methods(http.MethodPost)

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

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Останавливаем сбор метрик connection pool
	stopPoolCollector()

	log.Info("Server stopped gracefully")
}
