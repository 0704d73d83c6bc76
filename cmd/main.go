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

	cancelBookingHandler "github.com/m04kA/SMC-LeisureService/internal/api/handlers/cancel_booking"
	confirmPaymentHandler "github.com/m04kA/SMC-LeisureService/internal/api/handlers/confirm_payment"
	createActivityHandler "github.com/m04kA/SMC-LeisureService/internal/api/handlers/create_activity"
	createBookingHandler "github.com/m04kA/SMC-LeisureService/internal/api/handlers/create_booking"
	createMembershipHandler "github.com/m04kA/SMC-LeisureService/internal/api/handlers/create_membership"
	createPromotionHandler "github.com/m04kA/SMC-LeisureService/internal/api/handlers/create_promotion"
	deleteActivityHandler "github.com/m04kA/SMC-LeisureService/internal/api/handlers/delete_activity"
	deletePromotionHandler "github.com/m04kA/SMC-LeisureService/internal/api/handlers/delete_promotion"
	getActivityHandler "github.com/m04kA/SMC-LeisureService/internal/api/handlers/get_activity"
	getAvailableSlotsHandler "github.com/m04kA/SMC-LeisureService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-LeisureService/internal/api/handlers/get_booking"
	getDashboardHandler "github.com/m04kA/SMC-LeisureService/internal/api/handlers/get_dashboard"
	getMembershipHandler "github.com/m04kA/SMC-LeisureService/internal/api/handlers/get_membership"
	getUserBookingsHandler "github.com/m04kA/SMC-LeisureService/internal/api/handlers/get_user_bookings"
	listActivitiesHandler "github.com/m04kA/SMC-LeisureService/internal/api/handlers/list_activities"
	listPromotionsHandler "github.com/m04kA/SMC-LeisureService/internal/api/handlers/list_promotions"
	reviewPaymentHandler "github.com/m04kA/SMC-LeisureService/internal/api/handlers/review_payment"
	updateActivityHandler "github.com/m04kA/SMC-LeisureService/internal/api/handlers/update_activity"
	updateMembershipHandler "github.com/m04kA/SMC-LeisureService/internal/api/handlers/update_membership"
	updatePromotionHandler "github.com/m04kA/SMC-LeisureService/internal/api/handlers/update_promotion"
	validatePromotionHandler "github.com/m04kA/SMC-LeisureService/internal/api/handlers/validate_promotion"
	"github.com/m04kA/SMC-LeisureService/internal/api/middleware"
	"github.com/m04kA/SMC-LeisureService/internal/config"
	activityRepo "github.com/m04kA/SMC-LeisureService/internal/infra/storage/activity"
	bookingRepo "github.com/m04kA/SMC-LeisureService/internal/infra/storage/booking"
	membershipRepo "github.com/m04kA/SMC-LeisureService/internal/infra/storage/membership"
	paymentRepo "github.com/m04kA/SMC-LeisureService/internal/infra/storage/payment"
	promotionRepo "github.com/m04kA/SMC-LeisureService/internal/infra/storage/promotion"
	userServiceClient "github.com/m04kA/SMC-LeisureService/internal/integrations/userservice"
	activitiesService "github.com/m04kA/SMC-LeisureService/internal/service/activities"
	bookingsService "github.com/m04kA/SMC-LeisureService/internal/service/bookings"
	dashboardService "github.com/m04kA/SMC-LeisureService/internal/service/dashboard"
	membershipsService "github.com/m04kA/SMC-LeisureService/internal/service/memberships"
	promotionsService "github.com/m04kA/SMC-LeisureService/internal/service/promotions"
	confirmPaymentUC "github.com/m04kA/SMC-LeisureService/internal/usecase/confirm_payment"
	createBookingUC "github.com/m04kA/SMC-LeisureService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-LeisureService/internal/usecase/get_available_slots"
	reviewPaymentUC "github.com/m04kA/SMC-LeisureService/internal/usecase/review_payment"
	renewalWorker "github.com/m04kA/SMC-LeisureService/internal/worker/renewal"
	"github.com/m04kA/SMC-LeisureService/pkg/dbmetrics"
	"github.com/m04kA/SMC-LeisureService/pkg/logger"
	"github.com/m04kA/SMC-LeisureService/pkg/metrics"
	"github.com/m04kA/SMC-LeisureService/pkg/promotoken"
	"github.com/m04kA/SMC-LeisureService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-LeisureService/pkg/txmanager"
)

// realTimeProvider отдает системное время сервисам
type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now() }

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

	log.Info("Starting SMC-LeisureService...")
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

	// Инициализируем интеграционного клиента
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (UserService=%s timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout)

	// Инициализируем подписанта промо-токенов
	tokenSigner := promotoken.NewSigner(
		cfg.Promotions.TokenSecret,
		time.Duration(cfg.Promotions.TokenTTLMinutes)*time.Minute,
	)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository    *bookingRepo.Repository
		activityRepository   *activityRepo.Repository
		promotionRepository  *promotionRepo.Repository
		paymentRepository    *paymentRepo.Repository
		membershipRepository *membershipRepo.Repository
	)

	// Интерфейс для transaction manager (используется в сервисах и usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		activityRepository = activityRepo.NewRepository(wrappedDB)
		promotionRepository = promotionRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		membershipRepository = membershipRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		activityRepository = activityRepo.NewRepository(db)
		promotionRepository = promotionRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		membershipRepository = membershipRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	clock := realTimeProvider{}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, log)
	activitySvc := activitiesService.NewService(activityRepository, log)
	promotionSvc := promotionsService.NewService(promotionRepository, tokenSigner, clock, log)
	membershipSvc := membershipsService.NewService(membershipRepository, txMgr, clock, log)
	dashboardSvc := dashboardService.NewService(
		bookingRepository,
		promotionRepository,
		membershipRepository,
		paymentRepository,
		userClient,
		txMgr,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		activityRepository,
		bookingRepository,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		activityRepository,
		userClient,
		txMgr,
		log,
	)
	reviewPaymentUseCase := reviewPaymentUC.NewUseCase(
		bookingRepository,
		promotionRepository,
		tokenSigner,
		log,
	)
	confirmPaymentUseCase := confirmPaymentUC.NewUseCase(
		bookingRepository,
		promotionRepository,
		paymentRepository,
		tokenSigner,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	listActivities := listActivitiesHandler.NewHandler(activitySvc, log)
	getActivity := getActivityHandler.NewHandler(activitySvc, log)
	validatePromotion := validatePromotionHandler.NewHandler(promotionSvc, log)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	reviewPayment := reviewPaymentHandler.NewHandler(reviewPaymentUseCase, log)
	confirmPayment := confirmPaymentHandler.NewHandler(confirmPaymentUseCase, log)
	createMembership := createMembershipHandler.NewHandler(membershipSvc, log)
	getMembership := getMembershipHandler.NewHandler(membershipSvc, log)
	updateMembership := updateMembershipHandler.NewHandler(membershipSvc, log)

	createActivity := createActivityHandler.NewHandler(activitySvc, log)
	updateActivity := updateActivityHandler.NewHandler(activitySvc, log)
	deleteActivity := deleteActivityHandler.NewHandler(activitySvc, log)
	createPromotion := createPromotionHandler.NewHandler(promotionSvc, log)
	listPromotions := listPromotionsHandler.NewHandler(promotionSvc, log)
	updatePromotion := updatePromotionHandler.NewHandler(promotionSvc, log)
	deletePromotion := deletePromotionHandler.NewHandler(promotionSvc, log)
	getDashboard := getDashboardHandler.NewHandler(dashboardSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог активностей
	api.HandleFunc("/activities", listActivities.Handle).Methods(http.MethodGet)
	api.HandleFunc("/activities/{activityId}", getActivity.Handle).Methods(http.MethodGet)

	// Доступные слоты для бронирования
	api.HandleFunc("/activities/{activityId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Проверка промокода
	api.HandleFunc("/promotions/validate", validatePromotion.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Оплата ---
	protected.HandleFunc("/bookings/{bookingId}/payment-review", reviewPayment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/confirm-payment", confirmPayment.Handle).Methods(http.MethodPost)

	// --- Абонементы ---
	protected.HandleFunc("/memberships", createMembership.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/users/{userId}/membership", getMembership.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/membership", updateMembership.Handle).Methods(http.MethodPatch)

	// ============================================================
	// ADMIN ROUTES (требуют X-User-Role: admin)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth, middleware.AdminOnly)

	// --- Активности ---
	admin.HandleFunc("/activities", createActivity.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/activities/{activityId}", updateActivity.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/activities/{activityId}", deleteActivity.Handle).Methods(http.MethodDelete)

	// --- Промоакции ---
	admin.HandleFunc("/promotions", createPromotion.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/promotions", listPromotions.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/promotions/{promotionId}", updatePromotion.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/promotions/{promotionId}", deletePromotion.Handle).Methods(http.MethodDelete)

	// --- Дашборд ---
	admin.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)

	// Запускаем фоновое продление абонементов (если включено)
	var worker *renewalWorker.Worker
	if cfg.Renewal.Enabled {
		worker = renewalWorker.NewWorker(membershipSvc, log, cfg.Renewal.Schedule)
		if err := worker.Start(); err != nil {
			log.Fatal("Failed to start renewal worker: %v", err)
		}
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

	// Останавливаем фоновое продление
	if worker != nil {
		worker.Stop(shutdownCtx)
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
