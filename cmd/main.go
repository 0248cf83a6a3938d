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

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/m04kA/SMC-HotelCheckout/internal/api/handlers/cancel_booking"
	captureOrderHandler "github.com/m04kA/SMC-HotelCheckout/internal/api/handlers/capture_order"
	catalogHandler "github.com/m04kA/SMC-HotelCheckout/internal/api/handlers/catalog"
	checkoutWizardHandler "github.com/m04kA/SMC-HotelCheckout/internal/api/handlers/checkout_wizard"
	createOrderHandler "github.com/m04kA/SMC-HotelCheckout/internal/api/handlers/create_order"
	downloadInvoiceHandler "github.com/m04kA/SMC-HotelCheckout/internal/api/handlers/download_invoice"
	getBookingsHandler "github.com/m04kA/SMC-HotelCheckout/internal/api/handlers/get_bookings"
	loginHandler "github.com/m04kA/SMC-HotelCheckout/internal/api/handlers/login"
	logoutHandler "github.com/m04kA/SMC-HotelCheckout/internal/api/handlers/logout"
	paymentErrorHandler "github.com/m04kA/SMC-HotelCheckout/internal/api/handlers/payment_error"
	profileHandler "github.com/m04kA/SMC-HotelCheckout/internal/api/handlers/profile"
	searchHotelsHandler "github.com/m04kA/SMC-HotelCheckout/internal/api/handlers/search_hotels"
	selectRoomHandler "github.com/m04kA/SMC-HotelCheckout/internal/api/handlers/select_room"
	signupHandler "github.com/m04kA/SMC-HotelCheckout/internal/api/handlers/signup"
	submitReviewHandler "github.com/m04kA/SMC-HotelCheckout/internal/api/handlers/submit_review"
	"github.com/m04kA/SMC-HotelCheckout/internal/api/middleware"
	"github.com/m04kA/SMC-HotelCheckout/internal/config"
	"github.com/m04kA/SMC-HotelCheckout/internal/infra/storage/progress"
	"github.com/m04kA/SMC-HotelCheckout/internal/integrations/hotelapi"
	accountService "github.com/m04kA/SMC-HotelCheckout/internal/service/account"
	bookingsService "github.com/m04kA/SMC-HotelCheckout/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-HotelCheckout/internal/service/catalog"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/checkout"
	"github.com/m04kA/SMC-HotelCheckout/internal/service/session"
	captureOrderUC "github.com/m04kA/SMC-HotelCheckout/internal/usecase/capture_order"
	createOrderUC "github.com/m04kA/SMC-HotelCheckout/internal/usecase/create_order"
	searchHotelsUC "github.com/m04kA/SMC-HotelCheckout/internal/usecase/search_hotels"
	selectRoomUC "github.com/m04kA/SMC-HotelCheckout/internal/usecase/select_room"
	"github.com/m04kA/SMC-HotelCheckout/pkg/logger"
	"github.com/m04kA/SMC-HotelCheckout/pkg/metrics"
)

const (
	// janitorInterval период очистки просроченного прогресса, сессий и лимитеров
	janitorInterval = 10 * time.Minute
	// sessionIdleTTL сессия без запросов дольше этого срока выгружается из памяти
	sessionIdleTTL = 2 * time.Hour
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

	log.Info("Starting SMC-HotelCheckout...")
	log.Info("Configuration loaded from config.toml")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var sessionMetrics session.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		sessionMetrics = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище прогресса checkout
	progressTTL := time.Duration(cfg.Progress.TTLHours) * time.Hour
	var progressStore checkout.ProgressStore

	switch cfg.Progress.Backend {
	case config.ProgressBackendRedis:
		redisClient, err := progress.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer redisClient.Close()

		// Записи истекают по TTL, janitor не нужен
		progressStore = progress.NewRedisStore(redisClient, progressTTL)
		log.Info("Checkout progress stored in redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	case config.ProgressBackendPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.PingContext(ctx); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		store := progress.NewPostgresStore(db)
		progressStore = store
		go progress.RunJanitor(ctx, store, progressTTL, janitorInterval, log)

	default:
		store := progress.NewMemoryStore()
		progressStore = store
		go progress.RunJanitor(ctx, store, progressTTL, janitorInterval, log)
		log.Warn("Checkout progress kept in memory, it will not survive a restart")
	}

	// Инициализируем клиента бэкенда
	backendClient := hotelapi.NewClient(
		cfg.Backend.URL,
		time.Duration(cfg.Backend.Timeout)*time.Second,
		log,
	)
	log.Info("Backend client initialized (url=%s, timeout=%ds)", cfg.Backend.URL, cfg.Backend.Timeout)

	// Реестр пользовательских сессий
	sessions := session.NewRegistry(progressStore, backendClient, sessionMetrics, session.Config{
		Checkout: checkout.Options{
			TTL:                progressTTL,
			ConfirmationPrefix: cfg.Checkout.ConfirmationPrefix,
		},
	}, log)
	go progress.RunJanitor(ctx, sessions, sessionIdleTTL, janitorInterval, log)

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(backendClient, log)
	bookingSvc := bookingsService.NewService(backendClient, log)
	accountSvc := accountService.NewService(backendClient, sessions, log)

	// Инициализируем use cases
	searchHotelsUseCase := searchHotelsUC.NewUseCase(backendClient, log)
	selectRoomUseCase := selectRoomUC.NewUseCase(backendClient, sessions, log)
	createOrderUseCase := createOrderUC.NewUseCase(sessions, log)
	captureOrderUseCase := captureOrderUC.NewUseCase(sessions, log)

	// Инициализируем handlers
	catalogH := catalogHandler.NewHandler(catalogSvc, log)
	searchHotels := searchHotelsHandler.NewHandler(searchHotelsUseCase, log)
	login := loginHandler.NewHandler(accountSvc, log)
	signup := signupHandler.NewHandler(accountSvc, log)
	logout := logoutHandler.NewHandler(accountSvc, log)
	profile := profileHandler.NewHandler(accountSvc, log)
	selectRoom := selectRoomHandler.NewHandler(selectRoomUseCase, log)
	wizard := checkoutWizardHandler.NewHandler(sessions, log)
	createOrder := createOrderHandler.NewHandler(createOrderUseCase, log)
	captureOrder := captureOrderHandler.NewHandler(captureOrderUseCase, log)
	paymentError := paymentErrorHandler.NewHandler(sessions, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	submitReview := submitReviewHandler.NewHandler(bookingSvc, log)
	downloadInvoice := downloadInvoiceHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// --- Аккаунт ---
	api.HandleFunc("/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/signup", signup.Handle).Methods(http.MethodPost)

	// --- Каталог ---
	// Статические пути регистрируются раньше /hotels/{hotelId}
	api.HandleFunc("/hotels", catalogH.ListHotels).Methods(http.MethodGet)
	api.HandleFunc("/hotels/featured", catalogH.FeaturedHotels).Methods(http.MethodGet)
	api.HandleFunc("/hotels/search", searchHotels.Handle).Methods(http.MethodGet)
	api.HandleFunc("/hotels/{hotelId}", catalogH.GetHotel).Methods(http.MethodGet)
	api.HandleFunc("/hotels/{hotelId}/rooms", catalogH.ListRooms).Methods(http.MethodGet)
	api.HandleFunc("/hotels/{hotelId}/rooms/{roomId}", catalogH.GetRoom).Methods(http.MethodGet)
	api.HandleFunc("/rooms/featured", catalogH.FeaturedRooms).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Authorization: Bearer <token>)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	if cfg.Auth.JWTSecret == "" {
		log.Warn("auth.jwt_secret is empty: checkout sessions are bound to the raw token")
	}
	protected.Use(middleware.NewAuthenticator(cfg.Auth.JWTSecret, log).Middleware)

	// --- Профиль ---
	protected.HandleFunc("/profile", profile.Get).Methods(http.MethodGet)
	protected.HandleFunc("/profile", profile.Update).Methods(http.MethodPut)
	protected.HandleFunc("/profile/avatar", profile.UpdateAvatar).Methods(http.MethodPatch)
	protected.HandleFunc("/logout", logout.Handle).Methods(http.MethodPost)

	// --- Checkout ---
	protected.HandleFunc("/checkout", wizard.Get).Methods(http.MethodGet)
	protected.HandleFunc("/checkout", wizard.Reset).Methods(http.MethodDelete)
	protected.HandleFunc("/checkout/draft", selectRoom.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/checkout/draft", wizard.ClearDraft).Methods(http.MethodDelete)
	protected.HandleFunc("/checkout/guest", wizard.UpdateGuest).Methods(http.MethodPut)
	protected.HandleFunc("/checkout/next", wizard.Next).Methods(http.MethodPost)
	protected.HandleFunc("/checkout/back", wizard.Back).Methods(http.MethodPost)
	protected.HandleFunc("/checkout/jump", wizard.Jump).Methods(http.MethodPost)

	// --- Оплата (с ограничением частоты) ---
	payments := protected.PathPrefix("/checkout/orders").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, log)
		payments.Use(limiter.Middleware)
		go progress.RunJanitor(ctx, limiter, sessionIdleTTL, janitorInterval, log)
		log.Info("Payment rate limit enabled (rps=%.2f, burst=%d)", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}
	payments.HandleFunc("", createOrder.Handle).Methods(http.MethodPost)
	payments.HandleFunc("/{orderId}/capture", captureOrder.Handle).Methods(http.MethodPost)
	payments.HandleFunc("/{orderId}/error", paymentError.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{bookingId}/review", submitReview.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{bookingId}/invoice", downloadInvoice.Handle).Methods(http.MethodGet)

	// CORS для браузерного клиента
	handler := cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	})(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

	// Останавливаем фоновые janitor'ы
	stop()

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
