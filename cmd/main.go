package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/sbilibin2017/gw-venue-booking/docs"
	"github.com/sbilibin2017/gw-venue-booking/internal/handlers"
	"github.com/sbilibin2017/gw-venue-booking/internal/jwt"
	"github.com/sbilibin2017/gw-venue-booking/internal/logger"
	"github.com/sbilibin2017/gw-venue-booking/internal/middlewares"
	"github.com/sbilibin2017/gw-venue-booking/internal/migrations"
	"github.com/sbilibin2017/gw-venue-booking/internal/notifications"
	"github.com/sbilibin2017/gw-venue-booking/internal/publishers"
	"github.com/sbilibin2017/gw-venue-booking/internal/repositories"
	"github.com/sbilibin2017/gw-venue-booking/internal/services"
	"github.com/sbilibin2017/gw-venue-booking/internal/sessions"
	"github.com/sbilibin2017/gw-venue-booking/internal/views"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds every setting read from the environment.
type config struct {
	AppHost    string
	AppPort    string
	AppBaseURL string
	LogLevel   string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	SessionSecret string
	SessionSecure bool
	SessionTTL    time.Duration
	SessionStore  string // memory or redis

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPassword  string
	MailFrom      string
	OwnerEmail    string
	OwnerWhatsApp string

	KafkaBrokers    []string
	KafkaOrderTopic string
}

// @title gw-venue-booking API
// @version 1.0.0
// @description Venue booking site: package catalogue, schedule checks, orders and the admin console
// @host localhost:3000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name booking.sid
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, database, session, Redis, mail and Kafka configuration.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	cfg := &config{}
	var err error

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "3000")
	cfg.AppBaseURL = getEnv("APP_BASE_URL", fmt.Sprintf("http://%s:%s", cfg.AppHost, cfg.AppPort))
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return nil, err
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "10"); err != nil {
		return nil, err
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "5"); err != nil {
		return nil, err
	}

	// Session config
	cfg.SessionSecret = getEnv("SESSION_SECRET", "my_super_secret_key")
	if cfg.SessionSecure, err = strconv.ParseBool(getEnv("SESSION_SECURE", "false")); err != nil {
		return nil, fmt.Errorf("SESSION_SECURE: %w", err)
	}
	ttl, err := getInt("SESSION_TTL_SECOND", "86400")
	if err != nil {
		return nil, err
	}
	cfg.SessionTTL = time.Duration(ttl) * time.Second
	cfg.SessionStore = getEnv("SESSION_STORE", "memory")
	if cfg.SessionStore != "memory" && cfg.SessionStore != "redis" {
		return nil, fmt.Errorf("SESSION_STORE: unknown store %q", cfg.SessionStore)
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return nil, err
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return nil, err
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return nil, err
	}

	// Mail config; an empty SMTP_HOST logs mail instead of sending it
	cfg.SMTPHost = getEnv("SMTP_HOST", "")
	if cfg.SMTPPort, err = getInt("SMTP_PORT", "587"); err != nil {
		return nil, err
	}
	cfg.SMTPUser = getEnv("SMTP_USER", "")
	cfg.SMTPPassword = getEnv("SMTP_PASSWORD", "")
	cfg.MailFrom = getEnv("MAIL_FROM", cfg.SMTPUser)
	cfg.OwnerEmail = getEnv("OWNER_EMAIL", "")
	cfg.OwnerWhatsApp = getEnv("OWNER_WHATSAPP", "")

	// Kafka config; no brokers disables order events
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}
	cfg.KafkaOrderTopic = getEnv("KAFKA_ORDER_TOPIC", "orders")

	return cfg, nil
}

// app bundles the services the router serves.
type app struct {
	db       *sqlx.DB
	sessions *sessions.Manager
	renderer *views.Renderer
	metrics  *middlewares.Metrics
	auth     *services.AuthService
	booking  *services.BookingService
	schedule *services.ScheduleService
	admin    *services.AdminService
	swagger  string
}

// run initializes the logger, database, session store, mail, Kafka and HTTP
// server. It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}
	if err := migrations.Run(ctx, db.DB); err != nil {
		logger.Log.Fatal("PostgreSQL migration failed:", err)
	}

	// Session store
	var store sessions.Store
	switch cfg.SessionStore {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Fatal("Redis connection error:", err)
		}
		defer rdb.Close()
		store = sessions.NewRedisStore(rdb, "booking:sess")
	default:
		memory := sessions.NewMemoryStore()
		memory.StartPruning(ctx, 15*time.Minute)
		store = memory
	}

	tokener := jwt.New(
		jwt.WithSecretKey(cfg.SessionSecret),
		jwt.WithExpiration(cfg.SessionTTL),
	)
	manager := sessions.NewManager(store, tokener, cfg.SessionSecure)

	// Mail
	var notifier interface {
		services.AuthNotifier
		services.OrderNotifier
	}
	if cfg.SMTPHost != "" {
		client, err := notifications.NewSMTPClient(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
		if err != nil {
			return fmt.Errorf("smtp client: %w", err)
		}
		notifier = notifications.NewSMTPNotifier(client, notifications.Config{
			From:       cfg.MailFrom,
			OwnerEmail: cfg.OwnerEmail,
			WhatsApp:   cfg.OwnerWhatsApp,
		})
	} else {
		logger.Log.Warn("SMTP_HOST is empty, mail is logged instead of sent")
		notifier = notifications.NewLogNotifier()
	}

	// Order events
	var publisher services.OrderEventPublisher = publishers.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		orderPublisher := publishers.NewOrderPublisher(publishers.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaOrderTopic))
		defer orderPublisher.Close()
		publisher = orderPublisher
	}

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	packageReadRepo := repositories.NewPackageReadRepository(db)
	packageWriteRepo := repositories.NewPackageWriteRepository(db, middlewares.GetTxFromContext)
	orderReadRepo := repositories.NewOrderReadRepository(db)
	orderWriteRepo := repositories.NewOrderWriteRepository(db, middlewares.GetTxFromContext)
	statsRepo := repositories.NewStatsRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, notifier, cfg.AppBaseURL)
	bookingService := services.NewBookingService(packageReadRepo, orderWriteRepo, publisher, notifier)
	scheduleService := services.NewScheduleService(orderReadRepo)
	adminService := services.NewAdminService(
		repositories.UserRepository{UserReadRepository: userReadRepo, UserWriteRepository: userWriteRepo},
		repositories.PackageRepository{PackageReadRepository: packageReadRepo, PackageWriteRepository: packageWriteRepo},
		repositories.OrderRepository{OrderReadRepository: orderReadRepo, OrderWriteRepository: orderWriteRepo},
		statsRepo,
	)

	renderer, err := views.New()
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}

	r := newRouter(&app{
		db:       db,
		sessions: manager,
		renderer: renderer,
		metrics:  middlewares.NewMetrics("venue_booking"),
		auth:     authService,
		booking:  bookingService,
		schedule: scheduleService,
		admin:    adminService,
		swagger:  strings.TrimRight(cfg.AppBaseURL, "/") + "/swagger/doc.json",
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter mounts the site, account, admin and operational routes.
func newRouter(a *app) http.Handler {
	sm := a.sessions

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(a.metrics.Middleware)

	// Operational routes
	r.Get("/healthz", handlers.NewHealthHandler(a.db))
	r.Method(http.MethodGet, "/metrics", a.metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(a.swagger)))
	r.Handle("/static/*", views.StaticHandler())

	// Pages with a session
	r.Group(func(r chi.Router) {
		r.Use(sm.Middleware)

		r.Get("/", handlers.NewHomeHandler(a.booking, a.renderer, sm))

		r.Route("/auth", func(r chi.Router) {
			r.Get("/login", handlers.NewPageHandler(a.renderer, sm, views.PageLogin, "Login"))
			r.Post("/login", handlers.NewLoginHandler(a.auth, sm))
			r.Get("/register", handlers.NewPageHandler(a.renderer, sm, views.PageRegister, "Register"))
			r.Post("/register", handlers.NewRegisterHandler(a.auth, sm))
			r.Get("/verify-email", handlers.NewVerifyEmailHandler(a.auth, sm))
			r.Get("/forgot-password", handlers.NewPageHandler(a.renderer, sm, views.PageForgotPassword, "Lupa Password"))
			r.Post("/forgot-password", handlers.NewForgotPasswordHandler(a.auth, sm))
			r.Get("/reset-password", handlers.NewResetPasswordPageHandler(a.renderer, sm))
			r.Post("/reset-password", handlers.NewResetPasswordHandler(a.auth, sm))
			r.Get("/logout", handlers.NewLogoutHandler(sm))
		})

		// Booking requires a logged-in user
		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireSession(sm))
			r.Get("/pemesanan/{packageId}", handlers.NewCheckoutHandler(a.booking, a.renderer, sm))
			r.Post("/cek-jadwal", handlers.NewScheduleHandler(a.schedule))
			r.Post("/submit-order", handlers.NewSubmitOrderHandler(a.booking, sm))
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middlewares.RequireAdmin(sm))
			r.Get("/dashboard", handlers.NewDashboardHandler(a.renderer, sm))

			r.Route("/api", func(r chi.Router) {
				r.Get("/users", handlers.NewListUsersHandler(a.admin))
				r.Get("/packages", handlers.NewListPackagesHandler(a.admin))
				r.Get("/orders", handlers.NewListOrdersHandler(a.admin))
				r.Get("/stats", handlers.NewStatsHandler(a.admin))

				// Mutations run in one transaction each
				r.Group(func(r chi.Router) {
					r.Use(middlewares.TxMiddleware(a.db))
					r.Post("/users", handlers.NewCreateUserHandler(a.admin))
					r.Put("/users/{id}", handlers.NewUpdateUserHandler(a.admin))
					r.Delete("/users/{id}", handlers.NewDeleteUserHandler(a.admin))
					r.Post("/packages", handlers.NewCreatePackageHandler(a.admin))
					r.Put("/packages/{id}", handlers.NewUpdatePackageHandler(a.admin))
					r.Delete("/packages/{id}", handlers.NewDeletePackageHandler(a.admin))
					r.Delete("/orders/{id}", handlers.NewDeleteOrderHandler(a.admin))
				})
			})
		})
	})

	return r
}
