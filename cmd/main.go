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
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/gw-country-exchange/docs"
	"github.com/sbilibin2017/gw-country-exchange/internal/facades"
	"github.com/sbilibin2017/gw-country-exchange/internal/handlers"
	"github.com/sbilibin2017/gw-country-exchange/internal/logger"
	"github.com/sbilibin2017/gw-country-exchange/internal/metrics"
	"github.com/sbilibin2017/gw-country-exchange/internal/middlewares"
	"github.com/sbilibin2017/gw-country-exchange/internal/repositories"
	"github.com/sbilibin2017/gw-country-exchange/internal/scheduler"
	"github.com/sbilibin2017/gw-country-exchange/internal/services"
	"github.com/sbilibin2017/gw-country-exchange/internal/summary"

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
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	// RedisHost empty disables the rates cache.
	RedisHost           string
	RedisPort           int
	RedisDB             int
	RedisPassword       string
	RedisRatesExpSecond int

	// KafkaBrokers empty disables refresh events.
	KafkaBrokers []string
	KafkaTopic   string

	ExchangeRatesURL      string
	CountriesURL          string
	ExternalTimeoutSecond int

	SummaryImagePath string
	// RefreshCron empty disables the scheduled refresh.
	RefreshCron string
}

// @title gw-country-exchange API
// @version 1.0.0
// @description Country data cached with exchange rates and estimated GDP
// @host localhost:8080
// @BasePath /
// @schemes http
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
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, database, Redis, Kafka, provider and scheduling configuration.
func parseConfig(path string) (cfg config, err error) {
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

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisRatesExpSecond, err = getInt("REDIS_RATES_EXP_SECOND", "86400"); err != nil {
		return
	}

	// Kafka config
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "countries.refreshed")

	// External providers
	cfg.ExchangeRatesURL = getEnv("EXCHANGE_RATES_URL", "https://open.er-api.com/v6/latest/USD")
	cfg.CountriesURL = getEnv("COUNTRIES_URL", "https://restcountries.com/v2/all?fields=name,capital,region,population,flag,currencies")
	if cfg.ExternalTimeoutSecond, err = getInt("EXTERNAL_TIMEOUT_SECOND", "15"); err != nil {
		return
	}

	cfg.SummaryImagePath = getEnv("SUMMARY_IMAGE_PATH", "cache/summary.png")
	cfg.RefreshCron = getEnv("REFRESH_CRON", "")

	return
}

// run initializes the logger, database, optional Redis and Kafka, and the HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	if err := repositories.EnsureSchema(ctx, db); err != nil {
		return fmt.Errorf("schema bootstrap failed: %w", err)
	}

	// Initialize repositories
	transactor := repositories.NewTransactor(db)
	countryWriteRepo := repositories.NewCountryWriteRepository(db, repositories.GetTxFromContext)
	countryReadRepo := repositories.NewCountryReadRepository(db)
	metadataRepo := repositories.NewMetadataRepository(db, repositories.GetTxFromContext)

	var refreshOpts []services.RefreshOption
	var rateGetter handlers.RateGetter

	// Connect to Redis
	if cfg.RedisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		defer rdb.Close()

		ratesCache := repositories.NewRatesCacheRepository(rdb, time.Duration(cfg.RedisRatesExpSecond)*time.Second)
		refreshOpts = append(refreshOpts, services.WithRatesCache(ratesCache))
		rateGetter = ratesCache
	} else {
		logger.Log.Info("REDIS_HOST not set, rates cache disabled")
	}

	// Kafka writer
	if len(cfg.KafkaBrokers) > 0 {
		kw := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		}
		defer kw.Close()
		refreshOpts = append(refreshOpts, services.WithKafkaWriter(kw))
	} else {
		logger.Log.Info("KAFKA_BROKERS not set, refresh events disabled")
	}

	// Initialize facades
	httpClient := facades.NewHTTPClient(time.Duration(cfg.ExternalTimeoutSecond) * time.Second)
	ratesFacade := facades.NewExchangeRateHTTPFacade(httpClient, cfg.ExchangeRatesURL)
	countriesFacade := facades.NewCountryHTTPFacade(httpClient, cfg.CountriesURL)

	// Initialize services
	renderer := summary.NewRenderer(countryReadRepo, metadataRepo, cfg.SummaryImagePath)
	refreshService := services.NewRefreshService(
		ratesFacade, countriesFacade, transactor,
		countryWriteRepo, countryReadRepo, metadataRepo,
		services.NewRandomGDPEstimator(nil), renderer,
		refreshOpts...,
	)
	countryService := services.NewCountryService(countryReadRepo, countryWriteRepo)
	statusService := services.NewStatusService(countryReadRepo, metadataRepo)

	// Scheduled refresh
	if cfg.RefreshCron != "" {
		sched, err := scheduler.New(cfg.RefreshCron, refreshService, 2*time.Duration(cfg.ExternalTimeoutSecond)*time.Second+time.Minute)
		if err != nil {
			return err
		}
		sched.Start()
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := sched.Stop(stopCtx); err != nil {
				logger.Log.Errorw("refresh scheduler stop error", "error", err)
			}
		}()
	}

	r := newRouter(routes{
		refresh:    handlers.NewRefreshCountriesHandler(refreshService),
		list:       handlers.NewListCountriesHandler(countryService),
		get:        handlers.NewGetCountryHandler(countryService),
		remove:     handlers.NewDeleteCountryHandler(countryService),
		save:       handlers.NewSaveCountryHandler(countryService),
		status:     handlers.NewStatusHandler(statusService),
		image:      handlers.NewSummaryImageHandler(renderer.Path()),
		rate:       handlers.NewGetRateHandler(rateGetter),
		swaggerURL: fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort),
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// routes bundles the handlers mounted by newRouter.
type routes struct {
	refresh, list, get, remove, save, status, image, rate http.HandlerFunc
	swaggerURL                                            string
}

// newRouter mounts every endpoint behind the recovery, logging, metrics and CORS middlewares.
func newRouter(h routes) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(metrics.InstrumentHandler)
	r.Use(middlewares.CORSMiddleware)

	r.Route("/countries", func(r chi.Router) {
		r.Post("/refresh", h.refresh)
		r.Get("/image", h.image)
		r.Get("/status", h.status)
		r.Get("/", h.list)
		r.Post("/", h.save)
		r.Get("/{name}", h.get)
		r.Delete("/{name}", h.remove)
	})
	r.Get("/status", h.status)
	r.Get("/rates/{code}", h.rate)

	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(h.swaggerURL)))

	return r
}
