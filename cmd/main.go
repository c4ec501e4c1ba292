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
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/femwell/femwell-backend/internal/handlers"
	"github.com/femwell/femwell-backend/internal/logger"
	"github.com/femwell/femwell-backend/internal/middlewares"
	"github.com/femwell/femwell-backend/internal/repositories"
	"github.com/femwell/femwell-backend/internal/services"
	"github.com/femwell/femwell-backend/internal/storage"

	_ "github.com/glebarez/go-sqlite"
	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title femwell-backend API
// @version 1.0.0
// @description REST backend for symptom assessments, period tracking, and the community forum
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		storageDriver, sqliteDSN,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		dbMaxOpenConns, dbMaxIdleConns,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		storageDriver, sqliteDSN,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		dbMaxOpenConns, dbMaxIdleConns,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, storage, and logging configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	storageDriver, sqliteDSN string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	dbMaxOpenConns, dbMaxIdleConns int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Storage config. "sqlite" keeps everything in process memory;
	// "pgx" targets a real PostgreSQL instance.
	storageDriver = getEnv("STORAGE_DRIVER", storage.DriverSQLite)
	sqliteDSN = getEnv("SQLITE_DSN", "file::memory:?cache=shared")

	// PostgreSQL config, used only when STORAGE_DRIVER=pgx
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if dbMaxOpenConns, err = strconv.Atoi(getEnv("DB_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if dbMaxIdleConns, err = strconv.Atoi(getEnv("DB_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	return
}

// run initializes the logger and storage, wires the application together,
// and serves HTTP until a shutdown signal arrives.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	storageDriver, sqliteDSN string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	dbMaxOpenConns, dbMaxIdleConns int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to storage
	dsn := sqliteDSN
	if storageDriver == storage.DriverPostgres {
		dsn = fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			pgUser, pgPassword, pgHost, pgPort, pgDB)
	}
	logger.Log.Infof("Connecting to storage: driver=%s", storageDriver)

	db, err := storage.Open(ctx, storageDriver, dsn, dbMaxOpenConns, dbMaxIdleConns)
	if err != nil {
		logger.Log.Errorw("storage connection error", "error", err)
		return err
	}
	defer db.Close()

	if err := storage.Bootstrap(ctx, db); err != nil {
		logger.Log.Errorw("storage bootstrap error", "error", err)
		return err
	}
	if err := storage.SeedForumPosts(ctx, db); err != nil {
		logger.Log.Errorw("forum seed error", "error", err)
		return err
	}

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	assessmentReadRepo := repositories.NewAssessmentReadRepository(db)
	assessmentWriteRepo := repositories.NewAssessmentWriteRepository(db)
	periodReadRepo := repositories.NewPeriodEntryReadRepository(db)
	periodWriteRepo := repositories.NewPeriodEntryWriteRepository(db)
	forumReadRepo := repositories.NewForumPostReadRepository(db)
	forumWriteRepo := repositories.NewForumPostWriteRepository(db)

	// Initialize services
	accountService := services.NewAccountService(userReadRepo, userWriteRepo)
	assessmentService := services.NewAssessmentService(assessmentReadRepo, assessmentWriteRepo)
	periodService := services.NewPeriodService(periodReadRepo, periodWriteRepo)
	forumService := services.NewForumService(forumReadRepo, forumWriteRepo)

	r := newRouter(accountService, assessmentService, periodService, forumService, appHost, appPort)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
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

// newRouter mounts every API route plus the swagger UI.
func newRouter(
	accountService *services.AccountService,
	assessmentService *services.AssessmentService,
	periodService *services.PeriodService,
	forumService *services.ForumService,
	appHost, appPort string,
) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Post("/users", handlers.NewCreateUserHandler(accountService))
		r.Get("/users/{id}", handlers.NewGetUserHandler(accountService))

		r.Post("/symptom-assessments", handlers.NewCreateAssessmentHandler(assessmentService))
		r.Get("/symptom-assessments/user/{userId}", handlers.NewListAssessmentsHandler(assessmentService))

		r.Post("/period-entries", handlers.NewCreatePeriodEntryHandler(periodService))
		r.Get("/period-entries/user/{userId}", handlers.NewListPeriodEntriesHandler(periodService))
		r.Get("/period-entries/user/{userId}/{year}/{month}", handlers.NewListPeriodEntriesByMonthHandler(periodService))

		r.Post("/forum-posts", handlers.NewCreateForumPostHandler(forumService))
		r.Get("/forum-posts", handlers.NewListForumPostsHandler(forumService))
		r.Get("/forum-posts/{id}", handlers.NewGetForumPostHandler(forumService))

		r.Post("/risk-scores", handlers.NewScoreRiskHandler())
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	return r
}
