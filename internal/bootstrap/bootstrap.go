package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/studentdesk/internal/app/controllers"
	appMigrations "github.com/yigit/studentdesk/internal/app/migrations"
	"github.com/yigit/studentdesk/internal/app/models/dto"
	appRepos "github.com/yigit/studentdesk/internal/app/repositories"
	appRoutes "github.com/yigit/studentdesk/internal/app/routes"
	appServices "github.com/yigit/studentdesk/internal/app/services"
	"github.com/yigit/studentdesk/internal/config"
	"github.com/yigit/studentdesk/internal/db"
	appMiddleware "github.com/yigit/studentdesk/internal/middleware"
	"github.com/yigit/studentdesk/internal/pkg/logger"
	"github.com/yigit/studentdesk/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos             *appRepos.Repositories
	StudentService    appServices.StudentService
	StudentController *appControllers.StudentController
	Schema            *SchemaGate
	Logger            zerolog.Logger
}

// Pinger reports whether the store can be reached
type Pinger interface {
	Ping(ctx context.Context) error
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.ConfigFromStrings(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// EnsureSchema creates the students table if it does not exist
func EnsureSchema(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	lgr.Info().Msg("Ensuring database schema...")
	if err := appMigrations.NewMigrator(database.Pool, lgr).EnsureSchema(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database schema error")
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// SetupDatabase creates the pool, checks the connection and ensures the schema.
// An unreachable store is only fatal with database.fail_fast; otherwise the pool is
// returned anyway with schemaReady false, and each request fails on its own until
// the store comes back and the SchemaGate has created the table.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (database *db.PostgresDB, schemaReady bool, err error) {
	lgr.Info().
		Str("host", cfg.Database.Host).
		Str("database", cfg.Database.DBName).
		Msg("Establishing database connection...")

	database, err = db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to create database pool")
		return nil, false, err
	}

	if err := prepareStore(ctx, cfg, database, lgr); err != nil {
		if cfg.Database.FailFast {
			database.Close()
			return nil, false, err
		}
		lgr.Warn().Err(err).Msg("Database is not ready; continuing, requests will fail until it is reachable")
		return database, false, nil
	}

	return database, true, nil
}

func prepareStore(ctx context.Context, cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) error {
	if err := database.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		return err
	}
	lgr.Info().Msg("Database connection successfully established.")

	if err := EnsureSchema(ctx, database, lgr); err != nil {
		return err
	}

	if cfg.Seed.DemoData {
		if err := seed.CreateDemoData(ctx, appRepos.NewStudentRepository(database.Pool), lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create demo data, proceeding anyway...")
		}
	}
	return nil
}

// BuildDependencies initializes application repositories, services, and controllers.
// schemaReady tells whether startup already ensured the schema.
func BuildDependencies(conn appRepos.DBTX, schemaReady bool, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Schema = NewSchemaGate(conn, schemaReady, lgr)
	deps.Repos = appRepos.NewRepositories(conn)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, store Pinger) *gin.Engine {
	lgr := deps.Logger
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	appMiddleware.RegisterValidatorTagNames()

	router := gin.New()
	appMiddleware.Use(router, cfg.CORS.AllowOrigins, lgr)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.StudentController, deps.Schema.Middleware())

	router.GET("/ping", pingHandler(store))

	setupStaticFileServing(router, cfg.Server.StaticDir, lgr)

	return router
}

// pingHandler answers 200 when the store is reachable and 503 otherwise
func pingHandler(store Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Message: "pong", Status: "degraded", Database: "down"})
			return
		}
		c.JSON(http.StatusOK, dto.HealthResponse{Message: "pong", Status: "success", Database: "up"})
	}
}

// setupStaticFileServing serves the browser panels at /app when the directory exists
func setupStaticFileServing(router *gin.Engine, dir string, lgr zerolog.Logger) {
	if dir == "" {
		return
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		lgr.Debug().Str("path", dir).Msg("Static directory not found, panels are not served")
		return
	}

	router.Static("/app", dir)
	lgr.Info().Str("path", dir).Msg("Static file serving configured at /app")
}
