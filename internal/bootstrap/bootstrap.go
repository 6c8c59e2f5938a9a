package bootstrap

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	appControllers "github.com/yigit/personnel/internal/app/controllers"
	appMigrations "github.com/yigit/personnel/internal/app/migrations"
	appRepos "github.com/yigit/personnel/internal/app/repositories"
	appRoutes "github.com/yigit/personnel/internal/app/routes"
	appServices "github.com/yigit/personnel/internal/app/services"
	"github.com/yigit/personnel/internal/config"
	"github.com/yigit/personnel/internal/db"
	appMiddleware "github.com/yigit/personnel/internal/middleware"
	"github.com/yigit/personnel/internal/pkg/helpers"
	"github.com/yigit/personnel/internal/pkg/logger"
	"github.com/yigit/personnel/internal/pkg/metrics"
	"github.com/yigit/personnel/internal/pkg/telemetry"
	"github.com/yigit/personnel/internal/pkg/validation"
	"github.com/yigit/personnel/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	EmployeeService      appServices.EmployeeService
	DepartmentService    appServices.DepartmentService
	EmployeeController   *appControllers.EmployeeController
	DepartmentController *appControllers.DepartmentController
	HealthController     *appControllers.HealthController
	Repos                *appRepos.Repositories
	Metrics              *metrics.Metrics
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(config.ResolvePath())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: logger.ParseFormat(cfg.Logging.Format),
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupTracing installs the global tracer provider. The caller shuts it down
// to flush pending spans.
func SetupTracing(cfg *config.Config, lgr zerolog.Logger) (*sdktrace.TracerProvider, error) {
	tp, err := telemetry.NewTracerProvider(cfg.Telemetry.ServiceName, cfg.Telemetry.Exporter, os.Stdout)
	if err != nil {
		return nil, err
	}
	telemetry.Install(tp)

	lgr.Info().Str("service", cfg.Telemetry.ServiceName).Str("exporter", cfg.Telemetry.Exporter).Msg("Tracing configured")
	return tp, nil
}

// SetupDatabase connects to PostgreSQL, applies migrations and seeds
// default data when enabled.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Str("host", cfg.Database.Host).Str("database", cfg.Database.DBName).Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	if cfg.Database.AutoMigrate {
		lgr.Info().Str("dir", cfg.Database.MigrationsDir).Msg("Running database migrations...")
		migrator := appMigrations.NewMigrator(cfg.Database.MigrationsDir, cfg.GetPostgresConnectionString(), lgr)
		if err := migrator.Up(); err != nil {
			database.Close()
			return nil, fmt.Errorf("database migrations failed: %w", err)
		}
	}

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(ctx, database.Pool, lgr); err != nil {
			// Startup continues without demo data
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database.Pool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, q db.Querier, reg *prometheus.Registry, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(q)
	deps.Metrics = metrics.New(reg)

	v := validation.New()
	clock := helpers.SystemClock{}

	deps.EmployeeService = appServices.NewEmployeeService(deps.Repos.EmployeeRepository, v, clock, deps.Metrics)
	deps.DepartmentService = appServices.NewDepartmentService(deps.Repos.DepartmentRepository, v)

	deps.EmployeeController = appControllers.NewEmployeeController(deps.EmployeeService)
	deps.DepartmentController = appControllers.NewDepartmentController(deps.DepartmentService)
	deps.HealthController = appControllers.NewHealthController(cfg.Telemetry.ServiceName, clock)

	return deps
}

// NewRegistry returns a registry carrying the Go runtime and process collectors
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	}

	router := gin.New()
	router.Use(
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(lgr),
		appMiddleware.Tracing(otel.Tracer(cfg.Telemetry.ServiceName)),
		appMiddleware.Recovery(),
		appMiddleware.Metrics(deps.Metrics),
		appMiddleware.CORS(cfg.AllowedOrigins()),
		appMiddleware.SecurityHeaders(),
		appMiddleware.BodyLimit(cfg.Server.MaxBodyBytes),
	)

	appRoutes.SetupRouter(router,
		deps.EmployeeController,
		deps.DepartmentController,
		deps.HealthController,
		deps.Metrics.Handler(),
	)

	return router
}
