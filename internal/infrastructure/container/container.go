package container

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/venturelink/venturelink-backend/internal/config"
	httpdelivery "github.com/venturelink/venturelink-backend/internal/delivery/http"
	"github.com/venturelink/venturelink-backend/internal/delivery/http/handler"
	"github.com/venturelink/venturelink-backend/internal/delivery/http/middleware"
	"github.com/venturelink/venturelink-backend/internal/infrastructure/database"
	"github.com/venturelink/venturelink-backend/internal/infrastructure/server"
	"github.com/venturelink/venturelink-backend/internal/repository/postgres"
	"github.com/venturelink/venturelink-backend/internal/usecase/activity"
	"github.com/venturelink/venturelink-backend/internal/usecase/auth"
	"github.com/venturelink/venturelink-backend/internal/usecase/connection"
	"github.com/venturelink/venturelink-backend/internal/usecase/dashboard"
	"github.com/venturelink/venturelink-backend/internal/usecase/discovery"
	"github.com/venturelink/venturelink-backend/internal/usecase/profile"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
	Logger *slog.Logger
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Redis only backs the dashboard cache; the service runs without it.
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		logger.Warn("redis unavailable, dashboard caching disabled", "error", err)
		redisClient = nil
	}

	// Repositories
	accountRepo := postgres.NewAccountRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	privacyRepo := postgres.NewPrivacyRepository(db)
	connectionRepo := postgres.NewConnectionRepository(db)
	activityRepo := postgres.NewActivityRepository(db)

	// Use cases
	authUseCase := auth.NewUseCase(accountRepo, cfg.JWT.Secret)
	profileUseCase := profile.NewUseCase(profileRepo, privacyRepo, connectionRepo)
	connectionUseCase := connection.NewUseCase(connectionRepo, profileRepo)
	discoveryUseCase := discovery.NewUseCase(profileRepo, connectionRepo)
	activityUseCase := activity.NewUseCase(activityRepo, profileRepo)
	dashboardUseCase := dashboard.NewUseCase(activityRepo, connectionRepo, profileRepo, redisClient, logger)

	// Handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase)
	connectionHandler := handler.NewConnectionHandler(connectionUseCase)
	discoveryHandler := handler.NewDiscoveryHandler(discoveryUseCase)
	activityHandler := handler.NewActivityHandler(activityUseCase)
	dashboardHandler := handler.NewDashboardHandler(dashboardUseCase)

	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	router := httpdelivery.NewRouter(
		authHandler,
		profileHandler,
		connectionHandler,
		discoveryHandler,
		activityHandler,
		dashboardHandler,
		authMiddleware,
	)

	srv := server.NewServer(&cfg.Server, router.Setup(), logger)

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
		Logger: logger,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Warn("error closing redis", "error", err)
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}
	return nil
}
