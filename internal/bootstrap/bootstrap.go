package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/classforum/classforum/internal/app/controllers"
	appMigrations "github.com/classforum/classforum/internal/app/migrations"
	appRepos "github.com/classforum/classforum/internal/app/repositories"
	appRoutes "github.com/classforum/classforum/internal/app/routes"
	appServices "github.com/classforum/classforum/internal/app/services"
	"github.com/classforum/classforum/internal/config"
	"github.com/classforum/classforum/internal/db"
	appMiddleware "github.com/classforum/classforum/internal/middleware"
	pkgAuth "github.com/classforum/classforum/internal/pkg/auth"
	"github.com/classforum/classforum/internal/pkg/helpers"
	"github.com/classforum/classforum/internal/pkg/logger"
	"github.com/classforum/classforum/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService        appServices.AuthService
	UserService        appServices.UserService
	PostService        appServices.PostService
	HomeworkService    appServices.HomeworkService
	ChatService        appServices.ChatService
	MessageService     appServices.MessageService
	AuthController     *appControllers.AuthController
	UserController     *appControllers.UserController
	PostController     *appControllers.PostController
	HomeworkController *appControllers.HomeworkController
	ChatController     *appControllers.ChatController
	MessageController  *appControllers.MessageController
	AdminController    *appControllers.AdminController
	AuthMiddleware     *appMiddleware.AuthMiddleware
	Repos              *appRepos.Repositories
	JWTService         *pkgAuth.JWTService
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the bootstrap admin.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.SessionRepository,
		deps.JWTService,
		cfg,
		lgr,
	)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, deps.Repos.SessionRepository, lgr)
	deps.PostService = appServices.NewPostService(deps.Repos.PostRepository, lgr)
	deps.HomeworkService = appServices.NewHomeworkService(deps.Repos.HomeworkRepository, lgr)
	deps.ChatService = appServices.NewChatService(deps.Repos.ChatRepository, lgr)
	deps.MessageService = appServices.NewMessageService(deps.Repos.MessageRepository, deps.Repos.UserRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.UserRepository)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.UserController = appControllers.NewUserController(deps.UserService, lgr)
	deps.PostController = appControllers.NewPostController(deps.PostService, lgr)
	deps.HomeworkController = appControllers.NewHomeworkController(deps.HomeworkService, lgr)
	deps.ChatController = appControllers.NewChatController(deps.ChatService, lgr)
	deps.MessageController = appControllers.NewMessageController(deps.MessageService, lgr)
	deps.AdminController = appControllers.NewAdminController(deps.UserService, deps.PostService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.PostController,
		deps.HomeworkController,
		deps.ChatController,
		deps.MessageController,
		deps.AdminController,
		deps.AuthMiddleware,
	)

	return router
}
