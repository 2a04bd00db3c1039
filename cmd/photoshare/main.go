// PhotoShare is a photo sharing backend with token-based authentication,
// role-gated authorization and remote media transformations.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	authapp "github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/app"
	authpg "github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/adapters/postgres"
	authredis "github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/adapters/redis"
	authservices "github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/adapters/services"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/config"
	domainservices "github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/auth/domain/services"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/httpapi"
	photoapp "github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/app"
	photopg "github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/adapters/postgres"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/internal/photos/adapters/s3"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/pkg/db/postgres"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/pkg/db/redis"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/pkg/logger"
	"github.com/Martizia/PhotoShare-by-Rapid-Creators/pkg/shutdown"
)

// Environment variables consulted before the configuration is loaded.
const (
	EnvLoggerMode  = "PHOTOSHARE_LOG_MODE"
	EnvLoggerLevel = "PHOTOSHARE_LOG_LEVEL"
)

// Error messages.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrConnectDatabase      = "failed to connect to database"
	ErrApplyMigrations      = "failed to apply migrations"
	ErrConnectRedis         = "failed to connect to Redis"
	ErrInitServices         = "failed to initialize services"
	ErrInitMediaStorage     = "failed to initialize media storage"
	ErrStartHTTPServer      = "failed to start HTTP server"
)

// Ignorable sync errors on stdio.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Service messages.
const (
	LogServiceStarted      = "photoshare service started"
	LogServiceShutdownDone = "photoshare service shutdown complete"
	LogApplyingMigrations  = "applying database migrations"
	LogInitRepositories    = "initializing repositories"
	LogInitServices        = "initializing services"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
	LogStoppingHTTP        = "stopping HTTP server"
	LogClosingDatabase     = "closing database pool"
	LogClosingRedis        = "closing Redis connection"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogApplyingMigrations)
		if err := postgres.MigrateDSN(ctx, cfg.Postgres.GetConnectionURL(), cfg.Postgres.MigrationsPath); err != nil {
			log.Error(ctx, ErrApplyMigrations, zap.Error(err))
			exitCode = 1
			return
		}

		database, err := postgres.New(ctx, cfg.Postgres.GetDSN(), cfg.Postgres.MinConn, cfg.Postgres.MaxConn)
		if err != nil {
			log.Error(ctx, ErrConnectDatabase, zap.Error(err))
			exitCode = 1
			return
		}

		redisClient, err := redis.NewClient(&redis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: redis.DefaultPoolSize,
			Timeout:  redis.DefaultTimeout,
		})
		if err != nil {
			log.Error(ctx, ErrConnectRedis, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitRepositories)
		authRepos := authpg.NewRepositoryFactory(database.Pool())
		photoRepos := photopg.NewRepositoryFactory(database.Pool())
		userRepo := authRepos.UserRepository()

		log.Info(ctx, LogInitServices)
		serviceFactory, err := authservices.NewServiceFactory(domainservices.JWTConfig{
			SecretKey:       []byte(cfg.JWT.SecretKey),
			Algorithm:       cfg.JWT.Algorithm,
			AccessTokenTTL:  cfg.JWT.GetAccessTokenTTL(),
			RefreshTokenTTL: cfg.JWT.GetRefreshTokenTTL(),
			EmailTokenTTL:   cfg.JWT.GetEmailTokenTTL(),
		}, cfg.JWT.BCryptCost)
		if err != nil {
			log.Error(ctx, ErrInitServices, zap.Error(err))
			exitCode = 1
			return
		}

		mediaStorage, err := s3.NewMediaStorage(ctx, s3.Config{
			Region:         cfg.Media.S3Region,
			Endpoint:       cfg.Media.S3Endpoint,
			Bucket:         cfg.Media.S3Bucket,
			AccessKey:      cfg.Media.S3AccessKey,
			SecretKey:      cfg.Media.S3SecretKey,
			PublicBaseURL:  cfg.Media.PublicBaseURL,
			MediaProxyBase: cfg.Media.MediaProxyBase,
		})
		if err != nil {
			log.Error(ctx, ErrInitMediaStorage, zap.Error(err))
			exitCode = 1
			return
		}

		sessionCache := authredis.NewSessionCache(redisClient.RawClient(), cfg.Redis.GetSessionCacheTTL())
		revocationLedger := authredis.NewRevocationLedger(redisClient.RawClient())

		authenticator := authapp.NewAuthenticator(
			userRepo,
			serviceFactory.TokenService(),
			revocationLedger,
			sessionCache,
			cfg.Redis.GetSessionCacheTTL(),
		)
		authUseCase := authapp.NewAuthUseCase(
			userRepo,
			revocationLedger,
			sessionCache,
			serviceFactory.PasswordService(),
			serviceFactory.TokenService(),
			serviceFactory.EmailService(),
		)
		userUseCase := authapp.NewUserUseCase(userRepo, sessionCache, mediaStorage)
		adminUseCase := authapp.NewAdminUseCase(userRepo, sessionCache)

		imageUseCase := photoapp.NewImageUseCase(photoRepos.ImageRepository(), photoRepos.TagRepository(), mediaStorage)
		commentUseCase := photoapp.NewCommentUseCase(photoRepos.CommentRepository(), photoRepos.ImageRepository())
		ratingUseCase := photoapp.NewRatingUseCase(photoRepos.RatingRepository(), photoRepos.ImageRepository())
		moderationUseCase := photoapp.NewModerationUseCase(
			photoRepos.ImageRepository(),
			photoRepos.CommentRepository(),
			photoRepos.RatingRepository(),
		)

		log.Info(ctx, LogInitHTTPServer)
		app := fiber.New(fiber.Config{
			BodyLimit: cfg.HTTP.BodyLimit,
		})

		httpapi.SetupRouter(app, httpapi.Services{
			Authenticator: authenticator,
			Auth:          authUseCase,
			Users:         userUseCase,
			Admin:         adminUseCase,
			Images:        imageUseCase,
			Comments:      commentUseCase,
			Ratings:       ratingUseCase,
			Moderation:    moderationUseCase,
			DB:            database,
		})

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.Address))
		go func() {
			if err := app.Listen(cfg.HTTP.Address); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		shutdown.Wait(cfg.Shutdown.GetTimeout(),
			func(shutdownCtx context.Context) error {
				log.Info(shutdownCtx, LogStoppingHTTP)
				return app.Shutdown()
			},
			func(shutdownCtx context.Context) error {
				log.Info(shutdownCtx, LogClosingRedis)
				return redisClient.Close()
			},
			func(shutdownCtx context.Context) error {
				log.Info(shutdownCtx, LogClosingDatabase)
				database.Close(shutdownCtx)
				return nil
			},
		)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
