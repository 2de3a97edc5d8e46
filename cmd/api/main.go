package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/atareao/bloc/internal/config"
	"github.com/atareao/bloc/internal/middleware"
	"github.com/atareao/bloc/internal/migration"
	"github.com/atareao/bloc/internal/routes"
	pkgcache "github.com/atareao/bloc/pkg/cache"
	"github.com/atareao/bloc/pkg/database"
	"github.com/atareao/bloc/pkg/jwt"
	pkglogger "github.com/atareao/bloc/pkg/logger"
	"github.com/atareao/bloc/pkg/markdown"
	pkgredis "github.com/atareao/bloc/pkg/redis"
	pkgstorage "github.com/atareao/bloc/pkg/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	gormlogger "gorm.io/gorm/logger"
)

// @title           Bloc API
// @version         1.0
// @description     Blog / CMS backend: posts, tags, topics, comments, values and settings
//
// @license.name    MIT
//
// @host            localhost:8080
// @BasePath        /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Authorization header using the Bearer scheme. Example: "Bearer {token}"

func main() {
	if err := run(); err != nil {
		pkglogger.GetLogger().Fatal().Err(err).Msg("bloc stopped")
	}
}

func run() error {
	dotenvFiles, err := config.LoadDotEnv(".")
	if err != nil {
		return fmt.Errorf("loading .env: %w", err)
	}

	env := config.Env()
	pkglogger.InitStructured(env, os.Getenv("LOG_LEVEL"))
	pkglogger.Info("APP_ENV=%s, loaded env files: %v", env, dotenvFiles)

	// 설정 로드
	cfg, err := config.Load(config.Path())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	pkglogger.InitStructured(cfg.Server.Env, cfg.Log.Level)
	config.LogResolved(cfg)
	gin.SetMode(cfg.Server.Mode)

	// Sentry
	flush, err := pkglogger.InitSentry(pkglogger.SentrySettings{
		DSN:         cfg.Sentry.DSN,
		Environment: cfg.Sentry.Environment,
	})
	if err != nil {
		return err
	}
	defer flush()

	// DB 연결 + 마이그레이션
	db, err := database.Open(database.Options{
		Driver:       cfg.Database.Driver,
		DSN:          cfg.Database.GetDSN(),
		Logger:       gormlogger.Default.LogMode(gormLogLevel(cfg.Database.LogLevel)),
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
		ConnMaxLife:  cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return err
	}
	defer func() { _ = database.Close(db) }()
	pkglogger.Info("Connected to %s", cfg.Database.Driver)

	if err := migration.Run(db); err != nil {
		return err
	}

	// Redis (선택): 연결 실패 시 캐시/레이트리밋 없이 동작
	var redisClient *goredis.Client
	var cacheService pkgcache.Service
	if cfg.Redis.Enabled {
		redisClient, err = pkgredis.NewClient(context.Background(), pkgredis.Options{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			pkglogger.Warn("Failed to connect to Redis: %v (continuing without Redis)", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
			cacheService = pkgcache.NewService(redisClient)
			pkglogger.Info("Connected to Redis")
		}
	}

	store, err := newStorage(cfg)
	if err != nil {
		return err
	}

	// JWT: secret 이 없으면 쓰기 API 도 공개
	var jwtManager *jwt.Manager
	if cfg.JWT.Secret != "" {
		jwtManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiresIn)
	} else {
		pkglogger.Warn("jwt.secret is empty: write routes are not protected")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())
	router.Use(middleware.SecurityHeaders())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins(),
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader, "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	if redisClient != nil && cfg.Server.RateLimit > 0 {
		rl := middleware.DefaultRateLimitConfig()
		rl.RequestsPerMinute = cfg.Server.RateLimit
		router.Use(middleware.RateLimit(redisClient, rl))
	}

	if local, ok := store.(*pkgstorage.LocalStorage); ok {
		router.Static(cfg.Upload.PublicPrefix, local.Dir())
	}

	routes.Setup(router, routes.NewHandlers(routes.Deps{
		DB:             db,
		Cache:          cacheService,
		Storage:        store,
		Renderer:       markdown.New(),
		MaxUploadBytes: cfg.MaxUploadBytes(),
	}), jwtManager)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		pkglogger.Info("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		pkglogger.Info("Received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}

// newStorage 설정된 업로드 백엔드
func newStorage(cfg *config.Config) (pkgstorage.Storage, error) {
	if cfg.Storage.Backend == pkgstorage.BackendS3 {
		return pkgstorage.NewS3Client(pkgstorage.S3Config{
			Endpoint:        cfg.Storage.Endpoint,
			Region:          cfg.Storage.Region,
			AccessKeyID:     cfg.Storage.AccessKeyID,
			SecretAccessKey: cfg.Storage.SecretAccessKey,
			Bucket:          cfg.Storage.Bucket,
			CDNURL:          cfg.Storage.CDNURL,
			BasePath:        cfg.Storage.BasePath,
			ForcePathStyle:  cfg.Storage.ForcePathStyle,
		})
	}
	return pkgstorage.NewLocalStorage(cfg.Upload.Dir, cfg.Upload.PublicPrefix)
}

func gormLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}
