package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/groph-receipts/internal/cache"
	"github.com/fsdevblog/groph-receipts/internal/config"
	"github.com/fsdevblog/groph-receipts/internal/metrics"
	"github.com/fsdevblog/groph-receipts/internal/receipttext"
	"github.com/fsdevblog/groph-receipts/internal/repository/pgrepo"
	"github.com/fsdevblog/groph-receipts/internal/repository/repoargs"
	"github.com/fsdevblog/groph-receipts/internal/service"
	"github.com/fsdevblog/groph-receipts/internal/transport/api"
	"github.com/fsdevblog/groph-receipts/internal/transport/api/middlewares"
	"github.com/fsdevblog/groph-receipts/pkg/uow"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

// Run поднимает зависимости и обслуживает http до получения SIGINT/SIGTERM, после чего дожидается
// завершения активных запросов.
func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.WithFields(logrus.Fields{
		"run_address": a.Config.RunAddress,
		"migrations":  a.Config.MigrationsDir,
		"redis_cache": a.Config.RedisURL != "",
	}).Info("starting app")

	conn, connErr := pgrepo.Connect(notifyCtx, pgrepo.ConnectArgs{
		DSN:           a.Config.DatabaseDSN,
		MigrationsDir: a.Config.MigrationsDir,
		Logger:        a.Logger,
	})
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	appMetrics := metrics.New()

	receiptCache, closeCache, cacheErr := a.initCache(notifyCtx, appMetrics)
	if cacheErr != nil {
		return fmt.Errorf("app run: %s", cacheErr.Error())
	}
	defer closeCache()

	services, sErr := service.Factory(service.FactoryArgs{
		UOW:            unitOfWork,
		Cache:          receiptCache,
		JWTSecret:      []byte(a.Config.JWTUserSecret),
		JWTTokenExpire: a.Config.JWTExpire,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:             a.Logger,
		UserService:        services.UserService,
		ReceiptService:     services.ReceiptService,
		Formatter:          receipttext.New(),
		Metrics:            appMetrics,
		JWTSecretKey:       []byte(a.Config.JWTUserSecret),
		CORSAllowedOrigins: a.Config.CORSAllowedOrigins,
		PublicRateLimit: middlewares.RateLimiterConfig{
			RequestsPerSecond: a.Config.PublicRateLimit,
			BurstSize:         a.Config.PublicRateBurst,
		},
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	server := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gCtx := errgroup.WithContext(notifyCtx)
	g.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		a.Logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	return g.Wait() //nolint:wrapcheck
}

// initCache redis, если он настроен, иначе LRU в памяти процесса. Возвращает функцию освобождения ресурсов.
func (a *App) initCache(ctx context.Context, m *metrics.Metrics) (service.ReceiptCache, func(), error) {
	if a.Config.RedisURL == "" {
		lru := cache.NewLRU(a.Config.CacheSize, a.Config.CacheTTL)
		return cache.Instrument(lru, "lru", m), func() {}, nil
	}

	client, err := newRedisClient(ctx, a.Config.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if closeErr := client.Close(); closeErr != nil {
			a.Logger.WithError(closeErr).Warn("closing redis client")
		}
	}
	store := cache.NewRedis(client, a.Config.CacheTTL, a.Logger)
	return cache.Instrument(store, "redis", m), closeFn, nil
}

func newRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if pingErr := client.Ping(ctx).Err(); pingErr != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", pingErr)
	}
	return client, nil
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	// user repo
	userRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewUserRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.UserRepoName), userRepoFactoryFn); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	// receipt repo
	receiptRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewReceiptRepository(dbtx)
	}
	if regErr := unitOfWork.Register(uow.RepositoryName(repoargs.ReceiptRepoName), receiptRepoFactoryFn); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	return unitOfWork, nil
}
