package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/tipsters/internal/cache"
	"github.com/GlebRadaev/tipsters/internal/config"
	"github.com/GlebRadaev/tipsters/internal/events"
	"github.com/GlebRadaev/tipsters/internal/handlers"
	"github.com/GlebRadaev/tipsters/internal/metrics"
	"github.com/GlebRadaev/tipsters/internal/pg"
	"github.com/GlebRadaev/tipsters/internal/repo"
	"github.com/GlebRadaev/tipsters/internal/service"
	"github.com/GlebRadaev/tipsters/internal/settlement"
	"github.com/GlebRadaev/tipsters/pkg/auth"
	"github.com/GlebRadaev/tipsters/pkg/clients"
	"github.com/GlebRadaev/tipsters/pkg/logger"
	"github.com/GlebRadaev/tipsters/pkg/paypal"
)

const (
	shutdownTimeout = 5 * time.Second
	cachePrefix     = "tipsters:matches:"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type closer struct {
	name  string
	close func() error
}

type Application struct {
	cfg        *config.Config
	api        *handlers.Handlers
	srv        *service.Services
	repo       *repo.Repositories
	metrics    *metrics.Metrics
	reconciler *settlement.Reconciler

	// closers run in reverse order once every server has stopped, so the
	// pool registered first is closed last.
	closers []closer

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

// Start builds every dependency and launches the servers and the settlement
// reconciler. Resources opened before a failure are released.
func (a *Application) Start(ctx context.Context) error {
	if err := a.start(ctx); err != nil {
		a.close()
		return err
	}
	return nil
}

func (a *Application) start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	loc, err := time.LoadLocation(cfg.DisplayTimezone)
	if err != nil {
		return fmt.Errorf("can't load display timezone %q: %w", cfg.DisplayTimezone, err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	a.onClose("postgres pool", func() error {
		pool.Close()
		return nil
	})
	if _, err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	matchCache, err := a.buildCache(ctx, cfg)
	if err != nil {
		return fmt.Errorf("can't connect redis: %w", err)
	}
	publisher := a.buildPublisher(cfg)

	conn := pg.New(pool)
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	a.cfg = cfg
	a.metrics = metrics.New()
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, service.Deps{
		Config:    cfg,
		Cache:     matchCache,
		Publisher: publisher,
		Metrics:   a.metrics,
		Gateway:   paypal.New(clients.NewHTTPClient()),
		JWT:       jwtService,
		Location:  loc,
	})
	a.api = handlers.New(a.srv, auth.NewMiddleware(jwtService), loc, cfg.PublicSiteURL)
	a.reconciler = settlement.New(a.repo.BetRepo, a.srv.SettlementService, settlement.Options{
		Interval: cfg.SettleInterval,
		Lookback: cfg.SettleLookback,
		Workers:  cfg.SettleWorkers,
	})

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}
	a.startMetricsServer(ctx, pool.Ping)
	a.runInBackground(func() { a.reconciler.Run(ctx) })

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) buildCache(ctx context.Context, cfg *config.Config) (cache.Cache, error) {
	if cfg.RedisAddr == "" {
		zap.L().Info("REDIS_ADDR not set, match cache disabled")
		return cache.Noop{}, nil
	}
	rdb, err := cache.ConnectRedis(ctx, cfg.RedisAddr)
	if err != nil {
		return nil, err
	}
	a.onClose("redis", rdb.Close)
	return cache.NewRedis(rdb, cachePrefix), nil
}

func (a *Application) buildPublisher(cfg *config.Config) events.Publisher {
	if cfg.KafkaBrokers == "" {
		zap.L().Info("KAFKA_BROKERS not set, domain events disabled")
		return events.Noop{}
	}
	publisher := events.NewKafkaPublisher(events.NewWriter(cfg.KafkaBrokers, cfg.KafkaTopicBets))
	a.onClose("kafka publisher", publisher.Close)
	return publisher
}

func (a *Application) onClose(name string, fn func() error) {
	a.closers = append(a.closers, closer{name: name, close: fn})
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := &http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	a.serve(ctx, "http server", server)
	return nil
}

func (a *Application) startMetricsServer(ctx context.Context, health metrics.HealthFunc) {
	a.serve(ctx, "metrics server", metrics.NewServer(a.cfg.MetricsAddress, a.metrics, health))
}

// runInBackground tracks fn so Wait releases resources only after it returns.
func (a *Application) runInBackground(fn func()) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		fn()
	}()
}

func (a *Application) serve(ctx context.Context, name string, server *http.Server) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("shutdown failed", zap.String("server", name), zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting "+name, zap.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("%s exited with error: %w", name, err)
		}
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	a.close()
	return appErr
}

func (a *Application) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		c := a.closers[i]
		if err := c.close(); err != nil {
			zap.L().Error("close failed", zap.String("resource", c.name), zap.Error(err))
			continue
		}
		zap.L().Info("closed", zap.String("resource", c.name))
	}
	a.closers = nil
}
