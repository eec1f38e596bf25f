package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/riskibarqy/tennis-tracker/external/apitennis"
	"github.com/riskibarqy/tennis-tracker/internal/config"
	"github.com/riskibarqy/tennis-tracker/internal/domain/favorite"
	"github.com/riskibarqy/tennis-tracker/internal/domain/tennis"
	cacherepo "github.com/riskibarqy/tennis-tracker/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/tennis-tracker/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/tennis-tracker/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/tennis-tracker/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/tennis-tracker/internal/platform/cache"
	"github.com/riskibarqy/tennis-tracker/internal/platform/logging"
	"github.com/riskibarqy/tennis-tracker/internal/platform/resilience"
	"github.com/riskibarqy/tennis-tracker/internal/usecase"
)

const redisKeyPrefix = "tennis-tracker:"

// App owns the HTTP server and every resource that has to be released on
// shutdown.
type App struct {
	Server    *http.Server
	scheduler *Scheduler
	closers   []io.Closer
	logger    *logging.Logger
}

// New wires the upstream client, the optional cache, the favorites store and
// the HTTP surface.
func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	a := &App{logger: logger}

	client := apitennis.NewClient(apitennis.ClientConfig{
		BaseURL:    cfg.APITennisBaseURL,
		APIKey:     cfg.APITennisAPIKey,
		Timeout:    cfg.APITennisTimeout,
		MaxRetries: cfg.APITennisMaxRetries,
		Logger:     logger.Named("apitennis"),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.APITennisCircuitEnabled,
			FailureThreshold: cfg.APITennisCircuitFailureCount,
			OpenTimeout:      cfg.APITennisCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.APITennisCircuitHalfOpenMaxReq,
		},
	})

	var repo tennis.Repository = apitennis.NewRepository(client, logger.Named("apitennis"))
	if cfg.CacheEnabled {
		store, err := a.newCacheStore(ctx, cfg)
		if err != nil {
			a.closeAll()
			return nil, err
		}
		cached := cacherepo.NewTennisRepository(repo, basecache.NewLoader(store, cfg.CacheTTL, logger.Named("cache")))
		repo = cached

		if cfg.WarmerEnabled {
			warmer := usecase.NewWarmupService(cached, cfg.WarmerWorkers, logger.Named("warmup"))
			scheduler, err := NewScheduler(cfg.WarmerSchedule, warmer, logger.Named("scheduler"))
			if err != nil {
				a.closeAll()
				return nil, err
			}
			a.scheduler = scheduler
		}
	}

	favorites, err := a.newFavoriteRepository(cfg)
	if err != nil {
		a.closeAll()
		return nil, err
	}

	matchSvc := usecase.NewMatchService(repo, cfg.APITennisTimezone, logger)
	playerSvc := usecase.NewPlayerService(repo, cfg.APITennisTimezone, logger)
	rankingSvc := usecase.NewRankingService(repo)
	favoriteSvc := usecase.NewFavoriteService(favorites, repo, usecase.FavoriteServiceConfig{
		Timezone: cfg.APITennisTimezone,
		Workers:  cfg.FavoritesWorkers,
		Logger:   logger,
	})

	handler := httpapi.NewHandler(matchSvc, playerSvc, rankingSvc, favoriteSvc, logger)
	a.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return a, nil
}

func (a *App) newCacheStore(ctx context.Context, cfg config.Config) (basecache.Store, error) {
	if cfg.CacheBackend != config.CacheRedis {
		return basecache.NewMemoryStore(), nil
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	store, err := basecache.NewRedisStore(pingCtx, cfg.RedisURL, redisKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("connect redis cache: %w", err)
	}
	a.closers = append(a.closers, store)
	return store, nil
}

func (a *App) newFavoriteRepository(cfg config.Config) (favorite.Repository, error) {
	if cfg.FavoritesStore != config.StorePostgres {
		return memory.NewFavoriteRepository(), nil
	}

	db, err := openDB(cfg.DBURL, cfg.DBDisablePreparedBinary)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, db)
	return postgres.NewFavoriteRepository(db), nil
}

// Run serves HTTP and runs the cache warmer until ctx is cancelled or the
// listener fails.
func (a *App) Run(ctx context.Context) error {
	if a.scheduler != nil {
		a.scheduler.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server starting", "addr", a.Server.Addr)
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	}
}

// Shutdown drains in-flight requests, waits for a running warmup and
// releases storage connections.
func (a *App) Shutdown(ctx context.Context) error {
	var errs []error
	if err := a.Server.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown http server: %w", err))
	}
	if a.scheduler != nil {
		a.scheduler.Stop(ctx)
	}
	if err := a.closeAll(); err != nil {
		errs = append(errs, err)
	}
	a.logger.Info("http server stopped")
	return errors.Join(errs...)
}

func (a *App) closeAll() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
