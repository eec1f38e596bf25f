package cache

import (
	"context"
	"errors"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/tennis-tracker/internal/platform/logging"
	"golang.org/x/sync/singleflight"
)

// Loader fronts a Store with sonic encoding and per-key call collapsing.
type Loader struct {
	store  Store
	ttl    time.Duration
	flight singleflight.Group
	logger *logging.Logger
}

func NewLoader(store Store, ttl time.Duration, logger *logging.Logger) *Loader {
	if logger == nil {
		logger = logging.Default()
	}
	return &Loader{store: store, ttl: ttl, logger: logger}
}

// GetOrLoad returns the cached value for key or calls load and stores its
// result. Errors from load are returned and never cached. Store failures
// are logged and degrade to a direct load.
func GetOrLoad[T any](ctx context.Context, l *Loader, key string, load func(context.Context) (T, error)) (T, error) {
	var zero T
	if load == nil {
		return zero, errors.New("loader is required")
	}
	if l == nil || l.store == nil || key == "" {
		return load(ctx)
	}

	if value, ok := l.lookup(ctx, key); ok {
		var out T
		if err := sonic.Unmarshal(value, &out); err == nil {
			return out, nil
		}
		l.logger.WarnContext(ctx, "discarding undecodable cache entry", "key", key)
	}

	// Detached from the first caller so its cancellation cannot fail the
	// others sharing this load; each caller still leaves on its own ctx.
	ch := l.flight.DoChan(key, func() (any, error) {
		loadCtx := context.WithoutCancel(ctx)
		loaded, loadErr := load(loadCtx)
		if loadErr != nil {
			return nil, loadErr
		}
		encoded, encErr := sonic.Marshal(loaded)
		if encErr != nil {
			return nil, encErr
		}
		if setErr := l.store.Set(loadCtx, key, encoded, l.ttl); setErr != nil {
			l.logger.WarnContext(loadCtx, "cache store failed", "key", key, "error", setErr)
		}
		return encoded, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return zero, res.Err
	}
	v := res.Val

	// Every caller decodes its own copy so shared results are never aliased.
	var out T
	if err := sonic.Unmarshal(v.([]byte), &out); err != nil {
		return zero, err
	}
	return out, nil
}

// Invalidate drops key from the store.
func (l *Loader) Invalidate(ctx context.Context, key string) error {
	if l == nil || l.store == nil {
		return nil
	}
	return l.store.Delete(ctx, key)
}

func (l *Loader) lookup(ctx context.Context, key string) ([]byte, bool) {
	value, ok, err := l.store.Get(ctx, key)
	if err != nil {
		l.logger.WarnContext(ctx, "cache lookup failed", "key", key, "error", err)
		return nil, false
	}
	return value, ok
}
