package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/tennis-tracker/internal/platform/logging"
)

type ranking struct {
	Key  string
	Rank *int
}

func TestMemoryStore_ExpiresEntries(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	if err := store.Set(context.Background(), "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got, ok, _ := store.Get(context.Background(), "k"); !ok || string(got) != "v" {
		t.Fatalf("expected cached value, got=%q ok=%v", got, ok)
	}

	now = now.Add(time.Minute)
	if _, ok, _ := store.Get(context.Background(), "k"); ok {
		t.Fatalf("expected entry to expire")
	}
}

func TestMemoryStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	ctx := context.Background()
	_ = store.Set(ctx, "standings:ATP", []byte("a"), 0)
	_ = store.Set(ctx, "standings:WTA", []byte("b"), 0)
	_ = store.Set(ctx, "events", []byte("c"), 0)

	store.DeletePrefix(ctx, "standings:")

	if _, ok, _ := store.Get(ctx, "standings:ATP"); ok {
		t.Fatalf("expected standings:ATP to be removed")
	}
	if _, ok, _ := store.Get(ctx, "events"); !ok {
		t.Fatalf("expected events to survive")
	}
}

func TestGetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	loader := NewLoader(NewMemoryStore(), time.Minute, logging.NewNop())
	var calls atomic.Int32
	load := func(context.Context) ([]ranking, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		rank := 1
		return []ranking{{Key: "p1", Rank: &rank}}, nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			got, err := GetOrLoad(context.Background(), loader, "same-key", load)
			if err != nil {
				errCh <- err
				return
			}
			if len(got) != 1 || got[0].Key != "p1" || got[0].Rank == nil || *got[0].Rank != 1 {
				errCh <- errors.New("unexpected value")
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestGetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	loader := NewLoader(NewMemoryStore(), time.Minute, logging.NewNop())
	errBoom := errors.New("boom")
	var calls atomic.Int32
	load := func(context.Context) (string, error) {
		if calls.Add(1) == 1 {
			return "", errBoom
		}
		return "ok", nil
	}

	if _, err := GetOrLoad(context.Background(), loader, "k", load); !errors.Is(err, errBoom) {
		t.Fatalf("expected boom, got %v", err)
	}
	got, err := GetOrLoad(context.Background(), loader, "k", load)
	if err != nil || got != "ok" {
		t.Fatalf("unexpected second result: got=%q err=%v", got, err)
	}
	if _, err := GetOrLoad(context.Background(), loader, "k", load); err != nil {
		t.Fatalf("unexpected third error: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("loader called %d times, want 2", got)
	}
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("connection refused")
}

func (failingStore) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("connection refused")
}

func (failingStore) Delete(context.Context, string) error {
	return errors.New("connection refused")
}

func TestGetOrLoad_StoreFailureFallsBackToLoad(t *testing.T) {
	t.Parallel()

	loader := NewLoader(failingStore{}, time.Minute, logging.NewNop())
	var calls atomic.Int32
	load := func(context.Context) (string, error) {
		calls.Add(1)
		return "fresh", nil
	}

	for i := 0; i < 2; i++ {
		got, err := GetOrLoad(context.Background(), loader, "k", load)
		if err != nil || got != "fresh" {
			t.Fatalf("attempt %d: got=%q err=%v", i, got, err)
		}
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("loader called %d times, want 2", got)
	}
}

func TestGetOrLoad_CancelledCallerDoesNotFailSharedLoad(t *testing.T) {
	t.Parallel()

	loader := NewLoader(NewMemoryStore(), time.Minute, logging.NewNop())
	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	load := func(ctx context.Context) (string, error) {
		if calls.Add(1) == 1 {
			close(started)
		}
		select {
		case <-release:
			return "standings", nil
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := GetOrLoad(firstCtx, loader, "tennis:standings:ATP", load)
		firstErr <- err
	}()
	<-started

	type result struct {
		value string
		err   error
	}
	second := make(chan result, 1)
	go func() {
		value, err := GetOrLoad(context.Background(), loader, "tennis:standings:ATP", load)
		second <- result{value: value, err: err}
	}()

	cancelFirst()
	if err := <-firstErr; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected first caller to see its own cancellation, got %v", err)
	}

	time.Sleep(20 * time.Millisecond)
	close(release)

	got := <-second
	if got.err != nil || got.value != "standings" {
		t.Fatalf("second caller: got=%q err=%v", got.value, got.err)
	}
}
