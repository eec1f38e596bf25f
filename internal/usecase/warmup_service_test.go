package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/riskibarqy/tennis-tracker/internal/platform/logging"
)

type recordingRefresher struct {
	mu         sync.Mutex
	calls      []string
	failEvents bool
}

func (r *recordingRefresher) RefreshEventTypes(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, "events")
	if r.failEvents {
		return errors.New("events unavailable")
	}
	return nil
}

func (r *recordingRefresher) RefreshStandings(_ context.Context, eventType string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, "standings:"+eventType)
	return nil
}

func TestWarmupService_RefreshesEverything(t *testing.T) {
	t.Parallel()

	refresher := &recordingRefresher{failEvents: true}
	service := NewWarmupService(refresher, 2, logging.NewNop())

	result, err := service.Warm(context.Background())
	if err != nil {
		t.Fatalf("warm: %v", err)
	}
	if result.Succeeded != 2 || result.Failed != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}

	sort.Strings(refresher.calls)
	want := []string{"events", "standings:ATP", "standings:WTA"}
	if len(refresher.calls) != len(want) {
		t.Fatalf("unexpected calls: %v", refresher.calls)
	}
	for i := range want {
		if refresher.calls[i] != want[i] {
			t.Fatalf("call %d: got=%s want=%s", i, refresher.calls[i], want[i])
		}
	}
}
