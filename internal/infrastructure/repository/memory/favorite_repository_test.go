package memory

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/tennis-tracker/internal/domain/favorite"
)

func newTestFavoriteRepository(start time.Time) *FavoriteRepository {
	repo := NewFavoriteRepository()
	current := start
	repo.now = func() time.Time {
		current = current.Add(time.Minute)
		return current
	}
	return repo
}

func TestFavoriteRepository_AddIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newTestFavoriteRepository(time.Date(2026, 5, 30, 10, 0, 0, 0, time.UTC))

	if err := repo.Add(ctx, favorite.KindMatch, "12001"); err != nil {
		t.Fatalf("add favorite: %v", err)
	}
	first, _ := repo.List(ctx, favorite.KindMatch)

	if err := repo.Add(ctx, favorite.KindMatch, "12001"); err != nil {
		t.Fatalf("re-add favorite: %v", err)
	}
	second, _ := repo.List(ctx, favorite.KindMatch)

	if len(second) != 1 {
		t.Fatalf("expected a single favorite, got %d", len(second))
	}
	if !second[0].CreatedAt.Equal(first[0].CreatedAt) {
		t.Fatalf("re-adding must keep CreatedAt, got %s want %s", second[0].CreatedAt, first[0].CreatedAt)
	}
}

func TestFavoriteRepository_ListNewestFirstPerKind(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newTestFavoriteRepository(time.Date(2026, 5, 30, 10, 0, 0, 0, time.UTC))

	for _, key := range []string{"1", "2", "3"} {
		if err := repo.Add(ctx, favorite.KindPlayer, key); err != nil {
			t.Fatalf("add player %s: %v", key, err)
		}
	}
	if err := repo.Add(ctx, favorite.KindMatch, "99"); err != nil {
		t.Fatalf("add match: %v", err)
	}

	players, err := repo.List(ctx, favorite.KindPlayer)
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(players) != 3 || players[0].Key != "3" || players[2].Key != "1" {
		t.Fatalf("unexpected order: %+v", players)
	}
}

func TestFavoriteRepository_RemoveAndExists(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewFavoriteRepository()

	_ = repo.Add(ctx, favorite.KindMatch, "7")
	exists, err := repo.Exists(ctx, favorite.KindMatch, "7")
	if err != nil || !exists {
		t.Fatalf("expected favorite to exist, exists=%v err=%v", exists, err)
	}
	if exists, _ := repo.Exists(ctx, favorite.KindPlayer, "7"); exists {
		t.Fatalf("kinds must not share keys")
	}

	if err := repo.Remove(ctx, favorite.KindMatch, "7"); err != nil {
		t.Fatalf("remove favorite: %v", err)
	}
	if err := repo.Remove(ctx, favorite.KindMatch, "7"); err != nil {
		t.Fatalf("removing a missing favorite should succeed: %v", err)
	}
	if exists, _ := repo.Exists(ctx, favorite.KindMatch, "7"); exists {
		t.Fatalf("expected favorite to be removed")
	}
}
