package postgres

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/riskibarqy/tennis-tracker/internal/domain/favorite"
)

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	if !isNotFound(fmt.Errorf("select favorite: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped ErrNoRows to be not found")
	}
	if isNotFound(fmt.Errorf("pq: relation favorites does not exist")) {
		t.Fatalf("expected false for unrelated error")
	}
}

func TestInsertFavoriteQuery_IgnoresDuplicates(t *testing.T) {
	t.Parallel()

	query, args, err := insertFavoriteQuery(favorite.KindMatch, "12001")
	if err != nil {
		t.Fatalf("build query: %v", err)
	}
	want := "INSERT INTO favorites (kind, key) VALUES ($1, $2) ON CONFLICT (kind, key) DO NOTHING"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 2 || args[0] != "match" || args[1] != "12001" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestListFavoritesQuery_NewestFirst(t *testing.T) {
	t.Parallel()

	query, args, err := listFavoritesQuery(favorite.KindPlayer)
	if err != nil {
		t.Fatalf("build query: %v", err)
	}
	want := "SELECT kind, key, created_at FROM favorites WHERE kind = $1 ORDER BY created_at DESC, key"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 1 || args[0] != "player" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestFavoriteTableModel_ToDomain(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 5, 30, 12, 0, 0, 0, time.FixedZone("WIB", 7*3600))
	item, ok := favoriteTableModel{Kind: "player", Key: "1905", CreatedAt: created}.toDomain()
	if !ok {
		t.Fatalf("expected valid row")
	}
	if item.Kind != favorite.KindPlayer || item.Key != "1905" || item.CreatedAt.Location() != time.UTC {
		t.Fatalf("unexpected favorite: %+v", item)
	}

	if _, ok := (favoriteTableModel{Kind: "tournament", Key: "1"}).toDomain(); ok {
		t.Fatalf("unknown kinds must be skipped")
	}
}
