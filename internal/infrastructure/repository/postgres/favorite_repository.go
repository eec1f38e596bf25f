package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/tennis-tracker/internal/domain/favorite"
	qb "github.com/riskibarqy/tennis-tracker/internal/platform/querybuilder"
)

type FavoriteRepository struct {
	db *sqlx.DB
}

var _ favorite.Repository = (*FavoriteRepository)(nil)

func NewFavoriteRepository(db *sqlx.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Add relies on the (kind, key) primary key so a repeated add keeps the
// original created_at.
func (r *FavoriteRepository) Add(ctx context.Context, kind favorite.Kind, key string) error {
	query, args, err := insertFavoriteQuery(kind, key)
	if err != nil {
		return fmt.Errorf("build insert favorite query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert favorite kind=%s key=%s: %w", kind, key, err)
	}
	return nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, kind favorite.Kind, key string) error {
	query, args, err := qb.DeleteFrom(favoritesTable).
		Where(qb.Eq("kind", string(kind)), qb.Eq("key", key)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete favorite query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete favorite kind=%s key=%s: %w", kind, key, err)
	}
	return nil
}

func (r *FavoriteRepository) Exists(ctx context.Context, kind favorite.Kind, key string) (bool, error) {
	query, args, err := qb.Select("1").From(favoritesTable).
		Where(qb.Eq("kind", string(kind)), qb.Eq("key", key)).
		Limit(1).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build favorite exists query: %w", err)
	}

	var found int
	if err := r.db.GetContext(ctx, &found, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("select favorite kind=%s key=%s: %w", kind, key, err)
	}
	return true, nil
}

func (r *FavoriteRepository) List(ctx context.Context, kind favorite.Kind) ([]favorite.Favorite, error) {
	query, args, err := listFavoritesQuery(kind)
	if err != nil {
		return nil, fmt.Errorf("build list favorites query: %w", err)
	}

	var rows []favoriteTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select favorites kind=%s: %w", kind, err)
	}

	out := make([]favorite.Favorite, 0, len(rows))
	for _, row := range rows {
		if item, ok := row.toDomain(); ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func insertFavoriteQuery(kind favorite.Kind, key string) (string, []any, error) {
	return qb.InsertInto(favoritesTable).
		Columns("kind", "key").
		Values(string(kind), key).
		Suffix("ON CONFLICT (kind, key) DO NOTHING").
		ToSQL()
}

func listFavoritesQuery(kind favorite.Kind) (string, []any, error) {
	return qb.Select("kind", "key", "created_at").From(favoritesTable).
		Where(qb.Eq("kind", string(kind))).
		OrderBy("created_at DESC", "key").
		ToSQL()
}
