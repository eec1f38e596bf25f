package postgres

import (
	"time"

	"github.com/riskibarqy/tennis-tracker/internal/domain/favorite"
)

const favoritesTable = "favorites"

type favoriteTableModel struct {
	Kind      string    `db:"kind"`
	Key       string    `db:"key"`
	CreatedAt time.Time `db:"created_at"`
}

func (m favoriteTableModel) toDomain() (favorite.Favorite, bool) {
	kind, err := favorite.ParseKind(m.Kind)
	if err != nil {
		return favorite.Favorite{}, false
	}
	return favorite.Favorite{Kind: kind, Key: m.Key, CreatedAt: m.CreatedAt.UTC()}, true
}
