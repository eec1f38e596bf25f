package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/tennis-tracker/internal/domain/favorite"
)

type favoriteID struct {
	kind favorite.Kind
	key  string
}

type FavoriteRepository struct {
	mu    sync.RWMutex
	items map[favoriteID]favorite.Favorite
	now   func() time.Time
}

var _ favorite.Repository = (*FavoriteRepository)(nil)

func NewFavoriteRepository() *FavoriteRepository {
	return &FavoriteRepository{
		items: make(map[favoriteID]favorite.Favorite),
		now:   time.Now,
	}
}

func (r *FavoriteRepository) Add(_ context.Context, kind favorite.Kind, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := favoriteID{kind: kind, key: key}
	if _, exists := r.items[id]; exists {
		return nil
	}
	r.items[id] = favorite.Favorite{Kind: kind, Key: key, CreatedAt: r.now().UTC()}
	return nil
}

func (r *FavoriteRepository) Remove(_ context.Context, kind favorite.Kind, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, favoriteID{kind: kind, key: key})
	return nil
}

func (r *FavoriteRepository) Exists(_ context.Context, kind favorite.Kind, key string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.items[favoriteID{kind: kind, key: key}]
	return exists, nil
}

func (r *FavoriteRepository) List(_ context.Context, kind favorite.Kind) ([]favorite.Favorite, error) {
	r.mu.RLock()
	out := make([]favorite.Favorite, 0, len(r.items))
	for id, item := range r.items {
		if id.kind == kind {
			out = append(out, item)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Key < out[j].Key
	})
	return out, nil
}
