package cache

import (
	"context"
	"strings"

	"github.com/riskibarqy/tennis-tracker/internal/domain/tennis"
	basecache "github.com/riskibarqy/tennis-tracker/internal/platform/cache"
	"github.com/riskibarqy/tennis-tracker/internal/usecase"
)

const (
	eventTypesKey    = "tennis:events"
	standingsKeyBase = "tennis:standings:"
	playersKeyBase   = "tennis:players:"
)

// TennisRepository caches the slow-moving feed queries. Fixtures and live
// scores always go to next.
type TennisRepository struct {
	next   tennis.Repository
	loader *basecache.Loader
}

var (
	_ tennis.Repository      = (*TennisRepository)(nil)
	_ usecase.CacheRefresher = (*TennisRepository)(nil)
)

func NewTennisRepository(next tennis.Repository, loader *basecache.Loader) *TennisRepository {
	return &TennisRepository{next: next, loader: loader}
}

func (r *TennisRepository) ListEventTypes(ctx context.Context) ([]tennis.EventType, error) {
	return basecache.GetOrLoad(ctx, r.loader, eventTypesKey, r.next.ListEventTypes)
}

func (r *TennisRepository) ListFixtures(ctx context.Context, filter tennis.FixtureFilter) ([]tennis.Match, error) {
	return r.next.ListFixtures(ctx, filter)
}

func (r *TennisRepository) ListLiveScores(ctx context.Context, filter tennis.LiveFilter) ([]tennis.Match, error) {
	return r.next.ListLiveScores(ctx, filter)
}

func (r *TennisRepository) ListPlayers(ctx context.Context, playerKey string) ([]tennis.Player, error) {
	playerKey = strings.TrimSpace(playerKey)
	return basecache.GetOrLoad(ctx, r.loader, playersKey(playerKey), func(ctx context.Context) ([]tennis.Player, error) {
		return r.next.ListPlayers(ctx, playerKey)
	})
}

// ListStandings upper-cases eventType so "atp" and "ATP" share one entry.
func (r *TennisRepository) ListStandings(ctx context.Context, eventType string) ([]tennis.PlayerRanking, error) {
	eventType = normalizeEventType(eventType)
	return basecache.GetOrLoad(ctx, r.loader, standingsKey(eventType), func(ctx context.Context) ([]tennis.PlayerRanking, error) {
		return r.next.ListStandings(ctx, eventType)
	})
}

// RefreshEventTypes drops the cached event types and loads them again.
func (r *TennisRepository) RefreshEventTypes(ctx context.Context) error {
	if err := r.loader.Invalidate(ctx, eventTypesKey); err != nil {
		return err
	}
	_, err := r.ListEventTypes(ctx)
	return err
}

func (r *TennisRepository) RefreshStandings(ctx context.Context, eventType string) error {
	if err := r.loader.Invalidate(ctx, standingsKey(eventType)); err != nil {
		return err
	}
	_, err := r.ListStandings(ctx, eventType)
	return err
}

func standingsKey(eventType string) string {
	return standingsKeyBase + normalizeEventType(eventType)
}

func normalizeEventType(eventType string) string {
	return strings.ToUpper(strings.TrimSpace(eventType))
}

func playersKey(playerKey string) string {
	return playersKeyBase + strings.TrimSpace(playerKey)
}
