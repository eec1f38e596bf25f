package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/tennis-tracker/internal/domain/favorite"
	"github.com/riskibarqy/tennis-tracker/internal/domain/tennis"
	"github.com/riskibarqy/tennis-tracker/internal/platform/logging"
)

const (
	favoriteMatchWindowMonths = 3
	favoritePlayerBatchSize   = 10
)

type FavoriteServiceConfig struct {
	Timezone string
	Workers  int
	Logger   *logging.Logger
}

type FavoriteService struct {
	favorites favorite.Repository
	repo      tennis.Repository
	timezone  string
	workers   int
	logger    *logging.Logger
	now       func() time.Time
}

func NewFavoriteService(favorites favorite.Repository, repo tennis.Repository, cfg FavoriteServiceConfig) *FavoriteService {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	return &FavoriteService{
		favorites: favorites,
		repo:      repo,
		timezone:  strings.TrimSpace(cfg.Timezone),
		workers:   cfg.Workers,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *FavoriteService) Add(ctx context.Context, kind favorite.Kind, key string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FavoriteService.Add")
	defer span.End()

	key, err := normalizeFavoriteKey(kind, key)
	if err != nil {
		return err
	}
	if err := s.favorites.Add(ctx, kind, key); err != nil {
		return fmt.Errorf("add favorite %s: %w", kind, err)
	}
	return nil
}

func (s *FavoriteService) Remove(ctx context.Context, kind favorite.Kind, key string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FavoriteService.Remove")
	defer span.End()

	key, err := normalizeFavoriteKey(kind, key)
	if err != nil {
		return err
	}
	if err := s.favorites.Remove(ctx, kind, key); err != nil {
		return fmt.Errorf("remove favorite %s: %w", kind, err)
	}
	return nil
}

func (s *FavoriteService) IsFavorite(ctx context.Context, kind favorite.Kind, key string) (bool, error) {
	key, err := normalizeFavoriteKey(kind, key)
	if err != nil {
		return false, err
	}
	exists, err := s.favorites.Exists(ctx, kind, key)
	if err != nil {
		return false, fmt.Errorf("check favorite %s: %w", kind, err)
	}
	return exists, nil
}

// ListFavoriteMatches resolves every favorite match key against the feed.
// Keys that cannot be resolved are skipped.
func (s *FavoriteService) ListFavoriteMatches(ctx context.Context) ([]tennis.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FavoriteService.ListFavoriteMatches")
	defer span.End()

	keys, err := s.favoriteKeys(ctx, favorite.KindMatch)
	if err != nil {
		return nil, err
	}

	resolved := make([]*tennis.Match, len(keys))
	if err := runOnPool(s.workers, len(keys), func(i int) {
		if match, ok := s.resolveMatch(ctx, keys[i]); ok {
			resolved[i] = &match
		}
	}); err != nil {
		return nil, err
	}

	out := make([]tennis.Match, 0, len(keys))
	for _, match := range resolved {
		if match != nil {
			out = append(out, *match)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return matchStartKey(out[i]) > matchStartKey(out[j])
	})
	return out, nil
}

// ListFavoritePlayers resolves favorite players in batches, sorted by name.
func (s *FavoriteService) ListFavoritePlayers(ctx context.Context) ([]tennis.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FavoriteService.ListFavoritePlayers")
	defer span.End()

	keys, err := s.favoriteKeys(ctx, favorite.KindPlayer)
	if err != nil {
		return nil, err
	}

	resolved := make([]*tennis.Player, len(keys))
	for start := 0; start < len(keys); start += favoritePlayerBatchSize {
		end := min(start+favoritePlayerBatchSize, len(keys))
		batch := keys[start:end]
		if err := runOnPool(s.workers, len(batch), func(i int) {
			if player, ok := s.resolvePlayer(ctx, batch[i]); ok {
				resolved[start+i] = &player
			}
		}); err != nil {
			return nil, err
		}
	}

	out := make([]tennis.Player, 0, len(keys))
	for _, player := range resolved {
		if player != nil {
			out = append(out, *player)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (s *FavoriteService) favoriteKeys(ctx context.Context, kind favorite.Kind) ([]string, error) {
	items, err := s.favorites.List(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("list favorites %s: %w", kind, err)
	}
	keys := make([]string, 0, len(items))
	for _, item := range items {
		keys = append(keys, item.Key)
	}
	return keys, nil
}

func (s *FavoriteService) resolveMatch(ctx context.Context, matchKey string) (tennis.Match, bool) {
	now := s.now()
	filter := tennis.FixtureFilter{
		DateStart: now.AddDate(0, -favoriteMatchWindowMonths, 0).Format(dateLayout),
		DateStop:  now.AddDate(0, favoriteMatchWindowMonths, 0).Format(dateLayout),
		MatchKey:  matchKey,
		Timezone:  s.timezone,
	}

	fixtures, err := s.repo.ListFixtures(ctx, filter)
	if err != nil {
		s.logger.WarnContext(ctx, "resolve favorite match from fixtures failed", "match_key", matchKey, "error", err)
	} else if len(fixtures) > 0 {
		return fixtures[0], true
	}

	live, err := s.repo.ListLiveScores(ctx, tennis.LiveFilter{MatchKey: matchKey, Timezone: s.timezone})
	if err != nil {
		s.logger.WarnContext(ctx, "resolve favorite match from live feed failed", "match_key", matchKey, "error", err)
		return tennis.Match{}, false
	}
	if len(live) == 0 {
		return tennis.Match{}, false
	}
	return live[0], true
}

func (s *FavoriteService) resolvePlayer(ctx context.Context, playerKey string) (tennis.Player, bool) {
	players, err := s.repo.ListPlayers(ctx, playerKey)
	if err != nil {
		s.logger.WarnContext(ctx, "resolve favorite player failed", "player_key", playerKey, "error", err)
		return tennis.Player{}, false
	}
	if len(players) == 0 {
		return tennis.Player{}, false
	}
	return players[0], true
}

func normalizeFavoriteKey(kind favorite.Kind, key string) (string, error) {
	if _, err := favorite.ParseKind(string(kind)); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", fmt.Errorf("%w: %s key is required", ErrInvalidInput, kind)
	}
	return key, nil
}
