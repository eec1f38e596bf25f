package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/tennis-tracker/internal/domain/tennis"
	"github.com/riskibarqy/tennis-tracker/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel/attribute"
)

const (
	defaultRecentMatchLimit = 20
	recentMatchWindowDays   = 30
)

type PlayerDetails struct {
	Player        tennis.Player
	RecentMatches []tennis.Match
}

type PlayerService struct {
	repo     tennis.Repository
	timezone string
	logger   *logging.Logger
	now      func() time.Time
}

func NewPlayerService(repo tennis.Repository, timezone string, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerService{
		repo:     repo,
		timezone: strings.TrimSpace(timezone),
		logger:   logger,
		now:      time.Now,
	}
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerKey string) (tennis.Player, error) {
	playerKey = strings.TrimSpace(playerKey)
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer", attribute.String("player.key", playerKey))
	defer span.End()

	if playerKey == "" {
		return tennis.Player{}, fmt.Errorf("%w: player key is required", ErrInvalidInput)
	}

	players, err := s.repo.ListPlayers(ctx, playerKey)
	if err != nil {
		return tennis.Player{}, fmt.Errorf("list players: %w", err)
	}
	if len(players) == 0 {
		return tennis.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerKey)
	}
	return players[0], nil
}

// RecentMatches merges fixtures from the last and next 30 days with live
// matches for the player. One failing source is tolerated.
func (s *PlayerService) RecentMatches(ctx context.Context, playerKey string, limit int) ([]tennis.Match, error) {
	playerKey = strings.TrimSpace(playerKey)
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.RecentMatches", attribute.String("player.key", playerKey))
	defer span.End()

	if playerKey == "" {
		return nil, fmt.Errorf("%w: player key is required", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = defaultRecentMatchLimit
	}

	var (
		fixtures, live       []tennis.Match
		fixturesErr, liveErr error
	)

	p := pool.New().WithMaxGoroutines(2)
	p.Go(func() {
		filter := fixtureWindow(s.now(), recentMatchWindowDays, recentMatchWindowDays)
		filter.PlayerKey = playerKey
		filter.Timezone = s.timezone
		fixtures, fixturesErr = s.repo.ListFixtures(ctx, filter)
	})
	p.Go(func() {
		live, liveErr = s.repo.ListLiveScores(ctx, tennis.LiveFilter{PlayerKey: playerKey, Timezone: s.timezone})
	})
	p.Wait()

	if fixturesErr != nil && liveErr != nil {
		return nil, fmt.Errorf("list recent matches: %w", errors.Join(fixturesErr, liveErr))
	}
	if fixturesErr != nil {
		s.logger.WarnContext(ctx, "recent fixtures unavailable", "player_key", playerKey, "error", fixturesErr)
	}
	if liveErr != nil {
		s.logger.WarnContext(ctx, "live matches unavailable", "player_key", playerKey, "error", liveErr)
	}

	merged := mergeMatches(fixtures, live)
	sort.SliceStable(merged, func(i, j int) bool {
		return matchStartKey(merged[i]) > matchStartKey(merged[j])
	})
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged, nil
}

func (s *PlayerService) GetPlayerDetails(ctx context.Context, playerKey string) (PlayerDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayerDetails")
	defer span.End()

	player, err := s.GetPlayer(ctx, playerKey)
	if err != nil {
		return PlayerDetails{}, err
	}

	matches, err := s.RecentMatches(ctx, playerKey, defaultRecentMatchLimit)
	if err != nil {
		return PlayerDetails{}, err
	}

	return PlayerDetails{Player: player, RecentMatches: matches}, nil
}

// mergeMatches concatenates sources and keeps the first copy of each key.
func mergeMatches(sources ...[]tennis.Match) []tennis.Match {
	total := 0
	for _, source := range sources {
		total += len(source)
	}

	seen := make(map[string]struct{}, total)
	out := make([]tennis.Match, 0, total)
	for _, source := range sources {
		for _, match := range source {
			if _, ok := seen[match.Key]; ok {
				continue
			}
			seen[match.Key] = struct{}{}
			out = append(out, match)
		}
	}
	return out
}
