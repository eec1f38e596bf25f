package apitennis

import (
	"context"
	"fmt"

	"github.com/riskibarqy/tennis-tracker/internal/domain/tennis"
	"github.com/riskibarqy/tennis-tracker/internal/platform/logging"
)

const (
	methodEvents    = "get_events"
	methodFixtures  = "get_fixtures"
	methodLiveScore = "get_livescore"
	methodPlayers   = "get_players"
	methodStandings = "get_standings"
)

// Transport returns the raw body of one upstream method call.
type Transport interface {
	Fetch(ctx context.Context, method string, params map[string]string) ([]byte, error)
}

// Repository implements tennis.Repository on top of the api-tennis feed.
type Repository struct {
	transport Transport
	decoder   *decoder
}

var _ tennis.Repository = (*Repository)(nil)

func NewRepository(transport Transport, logger *logging.Logger) *Repository {
	return &Repository{
		transport: transport,
		decoder:   newDecoder(logger),
	}
}

func (r *Repository) ListEventTypes(ctx context.Context) ([]tennis.EventType, error) {
	items, err := fetchResult[eventTypeDTO](ctx, r, methodEvents, nil, resultSpec{record: "event type", required: true})
	if err != nil {
		return nil, err
	}

	out := make([]tennis.EventType, 0, len(items))
	for _, item := range items {
		out = append(out, mapEventType(item))
	}
	return out, nil
}

func (r *Repository) ListFixtures(ctx context.Context, filter tennis.FixtureFilter) ([]tennis.Match, error) {
	params := map[string]string{
		"date_start":        filter.DateStart,
		"date_stop":         filter.DateStop,
		"event_type_key":    filter.EventTypeKey,
		"tournament_key":    filter.TournamentKey,
		"tournament_season": filter.TournamentSeason,
		"match_key":         filter.MatchKey,
		"player_key":        filter.PlayerKey,
		"timezone":          filter.Timezone,
	}
	items, err := fetchResult[fixtureDTO](ctx, r, methodFixtures, params, resultSpec{record: "fixture"})
	if err != nil {
		return nil, err
	}

	out := make([]tennis.Match, 0, len(items))
	for _, item := range items {
		out = append(out, mapFixture(item))
	}
	return out, nil
}

func (r *Repository) ListLiveScores(ctx context.Context, filter tennis.LiveFilter) ([]tennis.Match, error) {
	params := map[string]string{
		"event_type_key": filter.EventTypeKey,
		"tournament_key": filter.TournamentKey,
		"match_key":      filter.MatchKey,
		"player_key":     filter.PlayerKey,
		"timezone":       filter.Timezone,
	}
	items, err := fetchResult[liveMatchDTO](ctx, r, methodLiveScore, params, resultSpec{record: "live match"})
	if err != nil {
		return nil, err
	}

	out := make([]tennis.Match, 0, len(items))
	for _, item := range items {
		out = append(out, mapLiveMatch(item))
	}
	return out, nil
}

func (r *Repository) ListPlayers(ctx context.Context, playerKey string) ([]tennis.Player, error) {
	params := map[string]string{"player_key": playerKey}
	items, err := fetchResult[playerDTO](ctx, r, methodPlayers, params, resultSpec{record: "player"})
	if err != nil {
		return nil, err
	}

	out := make([]tennis.Player, 0, len(items))
	for _, item := range items {
		out = append(out, mapPlayer(item))
	}
	return out, nil
}

// ListStandings silently drops rows without a usable player key.
func (r *Repository) ListStandings(ctx context.Context, eventType string) ([]tennis.PlayerRanking, error) {
	params := map[string]string{"event_type": eventType}
	items, err := fetchResult[standingDTO](ctx, r, methodStandings, params, resultSpec{record: "standing"})
	if err != nil {
		return nil, err
	}

	out := make([]tennis.PlayerRanking, 0, len(items))
	for _, item := range items {
		if ranking, ok := mapStanding(item); ok {
			out = append(out, ranking)
		}
	}
	return out, nil
}

func fetchResult[T any](ctx context.Context, r *Repository, method string, params map[string]string, spec resultSpec) ([]T, error) {
	raw, err := r.transport.Fetch(ctx, method, params)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %s: %w", tennis.ErrTransport, method, err)
	}
	return unwrapResult[T](ctx, r.decoder, raw, spec)
}
