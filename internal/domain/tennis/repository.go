package tennis

import "context"

// FixtureFilter holds optional pass-through filters for the fixtures query.
// Empty fields are not sent upstream.
type FixtureFilter struct {
	DateStart        string
	DateStop         string
	EventTypeKey     string
	TournamentKey    string
	TournamentSeason string
	MatchKey         string
	PlayerKey        string
	Timezone         string
}

type LiveFilter struct {
	EventTypeKey  string
	TournamentKey string
	MatchKey      string
	PlayerKey     string
	Timezone      string
}

// Repository is the query surface over the upstream tennis feed.
type Repository interface {
	ListEventTypes(ctx context.Context) ([]EventType, error)
	ListFixtures(ctx context.Context, filter FixtureFilter) ([]Match, error)
	ListLiveScores(ctx context.Context, filter LiveFilter) ([]Match, error)
	ListPlayers(ctx context.Context, playerKey string) ([]Player, error)
	ListStandings(ctx context.Context, eventType string) ([]PlayerRanking, error)
}
