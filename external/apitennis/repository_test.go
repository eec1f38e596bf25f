package apitennis

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/tennis-tracker/internal/domain/tennis"
	"github.com/riskibarqy/tennis-tracker/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTransport struct {
	body   string
	err    error
	method string
	params map[string]string
}

func (s *stubTransport) Fetch(_ context.Context, method string, params map[string]string) ([]byte, error) {
	s.method = method
	s.params = params
	if s.err != nil {
		return nil, s.err
	}
	return []byte(s.body), nil
}

func TestRepository_ListFixturesReconstructsPointByPoint(t *testing.T) {
	t.Parallel()

	transport := &stubTransport{body: `{"success":1,"result":[{
		"event_key": 12000001,
		"event_date": "2026-05-30",
		"event_time": "14:05",
		"event_first_player": "I. Swiatek",
		"first_player_key": 1,
		"event_second_player": "A. Sabalenka",
		"second_player_key": 2,
		"event_game_result": "30 - 15",
		"event_serve": "First Player",
		"event_status": "Set 2",
		"event_type_type": "Wta Singles",
		"tournament_name": "Roland Garros",
		"tournament_key": 2156,
		"tournament_season": "2026",
		"event_live": "1",
		"scores": [{"score_first":"6","score_second":"2","score_set":"Set 1"}],
		"pointbypoint": [
			{"set_number":"Set 1","number_game":"1","score":"40 - 0","serve_winner":"First Player"},
			{"set_number":"Set 2","number_game":"1","score":"15 - 0"},
			{"set_number":"Set 2","number_game":"1","score":"30 - 15","points":[{"number_point":"1","score":"15 - 0"},{"number_point":"2","score":"15 - 15"},{"number_point":"3","score":"30 - 15","break_point":"null"}]}
		]
	}]}`}

	repo := NewRepository(transport, logging.NewNop())
	matches, err := repo.ListFixtures(context.Background(), tennis.FixtureFilter{
		DateStart: "2026-05-30",
		DateStop:  "2026-05-30",
		Timezone:  "Europe/Berlin",
	})
	require.NoError(t, err)

	assert.Equal(t, "get_fixtures", transport.method)
	assert.Equal(t, "Europe/Berlin", transport.params["timezone"])
	assert.Equal(t, "", transport.params["match_key"])

	require.Len(t, matches, 1)
	match := matches[0]
	assert.True(t, match.IsLive)
	require.Len(t, match.Sets, 2)

	assert.True(t, match.Sets[0].IsCompleted)
	assert.Equal(t, 6, match.Sets[0].FirstPlayerGames)
	assert.False(t, match.Sets[1].IsCompleted)

	current := match.Sets[1].Games
	require.Len(t, current, 1)
	assert.Equal(t, "30", current[0].FirstPlayerPoints)
	assert.Equal(t, "15", current[0].SecondPlayerPoints)
	require.Len(t, current[0].Points, 3)
	assert.False(t, current[0].Points[2].IsBreakPoint)
	assert.False(t, current[0].IsCompleted)
}

func TestRepository_ListStandingsDropsKeylessRows(t *testing.T) {
	t.Parallel()

	transport := &stubTransport{body: `{"success":1,"result":[
		{"place":"1","player":"J. Sinner","player_key":2072,"league":"ATP","movement":"same","country":"Italy","points":"11830"},
		{"place":"2","player":"Ghost","player_key":null},
		{"place":"3","player":"A. Zverev","player_key":"1112.0","country":"Germany","points":"6430"}
	]}`}

	repo := NewRepository(transport, logging.NewNop())
	rankings, err := repo.ListStandings(context.Background(), "ATP")
	require.NoError(t, err)
	assert.Equal(t, "get_standings", transport.method)
	assert.Equal(t, "ATP", transport.params["event_type"])

	require.Len(t, rankings, 2)
	assert.Equal(t, "2072", rankings[0].Player.Key)
	assert.Equal(t, "J. Sinner", rankings[0].Player.Name)
	assert.Equal(t, 1, *rankings[0].Rank)
	assert.Equal(t, "A. Zverev", rankings[1].Player.Name)
}

func TestRepository_ListPlayersAndEvents(t *testing.T) {
	t.Parallel()

	transport := &stubTransport{body: `{"success":1,"result":[{"player_key":1905,"player_name":"N. Djokovic","stats":[]}]}`}
	repo := NewRepository(transport, logging.NewNop())

	players, err := repo.ListPlayers(context.Background(), "1905")
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "1905", transport.params["player_key"])
	assert.Empty(t, players[0].Stats)

	transport.body = `{"success":1,"result":[{"event_type_key":265,"event_type_type":"Atp Singles"}]}`
	events, err := repo.ListEventTypes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []tennis.EventType{{Key: "265", Type: "Atp Singles"}}, events)
	assert.Equal(t, "get_events", transport.method)
}

func TestRepository_BusinessErrorIsEmptyNotFailure(t *testing.T) {
	t.Parallel()

	transport := &stubTransport{body: `{"error":"1","result":[{"msg":"No Event Found","cod":201}]}`}
	repo := NewRepository(transport, logging.NewNop())

	matches, err := repo.ListLiveScores(context.Background(), tennis.LiveFilter{PlayerKey: "7"})
	require.NoError(t, err)
	assert.NotNil(t, matches)
	assert.Empty(t, matches)
	assert.Equal(t, "get_livescore", transport.method)
}

func TestRepository_TransportFailureIsDistinguishable(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	repo := NewRepository(&stubTransport{err: cause}, logging.NewNop())

	_, err := repo.ListFixtures(context.Background(), tennis.FixtureFilter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, tennis.ErrTransport)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, tennis.ErrDecoding)
}

func TestRepository_RequiredFieldFailureSurfaces(t *testing.T) {
	t.Parallel()

	repo := NewRepository(&stubTransport{body: `{"success":1,"result":[{"event_date":"2026-01-01"}]}`}, logging.NewNop())

	_, err := repo.ListFixtures(context.Background(), tennis.FixtureFilter{})
	var decodeErr *tennis.DecodingError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "event_key", decodeErr.Field)
	assert.NotErrorIs(t, err, tennis.ErrTransport)
}
