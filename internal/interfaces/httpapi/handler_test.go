package httpapi

import (
	"context"
	stdjson "encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/tennis-tracker/internal/domain/tennis"
	"github.com/riskibarqy/tennis-tracker/internal/infrastructure/repository/memory"
	tennismock "github.com/riskibarqy/tennis-tracker/internal/mocks/domain/tennis"
	"github.com/riskibarqy/tennis-tracker/internal/platform/logging"
	"github.com/riskibarqy/tennis-tracker/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testEnvelope struct {
	APIVersion string             `json:"apiVersion"`
	Data       stdjson.RawMessage `json:"data"`
	Error      *googleErrorBody   `json:"error"`
}

func newTestRouter(t *testing.T) (http.Handler, *tennismock.Repository) {
	t.Helper()

	repo := tennismock.NewRepository(t)
	logger := logging.NewNop()
	handler := NewHandler(
		usecase.NewMatchService(repo, "UTC", logger),
		usecase.NewPlayerService(repo, "UTC", logger),
		usecase.NewRankingService(repo),
		usecase.NewFavoriteService(memory.NewFavoriteRepository(), repo, usecase.FavoriteServiceConfig{Timezone: "UTC", Workers: 2, Logger: logger}),
		logger,
	)
	return NewRouter(handler, logger, []string{"*"}), repo
}

func doRequest(t *testing.T, router http.Handler, method, target string) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	var body testEnvelope
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return rec, body
}

func TestRouter_Healthz(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)
	rec, body := doRequest(t, router, http.MethodGet, "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2.0", body.APIVersion)
	assert.Nil(t, body.Error)
}

func TestRouter_ListFixturesPassesFilters(t *testing.T) {
	t.Parallel()

	router, repo := newTestRouter(t)
	want := tennis.FixtureFilter{
		DateStart:    "2026-05-01",
		DateStop:     "2026-05-02",
		EventTypeKey: "265",
		Timezone:     "UTC",
	}
	winner := "First Player"
	repo.On("ListFixtures", mock.Anything, want).Return([]tennis.Match{{
		Key:         "12001",
		Date:        "2026-05-01",
		Time:        "10:00",
		Winner:      &winner,
		FirstPlayer: tennis.PlayerInfo{Key: "1", Name: "A. Player"},
		Sets: []tennis.TennisSet{{
			Number:           "Set 1",
			FirstPlayerGames: 6,
			Games:            []tennis.Game{{Number: "1", Points: []tennis.TennisPoint{{Number: "1", Score: "15 - 0"}}}},
		}},
	}}, nil).Once()

	rec, body := doRequest(t, router, http.MethodGet, "/v1/fixtures?date_start=2026-05-01&date_stop=2026-05-02&event_type_key=265")
	require.Equal(t, http.StatusOK, rec.Code)

	var matches []matchDTO
	require.NoError(t, sonic.Unmarshal(body.Data, &matches))
	require.Len(t, matches, 1)
	assert.Equal(t, "12001", matches[0].Key)
	assert.Equal(t, "A. Player", matches[0].FirstPlayer.Name)
	require.Len(t, matches[0].Sets, 1)
	assert.Equal(t, 6, matches[0].Sets[0].FirstPlayerGames)
	assert.Equal(t, "15 - 0", matches[0].Sets[0].Games[0].Points[0].Score)
}

func TestRouter_ListFixturesRejectsBadDates(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	for _, target := range []string{
		"/v1/fixtures",
		"/v1/fixtures?date_start=01-05-2026&date_stop=2026-05-02",
		"/v1/fixtures?date_start=2026-05-03&date_stop=2026-05-02",
		"/v1/fixtures?date_start=2026-05-01&date_stop=2026-05-02&player_key=abc",
	} {
		rec, body := doRequest(t, router, http.MethodGet, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		require.NotNil(t, body.Error, target)
		assert.Equal(t, "INVALID_ARGUMENT", body.Error.Status, target)
	}
}

func TestRouter_GetMatchNotFound(t *testing.T) {
	t.Parallel()

	router, repo := newTestRouter(t)
	repo.On("ListLiveScores", mock.Anything, mock.Anything).Return([]tennis.Match{}, nil).Once()
	repo.On("ListFixtures", mock.Anything, mock.Anything).Return([]tennis.Match{}, nil).Twice()

	rec, body := doRequest(t, router, http.MethodGet, "/v1/matches/404")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "notFound", body.Error.Errors[0].Reason)
}

func TestRouter_UpstreamFailuresMapToBadGateway(t *testing.T) {
	t.Parallel()

	router, repo := newTestRouter(t)
	repo.On("ListEventTypes", mock.Anything).
		Return(nil, fmt.Errorf("%w: fetch get_events: connection reset", tennis.ErrTransport)).Once()

	rec, body := doRequest(t, router, http.MethodGet, "/v1/events")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "upstreamUnavailable", body.Error.Errors[0].Reason)

	repo.On("ListLiveScores", mock.Anything, mock.Anything).
		Return(nil, &tennis.DecodingError{Record: "live match", Field: "event_key"}).Once()

	rec, body = doRequest(t, router, http.MethodGet, "/v1/livescores")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "upstreamDecoding", body.Error.Errors[0].Reason)
}

func TestRouter_ListRankings(t *testing.T) {
	t.Parallel()

	router, repo := newTestRouter(t)
	one, two := 1, 2
	repo.On("ListStandings", mock.Anything, "WTA").Return([]tennis.PlayerRanking{
		{Player: tennis.Player{Key: "b", Name: "B. Player"}, Rank: &two},
		{Player: tennis.Player{Key: "a", Name: "A. Player"}, Rank: &one},
	}, nil).Once()

	rec, body := doRequest(t, router, http.MethodGet, "/v1/rankings/wta")
	require.Equal(t, http.StatusOK, rec.Code)

	var rankings []rankingDTO
	require.NoError(t, sonic.Unmarshal(body.Data, &rankings))
	require.Len(t, rankings, 2)
	assert.Equal(t, "a", rankings[0].Player.Key)

	rec, _ = doRequest(t, router, http.MethodGet, "/v1/rankings/itf")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_FavoritePlayersLifecycle(t *testing.T) {
	t.Parallel()

	router, repo := newTestRouter(t)

	rec, body := doRequest(t, router, http.MethodPut, "/v1/favorites/players/1905")
	require.Equal(t, http.StatusOK, rec.Code)
	var state favoriteStateDTO
	require.NoError(t, sonic.Unmarshal(body.Data, &state))
	assert.True(t, state.Favorite)

	_, body = doRequest(t, router, http.MethodGet, "/v1/favorites/players/1905")
	require.NoError(t, sonic.Unmarshal(body.Data, &state))
	assert.True(t, state.Favorite)

	repo.On("ListPlayers", mock.Anything, "1905").Return([]tennis.Player{{Key: "1905", Name: "C. Alcaraz"}}, nil).Once()
	rec, body = doRequest(t, router, http.MethodGet, "/v1/favorites/players")
	require.Equal(t, http.StatusOK, rec.Code)
	var players []playerDTO
	require.NoError(t, sonic.Unmarshal(body.Data, &players))
	require.Len(t, players, 1)
	assert.Equal(t, "C. Alcaraz", players[0].Name)

	rec, _ = doRequest(t, router, http.MethodDelete, "/v1/favorites/players/1905")
	require.Equal(t, http.StatusOK, rec.Code)

	_, body = doRequest(t, router, http.MethodGet, "/v1/favorites/players/1905")
	require.NoError(t, sonic.Unmarshal(body.Data, &state))
	assert.False(t, state.Favorite)
}

func TestRouter_DeadlineMapsToGatewayTimeout(t *testing.T) {
	t.Parallel()

	router, repo := newTestRouter(t)
	repo.On("ListLiveScores", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: fetch get_livescore: %w", tennis.ErrTransport, context.DeadlineExceeded)).Once()

	rec, body := doRequest(t, router, http.MethodGet, "/v1/livescores?timezone=UTC")
	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	require.NotNil(t, body.Error)
}
