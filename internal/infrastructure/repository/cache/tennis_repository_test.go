package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/tennis-tracker/internal/domain/tennis"
	tennismock "github.com/riskibarqy/tennis-tracker/internal/mocks/domain/tennis"
	basecache "github.com/riskibarqy/tennis-tracker/internal/platform/cache"
	"github.com/riskibarqy/tennis-tracker/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*TennisRepository, *tennismock.Repository) {
	t.Helper()

	next := tennismock.NewRepository(t)
	loader := basecache.NewLoader(basecache.NewMemoryStore(), time.Minute, logging.NewNop())
	return NewTennisRepository(next, loader), next
}

func TestTennisRepository_CachesStandingsPerEventType(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, next := newTestRepository(t)

	rank := 1
	atp := []tennis.PlayerRanking{{Player: tennis.Player{Key: "1905", Name: "C. Alcaraz"}, Rank: &rank}}
	next.On("ListStandings", mock.Anything, "ATP").Return(atp, nil).Once()
	next.On("ListStandings", mock.Anything, "WTA").Return([]tennis.PlayerRanking{}, nil).Once()

	for i := 0; i < 3; i++ {
		got, err := repo.ListStandings(ctx, "ATP")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "1905", got[0].Player.Key)
		require.NotNil(t, got[0].Rank)
		assert.Equal(t, 1, *got[0].Rank)
	}

	_, err := repo.ListStandings(ctx, "WTA")
	require.NoError(t, err)
}

func TestTennisRepository_ReturnsIndependentCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, next := newTestRepository(t)

	next.On("ListEventTypes", mock.Anything).
		Return([]tennis.EventType{{Key: "265", Type: "Atp Singles"}}, nil).Once()

	first, err := repo.ListEventTypes(ctx)
	require.NoError(t, err)
	first[0].Type = "mutated"

	second, err := repo.ListEventTypes(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Atp Singles", second[0].Type)
}

func TestTennisRepository_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, next := newTestRepository(t)

	upstream := errors.New("upstream down")
	next.On("ListPlayers", mock.Anything, "1905").Return(nil, upstream).Once()
	next.On("ListPlayers", mock.Anything, "1905").Return([]tennis.Player{{Key: "1905"}}, nil).Once()

	_, err := repo.ListPlayers(ctx, "1905")
	require.ErrorIs(t, err, upstream)

	got, err := repo.ListPlayers(ctx, "1905")
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = repo.ListPlayers(ctx, " 1905 ")
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestTennisRepository_FixturesAndLiveScoresPassThrough(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, next := newTestRepository(t)

	filter := tennis.FixtureFilter{DateStart: "2026-05-30", DateStop: "2026-05-30"}
	next.On("ListFixtures", mock.Anything, filter).Return([]tennis.Match{{Key: "1"}}, nil).Twice()
	next.On("ListLiveScores", mock.Anything, tennis.LiveFilter{}).Return([]tennis.Match{}, nil).Twice()

	for i := 0; i < 2; i++ {
		_, err := repo.ListFixtures(ctx, filter)
		require.NoError(t, err)
		_, err = repo.ListLiveScores(ctx, tennis.LiveFilter{})
		require.NoError(t, err)
	}
}

func TestTennisRepository_RefreshReloadsDespiteFreshEntry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo, next := newTestRepository(t)

	next.On("ListEventTypes", mock.Anything).Return([]tennis.EventType{{Key: "1"}}, nil).Once()
	next.On("ListEventTypes", mock.Anything).Return([]tennis.EventType{{Key: "1"}, {Key: "2"}}, nil).Once()
	next.On("ListStandings", mock.Anything, "WTA").Return([]tennis.PlayerRanking{}, nil).Twice()

	_, err := repo.ListEventTypes(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.RefreshEventTypes(ctx))

	got, err := repo.ListEventTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = repo.ListStandings(ctx, "WTA")
	require.NoError(t, err)
	require.NoError(t, repo.RefreshStandings(ctx, "wta"))
}
