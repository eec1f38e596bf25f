package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/tennis-tracker/internal/domain/tennis"
)

type RankingType string

const (
	RankingATP RankingType = "atp"
	RankingWTA RankingType = "wta"
)

var rankingTypes = []RankingType{RankingATP, RankingWTA}

func ParseRankingType(raw string) (RankingType, error) {
	switch RankingType(strings.ToLower(strings.TrimSpace(raw))) {
	case RankingATP:
		return RankingATP, nil
	case RankingWTA:
		return RankingWTA, nil
	default:
		return "", fmt.Errorf("%w: ranking type must be atp or wta", ErrInvalidInput)
	}
}

// EventType is the upstream standings event type.
func (t RankingType) EventType() string {
	return strings.ToUpper(string(t))
}

type RankingService struct {
	repo tennis.Repository
}

func NewRankingService(repo tennis.Repository) *RankingService {
	return &RankingService{repo: repo}
}

// ListRankings returns standings ordered by rank, unranked players last.
// A non-empty search keeps players whose name or country contains it.
func (s *RankingService) ListRankings(ctx context.Context, rankingType, search string) ([]tennis.PlayerRanking, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.ListRankings")
	defer span.End()

	kind, err := ParseRankingType(rankingType)
	if err != nil {
		return nil, err
	}

	rankings, err := s.repo.ListStandings(ctx, kind.EventType())
	if err != nil {
		return nil, fmt.Errorf("list standings %s: %w", kind, err)
	}

	out := filterRankings(rankings, search)
	sort.SliceStable(out, func(i, j int) bool {
		return rankOrder(out[i].Rank) < rankOrder(out[j].Rank)
	})
	return out, nil
}

func (s *RankingService) ListEventTypes(ctx context.Context) ([]tennis.EventType, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.ListEventTypes")
	defer span.End()

	items, err := s.repo.ListEventTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list event types: %w", err)
	}
	return items, nil
}

func filterRankings(rankings []tennis.PlayerRanking, search string) []tennis.PlayerRanking {
	needle := normalizeSearchText(search)
	out := make([]tennis.PlayerRanking, 0, len(rankings))
	for _, ranking := range rankings {
		if needle != "" && !rankingMatches(ranking, needle) {
			continue
		}
		out = append(out, ranking)
	}
	return out
}

func rankingMatches(ranking tennis.PlayerRanking, needle string) bool {
	if strings.Contains(normalizeSearchText(ranking.Player.Name), needle) {
		return true
	}
	return ranking.Player.Country != nil && strings.Contains(normalizeSearchText(*ranking.Player.Country), needle)
}

func normalizeSearchText(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

func rankOrder(rank *int) int {
	if rank == nil {
		return int(^uint(0) >> 1)
	}
	return *rank
}
