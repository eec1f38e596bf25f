package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/tennis-tracker/internal/domain/tennis"
	"github.com/riskibarqy/tennis-tracker/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const dateLayout = "2006-01-02"

// matchLookupWindows are the fixture search radii tried after the live feed.
var matchLookupWindows = []int{90, 365}

type MatchService struct {
	repo     tennis.Repository
	timezone string
	logger   *logging.Logger
	now      func() time.Time
}

func NewMatchService(repo tennis.Repository, timezone string, logger *logging.Logger) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchService{
		repo:     repo,
		timezone: strings.TrimSpace(timezone),
		logger:   logger,
		now:      time.Now,
	}
}

func (s *MatchService) ListLive(ctx context.Context, filter tennis.LiveFilter) ([]tennis.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListLive")
	defer span.End()

	if strings.TrimSpace(filter.Timezone) == "" {
		filter.Timezone = s.timezone
	}

	matches, err := s.repo.ListLiveScores(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list live scores: %w", err)
	}
	return matches, nil
}

func (s *MatchService) ListFixtures(ctx context.Context, filter tennis.FixtureFilter) ([]tennis.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListFixtures")
	defer span.End()

	if err := validateDateRange(filter.DateStart, filter.DateStop); err != nil {
		return nil, err
	}
	if strings.TrimSpace(filter.Timezone) == "" {
		filter.Timezone = s.timezone
	}

	matches, err := s.repo.ListFixtures(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list fixtures: %w", err)
	}
	return matches, nil
}

// GetMatch looks a match up in the live feed first, then in progressively
// wider fixture windows around today. Step failures are logged and skipped.
func (s *MatchService) GetMatch(ctx context.Context, matchKey string) (tennis.Match, error) {
	matchKey = strings.TrimSpace(matchKey)
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetMatch", attribute.String("match.key", matchKey))
	defer span.End()

	if matchKey == "" {
		return tennis.Match{}, fmt.Errorf("%w: match key is required", ErrInvalidInput)
	}

	steps := make([]func(context.Context) ([]tennis.Match, error), 0, len(matchLookupWindows)+1)
	steps = append(steps, func(ctx context.Context) ([]tennis.Match, error) {
		return s.repo.ListLiveScores(ctx, tennis.LiveFilter{MatchKey: matchKey, Timezone: s.timezone})
	})
	for _, days := range matchLookupWindows {
		days := days
		steps = append(steps, func(ctx context.Context) ([]tennis.Match, error) {
			filter := fixtureWindow(s.now(), days, days)
			filter.MatchKey = matchKey
			filter.Timezone = s.timezone
			return s.repo.ListFixtures(ctx, filter)
		})
	}

	var upstreamErr error
	upstreamFailures := 0
	for i, step := range steps {
		matches, err := step(ctx)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return tennis.Match{}, ctxErr
			}
			s.logger.WarnContext(ctx, "match lookup step failed", "match_key", matchKey, "step", i, "error", err)
			if isUpstreamFailure(err) {
				upstreamFailures++
				upstreamErr = err
			}
			continue
		}
		if len(matches) > 0 {
			return matches[0], nil
		}
	}

	if upstreamFailures == len(steps) {
		return tennis.Match{}, fmt.Errorf("get match %s: %w", matchKey, upstreamErr)
	}
	return tennis.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchKey)
}

func validateDateRange(start, stop string) error {
	start, stop = strings.TrimSpace(start), strings.TrimSpace(stop)

	var startAt, stopAt time.Time
	var err error
	if start != "" {
		if startAt, err = time.Parse(dateLayout, start); err != nil {
			return fmt.Errorf("%w: date_start must be YYYY-MM-DD", ErrInvalidInput)
		}
	}
	if stop != "" {
		if stopAt, err = time.Parse(dateLayout, stop); err != nil {
			return fmt.Errorf("%w: date_stop must be YYYY-MM-DD", ErrInvalidInput)
		}
	}
	if start != "" && stop != "" && startAt.After(stopAt) {
		return fmt.Errorf("%w: date_start must not be after date_stop", ErrInvalidInput)
	}
	return nil
}

// fixtureWindow spans from `before` days before now to `after` days after it.
func fixtureWindow(now time.Time, before, after int) tennis.FixtureFilter {
	return tennis.FixtureFilter{
		DateStart: now.AddDate(0, 0, -before).Format(dateLayout),
		DateStop:  now.AddDate(0, 0, after).Format(dateLayout),
	}
}

// matchStartKey sorts lexically in start order for YYYY-MM-DD and HH:MM values.
func matchStartKey(m tennis.Match) string {
	return m.Date + " " + m.Time
}
