package apitennis

import (
	"sort"
	"strconv"
	"strings"

	"github.com/riskibarqy/tennis-tracker/internal/domain/tennis"
)

// reconstructSets builds the set/game/point hierarchy of a match from its
// per-set summary and its point-by-point log. Without a log it falls back to
// the summary alone. The output is deterministic for a given input.
func reconstructSets(scores []tennis.Score, log []pointByPointDTO) []tennis.TennisSet {
	if len(log) == 0 {
		return setsFromScores(scores)
	}

	bySet := make(map[string][]pointByPointDTO)
	setNumbers := make([]string, 0, 5)
	for _, record := range log {
		if !record.SetNumber.Valid {
			continue
		}
		number := record.SetNumber.Value
		if _, seen := bySet[number]; !seen {
			setNumbers = append(setNumbers, number)
		}
		bySet[number] = append(bySet[number], record)
	}
	sort.Strings(setNumbers)

	sets := make([]tennis.TennisSet, 0, len(setNumbers))
	for _, number := range setNumbers {
		set := tennis.TennisSet{
			Number: number,
			Games:  reconstructGames(bySet[number]),
		}
		if score, ok := findScore(scores, number); ok {
			set.FirstPlayerGames = parseGameCount(score.FirstPlayerScore)
			set.SecondPlayerGames = parseGameCount(score.SecondPlayerScore)
			set.IsCompleted = true
		}
		sets = append(sets, set)
	}

	return sets
}

func setsFromScores(scores []tennis.Score) []tennis.TennisSet {
	sets := make([]tennis.TennisSet, 0, len(scores))
	for _, score := range scores {
		sets = append(sets, tennis.TennisSet{
			Number:            score.SetNumber,
			FirstPlayerGames:  parseGameCount(score.FirstPlayerScore),
			SecondPlayerGames: parseGameCount(score.SecondPlayerScore),
			Games:             []tennis.Game{},
			IsCompleted:       true,
		})
	}
	sort.SliceStable(sets, func(i, j int) bool {
		return sets[i].Number < sets[j].Number
	})
	return sets
}

// reconstructGames keeps the last snapshot of every game. Live feeds resend a
// game with cumulative points on each poll, so earlier snapshots are stale.
func reconstructGames(records []pointByPointDTO) []tennis.Game {
	latest := make(map[string]pointByPointDTO)
	gameNumbers := make([]string, 0, len(records))
	for _, record := range records {
		if !record.NumberGame.Valid {
			continue
		}
		number := record.NumberGame.Value
		if _, seen := latest[number]; !seen {
			gameNumbers = append(gameNumbers, number)
		}
		latest[number] = record
	}

	sort.SliceStable(gameNumbers, func(i, j int) bool {
		return gameOrdinal(gameNumbers[i]) < gameOrdinal(gameNumbers[j])
	})

	games := make([]tennis.Game, 0, len(gameNumbers))
	for _, number := range gameNumbers {
		record := latest[number]
		first, second := splitPointScore(record.Score)

		points := make([]tennis.TennisPoint, 0, len(record.Points))
		for _, point := range record.Points {
			points = append(points, mapPoint(point))
		}

		games = append(games, tennis.Game{
			Number:             number,
			FirstPlayerPoints:  first,
			SecondPlayerPoints: second,
			Server:             record.PlayerServed.ptr(),
			Points:             points,
			IsCompleted:        record.ServeWinner.Valid || record.ServeLost.Valid,
		})
	}

	return games
}

func findScore(scores []tennis.Score, setNumber string) (tennis.Score, bool) {
	for _, score := range scores {
		if score.SetNumber == setNumber {
			return score, true
		}
	}
	return tennis.Score{}, false
}

// splitPointScore parses an "A-B" in-game score. Halves are kept as strings
// since they may be "40" or "A". Anything but exactly two dash-separated
// parts yields "0"/"0"; an empty half stays empty.
func splitPointScore(score flexString) (string, string) {
	if !score.Valid {
		return "0", "0"
	}
	parts := strings.Split(score.Value, "-")
	if len(parts) != 2 {
		return "0", "0"
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}

// gameOrdinal orders game numbers numerically; unparsable numbers sort as 0.
func gameOrdinal(number string) int {
	n, err := strconv.Atoi(strings.TrimSpace(number))
	if err != nil {
		return 0
	}
	return n
}

func parseGameCount(v string) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0
	}
	return n
}
