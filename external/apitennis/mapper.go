package apitennis

import (
	"strconv"
	"strings"

	"github.com/riskibarqy/tennis-tracker/internal/domain/tennis"
)

func mapEventType(dto eventTypeDTO) tennis.EventType {
	return tennis.EventType{
		Key:  dto.EventTypeKey.Value,
		Type: dto.EventTypeType.Value,
	}
}

func mapFixture(dto fixtureDTO) tennis.Match {
	scores := mapScores(dto.Scores)
	return tennis.Match{
		Key:  dto.EventKey.Value,
		Date: dto.EventDate.Value,
		Time: dto.EventTime.Value,
		FirstPlayer: tennis.PlayerInfo{
			Key:     dto.FirstPlayerKey.Value,
			Name:    dto.EventFirstPlayer.Value,
			LogoURL: dto.FirstPlayerLogo.ptr(),
		},
		SecondPlayer: tennis.PlayerInfo{
			Key:     dto.SecondPlayerKey.Value,
			Name:    dto.EventSecondPlayer.Value,
			LogoURL: dto.SecondPlayerLogo.ptr(),
		},
		FinalResult: dto.EventFinalResult.ptr(),
		GameResult:  dto.EventGameResult.ptr(),
		Serve:       dto.EventServe.ptr(),
		Winner:      dto.EventWinner.ptr(),
		Status:      dto.EventStatus.Value,
		EventType:   dto.EventTypeType.Value,
		Tournament: tennis.TournamentInfo{
			Key:  dto.TournamentKey.Value,
			Name: dto.TournamentName.Value,
		},
		Round:  dto.TournamentRound.ptr(),
		Season: dto.TournamentSeason.Value,
		// Any non-empty event_live counts, "0" included.
		IsLive:          dto.EventLive.Value != "",
		IsQualification: isTrueFlag(dto.EventQualification),
		Scores:          scores,
		Sets:            reconstructSets(scores, dto.PointByPoint),
	}
}

func mapLiveMatch(dto liveMatchDTO) tennis.Match {
	scores := mapScores(dto.Scores)
	return tennis.Match{
		Key:  dto.EventKey.Value,
		Date: dto.EventDate.Value,
		Time: dto.EventTime.Value,
		FirstPlayer: tennis.PlayerInfo{
			Key:     dto.FirstPlayerKey.Value,
			Name:    dto.EventFirstPlayer.Value,
			LogoURL: dto.FirstPlayerLogo.ptr(),
		},
		SecondPlayer: tennis.PlayerInfo{
			Key:     dto.SecondPlayerKey.Value,
			Name:    dto.EventSecondPlayer.Value,
			LogoURL: dto.SecondPlayerLogo.ptr(),
		},
		GameResult: dto.EventGameResult.ptr(),
		Serve:      dto.EventServe.ptr(),
		Winner:     dto.EventWinner.ptr(),
		Status:     dto.EventStatus.Value,
		EventType:  dto.EventTypeType.Value,
		Tournament: tennis.TournamentInfo{
			Key:  dto.TournamentKey.Value,
			Name: dto.TournamentName.Value,
		},
		Round:           dto.TournamentRound.ptr(),
		Season:          dto.TournamentSeason.Value,
		IsLive:          true,
		IsQualification: isTrueFlag(dto.EventQualification),
		Scores:          scores,
		Sets:            reconstructSets(scores, dto.PointByPoint),
	}
}

func mapPlayer(dto playerDTO) tennis.Player {
	stats := make([]tennis.PlayerStat, 0, len(dto.Stats))
	for _, item := range dto.Stats {
		stats = append(stats, mapPlayerStat(item))
	}

	return tennis.Player{
		Key:         dto.PlayerKey.Value,
		Name:        dto.PlayerName.Value,
		FullName:    dto.PlayerFullName.ptr(),
		Country:     dto.PlayerCountry.ptr(),
		CountryCode: dto.PlayerCountryCode.ptr(),
		Birthday:    dto.PlayerBday.ptr(),
		LogoURL:     dto.PlayerLogo.ptr(),
		Stats:       stats,
	}
}

func mapPlayerStat(dto playerStatDTO) tennis.PlayerStat {
	return tennis.PlayerStat{
		Season:      dto.Season.ptr(),
		Type:        dto.Type.ptr(),
		Rank:        dto.Rank.ptr(),
		Titles:      dto.Titles.ptr(),
		MatchesWon:  dto.MatchesWon.ptr(),
		MatchesLost: dto.MatchesLost.ptr(),
		HardWon:     dto.HardWon.ptr(),
		HardLost:    dto.HardLost.ptr(),
		ClayWon:     dto.ClayWon.ptr(),
		ClayLost:    dto.ClayLost.ptr(),
		GrassWon:    dto.GrassWon.ptr(),
		GrassLost:   dto.GrassLost.ptr(),
	}
}

// standingField extracts one candidate value from a standings row.
type standingField func(standingDTO) flexString

var (
	standingNameFields = []standingField{
		func(d standingDTO) flexString { return d.PlayerName },
		func(d standingDTO) flexString { return d.Player },
	}
	standingCountryFields = []standingField{
		func(d standingDTO) flexString { return d.PlayerCountry },
		func(d standingDTO) flexString { return d.Country },
	}
	standingRankFields = []standingField{
		func(d standingDTO) flexString { return d.Rank },
		func(d standingDTO) flexString { return d.Place },
	}
)

// firstPresent evaluates candidates in order and returns the first
// non-empty value.
func firstPresent(dto standingDTO, candidates []standingField) (string, bool) {
	for _, candidate := range candidates {
		value := candidate(dto)
		if value.Valid && strings.TrimSpace(value.Value) != "" {
			return value.Value, true
		}
	}
	return "", false
}

// mapStanding returns false when the row has no usable player key.
func mapStanding(dto standingDTO) (tennis.PlayerRanking, bool) {
	if !dto.PlayerKey.Valid || strings.TrimSpace(dto.PlayerKey.Value) == "" {
		return tennis.PlayerRanking{}, false
	}

	name, _ := firstPresent(dto, standingNameFields)
	player := tennis.Player{
		Key:         dto.PlayerKey.Value,
		Name:        name,
		CountryCode: dto.PlayerCountryCode.ptr(),
		LogoURL:     dto.PlayerLogo.ptr(),
	}
	if country, ok := firstPresent(dto, standingCountryFields); ok {
		player.Country = &country
	}

	ranking := tennis.PlayerRanking{
		Player:            player,
		Points:            parseOptionalInt(dto.Points),
		TournamentsPlayed: parseOptionalInt(dto.TournamentPlayed),
	}
	if rank, ok := firstPresent(dto, standingRankFields); ok {
		ranking.Rank = parseOptionalInt(flexString{Value: rank, Valid: true})
	}

	return ranking, true
}

// mapScores keeps only rows carrying all three fields.
func mapScores(items []scoreDTO) []tennis.Score {
	out := make([]tennis.Score, 0, len(items))
	for _, item := range items {
		if !item.ScoreFirst.Valid || !item.ScoreSecond.Valid || !item.ScoreSet.Valid {
			continue
		}
		out = append(out, tennis.Score{
			FirstPlayerScore:  item.ScoreFirst.Value,
			SecondPlayerScore: item.ScoreSecond.Value,
			SetNumber:         item.ScoreSet.Value,
		})
	}
	return out
}

func mapPoint(dto pointDTO) tennis.TennisPoint {
	return tennis.TennisPoint{
		Number:       dto.NumberPoint.Value,
		Score:        dto.Score.Value,
		IsBreakPoint: isPresentFlag(dto.BreakPoint),
		IsSetPoint:   isPresentFlag(dto.SetPoint),
		IsMatchPoint: isPresentFlag(dto.MatchPoint),
	}
}

// isPresentFlag treats the literal string "null" the same as an absent field.
func isPresentFlag(v flexString) bool {
	return v.Valid && !strings.EqualFold(strings.TrimSpace(v.Value), "null")
}

func isTrueFlag(v flexString) bool {
	return v.Valid && strings.EqualFold(strings.TrimSpace(v.Value), "true")
}

func parseOptionalInt(v flexString) *int {
	if !v.Valid {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v.Value))
	if err != nil {
		return nil
	}
	return &n
}
