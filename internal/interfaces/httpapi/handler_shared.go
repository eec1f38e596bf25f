package httpapi

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/riskibarqy/tennis-tracker/internal/domain/tennis"
	"github.com/riskibarqy/tennis-tracker/internal/usecase"
)

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

type fixturesQuery struct {
	DateStart        string `validate:"required,datetime=2006-01-02"`
	DateStop         string `validate:"required,datetime=2006-01-02"`
	EventTypeKey     string `validate:"omitempty,numeric"`
	TournamentKey    string `validate:"omitempty,numeric"`
	TournamentSeason string `validate:"omitempty,max=16"`
	MatchKey         string `validate:"omitempty,numeric"`
	PlayerKey        string `validate:"omitempty,numeric"`
	Timezone         string `validate:"omitempty,timezone"`
}

func fixturesQueryFrom(values url.Values) fixturesQuery {
	return fixturesQuery{
		DateStart:        queryValue(values, "date_start"),
		DateStop:         queryValue(values, "date_stop"),
		EventTypeKey:     queryValue(values, "event_type_key"),
		TournamentKey:    queryValue(values, "tournament_key"),
		TournamentSeason: queryValue(values, "tournament_season"),
		MatchKey:         queryValue(values, "match_key"),
		PlayerKey:        queryValue(values, "player_key"),
		Timezone:         queryValue(values, "timezone"),
	}
}

func (q fixturesQuery) filter() tennis.FixtureFilter {
	return tennis.FixtureFilter{
		DateStart:        q.DateStart,
		DateStop:         q.DateStop,
		EventTypeKey:     q.EventTypeKey,
		TournamentKey:    q.TournamentKey,
		TournamentSeason: q.TournamentSeason,
		MatchKey:         q.MatchKey,
		PlayerKey:        q.PlayerKey,
		Timezone:         q.Timezone,
	}
}

type liveScoresQuery struct {
	EventTypeKey  string `validate:"omitempty,numeric"`
	TournamentKey string `validate:"omitempty,numeric"`
	MatchKey      string `validate:"omitempty,numeric"`
	PlayerKey     string `validate:"omitempty,numeric"`
	Timezone      string `validate:"omitempty,timezone"`
}

func liveScoresQueryFrom(values url.Values) liveScoresQuery {
	return liveScoresQuery{
		EventTypeKey:  queryValue(values, "event_type_key"),
		TournamentKey: queryValue(values, "tournament_key"),
		MatchKey:      queryValue(values, "match_key"),
		PlayerKey:     queryValue(values, "player_key"),
		Timezone:      queryValue(values, "timezone"),
	}
}

func (q liveScoresQuery) filter() tennis.LiveFilter {
	return tennis.LiveFilter{
		EventTypeKey:  q.EventTypeKey,
		TournamentKey: q.TournamentKey,
		MatchKey:      q.MatchKey,
		PlayerKey:     q.PlayerKey,
		Timezone:      q.Timezone,
	}
}

type rankingsQuery struct {
	Search string `validate:"omitempty,max=100"`
}

func queryValue(values url.Values, key string) string {
	return strings.TrimSpace(values.Get(key))
}

type eventTypeDTO struct {
	Key  string `json:"key"`
	Type string `json:"type"`
}

type playerInfoDTO struct {
	Key     string  `json:"key"`
	Name    string  `json:"name"`
	LogoURL *string `json:"logoUrl,omitempty"`
}

type tournamentDTO struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type scoreDTO struct {
	SetNumber         string `json:"setNumber"`
	FirstPlayerScore  string `json:"firstPlayerScore"`
	SecondPlayerScore string `json:"secondPlayerScore"`
}

type pointDTO struct {
	Number       string `json:"number"`
	Score        string `json:"score"`
	IsBreakPoint bool   `json:"isBreakPoint"`
	IsSetPoint   bool   `json:"isSetPoint"`
	IsMatchPoint bool   `json:"isMatchPoint"`
}

type gameDTO struct {
	Number             string     `json:"number"`
	FirstPlayerPoints  string     `json:"firstPlayerPoints"`
	SecondPlayerPoints string     `json:"secondPlayerPoints"`
	Server             *string    `json:"server,omitempty"`
	IsCompleted        bool       `json:"isCompleted"`
	Points             []pointDTO `json:"points"`
}

type setDTO struct {
	Number            string    `json:"number"`
	FirstPlayerGames  int       `json:"firstPlayerGames"`
	SecondPlayerGames int       `json:"secondPlayerGames"`
	IsCompleted       bool      `json:"isCompleted"`
	Games             []gameDTO `json:"games"`
}

type matchDTO struct {
	Key             string        `json:"key"`
	Date            string        `json:"date"`
	Time            string        `json:"time"`
	FirstPlayer     playerInfoDTO `json:"firstPlayer"`
	SecondPlayer    playerInfoDTO `json:"secondPlayer"`
	FinalResult     *string       `json:"finalResult,omitempty"`
	GameResult      *string       `json:"gameResult,omitempty"`
	Serve           *string       `json:"serve,omitempty"`
	Winner          *string       `json:"winner,omitempty"`
	Status          string        `json:"status"`
	EventType       string        `json:"eventType"`
	Tournament      tournamentDTO `json:"tournament"`
	Round           *string       `json:"round,omitempty"`
	Season          string        `json:"season"`
	IsLive          bool          `json:"isLive"`
	IsQualification bool          `json:"isQualification"`
	Scores          []scoreDTO    `json:"scores"`
	Sets            []setDTO      `json:"sets"`
}

type playerStatDTO struct {
	Season      *string `json:"season,omitempty"`
	Type        *string `json:"type,omitempty"`
	Rank        *string `json:"rank,omitempty"`
	Titles      *string `json:"titles,omitempty"`
	MatchesWon  *string `json:"matchesWon,omitempty"`
	MatchesLost *string `json:"matchesLost,omitempty"`
	HardWon     *string `json:"hardWon,omitempty"`
	HardLost    *string `json:"hardLost,omitempty"`
	ClayWon     *string `json:"clayWon,omitempty"`
	ClayLost    *string `json:"clayLost,omitempty"`
	GrassWon    *string `json:"grassWon,omitempty"`
	GrassLost   *string `json:"grassLost,omitempty"`
}

type playerDTO struct {
	Key         string          `json:"key"`
	Name        string          `json:"name"`
	FullName    *string         `json:"fullName,omitempty"`
	Country     *string         `json:"country,omitempty"`
	CountryCode *string         `json:"countryCode,omitempty"`
	Birthday    *string         `json:"birthday,omitempty"`
	LogoURL     *string         `json:"logoUrl,omitempty"`
	Stats       []playerStatDTO `json:"stats"`
}

type playerDetailsDTO struct {
	Player        playerDTO  `json:"player"`
	RecentMatches []matchDTO `json:"recentMatches"`
}

type rankingDTO struct {
	Player            playerDTO `json:"player"`
	Rank              *int      `json:"rank,omitempty"`
	Points            *int      `json:"points,omitempty"`
	TournamentsPlayed *int      `json:"tournamentsPlayed,omitempty"`
}

type favoriteStateDTO struct {
	Kind     string `json:"kind"`
	Key      string `json:"key"`
	Favorite bool   `json:"favorite"`
}

func eventTypesToDTO(items []tennis.EventType) []eventTypeDTO {
	out := make([]eventTypeDTO, 0, len(items))
	for _, item := range items {
		out = append(out, eventTypeDTO{Key: item.Key, Type: item.Type})
	}
	return out
}

func playerInfoToDTO(p tennis.PlayerInfo) playerInfoDTO {
	return playerInfoDTO{Key: p.Key, Name: p.Name, LogoURL: p.LogoURL}
}

func matchToDTO(m tennis.Match) matchDTO {
	scores := make([]scoreDTO, 0, len(m.Scores))
	for _, s := range m.Scores {
		scores = append(scores, scoreDTO{
			SetNumber:         s.SetNumber,
			FirstPlayerScore:  s.FirstPlayerScore,
			SecondPlayerScore: s.SecondPlayerScore,
		})
	}

	sets := make([]setDTO, 0, len(m.Sets))
	for _, set := range m.Sets {
		games := make([]gameDTO, 0, len(set.Games))
		for _, g := range set.Games {
			points := make([]pointDTO, 0, len(g.Points))
			for _, p := range g.Points {
				points = append(points, pointDTO{
					Number:       p.Number,
					Score:        p.Score,
					IsBreakPoint: p.IsBreakPoint,
					IsSetPoint:   p.IsSetPoint,
					IsMatchPoint: p.IsMatchPoint,
				})
			}
			games = append(games, gameDTO{
				Number:             g.Number,
				FirstPlayerPoints:  g.FirstPlayerPoints,
				SecondPlayerPoints: g.SecondPlayerPoints,
				Server:             g.Server,
				IsCompleted:        g.IsCompleted,
				Points:             points,
			})
		}
		sets = append(sets, setDTO{
			Number:            set.Number,
			FirstPlayerGames:  set.FirstPlayerGames,
			SecondPlayerGames: set.SecondPlayerGames,
			IsCompleted:       set.IsCompleted,
			Games:             games,
		})
	}

	return matchDTO{
		Key:             m.Key,
		Date:            m.Date,
		Time:            m.Time,
		FirstPlayer:     playerInfoToDTO(m.FirstPlayer),
		SecondPlayer:    playerInfoToDTO(m.SecondPlayer),
		FinalResult:     m.FinalResult,
		GameResult:      m.GameResult,
		Serve:           m.Serve,
		Winner:          m.Winner,
		Status:          m.Status,
		EventType:       m.EventType,
		Tournament:      tournamentDTO{Key: m.Tournament.Key, Name: m.Tournament.Name},
		Round:           m.Round,
		Season:          m.Season,
		IsLive:          m.IsLive,
		IsQualification: m.IsQualification,
		Scores:          scores,
		Sets:            sets,
	}
}

func matchesToDTO(items []tennis.Match) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchToDTO(item))
	}
	return out
}

func playerToDTO(p tennis.Player) playerDTO {
	stats := make([]playerStatDTO, 0, len(p.Stats))
	for _, s := range p.Stats {
		stats = append(stats, playerStatDTO{
			Season:      s.Season,
			Type:        s.Type,
			Rank:        s.Rank,
			Titles:      s.Titles,
			MatchesWon:  s.MatchesWon,
			MatchesLost: s.MatchesLost,
			HardWon:     s.HardWon,
			HardLost:    s.HardLost,
			ClayWon:     s.ClayWon,
			ClayLost:    s.ClayLost,
			GrassWon:    s.GrassWon,
			GrassLost:   s.GrassLost,
		})
	}
	return playerDTO{
		Key:         p.Key,
		Name:        p.Name,
		FullName:    p.FullName,
		Country:     p.Country,
		CountryCode: p.CountryCode,
		Birthday:    p.Birthday,
		LogoURL:     p.LogoURL,
		Stats:       stats,
	}
}

func playersToDTO(items []tennis.Player) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerToDTO(item))
	}
	return out
}

func rankingsToDTO(items []tennis.PlayerRanking) []rankingDTO {
	out := make([]rankingDTO, 0, len(items))
	for _, item := range items {
		out = append(out, rankingDTO{
			Player:            playerToDTO(item.Player),
			Rank:              item.Rank,
			Points:            item.Points,
			TournamentsPlayed: item.TournamentsPlayed,
		})
	}
	return out
}
