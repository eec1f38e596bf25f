package apitennis

type eventTypeDTO struct {
	EventTypeKey  flexString `json:"event_type_key" validate:"required"`
	EventTypeType flexString `json:"event_type_type" validate:"required"`
}

type fixtureDTO struct {
	EventKey           flexString                `json:"event_key" validate:"required"`
	EventDate          flexString                `json:"event_date" validate:"required"`
	EventTime          flexString                `json:"event_time" validate:"required"`
	EventFirstPlayer   flexString                `json:"event_first_player" validate:"required"`
	FirstPlayerKey     flexString                `json:"first_player_key" validate:"required"`
	EventSecondPlayer  flexString                `json:"event_second_player" validate:"required"`
	SecondPlayerKey    flexString                `json:"second_player_key" validate:"required"`
	EventFinalResult   flexString                `json:"event_final_result"`
	EventGameResult    flexString                `json:"event_game_result"`
	EventServe         flexString                `json:"event_serve"`
	EventWinner        flexString                `json:"event_winner"`
	EventStatus        flexString                `json:"event_status" validate:"required"`
	EventTypeType      flexString                `json:"event_type_type" validate:"required"`
	TournamentName     flexString                `json:"tournament_name" validate:"required"`
	TournamentKey      flexString                `json:"tournament_key" validate:"required"`
	TournamentRound    flexString                `json:"tournament_round"`
	TournamentSeason   flexString                `json:"tournament_season" validate:"required"`
	EventLive          flexString                `json:"event_live" validate:"required"`
	EventQualification flexString                `json:"event_qualification"`
	FirstPlayerLogo    flexString                `json:"event_first_player_logo"`
	SecondPlayerLogo   flexString                `json:"event_second_player_logo"`
	Scores             flexList[scoreDTO]        `json:"scores"`
	PointByPoint       flexList[pointByPointDTO] `json:"pointbypoint"`
}

// liveMatchDTO mirrors fixtureDTO, but the live feed may omit player names
// and never carries a final result.
type liveMatchDTO struct {
	EventKey           flexString                `json:"event_key" validate:"required"`
	EventDate          flexString                `json:"event_date" validate:"required"`
	EventTime          flexString                `json:"event_time" validate:"required"`
	EventFirstPlayer   flexString                `json:"event_first_player"`
	FirstPlayerKey     flexString                `json:"first_player_key" validate:"required"`
	EventSecondPlayer  flexString                `json:"event_second_player"`
	SecondPlayerKey    flexString                `json:"second_player_key" validate:"required"`
	EventGameResult    flexString                `json:"event_game_result"`
	EventServe         flexString                `json:"event_serve"`
	EventWinner        flexString                `json:"event_winner"`
	EventStatus        flexString                `json:"event_status" validate:"required"`
	EventTypeType      flexString                `json:"event_type_type" validate:"required"`
	TournamentName     flexString                `json:"tournament_name" validate:"required"`
	TournamentKey      flexString                `json:"tournament_key" validate:"required"`
	TournamentRound    flexString                `json:"tournament_round"`
	TournamentSeason   flexString                `json:"tournament_season" validate:"required"`
	EventLive          flexString                `json:"event_live" validate:"required"`
	EventQualification flexString                `json:"event_qualification"`
	FirstPlayerLogo    flexString                `json:"event_first_player_logo"`
	SecondPlayerLogo   flexString                `json:"event_second_player_logo"`
	Scores             flexList[scoreDTO]        `json:"scores"`
	PointByPoint       flexList[pointByPointDTO] `json:"pointbypoint"`
}

type scoreDTO struct {
	ScoreFirst  flexString `json:"score_first"`
	ScoreSecond flexString `json:"score_second"`
	ScoreSet    flexString `json:"score_set"`
}

// pointByPointDTO is one snapshot of a game. Live feeds repeat it on every poll.
type pointByPointDTO struct {
	SetNumber    flexString         `json:"set_number"`
	NumberGame   flexString         `json:"number_game"`
	PlayerServed flexString         `json:"player_served"`
	ServeWinner  flexString         `json:"serve_winner"`
	ServeLost    flexString         `json:"serve_lost"`
	Score        flexString         `json:"score"`
	Points       flexList[pointDTO] `json:"points"`
}

type pointDTO struct {
	NumberPoint flexString `json:"number_point"`
	Score       flexString `json:"score"`
	BreakPoint  flexString `json:"break_point"`
	SetPoint    flexString `json:"set_point"`
	MatchPoint  flexString `json:"match_point"`
}

type playerDTO struct {
	PlayerKey         flexString              `json:"player_key" validate:"required"`
	PlayerName        flexString              `json:"player_name" validate:"required"`
	PlayerFullName    flexString              `json:"player_full_name"`
	PlayerCountry     flexString              `json:"player_country"`
	PlayerCountryCode flexString              `json:"player_country_code"`
	PlayerBday        flexString              `json:"player_bday"`
	PlayerLogo        flexString              `json:"player_logo"`
	Stats             flexList[playerStatDTO] `json:"stats"`
}

type playerStatDTO struct {
	Season      flexString `json:"season"`
	Type        flexString `json:"type"`
	Rank        flexString `json:"rank"`
	Titles      flexString `json:"titles"`
	MatchesWon  flexString `json:"matches_won"`
	MatchesLost flexString `json:"matches_lost"`
	HardWon     flexString `json:"hard_won"`
	HardLost    flexString `json:"hard_lost"`
	ClayWon     flexString `json:"clay_won"`
	ClayLost    flexString `json:"clay_lost"`
	GrassWon    flexString `json:"grass_won"`
	GrassLost   flexString `json:"grass_lost"`
}

// standingDTO has no required fields; rows without a resolvable key are
// dropped during mapping.
type standingDTO struct {
	PlayerKey         flexKey    `json:"player_key"`
	PlayerName        flexString `json:"player_name"`
	Player            flexString `json:"player"`
	PlayerCountry     flexString `json:"player_country"`
	Country           flexString `json:"country"`
	PlayerCountryCode flexString `json:"player_country_code"`
	PlayerLogo        flexString `json:"player_logo"`
	Rank              flexString `json:"rank"`
	Place             flexString `json:"place"`
	Points            flexString `json:"points"`
	TournamentPlayed  flexString `json:"tournament_played"`
	League            flexString `json:"league"`
	Movement          flexString `json:"movement"`
}

type upstreamErrorDTO struct {
	Msg flexString `json:"msg"`
	Cod flexString `json:"cod"`
}
