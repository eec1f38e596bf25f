package tennis

// EventType is an upstream competition category such as "ATP Singles".
type EventType struct {
	Key  string
	Type string
}

// PlayerInfo is the lightweight player reference embedded in a Match.
type PlayerInfo struct {
	Key     string
	Name    string
	LogoURL *string
}

type Player struct {
	Key         string
	Name        string
	FullName    *string
	Country     *string
	CountryCode *string
	Birthday    *string
	LogoURL     *string
	Stats       []PlayerStat
}

// PlayerStat is one season/type row of a player's record.
type PlayerStat struct {
	Season      *string
	Type        *string
	Rank        *string
	Titles      *string
	MatchesWon  *string
	MatchesLost *string
	HardWon     *string
	HardLost    *string
	ClayWon     *string
	ClayLost    *string
	GrassWon    *string
	GrassLost   *string
}

type PlayerRanking struct {
	Player            Player
	Rank              *int
	Points            *int
	TournamentsPlayed *int
}

type TournamentInfo struct {
	Key  string
	Name string
}

// Score is one row of the per-set summary.
type Score struct {
	FirstPlayerScore  string
	SecondPlayerScore string
	SetNumber         string
}

type TennisPoint struct {
	Number       string
	Score        string
	IsBreakPoint bool
	IsSetPoint   bool
	IsMatchPoint bool
}

type Game struct {
	Number             string
	FirstPlayerPoints  string
	SecondPlayerPoints string
	Server             *string
	Points             []TennisPoint
	IsCompleted        bool
}

type TennisSet struct {
	Number            string
	FirstPlayerGames  int
	SecondPlayerGames int
	Games             []Game
	IsCompleted       bool
}

// Equal reports whether both values describe the same set. Game contents are ignored.
func (s TennisSet) Equal(other TennisSet) bool {
	return s.Number == other.Number
}

// ReplaceSet swaps the set sharing snapshot's number for snapshot, or appends
// it when no such set exists. The input slice is not modified.
func ReplaceSet(sets []TennisSet, snapshot TennisSet) []TennisSet {
	out := make([]TennisSet, 0, len(sets)+1)
	replaced := false
	for _, item := range sets {
		if !replaced && item.Equal(snapshot) {
			out = append(out, snapshot)
			replaced = true
			continue
		}
		out = append(out, item)
	}
	if !replaced {
		out = append(out, snapshot)
	}
	return out
}

type Match struct {
	Key             string
	Date            string
	Time            string
	FirstPlayer     PlayerInfo
	SecondPlayer    PlayerInfo
	FinalResult     *string
	GameResult      *string
	Serve           *string
	Winner          *string
	Status          string
	EventType       string
	Tournament      TournamentInfo
	Round           *string
	Season          string
	IsLive          bool
	IsQualification bool
	Scores          []Score
	Sets            []TennisSet
}
