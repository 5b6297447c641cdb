package nhl

// Wire shapes for the api-web.nhle.com v1 endpoints, trimmed to the fields
// the screens consume. Everything here is mapped to domain types before it
// leaves this package.

type nameDefault struct {
	Default string `json:"default"`
}

type scheduleResponse struct {
	GameWeek []scheduleDayResponse `json:"gameWeek"`
}

type scheduleDayResponse struct {
	Date  string         `json:"date"`
	Games []gameResponse `json:"games"`
}

type gameResponse struct {
	ID                int              `json:"id"`
	GameDate          string           `json:"gameDate"`
	StartTimeUTC      string           `json:"startTimeUTC"`
	GameState         string           `json:"gameState"`
	GameScheduleState string           `json:"gameScheduleState"`
	Venue             nameDefault      `json:"venue"`
	HomeTeam          teamResponse     `json:"homeTeam"`
	AwayTeam          teamResponse     `json:"awayTeam"`
	PeriodDescriptor  periodDescriptor `json:"periodDescriptor"`
	Clock             clockResponse    `json:"clock"`
}

type teamResponse struct {
	Abbrev     string      `json:"abbrev"`
	CommonName nameDefault `json:"commonName"`
	PlaceName  nameDefault `json:"placeName"`
	Score      int         `json:"score"`
	SOG        int         `json:"sog"`
}

type periodDescriptor struct {
	Number     int    `json:"number"`
	PeriodType string `json:"periodType"`
}

type clockResponse struct {
	TimeRemaining string `json:"timeRemaining"`
}

type boxscoreResponse struct {
	gameResponse
	PlayerByGameStats struct {
		HomeTeam teamGameStats `json:"homeTeam"`
		AwayTeam teamGameStats `json:"awayTeam"`
	} `json:"playerByGameStats"`
	Summary struct {
		Linescore struct {
			ByPeriod []linescorePeriod `json:"byPeriod"`
		} `json:"linescore"`
	} `json:"summary"`
}

type teamGameStats struct {
	Forwards []skaterStats `json:"forwards"`
	Defense  []skaterStats `json:"defense"`
	Goalies  []goalieStats `json:"goalies"`
}

type skaterStats struct {
	PlayerID int         `json:"playerId"`
	Name     nameDefault `json:"name"`
	Position string      `json:"position"`
	Goals    int         `json:"goals"`
	Assists  int         `json:"assists"`
	Points   int         `json:"points"`
	SOG      int         `json:"sog"`
	TOI      string      `json:"toi"`
}

type goalieStats struct {
	PlayerID         int         `json:"playerId"`
	Name             nameDefault `json:"name"`
	SaveShotsAgainst string      `json:"saveShotsAgainst"`
	SavePctg         string      `json:"savePctg"`
	TOI              string      `json:"toi"`
}

type linescorePeriod struct {
	PeriodDescriptor periodDescriptor `json:"periodDescriptor"`
	Home             int              `json:"home"`
	Away             int              `json:"away"`
}

type playByPlayResponse struct {
	ID    int            `json:"id"`
	Plays []playResponse `json:"plays"`
}

type playResponse struct {
	PeriodDescriptor periodDescriptor `json:"periodDescriptor"`
	TimeInPeriod     string           `json:"timeInPeriod"`
	TypeDescKey      string           `json:"typeDescKey"`
	Details          playDetails      `json:"details"`
}

type playDetails struct {
	ShotType string `json:"shotType"`
	Reason   string `json:"reason"`
	ZoneCode string `json:"zoneCode"`
}

type standingsResponse struct {
	Standings []standingResponse `json:"standings"`
}

type standingResponse struct {
	TeamAbbrev       nameDefault `json:"teamAbbrev"`
	TeamName         nameDefault `json:"teamName"`
	ConferenceName   string      `json:"conferenceName"`
	DivisionName     string      `json:"divisionName"`
	GamesPlayed      int         `json:"gamesPlayed"`
	Wins             int         `json:"wins"`
	Losses           int         `json:"losses"`
	OTLosses         int         `json:"otLosses"`
	Points           int         `json:"points"`
	GoalDifferential int         `json:"goalDifferential"`
	WildcardSequence int         `json:"wildcardSequence"`
}

// Leader endpoints return one array per stat category at the top level.
type leadersResponse map[string][]leaderResponse

type leaderResponse struct {
	ID         int         `json:"id"`
	FirstName  nameDefault `json:"firstName"`
	LastName   nameDefault `json:"lastName"`
	TeamAbbrev string      `json:"teamAbbrev"`
	Value      float64     `json:"value"`
}

type rosterResponse struct {
	Forwards   []rosterPlayerResponse `json:"forwards"`
	Defensemen []rosterPlayerResponse `json:"defensemen"`
	Goalies    []rosterPlayerResponse `json:"goalies"`
}

type rosterPlayerResponse struct {
	ID            int         `json:"id"`
	FirstName     nameDefault `json:"firstName"`
	LastName      nameDefault `json:"lastName"`
	SweaterNumber int         `json:"sweaterNumber"`
	PositionCode  string      `json:"positionCode"`
}

type clubScheduleResponse struct {
	Games []gameResponse `json:"games"`
}

type clubStatsResponse struct {
	Skaters []clubSkaterStats `json:"skaters"`
	Goalies []clubGoalieStats `json:"goalies"`
}

type clubSkaterStats struct {
	PlayerID  int         `json:"playerId"`
	FirstName nameDefault `json:"firstName"`
	LastName  nameDefault `json:"lastName"`
	Position  string      `json:"positionCode"`
	Goals     int         `json:"goals"`
	Assists   int         `json:"assists"`
	Points    int         `json:"points"`
	Shots     int         `json:"shots"`
}

type clubGoalieStats struct {
	PlayerID       int         `json:"playerId"`
	FirstName      nameDefault `json:"firstName"`
	LastName       nameDefault `json:"lastName"`
	Saves          int         `json:"saves"`
	ShotsAgainst   int         `json:"shotsAgainst"`
	SavePercentage float64     `json:"savePercentage"`
}

type playerLandingResponse struct {
	PlayerID          int         `json:"playerId"`
	FirstName         nameDefault `json:"firstName"`
	LastName          nameDefault `json:"lastName"`
	SweaterNumber     int         `json:"sweaterNumber"`
	Position          string      `json:"position"`
	CurrentTeamAbbrev string      `json:"currentTeamAbbrev"`
	HeightInInches    int         `json:"heightInInches"`
	WeightInPounds    int         `json:"weightInPounds"`
	BirthDate         string      `json:"birthDate"`
	FeaturedStats     struct {
		RegularSeason struct {
			SubSeason struct {
				GamesPlayed int `json:"gamesPlayed"`
				Goals       int `json:"goals"`
				Assists     int `json:"assists"`
				Points      int `json:"points"`
			} `json:"subSeason"`
		} `json:"regularSeason"`
	} `json:"featuredStats"`
}

type gameLogResponse struct {
	GameLog []gameLogEntryResponse `json:"gameLog"`
}

type gameLogEntryResponse struct {
	GameID         int    `json:"gameId"`
	GameDate       string `json:"gameDate"`
	OpponentAbbrev string `json:"opponentAbbrev"`
	Goals          int    `json:"goals"`
	Assists        int    `json:"assists"`
	Points         int    `json:"points"`
	TOI            string `json:"toi"`
}
