package domain

// StandingRow is one team's line in the standings table.
type StandingRow struct {
	TeamAbbrev   string `json:"teamAbbrev"`
	TeamName     string `json:"teamName"`
	Conference   string `json:"conference"`
	Division     string `json:"division"`
	GamesPlayed  int    `json:"gamesPlayed"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	OTLosses     int    `json:"otLosses"`
	Points       int    `json:"points"`
	GoalDiff     int    `json:"goalDiff"`
	WildcardRank int    `json:"wildcardRank,omitempty"`
}

// Standings is the league table, ordered by points within the league.
type Standings struct {
	Rows []StandingRow `json:"rows"`
}

// ByDivision groups rows by division name, preserving order.
func (s Standings) ByDivision() map[string][]StandingRow {
	return s.groupBy(func(r StandingRow) string { return r.Division })
}

// ByConference groups rows by conference name, preserving order.
func (s Standings) ByConference() map[string][]StandingRow {
	return s.groupBy(func(r StandingRow) string { return r.Conference })
}

func (s Standings) groupBy(key func(StandingRow) string) map[string][]StandingRow {
	grouped := make(map[string][]StandingRow)
	for _, row := range s.Rows {
		k := key(row)
		grouped[k] = append(grouped[k], row)
	}
	return grouped
}
