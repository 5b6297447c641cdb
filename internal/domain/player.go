package domain

import "time"

// Leader is one row in a stat-leaders category.
type Leader struct {
	PlayerID   int     `json:"playerId"`
	Name       string  `json:"name"`
	TeamAbbrev string  `json:"teamAbbrev"`
	Value      float64 `json:"value"`
}

// LeaderCategory is a named stat category with its top players.
type LeaderCategory struct {
	Category string   `json:"category"`
	Leaders  []Leader `json:"leaders"`
}

// RosterPlayer is one player on a team roster.
type RosterPlayer struct {
	PlayerID int    `json:"playerId"`
	Name     string `json:"name"`
	Number   int    `json:"number"`
	Position string `json:"position"`
}

// ClubStats carries a team's per-player season stats.
type ClubStats struct {
	Skaters []SkaterLine `json:"skaters"`
	Goalies []GoalieLine `json:"goalies"`
}

// PlayerProfile is the landing data for a single player.
type PlayerProfile struct {
	PlayerID   int               `json:"playerId"`
	Name       string            `json:"name"`
	TeamAbbrev string            `json:"teamAbbrev"`
	Number     int               `json:"number"`
	Position   string            `json:"position"`
	Height     string            `json:"height,omitempty"`
	Weight     int               `json:"weight,omitempty"`
	Birthdate  string            `json:"birthdate,omitempty"`
	SeasonStat map[string]string `json:"seasonStat,omitempty"`
}

// GameLogEntry is one game in a player's season log.
type GameLogEntry struct {
	GameID   int       `json:"gameId"`
	Date     string    `json:"date"`
	Opponent string    `json:"opponent"`
	Goals    int       `json:"goals"`
	Assists  int       `json:"assists"`
	Points   int       `json:"points"`
	TOI      string    `json:"toi"`
	PlayedAt time.Time `json:"playedAt,omitempty"`
}
