package domain

import "time"

// TeamSide captures one side of a matchup as rendered on a game card.
type TeamSide struct {
	Abbrev string `json:"abbrev"`
	Name   string `json:"name"`
	Score  int    `json:"score"`
	SOG    int    `json:"sog"`
}

// Game is the canonical game shape exposed to the screens.
// StartTimeUTC is always absolute; local display conversion is a
// presentation concern.
type Game struct {
	ID           int        `json:"id"`
	Date         string     `json:"date"`
	StartTimeUTC time.Time  `json:"startTimeUtc"`
	Status       GameStatus `json:"status"`
	Home         TeamSide   `json:"home"`
	Away         TeamSide   `json:"away"`
	Period       int        `json:"period,omitempty"`
	PeriodType   string     `json:"periodType,omitempty"`
	Clock        string     `json:"clock,omitempty"`
	Venue        string     `json:"venue,omitempty"`
}

// ScheduleDay is a day's slate of games.
type ScheduleDay struct {
	Date  string `json:"date"`
	Games []Game `json:"games"`
}

// Boxscore summarizes a game in progress or completed.
type Boxscore struct {
	Game        Game          `json:"game"`
	HomeSkaters []SkaterLine  `json:"homeSkaters"`
	AwaySkaters []SkaterLine  `json:"awaySkaters"`
	HomeGoalies []GoalieLine  `json:"homeGoalies"`
	AwayGoalies []GoalieLine  `json:"awayGoalies"`
	Periods     []PeriodScore `json:"periods"`
}

// SkaterLine is one skater's row in a boxscore.
type SkaterLine struct {
	PlayerID int    `json:"playerId"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Goals    int    `json:"goals"`
	Assists  int    `json:"assists"`
	Points   int    `json:"points"`
	Shots    int    `json:"shots"`
	TOI      string `json:"toi"`
}

// GoalieLine is one goalie's row in a boxscore.
type GoalieLine struct {
	PlayerID   int    `json:"playerId"`
	Name       string `json:"name"`
	Saves      int    `json:"saves"`
	ShotsFaced int    `json:"shotsFaced"`
	SavePct    string `json:"savePct"`
	TOI        string `json:"toi"`
}

// PeriodScore holds per-period goal totals.
type PeriodScore struct {
	Period int `json:"period"`
	Home   int `json:"home"`
	Away   int `json:"away"`
}

// Play is a single play-by-play event.
type Play struct {
	Period      int    `json:"period"`
	TimeInClock string `json:"timeInClock"`
	TypeKey     string `json:"typeKey"`
	Description string `json:"description"`
}

// PlayByPlay is the event feed for a game, newest last.
type PlayByPlay struct {
	GameID int    `json:"gameId"`
	Plays  []Play `json:"plays"`
}
