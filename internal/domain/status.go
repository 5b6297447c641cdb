package domain

// GameStatus mirrors the shared contract for game lifecycle states.
type GameStatus string

const (
	StatusScheduled GameStatus = "SCHEDULED"
	StatusLive      GameStatus = "LIVE"
	StatusFinal     GameStatus = "FINAL"
	StatusPostponed GameStatus = "POSTPONED"
	StatusCancelled GameStatus = "CANCELLED"
)

// StatusFrom derives a GameStatus from the raw api-web fields. The schedule
// state wins over the game state: a postponed game may still report FUT.
// Callers must re-derive from every fresh payload rather than caching the
// result, so a game that just went final stops reporting Live.
func StatusFrom(gameState, gameScheduleState string) GameStatus {
	switch gameScheduleState {
	case "PPD":
		return StatusPostponed
	case "CNCL":
		return StatusCancelled
	}
	switch gameState {
	case "LIVE", "CRIT":
		return StatusLive
	case "FINAL", "OFF":
		return StatusFinal
	default: // FUT, PRE, or anything unrecognized
		return StatusScheduled
	}
}

// IsLive reports whether the status calls for the fast refresh cadence.
func (s GameStatus) IsLive() bool {
	return s == StatusLive
}

// HasDetail reports whether a gamecenter resource exists for the game.
// Scheduled, postponed, and cancelled games have no boxscore or play-by-play.
func (s GameStatus) HasDetail() bool {
	return s == StatusLive || s == StatusFinal
}
