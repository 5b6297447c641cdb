package view

import (
	"rinkside/internal/cache"
	"rinkside/internal/domain"
	"rinkside/internal/nhl"
)

// GameTab selects which pane of the game detail screen is visible.
type GameTab int

const (
	TabBoxscore GameTab = iota
	TabPlays
)

func (t GameTab) String() string {
	if t == TabPlays {
		return "Plays"
	}
	return "Boxscore"
}

// GameDetailState backs the game detail screen for one live or finished
// game.
type GameDetailState struct {
	GameID int
	Tab    GameTab

	Box      domain.Boxscore
	Plays    domain.PlayByPlay
	HasBox   bool
	HasPlays bool
	LastErr  error

	// status at push time; superseded by fetched payloads.
	initialStatus domain.GameStatus
}

// NewGameDetailState opens the detail screen on the boxscore tab. status is
// the game's classification at selection time, used until the first payload
// lands.
func NewGameDetailState(gameID int, status domain.GameStatus) *GameDetailState {
	return &GameDetailState{GameID: gameID, initialStatus: status}
}

// Keys derives the resources for the detail screen. Both tabs' resources
// are fetched so tab switches render instantly and the header score stays
// current regardless of the visible tab.
func (s *GameDetailState) Keys() []cache.Key {
	return []cache.Key{nhl.BoxscoreKey(s.GameID), nhl.PlayByPlayKey(s.GameID)}
}

// ApplyBoxscore replaces the rendered boxscore.
func (s *GameDetailState) ApplyBoxscore(box domain.Boxscore) {
	s.Box = box
	s.HasBox = true
	s.LastErr = nil
}

// ApplyPlays replaces the rendered event feed.
func (s *GameDetailState) ApplyPlays(plays domain.PlayByPlay) {
	s.Plays = plays
	s.HasPlays = true
	s.LastErr = nil
}

// Fail records a fetch error. Previously fetched panes stay rendered.
func (s *GameDetailState) Fail(err error) {
	s.LastErr = err
}

// ToggleTab flips between the boxscore and plays panes.
func (s *GameDetailState) ToggleTab() {
	if s.Tab == TabBoxscore {
		s.Tab = TabPlays
	} else {
		s.Tab = TabBoxscore
	}
}

// Status recomputes the game's status from the latest fetched payload. It
// is never stored separately, so a game that went final since the last
// fetch is reclassified as soon as the fresh payload lands.
func (s *GameDetailState) Status() domain.GameStatus {
	if !s.HasBox {
		return s.initialStatus
	}
	return s.Box.Game.Status
}
