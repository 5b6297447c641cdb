package view

import (
	"rinkside/internal/cache"
	"rinkside/internal/domain"
	"rinkside/internal/nhl"
)

// PlayerState backs a single player's profile screen, reached from a
// roster or a leader board.
type PlayerState struct {
	PlayerID int

	Profile    domain.PlayerProfile
	GameLog    []domain.GameLogEntry
	HasProfile bool
	HasLog     bool
	LastErr    error
}

// NewPlayerState opens a player's profile screen.
func NewPlayerState(playerID int) *PlayerState {
	return &PlayerState{PlayerID: playerID}
}

// Keys derives the profile and current-season game log resources.
func (s *PlayerState) Keys() []cache.Key {
	return []cache.Key{nhl.PlayerKey(s.PlayerID), nhl.GameLogKey(s.PlayerID)}
}

// ApplyProfile replaces the rendered profile.
func (s *PlayerState) ApplyProfile(profile domain.PlayerProfile) {
	s.Profile = profile
	s.HasProfile = true
	s.LastErr = nil
}

// ApplyGameLog replaces the rendered game log.
func (s *PlayerState) ApplyGameLog(entries []domain.GameLogEntry) {
	s.GameLog = entries
	s.HasLog = true
	s.LastErr = nil
}

// Fail records a fetch error; fetched panes remain rendered.
func (s *PlayerState) Fail(err error) {
	s.LastErr = err
}
