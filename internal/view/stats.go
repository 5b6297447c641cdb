package view

import (
	"rinkside/internal/cache"
	"rinkside/internal/domain"
	"rinkside/internal/nhl"
)

// StatsTab selects which leader board is visible.
type StatsTab int

const (
	TabSkaters StatsTab = iota
	TabGoalies
)

func (t StatsTab) String() string {
	if t == TabGoalies {
		return "Goalies"
	}
	return "Skaters"
}

// StatsState backs the league stat-leaders screen.
type StatsState struct {
	Tab StatsTab

	Skaters    []domain.LeaderCategory
	Goalies    []domain.LeaderCategory
	HasSkaters bool
	HasGoalies bool
	LastErr    error
}

// NewStatsState opens the leaders screen on the skaters tab.
func NewStatsState() *StatsState {
	return &StatsState{}
}

// Keys derives only the active tab's leader resource; the other board is
// fetched when the user switches to it.
func (s *StatsState) Keys() []cache.Key {
	if s.Tab == TabGoalies {
		return []cache.Key{nhl.GoalieLeadersKey()}
	}
	return []cache.Key{nhl.SkaterLeadersKey()}
}

// ApplySkaters replaces the skater leader board.
func (s *StatsState) ApplySkaters(categories []domain.LeaderCategory) {
	s.Skaters = categories
	s.HasSkaters = true
	s.LastErr = nil
}

// ApplyGoalies replaces the goalie leader board.
func (s *StatsState) ApplyGoalies(categories []domain.LeaderCategory) {
	s.Goalies = categories
	s.HasGoalies = true
	s.LastErr = nil
}

// Fail records a fetch error; a previously rendered board remains.
func (s *StatsState) Fail(err error) {
	s.LastErr = err
}

// ToggleTab flips between the skater and goalie boards.
func (s *StatsState) ToggleTab() {
	if s.Tab == TabSkaters {
		s.Tab = TabGoalies
	} else {
		s.Tab = TabSkaters
	}
}

// Active returns the visible board and whether it has loaded.
func (s *StatsState) Active() ([]domain.LeaderCategory, bool) {
	if s.Tab == TabGoalies {
		return s.Goalies, s.HasGoalies
	}
	return s.Skaters, s.HasSkaters
}
