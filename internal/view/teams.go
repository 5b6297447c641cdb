package view

import (
	"sort"

	"rinkside/internal/cache"
	"rinkside/internal/domain"
	"rinkside/internal/nhl"
)

// TeamsState backs the team browser: a grid of teams built from the
// standings resource, with a movable cursor.
type TeamsState struct {
	Cursor int

	Teams   []domain.StandingRow
	Loaded  bool
	LastErr error
}

// NewTeamsState opens the team browser.
func NewTeamsState() *TeamsState {
	return &TeamsState{}
}

// Keys derives the standings resource the grid is built from.
func (s *TeamsState) Keys() []cache.Key {
	return []cache.Key{nhl.StandingsKey()}
}

// Apply rebuilds the grid from fresh standings, alphabetical by name.
func (s *TeamsState) Apply(standings domain.Standings) {
	teams := make([]domain.StandingRow, len(standings.Rows))
	copy(teams, standings.Rows)
	sort.Slice(teams, func(i, j int) bool { return teams[i].TeamName < teams[j].TeamName })
	s.Teams = teams
	s.Loaded = true
	s.LastErr = nil
	if s.Cursor >= len(teams) {
		s.Cursor = len(teams) - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}

// Fail records a fetch error; the previous grid remains.
func (s *TeamsState) Fail(err error) {
	s.LastErr = err
}

// MoveCursor shifts the selection within the grid.
func (s *TeamsState) MoveCursor(delta int) {
	next := s.Cursor + delta
	if next < 0 || next >= len(s.Teams) {
		return
	}
	s.Cursor = next
}

// Selected returns the team under the cursor.
func (s *TeamsState) Selected() (domain.StandingRow, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Teams) {
		return domain.StandingRow{}, false
	}
	return s.Teams[s.Cursor], true
}

// TeamTab selects which pane of the team detail screen is visible.
type TeamTab int

const (
	TabRoster TeamTab = iota
	TabTeamSchedule
	TabTeamStats
)

var teamTabNames = []string{"Roster", "Schedule", "Stats"}

func (t TeamTab) String() string {
	if int(t) < len(teamTabNames) {
		return teamTabNames[t]
	}
	return "Roster"
}

// TeamDetailState backs one team's detail screen.
type TeamDetailState struct {
	Abbrev string
	Name   string
	Tab    TeamTab
	Cursor int

	Roster      []domain.RosterPlayer
	Games       []domain.Game
	Stats       domain.ClubStats
	HasRoster   bool
	HasSchedule bool
	HasStats    bool
	LastErr     error
}

// NewTeamDetailState opens a team's detail screen on the roster tab.
func NewTeamDetailState(abbrev, name string) *TeamDetailState {
	return &TeamDetailState{Abbrev: abbrev, Name: name}
}

// Keys derives only the active tab's resource for this team.
func (s *TeamDetailState) Keys() []cache.Key {
	switch s.Tab {
	case TabTeamSchedule:
		return []cache.Key{nhl.ClubScheduleKey(s.Abbrev)}
	case TabTeamStats:
		return []cache.Key{nhl.ClubStatsKey(s.Abbrev)}
	default:
		return []cache.Key{nhl.RosterKey(s.Abbrev)}
	}
}

// ApplyRoster replaces the roster pane.
func (s *TeamDetailState) ApplyRoster(roster []domain.RosterPlayer) {
	s.Roster = roster
	s.HasRoster = true
	s.LastErr = nil
}

// ApplySchedule replaces the team schedule pane.
func (s *TeamDetailState) ApplySchedule(games []domain.Game) {
	s.Games = games
	s.HasSchedule = true
	s.LastErr = nil
}

// ApplyStats replaces the team stats pane.
func (s *TeamDetailState) ApplyStats(stats domain.ClubStats) {
	s.Stats = stats
	s.HasStats = true
	s.LastErr = nil
}

// Fail records a fetch error; fetched panes remain rendered.
func (s *TeamDetailState) Fail(err error) {
	s.LastErr = err
}

// NextTab cycles the pane forward and resets the cursor.
func (s *TeamDetailState) NextTab() {
	s.Tab = (s.Tab + 1) % TeamTab(len(teamTabNames))
	s.Cursor = 0
}

// MoveCursor shifts the selection within the roster pane.
func (s *TeamDetailState) MoveCursor(delta int) {
	if s.Tab != TabRoster {
		return
	}
	next := s.Cursor + delta
	if next < 0 || next >= len(s.Roster) {
		return
	}
	s.Cursor = next
}

// SelectedPlayer returns the roster player under the cursor.
func (s *TeamDetailState) SelectedPlayer() (domain.RosterPlayer, bool) {
	if s.Tab != TabRoster || s.Cursor < 0 || s.Cursor >= len(s.Roster) {
		return domain.RosterPlayer{}, false
	}
	return s.Roster[s.Cursor], true
}
