package view

import (
	"rinkside/internal/cache"
	"rinkside/internal/domain"
	"rinkside/internal/nhl"
	"rinkside/internal/timeutil"
)

// ScheduleState backs the root schedule screen: one date's slate of games
// with a movable cursor.
type ScheduleState struct {
	Date   string
	Cursor int

	Day     domain.ScheduleDay
	Loaded  bool
	LastErr error
}

// NewScheduleState starts the schedule on the league's current date.
func NewScheduleState(today string) *ScheduleState {
	return &ScheduleState{Date: today}
}

// Keys derives the resources the schedule view needs: the day's slate, plus
// the detail resources for any game currently live so opening one is warm
// and the scoreboard stays current.
func (s *ScheduleState) Keys() []cache.Key {
	keys := []cache.Key{nhl.ScheduleKey(s.Date)}
	for _, g := range s.Day.Games {
		if g.Status == domain.StatusLive {
			keys = append(keys, nhl.BoxscoreKey(g.ID), nhl.PlayByPlayKey(g.ID))
		}
	}
	return keys
}

// Apply replaces the rendered slate with a fresh payload and clamps the
// cursor to the new game count.
func (s *ScheduleState) Apply(day domain.ScheduleDay) {
	s.Day = day
	s.Loaded = true
	s.LastErr = nil
	if s.Cursor >= len(day.Games) {
		s.Cursor = len(day.Games) - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}

// Fail records a fetch error. The previous slate, if any, stays rendered.
func (s *ScheduleState) Fail(err error) {
	s.LastErr = err
}

// ShiftDate moves the viewed date and resets the cursor; the new date's
// slate must be re-fetched before it renders.
func (s *ScheduleState) ShiftDate(days int) {
	s.Date = timeutil.ShiftDate(s.Date, days)
	s.resetForDate()
}

// GoToDate jumps straight to a date, typically back to today.
func (s *ScheduleState) GoToDate(date string) {
	if date == s.Date {
		return
	}
	s.Date = date
	s.resetForDate()
}

func (s *ScheduleState) resetForDate() {
	s.Cursor = 0
	s.Day = domain.ScheduleDay{}
	s.Loaded = false
	s.LastErr = nil
}

// MoveCursor shifts the selection within the slate.
func (s *ScheduleState) MoveCursor(delta int) {
	next := s.Cursor + delta
	if next < 0 || next >= len(s.Day.Games) {
		return
	}
	s.Cursor = next
}

// Selected returns the game under the cursor.
func (s *ScheduleState) Selected() (domain.Game, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Day.Games) {
		return domain.Game{}, false
	}
	return s.Day.Games[s.Cursor], true
}

// HasLiveGames reports whether any game on the slate is in progress, which
// drives the screen's refresh cadence.
func (s *ScheduleState) HasLiveGames() bool {
	for _, g := range s.Day.Games {
		if g.Status == domain.StatusLive {
			return true
		}
	}
	return false
}
