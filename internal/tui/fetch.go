package tui

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"rinkside/internal/cache"
	"rinkside/internal/domain"
	"rinkside/internal/nav"
	"rinkside/internal/nhl"
	"rinkside/internal/view"
)

// keyDeriver is implemented by every screen state: the pure derivation of
// the resources the screen needs right now.
type keyDeriver interface {
	Keys() []cache.Key
}

func deriveKeys(state any) []cache.Key {
	if d, ok := state.(keyDeriver); ok {
		return d.Keys()
	}
	return nil
}

// fetchCmds issues one fetch command per derived key for the screen. Each
// command resolves through the gateway's cache, so a key that is already
// fresh costs nothing.
func (a *App) fetchCmds(entry *nav.Entry) tea.Cmd {
	if entry == nil {
		return nil
	}
	keys := deriveKeys(entry.State())
	cmds := make([]tea.Cmd, 0, len(keys))
	for _, k := range keys {
		cmds = append(cmds, a.fetchCmd(entry.ID(), k))
	}
	return tea.Batch(cmds...)
}

func (a *App) fetchCmd(screenID int64, k cache.Key) tea.Cmd {
	return func() tea.Msg {
		payload, err := a.fetch(k)
		return fetchResultMsg{screenID: screenID, key: k, payload: payload, err: err}
	}
}

// fetch dispatches a cache key to the typed client call it names.
func (a *App) fetch(k cache.Key) (any, error) {
	switch k.Endpoint {
	case nhl.EndpointSchedule:
		return a.client.Schedule(a.ctx, k.Params)
	case nhl.EndpointBoxscore:
		id, err := strconv.Atoi(k.Params)
		if err != nil {
			return nil, fmt.Errorf("bad game id %q: %w", k.Params, err)
		}
		return a.client.Boxscore(a.ctx, id)
	case nhl.EndpointPlayByPlay:
		id, err := strconv.Atoi(k.Params)
		if err != nil {
			return nil, fmt.Errorf("bad game id %q: %w", k.Params, err)
		}
		return a.client.PlayByPlay(a.ctx, id)
	case nhl.EndpointStandings:
		return a.client.Standings(a.ctx)
	case nhl.EndpointSkaterLeaders:
		return a.client.SkaterLeaders(a.ctx)
	case nhl.EndpointGoalieLeaders:
		return a.client.GoalieLeaders(a.ctx)
	case nhl.EndpointRoster:
		return a.client.Roster(a.ctx, k.Params)
	case nhl.EndpointClubSchedule:
		return a.client.ClubSchedule(a.ctx, k.Params)
	case nhl.EndpointClubStats:
		return a.client.ClubStats(a.ctx, k.Params)
	case nhl.EndpointPlayer:
		id, err := strconv.Atoi(k.Params)
		if err != nil {
			return nil, fmt.Errorf("bad player id %q: %w", k.Params, err)
		}
		return a.client.PlayerProfile(a.ctx, id)
	case nhl.EndpointGameLog:
		id, err := strconv.Atoi(k.Params)
		if err != nil {
			return nil, fmt.Errorf("bad player id %q: %w", k.Params, err)
		}
		return a.client.PlayerGameLog(a.ctx, id)
	default:
		return nil, fmt.Errorf("no fetcher for endpoint %q", k.Endpoint)
	}
}

// applyPayload routes a fetched payload into the active screen's state.
// Payloads that do not belong to the screen's current parameters, like a
// schedule for a date the user has since navigated away from, are dropped.
func (a *App) applyPayload(entry *nav.Entry, k cache.Key, payload any) {
	switch st := entry.State().(type) {
	case *view.ScheduleState:
		if day, ok := payload.(domain.ScheduleDay); ok && day.Date == st.Date {
			st.Apply(day)
		}
		// Boxscore and play-by-play results here are cache warmers for
		// live games; the slate itself is all the screen renders.
	case *view.GameDetailState:
		switch p := payload.(type) {
		case domain.Boxscore:
			if p.Game.ID == st.GameID || p.Game.ID == 0 {
				st.ApplyBoxscore(p)
			}
		case domain.PlayByPlay:
			if p.GameID == st.GameID || p.GameID == 0 {
				st.ApplyPlays(p)
			}
		}
	case *view.StandingsState:
		if s, ok := payload.(domain.Standings); ok {
			st.Apply(s)
		}
	case *view.StatsState:
		if cats, ok := payload.([]domain.LeaderCategory); ok {
			if k.Endpoint == nhl.EndpointGoalieLeaders {
				st.ApplyGoalies(cats)
			} else {
				st.ApplySkaters(cats)
			}
		}
	case *view.TeamsState:
		if s, ok := payload.(domain.Standings); ok {
			st.Apply(s)
		}
	case *view.TeamDetailState:
		switch p := payload.(type) {
		case []domain.RosterPlayer:
			st.ApplyRoster(p)
		case []domain.Game:
			st.ApplySchedule(p)
		case domain.ClubStats:
			st.ApplyStats(p)
		}
	case *view.PlayerState:
		switch p := payload.(type) {
		case domain.PlayerProfile:
			st.ApplyProfile(p)
		case []domain.GameLogEntry:
			st.ApplyGameLog(p)
		}
	}
}

// applyError records a fetch failure on the active screen. The screen keeps
// rendering its last good payload if it has one.
func (a *App) applyError(entry *nav.Entry, err error) {
	type failer interface{ Fail(error) }
	if f, ok := entry.State().(failer); ok {
		f.Fail(err)
	}
}
