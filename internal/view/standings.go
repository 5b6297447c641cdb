package view

import (
	"sort"

	"rinkside/internal/cache"
	"rinkside/internal/domain"
	"rinkside/internal/nhl"
)

// StandingsTab selects how the standings are grouped.
type StandingsTab int

const (
	TabWildCard StandingsTab = iota
	TabDivision
	TabConference
	TabLeague
)

var standingsTabNames = []string{"Wild Card", "Division", "Conference", "League"}

func (t StandingsTab) String() string {
	if int(t) < len(standingsTabNames) {
		return standingsTabNames[t]
	}
	return "League"
}

// StandingsState backs the standings screen. All tabs render from the one
// standings resource, so switching tabs never triggers a fetch.
type StandingsState struct {
	Tab StandingsTab

	Standings domain.Standings
	Loaded    bool
	LastErr   error
}

// NewStandingsState opens the standings on the wild-card tab.
func NewStandingsState() *StandingsState {
	return &StandingsState{}
}

// Keys derives the single standings resource.
func (s *StandingsState) Keys() []cache.Key {
	return []cache.Key{nhl.StandingsKey()}
}

// Apply replaces the rendered standings.
func (s *StandingsState) Apply(standings domain.Standings) {
	s.Standings = standings
	s.Loaded = true
	s.LastErr = nil
}

// Fail records a fetch error; previously rendered standings remain.
func (s *StandingsState) Fail(err error) {
	s.LastErr = err
}

// NextTab cycles the grouping forward.
func (s *StandingsState) NextTab() {
	s.Tab = (s.Tab + 1) % StandingsTab(len(standingsTabNames))
}

// Group is one titled table of standing rows for the active tab.
type Group struct {
	Title string
	Rows  []domain.StandingRow
}

// Groups renders the active tab as ordered row groups.
func (s *StandingsState) Groups() []Group {
	switch s.Tab {
	case TabDivision:
		return sortedGroups(s.Standings.ByDivision())
	case TabConference:
		return sortedGroups(s.Standings.ByConference())
	case TabWildCard:
		return s.wildCardGroups()
	default:
		return []Group{{Title: "League", Rows: s.Standings.Rows}}
	}
}

// wildCardGroups shows each conference's division leaders followed by its
// wild-card race, the way the league publishes the playoff picture.
func (s *StandingsState) wildCardGroups() []Group {
	type split struct {
		leaders  []domain.StandingRow
		wildcard []domain.StandingRow
	}
	byConf := make(map[string]*split)
	var order []string
	for _, row := range s.Standings.Rows {
		sp, ok := byConf[row.Conference]
		if !ok {
			sp = &split{}
			byConf[row.Conference] = sp
			order = append(order, row.Conference)
		}
		if row.WildcardRank == 0 {
			sp.leaders = append(sp.leaders, row)
		} else {
			sp.wildcard = append(sp.wildcard, row)
		}
	}
	sort.Strings(order)

	var groups []Group
	for _, conf := range order {
		sp := byConf[conf]
		if len(sp.leaders) > 0 {
			groups = append(groups, Group{Title: conf + " Division Leaders", Rows: sp.leaders})
		}
		if len(sp.wildcard) > 0 {
			groups = append(groups, Group{Title: conf + " Wild Card", Rows: sp.wildcard})
		}
	}
	return groups
}

func sortedGroups(m map[string][]domain.StandingRow) []Group {
	titles := make([]string, 0, len(m))
	for title := range m {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	groups := make([]Group, 0, len(titles))
	for _, title := range titles {
		groups = append(groups, Group{Title: title, Rows: m[title]})
	}
	return groups
}
