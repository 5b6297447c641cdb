package view

import (
	"errors"
	"strings"
	"testing"
	"time"

	"rinkside/internal/cache"
	"rinkside/internal/domain"
	"rinkside/internal/nhl"
)

func keySet(keys []cache.Key) map[cache.Key]bool {
	set := make(map[cache.Key]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}

func TestScheduleKeysIncludeLiveGameDetail(t *testing.T) {
	s := NewScheduleState("2024-01-15")
	s.Apply(domain.ScheduleDay{
		Date: "2024-01-15",
		Games: []domain.Game{
			{ID: 100, Status: domain.StatusLive},
			{ID: 200, Status: domain.StatusScheduled},
			{ID: 300, Status: domain.StatusFinal},
		},
	})

	keys := keySet(s.Keys())
	if len(keys) != 3 {
		t.Fatalf("expected 3 keys, got %d: %v", len(keys), keys)
	}
	for _, want := range []cache.Key{
		nhl.ScheduleKey("2024-01-15"),
		nhl.BoxscoreKey(100),
		nhl.PlayByPlayKey(100),
	} {
		if !keys[want] {
			t.Fatalf("expected key %v in derived set", want)
		}
	}
	if keys[nhl.BoxscoreKey(200)] || keys[nhl.BoxscoreKey(300)] {
		t.Fatal("derived keys must not include detail for non-live games")
	}
}

func TestScheduleKeysBeforeFirstLoad(t *testing.T) {
	s := NewScheduleState("2024-01-15")
	keys := s.Keys()
	if len(keys) != 1 || keys[0] != nhl.ScheduleKey("2024-01-15") {
		t.Fatalf("expected only the schedule key, got %v", keys)
	}
}

func TestScheduleApplyClampsCursor(t *testing.T) {
	s := NewScheduleState("2024-01-15")
	s.Apply(domain.ScheduleDay{Games: []domain.Game{{ID: 1}, {ID: 2}, {ID: 3}}})
	s.MoveCursor(2)
	if s.Cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", s.Cursor)
	}

	s.Apply(domain.ScheduleDay{Games: []domain.Game{{ID: 1}}})
	if s.Cursor != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", s.Cursor)
	}
	if game, ok := s.Selected(); !ok || game.ID != 1 {
		t.Fatalf("unexpected selection: %v %v", game, ok)
	}
}

func TestScheduleShiftDateResetsState(t *testing.T) {
	s := NewScheduleState("2024-01-15")
	s.Apply(domain.ScheduleDay{Games: []domain.Game{{ID: 1}}})
	s.Fail(errors.New("boom"))

	s.ShiftDate(1)
	if s.Date != "2024-01-16" {
		t.Fatalf("expected shifted date, got %s", s.Date)
	}
	if s.Loaded || s.LastErr != nil || len(s.Day.Games) != 0 {
		t.Fatalf("expected reset state after date change: %+v", s)
	}

	s.GoToDate("2024-01-15")
	if s.Date != "2024-01-15" {
		t.Fatalf("expected jump to date, got %s", s.Date)
	}
}

func TestScheduleFailKeepsLastPayload(t *testing.T) {
	s := NewScheduleState("2024-01-15")
	s.Apply(domain.ScheduleDay{Games: []domain.Game{{ID: 1}}})
	s.Fail(errors.New("upstream down"))

	if !s.Loaded || len(s.Day.Games) != 1 {
		t.Fatal("expected stale payload to remain renderable after a failure")
	}
	if s.LastErr == nil {
		t.Fatal("expected recorded fetch error")
	}
}

func TestGameDetailStatusRecomputedFromPayload(t *testing.T) {
	s := NewGameDetailState(100, domain.StatusLive)
	if s.Status() != domain.StatusLive {
		t.Fatalf("expected initial status before first payload, got %s", s.Status())
	}

	s.ApplyBoxscore(domain.Boxscore{Game: domain.Game{ID: 100, Status: domain.StatusFinal}})
	if s.Status() != domain.StatusFinal {
		t.Fatalf("expected status from fresh payload, got %s", s.Status())
	}
}

func TestGameDetailKeysAndTabs(t *testing.T) {
	s := NewGameDetailState(100, domain.StatusLive)
	keys := keySet(s.Keys())
	if !keys[nhl.BoxscoreKey(100)] || !keys[nhl.PlayByPlayKey(100)] {
		t.Fatalf("unexpected keys: %v", keys)
	}

	if s.Tab != TabBoxscore {
		t.Fatal("expected boxscore tab by default")
	}
	s.ToggleTab()
	if s.Tab != TabPlays {
		t.Fatal("expected plays tab after toggle")
	}
	// Tab switches never change the derived keys; both panes stay fetched.
	if len(s.Keys()) != 2 {
		t.Fatalf("expected 2 keys regardless of tab, got %d", len(s.Keys()))
	}
}

func TestStandingsWildCardGroups(t *testing.T) {
	s := NewStandingsState()
	s.Apply(domain.Standings{Rows: []domain.StandingRow{
		{TeamAbbrev: "BOS", Conference: "Eastern", Division: "Atlantic", WildcardRank: 0},
		{TeamAbbrev: "NYR", Conference: "Eastern", Division: "Metropolitan", WildcardRank: 0},
		{TeamAbbrev: "TBL", Conference: "Eastern", Division: "Atlantic", WildcardRank: 1},
		{TeamAbbrev: "COL", Conference: "Western", Division: "Central", WildcardRank: 0},
		{TeamAbbrev: "VGK", Conference: "Western", Division: "Pacific", WildcardRank: 2},
	}})

	groups := s.Groups()
	if len(groups) != 4 {
		t.Fatalf("expected 4 wild-card groups, got %d: %+v", len(groups), groups)
	}
	if groups[0].Title != "Eastern Division Leaders" || len(groups[0].Rows) != 2 {
		t.Fatalf("unexpected first group: %+v", groups[0])
	}
	if groups[1].Title != "Eastern Wild Card" || groups[1].Rows[0].TeamAbbrev != "TBL" {
		t.Fatalf("unexpected second group: %+v", groups[1])
	}

	s.Tab = TabDivision
	if got := len(s.Groups()); got != 4 {
		t.Fatalf("expected 4 division groups, got %d", got)
	}
	s.Tab = TabLeague
	if got := s.Groups(); len(got) != 1 || len(got[0].Rows) != 5 {
		t.Fatalf("unexpected league group: %+v", got)
	}
}

func TestStandingsNextTabCycles(t *testing.T) {
	s := NewStandingsState()
	tabs := []StandingsTab{TabDivision, TabConference, TabLeague, TabWildCard}
	for _, want := range tabs {
		s.NextTab()
		if s.Tab != want {
			t.Fatalf("expected tab %s, got %s", want, s.Tab)
		}
	}
}

func TestStatsKeysFollowActiveTab(t *testing.T) {
	s := NewStatsState()
	if keys := s.Keys(); len(keys) != 1 || keys[0] != nhl.SkaterLeadersKey() {
		t.Fatalf("expected skater leaders key, got %v", keys)
	}
	s.ToggleTab()
	if keys := s.Keys(); len(keys) != 1 || keys[0] != nhl.GoalieLeadersKey() {
		t.Fatalf("expected goalie leaders key, got %v", keys)
	}

	s.ApplyGoalies([]domain.LeaderCategory{{Category: "wins"}})
	board, ok := s.Active()
	if !ok || board[0].Category != "wins" {
		t.Fatalf("unexpected active board: %v %v", board, ok)
	}
}

func TestTeamsApplySortsByName(t *testing.T) {
	s := NewTeamsState()
	s.Apply(domain.Standings{Rows: []domain.StandingRow{
		{TeamAbbrev: "TOR", TeamName: "Toronto Maple Leafs"},
		{TeamAbbrev: "BOS", TeamName: "Boston Bruins"},
	}})

	if s.Teams[0].TeamAbbrev != "BOS" {
		t.Fatalf("expected alphabetical grid, got %+v", s.Teams)
	}
	if team, ok := s.Selected(); !ok || team.TeamAbbrev != "BOS" {
		t.Fatalf("unexpected selection: %v %v", team, ok)
	}
}

func TestTeamDetailKeysFollowActiveTab(t *testing.T) {
	s := NewTeamDetailState("BOS", "Boston Bruins")
	if keys := s.Keys(); keys[0] != nhl.RosterKey("BOS") {
		t.Fatalf("expected roster key, got %v", keys)
	}
	s.NextTab()
	if keys := s.Keys(); keys[0] != nhl.ClubScheduleKey("BOS") {
		t.Fatalf("expected club schedule key, got %v", keys)
	}
	s.NextTab()
	if keys := s.Keys(); keys[0] != nhl.ClubStatsKey("BOS") {
		t.Fatalf("expected club stats key, got %v", keys)
	}
	s.NextTab()
	if s.Tab != TabRoster {
		t.Fatalf("expected tab cycle back to roster, got %s", s.Tab)
	}
}

func TestTeamDetailPlayerSelection(t *testing.T) {
	s := NewTeamDetailState("BOS", "Boston Bruins")
	s.ApplyRoster([]domain.RosterPlayer{
		{PlayerID: 1, Name: "First Skater"},
		{PlayerID: 2, Name: "Second Skater"},
	})

	s.MoveCursor(1)
	player, ok := s.SelectedPlayer()
	if !ok || player.PlayerID != 2 {
		t.Fatalf("unexpected player selection: %v %v", player, ok)
	}

	s.NextTab() // schedule pane has no player selection
	if _, ok := s.SelectedPlayer(); ok {
		t.Fatal("expected no player selection outside roster tab")
	}
}

func TestPlayerKeys(t *testing.T) {
	s := NewPlayerState(8478402)
	keys := keySet(s.Keys())
	if !keys[nhl.PlayerKey(8478402)] || !keys[nhl.GameLogKey(8478402)] {
		t.Fatalf("unexpected keys: %v", keys)
	}
}

func TestFutureGameNoticeCarriesScheduledTime(t *testing.T) {
	g := domain.Game{
		Status:       domain.StatusScheduled,
		StartTimeUTC: time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
		Home:         domain.TeamSide{Abbrev: "BOS"},
		Away:         domain.TeamSide{Abbrev: "TOR"},
	}

	n := FutureGameNotice(g)
	if n.Kind != NoticeInfo {
		t.Fatalf("expected info notice, got %v", n.Kind)
	}
	if !strings.Contains(n.Text, "TOR @ BOS") || !strings.Contains(n.Text, "starts at") {
		t.Fatalf("unexpected notice text: %q", n.Text)
	}
	if strings.HasSuffix(n.Text, "starts at ") {
		t.Fatalf("expected a rendered time in %q", n.Text)
	}
}

func TestUnplayedGameNotice(t *testing.T) {
	postponed := UnplayedGameNotice(domain.Game{
		Status: domain.StatusPostponed,
		Home:   domain.TeamSide{Abbrev: "BOS"},
		Away:   domain.TeamSide{Abbrev: "TOR"},
	})
	if !strings.Contains(postponed.Text, "postponed") {
		t.Fatalf("unexpected text: %q", postponed.Text)
	}

	cancelled := UnplayedGameNotice(domain.Game{Status: domain.StatusCancelled})
	if !strings.Contains(cancelled.Text, "cancelled") {
		t.Fatalf("unexpected text: %q", cancelled.Text)
	}
}
