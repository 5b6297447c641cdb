package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"rinkside/internal/domain"
	"rinkside/internal/timeutil"
	"rinkside/internal/view"
)

// renderTable builds a one-shot bubbles table. cursor highlights a row;
// pass -1 for display-only tables.
func (a *App) renderTable(cols []table.Column, rows []table.Row, cursor int) string {
	height := len(rows)
	if height == 0 {
		height = 1
	}
	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithHeight(height),
	)
	st := table.DefaultStyles()
	st.Header = a.styles.TableHead
	if cursor >= 0 {
		st.Selected = a.styles.RowFocus
		t.SetCursor(cursor)
	} else {
		st.Selected = lipgloss.NewStyle()
	}
	t.SetStyles(st)
	return t.View()
}

var standingColumns = []table.Column{
	{Title: "Team", Width: 24},
	{Title: "GP", Width: 3},
	{Title: "W", Width: 3},
	{Title: "L", Width: 3},
	{Title: "OT", Width: 3},
	{Title: "PTS", Width: 4},
	{Title: "DIFF", Width: 5},
}

func standingRows(rows []domain.StandingRow) []table.Row {
	out := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, table.Row{
			r.TeamName,
			fmt.Sprint(r.GamesPlayed), fmt.Sprint(r.Wins), fmt.Sprint(r.Losses),
			fmt.Sprint(r.OTLosses), fmt.Sprint(r.Points), fmt.Sprintf("%+d", r.GoalDiff),
		})
	}
	return out
}

func (a *App) renderStandings(st *view.StandingsState) string {
	if !st.Loaded {
		return a.renderLoading("standings")
	}
	tabs := a.renderTabs([]string{
		view.TabWildCard.String(), view.TabDivision.String(),
		view.TabConference.String(), view.TabLeague.String(),
	}, int(st.Tab))

	sections := []string{tabs}
	for _, group := range st.Groups() {
		sections = append(sections,
			a.styles.GroupTitle.Render(group.Title),
			a.renderTable(standingColumns, standingRows(group.Rows), -1))
	}
	if st.LastErr != nil {
		sections = append(sections, a.styles.NoticeErr.Render("last refresh failed; showing previous data"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) renderStats(st *view.StatsState) string {
	tabs := a.renderTabs([]string{view.TabSkaters.String(), view.TabGoalies.String()}, int(st.Tab))
	board, loaded := st.Active()
	if !loaded {
		return lipgloss.JoinVertical(lipgloss.Left, tabs, a.renderLoading("leaders"))
	}

	cols := []table.Column{
		{Title: "Player", Width: 22},
		{Title: "Team", Width: 4},
		{Title: "Value", Width: 7},
	}
	sections := []string{tabs}
	for _, cat := range board {
		rows := make([]table.Row, 0, len(cat.Leaders))
		for _, l := range cat.Leaders {
			rows = append(rows, table.Row{l.Name, l.TeamAbbrev, formatLeaderValue(l.Value)})
		}
		sections = append(sections,
			a.styles.GroupTitle.Render(cat.Category),
			a.renderTable(cols, rows, -1))
	}
	if st.LastErr != nil {
		sections = append(sections, a.styles.NoticeErr.Render("last refresh failed; showing previous data"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// formatLeaderValue keeps counting stats as integers and rate stats with
// their precision.
func formatLeaderValue(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.3f", v)
}

func (a *App) renderTeams(st *view.TeamsState) string {
	if !st.Loaded {
		return a.renderLoading("teams")
	}
	cols := []table.Column{
		{Title: "Team", Width: 26},
		{Title: "Div", Width: 14},
		{Title: "PTS", Width: 4},
	}
	rows := make([]table.Row, 0, len(st.Teams))
	for _, team := range st.Teams {
		rows = append(rows, table.Row{team.TeamName, team.Division, fmt.Sprint(team.Points)})
	}
	body := a.renderTable(cols, rows, st.Cursor)
	if st.LastErr != nil {
		body = lipgloss.JoinVertical(lipgloss.Left, body,
			a.styles.NoticeErr.Render("last refresh failed; showing previous data"))
	}
	return body
}

func (a *App) renderTeamDetail(st *view.TeamDetailState) string {
	tabs := a.renderTabs([]string{
		view.TabRoster.String(), view.TabTeamSchedule.String(), view.TabTeamStats.String(),
	}, int(st.Tab))

	var pane string
	switch st.Tab {
	case view.TabTeamSchedule:
		pane = a.renderTeamSchedulePane(st)
	case view.TabTeamStats:
		pane = a.renderTeamStatsPane(st)
	default:
		pane = a.renderRosterPane(st)
	}

	sections := []string{tabs, pane}
	if st.LastErr != nil {
		sections = append(sections, a.styles.NoticeErr.Render("last refresh failed; showing previous data"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) renderRosterPane(st *view.TeamDetailState) string {
	if !st.HasRoster {
		return a.renderLoading("roster")
	}
	cols := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Player", Width: 24},
		{Title: "Pos", Width: 3},
	}
	rows := make([]table.Row, 0, len(st.Roster))
	for _, p := range st.Roster {
		rows = append(rows, table.Row{fmt.Sprint(p.Number), p.Name, p.Position})
	}
	return a.renderTable(cols, rows, st.Cursor)
}

func (a *App) renderTeamSchedulePane(st *view.TeamDetailState) string {
	if !st.HasSchedule {
		return a.renderLoading("schedule")
	}
	if len(st.Games) == 0 {
		return a.styles.Dim.Render("no games this week")
	}
	cols := []table.Column{
		{Title: "Date", Width: 10},
		{Title: "Matchup", Width: 14},
		{Title: "Status", Width: 16},
	}
	rows := make([]table.Row, 0, len(st.Games))
	for _, g := range st.Games {
		matchup := fmt.Sprintf("%s @ %s", g.Away.Abbrev, g.Home.Abbrev)
		var status string
		switch g.Status {
		case domain.StatusLive:
			status = fmt.Sprintf("LIVE %d-%d", g.Away.Score, g.Home.Score)
		case domain.StatusFinal:
			status = fmt.Sprintf("F %d-%d", g.Away.Score, g.Home.Score)
		default:
			status = timeutil.LocalTime(g.StartTimeUTC)
		}
		rows = append(rows, table.Row{g.Date, matchup, status})
	}
	return a.renderTable(cols, rows, -1)
}

func (a *App) renderTeamStatsPane(st *view.TeamDetailState) string {
	if !st.HasStats {
		return a.renderLoading("stats")
	}
	sections := []string{
		a.styles.GroupTitle.Render("Skaters"),
		a.renderSkaterTable(st.Stats.Skaters),
	}
	if len(st.Stats.Goalies) > 0 {
		sections = append(sections,
			a.styles.GroupTitle.Render("Goalies"),
			a.renderGoalieLines(st.Stats.Goalies))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) renderPlayer(st *view.PlayerState) string {
	if !st.HasProfile {
		return a.renderLoading("player")
	}
	p := st.Profile

	bio := fmt.Sprintf("#%d  %s  %s", p.Number, p.Position, p.TeamAbbrev)
	if p.Height != "" {
		bio += fmt.Sprintf("  %s %dlb", p.Height, p.Weight)
	}
	if p.Birthdate != "" {
		bio += "  b. " + p.Birthdate
	}
	sections := []string{
		a.styles.Title.Render(p.Name),
		a.styles.Dim.Render(bio),
	}

	if len(p.SeasonStat) > 0 {
		season := fmt.Sprintf("season: GP %s  G %s  A %s  P %s",
			p.SeasonStat["gamesPlayed"], p.SeasonStat["goals"],
			p.SeasonStat["assists"], p.SeasonStat["points"])
		sections = append(sections, season)
	}

	if st.HasLog && len(st.GameLog) > 0 {
		cols := []table.Column{
			{Title: "Date", Width: 10},
			{Title: "Opp", Width: 4},
			{Title: "G", Width: 3},
			{Title: "A", Width: 3},
			{Title: "P", Width: 3},
			{Title: "TOI", Width: 6},
		}
		limit := len(st.GameLog)
		if limit > 10 {
			limit = 10
		}
		rows := make([]table.Row, 0, limit)
		for _, e := range st.GameLog[:limit] {
			rows = append(rows, table.Row{
				e.Date, e.Opponent,
				fmt.Sprint(e.Goals), fmt.Sprint(e.Assists), fmt.Sprint(e.Points), e.TOI,
			})
		}
		sections = append(sections,
			a.styles.GroupTitle.Render("Recent games"),
			a.renderTable(cols, rows, -1))
	}

	if st.LastErr != nil {
		sections = append(sections, a.styles.NoticeErr.Render("last refresh failed; showing previous data"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
