package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"rinkside/internal/domain"
	"rinkside/internal/view"
)

func (a *App) renderGame(st *view.GameDetailState) string {
	if !st.HasBox {
		return a.renderLoading("game")
	}

	header := a.renderGameHeader(st.Box)
	tabs := a.renderTabs([]string{view.TabBoxscore.String(), view.TabPlays.String()}, int(st.Tab))

	var pane string
	if st.Tab == view.TabPlays {
		pane = a.renderPlaysPane(st)
	} else {
		pane = a.renderBoxscorePane(st.Box)
	}

	sections := []string{header, tabs, pane}
	if st.LastErr != nil {
		sections = append(sections, a.styles.NoticeErr.Render("last refresh failed; showing previous data"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) renderGameHeader(box domain.Boxscore) string {
	g := box.Game
	line := fmt.Sprintf("%s %d  @  %s %d   %s",
		g.Away.Abbrev, g.Away.Score, g.Home.Abbrev, g.Home.Score, a.statusLine(g))
	if len(box.Periods) == 0 {
		return a.styles.Title.Render(line)
	}

	var b strings.Builder
	b.WriteString("per:")
	for _, p := range box.Periods {
		fmt.Fprintf(&b, "  %d: %d-%d", p.Period, p.Away, p.Home)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		a.styles.Title.Render(line),
		a.styles.Dim.Render(b.String()))
}

func (a *App) renderBoxscorePane(box domain.Boxscore) string {
	sections := []string{
		a.styles.GroupTitle.Render(box.Game.Away.Abbrev + " skaters"),
		a.renderSkaterTable(box.AwaySkaters),
		a.renderGoalieLines(box.AwayGoalies),
		a.styles.GroupTitle.Render(box.Game.Home.Abbrev + " skaters"),
		a.renderSkaterTable(box.HomeSkaters),
		a.renderGoalieLines(box.HomeGoalies),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) renderSkaterTable(skaters []domain.SkaterLine) string {
	cols := []table.Column{
		{Title: "Player", Width: 22},
		{Title: "Pos", Width: 3},
		{Title: "G", Width: 3},
		{Title: "A", Width: 3},
		{Title: "P", Width: 3},
		{Title: "SOG", Width: 4},
		{Title: "TOI", Width: 6},
	}
	rows := make([]table.Row, 0, len(skaters))
	for _, s := range skaters {
		rows = append(rows, table.Row{
			s.Name, s.Position,
			fmt.Sprint(s.Goals), fmt.Sprint(s.Assists), fmt.Sprint(s.Points),
			fmt.Sprint(s.Shots), s.TOI,
		})
	}
	return a.renderTable(cols, rows, -1)
}

func (a *App) renderGoalieLines(goalies []domain.GoalieLine) string {
	if len(goalies) == 0 {
		return ""
	}
	lines := make([]string, 0, len(goalies))
	for _, g := range goalies {
		lines = append(lines, a.styles.Dim.Render(
			fmt.Sprintf("G %s  %d/%d saves  %s", g.Name, g.Saves, g.ShotsFaced, g.SavePct)))
	}
	return strings.Join(lines, "\n")
}

// renderPlaysPane shows the event feed newest first inside the scrollable
// viewport.
func (a *App) renderPlaysPane(st *view.GameDetailState) string {
	if !st.HasPlays {
		return a.renderLoading("plays")
	}
	if len(st.Plays.Plays) == 0 {
		return a.styles.Dim.Render("no events yet")
	}

	var b strings.Builder
	for i := len(st.Plays.Plays) - 1; i >= 0; i-- {
		p := st.Plays.Plays[i]
		fmt.Fprintf(&b, "P%d %5s  %s\n", p.Period, p.TimeInClock, p.Description)
	}
	a.playsView.SetContent(strings.TrimRight(b.String(), "\n"))
	return a.playsView.View()
}

func (a *App) renderTabs(names []string, active int) string {
	rendered := make([]string, 0, len(names))
	for i, name := range names {
		if i == active {
			rendered = append(rendered, a.styles.TabActive.Render(name))
		} else {
			rendered = append(rendered, a.styles.TabIdle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
