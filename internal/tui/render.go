package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"rinkside/internal/domain"
	"rinkside/internal/nav"
	"rinkside/internal/timeutil"
	"rinkside/internal/view"
)

// View renders the active screen with the shared frame: header, optional
// notice bar, body, help line.
func (a *App) View() string {
	entry := a.stack.Top()
	if entry == nil {
		return ""
	}
	sections := []string{a.renderHeader(entry)}
	if notice := a.renderNotice(); notice != "" {
		sections = append(sections, notice)
	}
	sections = append(sections, a.renderBody(entry), a.renderHelp(entry))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) renderHeader(entry *nav.Entry) string {
	title := "rinkside"
	var context string
	switch st := entry.State().(type) {
	case *view.ScheduleState:
		context = fmt.Sprintf("%s  %s", timeutil.DayLabel(st.Date, a.today()), st.Date)
	case *view.GameDetailState:
		if st.HasBox {
			g := st.Box.Game
			context = fmt.Sprintf("%s @ %s", g.Away.Abbrev, g.Home.Abbrev)
		} else {
			context = "Game"
		}
	case *view.StandingsState:
		context = "Standings"
	case *view.StatsState:
		context = "League Leaders"
	case *view.TeamsState:
		context = "Teams"
	case *view.TeamDetailState:
		context = st.Name
	case *view.PlayerState:
		if st.HasProfile {
			context = st.Profile.Name
		} else {
			context = "Player"
		}
	}
	return a.styles.Header.Render(title + "  " + context)
}

func (a *App) renderNotice() string {
	if a.notice == nil {
		return ""
	}
	switch a.notice.Kind {
	case view.NoticeWarn:
		return a.styles.NoticeWarn.Render(a.notice.Text)
	case view.NoticeError:
		return a.styles.NoticeErr.Render(a.notice.Text)
	default:
		return a.styles.NoticeInfo.Render(a.notice.Text)
	}
}

func (a *App) renderBody(entry *nav.Entry) string {
	switch st := entry.State().(type) {
	case *view.ScheduleState:
		return a.renderSchedule(st)
	case *view.GameDetailState:
		return a.renderGame(st)
	case *view.StandingsState:
		return a.renderStandings(st)
	case *view.StatsState:
		return a.renderStats(st)
	case *view.TeamsState:
		return a.renderTeams(st)
	case *view.TeamDetailState:
		return a.renderTeamDetail(st)
	case *view.PlayerState:
		return a.renderPlayer(st)
	}
	return ""
}

func (a *App) renderHelp(entry *nav.Entry) string {
	var help string
	switch entry.Kind() {
	case nav.KindSchedule:
		help = "←/→ day · t today · ↑/↓ select · enter open · s standings · p leaders · m teams · r refresh · q quit"
	case nav.KindGame:
		help = "tab boxscore/plays · ↑/↓ scroll · r refresh · esc back · q quit"
	case nav.KindStandings, nav.KindStats:
		help = "tab switch view · r refresh · esc back · q quit"
	case nav.KindTeams:
		help = "↑/↓ select · enter open · r refresh · esc back · q quit"
	case nav.KindTeamDetail:
		help = "tab roster/schedule/stats · ↑/↓ select · enter player · esc back · q quit"
	default:
		help = "r refresh · esc back · q quit"
	}
	return a.styles.Help.Render(help)
}

func (a *App) renderLoading(what string) string {
	return fmt.Sprintf("\n %s loading %s\n", a.spin.View(), what)
}

// renderSchedule lays the day's games out as cards, three per row.
func (a *App) renderSchedule(st *view.ScheduleState) string {
	if !st.Loaded {
		return a.renderLoading("schedule")
	}
	if len(st.Day.Games) == 0 {
		return a.styles.Dim.Render("\n no games on this date\n")
	}

	cards := make([]string, 0, len(st.Day.Games))
	for i, g := range st.Day.Games {
		cards = append(cards, a.renderGameCard(g, i == st.Cursor))
	}

	const perRow = 3
	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := start + perRow
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}
	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	if st.LastErr != nil {
		body = lipgloss.JoinVertical(lipgloss.Left, body,
			a.styles.NoticeErr.Render("last refresh failed; showing previous data"))
	}
	return body
}

func (a *App) renderGameCard(g domain.Game, focused bool) string {
	style := a.styles.Card
	if g.Status == domain.StatusLive {
		style = a.styles.CardLive
	}
	if focused {
		style = a.styles.CardFocus
	}

	matchup := fmt.Sprintf("%-12s %s", g.Away.Abbrev, a.styles.Score.Render(fmt.Sprintf("%2d", g.Away.Score)))
	matchup += "\n" + fmt.Sprintf("%-12s %s", g.Home.Abbrev, a.styles.Score.Render(fmt.Sprintf("%2d", g.Home.Score)))
	return style.Render(matchup + "\n" + a.statusLine(g))
}

func (a *App) statusLine(g domain.Game) string {
	switch g.Status {
	case domain.StatusLive:
		return a.styles.Live.Render(fmt.Sprintf("P%d %s", g.Period, g.Clock))
	case domain.StatusFinal:
		label := "Final"
		if g.PeriodType == "OT" || g.PeriodType == "SO" {
			label = "Final/" + g.PeriodType
		}
		return a.styles.Final.Render(label)
	case domain.StatusPostponed:
		return a.styles.Dim.Render("Postponed")
	case domain.StatusCancelled:
		return a.styles.Dim.Render("Cancelled")
	default:
		return a.styles.Dim.Render(timeutil.LocalTime(g.StartTimeUTC))
	}
}
