package nhl

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"rinkside/internal/domain"
)

func mapGame(g gameResponse) domain.Game {
	return domain.Game{
		ID:           g.ID,
		Date:         g.GameDate,
		StartTimeUTC: parseUTC(g.StartTimeUTC),
		Status:       domain.StatusFrom(g.GameState, g.GameScheduleState),
		Home:         mapTeamSide(g.HomeTeam),
		Away:         mapTeamSide(g.AwayTeam),
		Period:       g.PeriodDescriptor.Number,
		PeriodType:   g.PeriodDescriptor.PeriodType,
		Clock:        g.Clock.TimeRemaining,
		Venue:        g.Venue.Default,
	}
}

func mapTeamSide(t teamResponse) domain.TeamSide {
	name := strings.TrimSpace(t.PlaceName.Default + " " + t.CommonName.Default)
	return domain.TeamSide{
		Abbrev: t.Abbrev,
		Name:   name,
		Score:  t.Score,
		SOG:    t.SOG,
	}
}

// mapScheduleDay extracts the requested date's games from the week payload
// the schedule endpoint returns.
func mapScheduleDay(resp scheduleResponse, date string) domain.ScheduleDay {
	day := domain.ScheduleDay{Date: date}
	for _, d := range resp.GameWeek {
		if d.Date != date {
			continue
		}
		for _, g := range d.Games {
			day.Games = append(day.Games, mapGame(g))
		}
		break
	}
	return day
}

func mapBoxscore(resp boxscoreResponse) domain.Boxscore {
	box := domain.Boxscore{Game: mapGame(resp.gameResponse)}

	home := resp.PlayerByGameStats.HomeTeam
	away := resp.PlayerByGameStats.AwayTeam
	box.HomeSkaters = mapSkaters(append(home.Forwards, home.Defense...))
	box.AwaySkaters = mapSkaters(append(away.Forwards, away.Defense...))
	box.HomeGoalies = mapGoalies(home.Goalies)
	box.AwayGoalies = mapGoalies(away.Goalies)

	for _, p := range resp.Summary.Linescore.ByPeriod {
		box.Periods = append(box.Periods, domain.PeriodScore{
			Period: p.PeriodDescriptor.Number,
			Home:   p.Home,
			Away:   p.Away,
		})
	}
	return box
}

func mapSkaters(stats []skaterStats) []domain.SkaterLine {
	lines := make([]domain.SkaterLine, 0, len(stats))
	for _, s := range stats {
		lines = append(lines, domain.SkaterLine{
			PlayerID: s.PlayerID,
			Name:     s.Name.Default,
			Position: s.Position,
			Goals:    s.Goals,
			Assists:  s.Assists,
			Points:   s.Points,
			Shots:    s.SOG,
			TOI:      s.TOI,
		})
	}
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].Points > lines[j].Points })
	return lines
}

func mapGoalies(stats []goalieStats) []domain.GoalieLine {
	lines := make([]domain.GoalieLine, 0, len(stats))
	for _, g := range stats {
		saves, faced := parseSaveShots(g.SaveShotsAgainst)
		lines = append(lines, domain.GoalieLine{
			PlayerID:   g.PlayerID,
			Name:       g.Name.Default,
			Saves:      saves,
			ShotsFaced: faced,
			SavePct:    g.SavePctg,
			TOI:        g.TOI,
		})
	}
	return lines
}

// parseSaveShots splits the "24/26" saves-over-shots form the boxscore uses.
func parseSaveShots(raw string) (saves, shots int) {
	parts := strings.SplitN(raw, "/", 2)
	if len(parts) != 2 {
		return 0, 0
	}
	saves, _ = strconv.Atoi(strings.TrimSpace(parts[0]))
	shots, _ = strconv.Atoi(strings.TrimSpace(parts[1]))
	return saves, shots
}

func mapPlayByPlay(resp playByPlayResponse) domain.PlayByPlay {
	pbp := domain.PlayByPlay{GameID: resp.ID}
	for _, p := range resp.Plays {
		pbp.Plays = append(pbp.Plays, domain.Play{
			Period:      p.PeriodDescriptor.Number,
			TimeInClock: p.TimeInPeriod,
			TypeKey:     p.TypeDescKey,
			Description: describePlay(p),
		})
	}
	return pbp
}

func describePlay(p playResponse) string {
	desc := strings.ReplaceAll(p.TypeDescKey, "-", " ")
	if p.Details.ShotType != "" {
		desc = fmt.Sprintf("%s (%s)", desc, p.Details.ShotType)
	} else if p.Details.Reason != "" {
		desc = fmt.Sprintf("%s (%s)", desc, p.Details.Reason)
	}
	return desc
}

func mapStandings(resp standingsResponse) domain.Standings {
	s := domain.Standings{}
	for _, row := range resp.Standings {
		s.Rows = append(s.Rows, domain.StandingRow{
			TeamAbbrev:   row.TeamAbbrev.Default,
			TeamName:     row.TeamName.Default,
			Conference:   row.ConferenceName,
			Division:     row.DivisionName,
			GamesPlayed:  row.GamesPlayed,
			Wins:         row.Wins,
			Losses:       row.Losses,
			OTLosses:     row.OTLosses,
			Points:       row.Points,
			GoalDiff:     row.GoalDifferential,
			WildcardRank: row.WildcardSequence,
		})
	}
	return s
}

// preferredCategoryOrder pins the well-known categories ahead of anything
// new the API starts returning.
var preferredCategoryOrder = []string{
	"points", "goals", "assists",
	"wins", "savePctg", "goalsAgainstAverage", "shutouts",
}

func mapLeaders(resp leadersResponse) []domain.LeaderCategory {
	seen := make(map[string]bool)
	var categories []domain.LeaderCategory

	appendCategory := func(name string) {
		rows, ok := resp[name]
		if !ok || seen[name] {
			return
		}
		seen[name] = true
		cat := domain.LeaderCategory{Category: name}
		for _, l := range rows {
			cat.Leaders = append(cat.Leaders, domain.Leader{
				PlayerID:   l.ID,
				Name:       strings.TrimSpace(l.FirstName.Default + " " + l.LastName.Default),
				TeamAbbrev: l.TeamAbbrev,
				Value:      l.Value,
			})
		}
		categories = append(categories, cat)
	}

	for _, name := range preferredCategoryOrder {
		appendCategory(name)
	}
	rest := make([]string, 0, len(resp))
	for name := range resp {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		appendCategory(name)
	}
	return categories
}

func mapRoster(resp rosterResponse) []domain.RosterPlayer {
	var players []domain.RosterPlayer
	for _, group := range [][]rosterPlayerResponse{resp.Forwards, resp.Defensemen, resp.Goalies} {
		for _, p := range group {
			players = append(players, domain.RosterPlayer{
				PlayerID: p.ID,
				Name:     strings.TrimSpace(p.FirstName.Default + " " + p.LastName.Default),
				Number:   p.SweaterNumber,
				Position: p.PositionCode,
			})
		}
	}
	return players
}

func mapClubStats(resp clubStatsResponse) domain.ClubStats {
	stats := domain.ClubStats{}
	for _, s := range resp.Skaters {
		stats.Skaters = append(stats.Skaters, domain.SkaterLine{
			PlayerID: s.PlayerID,
			Name:     strings.TrimSpace(s.FirstName.Default + " " + s.LastName.Default),
			Position: s.Position,
			Goals:    s.Goals,
			Assists:  s.Assists,
			Points:   s.Points,
			Shots:    s.Shots,
		})
	}
	for _, g := range resp.Goalies {
		stats.Goalies = append(stats.Goalies, domain.GoalieLine{
			PlayerID:   g.PlayerID,
			Name:       strings.TrimSpace(g.FirstName.Default + " " + g.LastName.Default),
			Saves:      g.Saves,
			ShotsFaced: g.ShotsAgainst,
			SavePct:    fmt.Sprintf("%.3f", g.SavePercentage),
		})
	}
	return stats
}

func mapPlayerProfile(resp playerLandingResponse) domain.PlayerProfile {
	season := resp.FeaturedStats.RegularSeason.SubSeason
	profile := domain.PlayerProfile{
		PlayerID:   resp.PlayerID,
		Name:       strings.TrimSpace(resp.FirstName.Default + " " + resp.LastName.Default),
		TeamAbbrev: resp.CurrentTeamAbbrev,
		Number:     resp.SweaterNumber,
		Position:   resp.Position,
		Weight:     resp.WeightInPounds,
		Birthdate:  resp.BirthDate,
	}
	if resp.HeightInInches > 0 {
		profile.Height = fmt.Sprintf("%d'%d\"", resp.HeightInInches/12, resp.HeightInInches%12)
	}
	if season.GamesPlayed > 0 {
		profile.SeasonStat = map[string]string{
			"gamesPlayed": strconv.Itoa(season.GamesPlayed),
			"goals":       strconv.Itoa(season.Goals),
			"assists":     strconv.Itoa(season.Assists),
			"points":      strconv.Itoa(season.Points),
		}
	}
	return profile
}

func mapGameLog(resp gameLogResponse) []domain.GameLogEntry {
	var entries []domain.GameLogEntry
	for _, e := range resp.GameLog {
		entries = append(entries, domain.GameLogEntry{
			GameID:   e.GameID,
			Date:     e.GameDate,
			Opponent: e.OpponentAbbrev,
			Goals:    e.Goals,
			Assists:  e.Assists,
			Points:   e.Points,
			TOI:      e.TOI,
		})
	}
	return entries
}

func parseUTC(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}
