package nhl

import (
	"strconv"

	"rinkside/internal/cache"
)

// Endpoint names double as the first component of cache keys and as the
// label on gateway metrics.
const (
	EndpointSchedule      = "schedule"
	EndpointBoxscore      = "boxscore"
	EndpointPlayByPlay    = "play-by-play"
	EndpointStandings     = "standings"
	EndpointSkaterLeaders = "skater-leaders"
	EndpointGoalieLeaders = "goalie-leaders"
	EndpointRoster        = "roster"
	EndpointClubSchedule  = "club-schedule"
	EndpointClubStats     = "club-stats"
	EndpointPlayer        = "player"
	EndpointGameLog       = "game-log"
)

// Class buckets endpoints by how quickly their data goes stale, which picks
// the cache TTL.
type Class int

const (
	// ClassLive covers per-game detail that changes play to play.
	ClassLive Class = iota
	// ClassSchedule covers a day's slate, which changes as games start and end.
	ClassSchedule
	// ClassStatic covers reference data: standings, rosters, profiles.
	ClassStatic
)

// ClassFor returns the TTL class for an endpoint. Unknown endpoints get the
// schedule class as a middle ground.
func ClassFor(endpoint string) Class {
	switch endpoint {
	case EndpointBoxscore, EndpointPlayByPlay:
		return ClassLive
	case EndpointSchedule, EndpointClubSchedule:
		return ClassSchedule
	case EndpointStandings, EndpointSkaterLeaders, EndpointGoalieLeaders,
		EndpointRoster, EndpointClubStats, EndpointPlayer, EndpointGameLog:
		return ClassStatic
	default:
		return ClassSchedule
	}
}

// Key constructors. Screens derive these to declare the resources they need;
// the client uses the same constructors so identical requests share a cache
// entry.

func ScheduleKey(date string) cache.Key {
	return cache.NewKey(EndpointSchedule, date)
}

func BoxscoreKey(gameID int) cache.Key {
	return cache.NewKey(EndpointBoxscore, strconv.Itoa(gameID))
}

func PlayByPlayKey(gameID int) cache.Key {
	return cache.NewKey(EndpointPlayByPlay, strconv.Itoa(gameID))
}

func StandingsKey() cache.Key {
	return cache.NewKey(EndpointStandings)
}

func SkaterLeadersKey() cache.Key {
	return cache.NewKey(EndpointSkaterLeaders)
}

func GoalieLeadersKey() cache.Key {
	return cache.NewKey(EndpointGoalieLeaders)
}

func RosterKey(teamAbbrev string) cache.Key {
	return cache.NewKey(EndpointRoster, teamAbbrev)
}

func ClubScheduleKey(teamAbbrev string) cache.Key {
	return cache.NewKey(EndpointClubSchedule, teamAbbrev)
}

func ClubStatsKey(teamAbbrev string) cache.Key {
	return cache.NewKey(EndpointClubStats, teamAbbrev)
}

func PlayerKey(playerID int) cache.Key {
	return cache.NewKey(EndpointPlayer, strconv.Itoa(playerID))
}

func GameLogKey(playerID int) cache.Key {
	return cache.NewKey(EndpointGameLog, strconv.Itoa(playerID))
}
