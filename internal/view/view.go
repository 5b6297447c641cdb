// Package view holds the per-screen view models. Each state owns the
// screen's navigation parameters and last-fetched payloads, and derives the
// set of cache keys the screen needs through a pure Keys method. Key
// derivation never performs I/O; fetching is the caller's job.
package view

import (
	"fmt"

	"rinkside/internal/domain"
	"rinkside/internal/timeutil"
)

// NoticeKind distinguishes transient notice styles.
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeWarn
	NoticeError
)

// Notice is a transient, non-modal message surfaced over the active screen.
type Notice struct {
	Kind NoticeKind
	Text string
}

// FutureGameNotice explains that a game has not started yet, with its
// scheduled local start time. Selecting a future game surfaces this instead
// of opening a detail screen.
func FutureGameNotice(g domain.Game) Notice {
	when := timeutil.LocalTime(g.StartTimeUTC)
	return Notice{
		Kind: NoticeInfo,
		Text: fmt.Sprintf("%s @ %s starts at %s", g.Away.Abbrev, g.Home.Abbrev, when),
	}
}

// UnplayedGameNotice covers postponed and cancelled games, which also have
// no detail to open.
func UnplayedGameNotice(g domain.Game) Notice {
	state := "postponed"
	if g.Status == domain.StatusCancelled {
		state = "cancelled"
	}
	return Notice{
		Kind: NoticeWarn,
		Text: fmt.Sprintf("%s @ %s is %s", g.Away.Abbrev, g.Home.Abbrev, state),
	}
}

// RefreshNotice confirms an explicit user refresh.
func RefreshNotice() Notice {
	return Notice{Kind: NoticeInfo, Text: "refreshing"}
}

// FetchErrorNotice reports a failed fetch without tearing the screen down.
func FetchErrorNotice(err error) Notice {
	return Notice{Kind: NoticeError, Text: "fetch failed: " + err.Error()}
}
