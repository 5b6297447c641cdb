package tui

import "rinkside/internal/cache"

// tickMsg is a refresh scheduler firing for the screen that owns it.
type tickMsg struct {
	screenID int64
}

// fetchResultMsg carries one completed fetch back into the program loop.
// screenID names the screen that issued the fetch; results for a screen
// that is no longer active are dropped, never applied.
type fetchResultMsg struct {
	screenID int64
	key      cache.Key
	payload  any
	err      error
}

// noticeTimeoutMsg expires the transient notice bar. seq guards against an
// old timeout clearing a newer notice.
type noticeTimeoutMsg struct {
	seq int
}
