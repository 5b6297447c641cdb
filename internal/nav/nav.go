// Package nav owns the screen stack. Each entry pairs a screen's view
// state with its refresh scheduler; popping an entry stops the scheduler
// and destroys the state, and the entry id is how late fetch results for a
// dead screen get recognized and dropped.
package nav

import (
	"log/slog"

	"rinkside/internal/logging"
	"rinkside/internal/refresh"
)

// Kind names a screen type.
type Kind int

const (
	KindSchedule Kind = iota
	KindGame
	KindStandings
	KindStats
	KindTeams
	KindTeamDetail
	KindPlayer
)

var kindNames = []string{"schedule", "game", "standings", "stats", "teams", "team", "player"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Entry is one live screen on the stack.
type Entry struct {
	id    int64
	kind  Kind
	state any
	sched *refresh.Scheduler
}

// ID returns the entry's unique id. Ids are never reused, so a message
// tagged with an id from a popped screen can never match a live one.
func (e *Entry) ID() int64 { return e.id }

// Kind returns the screen type.
func (e *Entry) Kind() Kind { return e.kind }

// State returns the screen's view state, or nil once the entry is popped.
func (e *Entry) State() any { return e.state }

// Scheduler returns the screen's refresh scheduler.
func (e *Entry) Scheduler() *refresh.Scheduler { return e.sched }

// Stack is the navigation stack. The bottom entry is the root screen and
// cannot be popped.
type Stack struct {
	logger  *slog.Logger
	nextID  int64
	entries []*Entry
}

// NewStack constructs an empty stack.
func NewStack(logger *slog.Logger) *Stack {
	return &Stack{logger: logger}
}

// Push puts a new screen on top. The screen beneath keeps its state and
// scheduler; it is merely covered.
func (s *Stack) Push(kind Kind, state any, sched *refresh.Scheduler) *Entry {
	s.nextID++
	entry := &Entry{id: s.nextID, kind: kind, state: state, sched: sched}
	s.entries = append(s.entries, entry)
	logging.Debug(s.logger, "screen pushed",
		slog.String(logging.FieldScreen, kind.String()),
		slog.Int64("screen_id", entry.id),
		slog.Int("depth", len(s.entries)))
	return entry
}

// Pop removes the top screen, stopping its scheduler and destroying its
// state, and returns the resumed screen beneath. The resumed screen is not
// refetched; it renders whatever it last had until its own cadence or an
// explicit refresh fires. The root screen cannot be popped.
func (s *Stack) Pop() (*Entry, bool) {
	if len(s.entries) <= 1 {
		return s.Top(), false
	}
	top := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	if top.sched != nil {
		top.sched.Stop()
	}
	top.state = nil
	logging.Debug(s.logger, "screen popped",
		slog.String(logging.FieldScreen, top.kind.String()),
		slog.Int64("screen_id", top.id),
		slog.Int("depth", len(s.entries)))
	return s.Top(), true
}

// Top returns the active screen, or nil on an empty stack.
func (s *Stack) Top() *Entry {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1]
}

// IsActive reports whether the given id belongs to the active screen.
// Results for inactive ids must be dropped, not rendered.
func (s *Stack) IsActive(id int64) bool {
	top := s.Top()
	return top != nil && top.id == id
}

// Depth returns the number of live screens.
func (s *Stack) Depth() int { return len(s.entries) }

// StopAll stops every screen's scheduler, top first. Used on app exit.
func (s *Stack) StopAll() {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if sched := s.entries[i].sched; sched != nil {
			sched.Stop()
		}
	}
}
