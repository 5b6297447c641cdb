// Package refresh drives per-screen refresh timers. Each screen owns one
// Scheduler; the scheduler fires ticks at a cadence chosen from what the
// screen is showing, and the screen reacts to a tick by re-deriving and
// re-fetching its resources.
package refresh

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"rinkside/internal/domain"
	"rinkside/internal/logging"
)

// Cadence classifies how fast a screen should refresh.
type Cadence int

const (
	// CadenceNone leaves the screen unrefreshed until the user asks.
	CadenceNone Cadence = iota
	// CadenceSlow suits schedules and mostly-settled data.
	CadenceSlow
	// CadenceFast suits in-progress games.
	CadenceFast
)

func (c Cadence) String() string {
	switch c {
	case CadenceFast:
		return "fast"
	case CadenceSlow:
		return "slow"
	default:
		return "none"
	}
}

// CadenceFor picks the refresh cadence for a game detail screen. Live games
// refresh fast; upcoming games refresh slow so the transition to live is
// picked up; settled games do not refresh at all.
func CadenceFor(status domain.GameStatus) Cadence {
	switch status {
	case domain.StatusLive:
		return CadenceFast
	case domain.StatusScheduled:
		return CadenceSlow
	default:
		return CadenceNone
	}
}

// Intervals holds the concrete durations behind the cadence classes.
type Intervals struct {
	Fast time.Duration
	Slow time.Duration
}

const (
	defaultFastInterval = 10 * time.Second
	defaultSlowInterval = 30 * time.Second
)

// Scheduler fires refresh ticks for a single screen until stopped. At most
// one timer is armed at a time; reclassifying re-arms it at the new
// interval, and Stop guarantees no tick is delivered afterwards.
type Scheduler struct {
	screen    string
	intervals Intervals
	send      func()
	logger    *slog.Logger

	mu       sync.Mutex
	cadence  Cadence
	started  bool
	stopped  bool
	reclass  chan Cadence
	done     chan struct{}
	stopOnce sync.Once
}

// New constructs a scheduler for the named screen. send is invoked once per
// tick; it must be safe to call from the scheduler's goroutine.
func New(screen string, intervals Intervals, logger *slog.Logger, send func()) *Scheduler {
	if intervals.Fast <= 0 {
		intervals.Fast = defaultFastInterval
	}
	if intervals.Slow <= 0 {
		intervals.Slow = defaultSlowInterval
	}
	return &Scheduler{
		screen:    screen,
		intervals: intervals,
		send:      send,
		logger:    logger,
		reclass:   make(chan Cadence, 1),
		done:      make(chan struct{}),
	}
}

// Start arms the timer at the given cadence and begins delivering ticks
// until the context is cancelled or Stop is called. Starting twice is a
// no-op.
func (s *Scheduler) Start(ctx context.Context, cadence Cadence) {
	s.mu.Lock()
	if s.started || s.stopped {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.cadence = cadence
	s.mu.Unlock()

	logging.Debug(s.logger, "refresh scheduler started",
		slog.String(logging.FieldScreen, s.screen),
		slog.String(logging.FieldCadence, cadence.String()))

	go s.run(ctx, cadence)
}

func (s *Scheduler) run(ctx context.Context, cadence Cadence) {
	ticker, tickC := s.arm(nil, cadence)
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.done:
			return
		case next := <-s.reclass:
			ticker, tickC = s.arm(ticker, next)
		case <-tickC:
			s.emit()
		}
	}
}

// arm swaps the ticker for the new cadence. CadenceNone leaves no channel
// armed, so the loop idles until reclassified or stopped.
func (s *Scheduler) arm(ticker *time.Ticker, cadence Cadence) (*time.Ticker, <-chan time.Time) {
	if ticker != nil {
		ticker.Stop()
	}
	if cadence == CadenceNone {
		return nil, nil
	}
	t := time.NewTicker(s.intervalFor(cadence))
	return t, t.C
}

func (s *Scheduler) intervalFor(cadence Cadence) time.Duration {
	if cadence == CadenceFast {
		return s.intervals.Fast
	}
	return s.intervals.Slow
}

// Reclassify re-arms the timer at the cadence for the screen's latest data.
// A downgrade away from fast takes effect before the next fast-interval
// tick would have fired.
func (s *Scheduler) Reclassify(cadence Cadence) {
	s.mu.Lock()
	if s.stopped || s.cadence == cadence {
		s.mu.Unlock()
		return
	}
	prev := s.cadence
	s.cadence = cadence
	started := s.started
	s.mu.Unlock()

	if !started {
		return
	}
	// Replace any queued reclassification with the latest one.
	select {
	case <-s.reclass:
	default:
	}
	select {
	case s.reclass <- cadence:
	case <-s.done:
		return
	}
	logging.Debug(s.logger, "refresh cadence changed",
		slog.String(logging.FieldScreen, s.screen),
		slog.String(logging.FieldCadence, cadence.String()),
		slog.String("previous", prev.String()))
}

// ForceTick delivers one immediate tick without re-arming or resetting the
// timer, so an explicit user refresh never shifts the schedule.
func (s *Scheduler) ForceTick() {
	s.emit()
}

// Stop halts the scheduler. No tick is delivered after Stop returns.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		s.stopped = true
		s.mu.Unlock()
		close(s.done)
		logging.Debug(s.logger, "refresh scheduler stopped",
			slog.String(logging.FieldScreen, s.screen))
	})
}

// emit delivers a tick unless the scheduler has been stopped. The stopped
// check and the send happen under the lock so a concurrent Stop preempts a
// tick that is already firing.
func (s *Scheduler) emit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped || s.send == nil {
		return
	}
	s.send()
}

// Cadence returns the currently armed cadence.
func (s *Scheduler) Cadence() Cadence {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cadence
}

// Interval returns the duration behind the currently armed cadence, or zero
// when the scheduler is idle.
func (s *Scheduler) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cadence == CadenceNone {
		return 0
	}
	return s.intervalFor(s.cadence)
}
