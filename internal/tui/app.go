// Package tui is the bubbletea program that drives the terminal interface.
// The program loop is the single ordered event queue: key presses, refresh
// ticks, and completed fetches all arrive as messages and are handled to
// completion, one at a time. Fetches run as commands off the loop and
// report back with a message tagged by the issuing screen's id.
package tui

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"rinkside/internal/config"
	"rinkside/internal/domain"
	"rinkside/internal/logging"
	"rinkside/internal/metrics"
	"rinkside/internal/nav"
	"rinkside/internal/nhl"
	"rinkside/internal/refresh"
	"rinkside/internal/timeutil"
	"rinkside/internal/view"
)

const noticeDuration = 4 * time.Second

// App is the bubbletea model for the whole application.
type App struct {
	ctx     context.Context
	cfg     config.Config
	client  *nhl.Client
	logger  *slog.Logger
	metrics *metrics.Recorder

	keys      keyMap
	styles    styles
	stack     *nav.Stack
	spin      spinner.Model
	playsView viewport.Model

	// send delivers scheduler ticks into the program loop. Wired to
	// tea.Program.Send before the program runs; nil drops the tick. The
	// root scheduler is already running when SetSender is called, so
	// access goes through sendMu.
	sendMu sync.Mutex
	send   func(tea.Msg)

	width  int
	height int

	notice    *view.Notice
	noticeSeq int
	noticeTTL time.Duration

	now func() time.Time
}

// New builds the app with the schedule screen, on the league's current
// date, as the navigation root.
func New(ctx context.Context, cfg config.Config, client *nhl.Client, logger *slog.Logger, rec *metrics.Recorder) *App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	a := &App{
		ctx:       ctx,
		cfg:       cfg,
		client:    client,
		logger:    logger,
		metrics:   rec,
		keys:      defaultKeyMap(),
		styles:    defaultStyles(),
		stack:     nav.NewStack(logger),
		spin:      sp,
		playsView: viewport.New(80, 20),
		noticeTTL: noticeDuration,
		now:       time.Now,
	}
	a.push(nav.KindSchedule, view.NewScheduleState(a.today()), refresh.CadenceSlow)
	return a
}

// SetSender wires the running program's Send so scheduler goroutines can
// deliver ticks into the loop.
func (a *App) SetSender(send func(tea.Msg)) {
	a.sendMu.Lock()
	a.send = send
	a.sendMu.Unlock()
}

// Init starts the spinner and kicks off the root screen's first fetch.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spin.Tick, a.fetchCmds(a.stack.Top()))
}

// Update is the single event handler for every message in the program.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.playsView.Width = msg.Width - 2
		if h := msg.Height - 8; h > 3 {
			a.playsView.Height = h
		}
		return a, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tickMsg:
		return a.handleTick(msg)
	case fetchResultMsg:
		return a.handleResult(msg)
	case noticeTimeoutMsg:
		if msg.seq == a.noticeSeq {
			a.notice = nil
		}
		return a, nil
	}
	return a, nil
}

// handleTick runs one refresh cycle for the screen that owns the tick. A
// tick from a screen that is no longer active is dropped.
func (a *App) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if !a.stack.IsActive(msg.screenID) {
		logging.Debug(a.logger, "stale tick dropped", slog.Int64("screen_id", msg.screenID))
		return a, nil
	}
	entry := a.stack.Top()
	start := a.now()
	cmd := a.fetchCmds(entry)
	a.metrics.RecordRefreshCycle(entry.Kind().String(), time.Since(start), nil)
	return a, cmd
}

// handleResult applies a completed fetch to the screen that issued it. A
// result for a popped or covered screen never touches any state.
func (a *App) handleResult(msg fetchResultMsg) (tea.Model, tea.Cmd) {
	if !a.stack.IsActive(msg.screenID) {
		logging.Debug(a.logger, "stale result discarded",
			slog.Int64("screen_id", msg.screenID),
			slog.String(logging.FieldEndpoint, msg.key.Endpoint))
		return a, nil
	}
	entry := a.stack.Top()
	if msg.err != nil {
		a.applyError(entry, msg.err)
		return a, a.setNotice(view.FetchErrorNotice(msg.err))
	}
	a.applyPayload(entry, msg.key, msg.payload)
	entry.Scheduler().Reclassify(a.cadenceFor(entry))
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		a.stack.StopAll()
		return a, tea.Quit
	case key.Matches(msg, a.keys.Back):
		if _, ok := a.stack.Pop(); ok {
			// The resumed screen renders what it already has; no refetch.
			a.notice = nil
		}
		return a, nil
	case key.Matches(msg, a.keys.Refresh):
		return a, a.explicitRefresh()
	}

	entry := a.stack.Top()
	switch entry.Kind() {
	case nav.KindSchedule:
		return a.handleScheduleKey(msg, entry)
	case nav.KindGame:
		st := entry.State().(*view.GameDetailState)
		switch {
		case key.Matches(msg, a.keys.Tab):
			st.ToggleTab()
		case key.Matches(msg, a.keys.Up):
			if st.Tab == view.TabPlays {
				a.playsView.LineUp(1)
			}
		case key.Matches(msg, a.keys.Down):
			if st.Tab == view.TabPlays {
				a.playsView.LineDown(1)
			}
		}
		return a, nil
	case nav.KindStandings:
		if key.Matches(msg, a.keys.Tab) {
			entry.State().(*view.StandingsState).NextTab()
		}
		return a, nil
	case nav.KindStats:
		if key.Matches(msg, a.keys.Tab) {
			entry.State().(*view.StatsState).ToggleTab()
			// The other board may not be fetched yet.
			return a, a.fetchCmds(entry)
		}
		return a, nil
	case nav.KindTeams:
		return a.handleTeamsKey(msg, entry)
	case nav.KindTeamDetail:
		return a.handleTeamDetailKey(msg, entry)
	}
	return a, nil
}

func (a *App) handleScheduleKey(msg tea.KeyMsg, entry *nav.Entry) (tea.Model, tea.Cmd) {
	st := entry.State().(*view.ScheduleState)
	switch {
	case key.Matches(msg, a.keys.PrevDay):
		st.ShiftDate(-1)
		return a.afterDateChange(entry)
	case key.Matches(msg, a.keys.NextDay):
		st.ShiftDate(1)
		return a.afterDateChange(entry)
	case key.Matches(msg, a.keys.Today):
		st.GoToDate(a.today())
		return a.afterDateChange(entry)
	case key.Matches(msg, a.keys.Up):
		st.MoveCursor(-1)
		return a, nil
	case key.Matches(msg, a.keys.Down):
		st.MoveCursor(1)
		return a, nil
	case key.Matches(msg, a.keys.Select):
		return a.selectGame(st)
	case key.Matches(msg, a.keys.Standing):
		return a, a.push(nav.KindStandings, view.NewStandingsState(), refresh.CadenceSlow)
	case key.Matches(msg, a.keys.Stats):
		return a, a.push(nav.KindStats, view.NewStatsState(), refresh.CadenceSlow)
	case key.Matches(msg, a.keys.Teams):
		return a, a.push(nav.KindTeams, view.NewTeamsState(), refresh.CadenceSlow)
	}
	return a, nil
}

// selectGame opens the detail screen for a game that has one. Future,
// postponed, and cancelled games have no gamecenter resources, so they
// surface a notice instead of pushing a screen.
func (a *App) selectGame(st *view.ScheduleState) (tea.Model, tea.Cmd) {
	game, ok := st.Selected()
	if !ok {
		return a, nil
	}
	if !game.Status.HasDetail() {
		logging.Debug(a.logger, "detail refused for unplayed game",
			slog.Int(logging.FieldGameID, game.ID),
			slog.String("status", string(game.Status)))
		if game.Status == domain.StatusScheduled {
			return a, a.setNotice(view.FutureGameNotice(game))
		}
		return a, a.setNotice(view.UnplayedGameNotice(game))
	}
	state := view.NewGameDetailState(game.ID, game.Status)
	return a, a.push(nav.KindGame, state, refresh.CadenceFor(game.Status))
}

func (a *App) handleTeamsKey(msg tea.KeyMsg, entry *nav.Entry) (tea.Model, tea.Cmd) {
	st := entry.State().(*view.TeamsState)
	switch {
	case key.Matches(msg, a.keys.Up):
		st.MoveCursor(-1)
	case key.Matches(msg, a.keys.Down):
		st.MoveCursor(1)
	case key.Matches(msg, a.keys.Select):
		if team, ok := st.Selected(); ok {
			state := view.NewTeamDetailState(team.TeamAbbrev, team.TeamName)
			return a, a.push(nav.KindTeamDetail, state, refresh.CadenceSlow)
		}
	}
	return a, nil
}

func (a *App) handleTeamDetailKey(msg tea.KeyMsg, entry *nav.Entry) (tea.Model, tea.Cmd) {
	st := entry.State().(*view.TeamDetailState)
	switch {
	case key.Matches(msg, a.keys.Tab):
		st.NextTab()
		// The new tab's resource may not be fetched yet.
		return a, a.fetchCmds(entry)
	case key.Matches(msg, a.keys.Up):
		st.MoveCursor(-1)
	case key.Matches(msg, a.keys.Down):
		st.MoveCursor(1)
	case key.Matches(msg, a.keys.Select):
		if player, ok := st.SelectedPlayer(); ok {
			state := view.NewPlayerState(player.PlayerID)
			return a, a.push(nav.KindPlayer, state, refresh.CadenceNone)
		}
	}
	return a, nil
}

// afterDateChange re-arms the schedule cadence for the new date and fetches
// its slate immediately.
func (a *App) afterDateChange(entry *nav.Entry) (tea.Model, tea.Cmd) {
	entry.Scheduler().Reclassify(a.cadenceFor(entry))
	return a, a.fetchCmds(entry)
}

// explicitRefresh drops the active screen's cache entries and fires one
// out-of-band tick. The scheduler's own cadence is not disturbed.
func (a *App) explicitRefresh() tea.Cmd {
	entry := a.stack.Top()
	a.client.Invalidate(deriveKeys(entry.State())...)
	entry.Scheduler().ForceTick()
	return a.setNotice(view.RefreshNotice())
}

// push creates a screen with its own scheduler and returns the command for
// its initial fetch.
func (a *App) push(kind nav.Kind, state any, cadence refresh.Cadence) tea.Cmd {
	var entry *nav.Entry
	sched := refresh.New(kind.String(), a.intervals(), a.logger, func() {
		a.emit(tickMsg{screenID: entry.ID()})
	})
	entry = a.stack.Push(kind, state, sched)
	sched.Start(a.ctx, cadence)
	return a.fetchCmds(entry)
}

func (a *App) emit(msg tea.Msg) {
	a.sendMu.Lock()
	send := a.send
	a.sendMu.Unlock()
	if send != nil {
		send(msg)
	}
}

func (a *App) intervals() refresh.Intervals {
	return refresh.Intervals{Fast: a.cfg.FastRefresh, Slow: a.cfg.SlowRefresh}
}

func (a *App) today() string {
	return timeutil.LeagueDate(a.now())
}

// cadenceFor picks the refresh cadence a screen should run at, given what
// it is currently showing.
func (a *App) cadenceFor(entry *nav.Entry) refresh.Cadence {
	switch st := entry.State().(type) {
	case *view.ScheduleState:
		if st.Date != a.today() {
			return refresh.CadenceNone
		}
		if st.HasLiveGames() {
			return refresh.CadenceFast
		}
		return refresh.CadenceSlow
	case *view.GameDetailState:
		return refresh.CadenceFor(st.Status())
	case *view.StandingsState, *view.StatsState, *view.TeamsState, *view.TeamDetailState:
		return refresh.CadenceSlow
	default:
		return refresh.CadenceNone
	}
}

// setNotice shows a transient notice and schedules its expiry. A
// non-positive TTL leaves the notice up until replaced.
func (a *App) setNotice(n view.Notice) tea.Cmd {
	a.noticeSeq++
	seq := a.noticeSeq
	a.notice = &n
	if a.noticeTTL <= 0 {
		return nil
	}
	return tea.Tick(a.noticeTTL, func(time.Time) tea.Msg {
		return noticeTimeoutMsg{seq: seq}
	})
}
