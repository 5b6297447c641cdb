// Package nhl is the typed gateway to the api-web.nhle.com REST API. Every
// fetch is routed through the shared cache with a TTL chosen by endpoint
// class, so screens can re-derive and re-request their resources freely
// without multiplying remote calls.
package nhl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"rinkside/internal/cache"
	"rinkside/internal/domain"
	"rinkside/internal/logging"
	"rinkside/internal/metrics"
)

// TTLConfig sets the cache lifetime per endpoint class.
type TTLConfig struct {
	Live     time.Duration
	Schedule time.Duration
	Static   time.Duration
}

// Config controls how the client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	TTL        TTLConfig
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
}

// Client fetches NHL data and maps it to domain models.
type Client struct {
	baseURL    string
	httpClient httpDoer
	cache      *cache.Cache
	ttl        TTLConfig
	logger     *slog.Logger
	metrics    *metrics.Recorder
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	ttl := cfg.TTL
	if ttl.Live <= 0 {
		ttl.Live = 10 * time.Second
	}
	if ttl.Schedule <= 0 {
		ttl.Schedule = 30 * time.Second
	}
	if ttl.Static <= 0 {
		ttl.Static = 5 * time.Minute
	}
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		cache:      cache.New(),
		ttl:        ttl,
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
	}
}

// Invalidate drops cached entries for the given keys so the next fetch is a
// real remote call. Used by explicit user refresh.
func (c *Client) Invalidate(keys ...cache.Key) {
	c.cache.Invalidate(keys...)
}

// TTLFor returns the cache lifetime for an endpoint.
func (c *Client) TTLFor(endpoint string) time.Duration {
	switch ClassFor(endpoint) {
	case ClassLive:
		return c.ttl.Live
	case ClassStatic:
		return c.ttl.Static
	default:
		return c.ttl.Schedule
	}
}

// Schedule returns the slate of games for a YYYY-MM-DD date.
func (c *Client) Schedule(ctx context.Context, date string) (domain.ScheduleDay, error) {
	return fetchAs(ctx, c, ScheduleKey(date), "/schedule/"+date, func(resp scheduleResponse) domain.ScheduleDay {
		return mapScheduleDay(resp, date)
	})
}

// Boxscore returns the boxscore for a game.
func (c *Client) Boxscore(ctx context.Context, gameID int) (domain.Boxscore, error) {
	path := fmt.Sprintf("/gamecenter/%d/boxscore", gameID)
	return fetchAs(ctx, c, BoxscoreKey(gameID), path, mapBoxscore)
}

// PlayByPlay returns the event feed for a game.
func (c *Client) PlayByPlay(ctx context.Context, gameID int) (domain.PlayByPlay, error) {
	path := fmt.Sprintf("/gamecenter/%d/play-by-play", gameID)
	return fetchAs(ctx, c, PlayByPlayKey(gameID), path, mapPlayByPlay)
}

// Standings returns the current league standings.
func (c *Client) Standings(ctx context.Context) (domain.Standings, error) {
	return fetchAs(ctx, c, StandingsKey(), "/standings/now", mapStandings)
}

// SkaterLeaders returns the current skater stat leaders by category.
func (c *Client) SkaterLeaders(ctx context.Context) ([]domain.LeaderCategory, error) {
	return fetchAs(ctx, c, SkaterLeadersKey(), "/skater-stats-leaders/current", mapLeaders)
}

// GoalieLeaders returns the current goalie stat leaders by category.
func (c *Client) GoalieLeaders(ctx context.Context) ([]domain.LeaderCategory, error) {
	return fetchAs(ctx, c, GoalieLeadersKey(), "/goalie-stats-leaders/current", mapLeaders)
}

// Roster returns a team's current roster.
func (c *Client) Roster(ctx context.Context, teamAbbrev string) ([]domain.RosterPlayer, error) {
	return fetchAs(ctx, c, RosterKey(teamAbbrev), "/roster/"+teamAbbrev+"/current", mapRoster)
}

// ClubSchedule returns a team's current week of games.
func (c *Client) ClubSchedule(ctx context.Context, teamAbbrev string) ([]domain.Game, error) {
	path := "/club-schedule/" + teamAbbrev + "/week/now"
	return fetchAs(ctx, c, ClubScheduleKey(teamAbbrev), path, func(resp clubScheduleResponse) []domain.Game {
		games := make([]domain.Game, 0, len(resp.Games))
		for _, g := range resp.Games {
			games = append(games, mapGame(g))
		}
		return games
	})
}

// ClubStats returns a team's per-player season stats.
func (c *Client) ClubStats(ctx context.Context, teamAbbrev string) (domain.ClubStats, error) {
	return fetchAs(ctx, c, ClubStatsKey(teamAbbrev), "/club-stats/"+teamAbbrev+"/now", mapClubStats)
}

// PlayerProfile returns a player's landing data.
func (c *Client) PlayerProfile(ctx context.Context, playerID int) (domain.PlayerProfile, error) {
	path := fmt.Sprintf("/player/%d/landing", playerID)
	return fetchAs(ctx, c, PlayerKey(playerID), path, mapPlayerProfile)
}

// PlayerGameLog returns a player's current-season game log.
func (c *Client) PlayerGameLog(ctx context.Context, playerID int) ([]domain.GameLogEntry, error) {
	path := fmt.Sprintf("/player/%d/game-log/now", playerID)
	return fetchAs(ctx, c, GameLogKey(playerID), path, mapGameLog)
}

// fetchAs resolves a key through the cache, decoding the wire shape W on a
// miss and mapping it to the domain type D. Callers that hit a fresh entry
// or join an in-flight fetch never touch the network.
func fetchAs[W, D any](ctx context.Context, c *Client, key cache.Key, path string, mapFn func(W) D) (D, error) {
	var zero D
	hit := true
	payload, err := c.cache.GetOrFetch(ctx, key, c.TTLFor(key.Endpoint), func(ctx context.Context) (any, error) {
		hit = false
		c.metrics.RecordCacheMiss(key.Endpoint)
		var wire W
		if err := c.do(ctx, key.Endpoint, path, &wire); err != nil {
			return nil, err
		}
		return mapFn(wire), nil
	})
	if err != nil {
		return zero, err
	}
	if hit {
		c.metrics.RecordCacheHit(key.Endpoint)
	}
	typed, ok := payload.(D)
	if !ok {
		return zero, &DecodeError{Endpoint: key.Endpoint, Err: fmt.Errorf("unexpected cached payload type %T", payload)}
	}
	return typed, nil
}

func (c *Client) do(ctx context.Context, endpoint, path string, out any) (err error) {
	start := time.Now()
	defer func() {
		c.metrics.RecordEndpointCall(endpoint, time.Since(start), err)
		if err != nil {
			logging.Warn(c.logger, "api call failed",
				slog.String(logging.FieldEndpoint, endpoint), "error", err)
		} else {
			logging.Debug(c.logger, "api call",
				slog.String(logging.FieldEndpoint, endpoint),
				slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		}
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &NetworkError{Endpoint: endpoint, Err: err}
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "application/json")

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		// The client hands back the last response alongside a CheckRedirect
		// error; release it.
		if resp != nil {
			resp.Body.Close()
		}
		if errors.Is(doErr, ErrRedirectLoop) {
			return ErrRedirectLoop
		}
		return &NetworkError{Endpoint: endpoint, Err: doErr}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
		return &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode}
	}

	if decodeErr := json.NewDecoder(resp.Body).Decode(out); decodeErr != nil {
		return &DecodeError{Endpoint: endpoint, Err: decodeErr}
	}
	return nil
}
