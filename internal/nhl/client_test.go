package nhl

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"rinkside/internal/domain"
	"rinkside/internal/metrics"
)

const scheduleBody = `{
	"gameWeek": [
		{
			"date": "2024-01-15",
			"games": [
				{
					"id": 2023020500,
					"gameDate": "2024-01-15",
					"startTimeUTC": "2024-01-16T00:00:00Z",
					"gameState": "LIVE",
					"gameScheduleState": "OK",
					"venue": {"default": "TD Garden"},
					"homeTeam": {"abbrev": "BOS", "placeName": {"default": "Boston"}, "commonName": {"default": "Bruins"}, "score": 2, "sog": 18},
					"awayTeam": {"abbrev": "TOR", "placeName": {"default": "Toronto"}, "commonName": {"default": "Maple Leafs"}, "score": 1, "sog": 12},
					"periodDescriptor": {"number": 2, "periodType": "REG"},
					"clock": {"timeRemaining": "07:15"}
				},
				{
					"id": 2023020501,
					"gameDate": "2024-01-15",
					"startTimeUTC": "2024-01-16T02:30:00Z",
					"gameState": "FUT",
					"gameScheduleState": "OK",
					"homeTeam": {"abbrev": "COL"},
					"awayTeam": {"abbrev": "VGK"}
				}
			]
		},
		{"date": "2024-01-16", "games": []}
	]
}`

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(Config{
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
		Metrics:    metrics.NewRecorder(),
	})
	return client, srv
}

func TestScheduleMapsRequestedDate(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/schedule/2024-01-15" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprint(w, scheduleBody)
	}))

	day, err := client.Schedule(context.Background(), "2024-01-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if day.Date != "2024-01-15" || len(day.Games) != 2 {
		t.Fatalf("unexpected day: %+v", day)
	}

	live := day.Games[0]
	if live.Status != domain.StatusLive {
		t.Fatalf("expected live status, got %s", live.Status)
	}
	if live.Home.Name != "Boston Bruins" || live.Home.Score != 2 {
		t.Fatalf("unexpected home side: %+v", live.Home)
	}
	if live.Clock != "07:15" || live.Period != 2 {
		t.Fatalf("unexpected period state: %+v", live)
	}
	if want := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC); !live.StartTimeUTC.Equal(want) {
		t.Fatalf("expected UTC start time %s, got %s", want, live.StartTimeUTC)
	}

	if future := day.Games[1]; future.Status != domain.StatusScheduled {
		t.Fatalf("expected scheduled status, got %s", future.Status)
	}
}

func TestScheduleSecondCallServedFromCache(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, scheduleBody)
	}))

	for i := 0; i < 3; i++ {
		if _, err := client.Schedule(context.Background(), "2024-01-15"); err != nil {
			t.Fatalf("call %d failed: %v", i, err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected one upstream call, got %d", got)
	}
}

func TestInvalidateForcesRemoteCall(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, scheduleBody)
	}))

	_, _ = client.Schedule(context.Background(), "2024-01-15")
	client.Invalidate(ScheduleKey("2024-01-15"))
	_, _ = client.Schedule(context.Background(), "2024-01-15")

	if got := calls.Load(); got != 2 {
		t.Fatalf("expected refetch after invalidate, got %d calls", got)
	}
}

func TestNonOKStatusFailsWithStatusError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))

	_, err := client.Boxscore(context.Background(), 2023020999)
	statusErr, ok := AsStatusError(err)
	if !ok {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusNotFound || statusErr.Endpoint != EndpointBoxscore {
		t.Fatalf("unexpected status error: %+v", statusErr)
	}
	if !IsUnavailable(err) {
		t.Fatal("expected status error to classify as unavailable")
	}
}

func TestMalformedJSONFailsWithDecodeError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"standings": [`)
	}))

	_, err := client.Standings(context.Background())
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if !IsUnavailable(err) {
		t.Fatal("expected decode error to classify as unavailable")
	}
}

func TestFailedFetchIsRetriedOnNextCall(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "upstream broke", http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `{"standings": []}`)
	}))

	if _, err := client.Standings(context.Background()); err == nil {
		t.Fatal("expected first call to fail")
	}
	// Failures are not cached; the next call reaches upstream again.
	if _, err := client.Standings(context.Background()); err != nil {
		t.Fatalf("expected recovery on second call, got %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected two upstream calls, got %d", got)
	}
}

func TestNetworkErrorClassification(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	httpClient := srv.Client()
	srv.Close() // connection refused from here on

	client := NewClient(Config{BaseURL: srv.URL, HTTPClient: httpClient})
	_, err := client.Standings(context.Background())

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
	if !IsUnavailable(err) {
		t.Fatal("expected network error to classify as unavailable")
	}
}

func TestRedirectLoopFails(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, srv.URL+r.URL.Path, http.StatusMovedPermanently)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, HTTPClient: srv.Client()})
	_, err := client.Standings(context.Background())
	if !errors.Is(err, ErrRedirectLoop) {
		t.Fatalf("expected ErrRedirectLoop, got %v", err)
	}
	if !IsUnavailable(err) {
		t.Fatal("expected redirect loop to classify as unavailable")
	}
}

func TestBoundedRedirectsAreFollowed(t *testing.T) {
	hops := 0
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hops < 3 {
			hops++
			http.Redirect(w, r, srv.URL+"/standings/now", http.StatusFound)
			return
		}
		fmt.Fprint(w, `{"standings": []}`)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, HTTPClient: srv.Client()})
	if _, err := client.Standings(context.Background()); err != nil {
		t.Fatalf("expected redirects within bound to succeed, got %v", err)
	}
}

func TestTTLFor(t *testing.T) {
	client := NewClient(Config{TTL: TTLConfig{
		Live:     10 * time.Second,
		Schedule: 30 * time.Second,
		Static:   5 * time.Minute,
	}})

	cases := []struct {
		endpoint string
		want     time.Duration
	}{
		{EndpointBoxscore, 10 * time.Second},
		{EndpointPlayByPlay, 10 * time.Second},
		{EndpointSchedule, 30 * time.Second},
		{EndpointClubSchedule, 30 * time.Second},
		{EndpointStandings, 5 * time.Minute},
		{EndpointRoster, 5 * time.Minute},
		{EndpointPlayer, 5 * time.Minute},
		{"unknown", 30 * time.Second},
	}
	for _, tc := range cases {
		if got := client.TTLFor(tc.endpoint); got != tc.want {
			t.Fatalf("TTLFor(%s) = %s, want %s", tc.endpoint, got, tc.want)
		}
	}
}

func TestMetricsRecordHitsAndMisses(t *testing.T) {
	rec := metrics.NewRecorder()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, scheduleBody)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, HTTPClient: srv.Client(), Metrics: rec})
	_, _ = client.Schedule(context.Background(), "2024-01-15")
	_, _ = client.Schedule(context.Background(), "2024-01-15")

	if got := rec.CacheMisses(EndpointSchedule); got != 1 {
		t.Fatalf("expected 1 miss, got %d", got)
	}
	if got := rec.CacheHits(EndpointSchedule); got != 1 {
		t.Fatalf("expected 1 hit, got %d", got)
	}
	if got := rec.EndpointCalls(EndpointSchedule); got != 1 {
		t.Fatalf("expected 1 remote call, got %d", got)
	}
}
