package kiosk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenhq/lumen/internal/shared/logger"
)

// fakeServer serves a build per /api/version call and counts reloads.
type fakeServer struct {
	mu         sync.Mutex
	builds     []string
	fetches    int
	reloads    int
	indicators int
	heartbeats int
}

func (s *fakeServer) handler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch r.URL.Path {
	case "/api/version":
		i := s.fetches
		if i >= len(s.builds) {
			i = len(s.builds) - 1
		}
		s.fetches++
		_ = json.NewEncoder(w).Encode(BuildInfo{BuildTime: s.builds[i]})
	case "/api/mirror/heartbeat":
		s.heartbeats++
		_ = json.NewEncoder(w).Encode(map[string]bool{"success": true})
	case "/reload":
		s.reloads++
		w.WriteHeader(http.StatusNoContent)
	case "/updating":
		s.indicators++
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (s *fakeServer) snapshot() (fetches, reloads, indicators int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetches, s.reloads, s.indicators
}

func TestAgent_ReloadsAndStartsFreshSession(t *testing.T) {
	fs := &fakeServer{builds: []string{"b1", "b2", "b2"}}
	srv := httptest.NewServer(http.HandlerFunc(fs.handler))
	t.Cleanup(srv.Close)

	cfg := &Config{
		ServerURL: srv.URL,
		Reload: ReloadConfig{
			Mode:         ReloadModeHTTP,
			URL:          srv.URL + "/reload",
			IndicatorURL: srv.URL + "/updating",
		},
	}
	clock := newFakeClock()
	agent, err := newAgent(cfg, clock, logger.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	done := make(chan error, 1)
	go func() { done <- agent.Run(ctx) }()

	require.Eventually(t, func() bool { f, _, _ := fs.snapshot(); return f == 1 }, time.Second, time.Millisecond)

	clock.Advance(DefaultPollInterval)
	require.Eventually(t, func() bool { return clock.pending() == 1 }, time.Second, time.Millisecond)
	_, _, indicators := fs.snapshot()
	assert.Equal(t, 1, indicators)

	clock.Advance(DefaultGraceDelay)
	require.Eventually(t, func() bool {
		f, r, _ := fs.snapshot()
		return r == 1 && f == 3
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("agent did not stop")
	}
}

func TestNewAgent_RejectsUnknownReloadMode(t *testing.T) {
	_, err := NewAgent(&Config{Reload: ReloadConfig{Mode: "telepathy"}}, logger.NewNop())
	assert.Error(t, err)
}
