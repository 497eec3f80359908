package kiosk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenhq/lumen/internal/domain/mirror"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

type stubGauges struct {
	hb  mirror.Heartbeat
	err error
}

func (g stubGauges) Read(context.Context) (mirror.Heartbeat, error) {
	return g.hb, g.err
}

var sampleGauges = stubGauges{hb: mirror.Heartbeat{Uptime: 3605, MemoryUsage: 75, CPUUsage: 0.52}}

func TestSystemGauges_Read(t *testing.T) {
	hb, err := SystemGauges{}.Read(context.Background())
	require.NoError(t, err)

	assert.Positive(t, hb.Uptime)
	assert.Greater(t, hb.MemoryUsage, 0.0)
	assert.LessOrEqual(t, hb.MemoryUsage, 100.0)
	assert.GreaterOrEqual(t, hb.CPUUsage, 0.0)
}

type recordingServer struct {
	mu       sync.Mutex
	received []mirror.Heartbeat
	success  bool
}

func (s *recordingServer) handler(w http.ResponseWriter, r *http.Request) {
	var hb mirror.Heartbeat
	_ = json.NewDecoder(r.Body).Decode(&hb)

	s.mu.Lock()
	s.received = append(s.received, hb)
	success := s.success
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]bool{"success": success})
}

func (s *recordingServer) first() mirror.Heartbeat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.received[0]
}

func (s *recordingServer) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.received)
}

func TestHeartbeatReporter_Send(t *testing.T) {
	rec := &recordingServer{success: true}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/mirror/heartbeat", rec.handler)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	r := NewHeartbeatReporter(srv.URL+"/", sampleGauges, time.Minute, time.Second, nil, logger.NewNop())
	require.NoError(t, r.Send(context.Background()))

	require.Equal(t, 1, rec.count())
	assert.Equal(t, int64(3605), rec.first().Uptime)
}

func TestHeartbeatReporter_UnreadableGaugesStillPing(t *testing.T) {
	rec := &recordingServer{success: true}
	srv := httptest.NewServer(http.HandlerFunc(rec.handler))
	defer srv.Close()

	r := NewHeartbeatReporter(srv.URL, stubGauges{err: errors.New("gauges unavailable")}, time.Minute, time.Second, nil, logger.NewNop())
	require.NoError(t, r.Send(context.Background()))
	assert.Equal(t, mirror.Heartbeat{}, rec.first())
}

func TestHeartbeatReporter_RejectedHeartbeat(t *testing.T) {
	rec := &recordingServer{success: false}
	srv := httptest.NewServer(http.HandlerFunc(rec.handler))
	defer srv.Close()

	r := NewHeartbeatReporter(srv.URL, sampleGauges, time.Minute, time.Second, nil, logger.NewNop())
	assert.Error(t, r.Send(context.Background()))
}

func TestHeartbeatReporter_RunReportsOnEveryTick(t *testing.T) {
	rec := &recordingServer{success: true}
	srv := httptest.NewServer(http.HandlerFunc(rec.handler))
	defer srv.Close()

	clock := newFakeClock()
	r := NewHeartbeatReporter(srv.URL, sampleGauges, time.Minute, time.Second, clock, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	require.Eventually(t, func() bool { return rec.count() == 1 }, time.Second, time.Millisecond)
	clock.Advance(time.Minute)
	require.Eventually(t, func() bool { return rec.count() == 2 }, time.Second, time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
