package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aamagency-dev/sms-frontend/platform"
)

func TestMonitorCachesSnapshot(t *testing.T) {
	fail := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health/detailed", r.URL.Path)
		if fail {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"status":"healthy","version":"1.4.0","system":{"cpu_percent":12.5,"memory_percent":40,"disk_percent":55},"services":{"database":{"status":"up","latency_ms":3}}}`))
	}))
	defer srv.Close()

	m := NewHealthMonitor(platform.NewClient(srv.URL, 2*time.Second))

	m.refresh()
	snapshot, fetchedAt, err := m.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, "healthy", snapshot.Status)
	assert.Equal(t, 12.5, snapshot.System.CPUPercent)
	assert.Equal(t, "up", snapshot.Services["database"].Status)
	assert.False(t, fetchedAt.IsZero())

	// A failed poll keeps the last good snapshot and records the error.
	fail = true
	m.refresh()
	stale, staleAt, err := m.Snapshot()
	assert.Error(t, err)
	assert.Equal(t, snapshot, stale)
	assert.Equal(t, fetchedAt, staleAt)

	// The next success replaces both.
	fail = false
	m.refresh()
	fresh, _, err := m.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, "healthy", fresh.Status)
}

func TestMonitorStartStop(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"healthy","system":{},"services":{}}`))
	}))
	defer srv.Close()

	m := NewHealthMonitor(platform.NewClient(srv.URL, 2*time.Second))
	m.Start()

	_, fetchedAt, err := m.Snapshot()
	require.NoError(t, err)
	assert.False(t, fetchedAt.IsZero(), "Start must refresh immediately")

	ctx := m.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not drain in time")
	}
}
