// services/health_monitor.go
package services

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/aamagency-dev/sms-frontend/models"
	"github.com/aamagency-dev/sms-frontend/platform"
)

// HealthMonitor polls the platform's detailed health endpoint every 30
// seconds and caches the latest snapshot for the system-health screen. The
// refresh is fixed-rate, no jitter, no backoff; a failed poll keeps the last
// good snapshot and records the error.
type HealthMonitor struct {
	client *platform.Client
	cron   *cron.Cron

	mu        sync.RWMutex
	snapshot  models.HealthDetail
	fetchedAt time.Time
	lastErr   error
}

func NewHealthMonitor(client *platform.Client) *HealthMonitor {
	return &HealthMonitor{
		client: client,
		cron:   cron.New(),
	}
}

// Start refreshes once immediately, then every 30 seconds.
func (m *HealthMonitor) Start() {
	m.refresh()

	m.cron.AddFunc("@every 30s", m.refresh)
	m.cron.Start()
	zap.L().Info("health monitor started")
}

// Stop cancels the scheduled refresh. Safe to call once at shutdown; the
// returned context is done when any in-flight refresh has finished.
func (m *HealthMonitor) Stop() context.Context {
	zap.L().Info("health monitor stopping")
	return m.cron.Stop()
}

func (m *HealthMonitor) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	detail, err := m.client.HealthDetailed(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastErr = err
	if err != nil {
		zap.L().Warn("health refresh failed", zap.Error(err))
		return
	}
	m.snapshot = detail
	m.fetchedAt = time.Now()
}

// Snapshot returns the cached health detail, when it was fetched, and the
// error of the most recent poll (nil when it succeeded).
func (m *HealthMonitor) Snapshot() (models.HealthDetail, time.Time, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot, m.fetchedAt, m.lastErr
}
