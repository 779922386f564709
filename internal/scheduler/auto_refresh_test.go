package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/insights-dashboard/internal/config"
)

type fakeRefresher struct {
	mu            sync.Mutex
	authenticated bool
	loadErr       error
	notifications int
	metrics       int
}

func (f *fakeRefresher) Authenticated() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.authenticated
}

func (f *fakeRefresher) LoadNotifications(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notifications++
	return f.loadErr
}

func (f *fakeRefresher) RefreshMetrics() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.metrics++
}

func newConfig(enabled bool, notificationsCron, metricsCron string) *config.Config {
	return &config.Config{Dashboard: config.Dashboard{
		AutoRefreshEnabled:       enabled,
		NotificationsRefreshCron: notificationsCron,
		MetricsRefreshCron:       metricsCron,
	}}
}

func TestAutoRefreshService_SkipsWithoutSession(t *testing.T) {
	refresher := &fakeRefresher{}
	service := NewAutoRefreshService(refresher, newConfig(true, "*/5 * * * *", "0 * * * *"))

	service.refreshNotifications(context.Background())
	service.refreshMetrics()

	assert.Zero(t, refresher.notifications)
	assert.Zero(t, refresher.metrics)

	notifications, metrics := service.LastRuns()
	assert.True(t, notifications.IsZero())
	assert.True(t, metrics.IsZero())
}

func TestAutoRefreshService_RefreshesWhenLoggedIn(t *testing.T) {
	refresher := &fakeRefresher{authenticated: true}
	service := NewAutoRefreshService(refresher, newConfig(true, "*/5 * * * *", "0 * * * *"))

	service.refreshNotifications(context.Background())
	service.refreshMetrics()

	assert.Equal(t, 1, refresher.notifications)
	assert.Equal(t, 1, refresher.metrics)

	notifications, metrics := service.LastRuns()
	assert.False(t, notifications.IsZero())
	assert.False(t, metrics.IsZero())
}

func TestAutoRefreshService_FailedRefreshKeepsLastRun(t *testing.T) {
	refresher := &fakeRefresher{authenticated: true, loadErr: errors.New("boom")}
	service := NewAutoRefreshService(refresher, newConfig(true, "*/5 * * * *", ""))

	service.refreshNotifications(context.Background())

	assert.Equal(t, 1, refresher.notifications)
	notifications, _ := service.LastRuns()
	assert.True(t, notifications.IsZero())
}

func TestAutoRefreshService_Start(t *testing.T) {
	t.Run("desabilitado", func(t *testing.T) {
		service := NewAutoRefreshService(&fakeRefresher{}, newConfig(false, "invalid", "invalid"))
		assert.NoError(t, service.Start(context.Background()))
	})

	t.Run("cron inválido", func(t *testing.T) {
		service := NewAutoRefreshService(&fakeRefresher{}, newConfig(true, "not a cron", ""))
		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("agenda e para com o contexto", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		service := NewAutoRefreshService(&fakeRefresher{}, newConfig(true, "*/5 * * * *", "0 * * * *"))
		require.NoError(t, service.Start(ctx))
		assert.Len(t, service.scheduler.Jobs(), 2)
	})
}
