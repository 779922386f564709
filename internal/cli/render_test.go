package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vfg2006/insights-dashboard/internal/dashboard"
	"github.com/vfg2006/insights-dashboard/internal/domain"
	"github.com/vfg2006/insights-dashboard/internal/usecases/insighting"
)

var renderNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T {
	return &v
}

func sampleMetrics() *domain.MetricsResponse {
	return &domain.MetricsResponse{
		Metrics: []domain.DailyMetric{
			{MetricDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Spend: 80, Revenue: 100, ROI: 0.25},
			{MetricDate: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Spend: 100, Revenue: 50, ROI: -0.5},
		},
		TotalSpend:   180,
		TotalRevenue: 150,
		AverageROI:   -0.125,
	}
}

func TestRenderSummary(t *testing.T) {
	var out bytes.Buffer
	RenderSummary(&out, sampleMetrics())

	assert.Contains(t, out.String(), "Gasto total:")
	assert.Contains(t, out.String(), "R$")
	assert.Contains(t, out.String(), "-12.50%")
}

func TestRenderChart(t *testing.T) {
	var out bytes.Buffer
	RenderChart(&out, sampleMetrics().Metrics)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "ROI (%)")
	assert.Contains(t, lines[1], "2024-03-01")
	assert.Contains(t, lines[1], "25.00")
	assert.True(t, strings.HasSuffix(lines[1], strings.Repeat("#", chartWidth)))
	assert.Contains(t, lines[2], "-50.00")
	assert.True(t, strings.HasSuffix(lines[2], strings.Repeat("#", chartWidth/2)))
}

func TestBar(t *testing.T) {
	assert.Equal(t, "", bar(10, 0))
	assert.Equal(t, "", bar(0, 10))
	assert.Equal(t, "#", bar(0.001, 10))
	assert.Equal(t, strings.Repeat("#", chartWidth), bar(10, 10))
}

func TestRenderMetricsState(t *testing.T) {
	tests := []struct {
		name     string
		state    insighting.State
		contains []string
		excludes []string
	}{
		{
			name:     "carregando",
			state:    insighting.State{Status: insighting.StatusLoading, Loading: true, Data: sampleMetrics()},
			contains: []string{"Carregando métricas..."},
			excludes: []string{"Gasto total"},
		},
		{
			name:     "idle",
			state:    insighting.State{Status: insighting.StatusIdle},
			contains: []string{"Nenhuma métrica carregada."},
		},
		{
			name:     "erro sem dados",
			state:    insighting.State{Status: insighting.StatusError, Error: insighting.MsgLoadFailed, Err: errors.New("boom")},
			contains: []string{insighting.MsgLoadFailed},
			excludes: []string{"Nenhuma métrica carregada."},
		},
		{
			name:     "erro mantém dados anteriores",
			state:    insighting.State{Status: insighting.StatusError, Error: insighting.MsgInvalidRange, Data: sampleMetrics()},
			contains: []string{insighting.MsgInvalidRange, "Gasto total", "2024-03-02"},
		},
		{
			name:     "período vazio",
			state:    insighting.State{Status: insighting.StatusSuccess, Data: &domain.MetricsResponse{}},
			contains: []string{"Nenhuma métrica no período."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			RenderMetricsState(&out, tt.state)

			for _, s := range tt.contains {
				assert.Contains(t, out.String(), s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out.String(), s)
			}
		})
	}
}

func TestRenderIntegrations(t *testing.T) {
	var out bytes.Buffer
	RenderIntegrations(&out, nil, renderNow)
	assert.Equal(t, "Nenhuma integração conectada.\n", out.String())

	integrations := []domain.Integration{
		{ID: 1, Credentials: domain.FacebookCredentials{AccountID: "act_1", BusinessID: ptr("biz_9")}},
		{ID: 2, Credentials: domain.GoogleCredentials{AccountID: "pub-1", TokenExpiry: ptr(renderNow.Add(-time.Hour))}},
		{ID: 3, Credentials: domain.GoogleCredentials{AccountID: "pub-2", TokenExpiry: ptr(renderNow.Add(time.Hour))}},
		{ID: 4, Credentials: domain.GoogleCredentials{AccountID: "pub-3"}},
	}

	out.Reset()
	RenderIntegrations(&out, integrations, renderNow)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 4)

	assert.Contains(t, lines[0], "Facebook Ads")
	assert.Contains(t, lines[0], "Conta act_1 · Business biz_9")
	assert.Contains(t, lines[1], "Google AdSense")
	assert.Contains(t, lines[1], "token expirado")
	assert.Contains(t, lines[2], "token válido até")
	assert.Contains(t, lines[3], "token sem expiração")
}

func TestRenderNotifications(t *testing.T) {
	var out bytes.Buffer
	RenderNotifications(&out, nil)
	assert.Equal(t, "Nenhuma notificação.\n", out.String())

	out.Reset()
	RenderNotifications(&out, []domain.SyncNotification{
		{ID: 2, Level: domain.NotificationWarning, Message: "Token expirado", CreatedAt: renderNow},
		{ID: 1, Level: domain.NotificationInfo, Message: "Sincronizado", CreatedAt: renderNow},
	})
	assert.Contains(t, out.String(), "#2 [warning] Token expirado")
	assert.Contains(t, out.String(), "#1 [info] Sincronizado")
}

func TestRenderDashboard(t *testing.T) {
	var out bytes.Buffer
	RenderDashboard(&out, dashboard.Snapshot{
		User:              &domain.User{Name: "Ana", Email: "ana@example.com"},
		RangeLabel:        "2024-03-01 até 2024-03-02 (2 dias)",
		Metrics:           insighting.State{Status: insighting.StatusSuccess, Data: sampleMetrics()},
		IntegrationsError: dashboard.MsgIntegrationsFailed,
		NotificationError: dashboard.MsgNotificationsFailed,
		Feedback:          "Conta do Facebook Ads conectada com sucesso!",
	}, renderNow)

	for _, s := range []string{
		"== Ana (ana@example.com) ==",
		"Conta do Facebook Ads conectada com sucesso!",
		"Período: 2024-03-01 até 2024-03-02 (2 dias)",
		"ROI médio",
		dashboard.MsgIntegrationsFailed,
		dashboard.MsgNotificationsFailed,
	} {
		assert.Contains(t, out.String(), s)
	}
}
