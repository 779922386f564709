package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/vfg2006/insights-dashboard/internal/dashboard"
	"github.com/vfg2006/insights-dashboard/internal/domain"
	"github.com/vfg2006/insights-dashboard/internal/usecases/insighting"
	"github.com/vfg2006/insights-dashboard/pkg/format"
	"github.com/vfg2006/insights-dashboard/pkg/utils"
)

const chartWidth = 20

// RenderSummary mostra os totais do período
func RenderSummary(w io.Writer, metrics *domain.MetricsResponse) {
	fmt.Fprintf(w, "Gasto total:   %s\n", format.FormatCurrency(metrics.TotalSpend))
	fmt.Fprintf(w, "Receita total: %s\n", format.FormatCurrency(metrics.TotalRevenue))
	fmt.Fprintf(w, "ROI médio:     %s\n", format.FormatPercentage(metrics.AverageROI))
}

// RenderChart desenha uma linha por dia. A barra é proporcional à maior receita
// do período e o ROI aparece em pontos percentuais.
func RenderChart(w io.Writer, metrics []domain.DailyMetric) {
	var maxRevenue float64
	for _, m := range metrics {
		maxRevenue = max(maxRevenue, m.Revenue)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Data\tGasto\tReceita\tROI (%)\t")
	for _, m := range metrics {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%s\n",
			utils.FormatDate(m.MetricDate),
			format.FormatCurrency(m.Spend),
			format.FormatCurrency(m.Revenue),
			format.ROIPercent(m.ROI),
			bar(m.Revenue, maxRevenue),
		)
	}
	tw.Flush()
}

func bar(value, maxValue float64) string {
	if maxValue <= 0 || value <= 0 {
		return ""
	}
	return strings.Repeat("#", max(1, int(value/maxValue*chartWidth)))
}

// RenderMetricsState mostra o estado do loader. Depois de um erro os dados
// anteriores continuam visíveis abaixo da mensagem.
func RenderMetricsState(w io.Writer, state insighting.State) {
	switch {
	case state.Loading:
		fmt.Fprintln(w, "Carregando métricas...")
		return
	case state.Status == insighting.StatusError:
		fmt.Fprintln(w, state.Error)
	}

	if state.Data == nil {
		if state.Status != insighting.StatusError {
			fmt.Fprintln(w, "Nenhuma métrica carregada.")
		}
		return
	}

	if len(state.Data.Metrics) == 0 {
		fmt.Fprintln(w, "Nenhuma métrica no período.")
		return
	}

	RenderSummary(w, state.Data)
	fmt.Fprintln(w)
	RenderChart(w, state.Data.Metrics)
}

// RenderIntegrations lista as contas conectadas; para o AdSense informa a
// validade do token OAuth armazenado
func RenderIntegrations(w io.Writer, integrations []domain.Integration, now time.Time) {
	if len(integrations) == 0 {
		fmt.Fprintln(w, "Nenhuma integração conectada.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, integration := range integrations {
		fmt.Fprintf(tw, "#%d\t%s\t%s\t%s\n",
			integration.ID,
			integration.Type().Label(),
			integration.Description(),
			tokenStatus(integration, now),
		)
	}
	tw.Flush()
}

func tokenStatus(integration domain.Integration, now time.Time) string {
	google, ok := integration.Google()
	if !ok {
		return ""
	}

	token := google.OAuthToken()
	switch {
	case token.Expiry.IsZero():
		return "token sem expiração"
	case token.Expiry.Before(now):
		return "token expirado"
	default:
		return "token válido até " + token.Expiry.Local().Format("02/01/2006 15:04")
	}
}

func RenderNotifications(w io.Writer, notifications []domain.SyncNotification) {
	if len(notifications) == 0 {
		fmt.Fprintln(w, "Nenhuma notificação.")
		return
	}

	for _, n := range notifications {
		fmt.Fprintf(w, "#%d [%s] %s (%s)\n", n.ID, n.Level, n.Message, n.CreatedAt.Local().Format("02/01/2006 15:04"))
	}
}

// RenderDashboard mostra a tela completa a partir de um snapshot
func RenderDashboard(w io.Writer, snapshot dashboard.Snapshot, now time.Time) {
	if snapshot.User != nil {
		fmt.Fprintf(w, "== %s (%s) ==\n", snapshot.User.Name, snapshot.User.Email)
	}
	if snapshot.Feedback != "" {
		fmt.Fprintln(w, snapshot.Feedback)
	}

	fmt.Fprintf(w, "\nPeríodo: %s\n", snapshot.RangeLabel)
	RenderMetricsState(w, snapshot.Metrics)

	fmt.Fprintln(w, "\nIntegrações")
	if snapshot.IntegrationsError != "" {
		fmt.Fprintln(w, snapshot.IntegrationsError)
	}
	RenderIntegrations(w, snapshot.Integrations, now)

	fmt.Fprintln(w, "\nNotificações")
	switch {
	case snapshot.NotificationsLoading:
		fmt.Fprintln(w, "Carregando notificações...")
	case snapshot.NotificationError != "":
		fmt.Fprintln(w, snapshot.NotificationError)
	default:
		RenderNotifications(w, snapshot.Notifications)
	}
}
