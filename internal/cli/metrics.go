package cli

import (
	"context"
	"fmt"

	"github.com/vfg2006/insights-dashboard/internal/dashboard"
	"github.com/vfg2006/insights-dashboard/pkg/format"
	"github.com/vfg2006/insights-dashboard/pkg/utils"
)

// Show espera a busca de métricas em andamento e desenha o painel inteiro
func (c *CLI) Show(_ context.Context, _ []string) error {
	c.app.WaitMetrics()
	RenderDashboard(c.out, c.app.Snapshot(), c.now())
	return nil
}

func (c *CLI) Metrics(_ context.Context, _ []string) error {
	c.app.WaitMetrics()
	c.renderMetrics()
	return nil
}

func (c *CLI) renderMetrics() {
	snapshot := c.app.Snapshot()
	c.println("Período:", snapshot.RangeLabel)
	RenderMetricsState(c.out, snapshot.Metrics)
}

// Range troca o período. Um período invertido não chega ao servidor: o
// loader já fica em erro com a mensagem de validação.
func (c *CLI) Range(_ context.Context, args []string) error {
	if len(args) != 2 {
		c.println("Uso: range <yyyy-MM-dd> <yyyy-MM-dd>")
		return nil
	}

	if err := c.app.SetRange(args[0], args[1]); err != nil {
		c.println("Datas inválidas, use o formato yyyy-MM-dd.")
		return err
	}

	c.app.WaitMetrics()
	c.renderMetrics()
	return nil
}

func (c *CLI) Refresh(_ context.Context, _ []string) error {
	c.app.RefreshMetrics()
	c.app.WaitMetrics()
	c.renderMetrics()
	return nil
}

// Sync agrega um dia no servidor; sem argumento usa hoje
func (c *CLI) Sync(ctx context.Context, args []string) error {
	day := c.now()
	if len(args) > 0 {
		parsed, err := utils.ParseDate(args[0])
		if err != nil {
			c.println("Data inválida, use o formato yyyy-MM-dd.")
			return err
		}
		day = *parsed
	}

	metric, err := c.app.SyncMetrics(ctx, day)
	if err != nil {
		c.println(dashboard.MsgSyncFailed)
		return err
	}

	c.println(fmt.Sprintf("Dia %s sincronizado: gasto %s, receita %s, ROI %s",
		utils.FormatDate(metric.MetricDate),
		format.FormatCurrency(metric.Spend),
		format.FormatCurrency(metric.Revenue),
		format.FormatPercentage(metric.ROI),
	))

	c.app.WaitMetrics()
	return nil
}
