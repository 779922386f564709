package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/insights-dashboard/infrastructure/backend"
	"github.com/vfg2006/insights-dashboard/infrastructure/backend/backendclient"
	"github.com/vfg2006/insights-dashboard/internal/cli"
	"github.com/vfg2006/insights-dashboard/internal/config"
	"github.com/vfg2006/insights-dashboard/internal/dashboard"
	"github.com/vfg2006/insights-dashboard/internal/scheduler"
	"github.com/vfg2006/insights-dashboard/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	log.Setup(cfg.ParseLogLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, err := backendclient.NewClient(cfg.API, backendclient.NewSession())
	if err != nil {
		logrus.Fatal(err)
	}

	app := dashboard.NewApp(
		backend.New(client),
		dashboard.WithDefaultRangeDays(cfg.Dashboard.DefaultRangeDays),
		dashboard.WithMetricsTimeout(cfg.API.Timeout),
	)
	defer app.Close()

	if cfg.API.Token != "" {
		if err := app.Restore(ctx, cfg.API.Token); err != nil {
			logrus.WithError(err).Warn("Não foi possível restaurar a sessão a partir de API_TOKEN")
		} else {
			logrus.Info("Sessão restaurada a partir de API_TOKEN")
		}
	}

	autoRefreshService := scheduler.NewAutoRefreshService(app, cfg)
	if err := autoRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar a atualização automática do dashboard")
	}

	cli.New(app, os.Stdin, os.Stdout).Run(ctx)
}
