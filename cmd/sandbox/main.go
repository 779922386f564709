package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/insights-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/insights-dashboard/infrastructure/repository"
	"github.com/vfg2006/insights-dashboard/internal/config"
	"github.com/vfg2006/insights-dashboard/internal/sandbox"
	"github.com/vfg2006/insights-dashboard/internal/scheduler"
	"github.com/vfg2006/insights-dashboard/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.ParseLogLevel())
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var opts []sandbox.Option
	if cfg.Database.DSN != "" {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		repo := repository.NewSandboxRepository(pgConn)
		if err := repo.Migrate(ctx); err != nil {
			logrus.WithError(err).Fatal("Erro ao preparar o esquema do banco de dados")
		}

		opts = append(opts, sandbox.WithStore(repo))
		logrus.Info("Sandbox usando armazenamento Postgres")
	} else {
		logrus.Info("DATABASE_URL vazio, sandbox usando armazenamento em memória")
	}

	server, err := sandbox.New(cfg, opts...)
	if err != nil {
		logrus.Fatal(err)
	}

	if cfg.Sandbox.SeedDemo {
		if err := server.Seed(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao criar os dados de demonstração")
		}
	}

	dailySyncService := scheduler.NewDailyMetricsSyncService(server.Metrics(), cfg)
	if err := dailySyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização diária de métricas")
	} else {
		logrus.Info("Agendador de sincronização diária de métricas iniciado com sucesso")
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig.DSN)
	if err != nil {
		logrus.WithError(err).Fatal("Falha ao conectar ao banco de dados")
	}

	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")
	return conn
}
