package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
)

// schema é idempotente e roda a cada inicialização do sandbox
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            SERIAL PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		name          TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS integrations (
		id          SERIAL PRIMARY KEY,
		user_id     INTEGER NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		type        TEXT NOT NULL,
		credentials JSONB NOT NULL DEFAULT '{}',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS integrations_user_id_idx ON integrations (user_id)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id         SERIAL PRIMARY KEY,
		user_id    INTEGER NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		level      TEXT NOT NULL,
		message    TEXT NOT NULL,
		is_read    BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS notifications_unread_idx ON notifications (user_id) WHERE NOT is_read`,
	`CREATE TABLE IF NOT EXISTS daily_metrics (
		id          SERIAL PRIMARY KEY,
		user_id     INTEGER NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		metric_date DATE NOT NULL,
		spend       DOUBLE PRECISION NOT NULL DEFAULT 0,
		revenue     DOUBLE PRECISION NOT NULL DEFAULT 0,
		roi         DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, metric_date)
	)`,
}

// Migrate cria as tabelas que ainda não existem
func (r *SandboxRepository) Migrate(ctx context.Context) error {
	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, statement := range schema {
			if _, err := tx.ExecContext(ctx, statement); err != nil {
				return fmt.Errorf("erro ao executar migração %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithField("statements", len(schema)).Info("Esquema do sandbox verificado")
	return nil
}
