package repository

import (
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"

	"github.com/vfg2006/insights-dashboard/infrastructure/database/postgres"
	"github.com/vfg2006/insights-dashboard/internal/sandbox/store"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	usersTable         = "users"
	integrationsTable  = "integrations"
	notificationsTable = "notifications"
	dailyMetricsTable  = "daily_metrics"

	dateLayout = "2006-01-02"

	uniqueViolation = "23505"
)

// SandboxRepository é a implementação Postgres de store.Store
type SandboxRepository struct {
	conn *postgres.Connection
	now  func() time.Time
}

var _ store.Store = (*SandboxRepository)(nil)

func NewSandboxRepository(conn *postgres.Connection) *SandboxRepository {
	return &SandboxRepository{
		conn: conn,
		now:  time.Now,
	}
}

func isUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == uniqueViolation
	}
	return false
}
