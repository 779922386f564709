package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

var (
	ErrNotFound     = errors.New("registro não encontrado")
	ErrEmailTaken   = errors.New("email já cadastrado")
	ErrTypeMismatch = errors.New("tipo de integração divergente")
)

// Store é a persistência do sandbox. Registros de outro usuário são tratados
// como inexistentes (ErrNotFound).
type Store interface {
	CreateUser(ctx context.Context, email, name, passwordHash string) (User, error)
	User(ctx context.Context, id int) (User, error)
	UserByEmail(ctx context.Context, email string) (User, error)
	// UserIDs lista os usuários em ordem crescente de id
	UserIDs(ctx context.Context) ([]int, error)

	CreateIntegration(ctx context.Context, userID int, integrationType string, credentials map[string]any) (Integration, error)
	// Integrations lista as integrações do usuário por id, opcionalmente filtradas por tipo
	Integrations(ctx context.Context, userID int, types ...string) ([]Integration, error)
	// UpdateIntegration aplica apply sobre uma cópia das credenciais atuais
	UpdateIntegration(ctx context.Context, userID, id int, integrationType string, apply func(credentials map[string]any)) (Integration, error)
	DeleteIntegration(ctx context.Context, userID, id int) error

	AddNotification(ctx context.Context, userID int, level, message string) (Notification, error)
	// UnreadNotifications lista as não lidas, das mais novas para as mais antigas
	UnreadNotifications(ctx context.Context, userID int) ([]Notification, error)
	MarkNotificationRead(ctx context.Context, userID, id int) error

	// UpsertMetric grava a linha do dia, mantendo o id quando ela já existe
	UpsertMetric(ctx context.Context, metric DailyMetric) (DailyMetric, error)
	// Metric devolve ErrNotFound quando o dia ainda não foi sincronizado
	Metric(ctx context.Context, userID int, day time.Time) (DailyMetric, error)
}

type Option func(*Memory)

// WithClock troca o relógio usado nos campos created_at
func WithClock(now func() time.Time) Option {
	return func(m *Memory) {
		m.now = now
	}
}

// Day normaliza t para a meia-noite UTC do mesmo dia de calendário
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
