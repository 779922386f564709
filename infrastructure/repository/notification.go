package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/insights-dashboard/internal/sandbox/store"
)

func (r *SandboxRepository) AddNotification(ctx context.Context, userID int, level, message string) (store.Notification, error) {
	notification := store.Notification{
		UserID:    userID,
		Level:     level,
		Message:   message,
		CreatedAt: r.now().UTC(),
	}

	query, args, err := squirrel.
		Insert(notificationsTable).
		Columns("user_id", "level", "message", "created_at").
		Values(userID, level, message, notification.CreatedAt).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return store.Notification{}, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&notification.ID); err != nil {
		return store.Notification{}, fmt.Errorf("erro ao inserir notificação: %w", err)
	}

	return notification, nil
}

func (r *SandboxRepository) UnreadNotifications(ctx context.Context, userID int) ([]store.Notification, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "level", "message", "is_read", "created_at").
		From(notificationsTable).
		Where(squirrel.Eq{"user_id": userID, "is_read": false}).
		OrderBy("created_at DESC", "id DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar notificações: %w", err)
	}
	defer rows.Close()

	notifications := make([]store.Notification, 0)
	for rows.Next() {
		var n store.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Level, &n.Message, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear notificação: %w", err)
		}
		n.CreatedAt = n.CreatedAt.UTC()
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return notifications, nil
}

func (r *SandboxRepository) MarkNotificationRead(ctx context.Context, userID, id int) error {
	query, args, err := squirrel.
		Update(notificationsTable).
		Set("is_read", true).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao marcar notificação como lida: %w", err)
	}

	return requireAffected(result)
}
