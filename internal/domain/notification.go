package domain

import "time"

type NotificationLevel string

const (
	NotificationInfo    NotificationLevel = "info"
	NotificationWarning NotificationLevel = "warning"
	NotificationError   NotificationLevel = "error"
)

// SyncNotification é um aviso gerado pelo servidor durante a sincronização das integrações.
// A lista mantida pelo cliente contém apenas notificações não lidas.
type SyncNotification struct {
	ID        int
	Level     NotificationLevel
	Message   string
	IsRead    bool
	CreatedAt time.Time
}

// WithoutNotification devolve uma nova lista sem a notificação id, preservando a ordem das demais
func WithoutNotification(notifications []SyncNotification, id int) []SyncNotification {
	remaining := make([]SyncNotification, 0, len(notifications))
	for _, n := range notifications {
		if n.ID != id {
			remaining = append(remaining, n)
		}
	}

	return remaining
}
