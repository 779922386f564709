package store

import (
	"maps"
	"time"
)

type User struct {
	ID           int
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// Integration guarda as credenciais sem tipo, como o backend devolve na leitura
type Integration struct {
	ID          int
	UserID      int
	Type        string
	Credentials map[string]any
	CreatedAt   time.Time
}

func (i Integration) clone() Integration {
	i.Credentials = maps.Clone(i.Credentials)
	return i
}

// Credential devolve a credencial key como texto, vazio se ausente
func (i Integration) Credential(key string) string {
	value, _ := i.Credentials[key].(string)
	return value
}

type Notification struct {
	ID        int
	UserID    int
	Level     string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}

// DailyMetric é a linha agregada de um usuário em um dia. ID zero indica linha
// calculada e ainda não sincronizada.
type DailyMetric struct {
	ID         int
	UserID     int
	MetricDate time.Time
	Spend      float64
	Revenue    float64
	ROI        float64
}
