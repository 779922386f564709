package store

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/vfg2006/insights-dashboard/pkg/utils"
)

// Memory guarda o estado do sandbox em memória. Todos os métodos devolvem
// cópias, nunca ponteiros para o estado interno.
type Memory struct {
	mu  sync.RWMutex
	now func() time.Time

	lastID        map[string]int
	users         map[int]User
	integrations  map[int]Integration
	notifications map[int]Notification
	// usuário -> yyyy-MM-dd -> linha
	metrics map[int]map[string]DailyMetric
}

var _ Store = (*Memory)(nil)

func NewMemory(opts ...Option) *Memory {
	m := &Memory{
		now:           time.Now,
		lastID:        make(map[string]int),
		users:         make(map[int]User),
		integrations:  make(map[int]Integration),
		notifications: make(map[int]Notification),
		metrics:       make(map[int]map[string]DailyMetric),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

func (m *Memory) nextID(table string) int {
	m.lastID[table]++
	return m.lastID[table]
}

func (m *Memory) CreateUser(_ context.Context, email, name, passwordHash string) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email {
			return User{}, ErrEmailTaken
		}
	}

	user := User{
		ID:           m.nextID("users"),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    m.now().UTC(),
	}
	m.users[user.ID] = user

	return user, nil
}

func (m *Memory) User(_ context.Context, id int) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

func (m *Memory) UserByEmail(_ context.Context, email string) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (m *Memory) UserIDs(_ context.Context) ([]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Sorted(maps.Keys(m.users)), nil
}

func (m *Memory) CreateIntegration(_ context.Context, userID int, integrationType string, credentials map[string]any) (Integration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	integration := Integration{
		ID:          m.nextID("integrations"),
		UserID:      userID,
		Type:        integrationType,
		Credentials: maps.Clone(credentials),
		CreatedAt:   m.now().UTC(),
	}
	m.integrations[integration.ID] = integration

	return integration.clone(), nil
}

func (m *Memory) Integrations(_ context.Context, userID int, types ...string) ([]Integration, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Integration, 0)
	for _, i := range m.integrations {
		if i.UserID != userID {
			continue
		}
		if len(types) > 0 && !slices.Contains(types, i.Type) {
			continue
		}
		result = append(result, i.clone())
	}

	slices.SortFunc(result, func(a, b Integration) int { return cmp.Compare(a.ID, b.ID) })
	return result, nil
}

func (m *Memory) UpdateIntegration(_ context.Context, userID, id int, integrationType string, apply func(credentials map[string]any)) (Integration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	integration, ok := m.integrations[id]
	if !ok || integration.UserID != userID {
		return Integration{}, ErrNotFound
	}

	if integration.Type != integrationType {
		return Integration{}, ErrTypeMismatch
	}

	credentials := maps.Clone(integration.Credentials)
	apply(credentials)
	integration.Credentials = credentials
	m.integrations[id] = integration

	return integration.clone(), nil
}

func (m *Memory) DeleteIntegration(_ context.Context, userID, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	integration, ok := m.integrations[id]
	if !ok || integration.UserID != userID {
		return ErrNotFound
	}

	delete(m.integrations, id)
	return nil
}

func (m *Memory) AddNotification(_ context.Context, userID int, level, message string) (Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	notification := Notification{
		ID:        m.nextID("notifications"),
		UserID:    userID,
		Level:     level,
		Message:   message,
		CreatedAt: m.now().UTC(),
	}
	m.notifications[notification.ID] = notification

	return notification, nil
}

func (m *Memory) UnreadNotifications(_ context.Context, userID int) ([]Notification, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Notification, 0)
	for _, n := range m.notifications {
		if n.UserID == userID && !n.IsRead {
			result = append(result, n)
		}
	}

	slices.SortFunc(result, func(a, b Notification) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return result, nil
}

func (m *Memory) MarkNotificationRead(_ context.Context, userID, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	notification, ok := m.notifications[id]
	if !ok || notification.UserID != userID {
		return ErrNotFound
	}

	notification.IsRead = true
	m.notifications[id] = notification
	return nil
}

func (m *Memory) UpsertMetric(_ context.Context, metric DailyMetric) (DailyMetric, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	byDay, ok := m.metrics[metric.UserID]
	if !ok {
		byDay = make(map[string]DailyMetric)
		m.metrics[metric.UserID] = byDay
	}

	metric.MetricDate = Day(metric.MetricDate)
	key := utils.FormatDate(metric.MetricDate)
	if existing, ok := byDay[key]; ok {
		metric.ID = existing.ID
	} else {
		metric.ID = m.nextID("metrics")
	}

	byDay[key] = metric
	return metric, nil
}

func (m *Memory) Metric(_ context.Context, userID int, day time.Time) (DailyMetric, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	metric, ok := m.metrics[userID][utils.FormatDate(day)]
	if !ok {
		return DailyMetric{}, ErrNotFound
	}
	return metric, nil
}
