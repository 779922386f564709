package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/insights-dashboard/internal/config"
	"github.com/vfg2006/insights-dashboard/pkg/log"
)

// Refresher é a parte do dashboard que o agendador atualiza
type Refresher interface {
	Authenticated() bool
	LoadNotifications(ctx context.Context) error
	RefreshMetrics()
}

// AutoRefreshConfig representa a configuração da atualização automática
type AutoRefreshConfig struct {
	NotificationsCron string
	MetricsCron       string
	Enabled           bool
}

// AutoRefreshService recarrega notificações e métricas periodicamente enquanto há sessão
type AutoRefreshService struct {
	scheduler *gocron.Scheduler
	config    AutoRefreshConfig
	refresher Refresher

	syncMutex          sync.Mutex
	notificationsBusy  bool
	lastNotificationAt time.Time
	lastMetricsAt      time.Time
}

func NewAutoRefreshService(refresher Refresher, appConfig *config.Config) *AutoRefreshService {
	refreshConfig := AutoRefreshConfig{
		NotificationsCron: appConfig.Dashboard.NotificationsRefreshCron,
		MetricsCron:       appConfig.Dashboard.MetricsRefreshCron,
		Enabled:           appConfig.Dashboard.AutoRefreshEnabled,
	}

	logrus.WithFields(logrus.Fields{
		"notifications_cron": refreshConfig.NotificationsCron,
		"metrics_cron":       refreshConfig.MetricsCron,
		"enabled":            refreshConfig.Enabled,
	}).Debug("Configuração da atualização automática carregada")

	return &AutoRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    refreshConfig,
		refresher: refresher,
	}
}

// Start agenda os jobs e para o agendador quando ctx for cancelado
func (s *AutoRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Debug("Atualização automática desabilitada por configuração")
		return nil
	}

	if s.config.NotificationsCron != "" {
		if _, err := s.scheduler.Cron(s.config.NotificationsCron).Do(s.refreshNotifications, ctx); err != nil {
			return fmt.Errorf("erro ao agendar atualização de notificações: %w", err)
		}
	}

	if s.config.MetricsCron != "" {
		if _, err := s.scheduler.Cron(s.config.MetricsCron).Do(s.refreshMetrics); err != nil {
			return fmt.Errorf("erro ao agendar atualização de métricas: %w", err)
		}
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Debug("Parando agendador de atualização automática")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *AutoRefreshService) refreshNotifications(ctx context.Context) {
	if !s.refresher.Authenticated() {
		return
	}

	s.syncMutex.Lock()
	if s.notificationsBusy {
		s.syncMutex.Unlock()
		logrus.Debug("Atualização de notificações já em andamento, ignorando")
		return
	}
	s.notificationsBusy = true
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.notificationsBusy = false
		s.syncMutex.Unlock()
	}()

	jobCtx, _ := log.WithCorrelationID(ctx)
	if err := s.refresher.LoadNotifications(jobCtx); err != nil {
		log.ForContext(jobCtx).WithError(err).Warn("scheduler: failed to refresh notifications")
		return
	}

	s.syncMutex.Lock()
	s.lastNotificationAt = time.Now()
	s.syncMutex.Unlock()
}

// O loader de métricas já descarta buscas sobrepostas
func (s *AutoRefreshService) refreshMetrics() {
	if !s.refresher.Authenticated() {
		return
	}

	s.refresher.RefreshMetrics()

	s.syncMutex.Lock()
	s.lastMetricsAt = time.Now()
	s.syncMutex.Unlock()
}

// LastRuns informa quando cada atualização terminou pela última vez
func (s *AutoRefreshService) LastRuns() (notifications, metrics time.Time) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.lastNotificationAt, s.lastMetricsAt
}
