package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/insights-dashboard/internal/config"
	"github.com/vfg2006/insights-dashboard/pkg/utils"
)

// DaySyncer sincroniza as métricas de um dia para todos os usuários
type DaySyncer interface {
	SyncAll(ctx context.Context, day time.Time, maxConcurrent int) int
}

// DailyMetricsSyncConfig representa a configuração da sincronização diária do sandbox
type DailyMetricsSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// DailyMetricsSyncService agenda a sincronização diária das métricas de todos os usuários
type DailyMetricsSyncService struct {
	scheduler           *gocron.Scheduler
	config              DailyMetricsSyncConfig
	syncer              DaySyncer
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewDailyMetricsSyncService(syncer DaySyncer, appConfig *config.Config) *DailyMetricsSyncService {
	syncConfig := DailyMetricsSyncConfig{
		CronSchedule:      appConfig.Sandbox.DailySyncCron,
		MaxConcurrentJobs: appConfig.Sandbox.DailySyncMaxConcurrent,
		SyncEnabled:       appConfig.Sandbox.DailySyncEnabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração da sincronização diária de métricas carregada")

	return &DailyMetricsSyncService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    syncConfig,
		syncer:    syncer,
		now:       time.Now,
	}
}

// Start inicia o agendador
func (s *DailyMetricsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização diária de métricas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização diária de métricas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncToday(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização diária de métricas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização diária de métricas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncToday sincroniza o dia corrente (UTC) de todos os usuários. Execuções
// sobrepostas são ignoradas.
func (s *DailyMetricsSyncService) syncToday(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização diária de métricas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := s.now()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.syncMutex.Unlock()
	}()

	day := startTime.UTC()
	users := s.syncer.SyncAll(ctx, day, s.config.MaxConcurrentJobs)

	logrus.WithFields(logrus.Fields{
		"date":     utils.FormatDate(day),
		"users":    users,
		"duration": time.Since(startTime).String(),
	}).Info("Sincronização diária de métricas concluída")
}

// TriggerManualSync executa a sincronização imediatamente, fora do agendamento
func (s *DailyMetricsSyncService) TriggerManualSync(ctx context.Context) {
	logrus.Info("Iniciando sincronização manual de métricas")
	s.syncToday(ctx)
}

// GetStatus retorna o status atual do agendador
func (s *DailyMetricsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
