package aggregating

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/vfg2006/insights-dashboard/infrastructure/backend/backenddomain"
	"github.com/vfg2006/insights-dashboard/internal/sandbox/store"
	"github.com/vfg2006/insights-dashboard/pkg/log"
	"github.com/vfg2006/insights-dashboard/pkg/utils"
)

// MaxRangeDays limita o período de uma consulta de métricas
const MaxRangeDays = 731

var (
	ErrRangeTooLarge = errors.Errorf("período maior que %d dias", MaxRangeDays)
	ErrInvertedRange = errors.New("data final anterior à data inicial")
)

// Summary é o agregado de um período: uma linha por dia
type Summary struct {
	Metrics      []store.DailyMetric
	TotalSpend   float64
	TotalRevenue float64
	AverageROI   float64
}

// Service agrega gasto e receita diários das integrações de cada usuário.
// Os valores de cada conta são sintéticos e determinísticos por conta e dia.
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// CalculateROI devolve (receita - gasto) / gasto, zero quando não há gasto
func CalculateROI(spend, revenue float64) float64 {
	if spend == 0 {
		return 0
	}
	return (revenue - spend) / spend
}

// syntheticFigure gera um valor estável em [lo, hi) para a semente e o dia
func syntheticFigure(seed string, day time.Time, lo, hi float64) float64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))
	_, _ = h.Write([]byte(utils.FormatDate(day)))

	fraction := float64(h.Sum64()%10_000) / 10_000
	return utils.RoundWithTwoDecimalPlace(lo + fraction*(hi-lo))
}

type dayTotals struct {
	spend   float64
	revenue float64
	skipped []store.Integration
}

func (s *Service) compute(ctx context.Context, userID int, day time.Time) (dayTotals, error) {
	var totals dayTotals

	integrations, err := s.store.Integrations(ctx, userID, backenddomain.TypeFacebookAds, backenddomain.TypeGoogleAdSense)
	if err != nil {
		return dayTotals{}, errors.Wrap(err, "erro ao buscar integrações")
	}

	for _, integration := range integrations {
		account := integration.Credential("account_id")

		switch integration.Type {
		case backenddomain.TypeFacebookAds:
			totals.spend += syntheticFigure("facebook:spend:"+account, day, 20, 400)
			totals.revenue += syntheticFigure("facebook:revenue:"+account, day, 10, 700)
		case backenddomain.TypeGoogleAdSense:
			if tokenExpired(integration, day) {
				totals.skipped = append(totals.skipped, integration)
				continue
			}
			totals.revenue += syntheticFigure("adsense:earnings:"+account, day, 5, 150)
		}
	}

	totals.spend = utils.RoundWithTwoDecimalPlace(totals.spend)
	totals.revenue = utils.RoundWithTwoDecimalPlace(totals.revenue)
	return totals, nil
}

// tokenExpired indica se o token do AdSense já estava vencido no fim do dia
func tokenExpired(integration store.Integration, day time.Time) bool {
	raw := integration.Credential("token_expiry")
	if raw == "" {
		return false
	}

	expiry, err := backenddomain.ParseTimestamp(raw)
	if err != nil {
		return false
	}

	endOfDay := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, time.UTC)
	return expiry.Before(endOfDay)
}

// SyncDay recalcula e grava a linha do dia. Contas com token vencido geram uma
// notificação de aviso e ficam de fora do total.
func (s *Service) SyncDay(ctx context.Context, userID int, day time.Time) (store.DailyMetric, error) {
	day = store.Day(day)
	totals, err := s.compute(ctx, userID, day)
	if err != nil {
		return store.DailyMetric{}, err
	}

	for _, integration := range totals.skipped {
		_, err := s.store.AddNotification(ctx, userID, "warning", fmt.Sprintf(
			"Token do Google AdSense da conta %s expirado. Atualize as credenciais para sincronizar %s.",
			integration.Credential("account_id"), utils.FormatDate(day)))
		if err != nil {
			return store.DailyMetric{}, errors.Wrap(err, "erro ao gravar notificação")
		}
	}

	metric, err := s.store.UpsertMetric(ctx, store.DailyMetric{
		UserID:     userID,
		MetricDate: day,
		Spend:      totals.spend,
		Revenue:    totals.revenue,
		ROI:        CalculateROI(totals.spend, totals.revenue),
	})
	if err != nil {
		return store.DailyMetric{}, errors.Wrap(err, "erro ao gravar métrica diária")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"user_id":   userID,
		"date":      utils.FormatDate(day),
		"spend":     metric.Spend,
		"revenue":   metric.Revenue,
		"skipped":   len(totals.skipped),
		"metric_id": metric.ID,
	}).Info("aggregating: dia sincronizado")

	return metric, nil
}

// List devolve uma linha por dia do período. Dias ainda não sincronizados são
// calculados na hora e não são gravados.
func (s *Service) List(ctx context.Context, userID int, start, end time.Time) (Summary, error) {
	start, end = store.Day(start), store.Day(end)

	if end.Before(start) {
		return Summary{}, ErrInvertedRange
	}
	if utils.DaysBetween(start, end) >= MaxRangeDays {
		return Summary{}, ErrRangeTooLarge
	}

	summary := Summary{Metrics: make([]store.DailyMetric, 0)}
	var roiSum float64
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		metric, err := s.store.Metric(ctx, userID, day)
		if errors.Is(err, store.ErrNotFound) {
			totals, err := s.compute(ctx, userID, day)
			if err != nil {
				return Summary{}, err
			}
			metric = store.DailyMetric{
				UserID:     userID,
				MetricDate: day,
				Spend:      totals.spend,
				Revenue:    totals.revenue,
				ROI:        CalculateROI(totals.spend, totals.revenue),
			}
		} else if err != nil {
			return Summary{}, errors.Wrap(err, "erro ao buscar métrica diária")
		}

		summary.Metrics = append(summary.Metrics, metric)
		summary.TotalSpend += metric.Spend
		summary.TotalRevenue += metric.Revenue
		roiSum += metric.ROI
	}

	summary.TotalSpend = utils.RoundWithTwoDecimalPlace(summary.TotalSpend)
	summary.TotalRevenue = utils.RoundWithTwoDecimalPlace(summary.TotalRevenue)
	summary.AverageROI = roiSum / float64(len(summary.Metrics))

	return summary, nil
}

// SyncAll sincroniza o dia para todos os usuários, usando até maxConcurrent
// goroutines. Falhas de um usuário são registradas e não interrompem os demais.
func (s *Service) SyncAll(ctx context.Context, day time.Time, maxConcurrent int) int {
	userIDs, err := s.store.UserIDs(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("aggregating: erro ao listar usuários")
		return 0
	}
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	semaphore := make(chan struct{}, maxConcurrent)
	var wg sync.WaitGroup

	for _, userID := range userIDs {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(id int) {
			defer func() {
				<-semaphore
				wg.Done()
			}()
			if _, err := s.SyncDay(ctx, id, day); err != nil {
				log.ForContext(ctx).WithError(err).WithField("user_id", id).Error("aggregating: erro ao sincronizar dia")
			}
		}(userID)
	}

	wg.Wait()

	return len(userIDs)
}

