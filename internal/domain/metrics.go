package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/insights-dashboard/pkg/utils"
)

var ErrInvalidDateRange = errors.New("data final anterior à data inicial")

// DateRange é um período inclusivo de dias de calendário
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange cria um período a partir de datas yyyy-MM-dd
func NewDateRange(start, end string) (DateRange, error) {
	startDate, err := time.Parse(utils.DateLayout, start)
	if err != nil {
		return DateRange{}, fmt.Errorf("data inicial inválida %q: %w", start, err)
	}

	endDate, err := time.Parse(utils.DateLayout, end)
	if err != nil {
		return DateRange{}, fmt.Errorf("data final inválida %q: %w", end, err)
	}

	return DateRange{Start: startDate, End: endDate}, nil
}

// DefaultDateRange vai do primeiro dia do mês corrente até hoje
func DefaultDateRange(now time.Time) DateRange {
	return DateRange{Start: utils.FirstDayOfMonth(now), End: now}
}

func (r DateRange) StartDate() string {
	return utils.FormatDate(r.Start)
}

func (r DateRange) EndDate() string {
	return utils.FormatDate(r.End)
}

// Days retorna a quantidade de dias do período, contando as duas pontas
func (r DateRange) Days() int {
	return utils.DaysBetween(r.Start, r.End) + 1
}

func (r DateRange) Validate() error {
	if utils.DaysBetween(r.Start, r.End) < 0 {
		return ErrInvalidDateRange
	}
	return nil
}

// Label descreve o período, ex.: "2024-01-01 até 2024-01-31 (31 dias)"
func (r DateRange) Label() string {
	return fmt.Sprintf("%s até %s (%d dias)", r.StartDate(), r.EndDate(), r.Days())
}

// MetricsQuery parametriza a busca de métricas. UserID diferente de zero
// seleciona a rota legada por usuário, que não exige autenticação.
type MetricsQuery struct {
	Range  DateRange
	UserID int
}

type DailyMetric struct {
	MetricDate time.Time
	Spend      float64
	Revenue    float64
	ROI        float64
}

// MetricsResponse agrega as métricas diárias do período. ROI é uma razão (0.25 = 25%).
type MetricsResponse struct {
	Metrics      []DailyMetric
	TotalSpend   float64
	TotalRevenue float64
	AverageROI   float64
}
