package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/insights-dashboard/internal/sandbox/store"
)

func upsertMetricQuery(metric store.DailyMetric) (string, []any, error) {
	return squirrel.
		Insert(dailyMetricsTable).
		Columns("user_id", "metric_date", "spend", "revenue", "roi").
		Values(
			metric.UserID,
			metric.MetricDate.Format(dateLayout),
			metric.Spend,
			metric.Revenue,
			metric.ROI,
		).
		Suffix(`
			ON CONFLICT (user_id, metric_date) DO UPDATE SET
				spend = EXCLUDED.spend,
				revenue = EXCLUDED.revenue,
				roi = EXCLUDED.roi,
				updated_at = NOW()
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *SandboxRepository) UpsertMetric(ctx context.Context, metric store.DailyMetric) (store.DailyMetric, error) {
	metric.MetricDate = store.Day(metric.MetricDate)

	query, args, err := upsertMetricQuery(metric)
	if err != nil {
		return store.DailyMetric{}, fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&metric.ID); err != nil {
		return store.DailyMetric{}, fmt.Errorf("erro ao gravar métrica diária: %w", err)
	}

	return metric, nil
}

func (r *SandboxRepository) Metric(ctx context.Context, userID int, day time.Time) (store.DailyMetric, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "metric_date", "spend", "revenue", "roi").
		From(dailyMetricsTable).
		Where(squirrel.Eq{"user_id": userID, "metric_date": store.Day(day).Format(dateLayout)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return store.DailyMetric{}, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var metric store.DailyMetric
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&metric.ID,
		&metric.UserID,
		&metric.MetricDate,
		&metric.Spend,
		&metric.Revenue,
		&metric.ROI,
	)
	if err == sql.ErrNoRows {
		return store.DailyMetric{}, store.ErrNotFound
	}
	if err != nil {
		return store.DailyMetric{}, fmt.Errorf("erro ao buscar métrica diária: %w", err)
	}

	metric.MetricDate = store.Day(metric.MetricDate)
	return metric, nil
}
