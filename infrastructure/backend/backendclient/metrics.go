package backendclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	backenddomain "github.com/vfg2006/insights-dashboard/infrastructure/backend/backenddomain"
)

func rangeQuery(startDate, endDate string) url.Values {
	params := url.Values{}
	params.Add("start_date", startDate)
	params.Add("end_date", endDate)
	return params
}

func (c *BackendClient) GetMetrics(ctx context.Context, startDate, endDate string) (*backenddomain.MetricsResponse, error) {
	var resp backenddomain.MetricsResponse
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/metrics",
		query:  rangeQuery(startDate, endDate),
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// GetUserMetrics usa a rota legada por usuário, que não exige autenticação
func (c *BackendClient) GetUserMetrics(ctx context.Context, userID int, startDate, endDate string) (*backenddomain.MetricsResponse, error) {
	var resp backenddomain.MetricsResponse
	err := c.do(ctx, request{
		method:    http.MethodGet,
		path:      fmt.Sprintf("/metrics/%d", userID),
		query:     rangeQuery(startDate, endDate),
		anonymous: true,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *BackendClient) SyncMetrics(ctx context.Context, date string) (*backenddomain.DailyMetricRead, error) {
	params := url.Values{}
	params.Add("date", date)

	var resp backenddomain.DailyMetricRead
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/metrics/sync",
		query:  params,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}
