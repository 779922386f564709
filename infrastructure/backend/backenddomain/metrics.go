package backenddomain

type MetricsSummary struct {
	MetricDate string  `json:"metric_date"`
	Spend      float64 `json:"spend"`
	Revenue    float64 `json:"revenue"`
	ROI        float64 `json:"roi"`
}

type MetricsResponse struct {
	Metrics      []MetricsSummary `json:"metrics"`
	TotalSpend   float64          `json:"total_spend"`
	TotalRevenue float64          `json:"total_revenue"`
	AverageROI   float64          `json:"average_roi"`
}

type DailyMetricRead struct {
	ID         int     `json:"id"`
	MetricDate string  `json:"metric_date"`
	Spend      float64 `json:"spend"`
	Revenue    float64 `json:"revenue"`
	ROI        float64 `json:"roi"`
}
