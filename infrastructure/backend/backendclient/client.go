package backendclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	backenddomain "github.com/vfg2006/insights-dashboard/infrastructure/backend/backenddomain"
	"github.com/vfg2006/insights-dashboard/internal/config"
	"github.com/vfg2006/insights-dashboard/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const correlationIDHeader = "X-Correlation-ID"

// Client expõe um método por endpoint do backend, com corpos no formato do fio
type Client interface {
	Login(ctx context.Context, req backenddomain.LoginRequest) (*backenddomain.TokenResponse, error)
	RegisterUser(ctx context.Context, req backenddomain.UserCreate) (*backenddomain.UserRead, error)
	CurrentUser(ctx context.Context) (*backenddomain.UserRead, error)

	GetMetrics(ctx context.Context, startDate, endDate string) (*backenddomain.MetricsResponse, error)
	GetUserMetrics(ctx context.Context, userID int, startDate, endDate string) (*backenddomain.MetricsResponse, error)
	SyncMetrics(ctx context.Context, date string) (*backenddomain.DailyMetricRead, error)

	ConnectFacebook(ctx context.Context, userID int, req backenddomain.FacebookIntegrationCreate) (*backenddomain.IntegrationRead, error)
	ConnectAdSense(ctx context.Context, userID int, req backenddomain.AdSenseIntegrationCreate) (*backenddomain.IntegrationRead, error)
	ListIntegrations(ctx context.Context) ([]backenddomain.IntegrationRead, error)
	UpdateFacebookIntegration(ctx context.Context, id int, req backenddomain.FacebookIntegrationUpdate) (*backenddomain.IntegrationRead, error)
	UpdateAdSenseIntegration(ctx context.Context, id int, req backenddomain.AdSenseIntegrationUpdate) (*backenddomain.IntegrationRead, error)
	DeleteIntegration(ctx context.Context, id int) error

	ListNotifications(ctx context.Context) ([]backenddomain.NotificationRead, error)
	MarkNotificationRead(ctx context.Context, id int) error

	Session() *Session
}

type BackendClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	session    *Session
}

func NewClient(cfg config.API, session *Session) (*BackendClient, error) {
	baseURL, err := url.Parse(strings.TrimRight(cfg.URL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "API_URL inválida")
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("API_URL inválida: %q", cfg.URL)
	}

	if session == nil {
		session = NewSession()
	}

	return &BackendClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		session:    session,
	}, nil
}

func (c *BackendClient) Session() *Session {
	return c.session
}

type request struct {
	method string
	path   string
	query  url.Values
	body   any
	// anonymous desliga o header Authorization (endpoints legados)
	anonymous bool
	policy    statusPolicy
}

func (c *BackendClient) do(ctx context.Context, r request, out any) error {
	endpoint := c.baseURL.JoinPath(r.path)
	if len(r.query) > 0 {
		endpoint.RawQuery = r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		data, err := json.Marshal(r.body)
		if err != nil {
			return errors.Wrapf(err, "erro ao serializar corpo de %s %s", r.method, r.path)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, endpoint.String(), body)
	if err != nil {
		return errors.Wrapf(err, "erro ao criar a requisição %s %s", r.method, r.path)
	}

	req.Header.Set("Accept", "application/json")
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if !r.anonymous {
		if token := c.session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	if correlationID := log.GetCorrelationID(ctx); correlationID != "" {
		req.Header.Set(correlationIDHeader, correlationID)
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{"method": r.method, "path": r.path})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.WithError(err).Debug("Erro ao fazer a requisição")
		return &APIError{Err: ErrNetwork, Cause: err, Method: r.method, Path: r.path}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Err: ErrNetwork, Cause: err, Method: r.method, Path: r.path, StatusCode: resp.StatusCode}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{
			Err:        classifyStatus(resp.StatusCode, r.policy),
			StatusCode: resp.StatusCode,
			Method:     r.method,
			Path:       r.path,
			Detail:     errorDetail(payload),
		}
		logger.WithField("status_code", resp.StatusCode).WithError(apiErr).Debug("Requisição recusada pelo servidor")
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}

	if err := json.Unmarshal(payload, out); err != nil {
		logger.WithError(err).Error("Erro ao decodificar JSON")
		return &APIError{Err: ErrUnexpectedStatus, Cause: err, Method: r.method, Path: r.path, StatusCode: resp.StatusCode}
	}

	return nil
}

// errorDetail extrai o campo detail do corpo de erro, se houver
func errorDetail(payload []byte) string {
	if len(payload) == 0 {
		return ""
	}

	var body backenddomain.ErrorResponse
	if err := json.Unmarshal(payload, &body); err != nil || body.Detail == nil {
		return ""
	}

	if detail, ok := body.Detail.(string); ok {
		return detail
	}

	raw, err := json.Marshal(body.Detail)
	if err != nil {
		return ""
	}
	return string(raw)
}
