package backendclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	backenddomain "github.com/vfg2006/insights-dashboard/infrastructure/backend/backenddomain"
	"github.com/vfg2006/insights-dashboard/internal/config"
	"github.com/vfg2006/insights-dashboard/pkg/log"
)

type capturedRequest struct {
	method string
	path   string
	query  string
	header http.Header
	body   []byte
}

type recorder struct {
	mu       sync.Mutex
	requests []capturedRequest
}

func (r *recorder) add(req capturedRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, req)
}

func (r *recorder) all() []capturedRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]capturedRequest(nil), r.requests...)
}

func newTestClient(t *testing.T, status int, response string) (*BackendClient, *recorder) {
	t.Helper()

	rec := &recorder{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rec.add(capturedRequest{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.RawQuery,
			header: r.Header.Clone(),
			body:   body,
		})

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(config.API{URL: server.URL, Timeout: 5 * time.Second}, NewSession())
	require.NoError(t, err)

	return client, rec
}

func decodeBody(t *testing.T, body []byte) map[string]any {
	t.Helper()

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	return decoded
}

func TestNewClient_InvalidURL(t *testing.T) {
	_, err := NewClient(config.API{URL: "localhost"}, nil)
	assert.Error(t, err)

	client, err := NewClient(config.API{URL: "http://localhost:8000/"}, nil)
	require.NoError(t, err)
	assert.NotNil(t, client.Session())
}

func TestBackendClient_Login(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{
		"access_token": "T1",
		"token_type": "bearer",
		"user": {"id": 7, "email": "a@b.com", "name": "Ana", "created_at": "2024-01-02T03:04:05"}
	}`)

	resp, err := client.Login(context.Background(), backenddomain.LoginRequest{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)

	assert.Equal(t, "T1", resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 7, resp.User.ID)
	assert.Equal(t, 2024, resp.User.CreatedAt.Year())

	require.Len(t, rec.all(), 1)
	req := rec.all()[0]
	assert.Equal(t, http.MethodPost, req.method)
	assert.Equal(t, "/auth/login", req.path)
	assert.Equal(t, map[string]any{"email": "a@b.com", "password": "x"}, decodeBody(t, req.body))
	assert.Empty(t, req.header.Get("Authorization"))

	// login não aplica o token sozinho
	assert.False(t, client.Session().Authenticated())
}

func TestBackendClient_AuthHeaderFollowsSession(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{"metrics":[],"total_spend":0,"total_revenue":0,"average_roi":0}`)
	ctx := context.Background()

	_, err := client.GetMetrics(ctx, "2024-01-01", "2024-01-31")
	require.NoError(t, err)

	client.Session().SetAuthToken("T1")
	_, err = client.GetMetrics(ctx, "2024-01-01", "2024-01-31")
	require.NoError(t, err)

	client.Session().SetAuthToken("")
	_, err = client.GetMetrics(ctx, "2024-01-01", "2024-01-31")
	require.NoError(t, err)

	require.Len(t, rec.all(), 3)
	assert.Empty(t, rec.all()[0].header.Get("Authorization"))
	assert.Equal(t, "Bearer T1", rec.all()[1].header.Get("Authorization"))
	assert.Empty(t, rec.all()[2].header.Get("Authorization"))

	assert.Equal(t, "/metrics", rec.all()[1].path)
	assert.Equal(t, "end_date=2024-01-31&start_date=2024-01-01", rec.all()[1].query)
}

func TestBackendClient_LegacyRoutesAreAnonymous(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{"metrics":[],"total_spend":0,"total_revenue":0,"average_roi":0}`)
	client.Session().SetAuthToken("T1")

	_, err := client.GetUserMetrics(context.Background(), 3, "2024-01-01", "2024-01-02")
	require.NoError(t, err)

	require.Len(t, rec.all(), 1)
	assert.Equal(t, "/metrics/3", rec.all()[0].path)
	assert.Empty(t, rec.all()[0].header.Get("Authorization"))
}

func TestBackendClient_CorrelationID(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `[]`)

	ctx, correlationID := log.WithCorrelationID(context.Background())
	_, err := client.ListNotifications(ctx)
	require.NoError(t, err)

	require.Len(t, rec.all(), 1)
	assert.Equal(t, correlationID, rec.all()[0].header.Get(correlationIDHeader))
}

func TestBackendClient_ConnectFacebookOmitsAbsentFields(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{
		"id": 1, "type": "facebook_ads",
		"credentials": {"account_id": "act_1", "access_token": "tok"},
		"created_at": "2024-01-02T03:04:05Z"
	}`)
	client.Session().SetAuthToken("T1")

	resp, err := client.ConnectFacebook(context.Background(), 0, backenddomain.FacebookIntegrationCreate{
		AccountID:   "act_1",
		AccessToken: "tok",
	})
	require.NoError(t, err)
	assert.Equal(t, backenddomain.TypeFacebookAds, resp.Type)
	assert.NotContains(t, resp.Credentials, "business_id")

	req := rec.all()[0]
	assert.Equal(t, "/integrations/facebook", req.path)
	assert.Equal(t, "Bearer T1", req.header.Get("Authorization"))
	assert.Equal(t, map[string]any{"account_id": "act_1", "access_token": "tok"}, decodeBody(t, req.body))
}

func TestBackendClient_ConnectAdSensePassesExpiryThrough(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{"id": 2, "type": "google_adsense", "credentials": {}, "created_at": "2024-01-02T03:04:05Z"}`)

	expiresIn := 3600
	expiry := "2030-01-01T00:00:00Z"
	_, err := client.ConnectAdSense(context.Background(), 9, backenddomain.AdSenseIntegrationCreate{
		AccountID:    "pub-1",
		AccessToken:  "a",
		RefreshToken: "r",
		ClientID:     "c",
		ClientSecret: "s",
		ExpiresIn:    &expiresIn,
		TokenExpiry:  &expiry,
	})
	require.NoError(t, err)

	req := rec.all()[0]
	assert.Equal(t, "/integrations/adsense/9", req.path)

	body := decodeBody(t, req.body)
	assert.Equal(t, float64(3600), body["expires_in"])
	assert.Equal(t, expiry, body["token_expiry"])
	assert.Equal(t, "s", body["client_secret"])
}

func TestBackendClient_PartialUpdateSendsOnlySuppliedFields(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{"id": 4, "type": "facebook_ads", "credentials": {"account_id": "act_2"}, "created_at": "2024-01-02T03:04:05Z"}`)

	accountID := "act_2"
	empty := ""
	_, err := client.UpdateFacebookIntegration(context.Background(), 4, backenddomain.FacebookIntegrationUpdate{
		AccountID:  &accountID,
		BusinessID: &empty,
	})
	require.NoError(t, err)

	req := rec.all()[0]
	assert.Equal(t, http.MethodPut, req.method)
	assert.Equal(t, "/integrations/facebook/4", req.path)
	assert.Equal(t, map[string]any{"account_id": "act_2", "business_id": ""}, decodeBody(t, req.body))
}

func TestBackendClient_ErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		call   func(c *BackendClient) error
		want   error
	}{
		{
			name:   "login 401",
			status: http.StatusUnauthorized,
			call: func(c *BackendClient) error {
				_, err := c.Login(context.Background(), backenddomain.LoginRequest{})
				return err
			},
			want: ErrAuthentication,
		},
		{
			name:   "login 422",
			status: http.StatusUnprocessableEntity,
			call: func(c *BackendClient) error {
				_, err := c.Login(context.Background(), backenddomain.LoginRequest{})
				return err
			},
			want: ErrAuthentication,
		},
		{
			name:   "registro com email duplicado",
			status: http.StatusBadRequest,
			call: func(c *BackendClient) error {
				_, err := c.RegisterUser(context.Background(), backenddomain.UserCreate{})
				return err
			},
			want: ErrConflict,
		},
		{
			name:   "métricas sem token",
			status: http.StatusUnauthorized,
			call: func(c *BackendClient) error {
				_, err := c.GetMetrics(context.Background(), "2024-01-02", "2024-01-01")
				return err
			},
			want: ErrAuthentication,
		},
		{
			name:   "métricas com intervalo invertido",
			status: http.StatusBadRequest,
			call: func(c *BackendClient) error {
				_, err := c.GetMetrics(context.Background(), "2024-01-02", "2024-01-01")
				return err
			},
			want: ErrValidation,
		},
		{
			name:   "delete de id inexistente",
			status: http.StatusNotFound,
			call: func(c *BackendClient) error {
				return c.DeleteIntegration(context.Background(), 99)
			},
			want: ErrNotFound,
		},
		{
			name:   "erro interno",
			status: http.StatusInternalServerError,
			call: func(c *BackendClient) error {
				_, err := c.ListIntegrations(context.Background())
				return err
			},
			want: ErrUnexpectedStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, tt.status, `{"detail":"Incorrect email or password"}`)

			err := tt.call(client)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, "Incorrect email or password", apiErr.Detail)
		})
	}
}

func TestBackendClient_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	client, err := NewClient(config.API{URL: server.URL}, nil)
	require.NoError(t, err)

	err = client.MarkNotificationRead(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNetwork))
}

func TestBackendClient_CancelledContext(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, `[]`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListIntegrations(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNetwork))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestErrorDetail_ValidationList(t *testing.T) {
	detail := errorDetail([]byte(`{"detail":[{"loc":["body","email"],"msg":"field required"}]}`))
	assert.Contains(t, detail, "field required")

	assert.Empty(t, errorDetail([]byte(`not json`)))
	assert.Empty(t, errorDetail(nil))
}

func TestSession(t *testing.T) {
	session := NewSession()
	assert.False(t, session.Authenticated())
	assert.True(t, session.ExpiresAt().IsZero())

	session.SetAuthToken("opaque-token")
	assert.True(t, session.Authenticated())
	assert.True(t, session.ExpiresAt().IsZero())
	assert.False(t, session.Expired(time.Now()))

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	session.SetAuthToken(token)
	assert.True(t, exp.Equal(session.ExpiresAt()))
	assert.False(t, session.Expired(time.Now()))
	assert.True(t, session.Expired(exp.Add(time.Second)))

	session.SetAuthToken("")
	assert.False(t, session.Authenticated())
	assert.True(t, session.ExpiresAt().IsZero())
}
