package backend

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/insights-dashboard/infrastructure/backend/backendclient"
	backenddomain "github.com/vfg2006/insights-dashboard/infrastructure/backend/backenddomain"
	"github.com/vfg2006/insights-dashboard/internal/domain"
	"github.com/vfg2006/insights-dashboard/pkg/log"
	"github.com/vfg2006/insights-dashboard/pkg/utils"
)

// Integrator é a API do backend com nomes e tipos locais.
// userID > 0 nos métodos de conexão seleciona a rota legada por usuário.
type Integrator interface {
	Login(ctx context.Context, email, password string) (*domain.LoginResult, error)
	RegisterUser(ctx context.Context, registration domain.Registration) (*domain.User, error)
	CurrentUser(ctx context.Context) (*domain.User, error)
	SetAuthToken(token string)
	Authenticated() bool

	FetchMetrics(ctx context.Context, query domain.MetricsQuery) (*domain.MetricsResponse, error)
	SyncMetrics(ctx context.Context, day time.Time) (*domain.DailyMetric, error)

	ConnectFacebook(ctx context.Context, userID int, payload domain.FacebookConnect) (*domain.Integration, error)
	ConnectAdSense(ctx context.Context, userID int, payload domain.AdSenseConnect) (*domain.Integration, error)
	ListIntegrations(ctx context.Context) ([]domain.Integration, error)
	UpdateFacebookIntegration(ctx context.Context, id int, update domain.FacebookUpdate) (*domain.Integration, error)
	UpdateAdSenseIntegration(ctx context.Context, id int, update domain.AdSenseUpdate) (*domain.Integration, error)
	DeleteIntegration(ctx context.Context, id int) error

	ListNotifications(ctx context.Context) ([]domain.SyncNotification, error)
	MarkNotificationRead(ctx context.Context, id int) error
}

type BackendIntegrator struct {
	Client backendclient.Client
}

func New(client backendclient.Client) *BackendIntegrator {
	return &BackendIntegrator{Client: client}
}

func (s *BackendIntegrator) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	resp, err := s.Client.Login(ctx, backenddomain.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	return &domain.LoginResult{
		AccessToken: resp.AccessToken,
		TokenType:   resp.TokenType,
		User:        FactoryUser(resp.User),
	}, nil
}

func (s *BackendIntegrator) RegisterUser(ctx context.Context, registration domain.Registration) (*domain.User, error) {
	resp, err := s.Client.RegisterUser(ctx, backenddomain.UserCreate{
		Name:     registration.Name,
		Email:    registration.Email,
		Password: registration.Password,
	})
	if err != nil {
		return nil, err
	}

	user := FactoryUser(*resp)
	return &user, nil
}

func (s *BackendIntegrator) CurrentUser(ctx context.Context) (*domain.User, error) {
	resp, err := s.Client.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	user := FactoryUser(*resp)
	return &user, nil
}

func (s *BackendIntegrator) SetAuthToken(token string) {
	s.Client.Session().SetAuthToken(token)
}

func (s *BackendIntegrator) Authenticated() bool {
	return s.Client.Session().Authenticated()
}

func (s *BackendIntegrator) FetchMetrics(ctx context.Context, query domain.MetricsQuery) (*domain.MetricsResponse, error) {
	var (
		resp *backenddomain.MetricsResponse
		err  error
	)

	if query.UserID > 0 {
		resp, err = s.Client.GetUserMetrics(ctx, query.UserID, query.Range.StartDate(), query.Range.EndDate())
	} else {
		resp, err = s.Client.GetMetrics(ctx, query.Range.StartDate(), query.Range.EndDate())
	}
	if err != nil {
		return nil, err
	}

	metrics, err := FactoryMetrics(*resp)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("metrics: failed to convert metrics response")
		return nil, err
	}

	return metrics, nil
}

func (s *BackendIntegrator) SyncMetrics(ctx context.Context, day time.Time) (*domain.DailyMetric, error) {
	resp, err := s.Client.SyncMetrics(ctx, utils.FormatDate(day))
	if err != nil {
		return nil, err
	}

	return FactoryDailyMetric(*resp)
}

func (s *BackendIntegrator) ConnectFacebook(ctx context.Context, userID int, payload domain.FacebookConnect) (*domain.Integration, error) {
	resp, err := s.Client.ConnectFacebook(ctx, userID, facebookCreateRequest(payload))
	if err != nil {
		return nil, err
	}

	return FactoryIntegration(*resp)
}

func (s *BackendIntegrator) ConnectAdSense(ctx context.Context, userID int, payload domain.AdSenseConnect) (*domain.Integration, error) {
	resp, err := s.Client.ConnectAdSense(ctx, userID, adSenseCreateRequest(payload))
	if err != nil {
		return nil, err
	}

	return FactoryIntegration(*resp)
}

// ListIntegrations mantém a ordem do servidor e ignora integrações de tipo desconhecido
func (s *BackendIntegrator) ListIntegrations(ctx context.Context) ([]domain.Integration, error) {
	resp, err := s.Client.ListIntegrations(ctx)
	if err != nil {
		return nil, err
	}

	integrations := make([]domain.Integration, 0, len(resp))
	for _, item := range resp {
		integration, err := FactoryIntegration(item)
		if err != nil {
			log.ForContext(ctx).WithFields(log.Fields{
				"integration_id":   item.ID,
				"integration_type": item.Type,
			}).WithError(err).Warn("integrations: skipping integration")
			logrus.Debugf("integrations: credenciais recebidas com chaves %v", credentialKeys(item.Credentials))
			continue
		}
		integrations = append(integrations, *integration)
	}

	return integrations, nil
}

func (s *BackendIntegrator) UpdateFacebookIntegration(ctx context.Context, id int, update domain.FacebookUpdate) (*domain.Integration, error) {
	resp, err := s.Client.UpdateFacebookIntegration(ctx, id, facebookUpdateRequest(update))
	if err != nil {
		return nil, err
	}

	return FactoryIntegration(*resp)
}

func (s *BackendIntegrator) UpdateAdSenseIntegration(ctx context.Context, id int, update domain.AdSenseUpdate) (*domain.Integration, error) {
	resp, err := s.Client.UpdateAdSenseIntegration(ctx, id, adSenseUpdateRequest(update))
	if err != nil {
		return nil, err
	}

	return FactoryIntegration(*resp)
}

func (s *BackendIntegrator) DeleteIntegration(ctx context.Context, id int) error {
	return s.Client.DeleteIntegration(ctx, id)
}

func (s *BackendIntegrator) ListNotifications(ctx context.Context) ([]domain.SyncNotification, error) {
	resp, err := s.Client.ListNotifications(ctx)
	if err != nil {
		return nil, err
	}

	notifications := make([]domain.SyncNotification, 0, len(resp))
	for _, item := range resp {
		notifications = append(notifications, FactoryNotification(item))
	}

	return notifications, nil
}

func (s *BackendIntegrator) MarkNotificationRead(ctx context.Context, id int) error {
	return s.Client.MarkNotificationRead(ctx, id)
}

// Nunca loga valores: as credenciais podem conter segredos.
func credentialKeys(credentials map[string]any) []string {
	keys := make([]string, 0, len(credentials))
	for key := range credentials {
		keys = append(keys, key)
	}
	return keys
}
