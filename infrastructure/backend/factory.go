package backend

import (
	"fmt"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	backenddomain "github.com/vfg2006/insights-dashboard/infrastructure/backend/backenddomain"
	"github.com/vfg2006/insights-dashboard/internal/domain"
	"github.com/vfg2006/insights-dashboard/pkg/utils"
)

var ErrUnknownIntegrationType = errors.New("tipo de integração desconhecido")

func FactoryUser(user backenddomain.UserRead) domain.User {
	return domain.User{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Time,
	}
}

// isoTimeHook converte strings ISO-8601 (com ou sem fuso) em time.Time
func isoTimeHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(time.Time{}) {
		return data, nil
	}

	return backenddomain.ParseTimestamp(data.(string))
}

func decodeCredentials(raw map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       isoTimeHook,
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(raw)
}

// FactoryIntegration lê as credenciais sem tipo na variante fechada indicada por Type.
// Campos de outro provedor são descartados.
func FactoryIntegration(integration backenddomain.IntegrationRead) (*domain.Integration, error) {
	result := &domain.Integration{
		ID:        integration.ID,
		CreatedAt: integration.CreatedAt.Time,
	}

	switch domain.IntegrationType(integration.Type) {
	case domain.IntegrationFacebookAds:
		var credentials domain.FacebookCredentials
		if err := decodeCredentials(integration.Credentials, &credentials); err != nil {
			return nil, errors.Wrapf(err, "credenciais inválidas na integração %d", integration.ID)
		}
		result.Credentials = credentials
	case domain.IntegrationGoogleAdSense:
		var credentials domain.GoogleCredentials
		if err := decodeCredentials(integration.Credentials, &credentials); err != nil {
			return nil, errors.Wrapf(err, "credenciais inválidas na integração %d", integration.ID)
		}
		result.Credentials = credentials
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownIntegrationType, integration.Type)
	}

	return result, nil
}

func FactoryMetrics(resp backenddomain.MetricsResponse) (*domain.MetricsResponse, error) {
	metrics := make([]domain.DailyMetric, 0, len(resp.Metrics))
	for _, m := range resp.Metrics {
		date, err := utils.ParseDate(m.MetricDate)
		if err != nil {
			return nil, errors.Wrapf(err, "data de métrica inválida %q", m.MetricDate)
		}

		metrics = append(metrics, domain.DailyMetric{
			MetricDate: *date,
			Spend:      m.Spend,
			Revenue:    m.Revenue,
			ROI:        m.ROI,
		})
	}

	return &domain.MetricsResponse{
		Metrics:      metrics,
		TotalSpend:   resp.TotalSpend,
		TotalRevenue: resp.TotalRevenue,
		AverageROI:   resp.AverageROI,
	}, nil
}

func FactoryDailyMetric(metric backenddomain.DailyMetricRead) (*domain.DailyMetric, error) {
	date, err := utils.ParseDate(metric.MetricDate)
	if err != nil {
		return nil, errors.Wrapf(err, "data de métrica inválida %q", metric.MetricDate)
	}

	return &domain.DailyMetric{
		MetricDate: *date,
		Spend:      metric.Spend,
		Revenue:    metric.Revenue,
		ROI:        metric.ROI,
	}, nil
}

func FactoryNotification(notification backenddomain.NotificationRead) domain.SyncNotification {
	return domain.SyncNotification{
		ID:        notification.ID,
		Level:     domain.NotificationLevel(notification.Level),
		Message:   notification.Message,
		IsRead:    notification.IsRead,
		CreatedAt: notification.CreatedAt.Time,
	}
}

func facebookCreateRequest(payload domain.FacebookConnect) backenddomain.FacebookIntegrationCreate {
	return backenddomain.FacebookIntegrationCreate{
		AccountID:   payload.AccountID,
		AccessToken: payload.AccessToken,
		BusinessID:  payload.BusinessID,
		APIVersion:  payload.APIVersion,
	}
}

func adSenseCreateRequest(payload domain.AdSenseConnect) backenddomain.AdSenseIntegrationCreate {
	return backenddomain.AdSenseIntegrationCreate{
		AccountID:    payload.AccountID,
		AccessToken:  payload.AccessToken,
		RefreshToken: payload.RefreshToken,
		ClientID:     payload.ClientID,
		ClientSecret: payload.ClientSecret,
		TokenExpiry:  payload.TokenExpiry,
		ExpiresIn:    payload.ExpiresIn,
	}
}

func facebookUpdateRequest(update domain.FacebookUpdate) backenddomain.FacebookIntegrationUpdate {
	return backenddomain.FacebookIntegrationUpdate{
		AccountID:   update.AccountID,
		AccessToken: update.AccessToken,
		BusinessID:  update.BusinessID,
		APIVersion:  update.APIVersion,
	}
}

func adSenseUpdateRequest(update domain.AdSenseUpdate) backenddomain.AdSenseIntegrationUpdate {
	return backenddomain.AdSenseIntegrationUpdate{
		AccountID:    update.AccountID,
		AccessToken:  update.AccessToken,
		RefreshToken: update.RefreshToken,
		ClientID:     update.ClientID,
		ClientSecret: update.ClientSecret,
		TokenExpiry:  update.TokenExpiry,
		ExpiresIn:    update.ExpiresIn,
	}
}
