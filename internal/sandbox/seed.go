package sandbox

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/vfg2006/insights-dashboard/infrastructure/backend/backenddomain"
	"github.com/vfg2006/insights-dashboard/internal/sandbox/auth"
	"github.com/vfg2006/insights-dashboard/pkg/log"
)

// Credenciais do usuário de demonstração criado por Seed
const (
	DemoEmail    = "demo@example.com"
	DemoPassword = "demo123"
)

// Seed cria um usuário de demonstração com uma integração de cada tipo,
// sincroniza o dia anterior e deixa algumas notificações não lidas.
// Quando o usuário já existe, ex.: banco persistente, nada é feito.
func (s *Server) Seed(ctx context.Context) error {
	user, err := s.users.Register(ctx, "Demo", DemoEmail, DemoPassword)
	if errors.Is(err, auth.ErrUserAlreadyExists) {
		log.ForContext(ctx).Infof("Usuário de demonstração já existe: %s", DemoEmail)
		return nil
	}
	if err != nil {
		return err
	}

	_, err = s.store.CreateIntegration(ctx, user.ID, backenddomain.TypeFacebookAds, map[string]any{
		"account_id":   "act_1234567890",
		"access_token": "EAAdemo",
		"business_id":  "987654321",
		"api_version":  "v18.0",
	})
	if err != nil {
		return errors.Wrap(err, "erro ao criar integração de demonstração")
	}

	_, err = s.store.CreateIntegration(ctx, user.ID, backenddomain.TypeGoogleAdSense, map[string]any{
		"account_id":    "accounts/pub-0000000000000000",
		"access_token":  "ya29.demo",
		"refresh_token": "1//demo",
		"client_id":     "demo.apps.googleusercontent.com",
		"client_secret": "demo-secret",
		"token_expiry":  s.now().Add(30 * 24 * time.Hour).UTC().Format(time.RFC3339),
	})
	if err != nil {
		return errors.Wrap(err, "erro ao criar integração de demonstração")
	}

	if _, err := s.metrics.SyncDay(ctx, user.ID, s.now().AddDate(0, 0, -1)); err != nil {
		return err
	}

	for _, n := range []struct{ level, message string }{
		{"info", "Sincronização diária concluída."},
		{"warning", "A conta act_1234567890 não retornou dados de receita ontem."},
	} {
		if _, err := s.store.AddNotification(ctx, user.ID, n.level, n.message); err != nil {
			return errors.Wrap(err, "erro ao criar notificação de demonstração")
		}
	}

	log.ForContext(ctx).WithField("user_id", user.ID).Infof("Usuário de demonstração criado: %s", DemoEmail)
	return nil
}
