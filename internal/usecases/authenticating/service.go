package authenticating

import (
	"context"
	"strings"

	"github.com/vfg2006/insights-dashboard/infrastructure/backend"
	"github.com/vfg2006/insights-dashboard/internal/domain"
	"github.com/vfg2006/insights-dashboard/pkg/log"
)

type Authenticator interface {
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Register(ctx context.Context, registration domain.Registration) (*domain.User, error)
	Restore(ctx context.Context, token string) (*domain.User, error)
	Logout()
}

type Service struct {
	integrator backend.Integrator
}

func NewService(integrator backend.Integrator) *Service {
	return &Service{integrator: integrator}
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

// Login autentica e aplica o token na sessão do cliente
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, error) {
	email = handleEmail(email)
	if email == "" || password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, MsgLoginFailed, "email e senha são obrigatórios")
	}

	result, err := s.integrator.Login(ctx, email, password)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("auth: login failed")
		return nil, NewAuthError(err, MsgLoginFailed, "")
	}

	s.integrator.SetAuthToken(result.AccessToken)

	log.ForContext(ctx).WithField("user_id", result.User.ID).Debug("auth: user logged in")
	return &result.User, nil
}

// Register cria o usuário e em seguida faz login. Qualquer falha interrompe
// o fluxo e é reportada com uma única mensagem.
func (s *Service) Register(ctx context.Context, registration domain.Registration) (*domain.User, error) {
	registration.Email = handleEmail(registration.Email)
	registration.Name = strings.TrimSpace(registration.Name)
	if registration.Email == "" || registration.Name == "" || registration.Password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, MsgRegisterFailed, "nome, email e senha são obrigatórios")
	}

	if _, err := s.integrator.RegisterUser(ctx, registration); err != nil {
		log.ForContext(ctx).WithError(err).Warn("auth: registration failed")
		return nil, NewAuthError(ErrRegistrationFailed, MsgRegisterFailed, err.Error())
	}

	result, err := s.integrator.Login(ctx, registration.Email, registration.Password)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("auth: login after registration failed")
		return nil, NewAuthError(ErrLoginAfterRegister, MsgRegisterFailed, err.Error())
	}

	s.integrator.SetAuthToken(result.AccessToken)
	return &result.User, nil
}

// Restore reaproveita um token já emitido. Se o servidor recusar, a sessão é limpa.
func (s *Service) Restore(ctx context.Context, token string) (*domain.User, error) {
	s.integrator.SetAuthToken(token)

	user, err := s.integrator.CurrentUser(ctx)
	if err != nil {
		s.integrator.SetAuthToken("")
		return nil, NewAuthError(err, MsgSessionExpired, "")
	}

	return user, nil
}

func (s *Service) Logout() {
	s.integrator.SetAuthToken("")
}
