package authenticating

import (
	"errors"
	"fmt"

	"github.com/vfg2006/insights-dashboard/infrastructure/backend/backendclient"
)

const (
	MsgLoginFailed    = "Falha no login. Verifique suas credenciais."
	MsgRegisterFailed = "Não foi possível registrar. Email já utilizado?"
	MsgSessionExpired = "Sessão expirada. Faça login novamente."
)

var (
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrRegistrationFailed  = errors.New("falha no registro")
	ErrLoginAfterRegister  = errors.New("falha no login após o registro")
)

// AuthError carrega a mensagem que pode ser exibida ao usuário. Err guarda a
// causa original apenas para log.
type AuthError struct {
	Err     error
	Message string
	Details string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func NewAuthError(baseErr error, message string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Message: message,
		Details: details,
	}
}

// IsCredentialsError indica falha de credenciais ou de token
func IsCredentialsError(err error) bool {
	return errors.Is(err, backendclient.ErrAuthentication)
}

// UserMessage devolve a mensagem genérica associada ao erro
func UserMessage(err error, fallback string) string {
	var authErr *AuthError
	if errors.As(err, &authErr) && authErr.Message != "" {
		return authErr.Message
	}
	return fallback
}
