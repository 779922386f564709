package backendclient

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session guarda o token bearer compartilhado por todas as requisições
// autenticadas. É criada no login e limpa no logout.
type Session struct {
	mu        sync.RWMutex
	token     string
	expiresAt time.Time
}

func NewSession() *Session {
	return &Session{}
}

// SetAuthToken troca o token atual; string vazia remove o header das próximas requisições
func (s *Session) SetAuthToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.expiresAt = tokenExpiry(token)
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// ExpiresAt retorna o exp do token quando ele é um JWT, ou zero
func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

// Expired só é verdadeiro quando o token tem exp conhecido e já passou
func (s *Session) Expired(now time.Time) bool {
	expiresAt := s.ExpiresAt()
	return !expiresAt.IsZero() && !now.Before(expiresAt)
}

// O token é opaco para o cliente; a assinatura é validada apenas pelo servidor.
func tokenExpiry(token string) time.Time {
	if token == "" {
		return time.Time{}
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}

	if claims.ExpiresAt == nil {
		return time.Time{}
	}

	return claims.ExpiresAt.Time
}
