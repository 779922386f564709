package backendclient

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrAuthentication   = errors.New("falha de autenticação")
	ErrValidation       = errors.New("requisição inválida")
	ErrConflict         = errors.New("conflito com dados existentes")
	ErrNotFound         = errors.New("recurso não encontrado")
	ErrNetwork          = errors.New("falha de comunicação com o servidor")
	ErrUnexpectedStatus = errors.New("resposta inesperada do servidor")
)

// APIError descreve uma chamada que falhou. Err é sempre um dos sentinelas
// acima; Cause guarda o erro de transporte quando houver.
type APIError struct {
	Err        error
	Cause      error
	StatusCode int
	Method     string
	Path       string
	Detail     string
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: %v", e.Method, e.Path, e.Err)

	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (status %d)", e.StatusCode)
	}
	if e.Detail != "" {
		fmt.Fprintf(&b, ": %s", e.Detail)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}

	return b.String()
}

func (e *APIError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// statusPolicy permite que um endpoint reclassifique status específicos
type statusPolicy struct {
	overrides map[int]error
	// clientError, quando definido, vale para todo 4xx fora de 401/403
	clientError error
}

var defaultStatusErrors = map[int]error{
	http.StatusUnauthorized:        ErrAuthentication,
	http.StatusForbidden:           ErrAuthentication,
	http.StatusBadRequest:          ErrValidation,
	http.StatusUnprocessableEntity: ErrValidation,
	http.StatusConflict:            ErrConflict,
	http.StatusNotFound:            ErrNotFound,
}

var (
	loginPolicy = statusPolicy{
		overrides: map[int]error{
			http.StatusUnauthorized:        ErrAuthentication,
			http.StatusUnprocessableEntity: ErrAuthentication,
		},
	}

	// O servidor sinaliza email duplicado com 400
	registerPolicy = statusPolicy{clientError: ErrConflict}
)

func classifyStatus(status int, policy statusPolicy) error {
	if err, ok := policy.overrides[status]; ok {
		return err
	}

	isAuthStatus := status == http.StatusUnauthorized || status == http.StatusForbidden
	if policy.clientError != nil && status >= 400 && status < 500 && !isAuthStatus {
		return policy.clientError
	}

	if err, ok := defaultStatusErrors[status]; ok {
		return err
	}

	return ErrUnexpectedStatus
}
