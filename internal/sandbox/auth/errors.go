package auth

import "github.com/pkg/errors"

var (
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrUserAlreadyExists  = errors.New("usuário já existe")
	ErrInvalidToken       = errors.New("token inválido")
	ErrUserNotFound       = errors.New("usuário não encontrado")
)
