package integrating

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MsgFacebookConnected     = "Conta do Facebook Ads conectada com sucesso!"
	MsgAdSenseConnected      = "Conta do Google AdSense conectada com sucesso!"
	MsgFacebookConnectFailed = "Erro ao conectar Facebook Ads. Verifique o token e tente novamente."
	MsgAdSenseConnectFailed  = "Erro ao conectar Google AdSense. Verifique as credenciais e tente novamente."
	MsgSaveFailed            = "Não foi possível salvar as alterações. Verifique os dados e tente novamente."
	MsgDeleteFailed          = "Não foi possível remover a integração."
)

// ValidationError lista os campos do formulário que precisam ser corrigidos
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("campos obrigatórios ou inválidos: %s", strings.Join(e.Fields, ", "))
}

type fieldCheck struct {
	fields []string
}

func (c *fieldCheck) required(name, value string) {
	if strings.TrimSpace(value) == "" {
		c.fields = append(c.fields, name)
	}
}

func (c *fieldCheck) invalid(name string) {
	c.fields = append(c.fields, name)
}

func (c *fieldCheck) err() error {
	if len(c.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: c.fields}
}

// optional devolve nil para texto vazio
func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

// UserMessage traduz o erro de um envio de formulário em texto para a tela
func UserMessage(err error, fallback string) string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return fmt.Sprintf("Preencha os campos obrigatórios: %s", strings.Join(validationErr.Fields, ", "))
	}
	return fallback
}
