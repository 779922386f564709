package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Mensagens de erro devolvidas no campo detail. O texto faz parte do contrato
// com o dashboard e segue o backend original em inglês.
const (
	DetailIncorrectCredentials = "Incorrect email or password"
	DetailInvalidCredentials   = "Could not validate credentials"
	DetailNotAuthenticated     = "Not authenticated"
	DetailUserNotFound         = "User not found"
	DetailEmailRegistered      = "Email already registered"
	DetailIntegrationNotFound  = "Integration not found"
	DetailTypeMismatch         = "Integration type mismatch"
	DetailNotificationNotFound = "Notification not found"
	DetailInternalServer       = "Internal server error"
)

// APIError é o corpo de erro no formato {"detail": ...}. Detail é texto ou a
// lista de FieldError de uma falha de validação.
type APIError struct {
	Detail any `json:"detail"`
}

// FieldError descreve um campo inválido da requisição
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, status int, detail any) {
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(APIError{Detail: detail})
}

// WriteValidationError responde 422 com a lista de campos inválidos
func WriteValidationError(w http.ResponseWriter, fields ...FieldError) {
	WriteError(w, http.StatusUnprocessableEntity, fields)
}

// Missing monta o erro de um campo obrigatório do corpo
func Missing(field string) FieldError {
	return FieldError{Loc: []string{"body", field}, Msg: "field required", Type: "value_error.missing"}
}

// Invalid monta o erro de um valor inválido em loc (ex.: "query", "start_date")
func Invalid(section, field, msg string) FieldError {
	return FieldError{Loc: []string{section, field}, Msg: msg, Type: "value_error"}
}
