package handler

import (
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/insights-dashboard/pkg/apiErrors"
	"github.com/vfg2006/insights-dashboard/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// decodeBody lê o corpo JSON. Corpo inválido responde 422 e devolve false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		apiErrors.WriteValidationError(w, apiErrors.FieldError{
			Loc:  []string{"body"},
			Msg:  "JSON inválido",
			Type: "value_error.jsondecode",
		})
		return false
	}
	return true
}

// pathID lê o parâmetro inteiro name da rota. Valor inválido responde 422.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName(name)

	id, err := strconv.Atoi(raw)
	if err != nil {
		apiErrors.WriteValidationError(w, apiErrors.Invalid("path", name, "value is not a valid integer"))
		return 0, false
	}
	return id, true
}

type required struct {
	name  string
	value string
}

// requireFields devolve os erros dos campos obrigatórios vazios, na ordem informada
func requireFields(fields ...required) []apiErrors.FieldError {
	var missing []apiErrors.FieldError
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, apiErrors.Missing(f.name))
		}
	}
	return missing
}
