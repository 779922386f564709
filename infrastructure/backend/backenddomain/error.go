package backenddomain

// ErrorResponse é o corpo de erro do servidor. Detail pode ser texto ou a
// lista de erros de validação.
type ErrorResponse struct {
	Detail any `json:"detail"`
}
