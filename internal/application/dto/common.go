package dto

// ErrorResponse corpo de erro padrão da API: { "error": "mensagem" }.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse corpo de sucesso simples.
type MessageResponse struct {
	Message string `json:"message"`
}
