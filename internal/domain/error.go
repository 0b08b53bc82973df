package domain

// ErrorResponse é a estrutura padronizada para respostas de erro na API.
// @Description Estrutura padronizada para respostas de erro na API.
type ErrorResponse struct {
	Code     int    `json:"code" example:"400"`
	Category string `json:"category" example:"VALIDATION_ERROR"`
	Message  string `json:"message" example:"O valor investido deve ser maior que 0."`
}

// MessageResponse é a confirmação devolvida por operações sem corpo de recurso (e.g., exclusão).
type MessageResponse struct {
	Message string `json:"message" example:"Investimento removido com sucesso."`
}
