package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/paglink/checkout-api/internal/usecase"
)

// O front decide o fluxo por json.success antes de olhar o payload, então
// toda resposta da API do checkout carrega o envelope {success, ...}.
type successResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type errorResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, successResponse{Success: true, Data: data})
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: code, Message: message})
}

// writeUseCaseError mapeia erros dos casos de uso para status HTTP. Erros de
// domínio viajam com código e mensagem próprios; erro técnico vira 500 com
// mensagem genérica para não vazar detalhe de infraestrutura.
func writeUseCaseError(w http.ResponseWriter, err error) {
	if domainErr, ok := err.(*usecase.DomainError); ok {
		status := http.StatusBadRequest
		switch domainErr.Code {
		case usecase.CodeValidation:
			status = http.StatusUnprocessableEntity
		case usecase.CodeCheckoutNotFound, usecase.CodeProductNotFound,
			usecase.CodeCouponNotFound, usecase.CodePaymentMethodNotFound:
			status = http.StatusNotFound
		case usecase.CodePaymentFailed:
			status = http.StatusPaymentRequired
		}
		writeJSON(w, status, errorResponse{
			Error:   domainErr.Code,
			Message: domainErr.Message,
			Fields:  domainErr.Fields,
		})
		return
	}

	if techErr, ok := err.(*usecase.TechnicalError); ok {
		writeErrorResponse(w, http.StatusInternalServerError, techErr.Code, techErr.Message)
		return
	}

	writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro interno")
}
