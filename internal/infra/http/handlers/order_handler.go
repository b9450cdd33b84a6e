package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/paglink/checkout-api/internal/infra/http/middleware"
	"github.com/paglink/checkout-api/internal/usecase"
)

type OrderHandler struct {
	PlaceOrderUC *usecase.PlaceOrderUseCase
}

func NewOrderHandler(uc *usecase.PlaceOrderUseCase) *OrderHandler {
	return &OrderHandler{PlaceOrderUC: uc}
}

// Handle processa a submissão do checkout e devolve a resposta no formato do
// método de pagamento escolhido.
func (h *OrderHandler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	var input usecase.PlaceOrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	output, err := h.PlaceOrderUC.Execute(r.Context(), slug, input)
	if err != nil {
		if domainErr, ok := err.(*usecase.DomainError); ok && domainErr.Code == usecase.CodePaymentFailed {
			middleware.RecordOrder(input.PaymentMethod, "REFUSED")
		}
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordOrder(input.PaymentMethod, output.Status)
	writeSuccess(w, http.StatusCreated, output)
}
