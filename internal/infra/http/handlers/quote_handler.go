package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/paglink/checkout-api/internal/usecase"
)

type QuoteHandler struct {
	QuoteUC *usecase.QuoteUseCase
}

func NewQuoteHandler(uc *usecase.QuoteUseCase) *QuoteHandler {
	return &QuoteHandler{QuoteUC: uc}
}

// Handle recalcula os totais da seleção corrente do lado do servidor.
func (h *QuoteHandler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	var input usecase.QuoteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	output, err := h.QuoteUC.Execute(r.Context(), slug, input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, output)
}
