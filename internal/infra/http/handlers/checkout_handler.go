package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/paglink/checkout-api/internal/usecase"
)

type CheckoutHandler struct {
	GetCheckoutUC *usecase.GetCheckoutUseCase
}

func NewCheckoutHandler(uc *usecase.GetCheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{GetCheckoutUC: uc}
}

// Handle serve o catálogo completo do checkout para o front montar a página.
func (h *CheckoutHandler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	data, err := h.GetCheckoutUC.Execute(r.Context(), slug)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, data)
}
