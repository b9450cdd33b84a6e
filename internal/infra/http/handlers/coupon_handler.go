package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/paglink/checkout-api/internal/infra/http/middleware"
	"github.com/paglink/checkout-api/internal/usecase"
)

type CouponHandler struct {
	ApplyCouponUC *usecase.ApplyCouponUseCase
}

func NewCouponHandler(uc *usecase.ApplyCouponUseCase) *CouponHandler {
	return &CouponHandler{ApplyCouponUC: uc}
}

// Handle valida um código de cupom; a mensagem de erro é exibida inline no
// campo do formulário pelo front.
func (h *CouponHandler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	var input struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	output, err := h.ApplyCouponUC.Execute(r.Context(), slug, input.Code)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordCouponApplied()
	writeSuccess(w, http.StatusOK, output)
}
