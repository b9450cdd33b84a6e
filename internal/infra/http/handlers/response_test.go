package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paglink/checkout-api/internal/usecase"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWriteSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()

	writeSuccess(rec, http.StatusOK, map[string]string{"total": "114.00"})

	// O front gatilha em json.success && json.data.
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	data, ok := body["data"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "114.00", data["total"])
}

func TestWriteErrorResponseEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()

	writeErrorResponse(rec, http.StatusNotFound, "CHECKOUT_NOT_FOUND", "Checkout não encontrado")

	body := decodeBody(t, rec)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "CHECKOUT_NOT_FOUND", body["error"])
	assert.Equal(t, "Checkout não encontrado", body["message"])
}

func TestWriteUseCaseErrorDomain(t *testing.T) {
	rec := httptest.NewRecorder()

	writeUseCaseError(rec, &usecase.DomainError{
		Code:    usecase.CodeValidation,
		Message: "Dados inválidos",
		Fields:  map[string]string{"email": "E-mail inválido"},
	})

	body := decodeBody(t, rec)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, false, body["success"])
	fields, ok := body["fields"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "E-mail inválido", fields["email"])
}

func TestWriteUseCaseErrorStatusMapping(t *testing.T) {
	cases := []struct {
		code   string
		status int
	}{
		{usecase.CodeCheckoutNotFound, http.StatusNotFound},
		{usecase.CodeCouponNotFound, http.StatusNotFound},
		{usecase.CodePaymentFailed, http.StatusPaymentRequired},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		writeUseCaseError(rec, &usecase.DomainError{Code: tc.code, Message: "erro"})
		assert.Equal(t, tc.status, rec.Code)
		assert.Equal(t, false, decodeBody(t, rec)["success"])
	}
}

func TestWriteUseCaseErrorTechnical(t *testing.T) {
	rec := httptest.NewRecorder()

	writeUseCaseError(rec, &usecase.TechnicalError{Code: usecase.CodeDatabaseError, Message: "Erro ao salvar pedido"})

	body := decodeBody(t, rec)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, false, body["success"])
}
