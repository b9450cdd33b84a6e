package iugu

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paglink/checkout-api/internal/entity"
	"github.com/paglink/checkout-api/internal/usecase"
)

func chargeInput() usecase.ChargeInput {
	return usecase.ChargeInput{
		OrderID:     "abc-123",
		Description: "Curso",
		Amount:      decimal.RequireFromString("114.90"),
		Customer: usecase.ChargeCustomer{
			Name:     "Maria Silva",
			Email:    "maria@exemplo.com",
			Document: "12345678901",
			DDI:      "55",
			Phone:    "11988887777",
		},
	}
}

func TestCreatePixCharge(t *testing.T) {
	var got chargeRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Autenticação básica com o token como usuário e senha vazia
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "tok-1", user)
		assert.Empty(t, pass)
		assert.Equal(t, "/v1/charge", r.URL.Path)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(chargeResponse{
			Success: true,
			Status:  "pending",
			Pix:     &pixBlock{QRCode: "https://iugu/qr.png", QRCodeText: "copia-e-cola"},
		})
	}))
	defer server.Close()

	client := NewClient("tok-1", server.URL, zerolog.Nop())
	charge, err := client.CreatePixCharge(context.Background(), chargeInput())

	require.NoError(t, err)
	assert.Equal(t, "copia-e-cola", charge.Code)
	assert.Equal(t, "https://iugu/qr.png", charge.QRCodeURL)
	assert.Equal(t, "pix", got.Method)
	assert.Equal(t, int64(11490), got.Items[0].PriceCents)
	assert.Equal(t, "12345678901", got.Payer.CPFCNPJ)
}

func TestCreateCardCharge(t *testing.T) {
	var got chargeRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(chargeResponse{Success: true, Status: "captured"})
	}))
	defer server.Close()

	client := NewClient("tok-1", server.URL, zerolog.Nop())
	charge, err := client.CreateCardCharge(context.Background(), usecase.CardChargeInput{
		ChargeInput: chargeInput(),
		Card: entity.CardPayment{
			Number:       "5155901222280001",
			HolderName:   "Maria S Silva",
			ExpiryMonth:  "12",
			ExpiryYear:   "2030",
			CVV:          "123",
			Installments: 3,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, usecase.ChargeStatusApproved, charge.Status)
	assert.Equal(t, "credit_card", got.Method)
	assert.Equal(t, 3, got.Months)
	assert.Equal(t, "Maria", got.PaymentCard.FirstName)
	assert.Equal(t, "S Silva", got.PaymentCard.LastName)
}

func TestCardChargeRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A iugu devolve 200 com success=false quando a operadora recusa
		json.NewEncoder(w).Encode(chargeResponse{Success: false, Message: "recusado"})
	}))
	defer server.Close()

	client := NewClient("tok-1", server.URL, zerolog.Nop())
	charge, err := client.CreateCardCharge(context.Background(), usecase.CardChargeInput{
		ChargeInput: chargeInput(),
		Card:        entity.CardPayment{Number: "4111111111111111", Installments: 1},
	})

	require.NoError(t, err)
	assert.Equal(t, usecase.ChargeStatusRefused, charge.Status)
}
