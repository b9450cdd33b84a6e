package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paglink/checkout-api/internal/entity"
)

func validInput() PlaceOrderInput {
	return PlaceOrderInput{
		Customer: CustomerInput{
			Name:  "João Silva",
			Email: "joao@example.com",
			CPF:   "123.456.789-00",
			DDI:   "+55",
			Phone: "(11) 99999-8888",
		},
		ProductID:     1,
		Quantity:      1,
		PaymentMethod: entity.MethodPix,
	}
}

func fieldsOf(errs []ValidationError) []string {
	var fields []string
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	return fields
}

func TestValidateAcceptsValidInput(t *testing.T) {
	assert.Empty(t, ValidatePlaceOrderInput(validInput()))
}

func TestValidateName(t *testing.T) {
	input := validInput()
	input.Customer.Name = "   "

	errs := ValidatePlaceOrderInput(input)

	assert.Contains(t, fieldsOf(errs), "name")
	assert.Equal(t, "Nome obrigatório", errs[0].Message)
}

func TestValidateEmail(t *testing.T) {
	input := validInput()
	input.Customer.Email = "joao.example.com"

	errs := ValidatePlaceOrderInput(input)

	assert.Contains(t, fieldsOf(errs), "email")
}

func TestValidateDocument(t *testing.T) {
	// CPF mascarado com 11 dígitos passa.
	input := validInput()
	input.Customer.CPF = "123.456.789-00"
	assert.Empty(t, ValidatePlaceOrderInput(input))

	// CNPJ com 14 dígitos também.
	input.Customer.CPF = "12.345.678/0001-99"
	assert.Empty(t, ValidatePlaceOrderInput(input))

	// Qualquer outra contagem de dígitos falha.
	input.Customer.CPF = "123.456.789"
	errs := ValidatePlaceOrderInput(input)
	assert.Contains(t, fieldsOf(errs), "cpf")
	assert.Equal(t, "CPF/CNPJ inválido", errs[0].Message)
}

func TestValidatePhone(t *testing.T) {
	input := validInput()
	input.Customer.Phone = "11 9999"

	errs := ValidatePlaceOrderInput(input)

	assert.Contains(t, fieldsOf(errs), "phone")
}

func TestValidateCardFieldsOnlyForCreditCard(t *testing.T) {
	// Método PIX ignora o cartão vazio.
	input := validInput()
	assert.Empty(t, ValidatePlaceOrderInput(input))

	// Cartão vazio com método credit_card acusa todos os campos.
	input.PaymentMethod = entity.MethodCreditCard
	errs := ValidatePlaceOrderInput(input)

	fields := fieldsOf(errs)
	assert.Contains(t, fields, "card_holder")
	assert.Contains(t, fields, "card_number")
	assert.Contains(t, fields, "card_expiry")
	assert.Contains(t, fields, "card_cvc")
}

func TestValidateCardRules(t *testing.T) {
	input := validInput()
	input.PaymentMethod = entity.MethodCreditCard
	input.Card = CardInput{
		Number:       "4111 1111 1111 1111",
		HolderName:   "JOAO SILVA",
		Expiry:       "12/28",
		CVC:          "123",
		Installments: "1",
	}
	assert.Empty(t, ValidatePlaceOrderInput(input))

	// Número curto demais.
	short := input
	short.Card.Number = "4111 1111"
	assert.Contains(t, fieldsOf(ValidatePlaceOrderInput(short)), "card_number")

	// Validade fora do formato MM/AA.
	badExpiry := input
	badExpiry.Card.Expiry = "1/28"
	assert.Contains(t, fieldsOf(ValidatePlaceOrderInput(badExpiry)), "card_expiry")

	// CVC curto.
	badCVC := input
	badCVC.Card.CVC = "12"
	assert.Contains(t, fieldsOf(ValidatePlaceOrderInput(badCVC)), "card_cvc")
}

func TestValidateCollectsAllErrors(t *testing.T) {
	input := PlaceOrderInput{PaymentMethod: entity.MethodCreditCard}

	errs := ValidatePlaceOrderInput(input)

	// Todas as regras rodam mesmo com falhas anteriores.
	assert.Len(t, errs, 8)
}

func TestFieldErrors(t *testing.T) {
	errs := []ValidationError{
		{Field: "name", Message: "Nome obrigatório"},
		{Field: "email", Message: "E-mail inválido"},
	}

	fields := FieldErrors(errs)

	assert.Equal(t, "Nome obrigatório", fields["name"])
	assert.Equal(t, "E-mail inválido", fields["email"])
	assert.Nil(t, FieldErrors(nil))
}
