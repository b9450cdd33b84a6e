package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/paglink/checkout-api/internal/entity"
)

func placeOrderFixture() (*PlaceOrderUseCase, *MockOrderRepository, *MockPaymentGateway, *MockEventProducer) {
	orderRepo := new(MockOrderRepository)
	gateway := new(MockPaymentGateway)
	selector := new(MockGatewaySelector)
	producer := new(MockEventProducer)

	selector.On("ForTag", "mercadopago").Return(gateway, nil)
	selector.On("ForTag", "pagseguro").Return(gateway, nil)

	uc := NewPlaceOrderUseCase(catalogFixture(), orderRepo, selector, producer, zerolog.Nop())
	return uc, orderRepo, gateway, producer
}

func TestPlaceOrderPixFlowSuccess(t *testing.T) {
	uc, orderRepo, gateway, producer := placeOrderFixture()

	gateway.On("CreatePixCharge", mock.Anything, mock.Anything).Return(&PixCharge{
		Code:      "00020126580014br.gov.bcb.pix",
		QRCodeURL: "https://example.com/qr.png",
	}, nil)
	orderRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	producer.On("PublishOrderPlaced", mock.Anything, mock.Anything).Return(nil)

	input := validInput()
	input.Bumps = map[int64]int{7: 1}

	output, err := uc.Execute(context.Background(), "minha-loja", input)

	assert.NoError(t, err)
	assert.NotEmpty(t, output.OrderID)
	assert.Equal(t, entity.OrderStatusPending, output.Status)
	assert.Equal(t, "00020126580014br.gov.bcb.pix", output.PixCode)
	assert.NotEmpty(t, output.PixQRCodeURL)

	// O valor cobrado é o recalculado no servidor: (100+20) - 5%.
	charge := gateway.Calls[0].Arguments.Get(1).(ChargeInput)
	assert.Equal(t, "114.00", charge.Amount.StringFixed(2))
	assert.Equal(t, "12345678900", charge.Customer.Document)

	orderRepo.AssertCalled(t, "Create", mock.Anything, mock.Anything)
	producer.AssertCalled(t, "PublishOrderPlaced", mock.Anything, mock.Anything)
}

func TestPlaceOrderCardApproved(t *testing.T) {
	uc, orderRepo, gateway, producer := placeOrderFixture()

	gateway.On("CreateCardCharge", mock.Anything, mock.Anything).Return(&CardCharge{
		Status: ChargeStatusApproved,
	}, nil)
	orderRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	producer.On("PublishOrderPlaced", mock.Anything, mock.Anything).Return(nil)

	input := validInput()
	input.PaymentMethod = entity.MethodCreditCard
	input.Card = CardInput{
		Number:       "4111 1111 1111 1111",
		HolderName:   "JOAO SILVA",
		Expiry:       "12/28",
		CVC:          "123",
		Installments: "3",
	}

	output, err := uc.Execute(context.Background(), "minha-loja", input)

	assert.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPaid, output.Status)

	// O bloco do cartão segue normalizado para o gateway.
	charge := gateway.Calls[0].Arguments.Get(1).(CardChargeInput)
	assert.Equal(t, "4111111111111111", charge.Card.Number)
	assert.Equal(t, "2028", charge.Card.ExpiryYear)
	assert.Equal(t, 3, charge.Card.Installments)
}

func TestPlaceOrderValidationBlocksCharge(t *testing.T) {
	uc, orderRepo, gateway, _ := placeOrderFixture()

	input := validInput()
	input.Customer.Email = "sem-arroba"

	_, err := uc.Execute(context.Background(), "minha-loja", input)

	domainErr, ok := err.(*DomainError)
	assert.True(t, ok)
	assert.Equal(t, CodeValidation, domainErr.Code)
	assert.Equal(t, "E-mail inválido", domainErr.Fields["email"])

	// Nada de cobrança nem persistência com formulário inválido.
	gateway.AssertNotCalled(t, "CreatePixCharge", mock.Anything, mock.Anything)
	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPlaceOrderGatewayRefusal(t *testing.T) {
	uc, orderRepo, gateway, producer := placeOrderFixture()

	gateway.On("CreateCardCharge", mock.Anything, mock.Anything).Return(&CardCharge{
		Status: ChargeStatusRefused,
	}, nil)

	input := validInput()
	input.PaymentMethod = entity.MethodCreditCard
	input.Card = CardInput{
		Number:       "4111111111111111",
		HolderName:   "JOAO SILVA",
		Expiry:       "12/28",
		CVC:          "123",
		Installments: "1",
	}

	_, err := uc.Execute(context.Background(), "minha-loja", input)

	domainErr, ok := err.(*DomainError)
	assert.True(t, ok)
	assert.Equal(t, CodePaymentFailed, domainErr.Code)

	// Cobrança recusada não gera pedido nem evento.
	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	producer.AssertNotCalled(t, "PublishOrderPlaced", mock.Anything, mock.Anything)
}

func TestPlaceOrderChargeError(t *testing.T) {
	uc, orderRepo, gateway, _ := placeOrderFixture()

	gateway.On("CreatePixCharge", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	_, err := uc.Execute(context.Background(), "minha-loja", validInput())

	domainErr, ok := err.(*DomainError)
	assert.True(t, ok)
	assert.Equal(t, CodePaymentFailed, domainErr.Code)
	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPlaceOrderUnknownPaymentMethod(t *testing.T) {
	uc, _, _, _ := placeOrderFixture()

	input := validInput()
	input.PaymentMethod = entity.MethodBoleto // não habilitado no catálogo

	_, err := uc.Execute(context.Background(), "minha-loja", input)

	domainErr, ok := err.(*DomainError)
	assert.True(t, ok)
	assert.Equal(t, CodePaymentMethodNotFound, domainErr.Code)
}

func TestPlaceOrderPublishFailureIsNotFatal(t *testing.T) {
	uc, orderRepo, gateway, producer := placeOrderFixture()

	gateway.On("CreatePixCharge", mock.Anything, mock.Anything).Return(&PixCharge{Code: "pix"}, nil)
	orderRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	producer.On("PublishOrderPlaced", mock.Anything, mock.Anything).Return(errors.New("broker fora"))

	output, err := uc.Execute(context.Background(), "minha-loja", validInput())

	// Pedido persistido responde sucesso mesmo com o broker fora do ar.
	assert.NoError(t, err)
	assert.NotNil(t, output)
}

func TestPlaceOrderPersistFailure(t *testing.T) {
	uc, orderRepo, gateway, _ := placeOrderFixture()

	gateway.On("CreatePixCharge", mock.Anything, mock.Anything).Return(&PixCharge{Code: "pix"}, nil)
	orderRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("conexão caiu"))

	_, err := uc.Execute(context.Background(), "minha-loja", validInput())

	techErr, ok := err.(*TechnicalError)
	assert.True(t, ok)
	assert.Equal(t, CodeDatabaseError, techErr.Code)
}
