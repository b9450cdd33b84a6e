package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetCheckoutReturnsFullCatalog(t *testing.T) {
	uc := catalogFixture()

	data, err := uc.Execute(context.Background(), "minha-loja")

	assert.NoError(t, err)
	assert.Equal(t, "Minha Loja", data.Checkout.Name)
	assert.Len(t, data.Products, 1)
	assert.Len(t, data.OrderBumps, 1)
	assert.Len(t, data.Coupons, 1)
	assert.Len(t, data.PaymentMethods, 2)
}

func TestGetCheckoutUnknownSlug(t *testing.T) {
	uc := catalogFixture()

	_, err := uc.Execute(context.Background(), "nao-existe")

	domainErr, ok := err.(*DomainError)
	assert.True(t, ok)
	assert.Equal(t, CodeCheckoutNotFound, domainErr.Code)
}

func TestGetCheckoutDatabaseFailure(t *testing.T) {
	checkoutRepo := new(MockCheckoutRepository)
	checkoutRepo.On("FindBySlug", mock.Anything, mock.Anything).Return(nil, errors.New("conexão caiu"))

	uc := NewGetCheckoutUseCase(
		checkoutRepo,
		new(MockProductRepository),
		new(MockOrderBumpRepository),
		new(MockCouponRepository),
		new(MockPaymentMethodRepository),
		zerolog.Nop(),
	)

	_, err := uc.Execute(context.Background(), "minha-loja")

	techErr, ok := err.(*TechnicalError)
	assert.True(t, ok)
	assert.Equal(t, CodeDatabaseError, techErr.Code)
}
