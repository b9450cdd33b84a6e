package usecase

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"

	"github.com/paglink/checkout-api/internal/entity"
)

// MockCheckoutRepository
type MockCheckoutRepository struct {
	mock.Mock
}

func (m *MockCheckoutRepository) FindBySlug(ctx context.Context, slug string) (*entity.CheckoutConfig, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CheckoutConfig), args.Error(1)
}

// MockProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) ListByCheckout(ctx context.Context, checkoutID int64) ([]entity.Product, error) {
	args := m.Called(ctx, checkoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Product), args.Error(1)
}

// MockOrderBumpRepository
type MockOrderBumpRepository struct {
	mock.Mock
}

func (m *MockOrderBumpRepository) ListByCheckout(ctx context.Context, checkoutID int64) ([]entity.OrderBump, error) {
	args := m.Called(ctx, checkoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.OrderBump), args.Error(1)
}

// MockCouponRepository
type MockCouponRepository struct {
	mock.Mock
}

func (m *MockCouponRepository) ListByCheckout(ctx context.Context, checkoutID int64) ([]entity.Coupon, error) {
	args := m.Called(ctx, checkoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Coupon), args.Error(1)
}

// MockPaymentMethodRepository
type MockPaymentMethodRepository struct {
	mock.Mock
}

func (m *MockPaymentMethodRepository) ListByCheckout(ctx context.Context, checkoutID int64) ([]entity.PaymentMethod, error) {
	args := m.Called(ctx, checkoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PaymentMethod), args.Error(1)
}

// MockOrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, orderID, status string) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

// MockPaymentGateway
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreatePixCharge(ctx context.Context, input ChargeInput) (*PixCharge, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PixCharge), args.Error(1)
}

func (m *MockPaymentGateway) CreateBoletoCharge(ctx context.Context, input ChargeInput) (*BoletoCharge, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*BoletoCharge), args.Error(1)
}

func (m *MockPaymentGateway) CreateCardCharge(ctx context.Context, input CardChargeInput) (*CardCharge, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CardCharge), args.Error(1)
}

// MockGatewaySelector
type MockGatewaySelector struct {
	mock.Mock
}

func (m *MockGatewaySelector) ForTag(tag string) (PaymentGateway, error) {
	args := m.Called(tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(PaymentGateway), args.Error(1)
}

// MockEventProducer
type MockEventProducer struct {
	mock.Mock
}

func (m *MockEventProducer) PublishOrderPlaced(ctx context.Context, event OrderPlacedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// catalogFixture monta um GetCheckoutUseCase com um catálogo em memória.
func catalogFixture() *GetCheckoutUseCase {
	checkoutRepo := new(MockCheckoutRepository)
	productRepo := new(MockProductRepository)
	bumpRepo := new(MockOrderBumpRepository)
	couponRepo := new(MockCouponRepository)
	methodRepo := new(MockPaymentMethodRepository)

	checkout := &entity.CheckoutConfig{ID: 1, Name: "Minha Loja", Slug: "minha-loja"}
	pct := "5"
	fee := "2"

	checkoutRepo.On("FindBySlug", mock.Anything, "minha-loja").Return(checkout, nil)
	checkoutRepo.On("FindBySlug", mock.Anything, mock.Anything).Return(nil, nil)
	// O id da linha (1) difere do product_id de origem (55), como nos
	// catálogos reais; o bump referencia o produto de origem.
	productRepo.On("ListByCheckout", mock.Anything, int64(1)).Return([]entity.Product{
		{ID: 1, ProductID: 55, ProductName: "Curso", FinalPrice: "100.00"},
	}, nil)
	bumpRepo.On("ListByCheckout", mock.Anything, int64(1)).Return([]entity.OrderBump{
		{ID: 7, ProductName: "E-book", FinalPrice: "20.00", SpecificProducts: `[{"id": 55}]`},
	}, nil)
	couponRepo.On("ListByCheckout", mock.Anything, int64(1)).Return([]entity.Coupon{
		{ID: 1, Code: "DEZ", DiscountType: entity.DiscountTypeFixed, DiscountValue: "10.00"},
	}, nil)
	methodRepo.On("ListByCheckout", mock.Anything, int64(1)).Return([]entity.PaymentMethod{
		{ID: 9, PaymentMethods: entity.MethodPix, DiscountPercentage: &pct, Tag: "mercadopago"},
		{ID: 10, PaymentMethods: entity.MethodCreditCard, InstallmentFee: &fee, Tag: "pagseguro"},
	}, nil)

	return NewGetCheckoutUseCase(
		checkoutRepo, productRepo, bumpRepo, couponRepo, methodRepo, zerolog.Nop(),
	)
}
