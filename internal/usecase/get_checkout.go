package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/paglink/checkout-api/internal/entity"
)

type GetCheckoutUseCase struct {
	CheckoutRepo      CheckoutRepository
	ProductRepo       ProductRepository
	BumpRepo          OrderBumpRepository
	CouponRepo        CouponRepository
	PaymentMethodRepo PaymentMethodRepository
	Logger            zerolog.Logger
}

func NewGetCheckoutUseCase(
	checkoutRepo CheckoutRepository,
	productRepo ProductRepository,
	bumpRepo OrderBumpRepository,
	couponRepo CouponRepository,
	paymentMethodRepo PaymentMethodRepository,
	logger zerolog.Logger,
) *GetCheckoutUseCase {
	return &GetCheckoutUseCase{
		CheckoutRepo:      checkoutRepo,
		ProductRepo:       productRepo,
		BumpRepo:          bumpRepo,
		CouponRepo:        couponRepo,
		PaymentMethodRepo: paymentMethodRepo,
		Logger:            logger,
	}
}

// Execute carrega o catálogo completo de um checkout pelo slug: configuração
// da página, produtos, orderbumps, cupons e métodos de pagamento. O envelope
// devolvido é o mesmo servido ao front e o mesmo usado internamente para
// recalcular totais.
func (uc *GetCheckoutUseCase) Execute(ctx context.Context, slug string) (*entity.CheckoutData, error) {
	checkout, err := uc.CheckoutRepo.FindBySlug(ctx, slug)
	if err != nil {
		uc.Logger.Error().Err(err).Str("slug", slug).Msg("erro ao buscar checkout")
		return nil, &TechnicalError{Code: CodeDatabaseError, Message: "Erro ao carregar checkout"}
	}
	if checkout == nil {
		return nil, &DomainError{Code: CodeCheckoutNotFound, Message: "Checkout não encontrado"}
	}

	products, err := uc.ProductRepo.ListByCheckout(ctx, checkout.ID)
	if err != nil {
		uc.Logger.Error().Err(err).Str("slug", slug).Msg("erro ao listar produtos")
		return nil, &TechnicalError{Code: CodeDatabaseError, Message: "Erro ao carregar checkout"}
	}

	bumps, err := uc.BumpRepo.ListByCheckout(ctx, checkout.ID)
	if err != nil {
		uc.Logger.Error().Err(err).Str("slug", slug).Msg("erro ao listar orderbumps")
		return nil, &TechnicalError{Code: CodeDatabaseError, Message: "Erro ao carregar checkout"}
	}

	coupons, err := uc.CouponRepo.ListByCheckout(ctx, checkout.ID)
	if err != nil {
		uc.Logger.Error().Err(err).Str("slug", slug).Msg("erro ao listar cupons")
		return nil, &TechnicalError{Code: CodeDatabaseError, Message: "Erro ao carregar checkout"}
	}

	methods, err := uc.PaymentMethodRepo.ListByCheckout(ctx, checkout.ID)
	if err != nil {
		uc.Logger.Error().Err(err).Str("slug", slug).Msg("erro ao listar métodos de pagamento")
		return nil, &TechnicalError{Code: CodeDatabaseError, Message: "Erro ao carregar checkout"}
	}

	return &entity.CheckoutData{
		Checkout:       checkout,
		Products:       products,
		OrderBumps:     bumps,
		Coupons:        coupons,
		PaymentMethods: methods,
	}, nil
}
