package usecase

import (
	"context"
)

type ApplyCouponUseCase struct {
	Checkout *GetCheckoutUseCase
}

func NewApplyCouponUseCase(checkout *GetCheckoutUseCase) *ApplyCouponUseCase {
	return &ApplyCouponUseCase{Checkout: checkout}
}

// ApplyCouponOutput confirma o cupom aplicado e o desconto que ele dá.
type ApplyCouponOutput struct {
	Code          string `json:"code"`
	DiscountType  string `json:"discount_type"`
	DiscountValue string `json:"discount_value"`
}

// Execute valida um código de cupom contra o catálogo do checkout. A
// comparação ignora maiúsculas; código desconhecido vira erro de domínio com
// a mensagem exibida inline no formulário.
func (uc *ApplyCouponUseCase) Execute(ctx context.Context, slug, code string) (*ApplyCouponOutput, error) {
	data, err := uc.Checkout.Execute(ctx, slug)
	if err != nil {
		return nil, err
	}

	coupon := resolveCoupon(data.Coupons, code)
	if coupon == nil {
		return nil, &DomainError{Code: CodeCouponNotFound, Message: "Cupom inválido."}
	}

	return &ApplyCouponOutput{
		Code:          coupon.Code,
		DiscountType:  coupon.DiscountType,
		DiscountValue: coupon.DiscountValue,
	}, nil
}
