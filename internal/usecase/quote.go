package usecase

import (
	"context"
	"strings"

	"github.com/paglink/checkout-api/internal/entity"
	"github.com/paglink/checkout-api/internal/pricing"
)

type QuoteUseCase struct {
	Checkout *GetCheckoutUseCase
}

func NewQuoteUseCase(checkout *GetCheckoutUseCase) *QuoteUseCase {
	return &QuoteUseCase{Checkout: checkout}
}

// Execute recalcula os totais de uma seleção do lado do servidor. O front
// exibe os próprios cálculos, mas o valor cobrado é sempre este. A quantidade
// é forçada para dentro dos limites do produto antes do cálculo; cupom ou
// método inexistentes na seleção simplesmente não descontam.
func (uc *QuoteUseCase) Execute(ctx context.Context, slug string, input QuoteInput) (*QuoteOutput, error) {
	data, err := uc.Checkout.Execute(ctx, slug)
	if err != nil {
		return nil, err
	}

	product := resolveProduct(data.Products, input.ProductID)
	if product == nil {
		return nil, &DomainError{Code: CodeProductNotFound, Message: "Produto não encontrado"}
	}

	quantity := product.ClampQuantity(input.Quantity)

	sel := pricing.Selection{
		Product:       product,
		Quantity:      quantity,
		Bumps:         eligibleBumps(input.Bumps, data.OrderBumps, product.ProductID),
		Coupon:        resolveCoupon(data.Coupons, input.CouponCode),
		PaymentMethod: resolvePaymentMethod(data.PaymentMethods, input.PaymentMethod),
	}

	totals := pricing.Quote(sel, data.OrderBumps)

	output := &QuoteOutput{
		ProductID: product.ID,
		Quantity:  quantity,
		UnitPrice: totals.UnitPrice.StringFixed(2),
		Subtotal:  totals.Subtotal.StringFixed(2),
		Discount:  totals.Discount.StringFixed(2),
		Total:     totals.Total.StringFixed(2),
	}

	if sel.PaymentMethod != nil && sel.PaymentMethod.IsCard() {
		fee := entity.ParseMoney(derefString(sel.PaymentMethod.InstallmentFee))
		for _, inst := range pricing.InstallmentPlan(totals.Total, fee) {
			output.Installments = append(output.Installments, InstallmentOption{
				Count: inst.Count,
				Value: inst.Value.StringFixed(2),
			})
		}
	}

	return output, nil
}

// resolveProduct busca pelo id; sem correspondência a seleção cai no primeiro
// produto do catálogo apenas quando o id não foi informado.
func resolveProduct(products []entity.Product, id int64) *entity.Product {
	if id == 0 && len(products) > 0 {
		return &products[0]
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i]
		}
	}
	return nil
}

// resolveCoupon compara o código sem diferenciar maiúsculas.
func resolveCoupon(coupons []entity.Coupon, code string) *entity.Coupon {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil
	}
	for i := range coupons {
		if strings.EqualFold(coupons[i].Code, code) {
			return &coupons[i]
		}
	}
	return nil
}

// eligibleBumps descarta bumps selecionados que não podem acompanhar o
// produto base, junto com quantidades fora dos limites de cada bump.
// A elegibilidade compara com o product_id de origem do produto, não com o
// id da linha do catálogo — specific_products referencia o produto real.
func eligibleBumps(selected map[int64]int, catalog []entity.OrderBump, baseProductID int64) map[int64]int {
	if len(selected) == 0 {
		return selected
	}
	result := make(map[int64]int, len(selected))
	for id, qty := range selected {
		bump := pricing.FindBump(catalog, id)
		if bump == nil || !bump.EligibleFor(baseProductID) {
			continue
		}
		result[id] = bump.ClampQuantity(qty)
	}
	return result
}

func resolvePaymentMethod(methods []entity.PaymentMethod, name string) *entity.PaymentMethod {
	for i := range methods {
		if methods[i].PaymentMethods == name {
			return &methods[i]
		}
	}
	return nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
