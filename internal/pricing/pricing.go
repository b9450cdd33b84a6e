// Package pricing concentra a aritmética de preço do checkout: resolução de
// preço unitário por faixa de quantidade e o cálculo de totais com descontos
// de método de pagamento e cupom.
package pricing

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/paglink/checkout-api/internal/entity"
)

var oneHundred = decimal.NewFromInt(100)

// UnitPrice resolve o preço unitário de um produto para a quantidade pedida.
// Sem service_config (ou modo diferente de créditos) vale o final_price fixo.
// Em modo créditos as faixas são varridas na ordem do catálogo e a PRIMEIRA
// que contém a quantidade vence; sem faixa compatível, vale o preço base.
func UnitPrice(product *entity.Product, quantity int) decimal.Decimal {
	cfg := entity.ParseServiceConfig(product.ServiceConfig)
	if cfg == nil || cfg.Mode != entity.ServiceModeCredits {
		return entity.ParseMoney(product.FinalPrice)
	}

	base := entity.ParseMoney(cfg.CreditBasePrice)
	if base.IsZero() && cfg.CreditBasePrice == "" {
		base = entity.ParseMoney(product.FinalPrice)
	}

	for _, tier := range cfg.PriceTiers {
		if tier.Contains(quantity) {
			return entity.ParseMoney(tier.Price)
		}
	}
	return base
}

// Selection é o estado de escolha do comprador no momento do cálculo.
// Bumps mapeia id do bump para a quantidade escolhida; remover um bump
// significa remover a entrada, quantidade zero não é representada.
type Selection struct {
	Product       *entity.Product
	Quantity      int
	Bumps         map[int64]int
	Coupon        *entity.Coupon
	PaymentMethod *entity.PaymentMethod
}

// Totals é derivado puro da seleção corrente: nada aqui é memorizado.
type Totals struct {
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
	Discount  decimal.Decimal
	Total     decimal.Decimal
}

// Quote calcula os totais do pedido. Os dois descontos (método de pagamento
// e cupom) incidem sobre o MESMO subtotal pré-desconto e são somados antes
// do clamp final em zero; não há clamp por etapa. Bump selecionado sem
// correspondente no catálogo contribui com zero.
func Quote(sel Selection, catalog []entity.OrderBump) Totals {
	if sel.Product == nil {
		return Totals{
			UnitPrice: decimal.Zero,
			Subtotal:  decimal.Zero,
			Discount:  decimal.Zero,
			Total:     decimal.Zero,
		}
	}

	unit := UnitPrice(sel.Product, sel.Quantity)
	base := unit.Mul(decimal.NewFromInt(int64(sel.Quantity)))

	bumpTotal := decimal.Zero
	for _, id := range SortedBumpIDs(sel.Bumps) {
		bump := FindBump(catalog, id)
		if bump == nil {
			continue
		}
		qty := decimal.NewFromInt(int64(sel.Bumps[id]))
		bumpTotal = bumpTotal.Add(entity.ParseMoney(bump.FinalPrice).Mul(qty))
	}

	subtotal := base.Add(bumpTotal)
	discount := decimal.Zero

	if sel.PaymentMethod != nil && sel.PaymentMethod.DiscountPercentage != nil {
		pct := entity.ParseMoney(*sel.PaymentMethod.DiscountPercentage)
		if pct.IsPositive() {
			discount = discount.Add(subtotal.Mul(pct).Div(oneHundred))
		}
	}

	if sel.Coupon != nil {
		value := entity.ParseMoney(sel.Coupon.DiscountValue)
		if sel.Coupon.DiscountType == entity.DiscountTypePercentage {
			discount = discount.Add(subtotal.Mul(value).Div(oneHundred))
		} else {
			discount = discount.Add(value)
		}
	}

	total := subtotal.Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return Totals{
		UnitPrice: unit,
		Subtotal:  subtotal,
		Discount:  discount,
		Total:     total,
	}
}

// Installment é uma parcela do plano de cartão.
type Installment struct {
	Count int
	Value decimal.Decimal
}

// InstallmentPlan monta o plano de 1 a 12 parcelas sobre o total, com juros
// simples de fee% por parcela além da primeira.
func InstallmentPlan(total decimal.Decimal, fee decimal.Decimal) []Installment {
	plan := make([]Installment, 0, 12)
	for count := 1; count <= 12; count++ {
		factor := decimal.NewFromInt(1).Add(
			fee.Div(oneHundred).Mul(decimal.NewFromInt(int64(count - 1))),
		)
		value := total.Mul(factor).Div(decimal.NewFromInt(int64(count)))
		plan = append(plan, Installment{Count: count, Value: value})
	}
	return plan
}

// SortedBumpIDs devolve os ids de bumps selecionados em ordem crescente,
// garantindo iteração determinística.
func SortedBumpIDs(bumps map[int64]int) []int64 {
	ids := make([]int64, 0, len(bumps))
	for id := range bumps {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// FindBump localiza um bump do catálogo pelo id; nil quando não existe mais.
func FindBump(catalog []entity.OrderBump, id int64) *entity.OrderBump {
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i]
		}
	}
	return nil
}
