package usecase

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/paglink/checkout-api/internal/entity"
	"github.com/paglink/checkout-api/internal/format"
	"github.com/paglink/checkout-api/internal/pricing"
)

// BuildOrder monta a entidade de pedido a partir da seleção já cotada.
// Não valida nada: a entrada deve ter passado por ValidatePlaceOrderInput
// antes. Documento, telefone e número do cartão são normalizados para
// dígitos; o produto principal vem sempre antes dos orderbumps, que entram
// em ordem crescente de id para tornar o payload determinístico.
func BuildOrder(slug string, input PlaceOrderInput, sel pricing.Selection, totals pricing.Totals, catalog []entity.OrderBump) *entity.Order {
	order := &entity.Order{
		ID:   uuid.New().String(),
		Slug: slug,
		Customer: entity.OrderCustomer{
			Name:  strings.TrimSpace(input.Customer.Name),
			Email: strings.TrimSpace(input.Customer.Email),
			CPF:   format.DigitsOnly(input.Customer.CPF),
			DDI:   input.Customer.DDI,
			Phone: format.DigitsOnly(input.Customer.Phone),
		},
		Total:           totals.Total.InexactFloat64(),
		PaymentMethod:   input.PaymentMethod,
		PaymentMethodID: sel.PaymentMethod.ID,
		Status:          entity.OrderStatusPending,
		CreatedAt:       time.Now().UTC(),
	}

	order.Items = append(order.Items, entity.OrderItem{
		ID:       sel.Product.ID,
		Name:     sel.Product.ProductName,
		Price:    totals.UnitPrice.InexactFloat64(),
		Quantity: sel.Quantity,
		Type:     entity.ItemTypeProduct,
	})

	for _, id := range pricing.SortedBumpIDs(sel.Bumps) {
		bump := pricing.FindBump(catalog, id)
		if bump == nil {
			continue
		}
		order.Items = append(order.Items, entity.OrderItem{
			ID:       bump.ID,
			Name:     bump.ProductName,
			Price:    entity.ParseMoney(bump.FinalPrice).InexactFloat64(),
			Quantity: sel.Bumps[id],
			Type:     entity.ItemTypeOrderBump,
		})
	}

	if sel.Coupon != nil {
		code := sel.Coupon.Code
		order.Coupon = &code
	}

	if input.PaymentMethod == entity.MethodCreditCard {
		order.Card = buildCardPayment(input.Card)
	}

	return order
}

// buildCardPayment normaliza o cartão para o formato do gateway: número só
// com dígitos, validade MM/AA separada e ano expandido para quatro dígitos.
func buildCardPayment(card CardInput) *entity.CardPayment {
	month, year := "", ""
	if parts := strings.SplitN(card.Expiry, "/", 2); len(parts) == 2 {
		month = parts[0]
		year = "20" + parts[1]
	}

	installments, err := strconv.Atoi(card.Installments)
	if err != nil || installments < 1 {
		installments = 1
	}

	return &entity.CardPayment{
		Number:       format.DigitsOnly(card.Number),
		HolderName:   strings.TrimSpace(card.HolderName),
		ExpiryMonth:  month,
		ExpiryYear:   year,
		CVV:          format.DigitsOnly(card.CVC),
		Installments: installments,
	}
}
