package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/paglink/checkout-api/internal/entity"
	"github.com/paglink/checkout-api/internal/infra/http/middleware"
	"github.com/paglink/checkout-api/internal/pricing"
)

// Status neutros devolvidos pelos clientes de gateway; cada cliente traduz
// o vocabulário do provedor para estes três valores.
const (
	ChargeStatusApproved = "APPROVED"
	ChargeStatusRefused  = "REFUSED"
	ChargeStatusPending  = "PENDING"
)

type PlaceOrderUseCase struct {
	Checkout  *GetCheckoutUseCase
	OrderRepo OrderRepository
	Gateways  GatewaySelector
	Producer  EventProducer
	Logger    zerolog.Logger
}

func NewPlaceOrderUseCase(
	checkout *GetCheckoutUseCase,
	orderRepo OrderRepository,
	gateways GatewaySelector,
	producer EventProducer,
	logger zerolog.Logger,
) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		Checkout:  checkout,
		OrderRepo: orderRepo,
		Gateways:  gateways,
		Producer:  producer,
		Logger:    logger,
	}
}

// Execute processa a submissão do checkout: valida o formulário, recarrega o
// catálogo, recalcula os totais do lado do servidor, cobra no provedor do
// método escolhido e só então persiste o pedido e publica o evento. Cobrança
// recusada não gera pedido; falha ao publicar o evento não derruba o pedido
// já persistido.
func (uc *PlaceOrderUseCase) Execute(ctx context.Context, slug string, input PlaceOrderInput) (*PlaceOrderOutput, error) {
	if errs := ValidatePlaceOrderInput(input); len(errs) > 0 {
		return nil, &DomainError{
			Code:    CodeValidation,
			Message: "Dados inválidos",
			Fields:  FieldErrors(errs),
		}
	}

	data, err := uc.Checkout.Execute(ctx, slug)
	if err != nil {
		return nil, err
	}

	product := resolveProduct(data.Products, input.ProductID)
	if product == nil {
		return nil, &DomainError{Code: CodeProductNotFound, Message: "Produto não encontrado"}
	}

	method := resolvePaymentMethod(data.PaymentMethods, input.PaymentMethod)
	if method == nil {
		return nil, &DomainError{Code: CodePaymentMethodNotFound, Message: "Método de pagamento não encontrado"}
	}

	sel := pricing.Selection{
		Product:       product,
		Quantity:      product.ClampQuantity(input.Quantity),
		Bumps:         eligibleBumps(input.Bumps, data.OrderBumps, product.ProductID),
		Coupon:        resolveCoupon(data.Coupons, input.CouponCode),
		PaymentMethod: method,
	}
	totals := pricing.Quote(sel, data.OrderBumps)

	order := BuildOrder(slug, input, sel, totals, data.OrderBumps)

	gateway, err := uc.Gateways.ForTag(method.Tag)
	if err != nil {
		uc.Logger.Error().Err(err).Str("tag", method.Tag).Msg("gateway não configurado")
		middleware.RecordGatewayError(method.Tag)
		return nil, &TechnicalError{Code: CodeGatewayError, Message: "Erro ao processar pagamento"}
	}

	charge := ChargeInput{
		OrderID:     order.ID,
		Description: fmt.Sprintf("%s - %s", data.Checkout.Name, product.ProductName),
		Amount:      totals.Total,
		Customer: ChargeCustomer{
			Name:     order.Customer.Name,
			Email:    order.Customer.Email,
			Document: order.Customer.CPF,
			DDI:      order.Customer.DDI,
			Phone:    order.Customer.Phone,
		},
	}

	output := &PlaceOrderOutput{OrderID: order.ID}

	switch input.PaymentMethod {
	case entity.MethodPix:
		pix, err := gateway.CreatePixCharge(ctx, charge)
		if err != nil {
			uc.Logger.Error().Err(err).Str("order_id", order.ID).Msg("falha na cobrança pix")
			middleware.RecordGatewayError(method.Tag)
			return nil, &DomainError{Code: CodePaymentFailed, Message: "Não foi possível processar o pagamento"}
		}
		order.Status = entity.OrderStatusPending
		output.Status = order.Status
		output.Msg = "Pedido criado, aguardando pagamento"
		output.PixCode = pix.Code
		output.PixQRCodeURL = pix.QRCodeURL

	case entity.MethodBoleto:
		boleto, err := gateway.CreateBoletoCharge(ctx, charge)
		if err != nil {
			uc.Logger.Error().Err(err).Str("order_id", order.ID).Msg("falha na emissão do boleto")
			middleware.RecordGatewayError(method.Tag)
			return nil, &DomainError{Code: CodePaymentFailed, Message: "Não foi possível processar o pagamento"}
		}
		order.Status = entity.OrderStatusPending
		output.Status = order.Status
		output.Msg = "Boleto gerado"
		output.BoletoURL = boleto.URL

	case entity.MethodCreditCard:
		result, err := gateway.CreateCardCharge(ctx, CardChargeInput{ChargeInput: charge, Card: *order.Card})
		if err != nil {
			uc.Logger.Error().Err(err).Str("order_id", order.ID).Msg("falha na cobrança do cartão")
			middleware.RecordGatewayError(method.Tag)
			return nil, &DomainError{Code: CodePaymentFailed, Message: "Não foi possível processar o pagamento"}
		}
		if result.Status == ChargeStatusRefused {
			return nil, &DomainError{Code: CodePaymentFailed, Message: "Pagamento recusado pela operadora"}
		}
		if result.Status == ChargeStatusApproved {
			order.Status = entity.OrderStatusPaid
			output.Msg = "Pagamento aprovado"
		} else {
			order.Status = entity.OrderStatusPending
			output.Msg = "Pagamento em processamento"
		}
		output.Status = order.Status
		output.RedirectURL = result.RedirectURL

	default:
		return nil, &DomainError{Code: CodePaymentMethodNotFound, Message: "Método de pagamento não encontrado"}
	}

	if err := uc.OrderRepo.Create(ctx, order); err != nil {
		uc.Logger.Error().Err(err).Str("order_id", order.ID).Msg("erro ao persistir pedido")
		return nil, &TechnicalError{Code: CodeDatabaseError, Message: "Erro ao salvar pedido"}
	}

	event := buildOrderPlacedEvent(order, output)
	if err := uc.Producer.PublishOrderPlaced(ctx, event); err != nil {
		uc.Logger.Error().Err(err).Str("order_id", order.ID).Msg("erro ao publicar evento do pedido")
	}

	return output, nil
}

func buildOrderPlacedEvent(order *entity.Order, output *PlaceOrderOutput) OrderPlacedEvent {
	event := OrderPlacedEvent{
		OrderID:       order.ID,
		Slug:          order.Slug,
		CustomerName:  order.Customer.Name,
		CustomerEmail: order.Customer.Email,
		PaymentMethod: order.PaymentMethod,
		Status:        order.Status,
		Total:         fmt.Sprintf("%.2f", order.Total),
		PixCode:       output.PixCode,
		BoletoURL:     output.BoletoURL,
	}
	for _, item := range order.Items {
		event.Items = append(event.Items, OrderEventItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    fmt.Sprintf("%.2f", item.Price),
		})
	}
	return event
}
