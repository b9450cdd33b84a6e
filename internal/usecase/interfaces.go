package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/paglink/checkout-api/internal/entity"
)

type CheckoutRepository interface {
	FindBySlug(ctx context.Context, slug string) (*entity.CheckoutConfig, error)
}

type ProductRepository interface {
	ListByCheckout(ctx context.Context, checkoutID int64) ([]entity.Product, error)
}

type OrderBumpRepository interface {
	ListByCheckout(ctx context.Context, checkoutID int64) ([]entity.OrderBump, error)
}

type CouponRepository interface {
	ListByCheckout(ctx context.Context, checkoutID int64) ([]entity.Coupon, error)
}

type PaymentMethodRepository interface {
	ListByCheckout(ctx context.Context, checkoutID int64) ([]entity.PaymentMethod, error)
}

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	UpdateStatus(ctx context.Context, orderID, status string) error
}

// ChargeCustomer identifica o pagador junto ao provedor.
type ChargeCustomer struct {
	Name     string
	Email    string
	Document string
	DDI      string
	Phone    string
}

// ChargeInput é a cobrança neutra enviada a qualquer provedor.
type ChargeInput struct {
	OrderID     string
	Description string
	Amount      decimal.Decimal
	Customer    ChargeCustomer
}

// CardChargeInput adiciona o bloco de cartão à cobrança.
type CardChargeInput struct {
	ChargeInput
	Card entity.CardPayment
}

// PixCharge é o resultado de uma cobrança PIX.
type PixCharge struct {
	Code      string
	QRCodeURL string
}

// BoletoCharge é o resultado de uma cobrança por boleto.
type BoletoCharge struct {
	URL string
}

// CardCharge é o resultado de uma cobrança no cartão.
type CardCharge struct {
	Status      string
	RedirectURL string
}

// PaymentGateway é o contrato dos provedores de pagamento (Mercado Pago,
// PagSeguro). Cada cobrança é uma chamada única, sem retry.
type PaymentGateway interface {
	CreatePixCharge(ctx context.Context, input ChargeInput) (*PixCharge, error)
	CreateBoletoCharge(ctx context.Context, input ChargeInput) (*BoletoCharge, error)
	CreateCardCharge(ctx context.Context, input CardChargeInput) (*CardCharge, error)
}

// GatewaySelector resolve o provedor pela tag do método de pagamento.
type GatewaySelector interface {
	ForTag(tag string) (PaymentGateway, error)
}

// OrderPlacedEvent é publicado na fila depois que o pedido é aceito.
type OrderPlacedEvent struct {
	OrderID       string           `json:"order_id"`
	Slug          string           `json:"slug"`
	CustomerName  string           `json:"customer_name"`
	CustomerEmail string           `json:"customer_email"`
	PaymentMethod string           `json:"payment_method"`
	Status        string           `json:"status"`
	Total         string           `json:"total"`
	Items         []OrderEventItem `json:"items"`
	PixCode       string           `json:"pix_code,omitempty"`
	BoletoURL     string           `json:"boleto_url,omitempty"`
}

type OrderEventItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

type EventProducer interface {
	PublishOrderPlaced(ctx context.Context, event OrderPlacedEvent) error
}

// ReceiptSender envia a confirmação do pedido por e-mail.
type ReceiptSender interface {
	SendReceipt(event OrderPlacedEvent) error
}
