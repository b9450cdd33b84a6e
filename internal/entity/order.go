package entity

import "time"

const (
	ItemTypeProduct   = "product"
	ItemTypeOrderBump = "orderbump"
)

const (
	OrderStatusPending  = "PENDING"
	OrderStatusPaid     = "PAID"
	OrderStatusRefused  = "REFUSED"
	OrderStatusCanceled = "CANCELED"
)

// OrderCustomer é a identidade do comprador já normalizada: cpf e phone
// ficam só com dígitos.
type OrderCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	CPF   string `json:"cpf"`
	DDI   string `json:"ddi"`
	Phone string `json:"phone"`
}

// OrderItem é uma linha do pedido. O produto principal vem primeiro com
// type "product", seguido dos bumps com type "orderbump".
type OrderItem struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Type     string  `json:"type"`
}

// CardPayment é o bloco de cartão enviado só quando o método é credit_card.
// Number carrega apenas dígitos; ExpiryYear já vem com o século ("20" + AA).
type CardPayment struct {
	Number       string `json:"number"`
	HolderName   string `json:"holder_name"`
	ExpiryMonth  string `json:"expiry_month"`
	ExpiryYear   string `json:"expiry_year"`
	CVV          string `json:"cvv"`
	Installments int    `json:"installments"`
}

// Order é o objeto de submissão montado depois da validação. A forma do
// JSON é exatamente a consumida pela API de processamento.
type Order struct {
	ID              string        `json:"-"`
	Slug            string        `json:"-"`
	Customer        OrderCustomer `json:"customer"`
	Items           []OrderItem   `json:"items"`
	Total           float64       `json:"total"`
	Coupon          *string       `json:"coupon"`
	PaymentMethod   string        `json:"payment_method"`
	PaymentMethodID int64         `json:"payment_method_id"`
	Card            *CardPayment  `json:"card,omitempty"`
	Status          string        `json:"-"`
	CreatedAt       time.Time     `json:"-"`
}
