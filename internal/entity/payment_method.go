package entity

import "encoding/json"

const (
	MethodPix        = "pix"
	MethodBoleto     = "boleto"
	MethodCreditCard = "credit_card"
)

// PaymentMethod é um trilho de pagamento habilitado no checkout.
// Tag identifica o provedor processador (mercadopago, pagseguro, iugu).
// Config carrega as chaves públicas repassadas ao SDK do provedor no front.
type PaymentMethod struct {
	ID                 int64           `json:"id"`
	PaymentMethods     string          `json:"payment_methods"`
	DiscountPercentage *string         `json:"discount_percentage"`
	InstallmentFee     *string         `json:"installment_fee,omitempty"`
	Tag                string          `json:"tag"`
	EnableClientSide   Flag            `json:"enable_client_side,omitempty"`
	Config             json.RawMessage `json:"config,omitempty"`
}

// IsCard informa se o método é cartão de crédito.
func (m *PaymentMethod) IsCard() bool {
	return m.PaymentMethods == MethodCreditCard
}
