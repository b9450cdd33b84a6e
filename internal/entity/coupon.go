package entity

const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

// Coupon aplica um desconto percentual ou fixo sobre o subtotal. No máximo
// um cupom fica ativo por pedido.
type Coupon struct {
	ID            int64  `json:"id"`
	Code          string `json:"code"`
	DiscountType  string `json:"discount_type"`
	DiscountValue string `json:"discount_value"`
}
