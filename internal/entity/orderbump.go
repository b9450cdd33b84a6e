package entity

import (
	"encoding/json"
	"strconv"
)

// OrderBump é um item adicional opcional oferecido junto do produto
// principal. specific_products é uma lista JSON de produtos elegíveis.
type OrderBump struct {
	ID                     int64  `json:"id"`
	ProductID              int64  `json:"product_id"`
	ProductName            string `json:"product_name"`
	Description            string `json:"description"`
	Price                  string `json:"price"`
	FinalPrice             string `json:"final_price"`
	Image                  string `json:"image"`
	SpecificProducts       string `json:"specific_products"`
	AllowQuantitySelection Flag   `json:"allow_quantity_selection"`
	QuantityLimit          int    `json:"quantity_limit"`
}

type specificProductRef struct {
	ID json.RawMessage `json:"id"`
}

// EligibleFor diz se o bump pode acompanhar o produto base informado.
// Lista malformada torna o bump elegível para qualquer produto (leniência
// herdada do catálogo).
func (b *OrderBump) EligibleFor(productID int64) bool {
	var refs []specificProductRef
	if err := json.Unmarshal([]byte(b.SpecificProducts), &refs); err != nil {
		return true
	}
	want := strconv.FormatInt(productID, 10)
	for _, ref := range refs {
		var asString string
		if err := json.Unmarshal(ref.ID, &asString); err == nil {
			if asString == want {
				return true
			}
			continue
		}
		var asNumber int64
		if err := json.Unmarshal(ref.ID, &asNumber); err == nil && asNumber == productID {
			return true
		}
	}
	return false
}

// ClampQuantity limita a quantidade do bump entre 1 e o quantity_limit
// (999 quando não informado).
func (b *OrderBump) ClampQuantity(qty int) int {
	max := b.QuantityLimit
	if max <= 0 {
		max = 999
	}
	if qty < 1 {
		return 1
	}
	if qty > max {
		return max
	}
	return qty
}
