package entity

// Product é um item vendável do checkout. Preços chegam como strings
// decimais ("99.90"), no mesmo formato do catálogo.
type Product struct {
	ID                     int64   `json:"id"`
	ProductID              int64   `json:"product_id"`
	ProductName            string  `json:"product_name"`
	Description            string  `json:"description"`
	Price                  string  `json:"price"`
	FinalPrice             string  `json:"final_price"`
	Image                  string  `json:"image"`
	AllowQuantitySelection Flag    `json:"allow_quantity_selection"`
	QuantityLimit          int     `json:"quantity_limit"`
	ProductType            string  `json:"product_type,omitempty"`
	ServiceType            string  `json:"service_type,omitempty"`
	ServiceConfig          *string `json:"service_config,omitempty"`
}

// QuantityBounds devolve o intervalo de quantidade permitido.
// Produtos em modo créditos usam min/max do service_config; os demais vão
// de 1 até quantity_limit (999 quando não informado).
func (p *Product) QuantityBounds() (min, max int) {
	cfg := ParseServiceConfig(p.ServiceConfig)
	if cfg != nil && cfg.Mode == ServiceModeCredits {
		min = cfg.MinCredits.Int()
		if min <= 0 {
			min = 1
		}
		max = cfg.MaxCredits.Int()
		if max <= 0 {
			max = 100000
		}
		return min, max
	}
	max = p.QuantityLimit
	if max <= 0 {
		max = 999
	}
	return 1, max
}

// ClampQuantity força a quantidade para dentro dos limites do produto.
func (p *Product) ClampQuantity(qty int) int {
	min, max := p.QuantityBounds()
	if qty < min {
		return min
	}
	if qty > max {
		return max
	}
	return qty
}
