package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseMoney converte um preço do catálogo ("99.90") para decimal.
// Valor vazio ou inválido vira zero — o catálogo é tratado com leniência,
// nunca derruba o cálculo.
func ParseMoney(value string) decimal.Decimal {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return decimal.Zero
	}
	parsed, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero
	}
	return parsed
}
