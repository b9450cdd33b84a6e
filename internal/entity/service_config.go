package entity

import (
	"encoding/json"
	"strconv"
	"strings"
)

const (
	ServiceModeCredits  = "credits"
	ServiceModePackages = "packages"
)

// PriceTier é uma faixa contígua de quantidade [From, To] com preço unitário
// próprio. To == 0 significa faixa aberta (sem limite superior).
type PriceTier struct {
	From  int    `json:"from"`
	To    int    `json:"to"`
	Price string `json:"price"`
}

// Contains informa se a quantidade cai dentro da faixa.
func (t PriceTier) Contains(qty int) bool {
	return qty >= t.From && (t.To == 0 || qty <= t.To)
}

// ServiceConfig é a configuração de precificação decodificada do blob JSON
// do produto. Presente só em produtos com modo especial (créditos/pacotes).
type ServiceConfig struct {
	Mode            string      `json:"mode"`
	CreditBasePrice string      `json:"credit_base_price"`
	MinCredits      FlexInt     `json:"min_credits"`
	MaxCredits      FlexInt     `json:"max_credits"`
	PriceTiers      []PriceTier `json:"-"`
}

type rawServiceConfig struct {
	Mode            string          `json:"mode"`
	CreditBasePrice string          `json:"credit_base_price"`
	MinCredits      FlexInt         `json:"min_credits"`
	MaxCredits      FlexInt         `json:"max_credits"`
	PriceTiers      json.RawMessage `json:"price_tiers"`
}

// ParseServiceConfig decodifica o service_config de um produto.
// Entrada ausente, vazia ou malformada vira nil — o chamador trata nil como
// "preço fixo se aplica". O campo price_tiers pode vir já estruturado ou
// como string JSON aninhada; nesse caso é decodificado um nível a mais e a
// falha nesse passo interno também derruba o parse inteiro para nil.
func ParseServiceConfig(raw *string) *ServiceConfig {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil
	}

	var decoded rawServiceConfig
	if err := json.Unmarshal([]byte(*raw), &decoded); err != nil {
		return nil
	}

	cfg := &ServiceConfig{
		Mode:            decoded.Mode,
		CreditBasePrice: decoded.CreditBasePrice,
		MinCredits:      decoded.MinCredits,
		MaxCredits:      decoded.MaxCredits,
	}

	if len(decoded.PriceTiers) == 0 {
		return cfg
	}

	tiersData := []byte(decoded.PriceTiers)
	var nested string
	if err := json.Unmarshal(tiersData, &nested); err == nil {
		tiersData = []byte(nested)
	}
	if err := json.Unmarshal(tiersData, &cfg.PriceTiers); err != nil {
		return nil
	}
	return cfg
}

// FlexInt aceita números ou strings numéricas no JSON do catálogo
// (min_credits chega ora como 10, ora como "10"). Valor inválido vira zero.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	trimmed := strings.Trim(string(data), `"`)
	if trimmed == "" || trimmed == "null" {
		*f = 0
		return nil
	}
	parsed, err := strconv.Atoi(trimmed)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexInt(parsed)
	return nil
}

func (f FlexInt) Int() int {
	return int(f)
}
