// Package gateway resolve o provedor de pagamento pela tag configurada no
// método de pagamento do checkout.
package gateway

import (
	"fmt"

	"github.com/paglink/checkout-api/internal/usecase"
)

type Registry struct {
	gateways map[string]usecase.PaymentGateway
}

func NewRegistry() *Registry {
	return &Registry{gateways: make(map[string]usecase.PaymentGateway)}
}

// Register associa uma tag (mercadopago, pagseguro) a um cliente.
func (r *Registry) Register(tag string, gw usecase.PaymentGateway) {
	r.gateways[tag] = gw
}

func (r *Registry) ForTag(tag string) (usecase.PaymentGateway, error) {
	gw, ok := r.gateways[tag]
	if !ok {
		return nil, fmt.Errorf("nenhum gateway registrado para a tag %q", tag)
	}
	return gw, nil
}
