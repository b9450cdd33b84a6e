package usecase

import (
	"fmt"
	"strings"

	"github.com/paglink/checkout-api/internal/entity"
	"github.com/paglink/checkout-api/internal/format"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidatePlaceOrderInput valida o formulário do comprador e, quando o
// método é cartão, os campos do cartão. Todas as regras são independentes e
// rodam mesmo após falhas anteriores; o resultado vazio significa válido.
// As checagens são estruturais de propósito — e-mail só exige "@", documento
// só confere 11 ou 14 dígitos — pois a validação forte é do gateway.
func ValidatePlaceOrderInput(input PlaceOrderInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Customer.Name) == "" {
		errors = append(errors, ValidationError{"name", "Nome obrigatório"})
	}

	if !strings.Contains(input.Customer.Email, "@") {
		errors = append(errors, ValidationError{"email", "E-mail inválido"})
	}

	doc := format.DigitsOnly(input.Customer.CPF)
	if len(doc) != 11 && len(doc) != 14 {
		errors = append(errors, ValidationError{"cpf", "CPF/CNPJ inválido"})
	}

	if len(format.DigitsOnly(input.Customer.Phone)) < 10 {
		errors = append(errors, ValidationError{"phone", "Telefone inválido"})
	}

	if input.PaymentMethod == entity.MethodCreditCard {
		if strings.TrimSpace(input.Card.HolderName) == "" {
			errors = append(errors, ValidationError{"card_holder", "Nome no cartão obrigatório"})
		}
		if len(format.DigitsOnly(input.Card.Number)) < 13 {
			errors = append(errors, ValidationError{"card_number", "Número inválido"})
		}
		if len(input.Card.Expiry) != 5 {
			errors = append(errors, ValidationError{"card_expiry", "Validade inválida"})
		}
		if len(format.DigitsOnly(input.Card.CVC)) < 3 {
			errors = append(errors, ValidationError{"card_cvc", "CVV inválido"})
		}
	}

	return errors
}

// FieldErrors converte a lista de erros no mapa campo → mensagem usado na
// resposta; o front rola até o primeiro campo inválido pelo nome.
func FieldErrors(errors []ValidationError) map[string]string {
	if len(errors) == 0 {
		return nil
	}
	fields := make(map[string]string, len(errors))
	for _, e := range errors {
		if _, exists := fields[e.Field]; !exists {
			fields[e.Field] = e.Message
		}
	}
	return fields
}
