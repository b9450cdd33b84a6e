// Package format reúne as transformações puras de string do checkout:
// máscaras de telefone, documento e cartão, e formatação de moeda.
package format

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var nonDigits = regexp.MustCompile(`\D`)

// DigitsOnly remove tudo que não for dígito.
func DigitsOnly(value string) string {
	return nonDigits.ReplaceAllString(value, "")
}

// PhoneMask aplica a máscara de telefone. Para +55 usa os dois formatos
// brasileiros (fixo e celular); para outros DDIs só limita a 15 dígitos.
func PhoneMask(value, ddi string) string {
	digits := DigitsOnly(value)
	if ddi != "+55" {
		if len(digits) > 15 {
			return digits[:15]
		}
		return digits
	}

	if len(digits) <= 10 {
		if len(digits) < 6 {
			return digits
		}
		masked := fmt.Sprintf("(%s) %s-%s", digits[:2], digits[2:6], digits[6:])
		masked = strings.TrimSuffix(masked, "-")
		return strings.TrimSpace(masked)
	}

	digits = digits[:11]
	return fmt.Sprintf("(%s) %s-%s", digits[:2], digits[2:7], digits[7:])
}

// DocumentMask formata CPF (até 11 dígitos) ou CNPJ (12 a 14) conforme a
// quantidade de dígitos, mascarando progressivamente entradas parciais.
func DocumentMask(value string) string {
	digits := DigitsOnly(value)
	if len(digits) <= 11 {
		return insertSeparators(digits, []separator{
			{3, "."}, {6, "."}, {9, "-"},
		}, 14)
	}
	if len(digits) > 14 {
		digits = digits[:14]
	}
	return insertSeparators(digits, []separator{
		{2, "."}, {5, "."}, {8, "/"}, {12, "-"},
	}, 18)
}

type separator struct {
	after int
	char  string
}

func insertSeparators(digits string, seps []separator, maxLen int) string {
	var b strings.Builder
	for i, r := range digits {
		for _, sep := range seps {
			if i == sep.after {
				b.WriteString(sep.char)
			}
		}
		b.WriteRune(r)
	}
	masked := b.String()
	if len(masked) > maxLen {
		return masked[:maxLen]
	}
	return masked
}

// CardNumberMask agrupa o número em blocos de 4 dígitos separados por
// espaço, limitado a 16 dígitos.
func CardNumberMask(value string) string {
	digits := DigitsOnly(value)
	if len(digits) > 16 {
		digits = digits[:16]
	}
	var groups []string
	for i := 0; i < len(digits); i += 4 {
		end := i + 4
		if end > len(digits) {
			end = len(digits)
		}
		groups = append(groups, digits[i:end])
	}
	return strings.Join(groups, " ")
}

// ExpiryMask formata a validade como MM/AA, limitada a 4 dígitos.
func ExpiryMask(value string) string {
	digits := DigitsOnly(value)
	if len(digits) > 4 {
		digits = digits[:4]
	}
	if len(digits) <= 2 {
		return digits
	}
	return digits[:2] + "/" + digits[2:]
}

// Currency formata um valor monetário com duas casas e vírgula decimal,
// no padrão exibido ao comprador ("1234,50").
func Currency(value decimal.Decimal) string {
	return strings.ReplaceAll(value.StringFixed(2), ".", ",")
}

// CardLast4 devolve os 4 últimos dígitos do cartão, para registro seguro.
func CardLast4(number string) string {
	digits := DigitsOnly(number)
	if len(digits) < 4 {
		return digits
	}
	return digits[len(digits)-4:]
}
