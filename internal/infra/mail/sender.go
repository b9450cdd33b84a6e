package mail

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/paglink/checkout-api/internal/entity"
	"github.com/paglink/checkout-api/internal/format"
	"github.com/paglink/checkout-api/internal/usecase"
)

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// SendReceipt envia o e-mail de confirmação do pedido. Valores chegam do
// evento em formato "1234.56" e saem formatados em reais.
func (s *EmailSender) SendReceipt(event usecase.OrderPlacedEvent) error {
	data := ReceiptEmailData{
		Name:          event.CustomerName,
		OrderID:       event.OrderID,
		PaymentMethod: methodLabel(event.PaymentMethod),
		Total:         format.Currency(entity.ParseMoney(event.Total)),
		PixCode:       event.PixCode,
		BoletoURL:     event.BoletoURL,
	}
	for _, item := range event.Items {
		data.Items = append(data.Items, ReceiptItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    format.Currency(entity.ParseMoney(item.Price)),
		})
	}

	tmplPath := filepath.Join("templates", "receipt.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("erro ao ler template de email: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", event.CustomerEmail)
	m.SetHeader("Subject", fmt.Sprintf("Recebemos seu pedido, %s!", event.CustomerName))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}

func methodLabel(method string) string {
	switch method {
	case entity.MethodPix:
		return "PIX"
	case entity.MethodBoleto:
		return "Boleto"
	case entity.MethodCreditCard:
		return "Cartão de crédito"
	default:
		return method
	}
}
