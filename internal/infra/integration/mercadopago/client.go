package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/paglink/checkout-api/internal/card"
	"github.com/paglink/checkout-api/internal/usecase"
)

type Client struct {
	baseURL     string
	accessToken string
	http        *http.Client
	logger      zerolog.Logger
}

func NewClient(accessToken, baseURL string, logger zerolog.Logger) *Client {
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		http:        &http.Client{Timeout: 10 * time.Second},
		logger:      logger,
	}
}

func (c *Client) CreatePixCharge(ctx context.Context, input usecase.ChargeInput) (*usecase.PixCharge, error) {
	payload := c.basePayment(input)
	payload.PaymentMethodID = "pix"

	response, err := c.createPayment(ctx, input.OrderID, payload)
	if err != nil {
		return nil, err
	}
	if response.PointOfInteraction == nil {
		return nil, fmt.Errorf("resposta pix sem dados de transação")
	}
	return &usecase.PixCharge{
		Code:      response.PointOfInteraction.TransactionData.QRCode,
		QRCodeURL: response.PointOfInteraction.TransactionData.TicketURL,
	}, nil
}

func (c *Client) CreateBoletoCharge(ctx context.Context, input usecase.ChargeInput) (*usecase.BoletoCharge, error) {
	payload := c.basePayment(input)
	payload.PaymentMethodID = "bolbradesco"

	response, err := c.createPayment(ctx, input.OrderID, payload)
	if err != nil {
		return nil, err
	}
	if response.TransactionDetails == nil || response.TransactionDetails.ExternalResourceURL == "" {
		return nil, fmt.Errorf("resposta de boleto sem url")
	}
	return &usecase.BoletoCharge{URL: response.TransactionDetails.ExternalResourceURL}, nil
}

func (c *Client) CreateCardCharge(ctx context.Context, input usecase.CardChargeInput) (*usecase.CardCharge, error) {
	payload := c.basePayment(input.ChargeInput)
	payload.PaymentMethodID = methodIDForCard(input.Card.Number)
	payload.Installments = input.Card.Installments
	payload.Card = &cardDetail{
		Number:          input.Card.Number,
		ExpirationMonth: input.Card.ExpiryMonth,
		ExpirationYear:  input.Card.ExpiryYear,
		SecurityCode:    input.Card.CVV,
		Cardholder: cardholder{
			Name:           input.Card.HolderName,
			Identification: documentOf(input.Customer),
		},
	}

	response, err := c.createPayment(ctx, input.OrderID, payload)
	if err != nil {
		return nil, err
	}
	return &usecase.CardCharge{Status: normalizeStatus(response.Status)}, nil
}

func (c *Client) basePayment(input usecase.ChargeInput) paymentRequest {
	return paymentRequest{
		TransactionAmount: input.Amount.InexactFloat64(),
		Description:       input.Description,
		ExternalReference: input.OrderID,
		Payer: payer{
			Email:          input.Customer.Email,
			FirstName:      input.Customer.Name,
			Identification: documentOf(input.Customer),
		},
	}
}

func (c *Client) createPayment(ctx context.Context, orderID string, payload paymentRequest) (*paymentResponse, error) {
	url := fmt.Sprintf("%s/v1/payments", c.baseURL)

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar json do pagamento: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req, orderID)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro na conexão com mercado pago: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error().Int("status", resp.StatusCode).Str("body", string(body)).Msg("mercado pago rejeitou a cobrança")
		return nil, fmt.Errorf("mercado pago rejeitou (status %d)", resp.StatusCode)
	}

	var response paymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao ler resposta do mercado pago: %w", err)
	}
	return &response, nil
}

// setHeaders centraliza os headers obrigatórios; a chave de idempotência é o
// id do pedido, então reenvio da mesma cobrança não duplica.
func (c *Client) setHeaders(req *http.Request, orderID string) {
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Idempotency-Key", orderID)
}

func documentOf(customer usecase.ChargeCustomer) identification {
	docType := "CPF"
	if len(customer.Document) == 14 {
		docType = "CNPJ"
	}
	return identification{Type: docType, Number: customer.Document}
}

// methodIDForCard resolve o payment_method_id exigido pela API a partir da
// bandeira do cartão; o Mercado Pago usa "master" para Mastercard.
func methodIDForCard(number string) string {
	brand := card.Detect(number)
	switch brand {
	case card.BrandMastercard:
		return "master"
	case card.BrandNone:
		return "credit_card"
	default:
		return string(brand)
	}
}

// normalizeStatus traduz o vocabulário do Mercado Pago para os status
// neutros do fluxo de pedido.
func normalizeStatus(status string) string {
	switch status {
	case "approved":
		return usecase.ChargeStatusApproved
	case "rejected", "cancelled":
		return usecase.ChargeStatusRefused
	default:
		return usecase.ChargeStatusPending
	}
}
