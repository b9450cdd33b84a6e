package pagseguro

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/paglink/checkout-api/internal/usecase"
)

type Client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  zerolog.Logger
}

func NewClient(token, baseURL string, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

func (c *Client) CreatePixCharge(ctx context.Context, input usecase.ChargeInput) (*usecase.PixCharge, error) {
	payload := c.baseOrder(input)
	payload.QRCodes = []qrCode{{Amount: amount{Value: toCents(input.Amount)}}}

	response, err := c.createOrder(ctx, payload)
	if err != nil {
		return nil, err
	}
	if len(response.QRCodes) == 0 {
		return nil, fmt.Errorf("resposta pix sem qr code")
	}
	qr := response.QRCodes[0]
	return &usecase.PixCharge{
		Code:      qr.Text,
		QRCodeURL: findLink(qr.Links, "image/png"),
	}, nil
}

func (c *Client) CreateBoletoCharge(ctx context.Context, input usecase.ChargeInput) (*usecase.BoletoCharge, error) {
	payload := c.baseOrder(input)
	payload.Charges = []charge{{
		ReferenceID: input.OrderID,
		Description: input.Description,
		Amount:      amount{Value: toCents(input.Amount)},
		PaymentMethod: paymentMethod{
			Type: "BOLETO",
		},
	}}

	response, err := c.createOrder(ctx, payload)
	if err != nil {
		return nil, err
	}
	if len(response.Charges) == 0 {
		return nil, fmt.Errorf("resposta de boleto sem cobrança")
	}
	return &usecase.BoletoCharge{
		URL: findLink(response.Charges[0].Links, "application/pdf"),
	}, nil
}

func (c *Client) CreateCardCharge(ctx context.Context, input usecase.CardChargeInput) (*usecase.CardCharge, error) {
	payload := c.baseOrder(input.ChargeInput)
	payload.Charges = []charge{{
		ReferenceID: input.OrderID,
		Description: input.Description,
		Amount:      amount{Value: toCents(input.Amount)},
		PaymentMethod: paymentMethod{
			Type:         "CREDIT_CARD",
			Installments: input.Card.Installments,
			Capture:      true,
			Card: &card{
				Number:       input.Card.Number,
				ExpMonth:     input.Card.ExpiryMonth,
				ExpYear:      input.Card.ExpiryYear,
				SecurityCode: input.Card.CVV,
				Holder: holder{
					Name:  input.Card.HolderName,
					TaxID: input.Customer.Document,
				},
			},
		},
	}}

	response, err := c.createOrder(ctx, payload)
	if err != nil {
		return nil, err
	}
	if len(response.Charges) == 0 {
		return nil, fmt.Errorf("resposta de cartão sem cobrança")
	}
	return &usecase.CardCharge{Status: normalizeStatus(response.Charges[0].Status)}, nil
}

func (c *Client) baseOrder(input usecase.ChargeInput) orderRequest {
	return orderRequest{
		ReferenceID: input.OrderID,
		Customer: customer{
			Name:  input.Customer.Name,
			Email: input.Customer.Email,
			TaxID: input.Customer.Document,
		},
		Items: []item{{
			Name:       input.Description,
			Quantity:   1,
			UnitAmount: toCents(input.Amount),
		}},
	}
}

func (c *Client) createOrder(ctx context.Context, payload orderRequest) (*orderResponse, error) {
	url := fmt.Sprintf("%s/orders", c.baseURL)

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar json do pedido: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro na conexão com pagseguro: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error().Int("status", resp.StatusCode).Str("body", string(body)).Msg("pagseguro rejeitou a cobrança")
		return nil, fmt.Errorf("pagseguro rejeitou (status %d)", resp.StatusCode)
	}

	var response orderResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao ler resposta do pagseguro: %w", err)
	}
	return &response, nil
}

// toCents converte o valor decimal para centavos, arredondando no segundo
// dígito como o provedor espera.
func toCents(value decimal.Decimal) int64 {
	return value.Round(2).Mul(decimal.NewFromInt(100)).IntPart()
}

func findLink(links []link, media string) string {
	for _, l := range links {
		if l.Media == media {
			return l.Href
		}
	}
	if len(links) > 0 {
		return links[0].Href
	}
	return ""
}

// normalizeStatus traduz o vocabulário do PagSeguro para os status neutros
// do fluxo de pedido.
func normalizeStatus(status string) string {
	switch status {
	case "PAID", "AUTHORIZED":
		return usecase.ChargeStatusApproved
	case "DECLINED", "CANCELED":
		return usecase.ChargeStatusRefused
	default:
		return usecase.ChargeStatusPending
	}
}
