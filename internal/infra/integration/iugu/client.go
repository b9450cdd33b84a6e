package iugu

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
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
	payload := c.baseCharge(input)
	payload.Method = "pix"

	response, err := c.createCharge(ctx, payload)
	if err != nil {
		return nil, err
	}
	if response.Pix == nil {
		return nil, fmt.Errorf("resposta pix sem qr code")
	}
	return &usecase.PixCharge{
		Code:      response.Pix.QRCodeText,
		QRCodeURL: response.Pix.QRCode,
	}, nil
}

func (c *Client) CreateBoletoCharge(ctx context.Context, input usecase.ChargeInput) (*usecase.BoletoCharge, error) {
	payload := c.baseCharge(input)
	payload.Method = "bank_slip"

	response, err := c.createCharge(ctx, payload)
	if err != nil {
		return nil, err
	}
	return &usecase.BoletoCharge{URL: response.URL}, nil
}

func (c *Client) CreateCardCharge(ctx context.Context, input usecase.CardChargeInput) (*usecase.CardCharge, error) {
	first, last := splitName(input.Card.HolderName)
	payload := c.baseCharge(input.ChargeInput)
	payload.Method = "credit_card"
	payload.Months = input.Card.Installments
	payload.PaymentCard = &cardData{
		Number:            input.Card.Number,
		VerificationValue: input.Card.CVV,
		FirstName:         first,
		LastName:          last,
		Month:             input.Card.ExpiryMonth,
		Year:              input.Card.ExpiryYear,
	}

	response, err := c.createCharge(ctx, payload)
	if err != nil {
		return nil, err
	}
	return &usecase.CardCharge{Status: normalizeStatus(response)}, nil
}

func (c *Client) baseCharge(input usecase.ChargeInput) chargeRequest {
	return chargeRequest{
		Email:   input.Customer.Email,
		OrderID: input.OrderID,
		Items: []item{{
			Description: input.Description,
			Quantity:    1,
			PriceCents:  toCents(input.Amount),
		}},
		Payer: payer{
			Name:        input.Customer.Name,
			CPFCNPJ:     input.Customer.Document,
			PhonePrefix: input.Customer.DDI,
			Phone:       input.Customer.Phone,
		},
	}
}

func (c *Client) createCharge(ctx context.Context, payload chargeRequest) (*chargeResponse, error) {
	url := fmt.Sprintf("%s/v1/charge", c.baseURL)

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar json da cobrança: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	// A iugu autentica com o token de API como usuário e senha vazia.
	req.SetBasicAuth(c.token, "")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro na conexão com iugu: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error().Int("status", resp.StatusCode).Str("body", string(body)).Msg("iugu rejeitou a cobrança")
		return nil, fmt.Errorf("iugu rejeitou (status %d)", resp.StatusCode)
	}

	var response chargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao ler resposta da iugu: %w", err)
	}
	return &response, nil
}

func toCents(value decimal.Decimal) int64 {
	return value.Round(2).Mul(decimal.NewFromInt(100)).IntPart()
}

// splitName separa o primeiro nome do restante, como a API de cartão espera.
func splitName(full string) (string, string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// normalizeStatus traduz o retorno da iugu para os status neutros do fluxo
// de pedido. A cobrança direta responde success + status da fatura.
func normalizeStatus(response *chargeResponse) string {
	switch strings.ToLower(response.Status) {
	case "captured", "paid":
		return usecase.ChargeStatusApproved
	case "declined", "refused", "canceled":
		return usecase.ChargeStatusRefused
	}
	if !response.Success {
		return usecase.ChargeStatusRefused
	}
	return usecase.ChargeStatusPending
}
