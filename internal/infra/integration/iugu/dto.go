package iugu

// chargeRequest é o corpo da cobrança direta (POST /v1/charge). O método
// escolhe o meio: pix, bank_slip ou credit_card.
type chargeRequest struct {
	Method      string    `json:"method"`
	Email       string    `json:"email"`
	Months      int       `json:"months,omitempty"`
	Token       string    `json:"token,omitempty"`
	OrderID     string    `json:"order_id"`
	Items       []item    `json:"items"`
	Payer       payer     `json:"payer"`
	PaymentCard *cardData `json:"payment_card,omitempty"`
}

type item struct {
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	PriceCents  int64  `json:"price_cents"`
}

type payer struct {
	Name        string `json:"name"`
	CPFCNPJ     string `json:"cpf_cnpj"`
	PhonePrefix string `json:"phone_prefix,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

// cardData carrega o cartão aberto quando não há token prévio.
type cardData struct {
	Number            string `json:"number"`
	VerificationValue string `json:"verification_value"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Month             string `json:"month"`
	Year              string `json:"year"`
}

type chargeResponse struct {
	Success   bool      `json:"success"`
	InvoiceID string    `json:"invoice_id"`
	Status    string    `json:"status"`
	URL       string    `json:"url"`
	Message   string    `json:"message"`
	Pix       *pixBlock `json:"pix,omitempty"`
}

type pixBlock struct {
	QRCode     string `json:"qrcode"`
	QRCodeText string `json:"qrcode_text"`
}
