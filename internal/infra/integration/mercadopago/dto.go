package mercadopago

// Formato da API de pagamentos do Mercado Pago (POST /v1/payments).

type paymentRequest struct {
	TransactionAmount float64     `json:"transaction_amount"`
	Description       string      `json:"description"`
	PaymentMethodID   string      `json:"payment_method_id"`
	Installments      int         `json:"installments,omitempty"`
	ExternalReference string      `json:"external_reference"`
	Payer             payer       `json:"payer"`
	Card              *cardDetail `json:"card,omitempty"`
}

type payer struct {
	Email          string         `json:"email"`
	FirstName      string         `json:"first_name"`
	Identification identification `json:"identification"`
}

type identification struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

type cardDetail struct {
	Number          string     `json:"card_number"`
	ExpirationMonth string     `json:"expiration_month"`
	ExpirationYear  string     `json:"expiration_year"`
	SecurityCode    string     `json:"security_code"`
	Cardholder      cardholder `json:"cardholder"`
}

type cardholder struct {
	Name           string         `json:"name"`
	Identification identification `json:"identification"`
}

type paymentResponse struct {
	ID                 int64               `json:"id"`
	Status             string              `json:"status"`
	StatusDetail       string              `json:"status_detail"`
	PointOfInteraction *pointOfInteraction `json:"point_of_interaction,omitempty"`
	TransactionDetails *transactionDetails `json:"transaction_details,omitempty"`
}

type pointOfInteraction struct {
	TransactionData transactionData `json:"transaction_data"`
}

type transactionData struct {
	QRCode       string `json:"qr_code"`
	QRCodeBase64 string `json:"qr_code_base64"`
	TicketURL    string `json:"ticket_url"`
}

type transactionDetails struct {
	ExternalResourceURL string `json:"external_resource_url"`
}
