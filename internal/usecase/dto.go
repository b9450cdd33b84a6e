package usecase

// CustomerInput são os dados do comprador como chegam do formulário,
// possivelmente ainda mascarados.
type CustomerInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	CPF   string `json:"cpf"`
	DDI   string `json:"ddi"`
	Phone string `json:"phone"`
}

// CardInput são os dados do cartão; só importam quando o método de
// pagamento é credit_card. Expiry vem no formato MM/AA.
type CardInput struct {
	Number       string `json:"number"`
	HolderName   string `json:"holder_name"`
	Expiry       string `json:"expiry"`
	CVC          string `json:"cvc"`
	Installments string `json:"installments"`
}

// QuoteInput é a seleção corrente enviada pelo front para cotação.
type QuoteInput struct {
	ProductID     int64         `json:"product_id"`
	Quantity      int           `json:"quantity"`
	Bumps         map[int64]int `json:"bumps"`
	CouponCode    string        `json:"coupon"`
	PaymentMethod string        `json:"payment_method"`
}

// InstallmentOption é uma opção de parcelamento exibida para cartão.
type InstallmentOption struct {
	Count int    `json:"count"`
	Value string `json:"value"`
}

// QuoteOutput devolve os totais recalculados do lado do servidor.
type QuoteOutput struct {
	ProductID    int64               `json:"product_id"`
	Quantity     int                 `json:"quantity"`
	UnitPrice    string              `json:"unit_price"`
	Subtotal     string              `json:"subtotal"`
	Discount     string              `json:"discount"`
	Total        string              `json:"total"`
	Installments []InstallmentOption `json:"installments,omitempty"`
}

// PlaceOrderInput é a submissão completa do checkout.
type PlaceOrderInput struct {
	Customer      CustomerInput `json:"customer"`
	ProductID     int64         `json:"product_id"`
	Quantity      int           `json:"quantity"`
	Bumps         map[int64]int `json:"bumps"`
	CouponCode    string        `json:"coupon"`
	PaymentMethod string        `json:"payment_method"`
	Card          CardInput     `json:"card"`
}

// PlaceOrderOutput muda de forma conforme o método: PIX devolve código e QR,
// boleto devolve a URL, cartão devolve redirect ou aprovação inline.
type PlaceOrderOutput struct {
	OrderID      string `json:"order_id"`
	Status       string `json:"status"`
	Msg          string `json:"msg"`
	PixCode      string `json:"pix_code,omitempty"`
	PixQRCodeURL string `json:"pix_qr_code_url,omitempty"`
	BoletoURL    string `json:"boleto_url,omitempty"`
	RedirectURL  string `json:"redirect_url,omitempty"`
}
