package pagseguro

// Formato da API de cobranças do PagSeguro (POST /orders).

type orderRequest struct {
	ReferenceID string   `json:"reference_id"`
	Customer    customer `json:"customer"`
	Items       []item   `json:"items"`
	QRCodes     []qrCode `json:"qr_codes,omitempty"`
	Charges     []charge `json:"charges,omitempty"`
}

type customer struct {
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	TaxID  string  `json:"tax_id"`
	Phones []phone `json:"phones,omitempty"`
}

type phone struct {
	Country string `json:"country"`
	Area    string `json:"area"`
	Number  string `json:"number"`
	Type    string `json:"type"`
}

type item struct {
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitAmount int64  `json:"unit_amount"`
}

type qrCode struct {
	Amount amount `json:"amount"`
}

type amount struct {
	Value int64 `json:"value"`
}

type charge struct {
	ReferenceID   string        `json:"reference_id"`
	Description   string        `json:"description"`
	Amount        amount        `json:"amount"`
	PaymentMethod paymentMethod `json:"payment_method"`
}

type paymentMethod struct {
	Type         string `json:"type"`
	Installments int    `json:"installments,omitempty"`
	Capture      bool   `json:"capture,omitempty"`
	Card         *card  `json:"card,omitempty"`
}

type card struct {
	Number       string `json:"number"`
	ExpMonth     string `json:"exp_month"`
	ExpYear      string `json:"exp_year"`
	SecurityCode string `json:"security_code"`
	Holder       holder `json:"holder"`
}

type holder struct {
	Name  string `json:"name"`
	TaxID string `json:"tax_id"`
}

type orderResponse struct {
	ID      string           `json:"id"`
	QRCodes []qrCodeResponse `json:"qr_codes,omitempty"`
	Charges []chargeResponse `json:"charges,omitempty"`
}

type qrCodeResponse struct {
	Text  string `json:"text"`
	Links []link `json:"links"`
}

type link struct {
	Rel   string `json:"rel"`
	Href  string `json:"href"`
	Media string `json:"media"`
}

type chargeResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Links  []link `json:"links"`
}
