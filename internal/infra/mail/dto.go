package mail

type ReceiptItem struct {
	Name     string
	Quantity int
	Price    string
}

type ReceiptEmailData struct {
	Name          string
	OrderID       string
	PaymentMethod string
	Total         string
	Items         []ReceiptItem
	PixCode       string
	BoletoURL     string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
