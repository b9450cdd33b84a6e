package usecase

// Códigos de erro de domínio expostos nas respostas.
const (
	CodeValidation            = "VALIDATION_ERROR"
	CodeCheckoutNotFound      = "CHECKOUT_NOT_FOUND"
	CodeProductNotFound       = "PRODUCT_NOT_FOUND"
	CodeCouponNotFound        = "COUPON_NOT_FOUND"
	CodePaymentMethodNotFound = "PAYMENT_METHOD_NOT_FOUND"
	CodePaymentFailed         = "PAYMENT_FAILED"
	CodeDatabaseError         = "DATABASE_ERROR"
	CodeGatewayError          = "GATEWAY_ERROR"
)

// DomainError é um erro de regra de negócio, seguro de mostrar ao usuário.
// Fields carrega mensagens por campo quando o código é VALIDATION_ERROR.
type DomainError struct {
	Code    string
	Message string
	Fields  map[string]string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError é falha de infraestrutura; a mensagem não vaza detalhes.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}
