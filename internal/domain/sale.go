package domain

import (
	"fmt"
	"regexp"
)

// DateLayout é o formato dd-MM-yyyy usado nas vendas e relatórios
const DateLayout = "02-01-2006"

var dateRegex = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)

// IsValidDate verifica apenas o formato da data, não se ela existe no calendário
func IsValidDate(date string) bool {
	return dateRegex.MatchString(date)
}

type PaymentMethod string

const (
	PaymentMethodCash  PaymentMethod = "Cash"
	PaymentMethodPix   PaymentMethod = "Pix"
	PaymentMethodDebit PaymentMethod = "Debit"
)

func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentMethodCash, PaymentMethodPix, PaymentMethodDebit:
		return true
	}
	return false
}

// ParsePaymentMethod converte o valor recebido (API ou banco) no enum
func ParsePaymentMethod(value string) (PaymentMethod, error) {
	method := PaymentMethod(value)
	if !method.IsValid() {
		return "", fmt.Errorf("método de pagamento desconhecido: %q", value)
	}
	return method, nil
}

// UnmarshalText rejeita métodos fora do enum já na decodificação do JSON
func (p *PaymentMethod) UnmarshalText(text []byte) error {
	method, err := ParsePaymentMethod(string(text))
	if err != nil {
		return err
	}
	*p = method
	return nil
}

type Sale struct {
	ID                 int64         `json:"id"`
	Date               string        `json:"date"`
	PaymentMethod      PaymentMethod `json:"paymentMethod"`
	Quantity           int           `json:"quantity"`
	RelatedProductName string        `json:"relatedProductName"`
}

// SaleRequest é o payload de criação de venda.
// Use NewSaleRequest antes de decodificar para aplicar os valores padrão.
type SaleRequest struct {
	Date               string        `json:"date"`
	PaymentMethod      PaymentMethod `json:"paymentMethod"`
	Quantity           int           `json:"quantity"`
	RelatedProductName string        `json:"relatedProductName"`
}

func NewSaleRequest() SaleRequest {
	return SaleRequest{
		PaymentMethod: PaymentMethodCash,
		Quantity:      1,
	}
}

// SaleLine é uma venda do dia já unida ao produto referenciado
type SaleLine struct {
	Quantity      int
	PaymentMethod PaymentMethod
	ProductPrice  int64
	ProductCost   int64
	ProductName   string
}
