package selling

import (
	"errors"
	"fmt"
)

// Erros específicos para o registro de vendas
var (
	// Erros de validação
	ErrInvalidDate          = errors.New("data em formato inválido")
	ErrInvalidPaymentMethod = errors.New("método de pagamento inválido")
	ErrInvalidQuantity      = errors.New("quantidade inválida")
	ErrEmptyProductName     = errors.New("nome do produto vazio")

	// Erros de banco de dados
	ErrProductNotFound = errors.New("produto não encontrado")
	ErrPersistSale     = errors.New("erro ao inserir venda no banco de dados")
)

// SaleError é um erro com contexto adicional para vendas
type SaleError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *SaleError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SaleError) Unwrap() error {
	return e.Err
}

func NewSaleError(err error, code string, details string) *SaleError {
	return &SaleError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// IsValidationError indica falhas detectadas antes de qualquer escrita no banco
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrInvalidPaymentMethod) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrEmptyProductName)
}
