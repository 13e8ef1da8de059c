package reporting

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDate = errors.New("data em formato inválido")
	ErrFetchSales  = errors.New("erro ao buscar vendas no banco de dados")
)

// ReportError é um erro com contexto adicional para relatórios
type ReportError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Date    string // Data do relatório solicitado
	Details string // Detalhes adicionais
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func NewReportError(err error, code string, date string, details string) *ReportError {
	return &ReportError{
		Err:     err,
		Code:    code,
		Date:    date,
		Details: details,
	}
}
