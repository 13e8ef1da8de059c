package cataloging

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyProductName     = errors.New("nome do produto vazio")
	ErrNegativeAmount       = errors.New("preço e custo não podem ser negativos")
	ErrProductAlreadyExists = errors.New("produto já cadastrado")
	ErrDatabaseOperation    = errors.New("erro ao realizar operação no banco de dados")
)

// CatalogError é um erro com contexto adicional para o catálogo
type CatalogError struct {
	Err     error
	Code    string
	Details string
}

func (e *CatalogError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

func NewCatalogError(err error, code string, details string) *CatalogError {
	return &CatalogError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
