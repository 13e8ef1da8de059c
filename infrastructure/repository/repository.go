// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"github.com/vfg2006/pdv-reports-api/internal/domain"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

var (
	ErrProductNotFound      = errors.New("produto referenciado não existe")
	ErrProductAlreadyExists = errors.New("produto já cadastrado")
)

// Códigos de erro do PostgreSQL usados na tradução
const (
	pqForeignKeyViolation = "23503"
	pqUniqueViolation     = "23505"
)

type ProductRepository interface {
	InsertProduct(ctx context.Context, product domain.Product) error
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

type SaleRepository interface {
	// InsertSale persiste a venda e retorna o ID atribuído.
	// Retorna ErrProductNotFound quando o produto referenciado não existe.
	InsertSale(ctx context.Context, sale domain.Sale) (int64, error)
	// FindSalesJoinedByDate retorna as vendas da data já unidas aos seus produtos
	FindSalesJoinedByDate(ctx context.Context, date string) ([]domain.SaleLine, error)
}

// translatePqError converte violações de constraint nos erros do repositório
func translatePqError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case pqForeignKeyViolation:
		return ErrProductNotFound
	case pqUniqueViolation:
		return ErrProductAlreadyExists
	}

	return err
}
