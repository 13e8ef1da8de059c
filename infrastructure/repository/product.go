package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/pdv-reports-api/infrastructure/database/postgres"
	"github.com/vfg2006/pdv-reports-api/internal/domain"
)

const (
	productsTable = "products p"
)

type productRepository struct {
	conn postgres.Queryer
}

func NewProductRepository(conn postgres.Queryer) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) InsertProduct(ctx context.Context, product domain.Product) error {
	query, args, err := squirrel.
		Insert("products").
		Columns("name", "price", "production_cost").
		Values(product.Name, product.Price, product.ProductionCost).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		err = translatePqError(err)
		if errors.Is(err, ErrProductAlreadyExists) {
			return err
		}
		return fmt.Errorf("erro ao inserir produto: %w", err)
	}

	return nil
}

func (r *productRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query, args, err := squirrel.
		Select("p.name, p.price, p.production_cost").
		From(productsTable).
		OrderBy("p.name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(&product.Name, &product.Price, &product.ProductionCost); err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}
