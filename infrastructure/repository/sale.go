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
	salesTable = "sales s"
)

type saleRepository struct {
	conn postgres.Queryer
}

func NewSaleRepository(conn postgres.Queryer) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func (r *saleRepository) InsertSale(ctx context.Context, sale domain.Sale) (int64, error) {
	query, args, err := squirrel.
		Insert("sales").
		Columns("date", "payment_method", "quantity", "related_product_name").
		Values(sale.Date, string(sale.PaymentMethod), sale.Quantity, sale.RelatedProductName).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var id int64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		err = translatePqError(err)
		if errors.Is(err, ErrProductNotFound) {
			return 0, err
		}
		return 0, fmt.Errorf("erro ao inserir venda: %w", err)
	}

	return id, nil
}

func (r *saleRepository) FindSalesJoinedByDate(ctx context.Context, date string) ([]domain.SaleLine, error) {
	query, args, err := squirrel.
		Select("s.quantity, s.payment_method, p.price, p.production_cost, s.related_product_name").
		From(salesTable).
		Join("products p ON p.name = s.related_product_name").
		Where(squirrel.Eq{"s.date": date}).
		OrderBy("s.id ASC").
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

	lines := make([]domain.SaleLine, 0)
	for rows.Next() {
		var (
			line   domain.SaleLine
			method string
		)

		if err := rows.Scan(&line.Quantity, &method, &line.ProductPrice, &line.ProductCost, &line.ProductName); err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}

		line.PaymentMethod, err = domain.ParsePaymentMethod(method)
		if err != nil {
			return nil, err
		}

		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return lines, nil
}
