// Package migration cria o schema usado pelo PDV
package migration

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pdv-reports-api/infrastructure/database/postgres"
)

var dropStatements = []string{
	`DROP TABLE IF EXISTS sales`,
	`DROP TABLE IF EXISTS products`,
}

var createStatements = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id              SERIAL PRIMARY KEY,
		name            VARCHAR(255) NOT NULL UNIQUE,
		price           BIGINT NOT NULL CHECK (price >= 0),
		production_cost BIGINT NOT NULL CHECK (production_cost >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id                   SERIAL PRIMARY KEY,
		date                 VARCHAR(10) NOT NULL,
		payment_method       VARCHAR(16) NOT NULL CHECK (payment_method IN ('Cash', 'Pix', 'Debit')),
		quantity             INTEGER NOT NULL CHECK (quantity >= 1),
		related_product_name VARCHAR(255) NOT NULL REFERENCES products (name)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_date ON sales (date)`,
}

// Migrate cria as tabelas de produtos e vendas. Com dropTablesOnStart as tabelas
// são removidas antes, apagando todos os dados.
func Migrate(ctx context.Context, conn postgres.Queryer, dropTablesOnStart bool) error {
	statements := createStatements
	if dropTablesOnStart {
		logrus.Warn("DATABASE_DROP_TABLES_ON_START ativo, removendo tabelas existentes")
		statements = append(append([]string{}, dropStatements...), createStatements...)
	}

	for _, statement := range statements {
		if _, err := conn.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("erro ao executar migração: %w", err)
		}
	}

	logrus.WithField("statements", len(statements)).Info("Migração do banco concluída")
	return nil
}
