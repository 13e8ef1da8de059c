package main

import (
	"context"
	"database/sql"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pdv-reports-api/infrastructure/database/postgres"
	"github.com/vfg2006/pdv-reports-api/infrastructure/migration"
	"github.com/vfg2006/pdv-reports-api/infrastructure/repository"
	"github.com/vfg2006/pdv-reports-api/infrastructure/repository/memory"
	"github.com/vfg2006/pdv-reports-api/internal/api"
	"github.com/vfg2006/pdv-reports-api/internal/api/handler"
	"github.com/vfg2006/pdv-reports-api/internal/config"
	"github.com/vfg2006/pdv-reports-api/internal/scheduler"
	"github.com/vfg2006/pdv-reports-api/internal/usecases/authenticating"
	"github.com/vfg2006/pdv-reports-api/internal/usecases/cataloging"
	"github.com/vfg2006/pdv-reports-api/internal/usecases/reporting"
	"github.com/vfg2006/pdv-reports-api/internal/usecases/selling"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		productRepo repository.ProductRepository
		saleRepo    repository.SaleRepository
		database    handler.Pinger
	)

	switch cfg.Database.Driver {
	case config.DriverMemory:
		logrus.Warn("Usando armazenamento em memória, os dados serão perdidos ao reiniciar")
		store := memory.New()
		productRepo = store
		saleRepo = store
	default:
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		err := pgConn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			return migration.Migrate(ctx, tx, cfg.Database.DropTablesOnStart)
		})
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao migrar o banco de dados")
		}

		productRepo = repository.NewProductRepository(pgConn)
		saleRepo = repository.NewSaleRepository(pgConn)
		database = pgConn
	}

	catalogService := cataloging.NewService(productRepo)
	if cfg.App.SeedCatalog {
		if err := catalogService.SeedProducts(ctx, cataloging.DefaultCatalog()); err != nil {
			logrus.WithError(err).Error("Erro ao cadastrar o catálogo inicial")
		}
	}

	reportService := reporting.NewService(saleRepo)
	saleService := selling.NewService(saleRepo)
	authenticator := authenticating.NewService(cfg)

	dailyClosingService := scheduler.NewDailyClosingService(reportService, cfg)
	if err := dailyClosingService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de fechamento de caixa")
	} else {
		logrus.Info("Agendador de fechamento de caixa iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Reporter:      reportService,
		Sales:         saleService,
		Catalog:       catalogService,
		Authenticator: authenticator,
		DailyClosing:  dailyClosingService,
		Database:      database,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
