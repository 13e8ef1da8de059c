package cataloging

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pdv-reports-api/infrastructure/repository"
	"github.com/vfg2006/pdv-reports-api/internal/domain"
	"github.com/vfg2006/pdv-reports-api/pkg/apiErrors"
)

type CatalogService interface {
	CreateProduct(ctx context.Context, request domain.CreateProductRequest) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	// SeedProducts insere os produtos ignorando os que já existem
	SeedProducts(ctx context.Context, products []domain.Product) error
}

type Service struct {
	productRepository repository.ProductRepository
}

func NewService(productRepository repository.ProductRepository) CatalogService {
	return &Service{
		productRepository: productRepository,
	}
}

// DefaultCatalog são os produtos de exemplo cadastrados na inicialização
func DefaultCatalog() []domain.Product {
	return []domain.Product{
		{Name: "product 1", Price: 20 * domain.OneReal, ProductionCost: 15 * domain.OneReal},
		{Name: "product 2", Price: 30 * domain.OneReal, ProductionCost: 10 * domain.OneReal},
	}
}

func (s *Service) CreateProduct(ctx context.Context, request domain.CreateProductRequest) (*domain.Product, error) {
	if request.Name == "" {
		return nil, NewCatalogError(ErrEmptyProductName, apiErrors.ErrMissingRequiredData, "")
	}

	if request.Price < 0 || request.ProductionCost < 0 {
		return nil, NewCatalogError(ErrNegativeAmount, apiErrors.ErrInvalidFormat, "")
	}

	product := domain.Product{
		Name:           request.Name,
		Price:          request.Price,
		ProductionCost: request.ProductionCost,
	}

	if err := s.productRepository.InsertProduct(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductAlreadyExists) {
			return nil, NewCatalogError(ErrProductAlreadyExists, apiErrors.ErrResourceConflict, request.Name)
		}
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return &product, nil
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepository.ListProducts(ctx)
	if err != nil {
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return products, nil
}

func (s *Service) SeedProducts(ctx context.Context, products []domain.Product) error {
	inserted := 0
	for _, product := range products {
		err := s.productRepository.InsertProduct(ctx, product)
		if errors.Is(err, repository.ErrProductAlreadyExists) {
			continue
		}
		if err != nil {
			return NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
		}
		inserted++
	}

	logrus.WithFields(logrus.Fields{
		"inserted": inserted,
		"total":    len(products),
	}).Info("Catálogo inicial carregado")

	return nil
}
