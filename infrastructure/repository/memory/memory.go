// Package memory implementa os repositórios em memória, para desenvolvimento local e testes
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/vfg2006/pdv-reports-api/infrastructure/repository"
	"github.com/vfg2006/pdv-reports-api/internal/domain"
)

type Store struct {
	mu       sync.RWMutex
	products map[string]domain.Product
	sales    []domain.Sale
	nextID   int64
}

var (
	_ repository.ProductRepository = (*Store)(nil)
	_ repository.SaleRepository    = (*Store)(nil)
)

func New() *Store {
	return &Store{
		products: make(map[string]domain.Product),
		nextID:   1,
	}
}

func (s *Store) InsertProduct(_ context.Context, product domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[product.Name]; exists {
		return repository.ErrProductAlreadyExists
	}

	s.products[product.Name] = product
	return nil
}

func (s *Store) ListProducts(_ context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]domain.Product, 0, len(s.products))
	for _, product := range s.products {
		products = append(products, product)
	}

	sort.Slice(products, func(i, j int) bool {
		return products[i].Name < products[j].Name
	})

	return products, nil
}

func (s *Store) InsertSale(_ context.Context, sale domain.Sale) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[sale.RelatedProductName]; !exists {
		return 0, repository.ErrProductNotFound
	}

	sale.ID = s.nextID
	s.nextID++
	s.sales = append(s.sales, sale)

	return sale.ID, nil
}

func (s *Store) FindSalesJoinedByDate(_ context.Context, date string) ([]domain.SaleLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := make([]domain.SaleLine, 0)
	for _, sale := range s.sales {
		if sale.Date != date {
			continue
		}

		product := s.products[sale.RelatedProductName]
		lines = append(lines, domain.SaleLine{
			Quantity:      sale.Quantity,
			PaymentMethod: sale.PaymentMethod,
			ProductPrice:  product.Price,
			ProductCost:   product.ProductionCost,
			ProductName:   product.Name,
		})
	}

	return lines, nil
}
