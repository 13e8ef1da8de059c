package cataloging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pdv-reports-api/infrastructure/repository"
	"github.com/vfg2006/pdv-reports-api/infrastructure/repository/mocks"
	"github.com/vfg2006/pdv-reports-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_CreateProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	service := NewService(mockProductRepo)

	t.Run("Produto válido", func(t *testing.T) {
		mockProductRepo.EXPECT().
			InsertProduct(gomock.Any(), domain.Product{Name: "café", Price: 500, ProductionCost: 120}).
			Return(nil)

		product, err := service.CreateProduct(context.Background(), domain.CreateProductRequest{Name: "café", Price: 500, ProductionCost: 120})
		require.NoError(t, err)
		assert.Equal(t, "café", product.Name)
	})

	t.Run("Nome vazio", func(t *testing.T) {
		_, err := service.CreateProduct(context.Background(), domain.CreateProductRequest{Price: 1})
		assert.ErrorIs(t, err, ErrEmptyProductName)
	})

	t.Run("Preço negativo", func(t *testing.T) {
		_, err := service.CreateProduct(context.Background(), domain.CreateProductRequest{Name: "x", Price: -1})
		assert.ErrorIs(t, err, ErrNegativeAmount)
	})

	t.Run("Nome duplicado", func(t *testing.T) {
		mockProductRepo.EXPECT().
			InsertProduct(gomock.Any(), gomock.Any()).
			Return(repository.ErrProductAlreadyExists)

		_, err := service.CreateProduct(context.Background(), domain.CreateProductRequest{Name: "product 1"})
		assert.ErrorIs(t, err, ErrProductAlreadyExists)
	})
}

func TestService_SeedProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	service := NewService(mockProductRepo)

	t.Run("Produtos já existentes são ignorados", func(t *testing.T) {
		catalog := DefaultCatalog()

		mockProductRepo.EXPECT().InsertProduct(gomock.Any(), catalog[0]).Return(repository.ErrProductAlreadyExists)
		mockProductRepo.EXPECT().InsertProduct(gomock.Any(), catalog[1]).Return(nil)

		assert.NoError(t, service.SeedProducts(context.Background(), catalog))
	})

	t.Run("Falha do banco interrompe o seed", func(t *testing.T) {
		mockProductRepo.EXPECT().InsertProduct(gomock.Any(), gomock.Any()).Return(errors.New("sem conexão"))

		err := service.SeedProducts(context.Background(), DefaultCatalog())
		assert.ErrorIs(t, err, ErrDatabaseOperation)
	})
}
