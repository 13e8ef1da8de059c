package selling

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/vfg2006/pdv-reports-api/infrastructure/repository"
	"github.com/vfg2006/pdv-reports-api/internal/domain"
	"github.com/vfg2006/pdv-reports-api/pkg/apiErrors"
	"github.com/vfg2006/pdv-reports-api/pkg/log"
)

type SaleService interface {
	// CreateSale valida e persiste a venda, retornando o ID atribuído
	CreateSale(ctx context.Context, request domain.SaleRequest) (int64, error)
}

type Service struct {
	saleRepository repository.SaleRepository
}

func NewService(saleRepository repository.SaleRepository) SaleService {
	return &Service{
		saleRepository: saleRepository,
	}
}

// Validate aplica as regras de formato e de domínio da venda
func Validate(request domain.SaleRequest) error {
	if !domain.IsValidDate(request.Date) {
		return NewSaleError(ErrInvalidDate, apiErrors.ErrInvalidFormat, fmt.Sprintf("[%s]", request.Date))
	}

	if !request.PaymentMethod.IsValid() {
		return NewSaleError(ErrInvalidPaymentMethod, apiErrors.ErrInvalidFormat, fmt.Sprintf("[%s]", request.PaymentMethod))
	}

	// A coluna quantity é INTEGER no Postgres
	if request.Quantity < 1 || request.Quantity > math.MaxInt32 {
		return NewSaleError(ErrInvalidQuantity, apiErrors.ErrInvalidFormat, fmt.Sprintf("[%d]", request.Quantity))
	}

	if request.RelatedProductName == "" {
		return NewSaleError(ErrEmptyProductName, apiErrors.ErrMissingRequiredData, "")
	}

	return nil
}

func (s *Service) CreateSale(ctx context.Context, request domain.SaleRequest) (int64, error) {
	if err := Validate(request); err != nil {
		return 0, err
	}

	id, err := s.saleRepository.InsertSale(ctx, domain.Sale{
		Date:               request.Date,
		PaymentMethod:      request.PaymentMethod,
		Quantity:           request.Quantity,
		RelatedProductName: request.RelatedProductName,
	})
	if err != nil {
		logger := log.ForContext(ctx).WithError(err).WithField("product", request.RelatedProductName)

		if errors.Is(err, repository.ErrProductNotFound) {
			logger.Warn("selling: venda referencia produto inexistente")
			return 0, NewSaleError(ErrProductNotFound, apiErrors.ErrDatabaseOperation, request.RelatedProductName)
		}

		logger.Error("selling: erro ao persistir venda")
		return 0, NewSaleError(ErrPersistSale, apiErrors.ErrDatabaseOperation, err.Error())
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"sale_id": id,
		"date":    request.Date,
	}).Info("selling: venda registrada")

	return id, nil
}
