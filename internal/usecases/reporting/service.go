package reporting

import (
	"context"

	"github.com/vfg2006/pdv-reports-api/infrastructure/repository"
	"github.com/vfg2006/pdv-reports-api/internal/domain"
	"github.com/vfg2006/pdv-reports-api/pkg/apiErrors"
	"github.com/vfg2006/pdv-reports-api/pkg/log"
)

type Reporter interface {
	// GetDailyReport gera o relatório de vendas da data (dd-MM-yyyy)
	GetDailyReport(ctx context.Context, date string) (*domain.SalesReport, error)
}

type Service struct {
	saleRepository repository.SaleRepository
}

func NewService(saleRepository repository.SaleRepository) Reporter {
	return &Service{
		saleRepository: saleRepository,
	}
}

func (s *Service) GetDailyReport(ctx context.Context, date string) (*domain.SalesReport, error) {
	if !domain.IsValidDate(date) {
		return nil, NewReportError(ErrInvalidDate, apiErrors.ErrInvalidFormat, date, "use o formato dd-mm-yyyy")
	}

	lines, err := s.saleRepository.FindSalesJoinedByDate(ctx, date)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("date", date).Error("reporting: erro ao buscar vendas do dia")
		return nil, NewReportError(ErrFetchSales, apiErrors.ErrDatabaseOperation, date, err.Error())
	}

	report := Aggregate(date, lines)

	log.ForContext(ctx).WithFields(log.Fields{
		"date":  date,
		"sales": len(lines),
		"total": report.Total,
	}).Debug("reporting: relatório gerado")

	return &report, nil
}
