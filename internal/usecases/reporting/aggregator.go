package reporting

import "github.com/vfg2006/pdv-reports-api/internal/domain"

// Aggregate consolida as vendas de um dia em um SalesReport.
// A data já deve ter sido validada. Uma lista vazia gera o relatório zerado.
func Aggregate(date string, lines []domain.SaleLine) domain.SalesReport {
	report := domain.SalesReport{
		Date:        date,
		Frequencies: make(map[string]int),
	}

	for _, line := range lines {
		report = fold(report, line)
	}

	// Totais derivados só depois de consolidar todas as linhas
	report.Total = report.TotalCash + report.TotalPix + report.TotalDebit
	report.Profit = report.Total - report.TotalCost

	return report
}

func fold(report domain.SalesReport, line domain.SaleLine) domain.SalesReport {
	quantity := int64(line.Quantity)
	revenue := line.ProductPrice * quantity
	cost := line.ProductCost * quantity

	switch line.PaymentMethod {
	case domain.PaymentMethodCash:
		report.TotalCash += revenue
	case domain.PaymentMethodPix:
		report.TotalPix += revenue
	case domain.PaymentMethodDebit:
		report.TotalDebit += revenue
	}

	// O custo independe da forma de pagamento
	report.TotalCost += cost

	// Conta transações, não unidades
	report.Frequencies[line.ProductName]++

	return report
}
