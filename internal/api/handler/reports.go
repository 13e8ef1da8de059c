package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/pdv-reports-api/internal/usecases/reporting"
	"github.com/vfg2006/pdv-reports-api/pkg/log"
)

// GetDailyReport retorna o relatório de vendas da data informada na URL
func GetDailyReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := httprouter.ParamsFromContext(r.Context()).ByName("date")

		report, err := service.GetDailyReport(r.Context(), date)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("date", date).Warn("reports: erro ao gerar relatório")
			writeServiceError(w, err, "Erro ao criar o relatório")
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}
