package handler

import (
	"net/http"

	"github.com/vfg2006/pdv-reports-api/internal/domain"
	"github.com/vfg2006/pdv-reports-api/internal/usecases/selling"
	"github.com/vfg2006/pdv-reports-api/pkg/apiErrors"
	"github.com/vfg2006/pdv-reports-api/pkg/log"
)

// CreateSale registra uma venda e responde com o ID atribuído
func CreateSale(service selling.SaleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		request := domain.NewSaleRequest()

		if err := decodeStrict(r.Body, &request); err != nil {
			logger.WithError(err).Warn("sales: payload inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro de serialização", nil)
			return
		}

		id, err := service.CreateSale(r.Context(), request)
		if err != nil {
			if selling.IsValidationError(err) {
				logger.WithError(err).Warn("sales: venda rejeitada na validação")
			}
			writeServiceError(w, err, "Erro ao inserir venda no banco de dados")
			return
		}

		writeJSON(w, http.StatusOK, id)
	}
}
