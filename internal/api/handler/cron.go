package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pdv-reports-api/pkg/apiErrors"
)

// ClosingRunner é a parte do agendador de fechamento exposta por HTTP
type ClosingRunner interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// RunDailyClosing dispara manualmente o fechamento de caixa
func RunDailyClosing(closing ClosingRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunDailyClosing")

		if closing == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de fechamento de caixa não disponível", nil)
			return
		}

		closing.TriggerManualSync()

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Fechamento de caixa iniciado com sucesso",
			"type":    "daily-closing",
		})
	}
}

// GetCronStatus retorna o status do agendador de fechamento
func GetCronStatus(closing ClosingRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if closing == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de fechamento de caixa não disponível", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"daily-closing": closing.GetStatus(),
		})
	}
}
