package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Pinger é implementado pela conexão com o banco
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthcheckResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Time     string `json:"time"`
}

// HealthcheckHandler responde 503 quando o banco não responde ao ping.
// Sem Pinger (armazenamento em memória) o banco é reportado como "memory".
func HealthcheckHandler(database Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := HealthcheckResponse{
			Status:   "ok",
			Database: "memory",
			Time:     time.Now().Format(time.RFC3339),
		}
		status := http.StatusOK

		if database != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			response.Database = "ok"
			if err := database.Ping(ctx); err != nil {
				logrus.WithError(err).Warn("healthcheck: banco de dados indisponível")
				response.Status = "degraded"
				response.Database = "down"
				status = http.StatusServiceUnavailable
			}
		}

		writeJSON(w, status, response)
	})
}
