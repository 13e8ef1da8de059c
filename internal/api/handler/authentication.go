package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pdv-reports-api/internal/usecases/authenticating"
	"github.com/vfg2006/pdv-reports-api/pkg/apiErrors"
)

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.Login(req.Password)
		if err != nil {
			logrus.WithError(err).Warn("Tentativa de login de operador falhou")
			writeServiceError(w, err, "Erro ao gerar token de autenticação")
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{Token: token})
	}
}
