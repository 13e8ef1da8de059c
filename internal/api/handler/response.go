package handler

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pdv-reports-api/internal/usecases/authenticating"
	"github.com/vfg2006/pdv-reports-api/internal/usecases/cataloging"
	"github.com/vfg2006/pdv-reports-api/internal/usecases/reporting"
	"github.com/vfg2006/pdv-reports-api/internal/usecases/selling"
	"github.com/vfg2006/pdv-reports-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodyBytes = 1 << 20

// decodeStrict decodifica um único objeto JSON. Rejeita campos desconhecidos,
// campos com null explícito e qualquer conteúdo após o objeto.
func decodeStrict(body io.Reader, v any) error {
	data, err := io.ReadAll(io.LimitReader(body, maxBodyBytes))
	if err != nil {
		return err
	}

	reader := bytes.NewReader(data)
	decoder := json.NewDecoder(reader)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return err
	}

	rest, err := io.ReadAll(io.MultiReader(decoder.Buffered(), reader))
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(rest)) > 0 {
		return fmt.Errorf("conteúdo inesperado após o objeto JSON")
	}

	var fields map[string]jsoniter.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for name, value := range fields {
		if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			return fmt.Errorf("campo %q não aceita null", name)
		}
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// errorCode extrai o código de API carregado pelos erros dos casos de uso
func errorCode(err error) (string, bool) {
	var (
		saleErr    *selling.SaleError
		reportErr  *reporting.ReportError
		catalogErr *cataloging.CatalogError
		authErr    *authenticating.AuthError
	)

	switch {
	case errors.As(err, &saleErr):
		return saleErr.Code, true
	case errors.As(err, &reportErr):
		return reportErr.Code, true
	case errors.As(err, &catalogErr):
		return catalogErr.Code, true
	case errors.As(err, &authErr):
		return authErr.Code, true
	}

	return "", false
}

// writeServiceError responde com o código do erro. Erros de servidor não expõem detalhes.
func writeServiceError(w http.ResponseWriter, err error, serverMessage string) {
	code, ok := errorCode(err)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, serverMessage, nil)
		return
	}

	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		apiErrors.WriteError(w, code, serverMessage, nil)
		return
	}

	apiErrors.WriteError(w, code, err.Error(), nil)
}
