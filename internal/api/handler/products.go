package handler

import (
	"net/http"

	"github.com/vfg2006/pdv-reports-api/internal/domain"
	"github.com/vfg2006/pdv-reports-api/internal/usecases/cataloging"
	"github.com/vfg2006/pdv-reports-api/pkg/apiErrors"
	"github.com/vfg2006/pdv-reports-api/pkg/log"
)

func ListProducts(service cataloging.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := service.ListProducts(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("products: erro ao listar produtos")
			writeServiceError(w, err, "Erro ao listar produtos")
			return
		}

		writeJSON(w, http.StatusOK, products)
	}
}

func CreateProduct(service cataloging.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request domain.CreateProductRequest

		if err := decodeStrict(r.Body, &request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		product, err := service.CreateProduct(r.Context(), request)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("product", request.Name).Warn("products: produto não cadastrado")
			writeServiceError(w, err, "Erro ao cadastrar produto")
			return
		}

		writeJSON(w, http.StatusCreated, product)
	}
}
