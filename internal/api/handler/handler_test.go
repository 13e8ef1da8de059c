package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pdv-reports-api/infrastructure/repository"
	"github.com/vfg2006/pdv-reports-api/infrastructure/repository/mocks"
	"github.com/vfg2006/pdv-reports-api/internal/domain"
	"github.com/vfg2006/pdv-reports-api/internal/usecases/cataloging"
	"github.com/vfg2006/pdv-reports-api/internal/usecases/reporting"
	"github.com/vfg2006/pdv-reports-api/internal/usecases/selling"
	"github.com/vfg2006/pdv-reports-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func withDateParam(req *http.Request, date string) *http.Request {
	params := httprouter.Params{{Key: "date", Value: date}}
	return req.WithContext(context.WithValue(req.Context(), httprouter.ParamsKey, params))
}

func TestGetDailyReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	handler := GetDailyReport(reporting.NewService(mockSaleRepo))

	t.Run("Relatório do dia", func(t *testing.T) {
		mockSaleRepo.EXPECT().
			FindSalesJoinedByDate(gomock.Any(), "20-06-2024").
			Return([]domain.SaleLine{
				{Quantity: 2, PaymentMethod: domain.PaymentMethodDebit, ProductPrice: 3000, ProductCost: 1000, ProductName: "product 2"},
			}, nil)

		req := withDateParam(httptest.NewRequest(http.MethodGet, "/reports/20-06-2024", nil), "20-06-2024")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var report domain.SalesReport
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
		assert.Equal(t, int64(6000), report.TotalDebit)
		assert.Equal(t, int64(6000), report.Total)
		assert.Equal(t, int64(2000), report.TotalCost)
		assert.Equal(t, int64(4000), report.Profit)
		assert.Equal(t, map[string]int{"product 2": 1}, report.Frequencies)
	})

	t.Run("Data inválida retorna 400", func(t *testing.T) {
		req := withDateParam(httptest.NewRequest(http.MethodGet, "/reports/2024-06-20", nil), "2024-06-20")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
	})

	t.Run("Falha no banco retorna 500 sem relatório", func(t *testing.T) {
		mockSaleRepo.EXPECT().
			FindSalesJoinedByDate(gomock.Any(), "21-06-2024").
			Return(nil, errors.New("connection refused"))

		req := withDateParam(httptest.NewRequest(http.MethodGet, "/reports/21-06-2024", nil), "21-06-2024")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		apiErr := decodeAPIError(t, rec)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, apiErr.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")
		assert.NotContains(t, rec.Body.String(), "totalCash")
	})
}

func TestCreateSale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	handler := CreateSale(selling.NewService(mockSaleRepo))

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/sales", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("Aplica os valores padrão e retorna o ID", func(t *testing.T) {
		mockSaleRepo.EXPECT().
			InsertSale(gomock.Any(), domain.Sale{
				Date:               "20-06-2024",
				PaymentMethod:      domain.PaymentMethodCash,
				Quantity:           1,
				RelatedProductName: "product 1",
			}).
			Return(int64(7), nil)

		rec := post(`{"date":"20-06-2024","relatedProductName":"product 1"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "7", strings.TrimSpace(rec.Body.String()))
	})

	t.Run("Payload com erro de serialização", func(t *testing.T) {
		bodies := []string{
			`{"date":"20-06-2024"`,
			`{"date":"20-06-2024","relatedProductName":"product 1","discount":10}`,
			`{"date":"20-06-2024","relatedProductName":"product 1","quantity":"dois"}`,
			`{"date":"20-06-2024","relatedProductName":"product 1","paymentMethod":"Credit"}`,
			`{"date":"20-06-2024","relatedProductName":"product 1"} garbage`,
			`{"date":"20-06-2024","relatedProductName":"product 1"}}`,
			`{"date":"20-06-2024","relatedProductName":"product 1"}{"date":"21-06-2024","relatedProductName":"product 1"}`,
			`{"date":"20-06-2024","relatedProductName":"product 1","quantity":null}`,
			`{"date":"20-06-2024","relatedProductName":"product 1","paymentMethod":null}`,
			`{"date":null,"relatedProductName":"product 1"}`,
		}

		for _, body := range bodies {
			rec := post(body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, body)
			assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, rec).Code, body)
		}
	})

	t.Run("Espaços após o objeto são aceitos", func(t *testing.T) {
		mockSaleRepo.EXPECT().InsertSale(gomock.Any(), gomock.Any()).Return(int64(8), nil)

		rec := post("{\"date\":\"20-06-2024\",\"relatedProductName\":\"product 1\"}\n  ")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Quantidade acima do limite do banco", func(t *testing.T) {
		rec := post(`{"date":"20-06-2024","relatedProductName":"product 1","quantity":3000000000}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
	})

	t.Run("Quantidade zero é rejeitada antes do banco", func(t *testing.T) {
		rec := post(`{"date":"20-06-2024","relatedProductName":"product 1","quantity":0}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Data inválida", func(t *testing.T) {
		rec := post(`{"date":"20/06/2024","relatedProductName":"product 1"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
	})

	t.Run("Produto inexistente retorna 500", func(t *testing.T) {
		mockSaleRepo.EXPECT().
			InsertSale(gomock.Any(), gomock.Any()).
			Return(int64(0), repository.ErrProductNotFound)

		rec := post(`{"date":"20-06-2024","relatedProductName":"product 9","paymentMethod":"Pix","quantity":2}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, decodeAPIError(t, rec).Code)
	})
}

func TestProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	service := cataloging.NewService(mockProductRepo)

	t.Run("Lista os produtos", func(t *testing.T) {
		mockProductRepo.EXPECT().ListProducts(gomock.Any()).Return(cataloging.DefaultCatalog(), nil)

		rec := httptest.NewRecorder()
		ListProducts(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/products", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var products []domain.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
		assert.Len(t, products, 2)
	})

	t.Run("Produto duplicado retorna 409", func(t *testing.T) {
		mockProductRepo.EXPECT().InsertProduct(gomock.Any(), gomock.Any()).Return(repository.ErrProductAlreadyExists)

		body := `{"name":"product 1","price":2000,"productionCost":1500}`
		rec := httptest.NewRecorder()
		CreateProduct(service).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/products", strings.NewReader(body)))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apiErrors.ErrResourceConflict, decodeAPIError(t, rec).Code)
	})

	t.Run("Produto com conteúdo após o objeto", func(t *testing.T) {
		body := `{"name":"product 3","price":500,"productionCost":100} lixo`
		rec := httptest.NewRecorder()
		CreateProduct(service).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/products", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, rec).Code)
	})

	t.Run("Cadastra produto", func(t *testing.T) {
		mockProductRepo.EXPECT().InsertProduct(gomock.Any(), domain.Product{Name: "product 3", Price: 500, ProductionCost: 100}).Return(nil)

		body := `{"name":"product 3","price":500,"productionCost":100}`
		rec := httptest.NewRecorder()
		CreateProduct(service).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/products", strings.NewReader(body)))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

type fakeClosing struct {
	triggered int
}

func (f *fakeClosing) TriggerManualSync() { f.triggered++ }

func (f *fakeClosing) GetStatus() map[string]any {
	return map[string]any{"running": false}
}

func TestCronHandlers(t *testing.T) {
	closing := &fakeClosing{}

	rec := httptest.NewRecorder()
	RunDailyClosing(closing).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/daily-closing/run", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, closing.triggered)

	rec = httptest.NewRecorder()
	GetCronStatus(closing).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "daily-closing")
}

func TestStaticPage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "get_report.html"), []byte("<html>relatório</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "get_report.html.gz"), []byte("gz"), 0o644))

	handler := StaticPage(dir, "get_report")

	t.Run("Sem gzip", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/get_report", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "relatório")
		assert.Empty(t, rec.Header().Get("Content-Encoding"))
	})

	t.Run("Com gzip serve o arquivo comprimido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/get_report", nil)
		req.Header.Set("Accept-Encoding", "gzip, deflate")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
		assert.Equal(t, "gz", rec.Body.String())
	})

	t.Run("gzip com peso zero recebe o HTML", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/get_report", nil)
		req.Header.Set("Accept-Encoding", "gzip;q=0, identity")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("Content-Encoding"))
		assert.Contains(t, rec.Body.String(), "relatório")
	})

	t.Run("Página inexistente", func(t *testing.T) {
		rec := httptest.NewRecorder()
		StaticPage(dir, "create_sale").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/create_sale", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(context.Context) error { return f.err }

func TestHealthcheckHandler(t *testing.T) {
	cases := []struct {
		name     string
		database Pinger
		status   int
		body     string
	}{
		{name: "Memória", database: nil, status: http.StatusOK, body: `"database":"memory"`},
		{name: "Banco disponível", database: fakePinger{}, status: http.StatusOK, body: `"database":"ok"`},
		{name: "Banco fora do ar", database: fakePinger{err: errors.New("timeout")}, status: http.StatusServiceUnavailable, body: `"database":"down"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HealthcheckHandler(tc.database).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

			assert.Equal(t, tc.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.body)
		})
	}
}

func TestAcceptsGzip(t *testing.T) {
	tests := []struct {
		header   string
		expected bool
	}{
		{header: "", expected: false},
		{header: "gzip", expected: true},
		{header: "gzip, deflate, br", expected: true},
		{header: "deflate, gzip;q=0.5", expected: true},
		{header: "gzip;q=0", expected: false},
		{header: "gzip; q=0.0", expected: false},
		{header: "*", expected: true},
		{header: "*;q=0", expected: false},
		{header: "*, gzip;q=0", expected: false},
		{header: "br, identity", expected: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, acceptsGzip([]string{tt.header}), tt.header)
	}
}
