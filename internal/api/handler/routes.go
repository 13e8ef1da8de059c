package handler

import (
	"net/http"

	"github.com/vfg2006/pdv-reports-api/internal/api/handler/router"
	"github.com/vfg2006/pdv-reports-api/internal/usecases/authenticating"
	"github.com/vfg2006/pdv-reports-api/internal/usecases/cataloging"
	"github.com/vfg2006/pdv-reports-api/internal/usecases/reporting"
	"github.com/vfg2006/pdv-reports-api/internal/usecases/selling"
	"github.com/vfg2006/pdv-reports-api/pkg/middleware"
)

func operatorOnly(authenticator authenticating.Authenticator) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.Authenticate(authenticator),
		middleware.OperatorOnly(),
	}
}

func Healthcheck(database Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(database),
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/reports/:date",
			Method:  http.MethodGet,
			Handler: GetDailyReport(service),
		},
	}
}

func Sales(service selling.SaleService) []router.Route {
	return []router.Route{
		{
			Path:    "/sales",
			Method:  http.MethodPost,
			Handler: CreateSale(service),
		},
	}
}

func Products(service cataloging.CatalogService, authenticator authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/products",
			Method:  http.MethodGet,
			Handler: ListProducts(service),
		},
		{
			Path:        "/v1/products",
			Method:      http.MethodPost,
			Handler:     CreateProduct(service),
			Middlewares: operatorOnly(authenticator),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func CronJobs(closing ClosingRunner, authenticator authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/daily-closing/run",
			Method:      http.MethodPost,
			Handler:     RunDailyClosing(closing),
			Middlewares: operatorOnly(authenticator),
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(closing),
			Middlewares: operatorOnly(authenticator),
		},
	}
}

// StaticPages serve as páginas HTML de lançamento de venda e consulta de relatório
func StaticPages(dir string) []router.Route {
	return []router.Route{
		{
			Path:    "/create_sale",
			Method:  http.MethodGet,
			Handler: StaticPage(dir, "create_sale"),
		},
		{
			Path:    "/get_report",
			Method:  http.MethodGet,
			Handler: StaticPage(dir, "get_report"),
		},
	}
}
