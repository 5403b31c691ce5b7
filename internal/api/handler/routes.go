package handler

import (
	"net/http"

	"github.com/agrovale/vendas-dashboard-api/internal/api/handler/router"
	"github.com/agrovale/vendas-dashboard-api/internal/usecases/syncing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service syncing.Coordinator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
	}
}

func Sales(service syncing.Coordinator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales",
			Method:  http.MethodGet,
			Handler: ListSales(service),
		},
		{
			Path:    "/v1/sales",
			Method:  http.MethodPost,
			Handler: SaveSale(service),
		},
	}
}

func Clients(service syncing.Coordinator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/clients",
			Method:  http.MethodGet,
			Handler: ListClients(service),
		},
	}
}

func Installments(service syncing.Coordinator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/installments/pay",
			Method:  http.MethodPost,
			Handler: PayInstallment(service),
		},
	}
}

func Sync(service syncing.Coordinator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sync/refresh",
			Method:  http.MethodPost,
			Handler: RefreshData(service),
		},
		{
			Path:    "/v1/sync/status",
			Method:  http.MethodGet,
			Handler: GetSyncStatus(service),
		},
	}
}

func Settings(service syncing.Coordinator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/settings",
			Method:  http.MethodGet,
			Handler: GetSettings(service),
		},
		{
			Path:    "/v1/settings",
			Method:  http.MethodPut,
			Handler: UpdateSettings(service),
		},
	}
}
