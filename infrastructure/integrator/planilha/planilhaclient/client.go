package planilhaclient

import (
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	planilhadomain "github.com/agrovale/vendas-dashboard-api/infrastructure/integrator/planilha/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetSales(ctx context.Context, endpoint string) ([]planilhadomain.SaleRecord, error)
	GetInstallments(ctx context.Context, endpoint string) ([]planilhadomain.InstallmentRecord, error)
	SaveSale(ctx context.Context, endpoint string, sale planilhadomain.SaleRecord) error
	PayInstallment(ctx context.Context, endpoint string, saleID string, installmentNumber int) error
}

type PlanilhaClient struct {
	httpClient *http.Client
}

// NewClient cria uma nova instância do cliente da API da planilha.
func NewClient() Client {
	return &PlanilhaClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}
