package planilha

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/agrovale/vendas-dashboard-api/infrastructure/integrator/planilha/planilhaclient"
	"github.com/agrovale/vendas-dashboard-api/internal/domain"
	"github.com/agrovale/vendas-dashboard-api/internal/usecases/normalizing"
)

// Integrator é a fronteira com a API remota da planilha. Devolve registros já
// normalizados para o esquema interno; os consumidores nunca veem os rótulos
// de coluna da planilha.
type Integrator interface {
	FetchSales(ctx context.Context, endpoint string) ([]domain.Sale, error)
	FetchInstallments(ctx context.Context, endpoint string) ([]domain.Installment, error)
	SaveSale(ctx context.Context, endpoint string, sale domain.Sale) error
	PayInstallment(ctx context.Context, endpoint string, saleID string, installmentNumber int) error
}

type PlanilhaService struct {
	Client planilhaclient.Client
}

func New(client planilhaclient.Client) Integrator {
	return &PlanilhaService{
		Client: client,
	}
}

func (s *PlanilhaService) FetchSales(ctx context.Context, endpoint string) ([]domain.Sale, error) {
	records, err := s.Client.GetSales(ctx, endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao buscar vendas da planilha")
	}

	sales := make([]domain.Sale, 0, len(records))
	for _, rec := range records {
		sales = append(sales, normalizing.AdaptSale(rec))
	}

	return sales, nil
}

func (s *PlanilhaService) FetchInstallments(ctx context.Context, endpoint string) ([]domain.Installment, error) {
	records, err := s.Client.GetInstallments(ctx, endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao buscar parcelas da planilha")
	}

	installments := make([]domain.Installment, 0, len(records))
	for _, rec := range records {
		installment, err := normalizing.AdaptInstallment(rec)
		if err != nil {
			// Erro de dados, não de transporte: a parcela é descartada e a
			// sincronização segue com as demais
			logrus.WithFields(logrus.Fields{
				"sale_id": rec.SaleID,
				"number":  rec.Number,
			}).WithError(err).Warn("Parcela malformada descartada na normalização")
			continue
		}

		installments = append(installments, installment)
	}

	return installments, nil
}

func (s *PlanilhaService) SaveSale(ctx context.Context, endpoint string, sale domain.Sale) error {
	record := normalizing.ToSaleRecord(sale)

	if err := s.Client.SaveSale(ctx, endpoint, record); err != nil {
		return errors.Wrap(err, "falha ao salvar venda na planilha")
	}

	return nil
}

func (s *PlanilhaService) PayInstallment(ctx context.Context, endpoint string, saleID string, installmentNumber int) error {
	if err := s.Client.PayInstallment(ctx, endpoint, saleID, installmentNumber); err != nil {
		return errors.Wrap(err, "falha ao registrar pagamento de parcela")
	}

	return nil
}
