package planilhaclient

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	planilhadomain "github.com/agrovale/vendas-dashboard-api/infrastructure/integrator/planilha/domain"
)

const (
	actionSaveSale       = "saveSale"
	actionPayInstallment = "payInstallment"
)

func (c *PlanilhaClient) SaveSale(ctx context.Context, endpoint string, sale planilhadomain.SaleRecord) error {
	payload := planilhadomain.SaveSalePayload{
		Action: actionSaveSale,
		Sale:   sale,
	}

	return c.enviar(ctx, endpoint, actionSaveSale, payload)
}

func (c *PlanilhaClient) PayInstallment(ctx context.Context, endpoint string, saleID string, installmentNumber int) error {
	payload := planilhadomain.PayInstallmentPayload{
		Action:            actionPayInstallment,
		SaleID:            saleID,
		InstallmentNumber: installmentNumber,
	}

	return c.enviar(ctx, endpoint, actionPayInstallment, payload)
}

// enviar executa um POST de mutação. Em alguns modos de implantação do Apps
// Script o corpo da resposta não pode ser lido, então um envio que não falha
// na camada de transporte é tratado como sucesso; a durabilidade é confirmada
// pelo refresh subsequente.
func (c *PlanilhaClient) enviar(ctx context.Context, endpoint, action string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao serializar o payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("mutação %s falhou com status: %s", action, resp.Status)
	}

	return nil
}
