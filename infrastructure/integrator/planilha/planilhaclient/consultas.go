package planilhaclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	planilhadomain "github.com/agrovale/vendas-dashboard-api/infrastructure/integrator/planilha/domain"
)

const (
	actionGetSales        = "getSales"
	actionGetInstallments = "getInstallments"
)

func (c *PlanilhaClient) GetSales(ctx context.Context, endpoint string) ([]planilhadomain.SaleRecord, error) {
	var records []planilhadomain.SaleRecord
	if err := c.consultar(ctx, endpoint, actionGetSales, &records); err != nil {
		return nil, err
	}

	return records, nil
}

func (c *PlanilhaClient) GetInstallments(ctx context.Context, endpoint string) ([]planilhadomain.InstallmentRecord, error) {
	var records []planilhadomain.InstallmentRecord
	if err := c.consultar(ctx, endpoint, actionGetInstallments, &records); err != nil {
		return nil, err
	}

	return records, nil
}

// consultar executa um GET `?action=...` e decodifica o array de registros.
// O endpoint devolve `{"error": "..."}` no lugar do array quando a consulta
// falha do lado da planilha, por isso o corpo é inspecionado antes do decode.
func (c *PlanilhaClient) consultar(ctx context.Context, endpoint, action string, out any) error {
	// Construir a URL da requisição.
	target, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("erro ao analisar a URL da API: %w", err)
	}

	query := target.Query()
	query.Set("action", action)
	target.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("requisição %s falhou com status: %s", action, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	if apiErr := probeAPIError(body); apiErr != nil {
		return apiErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return nil
}

// probeAPIError detecta o envelope de erro sem consumir o array de registros
func probeAPIError(body []byte) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}

	var apiErr planilhadomain.APIError
	if err := json.Unmarshal(trimmed, &apiErr); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	if apiErr.Error != "" {
		return fmt.Errorf("erro reportado pela API: %s", apiErr.Error)
	}

	return fmt.Errorf("resposta inesperada da API: objeto sem campo de erro")
}
