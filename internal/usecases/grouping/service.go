// Package grouping agrupa vendas por cliente e junta cada venda às suas
// parcelas para derivar o progresso de pagamento. Os grupos são reconstruídos
// do zero a cada chamada a partir das coleções atuais.
package grouping

import (
	"strings"

	"github.com/agrovale/vendas-dashboard-api/internal/domain"
	"github.com/agrovale/vendas-dashboard-api/pkg/utils"
)

// Groups é o resultado do agrupamento: o mapa indexado pelo nome aparado e a
// ordem de primeira aparição de cada cliente, preservada para a listagem.
type Groups struct {
	ByName map[string]*domain.ClientGroup
	Names  []string
}

// GroupByClient itera as vendas na ordem recebida e resolve o grupo de cada
// uma pelo nome do cliente aparado. Cidade e telefone seguem last-write-wins
// por campo: o último valor não vazio prevalece, e vazio nunca sobrescreve.
func GroupByClient(sales []domain.Sale) Groups {
	groups := Groups{
		ByName: make(map[string]*domain.ClientGroup),
	}

	for _, sale := range sales {
		name := strings.TrimSpace(sale.ClientName)
		if name == "" {
			name = domain.NoName
		}

		group, ok := groups.ByName[name]
		if !ok {
			group = &domain.ClientGroup{Name: name}
			groups.ByName[name] = group
			groups.Names = append(groups.Names, name)
		}

		if sale.City != "" {
			group.City = sale.City
		}
		if sale.Phone != "" {
			group.Phone = sale.Phone
		}

		group.Sales = append(group.Sales, sale)
	}

	return groups
}

// InstallmentsForSale devolve as parcelas cujo ID de venda é exatamente igual
// ao informado (sem casamento por prefixo), na ordem da coleção de origem
func InstallmentsForSale(installments []domain.Installment, saleID string) []domain.Installment {
	var matched []domain.Installment

	for _, installment := range installments {
		if installment.SaleID == saleID {
			matched = append(matched, installment)
		}
	}

	return matched
}

// SaleProgress calcula o andamento de pagamento de uma venda. Venda sem
// parcela vinculada não é erro: é o estado "sem controle detalhado", comum em
// dados antigos, e o chamador exibe o campo plano de quantidade de parcelas.
func SaleProgress(sale domain.Sale, installments []domain.Installment) domain.SaleProgress {
	joined := InstallmentsForSale(installments, sale.ID)
	if len(joined) == 0 {
		return domain.SaleProgress{Tracked: false}
	}

	progress := domain.SaleProgress{
		Total:   len(joined),
		Tracked: true,
	}

	for _, installment := range joined {
		if installment.IsPaid() {
			progress.Paid++
		}
	}

	progress.Pending = progress.Total - progress.Paid
	progress.Percent = utils.RoundPercent(progress.Paid, progress.Total)

	return progress
}

// ClientProgress agrega os contadores de parcelas de todas as vendas do
// cliente. Parcelas órfãs não entram aqui; elas só aparecem nos totais
// globais de pagas/pendentes.
func ClientProgress(group *domain.ClientGroup, installments []domain.Installment) domain.ClientProgress {
	var progress domain.ClientProgress

	for _, sale := range group.Sales {
		for _, installment := range InstallmentsForSale(installments, sale.ID) {
			progress.Total++
			if installment.IsPaid() {
				progress.Paid++
			}
		}
	}

	return progress
}
