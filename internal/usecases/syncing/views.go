package syncing

import (
	"github.com/agrovale/vendas-dashboard-api/internal/domain"
	"github.com/agrovale/vendas-dashboard-api/internal/usecases/aggregating"
	"github.com/agrovale/vendas-dashboard-api/internal/usecases/grouping"
	"github.com/agrovale/vendas-dashboard-api/internal/usecases/searching"
)

// As visões derivadas são funções puras do instantâneo atual: sempre
// recalculadas da fonte de verdade, nunca mantidas por diferença. O custo é
// baixo para o volume de uma planilha e elimina qualquer estado divergente.

type DashboardView struct {
	Stats              domain.DashboardStats    `json:"stats"`
	InstallmentTotals  domain.InstallmentTotals `json:"installment_totals"`
	StatusDistribution map[string]int           `json:"status_distribution"`
	RevenueByMonth     []domain.MonthRevenue    `json:"revenue_by_month"`
}

type SaleView struct {
	ID            string  `json:"id"`
	ShortID       string  `json:"short_id"`
	ClientName    string  `json:"client_name"`
	Status        string  `json:"status"`
	StatusClass   string  `json:"status_class"`
	Date          string  `json:"date"`
	TotalValue    float64 `json:"total_value"`
	RawTotalValue string  `json:"raw_total_value,omitempty"`
	Responsible   string  `json:"responsible"`
	RowIndex      int     `json:"row_index,omitempty"`
}

type InstallmentView struct {
	Number      int     `json:"number"`
	Amount      float64 `json:"amount"`
	Paid        bool    `json:"paid"`
	PaymentDate string  `json:"payment_date,omitempty"`
}

type ClientSaleView struct {
	SaleView
	Progress domain.SaleProgress `json:"progress"`
	// InstallmentCount é exibido quando a venda não tem controle detalhado
	// de parcelas (Progress.Tracked == false)
	InstallmentCount int               `json:"installment_count"`
	Installments     []InstallmentView `json:"installments"`
}

type ClientView struct {
	Name          string                `json:"name"`
	City          string                `json:"city"`
	Phone         string                `json:"phone"`
	Initials      string                `json:"initials"`
	PurchaseCount int                   `json:"purchase_count"`
	TotalValue    float64               `json:"total_value"`
	Progress      domain.ClientProgress `json:"progress"`
	Sales         []ClientSaleView      `json:"sales"`
}

type ClientsView struct {
	TotalClients      int                      `json:"total_clients"`
	InstallmentTotals domain.InstallmentTotals `json:"installment_totals"`
	FilterApplied     bool                     `json:"filter_applied"`
	Clients           []ClientView             `json:"clients"`
}

// Dashboard calcula as estatísticas agregadas da coleção atual de vendas
func (s *Service) Dashboard() DashboardView {
	sales, installments := s.snapshot()

	return DashboardView{
		Stats:              aggregating.DashboardStats(sales),
		InstallmentTotals:  aggregating.InstallmentTotals(installments),
		StatusDistribution: aggregating.StatusDistribution(sales),
		RevenueByMonth:     aggregating.RevenueByMonth(sales),
	}
}

// SalesList devolve as vendas em ordem inversa de entrada (mais recentes
// primeiro, como a planilha anexa no fim)
func (s *Service) SalesList() []SaleView {
	sales, _ := s.snapshot()

	views := make([]SaleView, 0, len(sales))
	for i := len(sales) - 1; i >= 0; i-- {
		views = append(views, newSaleView(sales[i]))
	}

	return views
}

// Clients agrupa as vendas por cliente, junta as parcelas e aplica a busca.
// FilterApplied distingue "sem filtro" de "filtro sem resultados"; TotalClients
// sempre reflete o universo completo, não o subconjunto filtrado.
func (s *Service) Clients(query string) ClientsView {
	sales, installments := s.snapshot()

	groups := grouping.GroupByClient(sales)
	filter := searching.FilterClients(query, groups)

	names := groups.Names
	if filter.Applied {
		names = filter.Names
	}

	view := ClientsView{
		TotalClients:      len(groups.Names),
		InstallmentTotals: aggregating.InstallmentTotals(installments),
		FilterApplied:     filter.Applied,
		Clients:           make([]ClientView, 0, len(names)),
	}

	for _, name := range names {
		group := groups.ByName[name]

		clientView := ClientView{
			Name:          group.Name,
			City:          group.City,
			Phone:         group.Phone,
			Initials:      group.Initials(),
			PurchaseCount: len(group.Sales),
			TotalValue:    group.TotalValue(),
			Progress:      grouping.ClientProgress(group, installments),
			Sales:         make([]ClientSaleView, 0, len(group.Sales)),
		}

		for _, sale := range group.Sales {
			clientView.Sales = append(clientView.Sales, newClientSaleView(sale, installments))
		}

		view.Clients = append(view.Clients, clientView)
	}

	return view
}

func newSaleView(sale domain.Sale) SaleView {
	view := SaleView{
		ID:          sale.ID,
		ShortID:     sale.ShortID(),
		ClientName:  sale.ClientName,
		Status:      sale.PaymentStatus,
		StatusClass: sale.StatusClass(),
		Date:        sale.FormattedDate(),
		TotalValue:  sale.TotalValue,
		Responsible: sale.Responsible,
		RowIndex:    sale.RowIndex,
	}

	// O valor bruto acompanha a visão apenas quando difere do normalizado,
	// para o front exibir a célula original malformada
	if sale.TotalValue == 0 && sale.RawTotalValue != "" && sale.RawTotalValue != "0" {
		view.RawTotalValue = sale.RawTotalValue
	}

	if view.Responsible == "" {
		view.Responsible = domain.NoValueLabel
	}

	return view
}

func newClientSaleView(sale domain.Sale, installments []domain.Installment) ClientSaleView {
	joined := grouping.InstallmentsForSale(installments, sale.ID)

	view := ClientSaleView{
		SaleView:         newSaleView(sale),
		Progress:         grouping.SaleProgress(sale, installments),
		InstallmentCount: sale.InstallmentCount,
		Installments:     make([]InstallmentView, 0, len(joined)),
	}

	for _, installment := range joined {
		view.Installments = append(view.Installments, InstallmentView{
			Number:      installment.Number,
			Amount:      installment.Amount,
			Paid:        installment.IsPaid(),
			PaymentDate: installment.PaymentDate,
		})
	}

	return view
}
