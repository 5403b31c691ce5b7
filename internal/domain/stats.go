package domain

import "time"

// DashboardStats reúne os totais exibidos nos cartões do dashboard,
// sempre recalculados a partir da coleção completa de vendas
type DashboardStats struct {
	TotalSales   int     `json:"total_sales"`
	TotalRevenue float64 `json:"total_revenue"`
	PendingSales int     `json:"pending_sales"` // vendas com status exatamente "Em aberto"
}

// InstallmentTotals particiona todas as parcelas conhecidas entre pagas e
// pendentes, incluindo parcelas órfãs (sem venda correspondente)
type InstallmentTotals struct {
	Paid    int `json:"paid"`
	Pending int `json:"pending"`
}

// MonthRevenue é um ponto da série de faturamento mensal
type MonthRevenue struct {
	Label   string    `json:"label"` // rótulo pt-BR abreviado, ex.: "mar/24"
	Month   time.Time `json:"-"`     // primeiro dia do mês, usado para ordenação
	Revenue float64   `json:"revenue"`
}
