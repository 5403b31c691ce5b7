// Package aggregating calcula as estatísticas do dashboard. Todas as funções
// são puras sobre as coleções completas: nada é cacheado ou mantido por
// diferença, garantindo que os totais reflitam exatamente a última busca.
package aggregating

import (
	"fmt"
	"sort"
	"time"

	"github.com/agrovale/vendas-dashboard-api/internal/domain"
	"github.com/agrovale/vendas-dashboard-api/pkg/utils"
)

// Abreviações de mês no padrão pt-BR usadas no eixo do gráfico de faturamento
var monthAbbreviations = [...]string{
	"jan", "fev", "mar", "abr", "mai", "jun",
	"jul", "ago", "set", "out", "nov", "dez",
}

// DashboardStats calcula os totais dos cartões do dashboard
func DashboardStats(sales []domain.Sale) domain.DashboardStats {
	stats := domain.DashboardStats{
		TotalSales: len(sales),
	}

	for _, sale := range sales {
		stats.TotalRevenue += sale.TotalValue
		if sale.PaymentStatus == domain.StatusOpen {
			stats.PendingSales++
		}
	}

	// Arredonda o acumulado para não propagar resíduo de ponto flutuante
	stats.TotalRevenue = utils.RoundWithTwoDecimalPlace(stats.TotalRevenue)

	return stats
}

// InstallmentTotals particiona todas as parcelas entre pagas e pendentes.
// Parcelas órfãs (sem venda correspondente) também contam aqui, diferente do
// progresso por cliente, que só considera parcelas vinculadas.
func InstallmentTotals(installments []domain.Installment) domain.InstallmentTotals {
	var totals domain.InstallmentTotals

	for _, installment := range installments {
		if installment.IsPaid() {
			totals.Paid++
		} else {
			totals.Pending++
		}
	}

	return totals
}

// StatusDistribution conta vendas por rótulo de status. O consumidor renderiza
// o resultado como gráfico sem ordem definida.
func StatusDistribution(sales []domain.Sale) map[string]int {
	distribution := make(map[string]int)

	for _, sale := range sales {
		distribution[sale.PaymentStatus]++
	}

	return distribution
}

// RevenueByMonth monta a série de faturamento mensal. Vendas com data
// inválida são ignoradas. A série sai ordenada cronologicamente: a origem
// dependia da ordem de primeira ocorrência dos rótulos durante a iteração,
// o que produzia um eixo fora de ordem quando as vendas não vinham ordenadas.
func RevenueByMonth(sales []domain.Sale) []domain.MonthRevenue {
	byMonth := make(map[time.Time]float64)

	for _, sale := range sales {
		if sale.PurchaseDate == nil {
			continue
		}

		month := time.Date(sale.PurchaseDate.Year(), sale.PurchaseDate.Month(), 1, 0, 0, 0, 0, time.UTC)
		byMonth[month] += sale.TotalValue
	}

	series := make([]domain.MonthRevenue, 0, len(byMonth))
	for month, revenue := range byMonth {
		series = append(series, domain.MonthRevenue{
			Label:   MonthLabel(month),
			Month:   month,
			Revenue: utils.RoundWithTwoDecimalPlace(revenue),
		})
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Month.Before(series[j].Month)
	})

	return series
}

// MonthLabel formata o rótulo abreviado pt-BR de um mês (ex.: "mar/24")
func MonthLabel(month time.Time) string {
	return fmt.Sprintf("%s/%02d", monthAbbreviations[month.Month()-1], month.Year()%100)
}
