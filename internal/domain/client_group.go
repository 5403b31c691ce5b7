package domain

import (
	"strings"
	"unicode"

	"github.com/agrovale/vendas-dashboard-api/pkg/utils"
)

// ClientGroup agrupa todas as vendas de um mesmo cliente (chave = nome
// aparado). É derivado do zero a cada recomputação, nunca mantido
// incrementalmente, para refletir sempre a última busca bem-sucedida.
type ClientGroup struct {
	Name  string
	City  string // último valor não vazio na ordem de processamento das vendas
	Phone string // idem, independente do campo cidade
	Sales []Sale // ordem de entrada, sem reordenação
}

// TotalValue soma o valor normalizado de todas as vendas do cliente,
// arredondado a duas casas
func (g ClientGroup) TotalValue() float64 {
	var total float64
	for _, sale := range g.Sales {
		total += sale.TotalValue
	}

	return utils.RoundWithTwoDecimalPlace(total)
}

// Initials monta as iniciais exibidas no avatar do cliente (máximo de duas)
func (g ClientGroup) Initials() string {
	var initials []rune
	for _, word := range strings.Fields(g.Name) {
		first := []rune(word)[0]
		initials = append(initials, unicode.ToUpper(first))
		if len(initials) == 2 {
			break
		}
	}

	if len(initials) == 0 {
		return "?"
	}

	return string(initials)
}

// SaleProgress descreve o andamento de pagamento de uma venda a partir das
// parcelas vinculadas. Tracked=false indica o estado "sem controle detalhado
// de parcelas": a venda só tem o campo plano de quantidade de parcelas.
type SaleProgress struct {
	Paid    int
	Pending int
	Total   int
	Percent int
	Tracked bool
}

// ClientProgress agrega os contadores de parcelas de todas as vendas do cliente
type ClientProgress struct {
	Paid  int
	Total int
}
