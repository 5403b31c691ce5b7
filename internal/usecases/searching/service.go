// Package searching deriva o subconjunto de clientes que casa com uma busca
// livre. O filtro é recalculado sobre o agrupamento completo a cada chamada.
package searching

import (
	"strings"

	"github.com/agrovale/vendas-dashboard-api/internal/usecases/grouping"
)

// FilterResult distingue "nenhum filtro aplicado" (Applied=false, a listagem
// mostra todos os clientes) de "filtro sem resultados" (Applied=true e Names
// vazio, a listagem mostra o indicador de cliente não encontrado).
type FilterResult struct {
	Applied bool
	Names   []string
}

// FilterClients casa a consulta, sem distinção de maiúsculas, como substring
// do nome, da cidade ou do telefone de cada cliente. Consulta vazia ou só com
// espaços limpa o filtro.
func FilterClients(query string, groups grouping.Groups) FilterResult {
	query = strings.TrimSpace(query)
	if query == "" {
		return FilterResult{Applied: false}
	}

	q := strings.ToLower(query)
	names := make([]string, 0)

	for _, name := range groups.Names {
		group := groups.ByName[name]

		if strings.Contains(strings.ToLower(group.Name), q) ||
			strings.Contains(strings.ToLower(group.City), q) ||
			strings.Contains(strings.ToLower(group.Phone), q) {
			names = append(names, name)
		}
	}

	return FilterResult{Applied: true, Names: names}
}
