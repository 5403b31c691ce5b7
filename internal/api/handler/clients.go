package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/agrovale/vendas-dashboard-api/internal/usecases/syncing"
	"github.com/agrovale/vendas-dashboard-api/pkg/apiErrors"
)

// ListClients devolve os clientes agrupados do último instantâneo. O parâmetro
// opcional "q" filtra por nome, cidade ou telefone.
func ListClients(service syncing.Coordinator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")

		clients := service.Clients(query)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(clients); err != nil {
			logrus.Error("Erro ao enviar lista de clientes:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
