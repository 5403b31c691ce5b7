package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/agrovale/vendas-dashboard-api/internal/usecases/syncing"
	"github.com/agrovale/vendas-dashboard-api/pkg/apiErrors"
)

// GetDashboard devolve os indicadores agregados calculados sobre o último
// instantâneo sincronizado
func GetDashboard(service syncing.Coordinator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard := service.Dashboard()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(dashboard); err != nil {
			logrus.Error("Erro ao enviar resposta do dashboard:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
