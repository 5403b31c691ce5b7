package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/agrovale/vendas-dashboard-api/internal/usecases/syncing"
	"github.com/agrovale/vendas-dashboard-api/pkg/apiErrors"
)

// RefreshData dispara um ciclo completo de sincronização com a planilha
func RefreshData(service syncing.Coordinator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.Refresh(r.Context()); err != nil {
			logrus.Error("Erro na sincronização manual:", err)
			handleCoordinatorError(w, err, "Erro ao sincronizar com a planilha")
			return
		}

		status := service.Status()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.Error("Erro ao enviar status da sincronização:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// GetSyncStatus devolve o retrato atual do coordenador de sincronização
func GetSyncStatus(service syncing.Coordinator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := service.Status()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.Error("Erro ao enviar status da sincronização:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
