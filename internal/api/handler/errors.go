package handler

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/agrovale/vendas-dashboard-api/internal/usecases/syncing"
	"github.com/agrovale/vendas-dashboard-api/pkg/apiErrors"
)

// handleCoordinatorError traduz erros do coordenador para a resposta HTTP
// padronizada
func handleCoordinatorError(w http.ResponseWriter, err error, fallbackMessage string) {
	switch {
	case errors.Is(err, syncing.ErrNotConfigured):
		apiErrors.WriteError(w, apiErrors.ErrMissingAPIURL, "Endpoint da planilha não configurado", nil)

	case errors.Is(err, syncing.ErrRefreshInFlight):
		apiErrors.WriteError(w, apiErrors.ErrRefreshInFlight, "Sincronização já em andamento", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrExternalService, fallbackMessage, nil)
	}
}
