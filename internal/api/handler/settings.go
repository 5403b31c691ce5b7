package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/agrovale/vendas-dashboard-api/internal/usecases/syncing"
	"github.com/agrovale/vendas-dashboard-api/pkg/apiErrors"
)

type SettingsResponse struct {
	APIURL     string `json:"apiUrl"`
	Configured bool   `json:"configured"`
}

type UpdateSettingsRequest struct {
	APIURL string `json:"apiUrl"`
}

// GetSettings devolve o endpoint configurado da API da planilha. A ausência de
// configuração não é erro aqui: o front usa a resposta para montar a tela de
// configurações.
func GetSettings(service syncing.Coordinator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		endpoint, err := service.Endpoint()
		if err != nil && !errors.Is(err, syncing.ErrNotConfigured) {
			logrus.Error("Erro ao consultar configurações:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao consultar configurações", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(SettingsResponse{
			APIURL:     endpoint,
			Configured: endpoint != "",
		}); err != nil {
			logrus.Error("Erro ao enviar configurações:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// UpdateSettings persiste o novo endpoint da API da planilha
func UpdateSettings(service syncing.Coordinator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateSettingsRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		endpoint := strings.TrimSpace(req.APIURL)
		if !isValidEndpoint(endpoint) {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "URL da API inválida", nil)
			return
		}

		if err := service.UpdateEndpoint(endpoint); err != nil {
			logrus.Error("Erro ao salvar configurações:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao salvar configurações", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(SettingsResponse{
			APIURL:     endpoint,
			Configured: true,
		}); err != nil {
			logrus.Error("Erro ao enviar configurações:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

func isValidEndpoint(endpoint string) bool {
	if endpoint == "" {
		return false
	}

	parsed, err := url.ParseRequestURI(endpoint)
	if err != nil {
		return false
	}

	return parsed.Scheme == "http" || parsed.Scheme == "https"
}
