package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/agrovale/vendas-dashboard-api/internal/usecases/syncing"
	"github.com/agrovale/vendas-dashboard-api/pkg/apiErrors"
)

type PayInstallmentRequest struct {
	SaleID            string `json:"saleId"`
	InstallmentNumber int    `json:"installmentNumber"`
}

// PayInstallment registra o pagamento de uma parcela na planilha. O estado
// local só reflete o pagamento após o refresh agendado.
func PayInstallment(service syncing.Coordinator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PayInstallmentRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		saleID := strings.TrimSpace(req.SaleID)
		if saleID == "" || req.InstallmentNumber < 1 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Venda e número da parcela são obrigatórios", nil)
			return
		}

		if err := service.MarkInstallmentPaid(r.Context(), saleID, req.InstallmentNumber); err != nil {
			logrus.Error("Erro ao registrar pagamento de parcela:", err)
			handleCoordinatorError(w, err, "Erro ao registrar o pagamento na planilha")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
			logrus.Error("Erro ao enviar resposta do pagamento:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}
