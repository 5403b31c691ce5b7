package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/agrovale/vendas-dashboard-api/internal/domain"
	"github.com/agrovale/vendas-dashboard-api/internal/usecases/syncing"
	"github.com/agrovale/vendas-dashboard-api/pkg/apiErrors"
	"github.com/agrovale/vendas-dashboard-api/pkg/utils"
)

// SaleRequest é o corpo aceito na criação e edição de vendas. Vendas novas
// chegam sem ID e sem rowIndex; edições carregam os dois.
type SaleRequest struct {
	ID               string  `json:"id"`
	ClientName       string  `json:"clientName"`
	City             string  `json:"city"`
	Phone            string  `json:"phone"`
	PurchaseDate     string  `json:"purchaseDate"`
	TotalValue       float64 `json:"totalValue"`
	PaymentStatus    string  `json:"paymentStatus"`
	InstallmentCount int     `json:"installmentCount"`
	Responsible      string  `json:"responsible"`
	RowIndex         int     `json:"rowIndex"`
}

// ListSales devolve as vendas do último instantâneo, da mais recente para a
// mais antiga
func ListSales(service syncing.Coordinator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sales := service.SalesList()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(sales); err != nil {
			logrus.Error("Erro ao enviar lista de vendas:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	}
}

// SaveSale registra uma venda nova ou atualiza uma existente na planilha
func SaveSale(service syncing.Coordinator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SaleRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		sale, ok := saleFromRequest(req)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do cliente e valor total são obrigatórios", nil)
			return
		}

		saved, err := service.CreateOrUpdateSale(r.Context(), sale)
		if err != nil {
			logrus.Error("Erro ao salvar venda:", err)
			handleCoordinatorError(w, err, "Erro ao salvar a venda na planilha")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		// O status 201 já foi enviado: falha aqui só pode ser registrada
		if err := json.NewEncoder(w).Encode(map[string]string{"id": saved.ID}); err != nil {
			logrus.Error("Erro ao enviar resposta da venda:", err)
		}
	}
}

// saleFromRequest valida os campos obrigatórios e monta a venda de domínio
func saleFromRequest(req SaleRequest) (domain.Sale, bool) {
	name := strings.TrimSpace(req.ClientName)
	if name == "" || req.TotalValue <= 0 {
		return domain.Sale{}, false
	}

	status := strings.TrimSpace(req.PaymentStatus)
	if status == "" {
		status = domain.StatusOpen
	}

	count := req.InstallmentCount
	if count < 1 {
		count = 1
	}

	purchaseDate, rawDate := utils.FlexDate(req.PurchaseDate)

	return domain.Sale{
		ID:               strings.TrimSpace(req.ID),
		ClientName:       name,
		City:             strings.TrimSpace(req.City),
		Phone:            strings.TrimSpace(req.Phone),
		PurchaseDate:     purchaseDate,
		RawPurchaseDate:  rawDate,
		TotalValue:       req.TotalValue,
		PaymentStatus:    status,
		InstallmentCount: count,
		Responsible:      strings.TrimSpace(req.Responsible),
		RowIndex:         req.RowIndex,
	}, true
}
