// Package normalizing converte os registros brutos da planilha, de tipagem
// frouxa, no esquema interno tipado. Todo consumidor a jusante (agregação,
// agrupamento, busca) trabalha apenas sobre o resultado desta camada.
package normalizing

import (
	"errors"
	"strings"

	planilhadomain "github.com/agrovale/vendas-dashboard-api/infrastructure/integrator/planilha/domain"
	"github.com/agrovale/vendas-dashboard-api/internal/domain"
	"github.com/agrovale/vendas-dashboard-api/pkg/utils"
)

// ErrInvalidInstallmentNumber indica uma parcela sem número interpretável.
// Diferente dos demais campos, o número da parcela não tem fallback: sem ele
// o registro não pode ser correlacionado e é descartado pelo chamador.
var ErrInvalidInstallmentNumber = errors.New("número de parcela ausente ou inválido")

// AdaptSale normaliza um registro de venda. Nunca falha: todo campo exigido
// pelos consumidores tem tipo definido e fallback documentado.
func AdaptSale(rec planilhadomain.SaleRecord) domain.Sale {
	totalValue, rawTotal := utils.FlexFloat(rec.TotalValue)
	purchaseDate, rawDate := utils.FlexDate(rec.PurchaseDate)

	clientName := strings.TrimSpace(utils.FlexString(rec.ClientName))
	if clientName == "" {
		clientName = domain.NoName
	}

	status := strings.TrimSpace(utils.FlexString(rec.PaymentStatus))
	if status == "" {
		status = domain.StatusPending
	}

	installmentCount, ok := utils.FlexInt(rec.InstallmentCount)
	if !ok || installmentCount < 1 {
		installmentCount = 1
	}

	// rowIndex ausente fica em zero: venda ainda não gravada na planilha
	rowIndex, _ := utils.FlexInt(rec.RowIndex)

	return domain.Sale{
		ID:               strings.TrimSpace(utils.FlexString(rec.SaleID)),
		ClientName:       clientName,
		City:             strings.TrimSpace(utils.FlexString(rec.City)),
		Phone:            strings.TrimSpace(utils.FlexString(rec.Phone)),
		PurchaseDate:     purchaseDate,
		RawPurchaseDate:  rawDate,
		TotalValue:       totalValue,
		RawTotalValue:    rawTotal,
		PaymentStatus:    status,
		InstallmentCount: installmentCount,
		Responsible:      strings.TrimSpace(utils.FlexString(rec.Responsible)),
		RowIndex:         rowIndex,
	}
}

// AdaptInstallment normaliza um registro de parcela. Número malformado é erro
// de dados: o chamador registra o descarte e segue com as demais parcelas.
func AdaptInstallment(rec planilhadomain.InstallmentRecord) (domain.Installment, error) {
	number, ok := utils.FlexInt(rec.Number)
	if !ok || number < 1 {
		return domain.Installment{}, ErrInvalidInstallmentNumber
	}

	amount, rawAmount := utils.FlexFloat(rec.Amount)

	return domain.Installment{
		SaleID:      strings.TrimSpace(utils.FlexString(rec.SaleID)),
		Number:      number,
		Amount:      amount,
		RawAmount:   rawAmount,
		Status:      strings.TrimSpace(utils.FlexString(rec.Status)),
		PaymentDate: strings.TrimSpace(utils.FlexString(rec.PaymentDate)),
	}, nil
}

// ToSaleRecord monta o registro bruto enviado na mutação saveSale a partir de
// uma venda do domínio. O rowIndex só acompanha o payload em edições.
func ToSaleRecord(sale domain.Sale) planilhadomain.SaleRecord {
	rec := planilhadomain.SaleRecord{
		SaleID:           sale.ID,
		ClientName:       sale.ClientName,
		City:             sale.City,
		Phone:            sale.Phone,
		PurchaseDate:     sale.RawPurchaseDate,
		TotalValue:       sale.TotalValue,
		PaymentStatus:    sale.PaymentStatus,
		InstallmentCount: sale.InstallmentCount,
		Responsible:      sale.Responsible,
	}

	if sale.PurchaseDate != nil {
		rec.PurchaseDate = sale.PurchaseDate.Format("2006-01-02")
	}

	if !sale.IsNew() {
		rec.RowIndex = sale.RowIndex
	}

	return rec
}
