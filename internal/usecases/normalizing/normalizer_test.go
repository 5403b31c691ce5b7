package normalizing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	planilhadomain "github.com/agrovale/vendas-dashboard-api/infrastructure/integrator/planilha/domain"
	"github.com/agrovale/vendas-dashboard-api/internal/domain"
)

func TestAdaptSale(t *testing.T) {
	tests := []struct {
		name     string
		record   planilhadomain.SaleRecord
		validate func(t *testing.T, sale domain.Sale)
	}{
		{
			name: "Registro completo deve preservar todos os campos",
			record: planilhadomain.SaleRecord{
				SaleID:           "VND-A1B2C3D4",
				ClientName:       "Maria Souza",
				City:             "Petrolina/PE",
				Phone:            "87 99999-0000",
				PurchaseDate:     "2024-03-10",
				TotalValue:       1250.75,
				PaymentStatus:    "Em aberto",
				InstallmentCount: float64(3),
				Responsible:      "Carlos",
				RowIndex:         float64(7),
			},
			validate: func(t *testing.T, sale domain.Sale) {
				assert.Equal(t, "VND-A1B2C3D4", sale.ID)
				assert.Equal(t, "Maria Souza", sale.ClientName)
				assert.Equal(t, "Petrolina/PE", sale.City)
				assert.Equal(t, "87 99999-0000", sale.Phone)
				assert.Equal(t, 1250.75, sale.TotalValue)
				assert.Equal(t, domain.StatusOpen, sale.PaymentStatus)
				assert.Equal(t, 3, sale.InstallmentCount)
				assert.Equal(t, "Carlos", sale.Responsible)
				assert.Equal(t, 7, sale.RowIndex)

				if assert.NotNil(t, sale.PurchaseDate) {
					assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), *sale.PurchaseDate)
				}
			},
		},
		{
			name: "Nome ausente deve cair no rótulo Sem Nome",
			record: planilhadomain.SaleRecord{
				SaleID:     "VND-X1",
				ClientName: nil,
				TotalValue: 100.0,
			},
			validate: func(t *testing.T, sale domain.Sale) {
				assert.Equal(t, domain.NoName, sale.ClientName)
			},
		},
		{
			name: "Nome só com espaços deve cair no rótulo Sem Nome",
			record: planilhadomain.SaleRecord{
				ClientName: "   ",
			},
			validate: func(t *testing.T, sale domain.Sale) {
				assert.Equal(t, domain.NoName, sale.ClientName)
			},
		},
		{
			name: "Valor em string com vírgula deve ser interpretado",
			record: planilhadomain.SaleRecord{
				ClientName: "João",
				TotalValue: "150,50",
			},
			validate: func(t *testing.T, sale domain.Sale) {
				assert.Equal(t, 150.50, sale.TotalValue)
				assert.Equal(t, "150,50", sale.RawTotalValue)
			},
		},
		{
			name: "Valor não numérico deve valer zero preservando o bruto",
			record: planilhadomain.SaleRecord{
				ClientName: "João",
				TotalValue: "a combinar",
			},
			validate: func(t *testing.T, sale domain.Sale) {
				assert.Equal(t, 0.0, sale.TotalValue)
				assert.Equal(t, "a combinar", sale.RawTotalValue)
			},
		},
		{
			name: "Status ausente deve valer Pendente",
			record: planilhadomain.SaleRecord{
				ClientName:    "João",
				PaymentStatus: nil,
			},
			validate: func(t *testing.T, sale domain.Sale) {
				assert.Equal(t, domain.StatusPending, sale.PaymentStatus)
			},
		},
		{
			name: "Quantidade de parcelas inválida deve valer um",
			record: planilhadomain.SaleRecord{
				ClientName:       "João",
				InstallmentCount: "muitas",
			},
			validate: func(t *testing.T, sale domain.Sale) {
				assert.Equal(t, 1, sale.InstallmentCount)
			},
		},
		{
			name: "Quantidade de parcelas zero deve valer um",
			record: planilhadomain.SaleRecord{
				ClientName:       "João",
				InstallmentCount: float64(0),
			},
			validate: func(t *testing.T, sale domain.Sale) {
				assert.Equal(t, 1, sale.InstallmentCount)
			},
		},
		{
			name: "Data inválida deve degradar para o texto bruto",
			record: planilhadomain.SaleRecord{
				ClientName:   "João",
				PurchaseDate: "em breve",
			},
			validate: func(t *testing.T, sale domain.Sale) {
				assert.Nil(t, sale.PurchaseDate)
				assert.Equal(t, "em breve", sale.RawPurchaseDate)
			},
		},
		{
			name: "Data no formato brasileiro deve ser interpretada",
			record: planilhadomain.SaleRecord{
				ClientName:   "João",
				PurchaseDate: "10/03/2024",
			},
			validate: func(t *testing.T, sale domain.Sale) {
				if assert.NotNil(t, sale.PurchaseDate) {
					assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), *sale.PurchaseDate)
				}
			},
		},
		{
			name: "ID numérico deve virar string sem casa decimal",
			record: planilhadomain.SaleRecord{
				SaleID:     float64(12345),
				ClientName: "João",
			},
			validate: func(t *testing.T, sale domain.Sale) {
				assert.Equal(t, "12345", sale.ID)
			},
		},
		{
			name: "RowIndex ausente deve marcar a venda como nova",
			record: planilhadomain.SaleRecord{
				ClientName: "João",
			},
			validate: func(t *testing.T, sale domain.Sale) {
				assert.Equal(t, 0, sale.RowIndex)
				assert.True(t, sale.IsNew())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sale := AdaptSale(tt.record)
			tt.validate(t, sale)
		})
	}
}

func TestAdaptInstallment(t *testing.T) {
	tests := []struct {
		name     string
		record   planilhadomain.InstallmentRecord
		hasError bool
		validate func(t *testing.T, installment domain.Installment)
	}{
		{
			name: "Registro completo deve preservar todos os campos",
			record: planilhadomain.InstallmentRecord{
				SaleID:      "VND-A1B2C3D4",
				Number:      float64(2),
				Amount:      "416,92",
				Status:      "Pago",
				PaymentDate: "2024-04-10",
			},
			validate: func(t *testing.T, installment domain.Installment) {
				assert.Equal(t, "VND-A1B2C3D4", installment.SaleID)
				assert.Equal(t, 2, installment.Number)
				assert.Equal(t, 416.92, installment.Amount)
				assert.Equal(t, domain.StatusPaid, installment.Status)
				assert.Equal(t, "2024-04-10", installment.PaymentDate)
				assert.True(t, installment.IsPaid())
			},
		},
		{
			name: "Número de parcela ausente deve falhar",
			record: planilhadomain.InstallmentRecord{
				SaleID: "VND-A1B2C3D4",
				Number: nil,
			},
			hasError: true,
		},
		{
			name: "Número de parcela não numérico deve falhar",
			record: planilhadomain.InstallmentRecord{
				SaleID: "VND-A1B2C3D4",
				Number: "primeira",
			},
			hasError: true,
		},
		{
			name: "Número de parcela zero deve falhar",
			record: planilhadomain.InstallmentRecord{
				SaleID: "VND-A1B2C3D4",
				Number: float64(0),
			},
			hasError: true,
		},
		{
			name: "Status diferente de Pago não conta como paga",
			record: planilhadomain.InstallmentRecord{
				SaleID: "VND-A1B2C3D4",
				Number: float64(1),
				Status: "Pendente",
			},
			validate: func(t *testing.T, installment domain.Installment) {
				assert.False(t, installment.IsPaid())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			installment, err := AdaptInstallment(tt.record)

			if tt.hasError {
				assert.ErrorIs(t, err, ErrInvalidInstallmentNumber)
				return
			}

			assert.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, installment)
			}
		})
	}
}

func TestToSaleRecord(t *testing.T) {
	purchaseDate := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("Venda nova não deve carregar rowIndex", func(t *testing.T) {
		sale := domain.Sale{
			ID:               "VND-NOVA1234",
			ClientName:       "Maria Souza",
			PurchaseDate:     &purchaseDate,
			TotalValue:       500.0,
			PaymentStatus:    domain.StatusOpen,
			InstallmentCount: 2,
		}

		rec := ToSaleRecord(sale)

		assert.Equal(t, "VND-NOVA1234", rec.SaleID)
		assert.Equal(t, "2024-03-10", rec.PurchaseDate)
		assert.Nil(t, rec.RowIndex)
	})

	t.Run("Edição deve carregar o rowIndex da linha de origem", func(t *testing.T) {
		sale := domain.Sale{
			ID:         "VND-EDIT5678",
			ClientName: "Maria Souza",
			TotalValue: 500.0,
			RowIndex:   9,
		}

		rec := ToSaleRecord(sale)

		assert.Equal(t, 9, rec.RowIndex)
	})

	t.Run("Data não interpretada deve seguir no formato bruto", func(t *testing.T) {
		sale := domain.Sale{
			ID:              "VND-RAW",
			ClientName:      "Maria Souza",
			RawPurchaseDate: "em breve",
		}

		rec := ToSaleRecord(sale)

		assert.Equal(t, "em breve", rec.PurchaseDate)
	})
}
