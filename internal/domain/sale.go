package domain

import (
	"strings"
	"time"
)

// Status de pagamento conhecidos da planilha. O conjunto é aberto: a planilha
// pode trazer rótulos novos e eles são preservados como vieram.
const (
	StatusOpen    = "Em aberto"
	StatusPaid    = "Pago"
	StatusPending = "Pendente"
	StatusOverdue = "Atrasado"
)

// Sentinelas de exibição para campos ausentes
const (
	NoName       = "Sem Nome"
	NoValueLabel = "---"
)

// Sale representa uma venda normalizada a partir do registro bruto da planilha
type Sale struct {
	ID               string
	ClientName       string
	City             string
	Phone            string
	PurchaseDate     *time.Time // nil quando a data não pôde ser interpretada
	RawPurchaseDate  string     // valor original, exibido quando o parse falha
	TotalValue       float64
	RawTotalValue    string // valor original para contextos de exibição
	PaymentStatus    string
	InstallmentCount int
	Responsible      string
	RowIndex         int // zero quando o registro ainda não existe na planilha
}

// ShortID retorna o segmento final do ID composto (ex.: "VND-2024-0042" -> "0042")
func (s Sale) ShortID() string {
	if s.ID == "" {
		return NoValueLabel
	}

	parts := strings.Split(s.ID, "-")
	return parts[len(parts)-1]
}

// StatusClass deriva a classe CSS usada pelo front a partir do status
// normalizado (ex.: "Em aberto" -> "status-em-aberto")
func (s Sale) StatusClass() string {
	status := s.PaymentStatus
	if status == "" {
		status = StatusPending
	}

	return "status-" + strings.Join(strings.Fields(strings.ToLower(status)), "-")
}

// FormattedDate formata a data de compra no padrão pt-BR, degradando para o
// valor bruto quando o parse falhou
func (s Sale) FormattedDate() string {
	if s.PurchaseDate != nil {
		return s.PurchaseDate.Format("02/01/2006")
	}

	if s.RawPurchaseDate == "" {
		return NoValueLabel
	}

	return s.RawPurchaseDate
}

// IsNew indica que a venda ainda não está vinculada a uma linha da planilha
func (s Sale) IsNew() bool {
	return s.RowIndex == 0
}
