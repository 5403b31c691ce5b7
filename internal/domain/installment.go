package domain

// Installment representa uma parcela normalizada vinculada a uma venda
type Installment struct {
	SaleID      string
	Number      int
	Amount      float64
	RawAmount   string
	Status      string // apenas "Pago" é considerado quitada; qualquer outro valor é pendente
	PaymentDate string // presente somente quando a parcela foi paga
}

// IsPaid indica se a parcela foi quitada. A planilha só registra dois estados
// observáveis: tudo que não for exatamente "Pago" é tratado como pendente.
func (i Installment) IsPaid() bool {
	return i.Status == StatusPaid
}
