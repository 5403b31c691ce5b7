package planilhadomain

// Registros brutos devolvidos pelo endpoint do Apps Script. Os nomes de campo
// são os rótulos de negócio das colunas da planilha, e os valores chegam sem
// garantia de tipo (número, string ou célula vazia), por isso os campos são
// `any` e a coerção acontece no normalizador.

type SaleRecord struct {
	SaleID           any `json:"ID da Venda"`
	ClientName       any `json:"Nome do Cliente"`
	City             any `json:"Cidade/UF"`
	Phone            any `json:"Telefone / WhatsApp"`
	PurchaseDate     any `json:"Data da Compra"`
	TotalValue       any `json:"Valor Total (R$)"`
	PaymentStatus    any `json:"Status do Pagamento"`
	InstallmentCount any `json:"Parcelas"`
	Responsible      any `json:"Responsável"`
	RowIndex         any `json:"rowIndex,omitempty"`
}

type InstallmentRecord struct {
	SaleID      any `json:"ID Venda"`
	Number      any `json:"Nº Parcela"`
	Amount      any `json:"Valor (R$)"`
	Status      any `json:"Status"`
	PaymentDate any `json:"Data Pagamento"`
}

// SaveSalePayload é o corpo do POST de criação/edição de venda
type SaveSalePayload struct {
	Action string     `json:"action"`
	Sale   SaleRecord `json:"sale"`
}

// PayInstallmentPayload é o corpo do POST que marca uma parcela como paga
type PayInstallmentPayload struct {
	Action            string `json:"action"`
	SaleID            string `json:"saleId"`
	InstallmentNumber int    `json:"installmentNumber"`
}

// APIError é o envelope de erro que o endpoint devolve no lugar do array
// quando a consulta falha do lado da planilha
type APIError struct {
	Error string `json:"error"`
}
