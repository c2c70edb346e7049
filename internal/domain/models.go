// internal/domain/models.go
package domain

// RelatorioRow representa uma linha canônica do relatório de entregas/pesagens.
// Todos os campos são sempre preenchidos: numéricos com 0, textos e datas com "".
type RelatorioRow struct {
	Entrega      int     `json:"entrega"`
	Data         string  `json:"data"` // ISO YYYY-MM-DD
	NF           string  `json:"nf"`
	Placa        string  `json:"placa"`
	Motorista    string  `json:"motorista"`
	Faturado     string  `json:"faturado"`
	FazEntregue  string  `json:"fazEntregue"`
	TicketRF     string  `json:"ticketRF"`
	PesoRF       float64 `json:"pesoRF"`
	Ticket       string  `json:"ticket"`
	Peso         float64 `json:"peso"`
	Preco        float64 `json:"preco"`
	Total        float64 `json:"total"` // fornecido pela planilha; nunca recalculado a partir de preco*peso
	Deposito     float64 `json:"deposito"`
	DataDeposito string  `json:"dataDeposito"` // ISO YYYY-MM-DD
	Descricao    string  `json:"descricao"`
}

// Totais são os agregados derivados de um conjunto de linhas.
// São sempre recalculados do zero a cada chamada, nunca persistidos.
type Totais struct {
	PesoTotal     float64 `json:"pesoTotal"`
	ValorTotal    float64 `json:"valorTotal"`
	DepositoTotal float64 `json:"depositoTotal"`
	Saldo         float64 `json:"saldo"` // ValorTotal - DepositoTotal
}

// ExportColumn descreve uma coluna projetada na exportação.
type ExportColumn struct {
	Field   string  `json:"field"`
	Header  string  `json:"header"`
	Include bool    `json:"include"`
	Width   float64 `json:"width"`
	Format  string  `json:"format,omitempty"` // "date" | "number" | "currency"
}

// PaymentInfo é o bloco opcional de dados bancários anexado à planilha exportada.
type PaymentInfo struct {
	Banco   string `json:"banco"`
	Agencia string `json:"agencia"`
	Conta   string `json:"conta"`
	Empresa string `json:"empresa"`
	CNPJ    string `json:"cnpj"`
	Pix     string `json:"pix"`
}

// ExportConfig controla colunas, formatos e layout das três formas de exportação.
// A mesma configuração vale para CSV, planilha e PDF.
type ExportConfig struct {
	Title          string         `json:"title"`
	Columns        []ExportColumn `json:"columns"`
	ShowHeaders    bool           `json:"showHeaders"`
	ShowGridLines  bool           `json:"showGridLines"`
	ShowTotals     bool           `json:"showTotals"`
	Orientation    string         `json:"orientation"` // "portrait" | "landscape"
	PaperSize      string         `json:"paperSize"`   // "a4" | "letter" | "legal"
	DateFormat     string         `json:"dateFormat"`
	NumberFormat   string         `json:"numberFormat"`
	CurrencyFormat string         `json:"currencyFormat"`
	Payment        *PaymentInfo   `json:"payment,omitempty"`
}

// IncludedColumns devolve apenas as colunas marcadas para exportação, na ordem configurada.
func (c ExportConfig) IncludedColumns() []ExportColumn {
	var cols []ExportColumn
	for _, col := range c.Columns {
		if col.Include {
			cols = append(cols, col)
		}
	}
	return cols
}
