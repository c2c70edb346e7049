// internal/core/export/pdf.go
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/LuisEduardoPedra/relatorioAgro/internal/core/relatorio"
	"github.com/LuisEduardoPedra/relatorioAgro/internal/domain"
	"github.com/jung-kurt/gofpdf"
)

var paperSizes = map[string]string{
	"a4":     "A4",
	"letter": "Letter",
	"legal":  "Legal",
}

// gerarPDF gera o documento paginado: título, carimbo de geração, tabela com a
// projeção de colunas configurada, rodapé de totais quando habilitado e
// numeração "Página X de Y" em todas as páginas.
func gerarPDF(rows []domain.RelatorioRow, cfg domain.ExportConfig) ([]byte, error) {
	orientation := "P"
	if cfg.Orientation == "landscape" {
		orientation = "L"
	}
	size, ok := paperSizes[cfg.PaperSize]
	if !ok {
		size = "A4"
	}

	pdf := gofpdf.New(orientation, "mm", size, "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 18)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Página %d de {nb}", pdf.PageNo())), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	if cfg.Title != "" {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 9, tr(cfg.Title), "", 1, "C", false, 0, "")
	}
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Gerado em %s", time.Now().Format("02/01/2006 15:04"))), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	cols := cfg.IncludedColumns()
	if len(cols) > 0 {
		widths := columnWidths(pdf, cols)
		border := ""
		if cfg.ShowGridLines {
			border = "1"
		}

		if cfg.ShowHeaders {
			pdf.SetFont("Helvetica", "B", 8)
			pdf.SetFillColor(230, 230, 230)
			for j, col := range cols {
				pdf.CellFormat(widths[j], 7, tr(col.Header), "1", 0, "C", true, 0, "")
			}
			pdf.Ln(-1)
		}

		pdf.SetFont("Helvetica", "", 8)
		for _, row := range rows {
			for j, col := range cols {
				align := "L"
				if col.Format == "number" || col.Format == "currency" {
					align = "R"
				}
				pdf.CellFormat(widths[j], 6, tr(renderCell(row, col, cfg)), border, 0, align, false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	if cfg.ShowTotals {
		totais := relatorio.CalcularTotais(rows)
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 9)
		resumo := fmt.Sprintf("Peso total: %s   Valor total: %s   Depósitos: %s   Saldo: %s",
			formatNumber(totais.PesoTotal, cfg.NumberFormat),
			formatCurrency(totais.ValorTotal, cfg.CurrencyFormat),
			formatCurrency(totais.DepositoTotal, cfg.CurrencyFormat),
			formatCurrency(totais.Saldo, cfg.CurrencyFormat))
		pdf.CellFormat(0, 7, tr(resumo), "", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExport, err)
	}
	return buf.Bytes(), nil
}

// columnWidths reparte a largura útil da página proporcionalmente às larguras
// configuradas; colunas sem largura entram com peso 1.
func columnWidths(pdf *gofpdf.Fpdf, cols []domain.ExportColumn) []float64 {
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	printable := pageW - left - right

	var sum float64
	weights := make([]float64, len(cols))
	for j, col := range cols {
		w := col.Width
		if w <= 0 {
			w = 1
		}
		weights[j] = w
		sum += w
	}

	widths := make([]float64, len(cols))
	for j := range cols {
		widths[j] = printable * weights[j] / sum
	}
	return widths
}
