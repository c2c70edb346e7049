// internal/core/export/xlsx.go
package export

import (
	"fmt"
	"strings"

	"github.com/LuisEduardoPedra/relatorioAgro/internal/core/relatorio"
	"github.com/LuisEduardoPedra/relatorioAgro/internal/domain"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Relatorio"

// gerarXLSX monta a pasta de trabalho: título opcional com linha em branco de
// espaçamento, cabeçalho, uma linha por registro e linha de totais sob as
// colunas de peso/valor/depósito. Com dados bancários presentes, anexa o bloco
// rotulado duas linhas abaixo da última linha de dados.
func gerarXLSX(rows []domain.RelatorioRow, cfg domain.ExportConfig) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExport, err)
	}

	cols := cfg.IncludedColumns()
	rowIdx := 1

	if cfg.Title != "" {
		setCell(f, 1, rowIdx, cfg.Title)
		rowIdx += 2 // título + linha em branco
	}

	if cfg.ShowHeaders && len(cols) > 0 {
		for j, col := range cols {
			setCell(f, j+1, rowIdx, col.Header)
		}
		rowIdx++
	}

	styles := columnStyles(f, cfg, cols)
	for _, row := range rows {
		for j, col := range cols {
			if col.Format == "date" {
				setCell(f, j+1, rowIdx, formatDate(plainValue(fieldValue(row, col.Field)), cfg.DateFormat))
				continue
			}
			setCell(f, j+1, rowIdx, fieldValue(row, col.Field))
			applyStyle(f, j+1, rowIdx, styles[j])
		}
		rowIdx++
	}
	lastDataRow := rowIdx - 1

	if cfg.ShowTotals && len(cols) > 0 {
		totais := relatorio.CalcularTotais(rows)
		setCell(f, 1, rowIdx, "Totais")
		for j, col := range cols {
			switch col.Field {
			case "peso":
				setCell(f, j+1, rowIdx, totais.PesoTotal)
			case "total":
				setCell(f, j+1, rowIdx, totais.ValorTotal)
			case "deposito":
				setCell(f, j+1, rowIdx, totais.DepositoTotal)
			default:
				continue
			}
			applyStyle(f, j+1, rowIdx, styles[j])
		}
		lastDataRow = rowIdx
		rowIdx++
	}

	if cfg.Payment != nil {
		writePaymentBlock(f, cfg.Payment, lastDataRow+2)
	}

	for j, col := range cols {
		if col.Width <= 0 {
			continue
		}
		name, err := excelize.ColumnNumberToName(j + 1)
		if err != nil {
			continue
		}
		if err := f.SetColWidth(sheetName, name, name, col.Width); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrExport, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExport, err)
	}
	return buf.Bytes(), nil
}

func writePaymentBlock(f *excelize.File, p *domain.PaymentInfo, start int) {
	labels := []struct {
		label, value string
	}{
		{"Banco", p.Banco},
		{"Agência", p.Agencia},
		{"Conta", p.Conta},
		{"Empresa", p.Empresa},
		{"CNPJ", p.CNPJ},
		{"PIX", p.Pix},
	}
	for i, l := range labels {
		setCell(f, 1, start+i, l.label)
		setCell(f, 2, start+i, l.value)
	}
}

// columnStyles cria um estilo numérico por coluna number/currency, para que a
// planilha use os mesmos formatos configurados das outras formas de exportação.
// Códigos de formato do Excel sempre usam vírgula para milhar e ponto para
// decimal; quem renderiza os separadores do locale é o visualizador.
func columnStyles(f *excelize.File, cfg domain.ExportConfig, cols []domain.ExportColumn) map[int]int {
	styles := make(map[int]int)
	for j, col := range cols {
		var code string
		switch col.Format {
		case "number":
			code = excelNumberFormat(cfg.NumberFormat)
		case "currency":
			code = excelCurrencyFormat(cfg.CurrencyFormat)
		default:
			continue
		}
		id, err := f.NewStyle(&excelize.Style{CustomNumFmt: &code})
		if err != nil {
			continue
		}
		styles[j] = id
	}
	return styles
}

func excelNumberFormat(pattern string) string {
	switch pattern {
	case "0.00", "0,00":
		return "0.00"
	default:
		return "#,##0.00"
	}
}

func excelCurrencyFormat(pattern string) string {
	if pattern == "" {
		pattern = "R$ #,##0.00"
	}
	idx := strings.IndexAny(pattern, "#0")
	if idx <= 0 {
		return excelNumberFormat(pattern)
	}
	symbol := strings.TrimSpace(pattern[:idx])
	return `"` + symbol + `" ` + excelNumberFormat(pattern[idx:])
}

func applyStyle(f *excelize.File, col, row, style int) {
	if style == 0 {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return
	}
	_ = f.SetCellStyle(sheetName, cell, cell, style)
}

func setCell(f *excelize.File, col, row int, value any) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return
	}
	_ = f.SetCellValue(sheetName, cell, value)
}
