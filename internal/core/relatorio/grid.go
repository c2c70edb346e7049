// internal/core/relatorio/grid.go
package relatorio

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/LuisEduardoPedra/relatorioAgro/internal/domain"
	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
)

// LoadGrid materializa a primeira aba de uma planilha (.xlsx ou .xls) como uma
// grade de células em memória. Células numéricas viram float64, as demais
// ficam como string; células vazias viram nil.
func LoadGrid(file io.Reader, filename string) ([][]any, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFileRead, err)
	}

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".xlsx":
		return loadXLSXGrid(data)
	case ".xls":
		return loadXLSGrid(data)
	default:
		return nil, fmt.Errorf("%w: extensão %q", domain.ErrUnsupportedFormat, ext)
	}
}

func loadXLSXGrid(data []byte) ([][]any, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnsupportedFormat, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: planilha sem abas", domain.ErrUnsupportedFormat)
	}

	// RawCellValue preserva o serial de datas e o ponto decimal canônico das
	// células numéricas, em vez do valor formatado pela planilha.
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFileRead, err)
	}

	grid := make([][]any, len(rows))
	for i, row := range rows {
		cells := make([]any, len(row))
		for j, cell := range row {
			cells[j] = classifyCell(cell)
		}
		grid[i] = cells
	}
	return grid, nil
}

func loadXLSGrid(data []byte) ([][]any, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		// Alguns sistemas exportam .xlsx com extensão .xls; tenta o outro
		// container antes de desistir.
		if grid, errX := loadXLSXGrid(data); errX == nil {
			return grid, nil
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrUnsupportedFormat, err)
	}

	sheets := workbook.GetSheets()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: planilha sem abas", domain.ErrUnsupportedFormat)
	}

	var grid [][]any
	for _, row := range sheets[0].GetRows() {
		var cells []any
		for _, cell := range row.GetCols() {
			cells = append(cells, classifyCell(cell.GetString()))
		}
		grid = append(grid, cells)
	}
	return grid, nil
}

// classifyCell decide o tipo em memória de uma célula: vazio → nil, número em
// forma canônica (ponto decimal) → float64, resto → string. Texto com vírgula
// decimal ("62,250") permanece string e é coagido pelo normalizador.
func classifyCell(raw string) any {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	return raw
}
