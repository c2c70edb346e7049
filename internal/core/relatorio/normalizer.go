// internal/core/relatorio/normalizer.go
package relatorio

import (
	"strconv"
	"strings"
	"time"

	"github.com/LuisEduardoPedra/relatorioAgro/internal/domain"
)

// Offset entre o serial de data de planilha e o epoch Unix, em dias.
const serialEpochOffsetDays = 25568

var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
	time.RFC3339,
}

// NormalizeRow converte uma linha bruta em um RelatorioRow totalmente
// preenchido usando o mapeamento posicional do resolver. Devolve ok=false para
// linhas em branco (toda célula nula ou vazia), que não produzem registro.
// Células malformadas nunca geram erro: degradam para o default do campo.
func NormalizeRow(cells []any, cols []Field) (domain.RelatorioRow, bool) {
	if isBlankRow(cells) {
		return domain.RelatorioRow{}, false
	}
	var row domain.RelatorioRow
	for i, f := range cols {
		if f == FieldIgnorado || i >= len(cells) {
			continue
		}
		setField(&row, f, cells[i])
	}
	return row, true
}

func isBlankRow(cells []any) bool {
	for _, cell := range cells {
		if cell == nil {
			continue
		}
		if s, ok := cell.(string); ok {
			if strings.TrimSpace(s) == "" {
				continue
			}
		}
		return false
	}
	return true
}

// setField grava a célula no campo de destino escolhendo a conversão pelo tipo
// declarado do campo no esquema: uma função de coerção por Kind.
func setField(row *domain.RelatorioRow, f Field, cell any) {
	switch KindOf(f) {
	case KindInt:
		if p := intPtr(row, f); p != nil {
			*p = coerceInt(cell)
		}
	case KindDecimal:
		if p := decimalPtr(row, f); p != nil {
			*p = coerceDecimal(cell)
		}
	case KindDate:
		if p := stringPtr(row, f); p != nil {
			*p = coerceDate(cell)
		}
	default:
		if p := stringPtr(row, f); p != nil {
			*p = coerceText(cell)
		}
	}
}

func intPtr(row *domain.RelatorioRow, f Field) *int {
	if f == FieldEntrega {
		return &row.Entrega
	}
	return nil
}

func decimalPtr(row *domain.RelatorioRow, f Field) *float64 {
	switch f {
	case FieldPesoRF:
		return &row.PesoRF
	case FieldPeso:
		return &row.Peso
	case FieldPreco:
		return &row.Preco
	case FieldTotal:
		return &row.Total
	case FieldDeposito:
		return &row.Deposito
	default:
		return nil
	}
}

func stringPtr(row *domain.RelatorioRow, f Field) *string {
	switch f {
	case FieldData:
		return &row.Data
	case FieldNF:
		return &row.NF
	case FieldPlaca:
		return &row.Placa
	case FieldMotorista:
		return &row.Motorista
	case FieldFaturado:
		return &row.Faturado
	case FieldFazEntregue:
		return &row.FazEntregue
	case FieldTicketRF:
		return &row.TicketRF
	case FieldTicket:
		return &row.Ticket
	case FieldDataDeposito:
		return &row.DataDeposito
	case FieldDescricao:
		return &row.Descricao
	default:
		return nil
	}
}

func cellText(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func coerceText(cell any) string {
	return strings.TrimSpace(cellText(cell))
}

func coerceInt(cell any) int {
	switch v := cell.(type) {
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// coerceDecimal interpreta números no formato brasileiro: remove símbolo de
// moeda e pontos de milhar e troca a vírgula decimal por ponto. Valores já
// numéricos são usados como estão; texto que não parseia vira 0.
func coerceDecimal(cell any) float64 {
	if v, ok := cell.(float64); ok {
		return v
	}
	s := strings.TrimSpace(cellText(cell))
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, "R$", "")
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return val
}

// coerceDate aceita serial de planilha (convertido pelo offset de epoch e
// renderizado como YYYY-MM-DD), texto de data em layouts conhecidos
// (re-renderizado como YYYY-MM-DD) ou, em último caso, devolve o texto
// original inalterado.
func coerceDate(cell any) string {
	if v, ok := cell.(float64); ok {
		return serialToISO(v)
	}
	s := strings.TrimSpace(cellText(cell))
	if s == "" {
		return ""
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		return serialToISO(serial)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return cellText(cell)
}

func serialToISO(serial float64) string {
	secs := int64((serial - serialEpochOffsetDays) * 86400)
	return time.Unix(secs, 0).UTC().Format("2006-01-02")
}
