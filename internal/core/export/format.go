// internal/core/export/format.go
package export

import (
	"strconv"
	"strings"
	"time"

	"github.com/LuisEduardoPedra/relatorioAgro/internal/domain"
)

// Padrões de data reconhecidos na configuração, mapeados para layouts Go.
var dateLayouts = map[string]string{
	"dd/MM/yyyy": "02/01/2006",
	"MM/dd/yyyy": "01/02/2006",
	"yyyy-MM-dd": "2006-01-02",
}

// fieldValue devolve o valor nativo de um campo do registro pelo nome usado na
// configuração de exportação. Campo desconhecido devolve string vazia.
func fieldValue(row domain.RelatorioRow, field string) any {
	switch field {
	case "entrega":
		return row.Entrega
	case "data":
		return row.Data
	case "nf":
		return row.NF
	case "placa":
		return row.Placa
	case "motorista":
		return row.Motorista
	case "faturado":
		return row.Faturado
	case "fazEntregue":
		return row.FazEntregue
	case "ticketRF":
		return row.TicketRF
	case "pesoRF":
		return row.PesoRF
	case "ticket":
		return row.Ticket
	case "peso":
		return row.Peso
	case "preco":
		return row.Preco
	case "total":
		return row.Total
	case "deposito":
		return row.Deposito
	case "dataDeposito":
		return row.DataDeposito
	case "descricao":
		return row.Descricao
	default:
		return ""
	}
}

// renderCell aplica à célula o formato da coluna, usando os padrões globais da
// configuração. Colunas sem formato saem no valor cru.
func renderCell(row domain.RelatorioRow, col domain.ExportColumn, cfg domain.ExportConfig) string {
	value := fieldValue(row, col.Field)
	switch col.Format {
	case "date":
		return formatDate(plainValue(value), cfg.DateFormat)
	case "number":
		return formatNumber(toFloat(value), cfg.NumberFormat)
	case "currency":
		return formatCurrency(toFloat(value), cfg.CurrencyFormat)
	default:
		return plainValue(value)
	}
}

func plainValue(value any) string {
	switch v := value.(type) {
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	default:
		return ""
	}
}

func toFloat(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

// formatDate re-renderiza uma data ISO no padrão configurado; entrada que não
// parseia (ou padrão desconhecido) passa inalterada.
func formatDate(iso, pattern string) string {
	layout, ok := dateLayouts[pattern]
	if !ok || iso == "" {
		return iso
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format(layout)
}

// splitNumberPattern extrai do padrão os separadores de milhar e decimal e a
// quantidade de casas. Padrões suportados: "#,##0.00", "#.##0,00", "0.00", "0,00".
func splitNumberPattern(pattern string) (group, dec string, decimals int) {
	dec = "."
	zero := strings.IndexByte(pattern, '0')
	if i := strings.LastIndexAny(pattern, ".,"); i > zero && zero >= 0 {
		dec = string(pattern[i])
		decimals = len(pattern) - i - 1
	}
	if strings.Contains(pattern, "#,#") {
		group = ","
	} else if strings.Contains(pattern, "#.#") {
		group = "."
	}
	return group, dec, decimals
}

func formatNumber(v float64, pattern string) string {
	if pattern == "" {
		pattern = "#,##0.00"
	}
	group, dec, decimals := splitNumberPattern(pattern)

	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i+1:]
	}
	if group != "" {
		intPart = groupThousands(intPart, group)
	}
	out := intPart
	if decimals > 0 {
		out += dec + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}

func groupThousands(digits, sep string) string {
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// formatCurrency separa o símbolo (tudo antes do primeiro '#' ou '0') do padrão
// numérico e delega a este o restante.
func formatCurrency(v float64, pattern string) string {
	if pattern == "" {
		pattern = "R$ #,##0.00"
	}
	idx := strings.IndexAny(pattern, "#0")
	if idx < 0 {
		return formatNumber(v, "#,##0.00")
	}
	return pattern[:idx] + formatNumber(v, pattern[idx:])
}
