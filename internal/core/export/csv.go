// internal/core/export/csv.go
package export

import (
	"strings"

	"github.com/LuisEduardoPedra/relatorioAgro/internal/domain"
)

// gerarCSV serializa os registros como texto delimitado: todo campo entre
// aspas duplas (aspas internas dobradas), separador vírgula, linhas terminadas
// em \n. O pacote encoding/csv só aspeia quando necessário, por isso o
// aspeamento incondicional é emitido aqui. Configuração sem colunas degrada
// para documento vazio válido.
func gerarCSV(rows []domain.RelatorioRow, cfg domain.ExportConfig) []byte {
	cols := cfg.IncludedColumns()
	if len(cols) == 0 {
		return []byte{}
	}

	var b strings.Builder
	if cfg.ShowHeaders {
		for i, col := range cols {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(quote(col.Header))
		}
		b.WriteByte('\n')
	}

	for _, row := range rows {
		for i, col := range cols {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(quote(renderCell(row, col, cfg)))
		}
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
