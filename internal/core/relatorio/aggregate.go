// internal/core/relatorio/aggregate.go
package relatorio

import (
	"math"

	"github.com/LuisEduardoPedra/relatorioAgro/internal/domain"
)

// CalcularTotais computa os agregados de um conjunto de linhas como um fold
// puro, sempre do zero. Conjunto vazio devolve todos os totais em 0. O campo
// Total de cada linha é somado como veio da planilha; nunca é recalculado a
// partir de preco*peso.
func CalcularTotais(rows []domain.RelatorioRow) domain.Totais {
	var totais domain.Totais
	for _, row := range rows {
		totais.PesoTotal += row.Peso
		totais.ValorTotal += row.Total
		totais.DepositoTotal += row.Deposito
	}
	totais.PesoTotal = round(totais.PesoTotal, 2)
	totais.ValorTotal = round(totais.ValorTotal, 2)
	totais.DepositoTotal = round(totais.DepositoTotal, 2)
	totais.Saldo = round(totais.ValorTotal-totais.DepositoTotal, 2)
	return totais
}

func round(val float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(val*pow) / pow
}
