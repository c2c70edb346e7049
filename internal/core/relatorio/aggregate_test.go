package relatorio

import (
	"testing"

	"github.com/LuisEduardoPedra/relatorioAgro/internal/domain"
)

func TestCalcularTotais(t *testing.T) {
	rows := []domain.RelatorioRow{
		{Peso: 62.25, Total: 28102.50, Deposito: 100000.00},
		{Peso: 64.73, Total: 29128.50, Deposito: 32268.50},
	}

	totais := CalcularTotais(rows)

	if totais.PesoTotal != 126.98 {
		t.Errorf("PesoTotal = %v, esperava 126.98", totais.PesoTotal)
	}
	if totais.ValorTotal != 57231.00 {
		t.Errorf("ValorTotal = %v, esperava 57231.00", totais.ValorTotal)
	}
	if totais.DepositoTotal != 132268.50 {
		t.Errorf("DepositoTotal = %v, esperava 132268.50", totais.DepositoTotal)
	}
	if totais.Saldo != -75037.50 {
		t.Errorf("Saldo = %v, esperava -75037.50", totais.Saldo)
	}
}

// TestCalcularTotaisVazio: conjunto vazio devolve todos os totais em zero,
// nunca NaN nem pânico.
func TestCalcularTotaisVazio(t *testing.T) {
	totais := CalcularTotais(nil)
	if totais.PesoTotal != 0 || totais.ValorTotal != 0 || totais.DepositoTotal != 0 || totais.Saldo != 0 {
		t.Errorf("totais de conjunto vazio deveriam ser zero: %+v", totais)
	}
}

// TestCalcularTotaisNaoRecalculaTotal: Total vem da planilha e pode divergir
// de preco*peso; o agregador soma o valor fornecido sem reconciliar.
func TestCalcularTotaisNaoRecalculaTotal(t *testing.T) {
	rows := []domain.RelatorioRow{
		{Peso: 10, Preco: 100, Total: 55.55},
	}
	totais := CalcularTotais(rows)
	if totais.ValorTotal != 55.55 {
		t.Errorf("ValorTotal = %v, esperava o Total fornecido 55.55", totais.ValorTotal)
	}
}
