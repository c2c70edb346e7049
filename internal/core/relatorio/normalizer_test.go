package relatorio

import (
	"reflect"
	"testing"
)

func cenarioCols() []Field {
	return []Field{
		FieldEntrega, FieldData, FieldNF, FieldPlaca, FieldMotorista, FieldFaturado,
		FieldFazEntregue, FieldTicketRF, FieldPesoRF, FieldTicket, FieldPeso,
		FieldPreco, FieldTotal, FieldDeposito, FieldDataDeposito, FieldDescricao,
	}
}

func cenarioCells() []any {
	return []any{
		1.0, "2024-03-25", "QZN2129", "ABC1234", "LEANDRO", "EMILIO PALUDO",
		"SERRA DA PRATA", "RF-5.607", "62,250", "T-1234", "62,250",
		"5450,00", "28102,50", "100000,00", "2024-03-27", "FERTILIZANTES",
	}
}

// TestNormalizeRowCenarioCompleto cobre a linha de referência do relatório:
// números em formato brasileiro, datas ISO e campos de texto com pontuação.
func TestNormalizeRowCenarioCompleto(t *testing.T) {
	row, ok := NormalizeRow(cenarioCells(), cenarioCols())
	if !ok {
		t.Fatal("linha válida foi descartada")
	}

	if row.Entrega != 1 {
		t.Errorf("Entrega = %d, esperava 1", row.Entrega)
	}
	if row.Data != "2024-03-25" {
		t.Errorf("Data = %q, esperava 2024-03-25", row.Data)
	}
	if row.Peso != 62.25 {
		t.Errorf("Peso = %v, esperava 62.25", row.Peso)
	}
	if row.PesoRF != 62.25 {
		t.Errorf("PesoRF = %v, esperava 62.25", row.PesoRF)
	}
	if row.Preco != 5450.00 {
		t.Errorf("Preco = %v, esperava 5450.00", row.Preco)
	}
	if row.Total != 28102.50 {
		t.Errorf("Total = %v, esperava 28102.50", row.Total)
	}
	if row.Deposito != 100000.00 {
		t.Errorf("Deposito = %v, esperava 100000.00", row.Deposito)
	}
	if row.DataDeposito != "2024-03-27" {
		t.Errorf("DataDeposito = %q, esperava 2024-03-27", row.DataDeposito)
	}
	if row.Descricao != "FERTILIZANTES" {
		t.Errorf("Descricao = %q, esperava FERTILIZANTES", row.Descricao)
	}
	// Ticket é texto: "RF-5.607" não pode ser coagido como número.
	if row.TicketRF != "RF-5.607" {
		t.Errorf("TicketRF = %q, esperava RF-5.607", row.TicketRF)
	}
}

// TestNormalizeRowIdempotente: normalizar a mesma linha duas vezes produz
// registros idênticos (nenhum estado mutável escondido).
func TestNormalizeRowIdempotente(t *testing.T) {
	a, _ := NormalizeRow(cenarioCells(), cenarioCols())
	b, _ := NormalizeRow(cenarioCells(), cenarioCols())
	if !reflect.DeepEqual(a, b) {
		t.Errorf("normalização não idempotente:\n%+v\n%+v", a, b)
	}
}

func TestNormalizeRowLinhaEmBranco(t *testing.T) {
	casos := [][]any{
		{nil, nil, nil},
		{"", "  ", nil},
		{},
	}
	for _, cells := range casos {
		if _, ok := NormalizeRow(cells, cenarioCols()); ok {
			t.Errorf("linha em branco %v produziu registro", cells)
		}
	}
}

// TestNormalizeRowDefaults: campo ausente do mapeamento (ou célula faltando na
// linha) sai com o default do seu tipo, nunca indefinido.
func TestNormalizeRowDefaults(t *testing.T) {
	cols := []Field{FieldPeso, FieldDescricao}

	t.Run("Descrição ausente", func(t *testing.T) {
		row, ok := NormalizeRow([]any{"62,250"}, cols)
		if !ok {
			t.Fatal("linha válida foi descartada")
		}
		if row.Descricao != "" {
			t.Errorf("Descricao = %q, esperava vazia", row.Descricao)
		}
		if row.Peso != 62.25 {
			t.Errorf("Peso = %v, esperava 62.25", row.Peso)
		}
	})

	t.Run("Campos fora do mapeamento", func(t *testing.T) {
		row, _ := NormalizeRow([]any{"62,250", "ADUBO"}, cols)
		if row.Entrega != 0 || row.Total != 0 || row.Data != "" || row.NF != "" {
			t.Errorf("campos não mapeados deveriam sair com default: %+v", row)
		}
	})
}

func TestCoerceDecimal(t *testing.T) {
	casos := []struct {
		entrada  any
		esperado float64
	}{
		{62.25, 62.25},
		{"62,250", 62.25},
		{"1.234,56", 1234.56},
		{"R$ 5450,00", 5450.0},
		{"$ 10,00", 10.0},
		{"", 0},
		{nil, 0},
		{"abc", 0},
	}
	for _, caso := range casos {
		if got := coerceDecimal(caso.entrada); got != caso.esperado {
			t.Errorf("coerceDecimal(%v) = %v, esperava %v", caso.entrada, got, caso.esperado)
		}
	}
}

func TestCoerceInt(t *testing.T) {
	casos := []struct {
		entrada  any
		esperado int
	}{
		{1.0, 1},
		{"7", 7},
		{"", 0},
		{"x", 0},
		{nil, 0},
	}
	for _, caso := range casos {
		if got := coerceInt(caso.entrada); got != caso.esperado {
			t.Errorf("coerceInt(%v) = %d, esperava %d", caso.entrada, got, caso.esperado)
		}
	}
}

func TestCoerceDate(t *testing.T) {
	casos := []struct {
		nome     string
		entrada  any
		esperado string
	}{
		{"ISO passa re-renderizada", "2024-03-25", "2024-03-25"},
		{"dd/MM/yyyy vira ISO", "25/03/2024", "2024-03-25"},
		{"serial numérico no offset do epoch", 25568.0, "1970-01-01"},
		{"serial numérico dia seguinte", 25569.0, "1970-01-02"},
		{"serial em texto", "45375", "2024-03-25"},
		{"texto não-data passa inalterado", "amanhã", "amanhã"},
		{"vazio vira vazio", "", ""},
		{"nulo vira vazio", nil, ""},
	}
	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			if got := coerceDate(caso.entrada); got != caso.esperado {
				t.Errorf("coerceDate(%v) = %q, esperava %q", caso.entrada, got, caso.esperado)
			}
		})
	}
}
