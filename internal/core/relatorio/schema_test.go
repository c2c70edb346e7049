package relatorio

import "testing"

func TestKindOf(t *testing.T) {
	casos := []struct {
		campo    Field
		esperado Kind
	}{
		{FieldEntrega, KindInt},
		{FieldData, KindDate},
		{FieldDataDeposito, KindDate},
		{FieldPeso, KindDecimal},
		{FieldTotal, KindDecimal},
		{FieldDeposito, KindDecimal},
		{FieldTicketRF, KindText},
		{FieldDescricao, KindText},
	}
	for _, caso := range casos {
		if got := KindOf(caso.campo); got != caso.esperado {
			t.Errorf("KindOf(%q) = %v, esperava %v", caso.campo, got, caso.esperado)
		}
	}
}

// TestAliasesApontamParaCamposDoEsquema: todo candidato da tabela padrão de
// aliases precisa existir no esquema, senão a coerção por Kind não o alcança.
func TestAliasesApontamParaCamposDoEsquema(t *testing.T) {
	for alias, candidatos := range DefaultAliases() {
		if len(candidatos) == 0 {
			t.Errorf("alias %q sem campos candidatos", alias)
		}
		for _, f := range candidatos {
			if _, ok := fieldKinds[f]; !ok {
				t.Errorf("alias %q aponta para campo %q fora do esquema", alias, f)
			}
		}
	}
}
