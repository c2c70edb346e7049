// internal/core/relatorio/resolver.go
package relatorio

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/LuisEduardoPedra/relatorioAgro/internal/domain"
	"github.com/schollz/closestmatch"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// HeaderResolver localiza a linha de cabeçalho de uma planilha e produz o
// mapeamento posicional coluna → campo canônico. A tabela de aliases é
// injetada na construção e tratada como imutável.
type HeaderResolver struct {
	aliases AliasTable
	cm      *closestmatch.ClosestMatch
}

// NewHeaderResolver cria um resolver sobre a tabela de aliases fornecida.
// O índice de proximidade sobre os aliases é montado uma única vez aqui.
func NewHeaderResolver(aliases AliasTable) *HeaderResolver {
	keys := make([]string, 0, len(aliases))
	for k := range aliases {
		keys = append(keys, k)
	}
	r := &HeaderResolver{aliases: aliases}
	if len(keys) > 0 {
		r.cm = closestmatch.New(keys, []int{2, 3})
	}
	return r
}

// normalizeHeader reduz um cabeçalho à forma usada no match de alias:
// decomposição NFD com remoção de marcas combinantes, minúsculas e apenas
// letras minúsculas e dígitos.
func normalizeHeader(str string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(func(r rune) bool {
		return unicode.Is(unicode.Mn, r)
	}))
	decomposed, _, _ := transform.String(t, str)
	var b strings.Builder
	for _, r := range strings.ToLower(decomposed) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Resolve varre a grade de cima para baixo e devolve o índice da linha de
// cabeçalho e o mapeamento posicional de cada coluna. A primeira linha com ao
// menos uma célula cujo normalizado bate exatamente com um alias é o cabeçalho;
// colunas sem alias ficam como FieldIgnorado. Se nenhuma linha qualificar,
// devolve domain.ErrHeaderNotFound — o pipeline nunca chuta um cabeçalho.
func (r *HeaderResolver) Resolve(grid [][]any) (int, []Field, error) {
	for i, row := range grid {
		if !r.rowHasKnownHeader(row) {
			continue
		}
		return i, r.mapColumns(row), nil
	}
	return 0, nil, r.headerNotFound(grid)
}

func (r *HeaderResolver) rowHasKnownHeader(row []any) bool {
	for _, cell := range row {
		if _, ok := r.aliases[normalizeHeader(cellText(cell))]; ok {
			return true
		}
	}
	return false
}

// mapColumns aplica a regra de cascata para cabeçalhos duplicados: a primeira
// ocorrência de um alias reivindica o primeiro candidato livre da sua lista,
// ocorrências seguintes pegam o próximo candidato ainda não reivindicado.
func (r *HeaderResolver) mapColumns(row []any) []Field {
	cols := make([]Field, len(row))
	claimed := make(map[Field]bool)
	for i, cell := range row {
		cols[i] = FieldIgnorado
		candidates, ok := r.aliases[normalizeHeader(cellText(cell))]
		if !ok {
			continue
		}
		for _, f := range candidates {
			if !claimed[f] {
				claimed[f] = true
				cols[i] = f
				break
			}
		}
	}
	return cols
}

// headerNotFound monta o erro estrutural incluindo, quando possível, o alias
// conhecido mais próximo do melhor candidato a cabeçalho encontrado, para que a
// mensagem ao usuário seja acionável.
func (r *HeaderResolver) headerNotFound(grid [][]any) error {
	if r.cm == nil {
		return domain.ErrHeaderNotFound
	}
	for _, row := range grid {
		for _, cell := range row {
			raw := strings.TrimSpace(cellText(cell))
			key := normalizeHeader(raw)
			if key == "" {
				continue
			}
			if match := r.cm.Closest(key); match != "" {
				return fmt.Errorf("%w (coluna %q não reconhecida; alias mais próximo: %q)",
					domain.ErrHeaderNotFound, raw, match)
			}
		}
	}
	return domain.ErrHeaderNotFound
}
