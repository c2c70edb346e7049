// internal/core/relatorio/service.go
package relatorio

import (
	"io"

	"github.com/LuisEduardoPedra/relatorioAgro/internal/domain"
)

// Service define a interface do serviço de importação de relatórios.
type Service interface {
	ImportarPlanilha(file io.Reader, filename string) ([]domain.RelatorioRow, error)
}

type service struct {
	resolver *HeaderResolver
}

// NewService cria o serviço de importação com a tabela de aliases padrão.
func NewService() Service {
	return NewServiceWithAliases(DefaultAliases())
}

// NewServiceWithAliases permite injetar uma tabela de aliases própria.
func NewServiceWithAliases(aliases AliasTable) Service {
	return &service{resolver: NewHeaderResolver(aliases)}
}

// ImportarPlanilha executa o pipeline completo: leitura da grade, resolução do
// cabeçalho e normalização linha a linha. As linhas de saída preservam a ordem
// do arquivo; linhas em branco não produzem registro. Uma falha estrutural
// (arquivo ilegível, formato desconhecido, cabeçalho ausente) devolve erro sem
// resultado parcial.
func (s *service) ImportarPlanilha(file io.Reader, filename string) ([]domain.RelatorioRow, error) {
	grid, err := LoadGrid(file, filename)
	if err != nil {
		return nil, err
	}

	headerIdx, cols, err := s.resolver.Resolve(grid)
	if err != nil {
		return nil, err
	}

	var registros []domain.RelatorioRow
	for _, cells := range grid[headerIdx+1:] {
		if row, ok := NormalizeRow(cells, cols); ok {
			registros = append(registros, row)
		}
	}
	return registros, nil
}
