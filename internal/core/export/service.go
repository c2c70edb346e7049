// internal/core/export/service.go
package export

import (
	"github.com/LuisEduardoPedra/relatorioAgro/internal/domain"
)

// MIME types dos artefatos gerados.
const (
	MIMECSV  = "text/csv;charset=utf-8"
	MIMEXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MIMEPDF  = "application/pdf"
)

// Service define a interface do serviço de exportação. As três formas de saída
// compartilham a mesma configuração de colunas e formatos, de modo que os
// artefatos ficam consistentes entre si. Cada chamada é stateless: dado o
// mesmo par (registros, configuração), a saída é a mesma.
type Service interface {
	GerarCSV(rows []domain.RelatorioRow, cfg domain.ExportConfig) ([]byte, error)
	GerarXLSX(rows []domain.RelatorioRow, cfg domain.ExportConfig) ([]byte, error)
	GerarPDF(rows []domain.RelatorioRow, cfg domain.ExportConfig) ([]byte, error)
}

type service struct{}

// NewService cria uma nova instância do serviço de exportação.
func NewService() Service {
	return &service{}
}

func (svc *service) GerarCSV(rows []domain.RelatorioRow, cfg domain.ExportConfig) ([]byte, error) {
	return gerarCSV(rows, cfg), nil
}

func (svc *service) GerarXLSX(rows []domain.RelatorioRow, cfg domain.ExportConfig) ([]byte, error) {
	return gerarXLSX(rows, cfg)
}

func (svc *service) GerarPDF(rows []domain.RelatorioRow, cfg domain.ExportConfig) ([]byte, error) {
	return gerarPDF(rows, cfg)
}
