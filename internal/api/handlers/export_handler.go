// internal/api/handlers/export_handler.go
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/LuisEduardoPedra/relatorioAgro/internal/api/responses"
	"github.com/LuisEduardoPedra/relatorioAgro/internal/core/export"
	"github.com/LuisEduardoPedra/relatorioAgro/internal/domain"
	"github.com/gin-gonic/gin"
)

// ExportHandler lida com a geração dos artefatos de exportação.
type ExportHandler struct {
	service export.Service
}

// NewExportHandler cria um novo handler de exportação.
func NewExportHandler(service export.Service) *ExportHandler {
	return &ExportHandler{
		service: service,
	}
}

type exportRequest struct {
	Registros []domain.RelatorioRow `json:"registros"`
	Config    domain.ExportConfig   `json:"config"`
}

// HandleCSV gera o texto delimitado com a projeção de colunas configurada.
func (h *ExportHandler) HandleCSV(c *gin.Context) {
	h.handle(c, "csv", export.MIMECSV, h.service.GerarCSV)
}

// HandleXLSX gera a pasta de trabalho.
func (h *ExportHandler) HandleXLSX(c *gin.Context) {
	h.handle(c, "xlsx", export.MIMEXLSX, h.service.GerarXLSX)
}

// HandlePDF gera o documento paginado para impressão.
func (h *ExportHandler) HandlePDF(c *gin.Context) {
	h.handle(c, "pdf", export.MIMEPDF, h.service.GerarPDF)
}

func (h *ExportHandler) handle(c *gin.Context, ext, mime string, gerar func([]domain.RelatorioRow, domain.ExportConfig) ([]byte, error)) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, "Corpo da requisição inválido", err.Error())
		return
	}

	data, err := gerar(req.Registros, req.Config)
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Erro ao gerar o arquivo de exportação", err.Error())
		return
	}

	fileName := fmt.Sprintf("Relatorio_%s.%s", time.Now().Format("20060102_150405"), ext)
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Data(http.StatusOK, mime, data)
}
