// internal/api/handlers/relatorio_handler.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/LuisEduardoPedra/relatorioAgro/internal/api/responses"
	"github.com/LuisEduardoPedra/relatorioAgro/internal/core/relatorio"
	"github.com/LuisEduardoPedra/relatorioAgro/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RelatorioHandler lida com as requisições de importação de planilhas.
type RelatorioHandler struct {
	service relatorio.Service
}

// NewRelatorioHandler cria um novo handler de importação.
func NewRelatorioHandler(service relatorio.Service) *RelatorioHandler {
	return &RelatorioHandler{
		service: service,
	}
}

// HandleImportar recebe a planilha (.xlsx ou .xls), executa o pipeline de
// importação e responde os registros normalizados com os totais. Em falha
// estrutural nada é respondido além do erro: o conjunto anterior do cliente
// permanece intacto.
func (h *RelatorioHandler) HandleImportar(c *gin.Context) {
	jobID := uuid.NewString()

	fileHeader, err := c.FormFile("arquivo")
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Arquivo da planilha não encontrado ou inválido")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		responses.Error(c, http.StatusInternalServerError, "Não foi possível abrir o arquivo enviado")
		return
	}
	defer file.Close()

	registros, err := h.service.ImportarPlanilha(file, fileHeader.Filename)
	if err != nil {
		status := http.StatusInternalServerError
		msg := "Erro ao processar a planilha"
		switch {
		case errors.Is(err, domain.ErrUnsupportedFormat):
			status = http.StatusBadRequest
			msg = "Formato de arquivo inválido"
		case errors.Is(err, domain.ErrHeaderNotFound):
			status = http.StatusBadRequest
			msg = "Formato de arquivo inválido: linha de cabeçalho não encontrada"
		}
		responses.Error(c, status, msg, err.Error())
		return
	}

	// Upload abandonado: o cliente já desistiu desta leitura, não responde
	// resultado obsoleto.
	if c.Request.Context().Err() != nil {
		return
	}

	totais := relatorio.CalcularTotais(registros)
	responses.Logger().Info("planilha importada",
		zap.String("job_id", jobID),
		zap.String("arquivo", fileHeader.Filename),
		zap.Int("registros", len(registros)))

	responses.JSON(c, http.StatusOK, gin.H{
		"jobId":     jobID,
		"registros": registros,
		"totais":    totais,
	})
}
