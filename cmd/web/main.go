// cmd/web/main.go
package main

import (
	"log"

	"github.com/LuisEduardoPedra/relatorioAgro/internal/api/handlers"
	"github.com/LuisEduardoPedra/relatorioAgro/internal/api/responses"
	"github.com/LuisEduardoPedra/relatorioAgro/internal/config"
	"github.com/LuisEduardoPedra/relatorioAgro/internal/core/export"
	"github.com/LuisEduardoPedra/relatorioAgro/internal/core/relatorio"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	responses.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Falha ao carregar configuração: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	relatorioService := relatorio.NewService()
	exportService := export.NewService()
	relatorioHandler := handlers.NewRelatorioHandler(relatorioService)
	exportHandler := handlers.NewExportHandler(exportService)

	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxUploadMB << 20
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.CORSOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/relatorios/importar", relatorioHandler.HandleImportar)
		apiV1.POST("/relatorios/exportar/csv", exportHandler.HandleCSV)
		apiV1.POST("/relatorios/exportar/xlsx", exportHandler.HandleXLSX)
		apiV1.POST("/relatorios/exportar/pdf", exportHandler.HandlePDF)
	}
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})

	responses.Logger().Info("🚀 Servidor iniciado", zap.String("porta", cfg.Port))

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Falha ao iniciar o servidor: ", err)
	}
}
