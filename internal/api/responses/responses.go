// internal/api/responses/responses.go
package responses

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var logger *zap.Logger

// InitLogger inicializa o logger estruturado global da API.
func InitLogger() {
	l, err := zap.NewProduction()
	if err != nil {
		l = zap.NewNop()
	}
	logger = l
}

// Logger devolve o logger da API; seguro de chamar antes de InitLogger.
func Logger() *zap.Logger {
	if logger == nil {
		InitLogger()
	}
	return logger
}

// Error registra e responde um erro no formato padrão da API. O primeiro
// detalhe, quando presente, vai no campo "details" da resposta; mensagens
// internas nunca vazam stack trace para o cliente.
func Error(c *gin.Context, status int, message string, details ...string) {
	fields := []zap.Field{
		zap.Int("status", status),
		zap.String("path", c.FullPath()),
	}
	for _, d := range details {
		fields = append(fields, zap.String("details", d))
	}
	Logger().Warn(message, fields...)

	payload := gin.H{"error": message}
	if len(details) > 0 {
		payload["details"] = details[0]
	}
	c.JSON(status, payload)
}

// JSON responde uma carga de sucesso.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}
