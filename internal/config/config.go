// internal/config/config.go
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config agrupa a configuração do servidor, lida do ambiente.
type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	GinMode     string `envconfig:"GIN_MODE" default:"release"`
	CORSOrigin  string `envconfig:"CORS_ORIGIN" default:"*"`
	MaxUploadMB int64  `envconfig:"MAX_UPLOAD_MB" default:"20"`
}

// Load processa as variáveis de ambiente e devolve a configuração.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("falha ao carregar configuração do ambiente: %w", err)
	}
	return cfg, nil
}
