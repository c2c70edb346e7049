package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, chave := range []string{"PORT", "GIN_MODE", "CORS_ORIGIN", "MAX_UPLOAD_MB"} {
		t.Setenv(chave, "placeholder") // registra a restauração do ambiente
		os.Unsetenv(chave)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, esperava 8080", cfg.Port)
	}
	if cfg.MaxUploadMB != 20 {
		t.Errorf("MaxUploadMB = %d, esperava 20", cfg.MaxUploadMB)
	}
}

func TestLoadDoAmbiente(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MAX_UPLOAD_MB", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if cfg.Port != "9090" || cfg.MaxUploadMB != 5 {
		t.Errorf("configuração do ambiente não aplicada: %+v", cfg)
	}
}
