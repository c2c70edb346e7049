// internal/domain/errors.go
package domain

import "errors"

// Erros estruturais do pipeline de importação/exportação.
// Falhas de coerção em células individuais nunca viram erro: degradam para o
// valor default do campo. Apenas falhas estruturais chegam ao chamador.
var (
	// ErrFileRead indica que os bytes do arquivo não puderam ser lidos.
	ErrFileRead = errors.New("falha ao ler o arquivo enviado")

	// ErrUnsupportedFormat indica que os bytes não são uma planilha reconhecida (.xls ou .xlsx).
	ErrUnsupportedFormat = errors.New("formato de arquivo não suportado")

	// ErrHeaderNotFound indica que nenhuma linha da planilha contém um cabeçalho conhecido.
	ErrHeaderNotFound = errors.New("linha de cabeçalho não encontrada na planilha")

	// ErrExport indica falha na geração de um artefato de exportação.
	ErrExport = errors.New("falha ao gerar o arquivo de exportação")
)
