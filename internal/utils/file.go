package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// LerArquivo lê um arquivo e retorna seu conteúdo
func LerArquivo(nomeArquivo string) (string, error) {
	bytesConteudo, err := os.ReadFile(nomeArquivo)
	if err != nil {
		return "", NovoErro("erro ao ler arquivo", err.Error())
	}
	return string(bytesConteudo), nil
}

// EscreverArquivo escreve conteúdo em um arquivo
func EscreverArquivo(nomeArquivo string, conteudo string) error {
	// Cria o diretório se não existir
	diretorio := filepath.Dir(nomeArquivo)
	if err := os.MkdirAll(diretorio, 0755); err != nil {
		return NovoErro("erro ao criar diretório", err.Error())
	}

	if err := os.WriteFile(nomeArquivo, []byte(conteudo), 0644); err != nil {
		return NovoErro("erro ao escrever arquivo", err.Error())
	}

	return nil
}

// NomeBase retorna o nome do arquivo sem diretório e sem extensão
func NomeBase(nomeArquivo string) string {
	base := filepath.Base(nomeArquivo)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
