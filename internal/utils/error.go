package utils

import (
	"fmt"
	"strings"
)

// CompilerError representa um erro do compilador fora da análise do código
// (leitura e escrita de arquivos, configuração)
type CompilerError struct {
	Mensagem string // Mensagem de erro
	Detalhes string // Detalhes adicionais do erro
}

// Error implementa a interface error
func (e *CompilerError) Error() string {
	if e.Detalhes != "" {
		return e.Mensagem + ": " + e.Detalhes
	}
	return e.Mensagem
}

// NovoErro cria um novo erro do compilador
func NovoErro(mensagem string, detalhes string) *CompilerError {
	return &CompilerError{
		Mensagem: mensagem,
		Detalhes: detalhes,
	}
}

// SyntaxError é o único erro de compilação reportado ao chamador. Carrega a
// posição do token onde a análise parou.
type SyntaxError struct {
	Mensagem string // Mensagem de erro
	Linha    int    // Linha onde ocorreu o erro
	Coluna   int    // Coluna onde ocorreu o erro
	Detalhes string // O que era esperado e o que foi encontrado
}

// Error implementa a interface error
func (e *SyntaxError) Error() string {
	var builder strings.Builder
	builder.WriteString(e.Mensagem)
	if e.Linha > 0 && e.Coluna > 0 {
		fmt.Fprintf(&builder, " em linha %d, coluna %d", e.Linha, e.Coluna)
	}
	if e.Detalhes != "" {
		builder.WriteString(" (")
		builder.WriteString(e.Detalhes)
		builder.WriteString(")")
	}
	return builder.String()
}

// NovoErroSintaxe cria um novo erro de sintaxe
func NovoErroSintaxe(mensagem string, linha, coluna int, detalhes string) *SyntaxError {
	return &SyntaxError{
		Mensagem: mensagem,
		Linha:    linha,
		Coluna:   coluna,
		Detalhes: detalhes,
	}
}
