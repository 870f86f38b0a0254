package compiler

import (
	"fmt"
	"strings"
	"unicode"
)

// Generator envolve os comandos gerados em uma classe Java executável
type Generator struct {
	template   string // Template da classe
	indentacao int    // Espaços por nível
}

// NovoGerador cria um novo gerador de classes
func NovoGerador(indentacao int) *Generator {
	return &Generator{
		template: `public class %s {
%spublic static void main(String[] _args) {
%s%s}
}
`,
		indentacao: indentacao,
	}
}

// GerarClasse coloca o corpo dentro de main. Cada linha do corpo recebe dois
// níveis de indentação.
func (g *Generator) GerarClasse(classe string, corpo string) string {
	nivel := strings.Repeat(" ", g.indentacao)

	var builder strings.Builder
	for _, linha := range strings.SplitAfter(corpo, "\n") {
		if linha == "" {
			continue
		}
		builder.WriteString(nivel + nivel + linha)
	}

	return fmt.Sprintf(g.template, classe, nivel, builder.String(), nivel)
}

// NomeClasse converte um nome qualquer (em geral o nome do arquivo) em um
// identificador de classe Java: "ola-mundo" vira "OlaMundo".
func NomeClasse(nome string) string {
	var builder strings.Builder
	maiuscula := true
	for _, r := range nome {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			maiuscula = true
			continue
		}
		if maiuscula {
			r = unicode.ToUpper(r)
			maiuscula = false
		}
		builder.WriteRune(r)
	}

	classe := builder.String()
	if classe == "" {
		return "Main"
	}
	if unicode.IsDigit(rune(classe[0])) {
		return "_" + classe
	}
	return classe
}
