// Package java traduz o programa Balbismo em comandos Java, um por linha.
package java

import (
	"strconv"
	"strings"

	"github.com/khevencolino/Balbismo/internal/parser"
)

// Palavras que não podem ser usadas como nome de variável local em Java.
// System entra na lista porque uma variável com esse nome esconderia System.out.
var palavrasReservadasJava = map[string]struct{}{
	"abstract": {}, "assert": {}, "boolean": {}, "break": {}, "byte": {},
	"case": {}, "catch": {}, "char": {}, "class": {}, "const": {},
	"continue": {}, "default": {}, "do": {}, "double": {}, "else": {},
	"enum": {}, "extends": {}, "final": {}, "finally": {}, "float": {},
	"for": {}, "goto": {}, "if": {}, "implements": {}, "import": {},
	"instanceof": {}, "int": {}, "interface": {}, "long": {}, "native": {},
	"new": {}, "package": {}, "private": {}, "protected": {}, "public": {},
	"return": {}, "short": {}, "static": {}, "strictfp": {}, "super": {},
	"switch": {}, "synchronized": {}, "this": {}, "throw": {}, "throws": {},
	"transient": {}, "try": {}, "void": {}, "volatile": {}, "while": {},
	"true": {}, "false": {}, "null": {}, "System": {},
}

// NomeJava retorna o nome usado no código gerado para uma variável Balbismo
func NomeJava(nome string) string {
	if _, reservada := palavrasReservadasJava[nome]; reservada {
		return nome + "_"
	}
	return nome
}

// TipoJava retorna o tipo Java de uma variável; TipoDesconhecido vira "var"
func TipoJava(tipo parser.Tipo) string {
	switch tipo {
	case parser.TipoInteiro:
		return "int"
	case parser.TipoLongo:
		return "long"
	case parser.TipoDecimal:
		return "double"
	case parser.TipoTexto:
		return "String"
	default:
		return "var"
	}
}

type Gerador struct{}

func NovoGerador() *Gerador {
	return &Gerador{}
}

func (g *Gerador) GetName() string      { return "Java" }
func (g *Gerador) GetExtension() string { return ".java" }

// Gerar emite uma linha terminada em '\n' para cada comando, na ordem do
// programa. Não falha. Os tipos das declarações vêm da checagem de variáveis;
// sem ela toda declaração sai como "var".
func (g *Gerador) Gerar(programa *parser.Programa) string {
	e := emissor{}

	var builder strings.Builder
	for _, comando := range programa.Comandos {
		builder.WriteString(comando.Aceitar(e).(string))
		builder.WriteString("\n")
	}
	return builder.String()
}

type emissor struct{}

func (e emissor) VisitarDeclaracaoVariavel(declaracao *parser.DeclaracaoVariavel) interface{} {
	return TipoJava(declaracao.Tipo) + " " + NomeJava(declaracao.Nome) + " = " + e.expressao(declaracao.Valor) + ";"
}

func (e emissor) VisitarChamadaImprime(chamada *parser.ChamadaImprime) interface{} {
	return "System.out.println(" + e.expressao(chamada.Argumento) + ");"
}

// VisitarLiteralNumero normaliza zeros à esquerda (010 seria octal em Java)
// e marca com L os inteiros que não cabem em int.
func (e emissor) VisitarLiteralNumero(numero *parser.LiteralNumero) interface{} {
	if numero.Decimal {
		return numero.Valor
	}
	valor, err := strconv.ParseInt(numero.Valor, 10, 64)
	if err != nil {
		return numero.Valor
	}
	texto := strconv.FormatInt(valor, 10)
	if numero.TipoInferido() == parser.TipoLongo {
		texto += "L"
	}
	return texto
}

func (e emissor) VisitarLiteralTexto(texto *parser.LiteralTexto) interface{} {
	return texto.String()
}

func (e emissor) VisitarIdentificador(identificador *parser.Identificador) interface{} {
	return NomeJava(identificador.Nome)
}

func (e emissor) expressao(expressao parser.Expressao) string {
	return expressao.Aceitar(e).(string)
}
