package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/khevencolino/Balbismo/internal/lexer"
)

// No é a interface base para todos os nós da AST
type No interface {
	Aceitar(visitante Visitante) interface{}
	String() string
}

// Comando é um nó de nível superior, terminado por ';' no código fonte
type Comando interface {
	No
	comando()
}

// Expressao é um nó que produz um valor
type Expressao interface {
	No
	expressao()
}

// Programa é a sequência de comandos na ordem do código fonte
type Programa struct {
	Comandos []Comando
}

// String retorna representação em string do programa, um comando por linha
func (p *Programa) String() string {
	var builder strings.Builder
	for _, c := range p.Comandos {
		builder.WriteString(c.String())
		builder.WriteString("\n")
	}
	return builder.String()
}

// DeclaracaoVariavel representa "var nome = valor;"
type DeclaracaoVariavel struct {
	Nome  string
	Valor Expressao
	Tipo  Tipo        // preenchido pela checagem de variáveis
	Token lexer.Token // token do identificador
}

// Aceitar implementa o padrão visitor para DeclaracaoVariavel
func (d *DeclaracaoVariavel) Aceitar(visitante Visitante) interface{} {
	return visitante.VisitarDeclaracaoVariavel(d)
}

// String retorna representação em string da declaração
func (d *DeclaracaoVariavel) String() string {
	return fmt.Sprintf("var %s = %s;", d.Nome, d.Valor.String())
}

func (d *DeclaracaoVariavel) comando() {}

// ChamadaImprime representa "print(argumento);"
type ChamadaImprime struct {
	Argumento Expressao
	Token     lexer.Token // token do print
}

// Aceitar implementa o padrão visitor para ChamadaImprime
func (c *ChamadaImprime) Aceitar(visitante Visitante) interface{} {
	return visitante.VisitarChamadaImprime(c)
}

// String retorna representação em string da chamada
func (c *ChamadaImprime) String() string {
	return fmt.Sprintf("print(%s);", c.Argumento.String())
}

func (c *ChamadaImprime) comando() {}

// LiteralNumero representa um literal numérico. Valor guarda o lexema exato.
type LiteralNumero struct {
	Valor   string
	Decimal bool
	Token   lexer.Token
}

// Aceitar implementa o padrão visitor para LiteralNumero
func (n *LiteralNumero) Aceitar(visitante Visitante) interface{} {
	return visitante.VisitarLiteralNumero(n)
}

// String retorna representação em string do número
func (n *LiteralNumero) String() string {
	return n.Valor
}

func (n *LiteralNumero) expressao() {}

// LiteralTexto representa um literal de texto. Valor guarda o lexema sem as
// aspas externas; sequências de escape ficam como estão.
type LiteralTexto struct {
	Valor string
	Token lexer.Token
}

// Aceitar implementa o padrão visitor para LiteralTexto
func (t *LiteralTexto) Aceitar(visitante Visitante) interface{} {
	return visitante.VisitarLiteralTexto(t)
}

// String retorna representação em string do texto, com aspas
func (t *LiteralTexto) String() string {
	return `"` + t.Valor + `"`
}

func (t *LiteralTexto) expressao() {}

// Identificador representa a referência a uma variável
type Identificador struct {
	Nome  string
	Token lexer.Token
}

// Aceitar implementa o padrão visitor para Identificador
func (i *Identificador) Aceitar(visitante Visitante) interface{} {
	return visitante.VisitarIdentificador(i)
}

// String retorna representação em string do identificador
func (i *Identificador) String() string {
	return i.Nome
}

func (i *Identificador) expressao() {}

// Visitante define a interface para o padrão visitor. Cada tipo de nó tem seu
// método, então um novo nó obriga todos os visitantes a tratá-lo.
type Visitante interface {
	VisitarDeclaracaoVariavel(declaracao *DeclaracaoVariavel) interface{}
	VisitarChamadaImprime(chamada *ChamadaImprime) interface{}
	VisitarLiteralNumero(numero *LiteralNumero) interface{}
	VisitarLiteralTexto(texto *LiteralTexto) interface{}
	VisitarIdentificador(identificador *Identificador) interface{}
}

// Tipo representa o tipo inferido de uma variável
type Tipo int

const (
	TipoDesconhecido Tipo = iota
	TipoInteiro
	TipoLongo
	TipoDecimal
	TipoTexto
)

// String retorna o nome do tipo na linguagem Balbismo
func (t Tipo) String() string {
	switch t {
	case TipoInteiro:
		return "inteiro"
	case TipoLongo:
		return "longo"
	case TipoDecimal:
		return "decimal"
	case TipoTexto:
		return "texto"
	default:
		return "desconhecido"
	}
}

// TipoInferido retorna o tipo do literal: inteiros que cabem em 32 bits são
// inteiro, os demais longo; literais com ponto são decimal.
func (n *LiteralNumero) TipoInferido() Tipo {
	if n.Decimal {
		return TipoDecimal
	}
	if _, err := strconv.ParseInt(n.Valor, 10, 32); err == nil {
		return TipoInteiro
	}
	return TipoLongo
}
