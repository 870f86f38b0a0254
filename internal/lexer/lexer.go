package lexer

import (
	"fmt"
	"io"
	"regexp"
	"unicode/utf8"

	"github.com/olekukonko/tablewriter"
)

// padrao associa um tipo de token à expressão que o reconhece
type padrao struct {
	tipo  TokenType
	regex *regexp.Regexp
}

// padroes é a tabela de reconhecedores em ordem de prioridade.
// Construída uma vez na inicialização do pacote e nunca alterada.
var padroes = []padrao{
	{COMMENT, regexp.MustCompile(`^//[^\n]*`)},                   // Comentarios //
	{WHITESPACE, regexp.MustCompile(`^[\t\n\v\f\r \x{85}\pZ]+`)}, // Espaços em branco
	{LITERAL_STRING, regexp.MustCompile(`^"(?:\\.|[^"\\\n])*"`)}, // Textos: "abc", "diz \"oi\""
	{LITERAL_NUMBER, regexp.MustCompile(`^\d+(?:\.\d+)?`)},       // Números: 10, 3.14
	{IDENTIFIER, regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*`)},   // Identificadores e palavras reservadas
	{OPERATOR_ASSIGN, regexp.MustCompile(`^=`)},                  // Atribuição: =
	{PUNCT_LPAREN, regexp.MustCompile(`^\(`)},                    // Parêntese esquerdo: (
	{PUNCT_RPAREN, regexp.MustCompile(`^\)`)},                    // Parêntese direito: )
	{PUNCT_SEMICOLON, regexp.MustCompile(`^;`)},                  // Fim de comando: ;
}

// stringAberta reconhece um texto sem aspas de fechamento até o fim da linha
var stringAberta = regexp.MustCompile(`^"[^\n]*`)

// Lexer representa o analisador léxico
type Lexer struct {
	entrada string // Código fonte de entrada
	posicao int    // Posição atual no código, em bytes
	linha   int    // Linha atual
	coluna  int    // Coluna atual
}

// NovoLexer cria um novo analisador léxico
func NovoLexer(entrada string) *Lexer {
	return &Lexer{
		entrada: entrada,
		linha:   1,
		coluna:  1,
	}
}

// Tokenizar converte a entrada em uma lista de tokens terminada por EOF.
// Nunca falha: o que não for reconhecido vira um token UNKNOWN.
func (l *Lexer) Tokenizar() []Token {
	var tokens []Token

	for {
		token := l.proximoToken()

		// Pula espaços em branco e comentários mas adiciona outros tokens
		if token.Type != WHITESPACE && token.Type != COMMENT {
			tokens = append(tokens, token)
		}

		if token.Type == EOF {
			break
		}
	}

	return tokens
}

// proximoToken encontra o próximo token
func (l *Lexer) proximoToken() Token {
	if !l.temMais() {
		return NovoToken(EOF, "", l.obterPosicaoAtual())
	}

	posicaoAtual := l.obterPosicaoAtual()
	restante := l.entrada[l.posicao:]

	for _, p := range padroes {
		if match := p.regex.FindString(restante); match != "" {
			tipo := p.tipo
			if tipo == IDENTIFIER {
				tipo = BuscarIdentificador(match)
			}
			l.avancar(match)
			return NovoToken(tipo, match, posicaoAtual)
		}
	}

	// Texto sem fechamento vira um único token inválido até o fim da linha
	if match := stringAberta.FindString(restante); match != "" {
		l.avancar(match)
		return NovoToken(UNKNOWN, match, posicaoAtual)
	}

	// Caractere inválido
	_, tamanho := utf8.DecodeRuneInString(restante)
	caractereInvalido := restante[:tamanho]
	l.avancar(caractereInvalido)
	return NovoToken(UNKNOWN, caractereInvalido, posicaoAtual)
}

// obterPosicaoAtual retorna a posição atual no código fonte
func (l *Lexer) obterPosicaoAtual() Position {
	return NovaPosicao(l.linha, l.coluna, l.posicao)
}

// avancar consome o texto reconhecido atualizando linha e coluna
func (l *Lexer) avancar(texto string) {
	for _, r := range texto {
		if r == '\n' {
			l.linha++
			l.coluna = 1
		} else {
			l.coluna++
		}
	}
	l.posicao += len(texto)
}

// temMais verifica se há mais caracteres para processar
func (l *Lexer) temMais() bool {
	return l.posicao < len(l.entrada)
}

// ImprimirTokens escreve todos os tokens em forma de tabela
func ImprimirTokens(saida io.Writer, tokens []Token) {
	tabela := tablewriter.NewWriter(saida)
	tabela.SetHeader([]string{"Tipo", "Valor", "Posição"})
	tabela.SetAutoFormatHeaders(false)
	tabela.SetAutoWrapText(false)

	for _, token := range tokens {
		if token.Type != EOF {
			tabela.Append([]string{
				token.Type.String(),
				token.Value,
				fmt.Sprintf("%d:%d", token.Position.Line, token.Position.Column),
			})
		}
	}

	tabela.Render()
}
