package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/khevencolino/Balbismo/internal/lexer"
	"github.com/khevencolino/Balbismo/internal/utils"
)

// Parser representa o analisador sintático
type Parser struct {
	tokens       []lexer.Token
	posicaoAtual int
}

// NovoParser cria um novo analisador sintático
func NovoParser(tokens []lexer.Token) *Parser {
	return &Parser{
		tokens:       tokens,
		posicaoAtual: 0,
	}
}

// AnalisarPrograma analisa um programa. Uma entrada só com EOF produz um
// programa vazio; o primeiro erro encerra a análise.
func (p *Parser) AnalisarPrograma() (*Programa, error) {
	programa := &Programa{}

	for !p.chegouAoFim() {
		comando, err := p.analisarComando()
		if err != nil {
			return nil, err
		}
		programa.Comandos = append(programa.Comandos, comando)
	}

	return programa, nil
}

// analisarComando escolhe a regra pelo primeiro token do comando
func (p *Parser) analisarComando() (Comando, error) {
	token := p.tokenAtual()

	switch token.Type {
	case lexer.KEYWORD_VAR:
		return p.analisarDeclaracao()
	case lexer.KEYWORD_PRINT:
		return p.analisarImprime()
	case lexer.UNKNOWN:
		return nil, erroTokenInvalido(token)
	default:
		return nil, utils.NovoErroSintaxe(
			"comando inválido",
			token.Position.Line,
			token.Position.Column,
			fmt.Sprintf("esperado 'var' ou 'print', encontrado %s", descreverToken(token)),
		)
	}
}

// analisarDeclaracao analisa "var nome = expressao;"
func (p *Parser) analisarDeclaracao() (Comando, error) {
	p.proximoToken() // consome "var"

	nome, err := p.verificarProximoToken(lexer.IDENTIFIER)
	if err != nil {
		return nil, err
	}

	if _, err := p.verificarProximoToken(lexer.OPERATOR_ASSIGN); err != nil {
		return nil, err
	}

	valor, err := p.analisarExpressao()
	if err != nil {
		return nil, err
	}

	if _, err := p.verificarProximoToken(lexer.PUNCT_SEMICOLON); err != nil {
		return nil, err
	}

	return &DeclaracaoVariavel{Nome: nome.Value, Valor: valor, Token: nome}, nil
}

// analisarImprime analisa "print(expressao);"
func (p *Parser) analisarImprime() (Comando, error) {
	tokenImprime := p.proximoToken() // consome "print"

	if _, err := p.verificarProximoToken(lexer.PUNCT_LPAREN); err != nil {
		return nil, err
	}

	argumento, err := p.analisarExpressao()
	if err != nil {
		return nil, err
	}

	if _, err := p.verificarProximoToken(lexer.PUNCT_RPAREN); err != nil {
		return nil, err
	}

	if _, err := p.verificarProximoToken(lexer.PUNCT_SEMICOLON); err != nil {
		return nil, err
	}

	return &ChamadaImprime{Argumento: argumento, Token: tokenImprime}, nil
}

// analisarExpressao analisa um literal ou uma variável
func (p *Parser) analisarExpressao() (Expressao, error) {
	token := p.proximoToken()

	if token.Type == lexer.UNKNOWN {
		return nil, erroTokenInvalido(token)
	}
	if !token.ELiteral() {
		mensagem := "expressão inválida"
		if token.Type == lexer.EOF {
			mensagem = "fim inesperado do arquivo"
		}
		return nil, utils.NovoErroSintaxe(
			mensagem,
			token.Position.Line,
			token.Position.Column,
			fmt.Sprintf("esperado número, texto ou variável, encontrado %s", descreverToken(token)),
		)
	}

	switch token.Type {
	case lexer.LITERAL_NUMBER:
		return analisarNumero(token)
	case lexer.LITERAL_STRING:
		return analisarTexto(token)
	default:
		return &Identificador{Nome: token.Value, Token: token}, nil
	}
}

// analisarNumero valida o intervalo do literal numérico. Um decimal com algum
// dígito diferente de zero não pode virar 0.
func analisarNumero(token lexer.Token) (Expressao, error) {
	decimal := strings.Contains(token.Value, ".")

	var err error
	if decimal {
		var valor float64
		valor, err = strconv.ParseFloat(token.Value, 64)
		if err == nil && valor == 0 && strings.Trim(token.Value, "0.") != "" {
			err = strconv.ErrRange
		}
	} else {
		_, err = strconv.ParseInt(token.Value, 10, 64)
	}
	if err != nil {
		return nil, utils.NovoErroSintaxe(
			"literal numérico fora do intervalo",
			token.Position.Line,
			token.Position.Column,
			token.Value,
		)
	}

	return &LiteralNumero{Valor: token.Value, Decimal: decimal, Token: token}, nil
}

// analisarTexto tira as aspas e confere as sequências de escape
func analisarTexto(token lexer.Token) (Expressao, error) {
	valor := token.Value[1 : len(token.Value)-1]
	if inicio, fim, ok := escapeInvalido(valor); ok {
		return nil, utils.NovoErroSintaxe(
			"sequência de escape inválida",
			token.Position.Line,
			token.Position.Column+1+utf8.RuneCountInString(valor[:inicio]),
			valor[inicio:fim],
		)
	}
	return &LiteralTexto{Valor: valor, Token: token}, nil
}

// escapeInvalido procura o primeiro escape que o Java não aceita dentro de
// uma string. Escapes \uXXXX são traduzidos pelo Java antes da análise
// léxica, então quebra de linha, aspas e barra invertida ficam proibidos.
func escapeInvalido(valor string) (int, int, bool) {
	for i := 0; i < len(valor); i++ {
		if valor[i] != '\\' || i+1 >= len(valor) {
			continue
		}
		inicio := i
		i++
		switch c := valor[i]; {
		case strings.IndexByte(`btnfrs"'\\`, c) >= 0:
		case c >= '0' && c <= '7':
			limite := 2
			if c <= '3' {
				limite = 3
			}
			for n := 1; n < limite && i+1 < len(valor) && valor[i+1] >= '0' && valor[i+1] <= '7'; n++ {
				i++
			}
		case c == 'u':
			for i+1 < len(valor) && valor[i+1] == 'u' {
				i++
			}
			if i+5 > len(valor) {
				return inicio, len(valor), true
			}
			codigo, err := strconv.ParseUint(valor[i+1:i+5], 16, 16)
			i += 4
			if err != nil || codigo == '\n' || codigo == '\r' || codigo == '"' || codigo == '\\' {
				return inicio, i + 1, true
			}
		default:
			_, tamanho := utf8.DecodeRuneInString(valor[i:])
			return inicio, i + tamanho, true
		}
	}
	return 0, 0, false
}

// proximoToken retorna o token atual e avança a posição
func (p *Parser) proximoToken() lexer.Token {
	token := p.tokenAtual()
	if p.posicaoAtual < len(p.tokens) {
		p.posicaoAtual++
	}
	return token
}

// verificarProximoToken consome o próximo token exigindo o tipo esperado
func (p *Parser) verificarProximoToken(tipoEsperado lexer.TokenType) (lexer.Token, error) {
	token := p.proximoToken()
	if token.Type == tipoEsperado {
		return token, nil
	}

	if token.Type == lexer.UNKNOWN {
		return token, erroTokenInvalido(token)
	}

	mensagem := "token inesperado"
	if token.Type == lexer.EOF {
		mensagem = "fim inesperado do arquivo"
	}
	detalhes := fmt.Sprintf("esperado %s, encontrado %s", tipoEsperado.Descricao(), descreverToken(token))
	return token, utils.NovoErroSintaxe(mensagem, token.Position.Line, token.Position.Column, detalhes)
}

// tokenAtual retorna o token atual sem avançar. Depois do último token
// devolve EOF na posição do último token conhecido.
func (p *Parser) tokenAtual() lexer.Token {
	if p.posicaoAtual < len(p.tokens) {
		return p.tokens[p.posicaoAtual]
	}
	if len(p.tokens) > 0 {
		return lexer.NovoToken(lexer.EOF, "", p.tokens[len(p.tokens)-1].Position)
	}
	return lexer.NovoToken(lexer.EOF, "", lexer.NovaPosicao(0, 0, 0))
}

// chegouAoFim verifica se chegou ao fim dos tokens
func (p *Parser) chegouAoFim() bool {
	return p.tokenAtual().Type == lexer.EOF
}

// erroTokenInvalido cria o erro para um token que o lexer não reconheceu
func erroTokenInvalido(token lexer.Token) *utils.SyntaxError {
	if strings.HasPrefix(token.Value, `"`) {
		return utils.NovoErroSintaxe("string não terminada", token.Position.Line, token.Position.Column, token.Value)
	}
	return utils.NovoErroSintaxe(
		fmt.Sprintf("caractere inválido '%s'", token.Value),
		token.Position.Line,
		token.Position.Column,
		"",
	)
}

// descreverToken descreve o token encontrado para mensagens de erro
func descreverToken(token lexer.Token) string {
	if token.Type == lexer.EOF {
		return lexer.EOF.Descricao()
	}
	return fmt.Sprintf("'%s'", token.Value)
}
