package lexer

import "fmt"

// TokenType representa o tipo de token
type TokenType int

const (
	// Tipos de tokens
	KEYWORD_VAR      TokenType = iota // Palavra reservada var
	KEYWORD_PRINT                     // Palavra reservada print
	IDENTIFIER                        // Nomes de variáveis
	OPERATOR_ASSIGN                   // Atribuição (=)
	LITERAL_NUMBER                    // Números: 10, 3.14
	LITERAL_STRING                    // Textos: "abc"
	PUNCT_LPAREN                      // Parêntese esquerdo (()
	PUNCT_RPAREN                      // Parêntese direito ())
	PUNCT_SEMICOLON                   // Fim de comando (;)
	COMMENT                           // Comentarios
	WHITESPACE                        // Espaços em branco
	EOF                               // Fim do arquivo
	UNKNOWN                           // Caractere não reconhecido
)

var nomesTokens = [...]string{
	KEYWORD_VAR:     "KEYWORD_VAR",
	KEYWORD_PRINT:   "KEYWORD_PRINT",
	IDENTIFIER:      "IDENTIFIER",
	OPERATOR_ASSIGN: "OPERATOR_ASSIGN",
	LITERAL_NUMBER:  "LITERAL_NUMBER",
	LITERAL_STRING:  "LITERAL_STRING",
	PUNCT_LPAREN:    "PUNCT_LPAREN",
	PUNCT_RPAREN:    "PUNCT_RPAREN",
	PUNCT_SEMICOLON: "PUNCT_SEMICOLON",
	COMMENT:         "COMMENT",
	WHITESPACE:      "WHITESPACE",
	EOF:             "EOF",
	UNKNOWN:         "UNKNOWN",
}

// String retorna uma representação em string do tipo de token
func (t TokenType) String() string {
	if t >= 0 && int(t) < len(nomesTokens) {
		return nomesTokens[t]
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Descricao retorna o texto usado em mensagens de erro ("';'", "identificador")
func (t TokenType) Descricao() string {
	switch t {
	case KEYWORD_VAR:
		return "'var'"
	case KEYWORD_PRINT:
		return "'print'"
	case IDENTIFIER:
		return "identificador"
	case OPERATOR_ASSIGN:
		return "'='"
	case LITERAL_NUMBER:
		return "número"
	case LITERAL_STRING:
		return "texto"
	case PUNCT_LPAREN:
		return "'('"
	case PUNCT_RPAREN:
		return "')'"
	case PUNCT_SEMICOLON:
		return "';'"
	case EOF:
		return "fim do arquivo"
	default:
		return t.String()
	}
}

// palavrasReservadas mapeia o texto exato das palavras reservadas. Somente leitura.
var palavrasReservadas = map[string]TokenType{
	"var":   KEYWORD_VAR,
	"print": KEYWORD_PRINT,
}

// BuscarIdentificador resolve um identificador para palavra reservada ou IDENTIFIER
func BuscarIdentificador(texto string) TokenType {
	if tipo, ok := palavrasReservadas[texto]; ok {
		return tipo
	}
	return IDENTIFIER
}

// Token representa um token encontrado no código fonte
type Token struct {
	Type     TokenType // Tipo do token
	Value    string    // Lexema exato
	Position Position  // Posição no código fonte
}

// String retorna uma representação em string do token
func (t Token) String() string {
	return fmt.Sprintf("%s('%s') em %s", t.Type, t.Value, t.Position)
}

// NovoToken cria um novo token
func NovoToken(tipoToken TokenType, valor string, posicao Position) Token {
	return Token{
		Type:     tipoToken,
		Value:    valor,
		Position: posicao,
	}
}

// ELiteral verifica se o token pode iniciar uma expressão
func (t Token) ELiteral() bool {
	return t.Type == LITERAL_NUMBER || t.Type == LITERAL_STRING || t.Type == IDENTIFIER
}
