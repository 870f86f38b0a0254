package lexer_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khevencolino/Balbismo/internal/lexer"
)

// tokenCase é um token esperado, sem a posição
type tokenCase struct {
	typ     lexer.TokenType
	literal string
}

func tipos(tokens []lexer.Token) []tokenCase {
	var out []tokenCase
	for _, tok := range tokens {
		out = append(out, tokenCase{tok.Type, tok.Value})
	}
	return out
}

func TestTokenizar(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []tokenCase
	}{
		{"declaracao", "var x = 10;", []tokenCase{
			{lexer.KEYWORD_VAR, "var"},
			{lexer.IDENTIFIER, "x"},
			{lexer.OPERATOR_ASSIGN, "="},
			{lexer.LITERAL_NUMBER, "10"},
			{lexer.PUNCT_SEMICOLON, ";"},
			{lexer.EOF, ""},
		}},
		{"imprime", `print("Hello World");`, []tokenCase{
			{lexer.KEYWORD_PRINT, "print"},
			{lexer.PUNCT_LPAREN, "("},
			{lexer.LITERAL_STRING, `"Hello World"`},
			{lexer.PUNCT_RPAREN, ")"},
			{lexer.PUNCT_SEMICOLON, ";"},
			{lexer.EOF, ""},
		}},
		{"sem espacos", "var y=3.14;", []tokenCase{
			{lexer.KEYWORD_VAR, "var"},
			{lexer.IDENTIFIER, "y"},
			{lexer.OPERATOR_ASSIGN, "="},
			{lexer.LITERAL_NUMBER, "3.14"},
			{lexer.PUNCT_SEMICOLON, ";"},
			{lexer.EOF, ""},
		}},
		{"palavra reservada como prefixo", "variavel printer var_1", []tokenCase{
			{lexer.IDENTIFIER, "variavel"},
			{lexer.IDENTIFIER, "printer"},
			{lexer.IDENTIFIER, "var_1"},
			{lexer.EOF, ""},
		}},
		{"maiusculas nao sao reservadas", "VAR Print", []tokenCase{
			{lexer.IDENTIFIER, "VAR"},
			{lexer.IDENTIFIER, "Print"},
			{lexer.EOF, ""},
		}},
		{"aspas escapadas", `"diz \"oi\""`, []tokenCase{
			{lexer.LITERAL_STRING, `"diz \"oi\""`},
			{lexer.EOF, ""},
		}},
		{"comentario", "var a = 1; // fim\nprint(a);", []tokenCase{
			{lexer.KEYWORD_VAR, "var"},
			{lexer.IDENTIFIER, "a"},
			{lexer.OPERATOR_ASSIGN, "="},
			{lexer.LITERAL_NUMBER, "1"},
			{lexer.PUNCT_SEMICOLON, ";"},
			{lexer.KEYWORD_PRINT, "print"},
			{lexer.PUNCT_LPAREN, "("},
			{lexer.IDENTIFIER, "a"},
			{lexer.PUNCT_RPAREN, ")"},
			{lexer.PUNCT_SEMICOLON, ";"},
			{lexer.EOF, ""},
		}},
		{"ponto sem digitos", "10.", []tokenCase{
			{lexer.LITERAL_NUMBER, "10"},
			{lexer.UNKNOWN, "."},
			{lexer.EOF, ""},
		}},
		{"caracteres invalidos", "@ é", []tokenCase{
			{lexer.UNKNOWN, "@"},
			{lexer.UNKNOWN, "é"},
			{lexer.EOF, ""},
		}},
		{"string nao terminada", "print(\"abc;\nvar", []tokenCase{
			{lexer.KEYWORD_PRINT, "print"},
			{lexer.PUNCT_LPAREN, "("},
			{lexer.UNKNOWN, `"abc;`},
			{lexer.KEYWORD_VAR, "var"},
			{lexer.EOF, ""},
		}},
		{"underscore no inicio", "_x", []tokenCase{
			{lexer.UNKNOWN, "_"},
			{lexer.IDENTIFIER, "x"},
			{lexer.EOF, ""},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tipos(lexer.NovoLexer(tc.input).Tokenizar())
			if diff := cmp.Diff(tc.want, got, cmp.AllowUnexported(tokenCase{})); diff != "" {
				t.Errorf("tokens (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenizarVazioOuEspacos(t *testing.T) {
	for _, input := range []string{"", " ", "\n\n", "\t \r\n  ", "  "} {
		tokens := lexer.NovoLexer(input).Tokenizar()
		require.Len(t, tokens, 1, "entrada %q", input)
		assert.Equal(t, lexer.EOF, tokens[0].Type)
	}
}

func TestPosicoes(t *testing.T) {
	tokens := lexer.NovoLexer("var x = 10;\n  print(x);").Tokenizar()

	want := []lexer.Position{
		{Line: 1, Column: 1, Offset: 0},   // var
		{Line: 1, Column: 5, Offset: 4},   // x
		{Line: 1, Column: 7, Offset: 6},   // =
		{Line: 1, Column: 9, Offset: 8},   // 10
		{Line: 1, Column: 11, Offset: 10}, // ;
		{Line: 2, Column: 3, Offset: 14},  // print
		{Line: 2, Column: 8, Offset: 19},  // (
		{Line: 2, Column: 9, Offset: 20},  // x
		{Line: 2, Column: 10, Offset: 21}, // )
		{Line: 2, Column: 11, Offset: 22}, // ;
		{Line: 2, Column: 12, Offset: 23}, // EOF
	}
	var got []lexer.Position
	for _, tok := range tokens {
		got = append(got, tok.Position)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("posições (-want +got):\n%s", diff)
	}
}

func TestColunaContaRunas(t *testing.T) {
	tokens := lexer.NovoLexer(`print("ção"); x`).Tokenizar()
	last := tokens[len(tokens)-2]
	assert.Equal(t, "x", last.Value)
	assert.Equal(t, 15, last.Position.Column)
	assert.Equal(t, 16, last.Position.Offset)
}

func TestPosicoesNaoDecrescem(t *testing.T) {
	inputs := []string{
		"var x = 10;\nprint(x);",
		"print(\"a\"); // comentário\n\n\tvar y = 2.5;",
		"@@ var \"aberta\n;;",
		"var\r\nz\r\n=\r\n1;",
	}
	for _, input := range inputs {
		tokens := lexer.NovoLexer(input).Tokenizar()
		for i := 1; i < len(tokens); i++ {
			assert.False(t, tokens[i].Position.Antes(tokens[i-1].Position),
				"entrada %q: token %d (%s) antes do token %d (%s)", input, i, tokens[i], i-1, tokens[i-1])
		}
	}
}

func TestTokenizarDeterministico(t *testing.T) {
	input := "var x = 10;\nprint(\"oi\");\n@"
	first := lexer.NovoLexer(input).Tokenizar()
	second := lexer.NovoLexer(input).Tokenizar()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("tokenização não determinística:\n%s", diff)
	}
}

func TestTokenTypeString(t *testing.T) {
	assert.Equal(t, "KEYWORD_VAR", lexer.KEYWORD_VAR.String())
	assert.Equal(t, "PUNCT_SEMICOLON", lexer.PUNCT_SEMICOLON.String())
	assert.Equal(t, "UNKNOWN", lexer.UNKNOWN.String())
	assert.Equal(t, "TokenType(99)", lexer.TokenType(99).String())
	assert.Equal(t, "';'", lexer.PUNCT_SEMICOLON.Descricao())
	assert.Equal(t, "fim do arquivo", lexer.EOF.Descricao())
}

func TestBuscarIdentificador(t *testing.T) {
	assert.Equal(t, lexer.KEYWORD_VAR, lexer.BuscarIdentificador("var"))
	assert.Equal(t, lexer.KEYWORD_PRINT, lexer.BuscarIdentificador("print"))
	assert.Equal(t, lexer.IDENTIFIER, lexer.BuscarIdentificador("x"))
}

func TestImprimirTokens(t *testing.T) {
	var buf bytes.Buffer
	lexer.ImprimirTokens(&buf, lexer.NovoLexer("var x = 10;").Tokenizar())

	out := buf.String()
	assert.Contains(t, out, "Tipo")
	assert.Contains(t, out, "KEYWORD_VAR")
	assert.Contains(t, out, "LITERAL_NUMBER")
	assert.Contains(t, out, "1:9")
	assert.NotContains(t, out, "EOF")
}
