package java_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khevencolino/Balbismo/internal/backends/java"
	"github.com/khevencolino/Balbismo/internal/compiler"
	"github.com/khevencolino/Balbismo/internal/lexer"
	"github.com/khevencolino/Balbismo/internal/parser"
)

func analisar(t *testing.T, input string) *parser.Programa {
	t.Helper()
	programa, err := parser.NovoParser(lexer.NovoLexer(input).Tokenizar()).AnalisarPrograma()
	require.NoError(t, err)
	return programa
}

// gerar checa as variáveis antes, como o compilador faz
func gerar(t *testing.T, input string) string {
	t.Helper()
	programa := analisar(t, input)
	_, err := compiler.NovoTypeChecker().Check(programa)
	require.NoError(t, err)
	return java.NovoGerador().Gerar(programa)
}

func TestGerar(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"inteiro", "var x = 10;", "int x = 10;\n"},
		{"longo", "var x = 10000000000;", "long x = 10000000000L;\n"},
		{"decimal", "var pi = 3.14;", "double pi = 3.14;\n"},
		{"texto", `var s = "oi";`, "String s = \"oi\";\n"},
		{"zeros a esquerda", "var x = 007;", "int x = 7;\n"},
		{"imprime texto", `print("Hello World");`, "System.out.println(\"Hello World\");\n"},
		{"imprime numero", "print(42);", "System.out.println(42);\n"},
		{"escape preservado", `print("a\"b\n");`, "System.out.println(\"a\\\"b\\n\");\n"},
		{"tipo da variavel referenciada", "var a = 1.5;\nvar b = a;\nprint(b);",
			"double a = 1.5;\ndouble b = a;\nSystem.out.println(b);\n"},
		{"palavra reservada java", "var class = 1;\nprint(class);",
			"int class_ = 1;\nSystem.out.println(class_);\n"},
		{"System", "var System = \"x\";", "String System_ = \"x\";\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, gerar(t, tc.input))
		})
	}
}

func TestGerarSemChecagemUsaVar(t *testing.T) {
	programa := analisar(t, "var a = 1;\nvar b = a;")
	assert.Equal(t, "var a = 1;\nvar b = a;\n", java.NovoGerador().Gerar(programa))
}

func TestGerarUsaTipoDaDeclaracao(t *testing.T) {
	programa := &parser.Programa{Comandos: []parser.Comando{
		&parser.DeclaracaoVariavel{Nome: "x", Valor: &parser.Identificador{Nome: "y"}, Tipo: parser.TipoLongo},
	}}
	assert.Equal(t, "long x = y;\n", java.NovoGerador().Gerar(programa))
}

func TestGerarProgramaVazio(t *testing.T) {
	assert.Equal(t, "", java.NovoGerador().Gerar(&parser.Programa{}))
}

func TestGerarUmaLinhaPorComando(t *testing.T) {
	out := gerar(t, "var a = 1; var b = 2; print(a); print(b);")
	assert.Equal(t, "int a = 1;\nint b = 2;\nSystem.out.println(a);\nSystem.out.println(b);\n", out)
}

func TestGeradorReutilizavel(t *testing.T) {
	gerador := java.NovoGerador()
	programa := analisar(t, "var a = \"x\";")
	_, err := compiler.NovoTypeChecker().Check(programa)
	require.NoError(t, err)

	first := gerador.Gerar(programa)
	second := gerador.Gerar(programa)
	assert.Equal(t, first, second)
	assert.Equal(t, "String a = \"x\";\n", first)

	// nada de uma geração vaza para a próxima
	assert.Equal(t, "var b = a;\n", gerador.Gerar(analisar(t, "var b = a;")))
}

func TestTipoJava(t *testing.T) {
	assert.Equal(t, "int", java.TipoJava(parser.TipoInteiro))
	assert.Equal(t, "long", java.TipoJava(parser.TipoLongo))
	assert.Equal(t, "double", java.TipoJava(parser.TipoDecimal))
	assert.Equal(t, "String", java.TipoJava(parser.TipoTexto))
	assert.Equal(t, "var", java.TipoJava(parser.TipoDesconhecido))
}

func TestNomeJava(t *testing.T) {
	assert.Equal(t, "x", java.NomeJava("x"))
	assert.Equal(t, "int_", java.NomeJava("int"))
	assert.Equal(t, "Int", java.NomeJava("Int"))
}

func TestGetters(t *testing.T) {
	g := java.NovoGerador()
	assert.Equal(t, "Java", g.GetName())
	assert.Equal(t, ".java", g.GetExtension())
}
