package compiler

import (
	"path/filepath"
	"strings"

	"github.com/khevencolino/Balbismo/internal/backends"
	"github.com/khevencolino/Balbismo/internal/backends/java"
	"github.com/khevencolino/Balbismo/internal/config"
	"github.com/khevencolino/Balbismo/internal/debug"
	"github.com/khevencolino/Balbismo/internal/lexer"
	"github.com/khevencolino/Balbismo/internal/parser"
	"github.com/khevencolino/Balbismo/internal/utils"
)

// Compiler representa o compilador principal. Só guarda opções imutáveis, então
// a mesma instância pode compilar em várias goroutines ao mesmo tempo.
type Compiler struct {
	config  config.Config
	log     *debug.Logger
	gerador *Generator
	backend backends.Backend
}

// Opcao altera a construção do compilador
type Opcao func(*Compiler)

// ComConfig usa a configuração informada
func ComConfig(cfg config.Config) Opcao {
	return func(c *Compiler) {
		c.config = cfg
	}
}

// ComLogger usa o logger informado para mensagens de depuração
func ComLogger(log *debug.Logger) Opcao {
	return func(c *Compiler) {
		c.log = log
	}
}

// NovoCompilador cria um novo compilador
func NovoCompilador(opcoes ...Opcao) *Compiler {
	c := &Compiler{config: config.Padrao()}
	for _, opcao := range opcoes {
		opcao(c)
	}
	c.gerador = NovoGerador(c.config.Indentacao)
	c.backend = java.NovoGerador()
	return c
}

var padrao = NovoCompilador()

// Tokenizar usa o compilador padrão
func Tokenizar(fonte string) []lexer.Token {
	return padrao.Tokenizar(fonte)
}

// Compilar usa o compilador padrão
func Compilar(fonte string) (string, error) {
	return padrao.Compilar(fonte)
}

// Tokenizar realiza análise léxica. Nunca falha.
func (c *Compiler) Tokenizar(fonte string) []lexer.Token {
	tokens := lexer.NovoLexer(fonte).Tokenizar()
	c.log.Printf("%d tokens encontrados\n", len(tokens))
	return tokens
}

// Analisar realiza as análises léxica, sintática e de variáveis
func (c *Compiler) Analisar(fonte string) (*parser.Programa, error) {
	tokens := c.Tokenizar(fonte)

	programa, err := parser.NovoParser(tokens).AnalisarPrograma()
	if err != nil {
		return nil, err
	}

	tipos, err := NovoTypeChecker().Check(programa)
	if err != nil {
		return nil, err
	}
	c.log.Dump("tipos inferidos", tipos)

	return programa, nil
}

// Compilar traduz o código fonte em comandos Java, um por linha. Código vazio
// ou só com espaços gera texto vazio. Erros são sempre *utils.SyntaxError.
func (c *Compiler) Compilar(fonte string) (string, error) {
	if strings.TrimSpace(fonte) == "" {
		c.log.Println("código fonte vazio")
		return "", nil
	}

	programa, err := c.Analisar(fonte)
	if err != nil {
		return "", err
	}

	c.log.Printf("gerando %s para %d comandos\n", c.backend.GetName(), len(programa.Comandos))
	return c.backend.Gerar(programa), nil
}

// CompilarClasse compila e envolve o resultado em uma classe Java executável
func (c *Compiler) CompilarClasse(fonte string, classe string) (string, error) {
	corpo, err := c.Compilar(fonte)
	if err != nil {
		return "", err
	}
	return c.gerador.GerarClasse(classe, corpo), nil
}

// NomeClasse escolhe o nome da classe: o configurado ou o derivado do arquivo
func (c *Compiler) NomeClasse(arquivoEntrada string) string {
	if c.config.Classe != "" {
		return c.config.Classe
	}
	return NomeClasse(utils.NomeBase(arquivoEntrada))
}

// CompilarArquivo compila um arquivo fonte e escreve <Classe>.java no
// diretório de saída. Retorna o caminho escrito.
func (c *Compiler) CompilarArquivo(arquivoEntrada string, diretorioSaida string) (string, error) {
	conteudo, err := utils.LerArquivo(arquivoEntrada)
	if err != nil {
		return "", err
	}

	classe := c.NomeClasse(arquivoEntrada)
	codigo, err := c.CompilarClasse(conteudo, classe)
	if err != nil {
		return "", err
	}

	arquivoSaida := filepath.Join(diretorioSaida, classe+c.backend.GetExtension())
	if err := utils.EscreverArquivo(arquivoSaida, codigo); err != nil {
		return "", err
	}

	c.log.Printf("código Java escrito em '%s'\n", arquivoSaida)
	return arquivoSaida, nil
}
