package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"gopkg.in/urfave/cli.v1"

	"github.com/khevencolino/Balbismo/internal/compiler"
	"github.com/khevencolino/Balbismo/internal/config"
	"github.com/khevencolino/Balbismo/internal/debug"
	"github.com/khevencolino/Balbismo/internal/lexer"
	"github.com/khevencolino/Balbismo/internal/parser"
	"github.com/khevencolino/Balbismo/internal/utils"
)

const versao = "0.1.0"

var (
	configFlag = cli.StringFlag{
		Name:  "config",
		Usage: "Arquivo de configuração TOML (padrão: " + config.ArquivoPadrao + " se existir)",
	}
	saidaFlag = cli.StringFlag{
		Name:  "saida, o",
		Usage: "Diretório onde escrever <Classe>.java (padrão: saída padrão)",
	}
	classeFlag = cli.StringFlag{
		Name:  "classe",
		Usage: "Nome da classe Java gerada (padrão: nome do arquivo)",
	}
	semClasseFlag = cli.BoolFlag{
		Name:  "sem-classe",
		Usage: "Emite apenas os comandos, sem a classe em volta",
	}
	debugFlag = cli.BoolFlag{
		Name:  "debug",
		Usage: "Ativar mensagens de debug",
	}

	compilarCommand = cli.Command{
		Action:    compilar,
		Name:      "compilar",
		Usage:     "Traduz um programa Balbismo para Java",
		ArgsUsage: "<arquivo>",
		Flags:     []cli.Flag{configFlag, saidaFlag, classeFlag, semClasseFlag, debugFlag},
	}
	tokensCommand = cli.Command{
		Action:    mostrarTokens,
		Name:      "tokens",
		Usage:     "Mostra os tokens encontrados pelo analisador léxico",
		ArgsUsage: "<arquivo>",
	}
	arvoreCommand = cli.Command{
		Action:    mostrarArvore,
		Name:      "arvore",
		Usage:     "Mostra a árvore sintática do programa",
		ArgsUsage: "<arquivo>",
	}
	configCommand = cli.Command{
		Action: mostrarConfig,
		Name:   "config",
		Usage:  "Mostra a configuração efetiva em TOML",
		Flags:  []cli.Flag{configFlag, saidaFlag, classeFlag, debugFlag},
	}
)

var corErro = color.New(color.FgRed, color.Bold)

func main() {
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		color.NoColor = true
	}

	app := cli.NewApp()
	app.Name = "balbismo"
	app.Usage = "Compilador Balbismo para Java"
	app.Version = versao
	app.Commands = []cli.Command{compilarCommand, tokensCommand, arvoreCommand, configCommand}
	app.Flags = compilarCommand.Flags
	app.Action = compilar

	if err := app.Run(os.Args); err != nil {
		corErro.Fprintf(colorable.NewColorableStderr(), "Erro: %v\n", err)
		os.Exit(1)
	}
}

// carregarConfig junta padrão, arquivo e flags, nessa ordem
func carregarConfig(ctx *cli.Context) (config.Config, error) {
	cfg := config.Padrao()

	arquivo := ctx.String(configFlag.Name)
	if arquivo == "" {
		if _, err := os.Stat(config.ArquivoPadrao); err == nil {
			arquivo = config.ArquivoPadrao
		}
	}
	if arquivo != "" {
		if err := config.Carregar(arquivo, &cfg); err != nil {
			return cfg, err
		}
	}

	if saida := ctx.String("saida"); saida != "" {
		cfg.Saida = saida
	}
	if classe := ctx.String(classeFlag.Name); classe != "" {
		cfg.Classe = classe
	}
	if ctx.Bool(debugFlag.Name) {
		cfg.Debug = true
	}
	return cfg, cfg.Validar()
}

func novoCompilador(cfg config.Config) *compiler.Compiler {
	return compiler.NovoCompilador(
		compiler.ComConfig(cfg),
		compiler.ComLogger(debug.NovoStderr(cfg.Debug)),
	)
}

func arquivoEntrada(ctx *cli.Context) (string, error) {
	if ctx.NArg() < 1 {
		return "", fmt.Errorf("arquivo de entrada requerido")
	}
	return ctx.Args().First(), nil
}

func compilar(ctx *cli.Context) error {
	arquivo, err := arquivoEntrada(ctx)
	if err != nil {
		return err
	}
	cfg, err := carregarConfig(ctx)
	if err != nil {
		return err
	}
	c := novoCompilador(cfg)

	if cfg.Saida != "" {
		caminho, err := c.CompilarArquivo(arquivo, cfg.Saida)
		if err != nil {
			return err
		}
		fmt.Printf("Código Java escrito em '%s'\n", caminho)
		return nil
	}

	conteudo, err := utils.LerArquivo(arquivo)
	if err != nil {
		return err
	}

	var codigo string
	if ctx.Bool(semClasseFlag.Name) {
		codigo, err = c.Compilar(conteudo)
	} else {
		codigo, err = c.CompilarClasse(conteudo, c.NomeClasse(arquivo))
	}
	if err != nil {
		return err
	}
	fmt.Print(codigo)
	return nil
}

func mostrarTokens(ctx *cli.Context) error {
	arquivo, err := arquivoEntrada(ctx)
	if err != nil {
		return err
	}
	conteudo, err := utils.LerArquivo(arquivo)
	if err != nil {
		return err
	}

	lexer.ImprimirTokens(os.Stdout, compiler.Tokenizar(conteudo))
	return nil
}

func mostrarArvore(ctx *cli.Context) error {
	arquivo, err := arquivoEntrada(ctx)
	if err != nil {
		return err
	}
	conteudo, err := utils.LerArquivo(arquivo)
	if err != nil {
		return err
	}

	programa, err := compiler.NovoCompilador().Analisar(conteudo)
	if err != nil {
		return err
	}
	parser.NovoVisualizador().ImprimirArvore(os.Stdout, programa)
	return nil
}

func mostrarConfig(ctx *cli.Context) error {
	cfg, err := carregarConfig(ctx)
	if err != nil {
		return err
	}
	out, err := cfg.Serializar()
	if err != nil {
		return err
	}
	os.Stdout.Write(out)
	return nil
}
