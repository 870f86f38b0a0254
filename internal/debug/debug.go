package debug

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
)

var prefixo = color.New(color.FgCyan).SprintFunc()

// Logger escreve mensagens de depuração quando ativo. Um Logger nil ou
// desativado não escreve nada.
type Logger struct {
	saida io.Writer
	ativo bool
}

// Novo cria um logger que escreve em saida
func Novo(saida io.Writer, ativo bool) *Logger {
	return &Logger{saida: saida, ativo: ativo}
}

// NovoStderr cria um logger na saída de erro padrão, com suporte a cores
func NovoStderr(ativo bool) *Logger {
	return Novo(colorable.NewColorableStderr(), ativo)
}

// Ativo informa se as mensagens estão sendo escritas
func (l *Logger) Ativo() bool {
	return l != nil && l.ativo && l.saida != nil
}

func (l *Logger) Printf(format string, args ...interface{}) {
	if l.Ativo() {
		fmt.Fprint(l.saida, prefixo("[debug] "))
		fmt.Fprintf(l.saida, format, args...)
	}
}

func (l *Logger) Println(args ...interface{}) {
	if l.Ativo() {
		fmt.Fprint(l.saida, prefixo("[debug] "))
		fmt.Fprintln(l.saida, args...)
	}
}

// Dump escreve a estrutura completa de um valor
func (l *Logger) Dump(rotulo string, valor interface{}) {
	if l.Ativo() {
		fmt.Fprint(l.saida, prefixo("[debug] "))
		fmt.Fprintf(l.saida, "%s:\n%s", rotulo, spew.Sdump(valor))
	}
}
