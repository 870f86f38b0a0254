package parser

import (
	"fmt"
	"io"

	"github.com/m1gwings/treedrawer/tree"
)

// VisualizadorArvore cria representações visuais da AST
type VisualizadorArvore struct{}

// NovoVisualizador cria um novo visualizador
func NovoVisualizador() *VisualizadorArvore {
	return &VisualizadorArvore{}
}

// CriarArvore converte o programa para o formato do treedrawer
func (v *VisualizadorArvore) CriarArvore(programa *Programa) *tree.Tree {
	arvore := tree.NewTree(tree.NodeString("programa"))
	for _, comando := range programa.Comandos {
		v.adicionarSubarvore(arvore, comando.Aceitar(v).(*tree.Tree))
	}
	return arvore
}

// ImprimirArvore escreve a árvore do programa na saída
func (v *VisualizadorArvore) ImprimirArvore(saida io.Writer, programa *Programa) {
	fmt.Fprintln(saida, "=== Árvore Sintática ===")
	fmt.Fprintln(saida, v.CriarArvore(programa))
}

// VisitarDeclaracaoVariavel: '=' com o nome à esquerda e o valor à direita
func (v *VisualizadorArvore) VisitarDeclaracaoVariavel(declaracao *DeclaracaoVariavel) interface{} {
	arvore := tree.NewTree(tree.NodeString("var ="))
	arvore.AddChild(tree.NodeString(declaracao.Nome))
	v.adicionarSubarvore(arvore, declaracao.Valor.Aceitar(v).(*tree.Tree))
	return arvore
}

func (v *VisualizadorArvore) VisitarChamadaImprime(chamada *ChamadaImprime) interface{} {
	arvore := tree.NewTree(tree.NodeString("print"))
	v.adicionarSubarvore(arvore, chamada.Argumento.Aceitar(v).(*tree.Tree))
	return arvore
}

func (v *VisualizadorArvore) VisitarLiteralNumero(numero *LiteralNumero) interface{} {
	return tree.NewTree(tree.NodeString(numero.Valor))
}

func (v *VisualizadorArvore) VisitarLiteralTexto(texto *LiteralTexto) interface{} {
	return tree.NewTree(tree.NodeString(texto.String()))
}

func (v *VisualizadorArvore) VisitarIdentificador(identificador *Identificador) interface{} {
	return tree.NewTree(tree.NodeString(identificador.Nome))
}

// adicionarSubarvore adiciona uma subárvore como filho
func (v *VisualizadorArvore) adicionarSubarvore(pai *tree.Tree, filho *tree.Tree) {
	// Adiciona o valor do nó raiz do filho
	novoFilho := pai.AddChild(filho.Val())

	// Se o filho tem seus próprios filhos, adiciona recursivamente
	v.copiarFilhos(filho, novoFilho)
}

// copiarFilhos copia todos os filhos de uma árvore para outra
func (v *VisualizadorArvore) copiarFilhos(origem *tree.Tree, destino *tree.Tree) {
	for i := 0; ; i++ {
		filho, err := origem.Child(i)
		if err != nil {
			break // Não há mais filhos
		}

		novoFilho := destino.AddChild(filho.Val())
		v.copiarFilhos(filho, novoFilho)
	}
}
