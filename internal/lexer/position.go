package lexer

import "fmt"

// Position representa uma posição no código fonte
type Position struct {
	Line   int // Linha no código, a partir de 1
	Column int // Coluna no código, em runas, a partir de 1
	Offset int // Posição absoluta em bytes
}

// String retorna uma representação em string da posição
func (p Position) String() string {
	return fmt.Sprintf("linha %d, coluna %d", p.Line, p.Column)
}

// NovaPosicao cria uma nova posição
func NovaPosicao(linha, coluna, offset int) Position {
	return Position{
		Line:   linha,
		Column: coluna,
		Offset: offset,
	}
}

// Antes informa se p vem estritamente antes de outra em (linha, coluna)
func (p Position) Antes(outra Position) bool {
	if p.Line != outra.Line {
		return p.Line < outra.Line
	}
	return p.Column < outra.Column
}
