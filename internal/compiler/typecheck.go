package compiler

import (
	"fmt"

	"github.com/khevencolino/Balbismo/internal/backends/java"
	"github.com/khevencolino/Balbismo/internal/parser"
	"github.com/khevencolino/Balbismo/internal/utils"
)

// TypeChecker resolve as variáveis do programa e infere o tipo de cada uma.
// Um TypeChecker serve para uma única compilação.
type TypeChecker struct {
	tipos     map[string]parser.Tipo
	nomesJava map[string]string // nome gerado -> nome Balbismo
}

func NovoTypeChecker() *TypeChecker {
	return &TypeChecker{
		tipos:     make(map[string]parser.Tipo),
		nomesJava: make(map[string]string),
	}
}

// Check percorre os comandos na ordem do código. Uma variável só existe a
// partir da sua declaração e não pode ser declarada duas vezes, nem ter o
// mesmo nome Java de outra variável. O tipo inferido fica registrado em cada
// DeclaracaoVariavel.
func (t *TypeChecker) Check(programa *parser.Programa) (map[string]parser.Tipo, error) {
	for _, comando := range programa.Comandos {
		if err := t.checarComando(comando); err != nil {
			return nil, err
		}
	}
	return t.tipos, nil
}

func (t *TypeChecker) checarComando(comando parser.Comando) error {
	switch n := comando.(type) {
	case *parser.DeclaracaoVariavel:
		tipo, err := t.inferirExpr(n.Valor)
		if err != nil {
			return err
		}
		if _, existe := t.tipos[n.Nome]; existe {
			return utils.NovoErroSintaxe(
				fmt.Sprintf("variável '%s' já declarada", n.Nome),
				n.Token.Position.Line,
				n.Token.Position.Column,
				"",
			)
		}
		nomeJava := java.NomeJava(n.Nome)
		if outro, existe := t.nomesJava[nomeJava]; existe {
			return utils.NovoErroSintaxe(
				fmt.Sprintf("variável '%s' conflita com '%s'", n.Nome, outro),
				n.Token.Position.Line,
				n.Token.Position.Column,
				fmt.Sprintf("ambas viram '%s' em Java", nomeJava),
			)
		}
		t.tipos[n.Nome] = tipo
		t.nomesJava[nomeJava] = n.Nome
		n.Tipo = tipo
		return nil

	case *parser.ChamadaImprime:
		_, err := t.inferirExpr(n.Argumento)
		return err

	default:
		return fmt.Errorf("comando desconhecido: %T", comando)
	}
}

// Inferência e checagem
func (t *TypeChecker) inferirExpr(e parser.Expressao) (parser.Tipo, error) {
	switch n := e.(type) {
	case *parser.LiteralNumero:
		return n.TipoInferido(), nil

	case *parser.LiteralTexto:
		return parser.TipoTexto, nil

	case *parser.Identificador:
		if tipo, ok := t.tipos[n.Nome]; ok {
			return tipo, nil
		}
		return parser.TipoDesconhecido, utils.NovoErroSintaxe(
			fmt.Sprintf("variável '%s' não declarada", n.Nome),
			n.Token.Position.Line,
			n.Token.Position.Column,
			"",
		)

	default:
		return parser.TipoDesconhecido, fmt.Errorf("expressão desconhecida: %T", e)
	}
}
