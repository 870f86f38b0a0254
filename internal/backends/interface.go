package backends

import "github.com/khevencolino/Balbismo/internal/parser"

// Backend traduz um programa já validado para o texto da linguagem alvo.
// Gerar não falha.
type Backend interface {
	Gerar(programa *parser.Programa) string
	GetName() string
	GetExtension() string
}
