// Package config carrega as opções do compilador de um arquivo TOML.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/naoina/toml"

	"github.com/khevencolino/Balbismo/internal/utils"
)

// ArquivoPadrao é procurado no diretório atual quando nenhum é informado
const ArquivoPadrao = "balbismo.toml"

// Config reúne as opções do compilador
type Config struct {
	Classe     string `toml:",omitempty"` // Nome da classe Java; vazio usa o nome do arquivo
	Saida      string `toml:",omitempty"` // Diretório de saída; vazio escreve na saída padrão
	Indentacao int    // Espaços por nível na classe gerada
	Debug      bool   // Mensagens de depuração
}

// Padrao retorna a configuração usada quando não há arquivo
func Padrao() Config {
	return Config{Indentacao: 4}
}

// As chaves TOML usam os mesmos nomes dos campos da struct.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("campo '%s' não existe em %s", field, rt.String())
	},
}

// Carregar lê o arquivo sobre os valores já presentes em cfg
func Carregar(arquivo string, cfg *Config) error {
	f, err := os.Open(arquivo)
	if err != nil {
		return utils.NovoErro("erro ao ler configuração", err.Error())
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Adiciona o nome do arquivo aos erros que têm número de linha
	var erroLinha *toml.LineError
	if errors.As(err, &erroLinha) {
		return utils.NovoErro("configuração inválida", arquivo+", "+err.Error())
	}
	if err != nil {
		return utils.NovoErro("configuração inválida", err.Error())
	}
	return cfg.Validar()
}

// Validar verifica os limites das opções
func (c *Config) Validar() error {
	if c.Indentacao < 0 || c.Indentacao > 16 {
		return utils.NovoErro("configuração inválida", fmt.Sprintf("Indentacao deve estar entre 0 e 16, recebeu %d", c.Indentacao))
	}
	if c.Classe != "" && !identificadorJava(c.Classe) {
		return utils.NovoErro("configuração inválida", fmt.Sprintf("Classe '%s' não é um identificador Java", c.Classe))
	}
	return nil
}

// Serializar retorna a configuração em TOML
func (c *Config) Serializar() ([]byte, error) {
	return tomlSettings.Marshal(c)
}

func identificadorJava(nome string) bool {
	for i, r := range nome {
		letra := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_' || r == '$'
		digito := r >= '0' && r <= '9'
		if !letra && !(digito && i > 0) {
			return false
		}
	}
	return nome != ""
}
