package medicamentos

import (
	"strings"

	"medscribe-backend/sanitize"
)

// Classificacao is one normalized drug safety entry. Every field is always
// present and type-correct; absence in the model reply becomes a sentinel,
// never null.
type Classificacao struct {
	Medicamento string `json:"medicamento"`
	Categoria   string `json:"categoria"`
	Descricao   string `json:"descricao"`
}

const (
	maxNome      = 120
	maxDescricao = 80

	nomePadrao      = "não informado"
	descricaoPadrao = "sem dados suficientes"
)

// Closed category set. Anything outside it collapses to NA, never passes
// through.
var categoriasValidas = map[string]bool{
	"A": true, "B": true, "C": true, "D": true, "E": true, "NA": true,
}

// normalizeLista applies the schema contract to one of the gestacao/lactacao
// arrays from the parsed reply. Missing or non-array input yields an empty
// slice; non-object entries are dropped.
func normalizeLista(value any) []Classificacao {
	out := []Classificacao{}
	arr, ok := value.([]any)
	if !ok {
		return out
	}
	for _, item := range arr {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, normalizeEntrada(entry))
	}
	return out
}

func normalizeEntrada(entry map[string]any) Classificacao {
	nome := sanitize.Text(entry["medicamento"], maxNome)
	if nome == "" {
		nome = nomePadrao
	}
	categoria := strings.ToUpper(sanitize.Text(entry["categoria"], 0))
	if !categoriasValidas[categoria] {
		categoria = "NA"
	}
	descricao := sanitize.Text(entry["descricao"], maxDescricao)
	if descricao == "" {
		descricao = descricaoPadrao
	}
	return Classificacao{Medicamento: nome, Categoria: categoria, Descricao: descricao}
}
