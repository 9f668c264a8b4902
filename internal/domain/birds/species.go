package birds

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SpeciesOptions son las sugerencias que muestra el formulario.
var SpeciesOptions = []string{
	"Canário",
	"Periquito",
	"Calopsita",
	"Papagaio",
	"Agapornis",
	"Curió",
	"Coleiro",
	"Outro",
}

// foldKey quita acentos y pasa a minúsculas: "Canário" -> "canario".
func foldKey(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		out = strings.TrimSpace(s)
	}
	return strings.ToLower(out)
}

// CanonicalSpecies devuelve la sugerencia equivalente (sin importar acentos ni mayúsculas)
// o el texto libre recortado si no coincide con ninguna.
func CanonicalSpecies(s string) string {
	key := foldKey(s)
	for _, opt := range SpeciesOptions {
		if foldKey(opt) == key {
			return opt
		}
	}
	return strings.Join(strings.Fields(s), " ")
}
