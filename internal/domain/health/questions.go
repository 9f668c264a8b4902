package health

import (
	"fmt"
	"strings"
)

var questions = map[Category][]QuestionOption{
	CategoryAppetite: {
		{Label: "Normal", Value: "normal", Severity: SeverityNormal},
		{Label: "Baixo", Value: "low", Severity: SeverityMild},
		{Label: "Recusou", Value: "refused", Severity: SeveritySevere},
	},
	CategoryActivity: {
		{Label: "Ativo", Value: "active", Severity: SeverityNormal},
		{Label: "Normal", Value: "normal", Severity: SeverityNormal},
		{Label: "Quieto", Value: "quiet", Severity: SeverityMild},
		{Label: "Muito Quieto", Value: "very_quiet", Severity: SeveritySevere},
	},
	CategoryDroppings: {
		{Label: "Normal", Value: "normal", Severity: SeverityNormal},
		{Label: "Mole", Value: "soft", Severity: SeverityMild},
		{Label: "Diarreia", Value: "diarrhea", Severity: SeveritySevere},
		{Label: "Cor Diferente", Value: "discolored", Severity: SeveritySevere},
	},
	CategorySinging: {
		{Label: "Normal", Value: "normal", Severity: SeverityNormal},
		{Label: "Silencioso", Value: "silent", Severity: SeverityMild},
		{Label: "Diferente", Value: "different", Severity: SeverityMild},
	},
}

// Options devuelve una copia de las opciones de la categoría (nil si no existe).
func Options(c Category) []QuestionOption {
	opts, ok := questions[c]
	if !ok {
		return nil
	}
	out := make([]QuestionOption, len(opts))
	copy(out, opts)
	return out
}

// Lookup busca una opción por su token de valor.
func Lookup(c Category, value string) (QuestionOption, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	for _, o := range questions[c] {
		if o.Value == value {
			return o, true
		}
	}
	return QuestionOption{}, false
}

// Answers mapea cada categoría a la opción elegida.
type Answers map[Category]QuestionOption

// Missing lista las categorías sin responder, en orden de presentación.
func (a Answers) Missing() []Category {
	out := make([]Category, 0)
	for _, c := range Categories {
		if _, ok := a[c]; !ok {
			out = append(out, c)
		}
	}
	return out
}

// Complete indica si las cuatro categorías tienen respuesta.
func (a Answers) Complete() bool {
	return len(a.Missing()) == 0
}

// ParseAnswers arma Answers a partir de tokens (categoría -> value).
// Tokens vacíos se ignoran (quedan como no respondidos); tokens desconocidos son error.
func ParseAnswers(tokens map[string]string) (Answers, error) {
	out := Answers{}
	for k, v := range tokens {
		c := Category(strings.ToLower(strings.TrimSpace(k)))
		if _, ok := questions[c]; !ok {
			return nil, fmt.Errorf("unknown category %q", k)
		}
		if strings.TrimSpace(v) == "" {
			continue
		}
		opt, ok := Lookup(c, v)
		if !ok {
			return nil, fmt.Errorf("unknown option %q for %s", v, c)
		}
		out[c] = opt
	}
	return out, nil
}
