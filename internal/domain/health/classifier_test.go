package health

import "testing"

func mustAnswers(t *testing.T, tokens map[string]string) Answers {
	t.Helper()
	a, err := ParseAnswers(tokens)
	if err != nil {
		t.Fatalf("parse answers: %v", err)
	}
	if !a.Complete() {
		t.Fatalf("expected complete answers, missing=%v", a.Missing())
	}
	return a
}

func TestClassify_Scenarios(t *testing.T) {
	cases := []struct {
		name   string
		tokens map[string]string
		want   Status
	}{
		{
			name:   "all normal",
			tokens: map[string]string{"appetite": "normal", "activity": "normal", "droppings": "normal", "singing": "normal"},
			want:   StatusGreen,
		},
		{
			name:   "two mild",
			tokens: map[string]string{"appetite": "low", "activity": "normal", "droppings": "normal", "singing": "silent"},
			want:   StatusYellow,
		},
		{
			name:   "one severe",
			tokens: map[string]string{"appetite": "refused", "activity": "active", "droppings": "normal", "singing": "normal"},
			want:   StatusRed,
		},
		{
			name:   "exactly three mild",
			tokens: map[string]string{"appetite": "low", "activity": "quiet", "droppings": "soft", "singing": "normal"},
			want:   StatusRed,
		},
		{
			name:   "one mild",
			tokens: map[string]string{"appetite": "normal", "activity": "active", "droppings": "normal", "singing": "different"},
			want:   StatusYellow,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(mustAnswers(t, tc.tokens))
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

// Recorre todas las combinaciones posibles del catálogo.
func TestClassify_AllCombinations(t *testing.T) {
	total := 0
	for _, ap := range Options(CategoryAppetite) {
		for _, ac := range Options(CategoryActivity) {
			for _, dr := range Options(CategoryDroppings) {
				for _, si := range Options(CategorySinging) {
					a := Answers{
						CategoryAppetite:  ap,
						CategoryActivity:  ac,
						CategoryDroppings: dr,
						CategorySinging:   si,
					}
					mild, severe := 0, 0
					for _, o := range a {
						switch o.Severity {
						case SeverityMild:
							mild++
						case SeveritySevere:
							severe++
						}
					}

					got := Classify(a)
					switch {
					case severe >= 1:
						if got != StatusRed {
							t.Fatalf("severe=%d mild=%d: expected RED, got %s", severe, mild, got)
						}
					case mild >= 3:
						if got != StatusRed {
							t.Fatalf("mild=%d: expected RED, got %s", mild, got)
						}
					case mild >= 1:
						if got != StatusYellow {
							t.Fatalf("mild=%d: expected YELLOW, got %s", mild, got)
						}
					default:
						if got != StatusGreen {
							t.Fatalf("expected GREEN, got %s", got)
						}
					}
					total++
				}
			}
		}
	}

	if total != 3*4*4*3 {
		t.Fatalf("unexpected catalog size %d", total)
	}
}

func TestAnswers_MissingAndParse(t *testing.T) {
	a, err := ParseAnswers(map[string]string{"appetite": "low", "singing": ""})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Complete() {
		t.Fatalf("expected incomplete answers")
	}
	missing := a.Missing()
	if len(missing) != 3 || missing[0] != CategoryActivity || missing[2] != CategorySinging {
		t.Fatalf("unexpected missing categories: %v", missing)
	}

	if _, err := ParseAnswers(map[string]string{"appetite": "hungry"}); err == nil {
		t.Fatalf("expected error for unknown option")
	}
	if _, err := ParseAnswers(map[string]string{"mood": "normal"}); err == nil {
		t.Fatalf("expected error for unknown category")
	}
}

func TestStatus_Texts(t *testing.T) {
	if StatusGreen.Text() != "Saudável" || StatusRed.Message() == "" {
		t.Fatalf("unexpected status texts")
	}
	if Status("BLUE").Valid() {
		t.Fatalf("BLUE should not be valid")
	}
}
