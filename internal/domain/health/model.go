package health

// Severity es la importancia ordinal de una respuesta del cuestionario.
type Severity int

const (
	SeverityNormal Severity = 0
	SeverityMild   Severity = 1
	SeveritySevere Severity = 2
)

func (s Severity) String() string {
	switch s {
	case SeverityNormal:
		return "normal"
	case SeverityMild:
		return "mild"
	case SeveritySevere:
		return "severe"
	default:
		return "unknown"
	}
}

// Status es el semáforo agregado de un pájaro.
// @Enum GREEN, YELLOW, RED
type Status string

const (
	StatusGreen  Status = "GREEN"
	StatusYellow Status = "YELLOW"
	StatusRed    Status = "RED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusGreen, StatusYellow, StatusRed:
		return true
	default:
		return false
	}
}

// Text devuelve el título que ve el usuario (la app es en portugués).
func (s Status) Text() string {
	switch s {
	case StatusGreen:
		return "Saudável"
	case StatusYellow:
		return "Atenção"
	case StatusRed:
		return "Crítico"
	default:
		return ""
	}
}

// Message devuelve la recomendación asociada al estado.
func (s Status) Message() string {
	switch s {
	case StatusGreen:
		return "Seu amigo está ótimo! Continue assim."
	case StatusYellow:
		return "Observe de perto. Algo não está 100%."
	case StatusRed:
		return "Consulte um veterinário imediatamente."
	default:
		return ""
	}
}

// Category identifica una de las cuatro preguntas fijas del chequeo.
type Category string

const (
	CategoryAppetite  Category = "appetite"
	CategoryActivity  Category = "activity"
	CategoryDroppings Category = "droppings"
	CategorySinging   Category = "singing"
)

// Categories en el orden en que se muestran.
var Categories = []Category{
	CategoryAppetite,
	CategoryActivity,
	CategoryDroppings,
	CategorySinging,
}

// QuestionOption es una respuesta posible dentro de una categoría.
type QuestionOption struct {
	Label    string
	Value    string
	Severity Severity
}
