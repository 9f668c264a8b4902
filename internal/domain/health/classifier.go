package health

// Classify calcula el semáforo a partir de las respuestas.
//
// Cualquier respuesta SEVERE o tres o más MILD => RED.
// Alguna MILD => YELLOW. Si no, GREEN.
//
// Se asume que Answers está completo; el llamador debe validar con Complete().
func Classify(answers Answers) Status {
	mildCount := 0
	severeCount := 0

	for _, opt := range answers {
		switch opt.Severity {
		case SeverityMild:
			mildCount++
		case SeveritySevere:
			severeCount++
		}
	}

	if severeCount > 0 || mildCount >= 3 {
		return StatusRed
	}
	if mildCount > 0 {
		return StatusYellow
	}
	return StatusGreen
}
