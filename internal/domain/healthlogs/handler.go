package healthlogs

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"passaro-ok/internal/domain/birds"
	"passaro-ok/internal/domain/health"
	"passaro-ok/internal/ports/capabilities"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/questions", listQuestionsHandler())

	r.Post("/birds/{birdID}/checks", recordCheckHandler(svc))
	r.Get("/birds/{birdID}/history", historyHandler(svc))
	r.Get("/birds/{birdID}/history.csv", exportHandler(svc))
}

// recordCheckRequest: answers mapea categoría -> value token (ver GET /questions).
type recordCheckRequest struct {
	Answers map[string]string `json:"answers"`
	Notes   string            `json:"notes"`
}

// logResponse representa un chequeo guardado.
type logResponse struct {
	ID           string        `json:"id"`
	BirdID       string        `json:"bird_id"`
	Date         time.Time     `json:"date"`
	Appetite     string        `json:"appetite"`
	Activity     string        `json:"activity"`
	Droppings    string        `json:"droppings"`
	Singing      string        `json:"singing"`
	ResultStatus health.Status `json:"result_status"`
	StatusText   string        `json:"status_text"`
	Message      string        `json:"message"`
	Notes        string        `json:"notes,omitempty"`
}

type historyResponse struct {
	Logs      []logResponse `json:"logs"`
	Total     int           `json:"total"`
	Truncated bool          `json:"truncated"`
	Notice    string        `json:"notice,omitempty"`
}

type questionResponse struct {
	Category health.Category  `json:"category"`
	Options  []optionResponse `json:"options"`
}

type optionResponse struct {
	Label    string          `json:"label"`
	Value    string          `json:"value"`
	Severity health.Severity `json:"severity"`
}

type noticeResponse struct {
	Notice     string                  `json:"notice"`
	Capability capabilities.Capability `json:"capability"`
}

type incompleteResponse struct {
	Error   string            `json:"error"`
	Missing []health.Category `json:"missing"`
}

func listQuestionsHandler() http.HandlerFunc {
	out := make([]questionResponse, 0, len(health.Categories))
	for _, c := range health.Categories {
		q := questionResponse{Category: c}
		for _, o := range health.Options(c) {
			q.Options = append(q.Options, optionResponse{Label: o.Label, Value: o.Value, Severity: o.Severity})
		}
		out = append(out, q)
	}

	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, out)
	}
}

// recordCheckHandler godoc
// @Summary Registrar chequeo de salud
// @Description Clasifica las cuatro respuestas (GREEN/YELLOW/RED), agrega el log y actualiza el estado del pájaro. Si falta alguna categoría responde 422 con la lista de faltantes.
// @Tags health
// @Accept json
// @Produce json
// @Param birdID path string true "ID del pájaro"
// @Param payload body recordCheckRequest true "answers: appetite, activity, droppings, singing"
// @Success 201 {object} logResponse
// @Failure 400 {string} string "invalid json / opción desconocida"
// @Failure 404 {string} string "bird not found"
// @Failure 422 {object} incompleteResponse
// @Router /birds/{birdID}/checks [post]
func recordCheckHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recordCheckRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		answers, err := health.ParseAnswers(req.Answers)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if !answers.Complete() {
			writeJSON(w, http.StatusUnprocessableEntity, incompleteResponse{
				Error:   ErrIncompleteAnswers.Error(),
				Missing: answers.Missing(),
			})
			return
		}

		l, err := svc.Record(r.Context(), chi.URLParam(r, "birdID"), RecordInput{
			Answers: answers,
			Notes:   req.Notes,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toLogResponse(l))
	}
}

func historyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h, err := svc.History(r.Context(), chi.URLParam(r, "birdID"))
		if err != nil {
			writeError(w, err)
			return
		}

		out := historyResponse{
			Logs:      make([]logResponse, 0, len(h.Logs)),
			Total:     h.Total,
			Truncated: h.Truncated,
		}
		for _, l := range h.Logs {
			out.Logs = append(out.Logs, toLogResponse(l))
		}
		if h.Truncated {
			out.Notice = capabilities.Notice
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func exportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		birdID := chi.URLParam(r, "birdID")

		// Armamos en memoria para poder responder error antes de escribir headers.
		var buf bytes.Buffer
		if err := svc.ExportCSV(r.Context(), birdID, &buf); err != nil {
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="historico-`+birdID+`.csv"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	}
}

func toLogResponse(l HealthLog) logResponse {
	return logResponse{
		ID:           l.ID,
		BirdID:       l.BirdID,
		Date:         l.Date,
		Appetite:     l.Appetite,
		Activity:     l.Activity,
		Droppings:    l.Droppings,
		Singing:      l.Singing,
		ResultStatus: l.ResultStatus,
		StatusText:   l.ResultStatus.Text(),
		Message:      l.ResultStatus.Message(),
		Notes:        l.Notes,
	}
}

func writeError(w http.ResponseWriter, err error) {
	var locked *capabilities.LockedError
	switch {
	case errors.As(err, &locked):
		writeJSON(w, http.StatusPaymentRequired, noticeResponse{Notice: capabilities.Notice, Capability: locked.Capability})
	case errors.Is(err, ErrIncompleteAnswers):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, birds.ErrNotFound):
		http.Error(w, "bird not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
