package records

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"passaro-ok/internal/domain/birds"
	"passaro-ok/internal/ports/capabilities"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/birds/{birdID}/records", addRecordHandler(svc))
	r.Get("/birds/{birdID}/records", listRecordsHandler(svc))
}

type addRecordRequest struct {
	WeightGrams *float64 `json:"weight_grams"`
	IsMolting   *bool    `json:"is_molting"`
	Event       string   `json:"event"`
}

type recordResponse struct {
	ID          string    `json:"id"`
	BirdID      string    `json:"bird_id"`
	Date        time.Time `json:"date"`
	WeightGrams *float64  `json:"weight_grams,omitempty"`
	IsMolting   *bool     `json:"is_molting,omitempty"`
	Event       string    `json:"event,omitempty"`
}

type noticeResponse struct {
	Notice     string                  `json:"notice"`
	Capability capabilities.Capability `json:"capability"`
}

// addRecordHandler godoc
// @Summary Agregar registro avanzado
// @Description Peso (gramos), muda y/o evento libre. Requiere premium; sin premium responde 402 con aviso.
// @Tags records
// @Accept json
// @Produce json
// @Param birdID path string true "ID del pájaro"
// @Param payload body addRecordRequest true "Al menos un campo"
// @Success 201 {object} recordResponse
// @Failure 400 {string} string "invalid input"
// @Failure 402 {object} noticeResponse
// @Failure 404 {string} string "bird not found"
// @Router /birds/{birdID}/records [post]
func addRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rec, err := svc.Add(r.Context(), chi.URLParam(r, "birdID"), AddInput{
			WeightGrams: req.WeightGrams,
			IsMolting:   req.IsMolting,
			Event:       req.Event,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toRecordResponse(rec))
	}
}

func listRecordsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), chi.URLParam(r, "birdID"))
		if err != nil {
			writeError(w, err)
			return
		}
		out := make([]recordResponse, 0, len(items))
		for _, rec := range items {
			out = append(out, toRecordResponse(rec))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toRecordResponse(r AdvancedRecord) recordResponse {
	return recordResponse{
		ID:          r.ID,
		BirdID:      r.BirdID,
		Date:        r.Date,
		WeightGrams: r.WeightGrams,
		IsMolting:   r.IsMolting,
		Event:       r.Event,
	}
}

func writeError(w http.ResponseWriter, err error) {
	var locked *capabilities.LockedError
	switch {
	case errors.As(err, &locked):
		writeJSON(w, http.StatusPaymentRequired, noticeResponse{Notice: capabilities.Notice, Capability: locked.Capability})
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
