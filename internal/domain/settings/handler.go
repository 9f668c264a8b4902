package settings

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"passaro-ok/internal/ports/capabilities"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/settings", getSettingsHandler(svc))
	r.Post("/settings/onboarding", onboardingHandler(svc))
	r.Put("/settings/premium", premiumHandler(svc))
	r.Put("/settings/reminder", reminderHandler(svc))
}

type reminderResponse struct {
	Enabled bool       `json:"enabled"`
	Time    string     `json:"time"`
	NextAt  *time.Time `json:"next_at,omitempty"`
}

type settingsResponse struct {
	Onboarded bool             `json:"onboarded"`
	Premium   bool             `json:"premium"`
	Reminder  reminderResponse `json:"reminder"`
}

type premiumRequest struct {
	Premium *bool `json:"premium"`
}

type reminderRequest struct {
	Enabled bool   `json:"enabled"`
	Time    string `json:"time"`
}

type noticeResponse struct {
	Notice     string                  `json:"notice"`
	Capability capabilities.Capability `json:"capability"`
}

func getSettingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := svc.Get(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toSettingsResponse(s, time.Now()))
	}
}

func onboardingHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := svc.CompleteOnboarding(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toSettingsResponse(s, time.Now()))
	}
}

// premiumHandler godoc
// @Summary Activar/desactivar premium
// @Description Cambia el flag local "premium" que habilita todas las funciones bloqueadas.
// @Tags settings
// @Accept json
// @Produce json
// @Param payload body premiumRequest true "premium: true|false"
// @Success 200 {object} settingsResponse
// @Failure 400 {string} string "invalid json"
// @Router /settings/premium [put]
func premiumHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req premiumRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Premium == nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		s, err := svc.SetPremium(r.Context(), *req.Premium)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toSettingsResponse(s, time.Now()))
	}
}

// reminderHandler godoc
// @Summary Configurar recordatorio diario
// @Description enabled=false siempre se acepta. Una hora distinta de 08:00 requiere premium (402 con aviso).
// @Tags settings
// @Accept json
// @Produce json
// @Param payload body reminderRequest true "enabled y time HH:MM"
// @Success 200 {object} settingsResponse
// @Failure 400 {string} string "invalid json / hora inválida"
// @Failure 402 {object} noticeResponse
// @Router /settings/reminder [put]
func reminderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reminderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		s, err := svc.UpdateReminder(r.Context(), ReminderInput{Enabled: req.Enabled, Time: req.Time})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toSettingsResponse(s, time.Now()))
	}
}

func toSettingsResponse(s Settings, now time.Time) settingsResponse {
	out := settingsResponse{
		Onboarded: s.Onboarded,
		Premium:   s.Premium,
		Reminder:  reminderResponse{Enabled: s.Reminder.Enabled, Time: s.Reminder.Time},
	}
	if next, ok := NextReminder(s.Reminder, now); ok {
		out.Reminder.NextAt = &next
	}
	return out
}

func writeError(w http.ResponseWriter, err error) {
	var locked *capabilities.LockedError
	switch {
	case errors.As(err, &locked):
		writeJSON(w, http.StatusPaymentRequired, noticeResponse{Notice: capabilities.Notice, Capability: locked.Capability})
	case errors.Is(err, ErrInvalidTime):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
