package birds

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"passaro-ok/internal/domain/health"
	"passaro-ok/internal/ports/capabilities"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/species", listSpeciesHandler())

	r.Post("/birds", createBirdHandler(svc))
	r.Get("/birds", listBirdsHandler(svc))

	r.Get("/birds/{birdID}", getBirdHandler(svc))
	r.Patch("/birds/{birdID}", updateBirdHandler(svc))
	r.Delete("/birds/{birdID}", deleteBirdHandler(svc))

	r.Get("/birds/{birdID}/photo", getPhotoHandler(svc))
	r.Get("/birds/{birdID}/share", shareHandler(svc))
}

// createBirdRequest es el cuerpo del formulario "adicionar pássaro".
type createBirdRequest struct {
	Name        string `json:"name"`
	Species     string `json:"species"`
	Age         string `json:"age"`
	AcquireDate string `json:"acquire_date"` // YYYY-MM-DD opcional
	Photo       string `json:"photo"`        // data URL opcional
}

type updateBirdRequest struct {
	Name    *string `json:"name"`
	Species *string `json:"species"`
	Age     *string `json:"age"`
	Photo   *string `json:"photo"` // "" = quitar foto
}

// birdResponse representa un pájaro devuelto por la API.
type birdResponse struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Species     string        `json:"species"`
	Age         string        `json:"age"`
	AcquireDate *string       `json:"acquire_date,omitempty"`
	Status      health.Status `json:"status"`
	StatusText  string        `json:"status_text"`
	LastUpdate  time.Time     `json:"last_update"`
	HasPhoto    bool          `json:"has_photo"`
	CreatedAt   time.Time     `json:"created_at"`
}

type shareResponse struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

type noticeResponse struct {
	Notice     string                  `json:"notice"`
	Capability capabilities.Capability `json:"capability"`
}

// maxBodyBytes cubre una foto de MaxPhotoBytes en base64 más los campos del formulario.
const maxBodyBytes = MaxPhotoBytes/3*4 + 1<<20

// decodeBody decodifica JSON con tope de tamaño. Responde 400/413 y devuelve false si falla.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
	if err == nil {
		return true
	}
	var tooBig *http.MaxBytesError
	if errors.As(err, &tooBig) {
		http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
		return false
	}
	http.Error(w, "invalid json", http.StatusBadRequest)
	return false
}

func listSpeciesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, SpeciesOptions)
	}
}

// createBirdHandler godoc
// @Summary Registrar pájaro
// @Description Crea un pájaro en estado GREEN. Sin premium solo se permite uno (402 con aviso).
// @Tags birds
// @Accept json
// @Produce json
// @Param payload body createBirdRequest true "Datos del pájaro; acquire_date YYYY-MM-DD; photo como data URL"
// @Success 201 {object} birdResponse
// @Failure 400 {string} string "invalid json / datos inválidos"
// @Failure 402 {object} noticeResponse
// @Failure 413 {string} string "request body too large"
// @Router /birds [post]
func createBirdHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createBirdRequest
		if !decodeBody(w, r, &req) {
			return
		}

		var acquired *time.Time
		if strings.TrimSpace(req.AcquireDate) != "" {
			t, err := time.Parse("2006-01-02", req.AcquireDate)
			if err != nil {
				http.Error(w, "acquire_date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			acquired = &t
		}

		var photo *Photo
		if strings.TrimSpace(req.Photo) != "" {
			p, err := ParseDataURL(req.Photo)
			if err != nil {
				http.Error(w, "photo must be a base64 image data URL", http.StatusBadRequest)
				return
			}
			photo = &p
		}

		b, err := svc.Create(r.Context(), CreateInput{
			Name:       req.Name,
			Species:    req.Species,
			Age:        req.Age,
			AcquiredOn: acquired,
			Photo:      photo,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toBirdResponse(b))
	}
}

func listBirdsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]birdResponse, 0, len(items))
		for _, b := range items {
			out = append(out, toBirdResponse(b))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getBirdHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := svc.GetByID(r.Context(), chi.URLParam(r, "birdID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toBirdResponse(b))
	}
}

// updateBirdHandler edita el perfil (PATCH). Para limpiar acquire_date enviar null.
func updateBirdHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Decodificamos a map primero para detectar presencia de acquire_date (null = limpiar).
		var raw map[string]json.RawMessage
		if !decodeBody(w, r, &raw) {
			return
		}

		var req updateBirdRequest
		b, _ := json.Marshal(raw)
		if err := json.Unmarshal(b, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := UpdateInput{
			Name:    req.Name,
			Species: req.Species,
			Age:     req.Age,
		}

		if v, exists := raw["acquire_date"]; exists {
			in.AcquiredOn.Present = true
			if string(v) != "null" {
				var s string
				if err := json.Unmarshal(v, &s); err != nil {
					http.Error(w, "acquire_date must be YYYY-MM-DD or null", http.StatusBadRequest)
					return
				}
				t, err := time.Parse("2006-01-02", s)
				if err != nil {
					http.Error(w, "acquire_date must be YYYY-MM-DD or null", http.StatusBadRequest)
					return
				}
				in.AcquiredOn.Value = &t
			}
		}

		if req.Photo != nil {
			if strings.TrimSpace(*req.Photo) == "" {
				in.RemovePhoto = true
			} else {
				p, err := ParseDataURL(*req.Photo)
				if err != nil {
					http.Error(w, "photo must be a base64 image data URL", http.StatusBadRequest)
					return
				}
				in.Photo = &p
			}
		}

		updated, err := svc.Update(r.Context(), chi.URLParam(r, "birdID"), in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toBirdResponse(updated))
	}
}

func deleteBirdHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "birdID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func getPhotoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc, ct, err := svc.Photo(r.Context(), chi.URLParam(r, "birdID"))
		if err != nil {
			writeError(w, err)
			return
		}
		defer rc.Close()

		if ct == "" {
			ct = "application/octet-stream"
		}
		w.Header().Set("Content-Type", ct)
		w.WriteHeader(http.StatusOK)
		_, _ = io.Copy(w, rc)
	}
}

func shareHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := svc.GetByID(r.Context(), chi.URLParam(r, "birdID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, shareResponse{
			Title: "Status de " + b.Name,
			Text:  ShareText(b),
		})
	}
}

func toBirdResponse(b Bird) birdResponse {
	var acquired *string
	if b.AcquiredOn != nil {
		s := b.AcquiredOn.Format("2006-01-02")
		acquired = &s
	}
	return birdResponse{
		ID:          b.ID,
		Name:        b.Name,
		Species:     b.Species,
		Age:         b.Age,
		AcquireDate: acquired,
		Status:      b.Status,
		StatusText:  b.Status.Text(),
		LastUpdate:  b.LastUpdate,
		HasPhoto:    b.HasPhoto(),
		CreatedAt:   b.CreatedAt,
	}
}

func writeError(w http.ResponseWriter, err error) {
	var locked *capabilities.LockedError
	switch {
	case errors.As(err, &locked):
		writeJSON(w, http.StatusPaymentRequired, noticeResponse{Notice: capabilities.Notice, Capability: locked.Capability})
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidPhoto):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "bird not found", http.StatusNotFound)
	case errors.Is(err, ErrNoPhoto):
		http.Error(w, "photo not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON también existe en los demás módulos.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
