package library

import (
	"encoding/json"
	"errors"
	"net/http"

	"passaro-ok/internal/ports/capabilities"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/library", listArticlesHandler(svc))
	r.Get("/library/{articleID}", getArticleHandler(svc))
}

type summaryResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Preview  string `json:"preview"`
}

type articleResponse struct {
	summaryResponse
	Content string `json:"content"`
}

type noticeResponse struct {
	Notice     string                  `json:"notice"`
	Capability capabilities.Capability `json:"capability"`
}

func listArticlesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := svc.List(r.Context())
		out := make([]summaryResponse, 0, len(items))
		for _, a := range items {
			out = append(out, summaryResponse{ID: a.ID, Title: a.Title, Category: a.Category, Preview: a.Preview})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getArticleHandler godoc
// @Summary Leer artículo
// @Description Contenido completo del artículo. Sin premium responde 402 con aviso.
// @Tags library
// @Produce json
// @Param articleID path string true "ID del artículo"
// @Success 200 {object} articleResponse
// @Failure 402 {object} noticeResponse
// @Failure 404 {string} string "article not found"
// @Router /library/{articleID} [get]
func getArticleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.Get(r.Context(), chi.URLParam(r, "articleID"))
		if err != nil {
			var locked *capabilities.LockedError
			switch {
			case errors.As(err, &locked):
				writeJSON(w, http.StatusPaymentRequired, noticeResponse{Notice: capabilities.Notice, Capability: locked.Capability})
			case errors.Is(err, ErrNotFound):
				http.Error(w, "article not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		writeJSON(w, http.StatusOK, articleResponse{
			summaryResponse: summaryResponse{ID: a.ID, Title: a.Title, Category: a.Category, Preview: a.Preview},
			Content:         a.Content,
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
