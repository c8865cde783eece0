package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/paperpress/paperpress/internal/audit"
	auth "github.com/paperpress/paperpress/internal/auth/middleware"
	"github.com/paperpress/paperpress/internal/paper"
)

// RenderDefaults fills request fields the client left blank, from the
// deployment's configuration.
type RenderDefaults struct {
	InstituteName string
	WatermarkText string
}

// POST /papers/generate
func GeneratePaperHandler(svc *paper.Service, sessions *SessionRegistry, defaults RenderDefaults, log *audit.Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req paper.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.Selection.ClassID == "" || req.Selection.SubjectID == "" {
			http.Error(w, "class_id and subject_id required", http.StatusBadRequest)
			return
		}
		if req.Render.InstituteName == "" {
			req.Render.InstituteName = defaults.InstituteName
		}
		if req.Render.WatermarkText == "" {
			req.Render.WatermarkText = defaults.WatermarkText
		}
		sub := auth.UserFromContext(r.Context())
		res, err := svc.Generate(r.Context(), sessions.For(sub), req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if log != nil {
			cfg, _ := json.Marshal(req.Selection)
			_ = log.Append(r.Context(), audit.Event{
				Actor: sub, Type: "paper.generated", Key: res.Paper.ID, DataJSON: string(cfg),
			})
		}
		writeJSON(w, res)
	}
}

// POST /papers/validate
func ValidatePaperHandler(svc *paper.Service, sessions *SessionRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req paper.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		sess := sessions.For(auth.UserFromContext(r.Context()))
		report, err := svc.ValidateAvailability(r.Context(), sess, req.Selection)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, report)
	}
}

// GET /papers?limit=N
func ListPapersHandler(store paper.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		papers, err := store.List(r.Context(), limit)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if papers == nil {
			papers = []paper.Paper{}
		}
		writeJSON(w, papers)
	}
}

// GET /papers/{paperID}
func GetPaperHandler(store paper.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := store.Get(r.Context(), chi.URLParam(r, "paperID"))
		if err != nil {
			if errors.Is(err, paper.ErrNotFound) {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, p)
	}
}

// GET /papers/{paperID}/html serves the rendered document directly, ready
// for the browser's print dialog.
func PaperHTMLHandler(store paper.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := store.Get(r.Context(), chi.URLParam(r, "paperID"))
		if err != nil {
			if errors.Is(err, paper.ErrNotFound) {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(p.HTML))
	}
}

// POST /session/clear resets the caller's duplicate-exclusion session.
func ClearSessionHandler(sessions *SessionRegistry, log *audit.Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub := auth.UserFromContext(r.Context())
		sessions.Clear(sub)
		if log != nil {
			_ = log.Append(r.Context(), audit.Event{Actor: sub, Type: "session.cleared", Key: sub})
		}
		writeJSON(w, map[string]string{"status": "cleared"})
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
