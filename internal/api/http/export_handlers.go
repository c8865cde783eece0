package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/paperpress/paperpress/internal/audit"
	"github.com/paperpress/paperpress/internal/paper"
	"github.com/paperpress/paperpress/internal/storage"
)

// POST /papers/{paperID}/export writes the rendered document to the
// export store so it can be picked up outside the API (print queue,
// shared drive).
func ExportPaperHandler(store paper.Store, docs storage.DocStore) http.HandlerFunc {
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
		key, err := docs.Put("papers/"+p.ID+".html", strings.NewReader(p.HTML))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		url, err := docs.SignedURL(key)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]string{"key": key, "url": url})
	}
}

// GET /audit?limit=N
func AuditLogHandler(log *audit.Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		events, err := log.Recent(r.Context(), limit)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if events == nil {
			events = []audit.Event{}
		}
		writeJSON(w, events)
	}
}
