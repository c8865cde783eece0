package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/paperpress/paperpress/internal/pattern"
	"github.com/paperpress/paperpress/internal/question"
)

// GET /patterns/{classID}/{subject}
func GetPatternHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		classID := chi.URLParam(r, "classID")
		subject := chi.URLParam(r, "subject")
		resp := struct {
			Pattern pattern.PaperPattern `json:"pattern"`
			Known   bool                 `json:"known"`
		}{
			Pattern: pattern.Resolve(classID, subject),
			Known:   pattern.Known(classID, subject),
		}
		writeJSON(w, resp)
	}
}

// GET /chapters/stats?class_id=...&subject_id=...
func ChapterStatsHandler(store question.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		classID := r.URL.Query().Get("class_id")
		subjectID := r.URL.Query().Get("subject_id")
		if classID == "" || subjectID == "" {
			http.Error(w, "class_id and subject_id required", http.StatusBadRequest)
			return
		}
		stats, err := store.ChapterStats(r.Context(), classID, subjectID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, stats)
	}
}
