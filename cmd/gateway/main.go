package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	api "github.com/paperpress/paperpress/internal/api/http"
	"github.com/paperpress/paperpress/internal/audit"
	auth "github.com/paperpress/paperpress/internal/auth/middleware"
	"github.com/paperpress/paperpress/internal/config"
	"github.com/paperpress/paperpress/internal/db"
	"github.com/paperpress/paperpress/internal/paper"
	"github.com/paperpress/paperpress/internal/question"
	"github.com/paperpress/paperpress/internal/rbac"
	"github.com/paperpress/paperpress/internal/selection"
	"github.com/paperpress/paperpress/internal/storage"
	"github.com/paperpress/paperpress/pkg/logger"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel, cfg.LogFile)
	defer func() { _ = log.Sync() }()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatal("db open failed", zap.Error(err))
	}

	// --- Question bank ---
	var bank question.Store
	switch cfg.QuestionSource {
	case "fs":
		fsStore, err := question.NewFSStore(cfg.ContentDir)
		if err != nil {
			log.Fatal("content dir", zap.Error(err))
		}
		bank = fsStore
	default:
		bank = question.NewSQLStore(dbh)
	}

	// --- Assembly pipeline ---
	papers := paper.NewSQLStore(dbh)
	engine := selection.NewEngine(bank, log)
	svc := paper.NewService(engine, papers, log)
	sessions := api.NewSessionRegistry()
	auditLog := audit.NewRepo(dbh)

	docs, err := storage.NewFSStore(cfg.ExportDir)
	if err != nil {
		log.Fatal("export dir", zap.Error(err))
	}

	// --- Auth ---
	authSvc := auth.NewAuthService(cfg.AuthSecret)
	hashes := auth.PasswordHashes{}
	if cfg.TeacherPassHash != "" {
		hashes["teacher"] = cfg.TeacherPassHash
	}
	if cfg.StudentPassHash != "" {
		hashes["student"] = cfg.StudentPassHash
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", auth.LoginHandler(authSvc, hashes))

	// Protected API (JWT → role in context → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		pr.With(rbac.Require("pattern:view")).
			Get("/patterns/{classID}/{subject}", api.GetPatternHandler())
		pr.With(rbac.Require("question:stats")).
			Get("/chapters/stats", api.ChapterStatsHandler(bank))

		renderDefaults := api.RenderDefaults{
			InstituteName: cfg.InstituteName,
			WatermarkText: cfg.WatermarkText,
		}
		pr.With(rbac.Require("paper:generate")).
			Post("/papers/generate", api.GeneratePaperHandler(svc, sessions, renderDefaults, auditLog))
		pr.With(rbac.Require("paper:validate")).
			Post("/papers/validate", api.ValidatePaperHandler(svc, sessions))
		pr.With(rbac.Require("paper:view")).
			Get("/papers", api.ListPapersHandler(papers))
		pr.With(rbac.Require("paper:view")).
			Get("/papers/{paperID}", api.GetPaperHandler(papers))
		pr.With(rbac.Require("paper:view")).
			Get("/papers/{paperID}/html", api.PaperHTMLHandler(papers))
		pr.With(rbac.Require("paper:export")).
			Post("/papers/{paperID}/export", api.ExportPaperHandler(papers, docs))

		pr.With(rbac.Require("session:clear")).
			Post("/session/clear", api.ClearSessionHandler(sessions, auditLog))

		pr.With(rbac.Require("audit:view")).
			Get("/audit", api.AuditLogHandler(auditLog))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := dbh.PingContext(r.Context()); err != nil {
			http.Error(w, "db unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(200)
	})

	log.Info("gateway listening", zap.String("addr", cfg.HTTPAddr))
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatal("http server", zap.Error(err))
	}
}
