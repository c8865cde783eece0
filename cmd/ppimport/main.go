// ppimport loads flat JSON content files into the relational question
// bank: one <class>/<subject>.json per pair under CONTENT_DIR, written
// through the same upsert the gateway's schema expects.
package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/paperpress/paperpress/internal/config"
	"github.com/paperpress/paperpress/internal/db"
	"github.com/paperpress/paperpress/internal/question"
	"github.com/paperpress/paperpress/pkg/logger"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel, cfg.LogFile)
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatal("db open failed", zap.Error(err))
	}
	sqlStore := question.NewSQLStore(dbh)

	fsStore, err := question.NewFSStore(cfg.ContentDir)
	if err != nil {
		log.Fatal("content dir", zap.Error(err))
	}

	classes, err := os.ReadDir(cfg.ContentDir)
	if err != nil {
		log.Fatal("read content dir", zap.Error(err))
	}

	total := 0
	for _, cls := range classes {
		if !cls.IsDir() {
			continue
		}
		files, err := os.ReadDir(filepath.Join(cfg.ContentDir, cls.Name()))
		if err != nil {
			log.Fatal("read class dir", zap.String("class", cls.Name()), zap.Error(err))
		}
		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
				continue
			}
			subject := strings.TrimSuffix(f.Name(), ".json")
			qs, err := fsStore.Query(ctx, cls.Name(), subject, nil, "")
			if err != nil {
				log.Fatal("load content file",
					zap.String("class", cls.Name()), zap.String("subject", subject), zap.Error(err))
			}
			for _, q := range qs {
				if err := sqlStore.Upsert(ctx, q); err != nil {
					log.Fatal("upsert question", zap.String("id", q.ID), zap.Error(err))
				}
			}
			total += len(qs)
			log.Info("imported",
				zap.String("class", cls.Name()),
				zap.String("subject", subject),
				zap.Int("questions", len(qs)))
		}
	}
	log.Info("import complete", zap.Int("total", total))
}
