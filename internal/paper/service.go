// Package paper wires the assembly pipeline end to end: resolve the
// board pattern, select questions, distribute them into sections,
// compute marks, render the document, and archive the result.
package paper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/paperpress/paperpress/internal/marks"
	"github.com/paperpress/paperpress/internal/pattern"
	"github.com/paperpress/paperpress/internal/question"
	"github.com/paperpress/paperpress/internal/render"
	"github.com/paperpress/paperpress/internal/selection"
)

type Service struct {
	engine      *selection.Engine
	renderer    *render.Renderer
	distributor pattern.Distributor
	papers      Store // nil disables archiving
	log         *zap.Logger
}

func NewService(engine *selection.Engine, papers Store, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		engine:      engine,
		renderer:    render.New(),
		distributor: pattern.Sequential{},
		papers:      papers,
		log:         log,
	}
}

// SetDistributor swaps the section allocation strategy.
func (s *Service) SetDistributor(d pattern.Distributor) { s.distributor = d }

// Generate runs the full pipeline for one request. Shortfalls, formula
// problems, and total-marks disagreements all surface as warnings on the
// result; the only hard failures are store and renderer errors.
func (s *Service) Generate(ctx context.Context, sess *selection.Session, req GenerateRequest) (GenerateResult, error) {
	pat := pattern.Resolve(req.Selection.ClassID, req.Selection.SubjectID)
	var warnings []string
	if !pattern.Known(req.Selection.ClassID, req.Selection.SubjectID) {
		warnings = append(warnings,
			fmt.Sprintf("no board pattern for %s/%s; using the %s fallback",
				req.Selection.ClassID, req.Selection.SubjectID, pat.ClassGroup))
	}

	resolved, err := s.engine.Select(ctx, sess, req.Selection)
	if err != nil {
		return GenerateResult{}, fmt.Errorf("select questions: %w", err)
	}
	warnings = append(warnings, duplicateTextWarnings(resolved)...)

	var custom marks.Custom
	if req.Render.CustomMarks != nil {
		custom = *req.Render.CustomMarks
	}
	shortDist := s.distributor.Distribute(pat.SectionsOfType(pattern.SectionShort), resolved.Shorts, custom.Short)
	longDist := s.distributor.Distribute(pat.SectionsOfType(pattern.SectionLong), resolved.Longs, custom.Long)

	attempt := attemptRules(shortDist, longDist)
	breakdown := marks.Calculate(resolved.MCQs, resolved.Shorts, resolved.Longs, &attempt, req.Render.CustomMarks)

	if req.DeclaredTotal != 0 {
		if v := marks.Validate(req.DeclaredTotal, resolved.MCQs, resolved.Shorts, resolved.Longs, req.Render.CustomMarks); !v.Valid {
			warnings = append(warnings, v.Err)
		}
	}

	html, err := s.renderer.Render(render.Input{
		ClassID:    req.Selection.ClassID,
		Subject:    req.Selection.SubjectID,
		Pattern:    pat,
		MCQs:       resolved.MCQs,
		Shorts:     shortDist,
		Longs:      longDist,
		TotalMarks: resolved.TotalMarks,
	}, req.Render)
	if err != nil {
		return GenerateResult{}, fmt.Errorf("render paper: %w", err)
	}

	p := Paper{
		ID:         uuid.NewString(),
		ClassID:    req.Selection.ClassID,
		Subject:    req.Selection.SubjectID,
		TotalMarks: resolved.TotalMarks,
		HTML:       html,
		CreatedAt:  time.Now().Unix(),
	}
	if s.papers != nil {
		if err := s.papers.Put(ctx, p, req); err != nil {
			return GenerateResult{}, fmt.Errorf("archive paper: %w", err)
		}
	}

	for _, w := range warnings {
		s.log.Warn("paper generation", zap.String("paper_id", p.ID), zap.String("warning", w))
	}
	s.log.Info("paper generated",
		zap.String("paper_id", p.ID),
		zap.String("class_id", p.ClassID),
		zap.String("subject", p.Subject),
		zap.Int("total_marks", p.TotalMarks))

	return GenerateResult{Paper: p, Resolved: resolved, Marks: breakdown, Warnings: warnings}, nil
}

// ValidateAvailability answers "can this request be satisfied" without
// consuming anything from the session.
func (s *Service) ValidateAvailability(ctx context.Context, sess *selection.Session, cfg selection.Config) (selection.AvailabilityReport, error) {
	return s.engine.ValidateAvailability(ctx, sess, cfg)
}

// attemptRules sums the effective attempt counts over the distributed
// sections so the attempted total reflects what the paper actually asks.
func attemptRules(shorts, longs []pattern.Assignment) marks.AttemptRules {
	var r marks.AttemptRules
	for _, a := range shorts {
		r.ShortAttempt += a.EffectiveAttempt
	}
	for _, a := range longs {
		r.LongAttempt += a.EffectiveAttempt
	}
	return r
}

// duplicateTextWarnings flags repeated question wording across the whole
// selection. Non-fatal: boards sometimes reuse stems across chapters.
func duplicateTextWarnings(res selection.Resolved) []string {
	seen := map[string]string{}
	var warnings []string
	check := func(qs []question.Question) {
		for _, q := range qs {
			key := strings.ToLower(strings.Join(strings.Fields(q.Text), " "))
			if key == "" {
				continue
			}
			if prev, ok := seen[key]; ok {
				warnings = append(warnings, fmt.Sprintf("questions %s and %s have identical text", prev, q.ID))
				continue
			}
			seen[key] = q.ID
		}
	}
	check(res.MCQs)
	check(res.Shorts)
	check(res.Longs)
	return warnings
}
