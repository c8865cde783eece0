package paper

import (
	"github.com/paperpress/paperpress/internal/marks"
	"github.com/paperpress/paperpress/internal/render"
	"github.com/paperpress/paperpress/internal/selection"
)

// GenerateRequest is the full input for one paper-generation run.
type GenerateRequest struct {
	Selection selection.Config `json:"selection"`
	Render    render.Options   `json:"render"`

	// DeclaredTotal, when non-zero, is checked against the computed total.
	// A mismatch is reported as a warning and never blocks rendering.
	DeclaredTotal int `json:"declared_total,omitempty"`
}

// Paper is one generated, persisted document.
type Paper struct {
	ID         string `json:"id"`
	ClassID    string `json:"class_id"`
	Subject    string `json:"subject"`
	TotalMarks int    `json:"total_marks"`
	HTML       string `json:"html,omitempty"`
	CreatedAt  int64  `json:"created_at"`
}

// GenerateResult is the response for a generation run: the persisted
// paper plus everything a caller needs to audit it.
type GenerateResult struct {
	Paper    Paper              `json:"paper"`
	Resolved selection.Resolved `json:"resolved"`
	Marks    marks.Breakdown    `json:"marks"`
	Warnings []string           `json:"warnings,omitempty"`
}
