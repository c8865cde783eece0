// Package render emits the print-ready HTML document for an assembled
// paper. Rendering is a pure function of its inputs: resolved pattern,
// distributed questions, and formatting options. The emitted markup is
// what the host print pipeline (browser/WebView) materializes to PDF.
package render

import (
	"fmt"
	"strings"

	"github.com/paperpress/paperpress/internal/marks"
	"github.com/paperpress/paperpress/internal/mathtext"
	"github.com/paperpress/paperpress/internal/pattern"
	"github.com/paperpress/paperpress/internal/question"
)

// Edit is a typed partial override for one question, keyed by question ID
// in Options.Edits. A set field replaces the stored value at render time;
// the bank itself is never mutated.
type Edit struct {
	Text    *string    `json:"text,omitempty"`
	Options *[4]string `json:"options,omitempty"`
	Marks   *int       `json:"marks,omitempty"`
}

// Options carries the per-print formatting knobs.
type Options struct {
	InstituteName    string `json:"institute_name"`
	InstituteAddress string `json:"institute_address,omitempty"`
	InstituteEmail   string `json:"institute_email,omitempty"`
	InstitutePhone   string `json:"institute_phone,omitempty"`
	InstituteWebsite string `json:"institute_website,omitempty"`
	LogoURL          string `json:"logo_url,omitempty"`
	ShowLogo         bool   `json:"show_logo"`
	CustomHeader     string `json:"custom_header,omitempty"`
	CustomSubHeader  string `json:"custom_sub_header,omitempty"`

	Date        string `json:"date"`
	TimeAllowed string `json:"time_allowed,omitempty"` // overrides the pattern's
	Syllabus    string `json:"syllabus,omitempty"`

	CustomMarks   *marks.Custom `json:"custom_marks,omitempty"`
	BubblesPerRow int           `json:"bubbles_per_row,omitempty"` // answer-grid items per row, default 5

	IncludeOMRSheet   bool   `json:"include_omr_sheet,omitempty"`
	SuppressWatermark bool   `json:"suppress_watermark,omitempty"`
	WatermarkText     string `json:"watermark_text,omitempty"`

	Edits map[string]Edit `json:"edits,omitempty"`
}

// Input is the already-resolved material for one paper.
type Input struct {
	ClassID    string
	Subject    string
	Pattern    pattern.PaperPattern
	MCQs       []question.Question
	Shorts     []pattern.Assignment
	Longs      []pattern.Assignment
	TotalMarks int
}

const defaultWatermark = "PaperPress — paperpressapp@gmail.com"

type Renderer struct{}

func New() *Renderer { return &Renderer{} }

// Render builds the complete HTML document. It never fails on content
// problems (bad formulas degrade inline); the error return is reserved
// for structurally impossible input.
func (r *Renderer) Render(in Input, opts Options) (string, error) {
	if len(in.Pattern.Sections) == 0 {
		return "", fmt.Errorf("pattern has no sections")
	}

	timeAllowed := opts.TimeAllowed
	if timeAllowed == "" {
		timeAllowed = in.Pattern.TimeAllowed
	}
	totalMarks := in.TotalMarks
	if totalMarks == 0 {
		totalMarks = in.Pattern.TotalMarks
	}

	var body strings.Builder
	body.WriteString(renderHeader(opts))
	body.WriteString(renderStudentMeta(in, opts, timeAllowed, totalMarks))
	r.renderSections(&body, in, opts)

	if opts.IncludeOMRSheet {
		body.WriteString(renderOMRSheet(len(in.MCQs)))
	}
	if !opts.SuppressWatermark {
		wm := opts.WatermarkText
		if wm == "" {
			wm = defaultWatermark
		}
		fmt.Fprintf(&body, "\n<div class=\"pp-footer\">%s</div>", mathtext.EscapeHTML(wm))
	}

	return documentShell(in, body.String()), nil
}

// renderSections walks the pattern in Q-number order, consuming the
// distributed question lists and inserting the page divider once, before
// the first subjective section that follows an objective one.
func (r *Renderer) renderSections(b *strings.Builder, in Input, opts Options) {
	shortIdx, longIdx := 0, 0
	seenObjective := false
	dividerDone := false

	divider := func() string {
		if seenObjective && !dividerDone {
			dividerDone = true
			return "\n<div class=\"pp-divider\">SUBJECTIVE SECTION</div>"
		}
		return ""
	}

	for _, sec := range in.Pattern.Sections {
		switch sec.Type {
		case pattern.SectionMCQ:
			b.WriteString(renderMCQSection(sec, in.MCQs, opts))
			seenObjective = true
		case pattern.SectionShort:
			var a pattern.Assignment
			if shortIdx < len(in.Shorts) {
				a = in.Shorts[shortIdx]
				shortIdx++
			} else {
				a = pattern.Assignment{Section: sec}
			}
			b.WriteString(divider())
			b.WriteString(renderShortSection(a, opts))
		case pattern.SectionLong:
			var a pattern.Assignment
			if longIdx < len(in.Longs) {
				a = in.Longs[longIdx]
				longIdx++
			} else {
				a = pattern.Assignment{Section: sec}
			}
			b.WriteString(divider())
			b.WriteString(renderLongSection(a, opts))
		case pattern.SectionWriting:
			b.WriteString(divider())
			b.WriteString(renderWritingSection(sec))
		}
	}
}

func documentShell(in Input, body string) string {
	title := fmt.Sprintf("%s — Class %s",
		mathtext.EscapeHTML(in.Subject), mathtext.EscapeHTML(in.ClassID))
	return `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=794, initial-scale=1.0">
<title>` + title + `</title>
<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/katex@0.16.9/dist/katex.min.css">
<style>` + stylesheet + `</style>
</head>
<body>
` + body + `
</body>
</html>`
}

func renderHeader(opts Options) string {
	var b strings.Builder
	b.WriteString("\n<div class=\"pp-header\">\n<div class=\"pp-header-body\">")
	if opts.ShowLogo && opts.LogoURL != "" {
		fmt.Fprintf(&b, "\n<img src=\"%s\" alt=\"School Logo\" class=\"pp-logo\" />", mathtext.EscapeAttr(opts.LogoURL))
	}
	if h := strings.TrimSpace(opts.CustomHeader); h != "" {
		fmt.Fprintf(&b, "\n<div class=\"pp-custom-top\">%s</div>", mathtext.EscapeHTML(h))
	}
	fmt.Fprintf(&b, "\n<div class=\"pp-school-name\">%s</div>", mathtext.EscapeHTML(opts.InstituteName))
	if h := strings.TrimSpace(opts.CustomSubHeader); h != "" {
		fmt.Fprintf(&b, "\n<div class=\"pp-custom-sub\">%s</div>", mathtext.EscapeHTML(h))
	}
	b.WriteString("\n</div>")

	if opts.InstituteAddress != "" || opts.InstituteEmail != "" || opts.InstitutePhone != "" || opts.InstituteWebsite != "" {
		b.WriteString("\n<div class=\"pp-contact-bar\">")
		for _, item := range []string{opts.InstituteAddress, opts.InstituteWebsite, opts.InstituteEmail, opts.InstitutePhone} {
			if item != "" {
				fmt.Fprintf(&b, "<span>%s</span>", mathtext.EscapeHTML(item))
			}
		}
		b.WriteString("</div>")
	}
	b.WriteString("\n</div>")
	return b.String()
}

func renderStudentMeta(in Input, opts Options, timeAllowed string, totalMarks int) string {
	classID := mathtext.EscapeHTML(in.ClassID)
	subject := mathtext.EscapeHTML(in.Subject)
	return fmt.Sprintf(`
<div class="pp-meta">
<div class="pp-meta-row">
<div class="pp-meta-cell pp-wide"><span class="pp-meta-label">Name:</span><span class="pp-meta-line"></span></div>
<div class="pp-meta-cell"><span class="pp-meta-label">Roll No:</span><span class="pp-meta-line"></span></div>
<div class="pp-meta-cell"><span class="pp-meta-label">Subject:</span><span>%s</span></div>
<div class="pp-meta-cell"><span class="pp-meta-label">Date:</span><span>%s</span></div>
</div>
<div class="pp-meta-row">
<div class="pp-meta-cell"><span class="pp-meta-label">Class:</span><span>%s</span></div>
<div class="pp-meta-cell"><span class="pp-meta-label">Time:</span><span>%s</span></div>
<div class="pp-meta-cell"><span class="pp-meta-label">Total Marks:</span><span class="pp-bold">%d</span></div>
<div class="pp-meta-cell"><span class="pp-meta-label">Signature:</span><span class="pp-meta-line"></span></div>
</div>
<div class="pp-meta-row">
<div class="pp-meta-cell pp-wide"><span class="pp-meta-label">Syllabus:</span><span class="pp-meta-line">%s</span></div>
</div>
</div>`,
		subject,
		mathtext.EscapeHTML(opts.Date),
		classID,
		mathtext.EscapeHTML(timeAllowed),
		totalMarks,
		mathtext.EscapeHTML(opts.Syllabus))
}
