// Package mathtext extracts formula spans from question text, checks
// that they are structurally well-formed, and escapes everything else so
// the renderer can emit it straight into markup. It never typesets: valid
// formulas are tagged with their raw source for the host's typesetting
// pass, invalid ones degrade to an inline error marker.
package mathtext

import (
	"fmt"
	"regexp"
	"strings"
)

// SegmentKind discriminates Segment.
type SegmentKind int

const (
	KindText SegmentKind = iota
	KindMath
)

// Segment is one run of plain text or one formula span.
type Segment struct {
	Kind    SegmentKind
	Content string
	Display bool // display-style math ($$...$$ or \[...\])
}

// Result of a structural formula check.
type Result struct {
	Valid bool
	Latex string
	Err   string
}

var (
	displayRe      = regexp.MustCompile(`\$\$([^$]+)\$\$`)
	inlineRe       = regexp.MustCompile(`\$([^$]+)\$`)
	latexDisplayRe = regexp.MustCompile(`(?s)\\\[.+?\\\]`)
	latexInlineRe  = regexp.MustCompile(`\\\(([^)]+)\\\)`)

	invalidEscapeRe = regexp.MustCompile(`\\[^a-zA-Z]`)

	emojiRe = regexp.MustCompile(`[\x{1F600}-\x{1F64F}\x{1F300}-\x{1F5FF}\x{1F680}-\x{1F6FF}\x{1F1E0}-\x{1F1FF}\x{2600}-\x{26FF}\x{2700}-\x{27BF}]`)
)

type delimiterForm struct {
	re      *regexp.Regexp
	display bool
	// trim returns the formula body given the whole match.
	trim func(m string) string
}

var forms = []delimiterForm{
	{displayRe, true, func(m string) string { return m[2 : len(m)-2] }},
	{inlineRe, false, func(m string) string { return m[1 : len(m)-1] }},
	{latexDisplayRe, true, func(m string) string { return m[2 : len(m)-2] }},
	{latexInlineRe, false, func(m string) string { return m[2 : len(m)-2] }},
}

// Extract splits text into plain and math segments. When several
// delimiter forms match, the one starting earliest wins; the scan then
// resumes after it.
func Extract(text string) []Segment {
	if text == "" {
		return []Segment{{Kind: KindText}}
	}

	var out []Segment
	remaining := text
	for len(remaining) > 0 {
		best := -1
		var bestLoc []int
		for i, f := range forms {
			loc := f.re.FindStringIndex(remaining)
			if loc == nil {
				continue
			}
			if best == -1 || loc[0] < bestLoc[0] {
				best, bestLoc = i, loc
			}
		}
		if best == -1 {
			out = append(out, Segment{Kind: KindText, Content: remaining})
			break
		}
		if bestLoc[0] > 0 {
			out = append(out, Segment{Kind: KindText, Content: remaining[:bestLoc[0]]})
		}
		match := remaining[bestLoc[0]:bestLoc[1]]
		out = append(out, Segment{
			Kind:    KindMath,
			Content: forms[best].trim(match),
			Display: forms[best].display,
		})
		remaining = remaining[bestLoc[1]:]
	}
	return out
}

// ValidateLaTeX runs the structural checks: non-empty source, balanced
// braces/parentheses/brackets, and an escape-parity heuristic. It is not
// a LaTeX grammar check; a formula that passes can still fail to typeset.
func ValidateLaTeX(latex string) Result {
	if strings.TrimSpace(latex) == "" {
		return Result{Valid: false, Err: "empty formula"}
	}

	pairs := []struct {
		open, close string
		name        string
	}{
		{"{", "}", "braces"},
		{"(", ")", "parentheses"},
		{"[", "]", "brackets"},
	}
	for _, p := range pairs {
		open := strings.Count(latex, p.open)
		closed := strings.Count(latex, p.close)
		if open != closed {
			return Result{
				Valid: false,
				Latex: latex,
				Err:   fmt.Sprintf("mismatched %s: %d opening, %d closing", p.name, open, closed),
			}
		}
	}

	if strings.Count(latex, `\`)%2 != 0 && !strings.Contains(latex, `\[`) && !strings.Contains(latex, `\]`) {
		if bad := invalidEscapeRe.FindString(latex); bad != "" {
			return Result{Valid: false, Latex: latex, Err: fmt.Sprintf("invalid escape sequence: %s", bad)}
		}
	}
	return Result{Valid: true, Latex: latex}
}

// StripEmojis removes emoji codepoints that break serif print fonts.
func StripEmojis(text string) string {
	return strings.TrimSpace(emojiRe.ReplaceAllString(text, ""))
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML escapes text for element content.
func EscapeHTML(text string) string { return htmlEscaper.Replace(text) }

// EscapeAttr escapes text for a double- or single-quoted attribute value.
func EscapeAttr(text string) string { return attrEscaper.Replace(text) }
