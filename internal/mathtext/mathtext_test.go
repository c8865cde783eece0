package mathtext_test

import (
	"strings"
	"testing"

	"github.com/paperpress/paperpress/internal/mathtext"
)

func TestExtractSingleInline(t *testing.T) {
	segs := mathtext.Extract("Solve $x^2$ now")
	if len(segs) != 3 {
		t.Fatalf("got %d segments, want 3", len(segs))
	}
	if segs[0].Kind != mathtext.KindText || segs[0].Content != "Solve " {
		t.Errorf("segment 0 = %+v", segs[0])
	}
	if segs[1].Kind != mathtext.KindMath || segs[1].Content != "x^2" || segs[1].Display {
		t.Errorf("segment 1 = %+v, want inline math x^2", segs[1])
	}
	if segs[2].Content != " now" {
		t.Errorf("segment 2 = %+v", segs[2])
	}
}

func TestExtractDisplayBeatsInlineAtSamePosition(t *testing.T) {
	segs := mathtext.Extract(`$$\frac{a}{b}$$ rest`)
	if segs[0].Kind != mathtext.KindMath || !segs[0].Display {
		t.Fatalf("segment 0 = %+v, want display math", segs[0])
	}
	if segs[0].Content != `\frac{a}{b}` {
		t.Errorf("content = %q", segs[0].Content)
	}
}

func TestExtractLatexDelimiters(t *testing.T) {
	segs := mathtext.Extract(`a \(x\) b \[y\] c`)
	var maths []mathtext.Segment
	for _, s := range segs {
		if s.Kind == mathtext.KindMath {
			maths = append(maths, s)
		}
	}
	if len(maths) != 2 {
		t.Fatalf("got %d math segments, want 2", len(maths))
	}
	if maths[0].Content != "x" || maths[0].Display {
		t.Errorf("first = %+v, want inline x", maths[0])
	}
	if maths[1].Content != "y" || !maths[1].Display {
		t.Errorf("second = %+v, want display y", maths[1])
	}
}

func TestExtractPlainTextOnly(t *testing.T) {
	segs := mathtext.Extract("no formulas here")
	if len(segs) != 1 || segs[0].Kind != mathtext.KindText {
		t.Fatalf("segments = %+v", segs)
	}
}

func TestValidateLaTeXUnbalancedBraces(t *testing.T) {
	res := mathtext.ValidateLaTeX(`\frac{1}{2`)
	if res.Valid {
		t.Fatal("unbalanced braces accepted")
	}
	if !strings.Contains(res.Err, "2 opening, 1 closing") {
		t.Errorf("message = %q", res.Err)
	}

	res = mathtext.ValidateLaTeX(`x^{2`)
	if res.Valid || !strings.Contains(res.Err, "1 opening, 0 closing") {
		t.Errorf("got %+v, want '1 opening, 0 closing' failure", res)
	}
}

func TestValidateLaTeXEmpty(t *testing.T) {
	res := mathtext.ValidateLaTeX("   ")
	if res.Valid || res.Err != "empty formula" {
		t.Errorf("got %+v", res)
	}
}

func TestValidateLaTeXAcceptsCommonForms(t *testing.T) {
	for _, src := range []string{
		`x^2 + y^2 = z^2`,
		`\frac{a}{b}`,
		`\sqrt{x}`,
		`\sum_{i=1}^{n} i`,
	} {
		if res := mathtext.ValidateLaTeX(src); !res.Valid {
			t.Errorf("rejected %q: %s", src, res.Err)
		}
	}
}

func TestStripEmojis(t *testing.T) {
	if got := mathtext.StripEmojis("solve this \U0001F600 please"); got != "solve this  please" {
		t.Errorf("got %q", got)
	}
}

func TestEscapeHTML(t *testing.T) {
	if got := mathtext.EscapeHTML(`<b>& "x"`); got != `&lt;b&gt;&amp; &quot;x&quot;` {
		t.Errorf("got %q", got)
	}
}

func TestProcessValidFormula(t *testing.T) {
	out := mathtext.Process("Solve $x^2$ now")
	if !strings.Contains(out, `<span class="math-inline" data-katex="x^2"></span>`) {
		t.Errorf("missing math span: %q", out)
	}
	if !strings.HasPrefix(out, "Solve ") || !strings.HasSuffix(out, " now") {
		t.Errorf("plain text mangled: %q", out)
	}
	if strings.Count(out, "<span") != 1 {
		t.Errorf("want exactly one span: %q", out)
	}
}

func TestProcessInvalidFormulaDegrades(t *testing.T) {
	out := mathtext.Process(`Find $\frac{1}{2$ of it`)
	if !strings.Contains(out, `class="math-error"`) {
		t.Fatalf("no error marker: %q", out)
	}
	if !strings.Contains(out, "opening") {
		t.Errorf("title should carry the validation message: %q", out)
	}
	// The broken source stays visible, escaped.
	if !strings.Contains(out, `[\frac{1}{2]`) {
		t.Errorf("source not preserved: %q", out)
	}
}

func TestProcessEscapesHostileText(t *testing.T) {
	out := mathtext.Process(`<script>alert(1)</script>`)
	if strings.Contains(out, "<script>") {
		t.Errorf("unescaped markup: %q", out)
	}
}
