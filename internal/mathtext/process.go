package mathtext

import (
	"fmt"
	"strings"
)

// Process turns raw question text into print-safe markup. Plain segments
// are HTML-escaped; valid formulas become tagged spans carrying the raw
// source in data-katex for the host's typesetting pass; invalid formulas
// are kept visible as an escaped error marker so the rest of the paper
// still renders.
func Process(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	for _, seg := range Extract(StripEmojis(text)) {
		if seg.Kind == KindText {
			b.WriteString(EscapeHTML(seg.Content))
			continue
		}
		res := ValidateLaTeX(seg.Content)
		if !res.Valid {
			fmt.Fprintf(&b, `<span class="math-error" title="%s">[%s]</span>`,
				EscapeAttr(res.Err), EscapeHTML(seg.Content))
			continue
		}
		class := "math-inline"
		if seg.Display {
			class = "math-display"
		}
		fmt.Fprintf(&b, `<span class="%s" data-katex="%s"></span>`, class, EscapeAttr(seg.Content))
	}
	return b.String()
}
