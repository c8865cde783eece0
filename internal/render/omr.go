package render

import (
	"fmt"
	"strings"
)

// renderOMRSheet emits the supplementary bubble answer sheet on its own
// page: ten questions per row, four lettered bubbles each.
func renderOMRSheet(mcqCount int) string {
	if mcqCount <= 0 {
		return ""
	}

	var rows strings.Builder
	for start := 1; start <= mcqCount; start += 10 {
		end := start + 9
		if end > mcqCount {
			end = mcqCount
		}
		fmt.Fprintf(&rows, "\n<div class=\"omr-row\"><span class=\"omr-range\">%d-%d</span>", start, end)
		for n := start; n <= end; n++ {
			fmt.Fprintf(&rows, `<div class="omr-q"><span class="omr-num">%d</span><div class="omr-bubbles">`, n)
			for _, l := range optionLabels {
				fmt.Fprintf(&rows, `<span class="omr-letter">%s</span><span class="omr-circle"></span>`, l)
			}
			rows.WriteString("</div></div>")
		}
		rows.WriteString("</div>")
	}

	return `
<div class="pp-page-break"></div>
<div class="omr-sheet">
<div class="omr-header">
<h3>OMR Answer Sheet</h3>
<p>Fill bubbles completely. Use only blue/black ball point pen.</p>
</div>
<div class="omr-info">
<div class="omr-field"><span>Name:</span><div class="omr-line"></div></div>
<div class="omr-field"><span>Roll No:</span><div class="omr-line"></div></div>
<div class="omr-field"><span>Class:</span><div class="omr-line"></div></div>
</div>
<div class="omr-instructions"><strong>Instructions:</strong> Darken the correct bubble completely. Do not make stray marks.</div>
<div class="omr-bubbles-container">` + rows.String() + `</div>
</div>`
}
