package render

// stylesheet is the A4 print stylesheet inlined into every document.
const stylesheet = `
*,*::before,*::after{margin:0;padding:0;box-sizing:border-box}
@page{size:A4;margin:15mm}
html,body{width:210mm;min-height:297mm;font-family:'Times New Roman',Times,serif;font-size:11pt;line-height:1.4;color:#000;background:#fff;-webkit-print-color-adjust:exact;print-color-adjust:exact}
.pp-header{text-align:center;padding:8px 12px;border-bottom:2px solid #000;margin-bottom:12px}
.pp-logo{height:48px;margin-bottom:4px}
.pp-school-name{font-size:18pt;font-weight:bold}
.pp-custom-top{font-size:8pt;font-style:italic;margin-bottom:1pt}
.pp-custom-sub{font-size:8pt;margin-top:1pt}
.pp-contact-bar{display:flex;justify-content:center;gap:14px;font-size:8pt;margin-top:4px}
.pp-meta{border:1px solid #000;margin-bottom:16px;font-size:10pt}
.pp-meta-row{display:flex;border-bottom:1px solid #000}
.pp-meta-row:last-child{border-bottom:none}
.pp-meta-cell{flex:1;padding:4px 8px;border-right:1px solid #000}
.pp-meta-cell:last-child{border-right:none}
.pp-meta-cell.pp-wide{flex:2}
.pp-meta-label{font-weight:bold;margin-right:4px}
.pp-meta-line{display:inline-block;min-width:60pt;border-bottom:1px solid #000}
.pp-bold{font-weight:bold}
.pp-sec-bar{display:flex;align-items:baseline;gap:8px;font-size:12pt;font-weight:bold;border-bottom:1px solid #000;padding-bottom:3px;margin:14px 0 8px}
.pp-sec-qnum{text-decoration:underline}
.pp-sec-instr{font-weight:normal;font-size:10pt;flex:1}
.pp-sec-marks{font-size:10pt;white-space:nowrap}
.pp-sec-note{font-size:9pt;font-style:italic;margin-bottom:6px}
.pp-bubbles{display:grid;gap:6px;border:1px solid #000;padding:6px;margin-bottom:10px}
.pp-bub-item{display:flex;align-items:center;gap:4px;font-size:8pt}
.pp-bub-num{font-weight:bold;width:18px}
.pp-bub-opts{display:flex;gap:4px}
.pp-bub-opt{display:flex;align-items:center;gap:1px}
.pp-bub-circle{width:10px;height:10px;border:1px solid #000;border-radius:50%;display:inline-block}
.pp-mcq-table{width:100%;border-collapse:collapse;font-size:10pt}
.pp-mcq-tr{border-bottom:0.5px solid #ccc}
.pp-mcq-num{font-weight:bold;vertical-align:top;width:24px;padding:5px 2px}
.pp-mcq-body{padding:5px 2px}
.pp-mcq-opts{display:flex;flex-wrap:wrap;gap:4px 18px;margin:4px 0 0 12px}
.pp-mcq-opt-lbl{font-weight:bold}
.pp-shorts{font-size:11pt}
.pp-short-row{display:flex;gap:6px;padding:5px 2px}
.pp-short-num{font-weight:bold;min-width:28px}
.pp-short-text{flex:1}
.pp-short-marks{font-weight:bold;color:#444}
.pp-longs{font-size:11pt}
.pp-long-item{margin-bottom:14px}
.pp-long-header{display:flex;gap:8px}
.pp-long-qnum{font-weight:bold}
.pp-long-text{flex:1}
.pp-long-marks{font-weight:bold;color:#444}
.pp-long-parts{margin:4px 0 0 20px}
.pp-long-part{display:flex;gap:6px;padding:2px 0}
.pp-long-part-lbl{font-weight:bold}
.pp-long-part-text{flex:1}
.pp-long-part-marks{font-weight:bold;color:#444}
.pp-writing-prompt{font-style:italic;margin-bottom:8px}
.pp-lines{margin-top:8px}
.pp-line{border-bottom:1px dashed #999;height:24px;margin-bottom:4px}
.pp-divider{page-break-before:always;text-align:center;font-size:13pt;font-weight:bold;letter-spacing:2px;border-top:2px solid #000;border-bottom:2px solid #000;padding:6px 0;margin:10px 0 14px}
.pp-page-break{page-break-before:always}
.omr-sheet{padding:20px}
.omr-header{text-align:center;margin-bottom:20px;border-bottom:2px solid #000;padding-bottom:10px}
.omr-header h3{font-size:16pt;margin-bottom:8px}
.omr-info{display:flex;justify-content:space-between;margin-bottom:16px;font-size:11pt}
.omr-field{flex:1}
.omr-field span{font-weight:bold}
.omr-line{border-bottom:1px solid #000;display:inline-block;width:120px;margin-left:8px}
.omr-instructions{font-size:9pt;margin-bottom:12px}
.omr-row{display:flex;align-items:center;gap:8px;margin-bottom:6px}
.omr-range{width:40px;font-weight:bold;font-size:9pt}
.omr-q{display:flex;align-items:center;gap:3px;font-size:8pt}
.omr-num{font-weight:bold}
.omr-bubbles{display:flex;align-items:center;gap:2px}
.omr-letter{font-size:7pt}
.omr-circle{width:11px;height:11px;border:1px solid #000;border-radius:50%;display:inline-block}
.math-error{color:#b00;font-family:monospace;font-size:9pt}
.pp-footer{position:fixed;bottom:10mm;left:0;right:0;text-align:center;font-size:8pt;color:#666;border-top:1px solid #ccc;padding-top:4px}
@media print{.omr-sheet{page-break-before:always}}
`
