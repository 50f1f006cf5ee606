package report

import (
	"fmt"
	"html"
	"io"
	"strings"
	"time"

	"github.com/cybertec-postgresql/sqlitelex/internal/stats"
)

// HTMLReporter formats a snapshot as a standalone HTML page
type HTMLReporter struct{}

// NewHTMLReporter creates a new HTML reporter
func NewHTMLReporter() *HTMLReporter {
	return &HTMLReporter{}
}

// Format formats a snapshot as HTML and writes to the writer
func (r *HTMLReporter) Format(snap *stats.Snapshot, writer io.Writer) error {
	files := snap.GetFiles()
	total := snap.Totals()

	if err := r.writeHeader(snap, writer); err != nil {
		return err
	}
	if err := r.writeSummary(total, len(files), writer); err != nil {
		return err
	}
	if err := r.writeCounts("Token Kinds", total.Kinds, writer); err != nil {
		return err
	}
	if err := r.writeCounts("Statement Types", total.StatementTypes, writer); err != nil {
		return err
	}
	for _, file := range files {
		if err := r.writeFileDetail(file, snap.Files[file], writer); err != nil {
			return err
		}
	}
	return r.writeFooter(writer)
}

// writeHeader writes the HTML document header with CSS
func (r *HTMLReporter) writeHeader(snap *stats.Snapshot, writer io.Writer) error {
	timestamp := time.Now().Format(time.RFC1123)
	if !snap.Timestamp.IsZero() {
		timestamp = snap.Timestamp.Format(time.RFC1123)
	}

	_, err := fmt.Fprintf(writer, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>sqlitelex Token Report</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif; background: #f5f5f5; color: #333; }
        .container { max-width: 1200px; margin: 0 auto; padding: 20px; }
        header { background: #2c3e50; color: white; padding: 30px 0; margin-bottom: 30px; }
        header h1 { font-size: 2.5em; margin-bottom: 10px; }
        header .meta { opacity: 0.8; font-size: 0.9em; }
        section { background: white; border-radius: 8px; padding: 25px; margin-bottom: 30px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        section h2, section h3 { margin-bottom: 20px; color: #2c3e50; }
        .summary-stats { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 20px; }
        .stat-card { background: #f8f9fa; padding: 20px; border-radius: 6px; border-left: 4px solid #3498db; }
        .stat-card.bad { border-left-color: #e74c3c; }
        .stat-card .label { font-size: 0.85em; color: #7f8c8d; text-transform: uppercase; letter-spacing: 0.5px; margin-bottom: 8px; }
        .stat-card .value { font-size: 2em; font-weight: bold; color: #2c3e50; }
        table { border-collapse: collapse; width: 100%%; }
        th, td { text-align: left; padding: 6px 12px; border-bottom: 1px solid #ecf0f1; }
        td.num { text-align: right; font-variant-numeric: tabular-nums; }
        .file-name { font-family: 'Courier New', monospace; font-size: 0.95em; }
        .badge { font-size: 0.75em; padding: 2px 8px; border-radius: 4px; background: #fff3cd; color: #856404; }
        .badge.failed { background: #f8d7da; color: #721c24; }
        .diag { font-family: 'Courier New', monospace; color: #721c24; }
        footer { text-align: center; padding: 30px 0; color: #7f8c8d; font-size: 0.9em; }
    </style>
</head>
<body>
    <header>
        <div class="container">
            <h1>sqlitelex Token Report</h1>
            <div class="meta">Generated: %s | Snapshot: %s | Version: %s</div>
        </div>
    </header>
    <div class="container">
`, timestamp, snap.ID, html.EscapeString(snap.Version))
	return err
}

// writeSummary writes the stat cards
func (r *HTMLReporter) writeSummary(total *stats.FileStats, files int, writer io.Writer) error {
	diagClass := ""
	if len(total.Diagnostics) > 0 {
		diagClass = " bad"
	}
	_, err := fmt.Fprintf(writer, `        <section class="summary">
            <h2>Summary</h2>
            <div class="summary-stats">
                <div class="stat-card"><div class="label">Files</div><div class="value">%d</div></div>
                <div class="stat-card"><div class="label">Bytes</div><div class="value">%d</div></div>
                <div class="stat-card"><div class="label">Tokens</div><div class="value">%d</div></div>
                <div class="stat-card"><div class="label">Statements</div><div class="value">%d</div></div>
                <div class="stat-card%s"><div class="label">Diagnostics</div><div class="value">%d</div></div>
            </div>
        </section>

`, files, total.Bytes, total.Tokens, total.Statements, diagClass, len(total.Diagnostics))
	return err
}

// writeCounts writes a frequency table, most frequent first
func (r *HTMLReporter) writeCounts(title string, counts map[string]int, writer io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "        <section class=\"counts\">\n            <h2>%s</h2>\n            <table>\n", html.EscapeString(title))
	b.WriteString("                <tr><th>Name</th><th>Count</th></tr>\n")
	for _, kc := range stats.SortedCounts(counts) {
		fmt.Fprintf(&b, "                <tr><td>%s</td><td class=\"num\">%d</td></tr>\n", html.EscapeString(kc.Name), kc.Count)
	}
	b.WriteString("            </table>\n        </section>\n\n")
	_, err := io.WriteString(writer, b.String())
	return err
}

// writeFileDetail writes the counters and diagnostics of a single file
func (r *HTMLReporter) writeFileDetail(file string, fs *stats.FileStats, writer io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "        <section class=\"file-detail\">\n            <h3><span class=\"file-name\">%s</span>", html.EscapeString(file))
	if fs.Truncated {
		b.WriteString(` <span class="badge">truncated at NUL</span>`)
	}
	if fs.Error != "" {
		fmt.Fprintf(&b, ` <span class="badge failed">%s</span>`, html.EscapeString(fs.Error))
	}
	b.WriteString("</h3>\n")
	fmt.Fprintf(&b, "            <p>%d bytes, %d tokens, %d statements</p>\n", fs.Bytes, fs.Tokens, fs.Statements)

	if len(fs.Diagnostics) > 0 {
		b.WriteString("            <table>\n                <tr><th>Line</th><th>Column</th><th>Kind</th><th>Text</th></tr>\n")
		for _, d := range fs.Diagnostics {
			fmt.Fprintf(&b, "                <tr><td class=\"num\">%d</td><td class=\"num\">%d</td><td>%s</td><td class=\"diag\">%s</td></tr>\n",
				d.Line, d.Column, html.EscapeString(d.Kind), html.EscapeString(d.Text))
		}
		b.WriteString("            </table>\n")
	}
	b.WriteString("        </section>\n\n")

	_, err := io.WriteString(writer, b.String())
	return err
}

// writeFooter writes the HTML document footer
func (r *HTMLReporter) writeFooter(writer io.Writer) error {
	_, err := io.WriteString(writer, `        <footer>
            Generated by <strong>sqlitelex</strong> - SQLite SQL Tokenizer
        </footer>
    </div>
</body>
</html>
`)
	return err
}

// FormatString returns a snapshot as an HTML string
func (r *HTMLReporter) FormatString(snap *stats.Snapshot) (string, error) {
	var buf strings.Builder
	if err := r.Format(snap, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Name returns the name of this reporter
func (r *HTMLReporter) Name() string {
	return "html"
}
