package output

import (
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"cdox/extract"
)

// RenderSummary prints per-file extraction counts as a table, with a
// totals footer.
func RenderSummary(w io.Writer, summaries []extract.Summary) {
	if w == nil {
		w = os.Stdout
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"FILE", "COMMENTS", "DOC", "TAGS", "MARKERS", "ASSOC", "ERRORS"})

	var total extract.Summary
	for _, s := range summaries {
		t.AppendRow(table.Row{s.File, s.Comments, s.Doc, s.Tags, s.Markers, s.Assoc, s.Errors})
		total.Comments += s.Comments
		total.Doc += s.Doc
		total.Tags += s.Tags
		total.Markers += s.Markers
		total.Assoc += s.Assoc
		total.Errors += s.Errors
	}

	t.AppendFooter(table.Row{"TOTAL", total.Comments, total.Doc, total.Tags, total.Markers, total.Assoc, total.Errors})
	t.Render()
}
