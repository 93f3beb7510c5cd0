package extract

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"

	"cdox/types"
)

// TestDataDriven exercises the scan/classify/associate pipeline against
// the fixtures in testdata. Association uses the line heuristic only,
// keeping expected output independent of grammar versions.
func TestDataDriven(t *testing.T) {
	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) string {
			switch d.Cmd {
			case "extract":
				return handleExtract(d)
			default:
				t.Fatalf("unknown command: %s", d.Cmd)
				return ""
			}
		})
	})
}

// handleExtract runs the pipeline on the input block. A trailing
// newline is appended so fixtures read like ordinary source files.
func handleExtract(d *datadriven.TestData) string {
	src := d.Input
	if !strings.HasSuffix(src, "\n") {
		src += "\n"
	}
	buf := []byte(src)

	spans, scanErr := scan(buf)
	lt := newLineTable(buf)
	comments := classify(buf, spans, "", lt)
	associate(comments, newDeclIndex(), lt)

	var lines []string
	for _, c := range comments {
		lines = append(lines, formatComment(c))
	}
	if scanErr != nil {
		lines = append(lines, "error: "+scanErr.Error())
	}
	if len(lines) == 0 {
		return "(no comments)"
	}
	return strings.Join(lines, "\n")
}

func formatComment(c types.Comment) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s [%d,%d) %q", c.Style, c.Start, c.End, c.Body)
	for _, tag := range c.Tags {
		if tag.Arg != "" {
			fmt.Fprintf(&sb, " @%s(%s)=%q", tag.Name, tag.Arg, tag.Body)
		} else {
			fmt.Fprintf(&sb, " @%s=%q", tag.Name, tag.Body)
		}
	}
	if len(c.Markers) > 0 {
		fmt.Fprintf(&sb, " markers=%s", strings.Join(c.Markers, ","))
	}
	if c.Decl != nil {
		fmt.Fprintf(&sb, " -> %s %s @%d", c.Decl.Kind, c.Decl.Name, c.Decl.Line)
	}
	return sb.String()
}
