package extract

import (
	"strings"

	"cdox/types"
)

// associate links each comment to at most one declaration.
//
// A comment with code before it on its own line is a trailing comment
// and associates with the declaration on that same line. Any other
// comment looks strictly forward: blank and comment-only lines are
// skipped, and if the next remaining line holds a recognizable
// declaration head the comment associates with it. No backtracking.
func associate(comments []types.Comment, ix *declIndex, lt *lineTable) {
	masked := maskComments(lt.src, comments)
	mlt := &lineTable{src: masked, starts: lt.starts}

	for i := range comments {
		c := &comments[i]

		if !mlt.isBlankBefore(c.Line, c.Start) {
			if d := ix.at(c.Line, mlt.text(c.Line)); d != nil {
				decl := *d
				c.Decl = &decl
			}
			continue
		}

		for line := c.EndLine + 1; line <= mlt.count(); line++ {
			text := mlt.text(line)
			if strings.TrimSpace(text) == "" {
				// blank, or nothing but comments
				continue
			}
			if d := ix.at(line, text); d != nil {
				decl := *d
				c.Decl = &decl
			}
			break
		}
	}
}

// maskComments returns a copy of src with every comment byte (except
// newlines) replaced by a space, so line text reflects code only.
func maskComments(src []byte, comments []types.Comment) []byte {
	masked := make([]byte, len(src))
	copy(masked, src)
	for _, c := range comments {
		for i := c.Start; i < c.End && i < len(masked); i++ {
			if masked[i] != '\n' {
				masked[i] = ' '
			}
		}
	}
	return masked
}
