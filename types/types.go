// Package types defines shared data types for cdox.
package types

// Style identifies the comment dialect of an extracted comment.
type Style string

const (
	// StyleBlock is a plain /* ... */ comment.
	StyleBlock Style = "block"
	// StyleLine is a plain // comment.
	StyleLine Style = "line"
	// StyleDoxygenBlock is a /** ... */ documentation comment.
	StyleDoxygenBlock Style = "doxygen-block"
	// StyleDoxygenLine is a /// documentation comment (runs merge).
	StyleDoxygenLine Style = "doxygen-line"
	// StyleQtBlock is a /*! ... */ documentation comment.
	StyleQtBlock Style = "qt-block"
	// StyleQtLine is a //! documentation comment (runs merge).
	StyleQtLine Style = "qt-line"
)

// IsDoc reports whether the style is a documentation style.
func (s Style) IsDoc() bool {
	switch s {
	case StyleDoxygenBlock, StyleDoxygenLine, StyleQtBlock, StyleQtLine:
		return true
	}
	return false
}

// Tag is a structured directive inside a doc comment, e.g. "@param x desc".
// The @ and \ sigils are equivalent.
type Tag struct {
	Name string `json:"name"`
	Arg  string `json:"arg,omitempty"`
	Body string `json:"body,omitempty"`
}

// Declaration is a recognized declaration head in a source file.
type Declaration struct {
	Kind string `json:"kind"` // function, method, struct, class, enum, union, typedef, macro, namespace, variable
	Name string `json:"name,omitempty"`
	Line int    `json:"line"` // 1-based
}

// Comment is a single extracted comment. Start and End are byte offsets
// into the decoded buffer, with Start < End and spans of distinct
// comments never overlapping. For merged /// and //! runs the span
// covers the first opener through the last line's end.
type Comment struct {
	File    string       `json:"file"`
	Start   int          `json:"start"`
	End     int          `json:"end"`
	Line    int          `json:"line"`     // 1-based start line
	EndLine int          `json:"end_line"` // 1-based end line
	Style   Style        `json:"style"`
	Text    string       `json:"text"`              // raw text including delimiters
	Body    string       `json:"body,omitempty"`    // normalized body, delimiters stripped
	Tags    []Tag        `json:"tags,omitempty"`    // doc styles only
	Markers []string     `json:"markers,omitempty"` // TODO, FIXME, ...
	Decl    *Declaration `json:"decl,omitempty"`    // associated declaration, if any
}

// FileResult holds everything extracted from one file. Errors are
// collected per file alongside any partial results; one file's failure
// never aborts a batch.
type FileResult struct {
	File     string        `json:"file"`
	Comments []Comment     `json:"comments"`
	Decls    []Declaration `json:"decls,omitempty"`
	Errors   []string      `json:"errors,omitempty"`
}

// FileJob represents a file to be processed.
type FileJob struct {
	AbsPath     string
	DisplayPath string
}
