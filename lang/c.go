package lang

import (
	_ "embed"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"
)

//go:embed queries/c/decls.scm
var cDeclsQuery string

// C implements the Language interface for C source code.
type C struct{}

func init() {
	Register(&C{})
}

func (l *C) Name() string {
	return "c"
}

func (l *C) Extensions() []string {
	return []string{".c", ".h"}
}

func (l *C) TreeSitterLang() *sitter.Language {
	return c.GetLanguage()
}

func (l *C) DeclsQuery() string {
	return cDeclsQuery
}
