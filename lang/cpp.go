package lang

import (
	_ "embed"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/cpp"
)

//go:embed queries/cpp/decls.scm
var cppDeclsQuery string

// Cpp implements the Language interface for C++ source code.
type Cpp struct{}

func init() {
	Register(&Cpp{})
}

func (l *Cpp) Name() string {
	return "cpp"
}

func (l *Cpp) Extensions() []string {
	return []string{".cpp", ".cc", ".cxx", ".hpp", ".hh", ".hxx"}
}

func (l *Cpp) TreeSitterLang() *sitter.Language {
	return cpp.GetLanguage()
}

func (l *Cpp) DeclsQuery() string {
	return cppDeclsQuery
}
