package extract

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"cdox/lang"
	"cdox/types"
)

// parser wraps a tree-sitter parser for a specific language.
type parser struct {
	parser *sitter.Parser
	lang   lang.Language
}

// newParser creates a new parser for the given language.
func newParser(language lang.Language) *parser {
	p := sitter.NewParser()
	p.SetLanguage(language.TreeSitterLang())
	return &parser{
		parser: p,
		lang:   language,
	}
}

// parse parses source code and returns the syntax tree.
func (p *parser) parse(source []byte) *sitter.Tree {
	return p.parser.Parse(nil, source)
}

// declQuery is a compiled declaration query for one language.
type declQuery struct {
	query        *sitter.Query
	captureNames []string
}

// newDeclQuery compiles the language's declaration query.
func newDeclQuery(language lang.Language) (*declQuery, error) {
	q, err := sitter.NewQuery([]byte(language.DeclsQuery()), language.TreeSitterLang())
	if err != nil {
		return nil, fmt.Errorf("compile decls query: %w", err)
	}

	captureCount := int(q.CaptureCount())
	captureNames := make([]string, captureCount)
	for i := 0; i < captureCount; i++ {
		captureNames[i] = q.CaptureNameForId(uint32(i))
	}

	return &declQuery{
		query:        q,
		captureNames: captureNames,
	}, nil
}

// run executes the query on a syntax tree and returns the declarations
// it finds. Each pattern captures a kind node plus a @name node; the
// declaration's line is the kind node's start line.
func (q *declQuery) run(tree *sitter.Tree, source []byte) []types.Declaration {
	cursor := sitter.NewQueryCursor()
	cursor.Exec(q.query, tree.RootNode())

	var decls []types.Declaration
	for {
		match, ok := cursor.NextMatch()
		if !ok {
			break
		}

		var decl types.Declaration
		for _, capture := range match.Captures {
			name := q.captureName(capture.Index)
			if name == "name" {
				decl.Name = capture.Node.Content(source)
				continue
			}
			decl.Kind = name
			decl.Line = int(capture.Node.StartPoint().Row) + 1
		}
		if decl.Kind == "" || decl.Line == 0 {
			continue
		}
		decls = append(decls, decl)
	}

	return decls
}

func (q *declQuery) captureName(index uint32) string {
	if int(index) >= len(q.captureNames) {
		return fmt.Sprintf("capture_%d", index)
	}
	return q.captureNames[index]
}
