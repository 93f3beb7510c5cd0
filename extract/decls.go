package extract

import (
	"regexp"
	"sort"
	"strings"

	"cdox/lang"
	"cdox/types"
)

// declIndex holds the declarations of one file, keyed by start line.
// When the grammar-based pass found nothing for a line, lookup falls
// back to a line-level heuristic.
type declIndex struct {
	byLine map[int]*types.Declaration
	list   []types.Declaration
}

func newDeclIndex() *declIndex {
	return &declIndex{byLine: make(map[int]*types.Declaration)}
}

// buildDeclIndex parses the buffer with the language's tree-sitter
// grammar and collects declarations from its declaration query.
func buildDeclIndex(language lang.Language, src []byte) (*declIndex, error) {
	query, err := newDeclQuery(language)
	if err != nil {
		return nil, err
	}

	p := newParser(language)
	tree := p.parse(src)
	defer tree.Close()

	ix := newDeclIndex()
	for _, d := range query.run(tree, src) {
		ix.add(d)
	}
	sort.Slice(ix.list, func(i, j int) bool {
		if ix.list[i].Line != ix.list[j].Line {
			return ix.list[i].Line < ix.list[j].Line
		}
		return ix.list[i].Name < ix.list[j].Name
	})
	return ix, nil
}

func (ix *declIndex) add(d types.Declaration) {
	if prev, ok := ix.byLine[d.Line]; ok {
		// Multiple patterns can match the same line (a typedef'd
		// struct matches both). Keep the first, skip duplicates.
		if prev.Kind == d.Kind && prev.Name == d.Name {
			return
		}
	} else {
		ix.byLine[d.Line] = &d
	}
	ix.list = append(ix.list, d)
}

// at returns the declaration whose head is on the given line, or nil.
// The line's code text (comments already blanked out) feeds the
// heuristic when the index has no entry.
func (ix *declIndex) at(line int, code string) *types.Declaration {
	if d, ok := ix.byLine[line]; ok {
		return d
	}
	if d := matchDeclHead(code); d != nil {
		d.Line = line
		return d
	}
	return nil
}

// Heuristic declaration-head patterns, tried in order.
var (
	reDefine    = regexp.MustCompile(`^\s*#\s*define\s+([A-Za-z_]\w*)`)
	reNamespace = regexp.MustCompile(`^\s*namespace\s+([A-Za-z_][\w:]*)`)
	reRecord    = regexp.MustCompile(`^\s*(?:typedef\s+)?(struct|class|enum|union)\b\s*([A-Za-z_]\w*)?`)
	reTypedef   = regexp.MustCompile(`^\s*typedef\b.*?([A-Za-z_]\w*)\s*;`)
	// A function head needs a return type before the name; a bare
	// identifier followed by ( is indistinguishable from a call.
	reFunc = regexp.MustCompile(`^\s*(?:[A-Za-z_][\w:<>,~&*\s]*?[\s*&])~?([A-Za-z_][\w:~]*)\s*\(`)
	reVar       = regexp.MustCompile(`^\s*[A-Za-z_][\w:<>,\s*&]*?[\s*&]([A-Za-z_]\w*)\s*(?:=|;|\[)`)

	reFirstWord = regexp.MustCompile(`[A-Za-z_]\w*`)
)

// Control-flow and operator keywords that rule a line out as a
// function or variable declaration head.
var notDeclKeywords = map[string]bool{
	"if": true, "else": true, "for": true, "while": true, "do": true,
	"switch": true, "case": true, "return": true, "goto": true,
	"break": true, "continue": true, "sizeof": true, "new": true,
	"delete": true, "throw": true, "using": true,
}

// matchDeclHead recognizes a declaration head on a single source line.
// It backs the associator for lines the grammar query did not cover and
// serves alone when parsing is disabled.
func matchDeclHead(line string) *types.Declaration {
	if m := reDefine.FindStringSubmatch(line); m != nil {
		return &types.Declaration{Kind: "macro", Name: m[1]}
	}

	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil
	}

	if m := reNamespace.FindStringSubmatch(line); m != nil {
		return &types.Declaration{Kind: "namespace", Name: m[1]}
	}
	if m := reRecord.FindStringSubmatch(line); m != nil {
		if m[2] == "" && strings.HasPrefix(trimmed, "typedef") {
			return &types.Declaration{Kind: "typedef"}
		}
		return &types.Declaration{Kind: m[1], Name: m[2]}
	}
	if m := reTypedef.FindStringSubmatch(line); m != nil {
		return &types.Declaration{Kind: "typedef", Name: m[1]}
	}
	if strings.HasPrefix(trimmed, "typedef") {
		return &types.Declaration{Kind: "typedef"}
	}

	first := reFirstWord.FindString(trimmed)
	if first == "" || notDeclKeywords[first] {
		return nil
	}

	if m := reFunc.FindStringSubmatch(line); m != nil {
		name := m[1]
		if i := strings.LastIndex(name, "::"); i >= 0 {
			name = name[i+2:]
		}
		if !notDeclKeywords[name] {
			return &types.Declaration{Kind: "function", Name: name}
		}
	}
	if m := reVar.FindStringSubmatch(line); m != nil {
		return &types.Declaration{Kind: "variable", Name: m[1]}
	}
	return nil
}
