package extract

// rawSpan is a single comment span as found by the scanner, before
// classification and merging. Offsets are [start, end) into the
// decoded buffer; lines are 1-based.
type rawSpan struct {
	start   int
	end     int
	line    int
	endLine int
	block   bool // true for /* */, false for //
}

// scanner states
const (
	stCode = iota
	stLine
	stBlock
	stStr
	stChar
)

// scan walks src in a single pass and returns every comment span in
// offset order. Comment openers inside string and character literals
// are ignored. Block comments do not nest: a /* inside an open block
// comment is literal text and the comment closes at the first */.
// Preprocessor-excluded regions (#if 0) are not special-cased, so
// comments inside them are found like any others.
//
// A // comment reaching end of file without a trailing newline is
// closed at EOF. A /* comment still open at EOF is an error: scan
// returns the spans found before it together with a
// MalformedCommentError carrying the opener offset.
func scan(src []byte) ([]rawSpan, error) {
	var (
		spans     []rawSpan
		state     = stCode
		start     int
		startLine int
		line      = 1
	)

	i := 0
	for i < len(src) {
		c := src[i]
		switch state {
		case stCode:
			switch {
			case c == '/' && i+1 < len(src) && src[i+1] == '/':
				state, start, startLine = stLine, i, line
				i += 2
				continue
			case c == '/' && i+1 < len(src) && src[i+1] == '*':
				state, start, startLine = stBlock, i, line
				i += 2
				continue
			case c == '"':
				state = stStr
			case c == '\'':
				state = stChar
			}
		case stLine:
			if c == '\n' {
				spans = append(spans, rawSpan{start: start, end: i, line: startLine, endLine: line})
				state = stCode
			}
		case stBlock:
			if c == '*' && i+1 < len(src) && src[i+1] == '/' {
				spans = append(spans, rawSpan{start: start, end: i + 2, line: startLine, endLine: line, block: true})
				state = stCode
				i += 2
				continue
			}
		case stStr:
			if c == '\\' && i+1 < len(src) {
				if src[i+1] == '\n' {
					line++
				}
				i += 2
				continue
			}
			if c == '"' || c == '\n' {
				state = stCode
			}
		case stChar:
			if c == '\\' && i+1 < len(src) {
				if src[i+1] == '\n' {
					line++
				}
				i += 2
				continue
			}
			if c == '\'' || c == '\n' {
				state = stCode
			}
		}
		if c == '\n' {
			line++
		}
		i++
	}

	switch state {
	case stLine:
		// Line comment ending exactly at EOF is valid.
		spans = append(spans, rawSpan{start: start, end: len(src), line: startLine, endLine: line})
	case stBlock:
		return spans, &MalformedCommentError{Offset: start}
	}

	return spans, nil
}
