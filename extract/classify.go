package extract

import (
	"regexp"
	"strings"

	"cdox/types"
)

// styleOf assigns a comment style from the span's delimiters.
// Decorative banners (/**** ... ****/ and //// dividers) and the empty
// /**/ comment classify as plain block/line, matching Doxygen's own
// treatment of them.
func styleOf(src []byte, s rawSpan) types.Style {
	text := src[s.start:s.end]
	if s.block {
		if len(text) >= 5 && text[2] == '!' {
			return types.StyleQtBlock
		}
		if len(text) >= 6 && text[2] == '*' && text[3] != '*' {
			return types.StyleDoxygenBlock
		}
		return types.StyleBlock
	}
	if len(text) >= 3 {
		switch text[2] {
		case '!':
			return types.StyleQtLine
		case '/':
			if len(text) == 3 || text[3] != '/' {
				return types.StyleDoxygenLine
			}
		}
	}
	return types.StyleLine
}

// classify turns raw scanner spans into Comment records: assigns
// styles, merges adjacent ///- and //!-runs, normalizes bodies and
// parses doc tags and markers.
func classify(src []byte, spans []rawSpan, path string, lt *lineTable) []types.Comment {
	styles := make([]types.Style, len(spans))
	for i, s := range spans {
		styles[i] = styleOf(src, s)
	}

	comments := make([]types.Comment, 0, len(spans))
	for i := 0; i < len(spans); {
		j := i + 1
		if mergeable(styles[i]) && lt.isBlankBefore(spans[i].line, spans[i].start) {
			for j < len(spans) &&
				styles[j] == styles[i] &&
				spans[j].line == spans[j-1].endLine+1 &&
				lt.isBlankBefore(spans[j].line, spans[j].start) {
				j++
			}
		}
		comments = append(comments, buildComment(src, spans[i:j], styles[i], path))
		i = j
	}

	return comments
}

// mergeable reports whether consecutive whole-line comments of this
// style join into one logical comment.
func mergeable(s types.Style) bool {
	return s == types.StyleDoxygenLine || s == types.StyleQtLine
}

func buildComment(src []byte, run []rawSpan, style types.Style, path string) types.Comment {
	first, last := run[0], run[len(run)-1]
	c := types.Comment{
		File:    path,
		Start:   first.start,
		End:     last.end,
		Line:    first.line,
		EndLine: last.endLine,
		Style:   style,
		Text:    string(src[first.start:last.end]),
	}

	var body string
	if first.block {
		body = blockBody(string(src[first.start:first.end]), style)
	} else {
		lines := make([]string, 0, len(run))
		for _, s := range run {
			lines = append(lines, lineBody(string(src[s.start:s.end]), style))
		}
		body = strings.Join(lines, "\n")
	}

	c.Markers = findMarkers(body)
	if style.IsDoc() {
		c.Body, c.Tags = parseTags(body)
	} else {
		c.Body = body
	}
	return c
}

// lineBody strips the // delimiter (and the doc sigil plus the
// trailing-member marker for doc styles) and one following space.
func lineBody(text string, style types.Style) string {
	body := strings.TrimPrefix(text, "//")
	switch style {
	case types.StyleDoxygenLine:
		body = strings.TrimPrefix(body, "/")
		body = strings.TrimPrefix(body, "<")
	case types.StyleQtLine:
		body = strings.TrimPrefix(body, "!")
		body = strings.TrimPrefix(body, "<")
	}
	body = strings.TrimPrefix(body, " ")
	return strings.TrimRight(body, " \t")
}

// blockBody strips the /* */ delimiters and the usual leading-asterisk
// decoration from continuation lines.
func blockBody(text string, style types.Style) string {
	inner := text[2 : len(text)-2]
	switch style {
	case types.StyleDoxygenBlock:
		inner = strings.TrimPrefix(inner, "*")
	case types.StyleQtBlock:
		inner = strings.TrimPrefix(inner, "!")
	}

	lines := strings.Split(inner, "\n")
	for i, line := range lines {
		if i > 0 {
			line = strings.TrimLeft(line, " \t")
			line = strings.TrimLeft(line, "*")
		}
		line = strings.TrimPrefix(line, " ")
		lines[i] = strings.TrimRight(line, " \t")
	}

	// Drop blank edge lines left by the delimiters.
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// tagStartRe matches a doc directive at the start of a line: an @ or \
// sigil immediately followed by an identifier. A bare sigil does not
// start a tag; its line stays in the body.
var tagStartRe = regexp.MustCompile(`^[@\\]([A-Za-z][A-Za-z0-9_]*)(?:[ \t]+|$)`)

// argTags are the Doxygen tags whose first word is an argument name,
// as in "@param x description".
var argTags = map[string]bool{
	"param": true, "tparam": true, "def": true, "typedef": true,
	"struct": true, "class": true, "enum": true, "union": true,
	"var": true, "fn": true, "file": true, "namespace": true,
	"page": true,
}

// parseTags splits a normalized doc body into free-form text and
// structured Tag records. A tag's body continues on following lines
// until the next tag or a blank line.
func parseTags(body string) (string, []types.Tag) {
	var (
		free    []string
		tags    []types.Tag
		current *types.Tag
	)

	flush := func() {
		if current != nil {
			tags = append(tags, *current)
			current = nil
		}
	}

	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimLeft(line, " \t")

		if m := tagStartRe.FindStringSubmatch(trimmed); m != nil {
			flush()
			rest := strings.TrimLeft(trimmed[len(m[0]):], " \t")
			tag := types.Tag{Name: m[1]}
			if argTags[tag.Name] && rest != "" {
				if idx := strings.IndexAny(rest, " \t"); idx >= 0 {
					tag.Arg = rest[:idx]
					rest = strings.TrimLeft(rest[idx:], " \t")
				} else {
					tag.Arg = rest
					rest = ""
				}
			}
			tag.Body = rest
			current = &tag
			continue
		}

		if current != nil {
			if trimmed == "" {
				flush()
				continue
			}
			if current.Body == "" {
				current.Body = trimmed
			} else {
				current.Body += "\n" + trimmed
			}
			continue
		}

		free = append(free, line)
	}
	flush()

	// Drop blank edge lines left by removed tag sections.
	for len(free) > 0 && free[0] == "" {
		free = free[1:]
	}
	for len(free) > 0 && free[len(free)-1] == "" {
		free = free[:len(free)-1]
	}
	return strings.Join(free, "\n"), tags
}

var markerRe = regexp.MustCompile(`\b(TODO|FIXME|NOTE|XXX|HACK|BUG)\b`)

// findMarkers collects TODO-style markers in order of first appearance.
func findMarkers(body string) []string {
	var markers []string
	seen := make(map[string]bool)
	for _, m := range markerRe.FindAllString(body, -1) {
		if !seen[m] {
			seen[m] = true
			markers = append(markers, m)
		}
	}
	return markers
}
