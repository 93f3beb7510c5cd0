package extract

import "bytes"

// lineTable maps 1-based line numbers to byte ranges of the buffer.
type lineTable struct {
	src    []byte
	starts []int // starts[i] is the offset of line i+1
}

func newLineTable(src []byte) *lineTable {
	starts := []int{0}
	for i, c := range src {
		if c == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineTable{src: src, starts: starts}
}

// count returns the number of lines in the buffer.
func (lt *lineTable) count() int {
	return len(lt.starts)
}

// bounds returns the [start, end) byte range of a line, excluding the
// trailing newline.
func (lt *lineTable) bounds(line int) (int, int) {
	if line < 1 || line > len(lt.starts) {
		return 0, 0
	}
	start := lt.starts[line-1]
	end := len(lt.src)
	if line < len(lt.starts) {
		end = lt.starts[line] - 1
	}
	return start, end
}

// text returns the content of a line without its trailing newline.
func (lt *lineTable) text(line int) string {
	start, end := lt.bounds(line)
	return string(lt.src[start:end])
}

// isBlankBefore reports whether the bytes of the given line before
// offset are all whitespace.
func (lt *lineTable) isBlankBefore(line, offset int) bool {
	start, end := lt.bounds(line)
	if offset < end {
		end = offset
	}
	return len(bytes.TrimSpace(lt.src[start:end])) == 0
}
