package extract

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/ianaindex"
)

// decode validates or converts the raw file bytes into the UTF-8
// buffer the scanner works on. With no declared encoding the input
// must already be valid UTF-8; otherwise the named IANA encoding is
// decoded with x/text. All comment offsets refer to the decoded buffer.
func decode(src []byte, encName string) ([]byte, error) {
	if encName == "" || isUTF8Name(encName) {
		if off := firstInvalidUTF8(src); off >= 0 {
			return nil, &EncodingError{Encoding: "utf-8", Offset: off}
		}
		return src, nil
	}

	enc, err := ianaindex.IANA.Encoding(encName)
	if err != nil || enc == nil {
		return nil, &EncodingError{
			Encoding: encName,
			Reason:   fmt.Sprintf("unknown encoding %q", encName),
		}
	}

	out, err := enc.NewDecoder().Bytes(src)
	if err != nil {
		return nil, &EncodingError{
			Encoding: encName,
			Reason:   fmt.Sprintf("decode %s: %v", encName, err),
		}
	}
	return out, nil
}

func isUTF8Name(name string) bool {
	switch strings.ToLower(name) {
	case "utf-8", "utf8":
		return true
	}
	return false
}

// firstInvalidUTF8 returns the offset of the first invalid byte
// sequence, or -1 if the buffer is valid UTF-8.
func firstInvalidUTF8(src []byte) int {
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
