package extract

import "fmt"

// MalformedCommentError reports a block comment left open at end of
// file. Scanning of the affected file stops at the opener; comments
// found before it are still returned.
type MalformedCommentError struct {
	Path   string
	Offset int // byte offset of the /* opener
}

func (e *MalformedCommentError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("unterminated block comment starting at offset %d", e.Offset)
	}
	return fmt.Sprintf("%s: unterminated block comment starting at offset %d", e.Path, e.Offset)
}

// EncodingError reports input bytes that could not be decoded. The
// affected file is skipped; the error is surfaced with the results.
type EncodingError struct {
	Path     string
	Encoding string
	Offset   int // byte offset of the first offending byte
	Reason   string
}

func (e *EncodingError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = fmt.Sprintf("invalid %s byte sequence at offset %d", e.Encoding, e.Offset)
	}
	if e.Path == "" {
		return reason
	}
	return e.Path + ": " + reason
}
