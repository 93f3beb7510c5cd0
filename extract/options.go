package extract

import "time"

// Options configures the Extract and Decls functions.
type Options struct {
	// Path is the root directory to scan for files.
	// If empty, current directory is used.
	Path string

	// File is a single file to process.
	// If set, Path is ignored.
	File string

	// Language forces a language ("c" or "cpp") for every file.
	// If empty, each file's language is chosen by extension.
	Language string

	// Encoding is the declared IANA encoding of the input files.
	// If empty, input must be valid UTF-8.
	Encoding string

	// IncludeDecls includes the full declaration list in each
	// file's result, not just the associated declarations.
	IncludeDecls bool

	// NoParse disables the tree-sitter declaration pass; association
	// then relies on the line heuristic alone.
	NoParse bool

	// Jobs is the number of parallel workers.
	// If 0, defaults to number of CPUs.
	Jobs int

	// MaxBytes skips files larger than this size.
	// If 0, defaults to 2 MiB.
	MaxBytes int64

	// Timeout bounds the processing of a single file.
	// If 0, no per-file deadline is applied.
	Timeout time.Duration
}
