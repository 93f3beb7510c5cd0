// Package extract implements comment extraction for C/C++ sources:
// a character-level scanner for comment spans, a style classifier with
// Doxygen/Qt tag parsing, and an associator that links comments to the
// declarations they document.
package extract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"cdox/lang"
	"cdox/types"
)

// Extract runs the full pipeline (scan, classify, associate) over a
// single file or a source tree and returns one FileResult per file,
// sorted by display path. Errors inside a file are collected in its
// result next to any partial output; only setup failures (bad options,
// unreadable root) abort the batch.
func Extract(ctx context.Context, opts Options) ([]types.FileResult, error) {
	opts, forced, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	files, err := collectFiles(opts, forced)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return []types.FileResult{}, nil
	}

	results := runWorkers(files, opts.Jobs, func(job types.FileJob) types.FileResult {
		return extractFile(ctx, job, forced, opts)
	})

	sort.Slice(results, func(i, j int) bool { return results[i].File < results[j].File })
	return results, nil
}

// Decls lists the declarations of a single file or a source tree
// without extracting comments.
func Decls(ctx context.Context, opts Options) ([]types.FileResult, error) {
	opts, forced, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	files, err := collectFiles(opts, forced)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return []types.FileResult{}, nil
	}

	results := runWorkers(files, opts.Jobs, func(job types.FileJob) types.FileResult {
		return declsFile(ctx, job, forced, opts)
	})

	sort.Slice(results, func(i, j int) bool { return results[i].File < results[j].File })
	return results, nil
}

func resolveOptions(opts Options) (Options, lang.Language, error) {
	if opts.Path == "" {
		opts.Path = "."
	}
	if opts.Jobs == 0 {
		opts.Jobs = runtime.NumCPU()
	}
	if opts.MaxBytes == 0 {
		opts.MaxBytes = 2 * 1024 * 1024
	}

	var forced lang.Language
	if opts.Language != "" {
		forced = lang.Get(opts.Language)
		if forced == nil {
			return opts, nil, errors.New(opts.Language + " language not registered")
		}
	}
	return opts, forced, nil
}

func collectFiles(opts Options, forced lang.Language) ([]types.FileJob, error) {
	if opts.File != "" {
		w := newWalker(walkConfig{})
		job, err := w.collectSingle(opts.File)
		if err != nil {
			return nil, err
		}
		return []types.FileJob{job}, nil
	}

	extensions := lang.AllExtensions()
	if forced != nil {
		extensions = forced.Extensions()
	}
	w := newWalker(walkConfig{
		root:       opts.Path,
		extensions: extensions,
		maxBytes:   opts.MaxBytes,
	})
	return w.collect()
}

// extractFile runs the per-file pipeline. All failures end up in the
// result's Errors; the function never panics the batch.
func extractFile(ctx context.Context, job types.FileJob, forced lang.Language, opts Options) types.FileResult {
	res := types.FileResult{File: job.DisplayPath, Comments: []types.Comment{}}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	src, ok := loadFile(job, opts, &res)
	if !ok {
		return res
	}
	if canceled(ctx, &res) {
		return res
	}

	spans, scanErr := scan(src)
	if scanErr != nil {
		var malformed *MalformedCommentError
		if errors.As(scanErr, &malformed) {
			malformed.Path = job.DisplayPath
		}
		res.Errors = append(res.Errors, scanErr.Error())
	}

	lt := newLineTable(src)
	res.Comments = classify(src, spans, job.DisplayPath, lt)

	if canceled(ctx, &res) {
		return res
	}

	ix := newDeclIndex()
	if !opts.NoParse {
		if language := fileLanguage(job, forced); language != nil {
			built, err := buildDeclIndex(language, src)
			if err != nil {
				res.Errors = append(res.Errors, err.Error())
			} else {
				ix = built
			}
		}
	}

	associate(res.Comments, ix, lt)

	if opts.IncludeDecls {
		res.Decls = ix.list
	}
	return res
}

// declsFile runs only the declaration pass for one file.
func declsFile(ctx context.Context, job types.FileJob, forced lang.Language, opts Options) types.FileResult {
	res := types.FileResult{File: job.DisplayPath, Comments: []types.Comment{}}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	src, ok := loadFile(job, opts, &res)
	if !ok {
		return res
	}
	if canceled(ctx, &res) {
		return res
	}

	language := fileLanguage(job, forced)
	if language == nil {
		res.Errors = append(res.Errors, "no language registered for "+job.DisplayPath)
		return res
	}

	ix, err := buildDeclIndex(language, src)
	if err != nil {
		res.Errors = append(res.Errors, err.Error())
		return res
	}
	res.Decls = ix.list
	return res
}

// loadFile reads and decodes a job's file, recording any error in the
// result. The second return value is false when the file must be
// skipped.
func loadFile(job types.FileJob, opts Options, res *types.FileResult) ([]byte, bool) {
	raw, err := os.ReadFile(job.AbsPath)
	if err != nil {
		res.Errors = append(res.Errors, err.Error())
		return nil, false
	}

	src, err := decode(raw, opts.Encoding)
	if err != nil {
		var encErr *EncodingError
		if errors.As(err, &encErr) {
			encErr.Path = job.DisplayPath
		}
		res.Errors = append(res.Errors, err.Error())
		return nil, false
	}
	return src, true
}

func fileLanguage(job types.FileJob, forced lang.Language) lang.Language {
	if forced != nil {
		return forced
	}
	return lang.ByExtension(strings.ToLower(filepath.Ext(job.AbsPath)))
}

// canceled records a context error (deadline or cancellation) in the
// result and reports whether processing should stop.
func canceled(ctx context.Context, res *types.FileResult) bool {
	if err := ctx.Err(); err != nil {
		res.Errors = append(res.Errors, err.Error())
		return true
	}
	return false
}
