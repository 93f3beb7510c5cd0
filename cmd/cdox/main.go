package main

import (
	"context"
	"os"
	"runtime"

	"github.com/urfave/cli/v3"

	"cdox/extract"
	_ "cdox/lang" // Register C and C++ languages
	"cdox/logging"
	"cdox/output"
	"cdox/types"
)

func main() {
	app := &cli.Command{
		Name:  "cdox",
		Usage: "extract and classify comments from C/C++ sources",
		Commands: []*cli.Command{
			extractCommand(),
			declsCommand(),
			statsCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		output.WriteError(err)
		os.Exit(1)
	}
}

func sharedFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "path",
			Value: ".",
			Usage: "root path to scan",
		},
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "single file to process",
		},
		&cli.StringFlag{
			Name:    "lang",
			Aliases: []string{"l"},
			Usage:   "force language: c or cpp (default: by extension)",
		},
		&cli.StringFlag{
			Name:  "encoding",
			Usage: "declared input encoding (IANA name, default utf-8)",
		},
		&cli.IntFlag{
			Name:    "jobs",
			Aliases: []string{"j"},
			Value:   runtime.NumCPU(),
			Usage:   "number of parallel workers",
		},
		&cli.Int64Flag{
			Name:  "max-bytes",
			Value: 2 * 1024 * 1024,
			Usage: "skip files larger than this",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "per-file processing deadline",
		},
	}
}

func optionsFromFlags(cmd *cli.Command) extract.Options {
	return extract.Options{
		Path:     cmd.String("path"),
		File:     cmd.String("file"),
		Language: cmd.String("lang"),
		Encoding: cmd.String("encoding"),
		Jobs:     cmd.Int("jobs"),
		MaxBytes: cmd.Int64("max-bytes"),
		Timeout:  cmd.Duration("timeout"),
	}
}

func extractCommand() *cli.Command {
	flags := append(sharedFlags(),
		&cli.BoolFlag{
			Name:  "include-decls",
			Usage: "include the full declaration list per file",
		},
		&cli.BoolFlag{
			Name:  "no-parse",
			Usage: "skip the tree-sitter declaration pass",
		},
		&cli.BoolFlag{
			Name:  "compact",
			Usage: "minimize output",
		},
	)

	return &cli.Command{
		Name:  "extract",
		Usage: "extract comments with styles, tags and associations",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts := optionsFromFlags(cmd)
			opts.IncludeDecls = cmd.Bool("include-decls")
			opts.NoParse = cmd.Bool("no-parse")

			results, err := extract.Extract(ctx, opts)
			if err != nil {
				return err
			}
			logFileErrors(results)

			return output.New(output.Config{Compact: cmd.Bool("compact")}).Write(results)
		},
	}
}

func declsCommand() *cli.Command {
	flags := append(sharedFlags(),
		&cli.BoolFlag{
			Name:  "compact",
			Usage: "minimize output",
		},
	)

	return &cli.Command{
		Name:  "decls",
		Usage: "list declarations found by the grammar pass",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			results, err := extract.Decls(ctx, optionsFromFlags(cmd))
			if err != nil {
				return err
			}
			logFileErrors(results)

			type fileDecls struct {
				File  string              `json:"file"`
				Decls []types.Declaration `json:"decls"`
			}
			out := make([]fileDecls, 0, len(results))
			for _, res := range results {
				out = append(out, fileDecls{File: res.File, Decls: res.Decls})
			}
			return output.New(output.Config{Compact: cmd.Bool("compact")}).Write(out)
		},
	}
}

func statsCommand() *cli.Command {
	flags := append(sharedFlags(),
		&cli.BoolFlag{
			Name:  "json",
			Usage: "emit JSON instead of a table",
		},
	)

	return &cli.Command{
		Name:  "stats",
		Usage: "per-file extraction summary",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			results, err := extract.Extract(ctx, optionsFromFlags(cmd))
			if err != nil {
				return err
			}
			logFileErrors(results)

			summaries := extract.Summarize(results)
			if cmd.Bool("json") {
				return output.New(output.Config{}).Write(summaries)
			}
			output.RenderSummary(os.Stdout, summaries)
			return nil
		},
	}
}

// logFileErrors surfaces per-file errors on stderr; they are also part
// of the JSON results.
func logFileErrors(results []types.FileResult) {
	log := logging.Default("cdox")
	for _, res := range results {
		for _, msg := range res.Errors {
			log.Warn("file error", "file", res.File, "error", msg)
		}
	}
}
